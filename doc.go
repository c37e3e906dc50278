// Package fieldcast turns flat, untyped records of string-valued fields —
// typically decoded querystring or form parameters — into strongly-shaped
// records of typed values.
//
// A Shape declares, once, which fields are known and how each one casts:
//
//	shape := fieldcast.Shape{
//		fieldcast.F("page", fieldcast.Int()),
//		fieldcast.F("active", fieldcast.Optional(fieldcast.Bool())),
//		fieldcast.F("tags", fieldcast.Array(fieldcast.String())),
//	}
//	v := fieldcast.NewValidator(shape, fieldcast.ValidatorOpts{})
//
// The validator is then applied to any number of input Records:
//
//	out, err := v.Validate(fieldcast.FromRequest(r))
//
// Casts are built from a small set of composable primitives (Int, Bool,
// String, Float64, Regex, OneOf, ISODate, UUID) and combinators (Array,
// Optional). Every scalar primitive requires presence and rejects list
// input; Optional makes absence a valid outcome, and Array maps an element
// cast over list input.
//
// Validation is fail-fast: the first invalid required field aborts the call
// with an *InvalidParamError carrying the field name, a cause sentinel
// reachable via errors.Is, and a 400 status classification for direct use by
// an HTTP layer. Optional fields may instead be configured to swallow their
// own failures (ValidatorOpts.SkipInvalidOptionalValues), and input keys
// outside the shape may be passed through untouched
// (ValidatorOpts.AllowNonSpecifiedValues).
//
// Input Records come from url.Values (FromValues), the query string of an
// *http.Request (FromRequest), or the top-level fields of a JSON object body
// (FromJSON).
//
// A Validator holds no mutable state after construction and is safe for
// concurrent use.
package fieldcast
