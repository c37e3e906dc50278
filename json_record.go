package fieldcast

import (
	"github.com/tidwall/gjson"
)

///////////////////////////////////////////////////////////////////////////////
// JSON Record Source
///////////////////////////////////////////////////////////////////////////////

// FromJSON builds a Record from the top-level fields of a JSON object body.
//
// Scalar fields (strings, numbers, booleans) stringify to their literal form,
// so a shape declared for querystring input works unchanged against a JSON
// body. Arrays become lists of stringified elements. Nested objects, nulls,
// and arrays containing non-scalar elements have no querystring equivalent
// and are skipped.
//
// Empty or non-object input yields an empty Record.
func FromJSON(body []byte) Record {
	rec := Record{}
	if len(body) == 0 {
		return rec
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return rec
	}

	parsed.ForEach(func(key, value gjson.Result) bool {
		switch {
		case value.IsArray():
			elems := value.Array()
			items := make([]string, 0, len(elems))
			for _, elem := range elems {
				if elem.IsObject() || elem.IsArray() || elem.Type == gjson.Null {
					return true // skip the whole field
				}
				items = append(items, elem.String())
			}
			rec[key.String()] = Many(items...)
		case value.IsObject(), value.Type == gjson.Null:
			// no querystring form, skip
		default:
			rec[key.String()] = One(value.String())
		}
		return true
	})

	return rec
}
