package fieldcast

import (
	"fmt"
)

///////////////////////////////////////////////////////////////////////////////
// Cast Primitives and Combinators
///////////////////////////////////////////////////////////////////////////////

// Cast turns one field's raw input into a typed value, or fails with an
// *InvalidParamError naming the field. Casts are pure: no state, no I/O.
type Cast func(raw RawValue, field string) (any, error)

// FieldCast pairs a Cast with its required-ness. The optional flag is an
// explicit variant inspected by the validator, not a property probed off the
// function value: absence of an optional field is a valid outcome handled
// before the cast ever runs.
type FieldCast struct {
	cast     Cast
	optional bool
}

// Apply runs the cast against the raw input, naming field in any error.
func (fc FieldCast) Apply(raw RawValue, field string) (any, error) {
	return fc.cast(raw, field)
}

// IsOptional reports whether absence of input is tolerated for this cast.
func (fc FieldCast) IsOptional() bool {
	return fc.optional
}

// requireDefined fails with ErrMissingField when the raw input is absent,
// otherwise delegates.
func requireDefined(cast Cast) Cast {
	return func(raw RawValue, field string) (any, error) {
		if raw.IsAbsent() {
			return nil, invalidParam(field, ErrMissingField, "parameter %s must be provided", field)
		}
		return cast(raw, field)
	}
}

// rejectList fails with ErrUnexpectedList when the raw input is a list,
// otherwise delegates to a cast expecting a single string.
func rejectList(cast Cast) Cast {
	return func(raw RawValue, field string) (any, error) {
		if raw.IsList() {
			return nil, invalidParam(field, ErrUnexpectedList, "parameter %s must not be an array", field)
		}
		return cast(raw, field)
	}
}

// scalar builds the standard single-value pipeline around fn: presence is
// required, list input is rejected, then fn sees the bare string.
func scalar(fn func(value string, field string) (any, error)) FieldCast {
	return FieldCast{
		cast: requireDefined(rejectList(func(raw RawValue, field string) (any, error) {
			return fn(raw.First(), field)
		})),
	}
}

// Array lifts an element cast over list input. A single string is treated as
// a one-element list. Elements are cast in order and named field[index] for
// error context, so a failure reports exactly which element was invalid.
// Presence is required; wrap with Optional to tolerate absence.
func Array(elem FieldCast) FieldCast {
	return FieldCast{
		cast: requireDefined(func(raw RawValue, field string) (any, error) {
			items := raw.List()
			out := make([]any, 0, len(items))
			for i, item := range items {
				value, err := elem.Apply(One(item), fmt.Sprintf("%s[%d]", field, i))
				if err != nil {
					return nil, err
				}
				out = append(out, value)
			}
			return out, nil
		}),
	}
}

// Optional marks a cast as tolerating absence. The validator skips an
// optional field whose input is absent instead of invoking the cast, so the
// required-ness check inside the cast never fires; present input still goes
// through the wrapped cast unchanged.
func Optional(fc FieldCast) FieldCast {
	return FieldCast{cast: fc.cast, optional: true}
}
