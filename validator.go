package fieldcast

///////////////////////////////////////////////////////////////////////////////
// Validator Impl.
///////////////////////////////////////////////////////////////////////////////

// ValidatorOpts configures a Validator. The zero value gives the default
// behavior: invalid optional values abort the call, unknown input keys are
// stripped.
type ValidatorOpts struct {
	// SkipInvalidOptionalValues drops an optional field whose cast fails
	// instead of aborting the whole call. Required fields always abort.
	SkipInvalidOptionalValues bool

	// AllowNonSpecifiedValues copies input keys outside the shape into the
	// output verbatim, in their raw string or []string form. Pass-through
	// values are never type-cast.
	AllowNonSpecifiedValues bool
}

// Validator applies a fixed Shape to input Records.
//
// Shape and options are immutable once constructed, and a Validate call
// touches no shared mutable state, so a single Validator may be invoked
// repeatedly and concurrently from multiple request handlers.
type Validator struct {
	shape Shape
	known map[string]struct{}
	opts  ValidatorOpts
}

// NewValidator builds a reusable validator for the given shape. The shape is
// copied, so later mutation of the caller's slice does not affect the
// validator.
func NewValidator(shape Shape, opts ValidatorOpts) *Validator {
	known := make(map[string]struct{}, len(shape))
	for _, f := range shape {
		known[f.Name] = struct{}{}
	}
	return &Validator{
		shape: append(Shape(nil), shape...),
		known: known,
		opts:  opts,
	}
}

// Validate applies every declared cast to the input record and assembles the
// typed output.
//
// Fields are evaluated in shape declaration order. The first failing
// required field aborts the call with an *InvalidParamError and no partial
// output. An optional field contributes no entry when its input is absent;
// when SkipInvalidOptionalValues is set, a failing optional cast is likewise
// dropped instead of aborting.
func (v *Validator) Validate(rec Record) (map[string]any, error) {
	out := make(map[string]any, len(v.shape))

	for _, f := range v.shape {
		raw := rec[f.Name] // zero RawValue reads as absent

		if f.Cast.IsOptional() && raw.IsAbsent() {
			continue
		}

		value, err := f.Cast.Apply(raw, f.Name)
		if err != nil {
			if f.Cast.IsOptional() && v.opts.SkipInvalidOptionalValues {
				continue
			}
			return nil, err
		}
		out[f.Name] = value
	}

	if v.opts.AllowNonSpecifiedValues {
		for name, raw := range rec {
			if _, ok := v.known[name]; ok {
				continue
			}
			if raw.IsAbsent() {
				continue
			}
			out[name] = raw.Raw()
		}
	}

	return out, nil
}
