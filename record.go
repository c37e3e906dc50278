package fieldcast

import (
	"net/http"
	"net/url"
)

///////////////////////////////////////////////////////////////////////////////
// Raw Input Model
///////////////////////////////////////////////////////////////////////////////

// RawValue is the untyped form a single field arrives in: absent, a single
// string, or a list of strings. Querystring and form decoders produce exactly
// these three cases, so the distinction is kept explicit instead of collapsing
// everything into a string slice.
//
// The zero RawValue is absent.
type RawValue struct {
	present bool
	list    bool
	one     string
	many    []string
}

// One wraps a single string value.
func One(s string) RawValue {
	return RawValue{present: true, one: s}
}

// Many wraps a list of string values.
func Many(values ...string) RawValue {
	return RawValue{present: true, list: true, many: values}
}

// IsAbsent reports whether the field carried no value at all.
func (rv RawValue) IsAbsent() bool {
	return !rv.present
}

// IsList reports whether the field carried a list of values.
func (rv RawValue) IsList() bool {
	return rv.present && rv.list
}

// First returns the single value, or the first element of a list. Absent
// values yield "".
func (rv RawValue) First() string {
	if !rv.present {
		return ""
	}
	if rv.list {
		if len(rv.many) == 0 {
			return ""
		}
		return rv.many[0]
	}
	return rv.one
}

// List returns the value in list form. A single value wraps into a
// one-element list; absent yields nil.
func (rv RawValue) List() []string {
	if !rv.present {
		return nil
	}
	if rv.list {
		return rv.many
	}
	return []string{rv.one}
}

// Raw returns the value in its original shape, string or []string, for
// untyped pass-through. Absent yields nil.
func (rv RawValue) Raw() any {
	if !rv.present {
		return nil
	}
	if rv.list {
		return rv.many
	}
	return rv.one
}

// Record is the flat, untyped input to a Validate call: field name to raw
// value. Missing keys read as absent RawValues.
type Record map[string]RawValue

// FromValues builds a Record from decoded querystring or form values. A key
// with exactly one value becomes a single string; more than one value
// becomes a list.
func FromValues(values url.Values) Record {
	rec := make(Record, len(values))
	for name, vs := range values {
		switch len(vs) {
		case 0:
			// url.Values never stores an empty slice in practice, but a
			// hand-built one must still read as absent
		case 1:
			rec[name] = One(vs[0])
		default:
			rec[name] = Many(vs...)
		}
	}
	return rec
}

// FromRequest builds a Record from the query string of an HTTP request.
func FromRequest(r *http.Request) Record {
	return FromValues(r.URL.Query())
}
