package fieldcast

import (
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_MissingRequiredFieldNamesKey(t *testing.T) {
	shape := Shape{
		F("q", String()),
		F("page", Int()),
	}
	v := NewValidator(shape, ValidatorOpts{})

	_, err := v.Validate(Record{"q": One("golang")})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingField)

	var ipe *InvalidParamError
	require.True(t, errors.As(err, &ipe))
	assert.Equal(t, "page", ipe.Field)
	assert.Equal(t, http.StatusBadRequest, ipe.StatusCode())
}

func TestValidator_FailFastReportsFirstDeclaredFailure(t *testing.T) {
	shape := Shape{
		F("first", Int()),
		F("second", Int()),
	}
	v := NewValidator(shape, ValidatorOpts{})

	out, err := v.Validate(Record{
		"first":  One("not a number"),
		"second": One("also not"),
	})

	require.Error(t, err)
	assert.Nil(t, out)

	var ipe *InvalidParamError
	require.True(t, errors.As(err, &ipe))
	assert.Equal(t, "first", ipe.Field)
}

func TestValidator_TypedOutput(t *testing.T) {
	shape := Shape{
		F("q", String()),
		F("page", Int()),
		F("active", Bool()),
		F("ids", Array(Int())),
	}
	v := NewValidator(shape, ValidatorOpts{})

	out, err := v.Validate(Record{
		"q":      One("golang"),
		"page":   One("3"),
		"active": One("1"),
		"ids":    Many("4", "5"),
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"q":      "golang",
		"page":   3,
		"active": true,
		"ids":    []any{4, 5},
	}, out)
}

func TestValidator_OptionalAbsentFieldIsOmitted(t *testing.T) {
	shape := Shape{
		F("q", String()),
		F("page", Optional(Int())),
	}
	v := NewValidator(shape, ValidatorOpts{})

	out, err := v.Validate(Record{"q": One("golang")})

	require.NoError(t, err)
	_, exists := out["page"]
	assert.False(t, exists)
	assert.Equal(t, map[string]any{"q": "golang"}, out)
}

func TestValidator_InvalidOptionalAbortsByDefault(t *testing.T) {
	shape := Shape{
		F("page", Optional(Int())),
	}
	v := NewValidator(shape, ValidatorOpts{})

	_, err := v.Validate(Record{"page": One("nope")})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotAnInteger)
}

func TestValidator_SkipInvalidOptionalValues(t *testing.T) {
	shape := Shape{
		F("q", String()),
		F("page", Optional(Int())),
	}
	v := NewValidator(shape, ValidatorOpts{SkipInvalidOptionalValues: true})

	out, err := v.Validate(Record{
		"q":    One("golang"),
		"page": One("nope"),
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"q": "golang"}, out)
}

func TestValidator_SkipInvalidOptionalDoesNotCoverRequired(t *testing.T) {
	shape := Shape{
		F("page", Int()),
	}
	v := NewValidator(shape, ValidatorOpts{SkipInvalidOptionalValues: true})

	_, err := v.Validate(Record{"page": One("nope")})

	assert.ErrorIs(t, err, ErrNotAnInteger)
}

func TestValidator_UnknownKeysStrippedByDefault(t *testing.T) {
	shape := Shape{
		F("q", String()),
	}
	v := NewValidator(shape, ValidatorOpts{})

	out, err := v.Validate(Record{
		"q":     One("golang"),
		"debug": One("1"),
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"q": "golang"}, out)
}

func TestValidator_AllowNonSpecifiedValuesPassesThroughVerbatim(t *testing.T) {
	shape := Shape{
		F("q", String()),
	}
	v := NewValidator(shape, ValidatorOpts{AllowNonSpecifiedValues: true})

	out, err := v.Validate(Record{
		"q":     One("golang"),
		"debug": One("1"),
		"tags":  Many("a", "b"),
	})

	require.NoError(t, err)
	// pass-through values keep their raw string/[]string form, never cast
	assert.Equal(t, map[string]any{
		"q":     "golang",
		"debug": "1",
		"tags":  []string{"a", "b"},
	}, out)
}

func TestValidator_StringShapeRoundTrip(t *testing.T) {
	shape := Shape{
		F("a", String()),
		F("b", String()),
	}
	v := NewValidator(shape, ValidatorOpts{})

	out, err := v.Validate(Record{
		"a": One("x"),
		"b": One("y"),
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "x", "b": "y"}, out)
}

func TestValidator_ShapeCopiedAtConstruction(t *testing.T) {
	shape := Shape{
		F("q", String()),
	}
	v := NewValidator(shape, ValidatorOpts{})

	// mutating the caller's slice must not change the validator's contract
	shape[0] = F("other", Int())

	out, err := v.Validate(Record{"q": One("golang")})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{"q": "golang"}, out)
}

func TestValidator_ConcurrentValidateCalls(t *testing.T) {
	shape := Shape{
		F("page", Int()),
		F("active", Optional(Bool())),
	}
	v := NewValidator(shape, ValidatorOpts{})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				out, err := v.Validate(Record{
					"page":   One("7"),
					"active": One("true"),
				})
				assert.NoError(t, err)
				assert.Equal(t, 7, out["page"])
			}
		}()
	}
	wg.Wait()
}

func TestShape_Helpers(t *testing.T) {
	shape := Shape{
		F("q", String()),
		F("page", Int()),
	}

	assert.Equal(t, []string{"q", "page"}, shape.Names())
	assert.True(t, shape.Has("page"))
	assert.False(t, shape.Has("debug"))
}
