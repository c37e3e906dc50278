package fieldcast

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// Built-in Primitives
///////////////////////////////////////////////////////////////////////////////

// Int parses the value as a base-10 integer.
func Int() FieldCast {
	return scalar(func(value, field string) (any, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, invalidParam(field, ErrNotAnInteger, "parameter %s must be an integer", field)
		}
		return n, nil
	})
}

// Bool accepts exactly "true"/"1" and "false"/"0".
func Bool() FieldCast {
	return scalar(func(value, field string) (any, error) {
		switch value {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		default:
			return nil, invalidParam(field, ErrNotABoolean, "parameter %s must be a boolean", field)
		}
	})
}

// String passes the value through unchanged.
func String() FieldCast {
	return scalar(func(value, _ string) (any, error) {
		return value, nil
	})
}

// Float64 parses the value as a floating-point number.
func Float64() FieldCast {
	return scalar(func(value, field string) (any, error) {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, invalidParam(field, ErrNotANumber, "parameter %s must be a number", field)
		}
		return f, nil
	})
}

// Regex accepts values matching pattern. The pattern must compile; an
// optional custom message replaces the default error text.
func Regex(pattern string, message ...string) FieldCast {
	re := regexp.MustCompile(pattern)
	return scalar(func(value, field string) (any, error) {
		if !re.MatchString(value) {
			if len(message) > 0 {
				return nil, invalidParam(field, ErrPatternMismatch, "%s", message[0])
			}
			return nil, invalidParam(field, ErrPatternMismatch, "parameter %s must match %s", field, pattern)
		}
		return value, nil
	})
}

// OneOf accepts exactly the given literal options.
func OneOf(options ...string) FieldCast {
	return scalar(func(value, field string) (any, error) {
		for _, opt := range options {
			if value == opt {
				return value, nil
			}
		}
		return nil, invalidParam(field, ErrNotInEnum,
			"parameter %s must be one of [%s]", field, strings.Join(options, ", "))
	})
}

// ISODate accepts values the supplied date-format predicate validates,
// returning the string unchanged. The predicate itself is an external
// collaborator; RFC3339Date provides a ready-made one.
func ISODate(valid func(string) bool) FieldCast {
	return scalar(func(value, field string) (any, error) {
		if !valid(value) {
			return nil, invalidParam(field, ErrInvalidISODate, "parameter %s must be a valid ISO date", field)
		}
		return value, nil
	})
}

// RFC3339Date is ISODate backed by time.Parse with the RFC 3339 layout.
func RFC3339Date() FieldCast {
	return ISODate(func(value string) bool {
		_, err := time.Parse(time.RFC3339, value)
		return err == nil
	})
}

// UUID parses the value as a UUID.
func UUID() FieldCast {
	return scalar(func(value, field string) (any, error) {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, invalidParam(field, ErrNotAUUID, "parameter %s must be a valid UUID", field)
		}
		return id, nil
	})
}
