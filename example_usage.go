package fieldcast

import (
	"errors"
	"fmt"
	"log"
	"net/http"
)

// Shape for a typical search endpoint: a required query, paging with an
// optional page number, a sort mode restricted to an enum, and free-form
// tags.
var searchShape = Shape{
	F("q", String()),
	F("page", Optional(Int())),
	F("sort", Optional(OneOf("asc", "desc"))),
	F("tags", Optional(Array(String()))),
	F("since", Optional(RFC3339Date())),
}

// ExampleUsage demonstrates validating request parameters at the entry of a
// handler, including how the 400 classification reaches the HTTP layer.
func ExampleUsage() {
	validator := NewValidator(searchShape, ValidatorOpts{})

	// A well-formed request
	req, _ := http.NewRequest("GET", "http://example.com/search?q=golang&page=2&sort=desc&tags=a&tags=b", nil)

	params, err := validator.Validate(FromRequest(req))
	if err != nil {
		log.Printf("validation failed: %v", err)
		return
	}
	fmt.Printf("q=%v page=%v sort=%v tags=%v\n",
		params["q"], params["page"], params["sort"], params["tags"])

	// A request missing the required q parameter
	bad, _ := http.NewRequest("GET", "http://example.com/search?page=2", nil)

	if _, err := validator.Validate(FromRequest(bad)); err != nil {
		var ipe *InvalidParamError
		if errors.As(err, &ipe) {
			// ipe.StatusCode() is 400, ready for http.Error
			fmt.Printf("reject %d: %s\n", ipe.StatusCode(), ipe.Error())
		}
	}
}

// SearchHandler shows the intended wiring inside a real handler.
func SearchHandler(validator *Validator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, err := validator.Validate(FromRequest(r))
		if err != nil {
			var ipe *InvalidParamError
			if errors.As(err, &ipe) {
				http.Error(w, ipe.Error(), ipe.StatusCode())
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		// domain logic runs against typed params from here on
		fmt.Fprintf(w, "searching for %v\n", params["q"])
	}
}
