package helpers

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Slide raw_data payloads are the largest thing this API accepts.
const maxBodyBytes = 1 << 20

// Validator is implemented by request DTOs. Validate returns one message per
// problem; an empty slice means the body is acceptable.
type Validator interface {
	Validate() []string
}

// DecodeAndValidate reads the request body into dest, rejecting unknown
// fields and bodies over maxBodyBytes, then runs dest's Validate if it has
// one. On any failure it writes the 400 envelope and returns false, so
// handlers can bail with a bare return.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	if v, ok := dest.(Validator); ok {
		if errs := v.Validate(); len(errs) > 0 {
			WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, strings.Join(errs, "; "))
			return false
		}
	}
	return true
}
