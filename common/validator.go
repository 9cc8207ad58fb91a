package common

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// DecodeAndValidate decodes the JSON request body into payload and runs the
// struct validation tags. Callers map the returned error to their own
// user-facing message; the raw validator output is never sent to clients.
func DecodeAndValidate(r *http.Request, payload interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return err
	}
	return validate.Struct(payload)
}
