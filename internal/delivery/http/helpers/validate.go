package helpers

import (
	"encoding/json"
	"net/http"
)

// Validator is implemented by request payloads that can validate themselves.
type Validator interface {
	Validate() error
}

// DecodeAndValidate decodes the request body into req and runs its Validate
// method. On failure it writes a bad request response and returns false; the
// handler should return immediately.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, req Validator) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return false
	}
	if err := req.Validate(); err != nil {
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, err.Error())
		return false
	}
	return true
}
