package api

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/ValetTech/Valet/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("Failed to encode response")
	}
}

// writeError reports err with the status its kind maps to. Internal errors are
// logged and hidden from the client.
func writeError(w http.ResponseWriter, err error) {
	httpErr := apperrors.FromError(err)
	if httpErr.Code >= http.StatusInternalServerError {
		logrus.WithError(err).Error("Request failed")
	}
	writeJSON(w, httpErr.Code, ErrorResponse{Error: httpErr.Message})
}

// decodeJSON decodes the body into v and checks its validate tags.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.ErrBadRequest("Invalid request body")
	}
	if err := validate.Struct(v); err != nil {
		return apperrors.ErrBadRequest("validation error: " + err.Error())
	}
	return nil
}
