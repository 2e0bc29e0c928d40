package validator

import (
	"errors"
	"net/http"

	"eventagency/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Fields maps a gin binding error to field name -> failed rule, so handlers
// can attach per-field details to VALIDATION_ERROR responses. Returns nil for
// errors that are not validation errors (malformed JSON and the like).
func Fields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}

// BindError writes the standard 400 for a failed ShouldBindJSON call,
// including per-field details when the error carries them.
func BindError(c *gin.Context, err error) {
	if fields := Fields(err); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", fields)
		return
	}
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
}
