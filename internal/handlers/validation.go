package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Hanifzan/auth_acl_app/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// respondValidationError renders a binding failure as a 400 with per-field
// messages. Non-validator errors (malformed JSON) get a single generic entry.
func respondValidationError(c *gin.Context, err error) {
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		verr = toValidationError(err)
	}
	c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Fields})
}

// toValidationError converts gin binding errors into the field-message form.
func toValidationError(err error) *apperrors.ValidationError {
	fields := map[string]string{}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[jsonFieldName(fe.Field())] = validationMessage(fe)
		}
	} else {
		fields["body"] = "must be valid JSON"
	}

	return apperrors.NewValidationError(fields)
}

// jsonFieldName maps a Go struct field name to its json tag convention
// (lowerCamelCase, which every DTO here follows).
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "eqfield":
		return "must match " + jsonFieldName(fe.Param())
	default:
		return "is invalid"
	}
}
