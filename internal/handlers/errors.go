// internal/handlers/errors.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pawanbishnoiii/shineveda-backend/internal/utils"
)

// respondServiceError translates a service-layer error into the right HTTP
// response. Services return sentinel messages rather than typed errors, so
// the mapping sniffs the text.
func respondServiceError(c *gin.Context, err error, resource string) {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "not found"):
		utils.NotFoundResponse(c, resource)
	case strings.Contains(msg, "validation failed"):
		utils.ValidationErrorResponse(c, utils.GetValidationErrors(unwrap(err)))
	case strings.Contains(msg, "already in use"):
		utils.ConflictResponse(c, msg)
	case strings.Contains(msg, "invalid credentials"),
		strings.Contains(msg, "invalid refresh token"):
		utils.UnauthorizedResponse(c, "")
	case strings.Contains(msg, "suspended"):
		utils.ForbiddenResponse(c, msg)
	default:
		utils.InternalErrorResponse(c, "")
	}
}

func unwrap(err error) error {
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok {
		if inner := u.Unwrap(); inner != nil {
			return inner
		}
	}
	return err
}
