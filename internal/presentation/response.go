package presentation

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/dto"
	"vidtube/pkg/apperr"
)

// Respond renders the uniform success envelope.
func Respond(c echo.Context, status int, data any, message string) error {
	return c.JSON(status, dto.Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
	})
}

// RespondError renders the uniform error envelope from a typed error.
func RespondError(c echo.Context, err error) error {
	appErr := apperr.From(err)
	status := appErr.StatusCode()

	errs := []string{}
	if cause := appErr.Unwrap(); cause != nil {
		errs = append(errs, cause.Error())
	}

	return c.JSON(status, dto.ErrorResponse{
		StatusCode: status,
		Message:    appErr.Message,
		Errors:     errs,
	})
}

// ViewerFromContext returns the caller identity set by the identity
// middleware, or nil for anonymous requests.
func ViewerFromContext(c echo.Context) *primitive.ObjectID {
	id, ok := c.Get(IdentityKey).(primitive.ObjectID)
	if !ok {
		return nil
	}

	return &id
}
