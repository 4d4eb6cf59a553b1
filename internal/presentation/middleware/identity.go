package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/dto"
	"vidtube/internal/presentation"
)

// Identity parses the caller identity header into the request context.
// Authentication happened upstream; a missing header just means an anonymous
// viewer, while a malformed one is rejected.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(presentation.IdentityHeader)
			if raw == "" {
				return next(c)
			}

			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, dto.ErrorResponse{
					StatusCode: http.StatusBadRequest,
					Message:    "malformed caller identity",
					Errors:     []string{err.Error()},
				})
			}

			c.Set(presentation.IdentityKey, id)

			return next(c)
		}
	}
}

// RequireIdentity rejects requests that carry no caller identity. Used on
// mutation routes where the identity becomes the document owner.
func RequireIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get(presentation.IdentityKey).(primitive.ObjectID); !ok {
				return c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
					StatusCode: http.StatusUnauthorized,
					Message:    "caller identity is required",
					Errors:     []string{},
				})
			}

			return next(c)
		}
	}
}
