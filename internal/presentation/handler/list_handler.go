package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/application/usecase/abstraction"
	"vidtube/internal/domain/dto"
	"vidtube/internal/presentation"
	"vidtube/pkg/apperr"
)

type ListHandler struct {
	lister abstraction.Lister
}

func NewListHandler(lister abstraction.Lister) *ListHandler {
	return &ListHandler{lister: lister}
}

// HandleList handles GET /api/v1/videos requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	query := dto.ListVideosQuery{
		Query:    c.QueryParam("query"),
		SortBy:   c.QueryParam("sortBy"),
		SortType: c.QueryParam("sortType"),
		Page:     parseInt64QueryParam(c, "page"),
		Limit:    parseInt64QueryParam(c, "limit"),
	}

	if rawOwner := c.QueryParam("userId"); rawOwner != "" {
		owner, err := primitive.ObjectIDFromHex(rawOwner)
		if err != nil {
			return presentation.RespondError(c, apperr.Validationf("invalid userId %q", rawOwner))
		}
		query.Owner = &owner
	}

	page, err := h.lister.ListVideos(c.Request().Context(), query)
	if err != nil {
		return presentation.RespondError(c, err)
	}

	return presentation.Respond(c, http.StatusOK, page, "videos fetched successfully")
}

// parseInt64QueryParam returns 0 for missing or malformed values; the
// usecase applies the 1/10 defaults.
func parseInt64QueryParam(c echo.Context, name string) int64 {
	v, err := strconv.ParseInt(c.QueryParam(name), 10, 64)
	if err != nil {
		return 0
	}

	return v
}
