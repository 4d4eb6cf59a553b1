package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidtube/internal/application/usecase/abstraction"
	"vidtube/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{deleter: deleter}
}

// HandleDelete handles DELETE /api/v1/videos/:videoId requests.
func (h *DeleteHandler) HandleDelete(c echo.Context) error {
	err := h.deleter.Delete(c.Request().Context(), c.Param(presentation.VideoIDParam))
	if err != nil {
		return presentation.RespondError(c, err)
	}

	return presentation.Respond(c, http.StatusOK, map[string]any{}, "video deleted successfully")
}
