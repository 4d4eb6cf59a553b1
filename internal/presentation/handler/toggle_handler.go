package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidtube/internal/application/usecase/abstraction"
	"vidtube/internal/presentation"
)

type ToggleHandler struct {
	editor abstraction.Editor
}

func NewToggleHandler(editor abstraction.Editor) *ToggleHandler {
	return &ToggleHandler{editor: editor}
}

// HandleToggle handles PATCH /api/v1/videos/toggle/publish/:videoId requests.
func (h *ToggleHandler) HandleToggle(c echo.Context) error {
	video, err := h.editor.TogglePublish(c.Request().Context(), c.Param(presentation.VideoIDParam))
	if err != nil {
		return presentation.RespondError(c, err)
	}

	return presentation.Respond(c, http.StatusOK, video, "publish status changed successfully")
}
