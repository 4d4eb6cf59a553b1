package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidtube/internal/application/usecase/abstraction"
	"vidtube/internal/domain/dto"
	"vidtube/internal/presentation"
)

type UpdateHandler struct {
	editor abstraction.Editor
}

func NewUpdateHandler(editor abstraction.Editor) *UpdateHandler {
	return &UpdateHandler{editor: editor}
}

// HandleUpdate handles PATCH /api/v1/videos/:videoId multipart requests.
func (h *UpdateHandler) HandleUpdate(c echo.Context) error {
	input := dto.UpdateVideoInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}

	thumbnailPayload, closeThumbnail, err := formFilePayload(c, "thumbnail")
	if err != nil {
		return presentation.RespondError(c, err)
	}
	if closeThumbnail != nil {
		defer closeThumbnail()
	}
	input.Thumbnail = thumbnailPayload

	video, err := h.editor.Update(c.Request().Context(), c.Param(presentation.VideoIDParam), input)
	if err != nil {
		return presentation.RespondError(c, err)
	}

	return presentation.Respond(c, http.StatusOK, video, "video updated successfully")
}
