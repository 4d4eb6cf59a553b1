package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidtube/internal/application/usecase/abstraction"
	"vidtube/internal/presentation"
)

type ViewsHandler struct {
	counter abstraction.Counter
}

func NewViewsHandler(counter abstraction.Counter) *ViewsHandler {
	return &ViewsHandler{counter: counter}
}

// HandleIncrement handles PATCH /api/v1/videos/views/:videoId requests.
func (h *ViewsHandler) HandleIncrement(c echo.Context) error {
	video, err := h.counter.IncrementViews(c.Request().Context(), c.Param(presentation.VideoIDParam))
	if err != nil {
		return presentation.RespondError(c, err)
	}

	return presentation.Respond(c, http.StatusOK, video, "view count updated successfully")
}
