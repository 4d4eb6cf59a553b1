package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidtube/internal/application/usecase/abstraction"
	"vidtube/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{getter: getter}
}

// HandleGet handles GET /api/v1/videos/:videoId requests.
func (h *GetHandler) HandleGet(c echo.Context) error {
	detail, err := h.getter.GetVideoByID(c.Request().Context(),
		c.Param(presentation.VideoIDParam), presentation.ViewerFromContext(c))
	if err != nil {
		return presentation.RespondError(c, err)
	}

	return presentation.Respond(c, http.StatusOK, detail, "video fetched successfully")
}
