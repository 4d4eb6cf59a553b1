package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/application/usecase/abstraction"
	"vidtube/internal/domain/dto"
	"vidtube/internal/presentation"
	"vidtube/pkg/apperr"
	"vidtube/pkg/logger"
)

type PublishHandler struct {
	creator abstraction.Creator
}

func NewPublishHandler(creator abstraction.Creator) *PublishHandler {
	return &PublishHandler{creator: creator}
}

// HandlePublish handles POST /api/v1/videos multipart requests.
func (h *PublishHandler) HandlePublish(c echo.Context) error {
	owner, ok := c.Get(presentation.IdentityKey).(primitive.ObjectID)
	if !ok {
		return presentation.RespondError(c, apperr.New(apperr.Validation, "owner identity is required"))
	}

	input := dto.PublishVideoInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Owner:       owner,
	}

	if raw := c.FormValue("isPublished"); raw != "" {
		published, err := strconv.ParseBool(raw)
		if err != nil {
			return presentation.RespondError(c, apperr.Validationf("invalid isPublished value %q", raw))
		}
		input.IsPublished = &published
	}

	videoPayload, closeVideo, err := formFilePayload(c, "videoFile")
	if err != nil {
		return presentation.RespondError(c, err)
	}
	if closeVideo != nil {
		defer closeVideo()
	}

	thumbnailPayload, closeThumbnail, err := formFilePayload(c, "thumbnail")
	if err != nil {
		return presentation.RespondError(c, err)
	}
	if closeThumbnail != nil {
		defer closeThumbnail()
	}

	input.Video = videoPayload
	input.Thumbnail = thumbnailPayload

	video, err := h.creator.Publish(c.Request().Context(), input)
	if err != nil {
		return presentation.RespondError(c, err)
	}

	return presentation.Respond(c, http.StatusCreated, video, "video uploaded successfully")
}

// formFilePayload opens a multipart file field as a seekable payload. A
// missing field yields a nil payload, not an error; the usecase decides
// whether the field is required.
func formFilePayload(c echo.Context, field string) (*dto.FilePayload, func(), error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}

		return nil, nil, apperr.Validationf("invalid %s file field", field)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, apperr.Wrap(apperr.Internal, "failed to open uploaded file", err)
	}

	closeFn := func() {
		if err := file.Close(); err != nil {
			logger.Warn("failed to close uploaded file", "field", field, "err", err)
		}
	}

	return &dto.FilePayload{Reader: file, Size: fileHeader.Size}, closeFn, nil
}
