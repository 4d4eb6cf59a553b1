package handler

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/dto"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/model"
)

type stubLister struct {
	page *entity.VideoPage
	err  error
	got  dto.ListVideosQuery
}

func (s *stubLister) ListVideos(_ context.Context, query dto.ListVideosQuery) (*entity.VideoPage, error) {
	s.got = query

	return s.page, s.err
}

type stubGetter struct {
	detail    *entity.VideoDetail
	err       error
	gotID     string
	gotViewer *primitive.ObjectID
}

func (s *stubGetter) GetVideoByID(_ context.Context, id string,
	viewer *primitive.ObjectID,
) (*entity.VideoDetail, error) {
	s.gotID = id
	s.gotViewer = viewer

	return s.detail, s.err
}

type stubCreator struct {
	video *model.Video
	err   error
	got   dto.PublishVideoInput
}

func (s *stubCreator) Publish(_ context.Context, input dto.PublishVideoInput) (*model.Video, error) {
	s.got = input

	return s.video, s.err
}

type stubEditor struct {
	video    *model.Video
	err      error
	gotID    string
	gotInput dto.UpdateVideoInput
	toggled  bool
}

func (s *stubEditor) Update(_ context.Context, id string, input dto.UpdateVideoInput) (*model.Video, error) {
	s.gotID = id
	s.gotInput = input

	return s.video, s.err
}

func (s *stubEditor) TogglePublish(_ context.Context, id string) (*model.Video, error) {
	s.gotID = id
	s.toggled = true

	return s.video, s.err
}

type stubDeleter struct {
	err   error
	gotID string
}

func (s *stubDeleter) Delete(_ context.Context, id string) error {
	s.gotID = id

	return s.err
}

type stubCounter struct {
	video *model.Video
	err   error
	gotID string
}

func (s *stubCounter) IncrementViews(_ context.Context, id string) (*model.Video, error) {
	s.gotID = id

	return s.video, s.err
}
