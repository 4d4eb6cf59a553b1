package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/dto"
	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/model"
	"vidtube/internal/domain/repository/database"
)

// fakeVideoStore is an in-memory stand-in for the catalog repository
// interfaces used by the lifecycle usecases.
type fakeVideoStore struct {
	mu     sync.Mutex
	videos map[primitive.ObjectID]*model.Video

	insertErr error
	updateErr error
	removeErr error
}

func newFakeVideoStore() *fakeVideoStore {
	return &fakeVideoStore{videos: map[primitive.ObjectID]*model.Video{}}
}

func (s *fakeVideoStore) put(video *model.Video) primitive.ObjectID {
	s.mu.Lock()
	defer s.mu.Unlock()

	if video.ID.IsZero() {
		video.ID = primitive.NewObjectID()
	}
	s.videos[video.ID] = video

	return video.ID
}

func (s *fakeVideoStore) Insert(_ context.Context, video *model.Video) (primitive.ObjectID, error) {
	if s.insertErr != nil {
		return primitive.NilObjectID, s.insertErr
	}

	return s.put(video), nil
}

func (s *fakeVideoStore) GetByID(_ context.Context, id primitive.ObjectID) (*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.videos[id]
	if !ok {
		return nil, database.ErrNoDocument
	}

	copied := *video

	return &copied, nil
}

func (s *fakeVideoStore) UpdateFields(_ context.Context, id primitive.ObjectID,
	fields map[string]any,
) (*model.Video, error) {
	if s.updateErr != nil {
		return nil, s.updateErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.videos[id]
	if !ok {
		return nil, database.ErrNoDocument
	}

	for k, v := range fields {
		switch k {
		case "title":
			video.Title = v.(string)
		case "description":
			video.Description = v.(string)
		case "thumbnail":
			video.Thumbnail = v.(string)
		case "isPublished":
			video.IsPublished = v.(bool)
		}
	}

	copied := *video

	return &copied, nil
}

func (s *fakeVideoStore) IncrementField(_ context.Context, id primitive.ObjectID,
	field string, delta int64,
) (*model.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	video, ok := s.videos[id]
	if !ok {
		return nil, database.ErrNoDocument
	}

	if field == "views" {
		video.Views += delta
	}

	copied := *video

	return &copied, nil
}

func (s *fakeVideoStore) Remove(_ context.Context, id primitive.ObjectID) (bool, error) {
	if s.removeErr != nil {
		return false, s.removeErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.videos[id]; !ok {
		return false, nil
	}
	delete(s.videos, id)

	return true, nil
}

// fakeBlobStore implements the blob uploader and remover, recording calls.
type fakeBlobStore struct {
	mu       sync.Mutex
	uploads  int
	removed  []string
	stored   []string
	duration float64

	uploadErrAfter int // fail the n-th upload (1-based); 0 never fails
	removeErr      error
}

func (b *fakeBlobStore) Upload(_ context.Context, _ *dto.FilePayload) (entity.BlobUploadResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.uploads++
	if b.uploadErrAfter > 0 && b.uploads >= b.uploadErrAfter {
		return entity.BlobUploadResult{}, errors.New("blob store unavailable")
	}

	url := fmt.Sprintf("http://blobs.local/media/object-%d", b.uploads)
	b.stored = append(b.stored, url)

	return entity.BlobUploadResult{URL: url, Duration: b.duration, Size: 128}, nil
}

func (b *fakeBlobStore) Remove(_ context.Context, url string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.removeErr != nil {
		return b.removeErr
	}
	b.removed = append(b.removed, url)

	return nil
}

// fakePublisher records published lifecycle events.
type fakePublisher struct {
	mu       sync.Mutex
	messages []string
	err      error
}

func (p *fakePublisher) Publish(_ context.Context, message string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, message)

	return nil
}

// fakeAggregator serves canned read models.
type fakeAggregator struct {
	page   *entity.VideoPage
	detail *entity.VideoDetail
	err    error
	calls  int
}

func (a *fakeAggregator) ListVideos(_ context.Context, _ dto.ListVideosQuery) (*entity.VideoPage, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}

	return a.page, nil
}

func (a *fakeAggregator) GetVideoDetail(_ context.Context, _ primitive.ObjectID,
	_ *primitive.ObjectID,
) (*entity.VideoDetail, error) {
	a.calls++
	if a.err != nil {
		return nil, a.err
	}

	return a.detail, nil
}
