package database

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"vidtube/internal/domain/dto"
	"vidtube/internal/domain/model"
	repoDatabase "vidtube/internal/domain/repository/database"
)

const (
	TestUsername = "testuser"
	TestPassword = "testpass"
	TestDBName   = "testdb"
)

func setupMongo(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:latest",
		ExposedPorts: []string{"27017/tcp"},
		Env: map[string]string{
			"MONGO_INITDB_ROOT_USERNAME": TestUsername,
			"MONGO_INITDB_ROOT_PASSWORD": TestPassword,
		},
		WaitingFor: wait.ForLog("Waiting for connections").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatal("Failed to start MongoDB container:", err)
	}
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatal("Failed to get container host:", err)
	}

	port, err := container.MappedPort(ctx, "27017")
	if err != nil {
		t.Fatal("Failed to get mapped port:", err)
	}

	hostPort := net.JoinHostPort(host, port.Port())

	return fmt.Sprintf("mongodb://%s:%s@%s", TestUsername, TestPassword, hostPort)
}

func newTestDB(t *testing.T) *Database {
	t.Helper()

	db, err := Connect(Config{
		URI:               setupMongo(t),
		DBName:            TestDBName,
		ConnectionTimeout: 30000,
		QueryTimeout:      30000,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Stop()
	})

	return db
}

func baseVideo(owner primitive.ObjectID) *model.Video {
	return &model.Video{
		VideoFile:   "http://blobs.local/media/video.mp4",
		Thumbnail:   "http://blobs.local/media/thumb.png",
		Title:       "city timelapse",
		Description: "a night drive through the city",
		Duration:    42.5,
		IsPublished: true,
		Owner:       owner,
	}
}

func insertUser(t *testing.T, db *Database, user model.User) primitive.ObjectID {
	t.Helper()

	res, err := db.Client.Database(db.DBName).Collection(UserCollection).
		InsertOne(context.Background(), user)
	require.NoError(t, err)

	id, ok := res.InsertedID.(primitive.ObjectID)
	require.True(t, ok)

	return id
}

func insertLike(t *testing.T, db *Database, video, likedBy primitive.ObjectID) {
	t.Helper()

	_, err := db.Client.Database(db.DBName).Collection(LikeCollection).
		InsertOne(context.Background(), model.Like{Video: video, LikedBy: likedBy})
	require.NoError(t, err)
}

func insertSubscription(t *testing.T, db *Database, channel, subscriber primitive.ObjectID) {
	t.Helper()

	_, err := db.Client.Database(db.DBName).Collection(SubscriptionCollection).
		InsertOne(context.Background(), model.Subscription{Channel: channel, Subscriber: subscriber})
	require.NoError(t, err)
}

func TestInsert(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	writer := NewVideoWriter(db)

	tests := []struct {
		name        string
		modify      func(v *model.Video)
		expectError string
	}{
		{
			name:        "valid video",
			modify:      func(_ *model.Video) {},
			expectError: "",
		},
		{
			name: "missing title",
			modify: func(v *model.Video) {
				v.Title = ""
			},
			expectError: "Document failed validation",
		},
		{
			name: "missing video file",
			modify: func(v *model.Video) {
				v.VideoFile = ""
			},
			expectError: "Document failed validation",
		},
		{
			name: "missing thumbnail",
			modify: func(v *model.Video) {
				v.Thumbnail = ""
			},
			expectError: "Document failed validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			video := baseVideo(primitive.NewObjectID())
			tt.modify(video)

			id, err := writer.Insert(context.Background(), video)

			if tt.expectError != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tt.expectError)

				return
			}

			require.NoError(t, err)
			require.False(t, id.IsZero())
			require.False(t, video.CreatedAt.IsZero())
			require.False(t, video.UpdatedAt.IsZero())
		})
	}
}

func TestGetByID(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	writer := NewVideoWriter(db)
	retriever := NewVideoRetriever(db)

	video := baseVideo(primitive.NewObjectID())
	id, err := writer.Insert(context.Background(), video)
	require.NoError(t, err)

	got, err := retriever.GetByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, video.Title, got.Title)
	require.Equal(t, video.VideoFile, got.VideoFile)
	require.Equal(t, video.Owner, got.Owner)

	_, err = retriever.GetByID(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, repoDatabase.ErrNoDocument)
}

func TestUpdateFields(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	writer := NewVideoWriter(db)
	updater := NewVideoUpdater(db)

	video := baseVideo(primitive.NewObjectID())
	id, err := writer.Insert(context.Background(), video)
	require.NoError(t, err)

	updated, err := updater.UpdateFields(context.Background(), id, map[string]any{
		"title": "harbor timelapse",
	})
	require.NoError(t, err)
	require.Equal(t, "harbor timelapse", updated.Title)
	require.Equal(t, video.Description, updated.Description)
	require.False(t, updated.UpdatedAt.Before(video.UpdatedAt))

	_, err = updater.UpdateFields(context.Background(), primitive.NewObjectID(), map[string]any{
		"title": "nobody home",
	})
	require.ErrorIs(t, err, repoDatabase.ErrNoDocument)
}

func TestIncrementField_ConcurrentCallsNeverLoseUpdates(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	writer := NewVideoWriter(db)
	counter := NewVideoCounter(db)

	id, err := writer.Insert(context.Background(), baseVideo(primitive.NewObjectID()))
	require.NoError(t, err)

	const workers = 20

	errs := make(chan error, workers)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := counter.IncrementField(context.Background(), id, "views", 1)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	got, err := NewVideoRetriever(db).GetByID(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, int64(workers), got.Views)
}

func TestIncrementField_UnknownID(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	_, err := NewVideoCounter(db).IncrementField(context.Background(),
		primitive.NewObjectID(), "views", 1)
	require.ErrorIs(t, err, repoDatabase.ErrNoDocument)
}

func TestRemove(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	writer := NewVideoWriter(db)
	remover := NewVideoRemover(db)

	id, err := writer.Insert(context.Background(), baseVideo(primitive.NewObjectID()))
	require.NoError(t, err)

	removed, err := remover.Remove(context.Background(), id)
	require.NoError(t, err)
	require.True(t, removed)

	removed, err = remover.Remove(context.Background(), id)
	require.NoError(t, err)
	require.False(t, removed)
}

func TestListVideos(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	writer := NewVideoWriter(db)
	aggregator := NewVideoAggregator(db)

	owner := insertUser(t, db, model.User{Username: "ada", FullName: "Ada L", Avatar: "http://img/ada"})
	other := insertUser(t, db, model.User{Username: "bob", FullName: "Bob M", Avatar: "http://img/bob"})

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := func(owner primitive.ObjectID, title string, published bool, age time.Duration) {
		v := baseVideo(owner)
		v.Title = title
		v.IsPublished = published
		v.CreatedAt = base.Add(-age)
		_, err := writer.Insert(context.Background(), v)
		require.NoError(t, err)
	}

	seed(owner, "golang concurrency patterns", true, 0)
	seed(owner, "cooking pasta", true, time.Hour)
	seed(owner, "hidden draft", false, 2*time.Hour)
	seed(other, "golang generics deep dive", true, 3*time.Hour)

	t.Run("published only, newest first", func(t *testing.T) {
		page, err := aggregator.ListVideos(context.Background(), dto.ListVideosQuery{})
		require.NoError(t, err)
		require.Equal(t, int64(3), page.TotalDocs)
		require.Len(t, page.Docs, 3)
		require.Equal(t, "golang concurrency patterns", page.Docs[0].Title)
		for _, doc := range page.Docs {
			require.True(t, doc.IsPublished)
		}
	})

	t.Run("owner join carries the summary", func(t *testing.T) {
		page, err := aggregator.ListVideos(context.Background(), dto.ListVideosQuery{Owner: &owner})
		require.NoError(t, err)
		require.Equal(t, int64(2), page.TotalDocs)
		for _, doc := range page.Docs {
			require.Equal(t, "ada", doc.Owner.Username)
			require.Equal(t, owner, doc.Owner.ID)
		}
	})

	t.Run("text query filters and scores", func(t *testing.T) {
		page, err := aggregator.ListVideos(context.Background(), dto.ListVideosQuery{Query: "golang"})
		require.NoError(t, err)
		require.Equal(t, int64(2), page.TotalDocs)
		for _, doc := range page.Docs {
			require.Contains(t, doc.Title, "golang")
			require.Greater(t, doc.Score, float64(0))
		}
	})

	t.Run("pagination flags", func(t *testing.T) {
		first, err := aggregator.ListVideos(context.Background(), dto.ListVideosQuery{Page: 1, Limit: 2})
		require.NoError(t, err)
		require.Len(t, first.Docs, 2)
		require.Equal(t, int64(2), first.TotalPages)
		require.True(t, first.HasNextPage)
		require.False(t, first.HasPrevPage)

		second, err := aggregator.ListVideos(context.Background(), dto.ListVideosQuery{Page: 2, Limit: 2})
		require.NoError(t, err)
		require.Len(t, second.Docs, 1)
		require.False(t, second.HasNextPage)
		require.True(t, second.HasPrevPage)
	})

	t.Run("page past the end is empty but well formed", func(t *testing.T) {
		page, err := aggregator.ListVideos(context.Background(), dto.ListVideosQuery{Page: 9, Limit: 2})
		require.NoError(t, err)
		require.Empty(t, page.Docs)
		require.Equal(t, int64(3), page.TotalDocs)
		require.False(t, page.HasNextPage)
		require.True(t, page.HasPrevPage)
	})

	t.Run("sort by views ascending", func(t *testing.T) {
		page, err := aggregator.ListVideos(context.Background(), dto.ListVideosQuery{
			SortBy: "views", SortType: "asc",
		})
		require.NoError(t, err)
		for i := 1; i < len(page.Docs); i++ {
			require.LessOrEqual(t, page.Docs[i-1].Views, page.Docs[i].Views)
		}
	})
}

func TestGetVideoDetail(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	writer := NewVideoWriter(db)
	aggregator := NewVideoAggregator(db)

	channel := insertUser(t, db, model.User{Username: "ada", FullName: "Ada L", Avatar: "http://img/ada"})
	fanOne := primitive.NewObjectID()
	fanTwo := primitive.NewObjectID()

	video := baseVideo(channel)
	id, err := writer.Insert(context.Background(), video)
	require.NoError(t, err)

	insertLike(t, db, id, fanOne)
	insertLike(t, db, id, fanTwo)
	insertSubscription(t, db, channel, fanOne)

	t.Run("viewer who liked and subscribed", func(t *testing.T) {
		detail, err := aggregator.GetVideoDetail(context.Background(), id, &fanOne)
		require.NoError(t, err)
		require.NotNil(t, detail)
		require.Equal(t, int64(2), detail.TotalLikes)
		require.True(t, detail.IsLiked)
		require.Equal(t, "ada", detail.Owner.Username)
		require.Equal(t, int64(1), detail.Owner.SubscribersCount)
		require.True(t, detail.Owner.IsSubscribed)
	})

	t.Run("viewer who liked but did not subscribe", func(t *testing.T) {
		detail, err := aggregator.GetVideoDetail(context.Background(), id, &fanTwo)
		require.NoError(t, err)
		require.True(t, detail.IsLiked)
		require.False(t, detail.Owner.IsSubscribed)
	})

	t.Run("anonymous viewer gets false flags", func(t *testing.T) {
		detail, err := aggregator.GetVideoDetail(context.Background(), id, nil)
		require.NoError(t, err)
		require.Equal(t, int64(2), detail.TotalLikes)
		require.False(t, detail.IsLiked)
		require.Equal(t, int64(1), detail.Owner.SubscribersCount)
		require.False(t, detail.Owner.IsSubscribed)
	})

	t.Run("unknown id yields no detail and no error", func(t *testing.T) {
		detail, err := aggregator.GetVideoDetail(context.Background(), primitive.NewObjectID(), nil)
		require.NoError(t, err)
		require.Nil(t, detail)
	})
}
