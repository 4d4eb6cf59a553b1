package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"vidtube"
	"vidtube/config"
	"vidtube/internal/application/usecase"
	"vidtube/internal/infrastructure/broker"
	"vidtube/internal/infrastructure/database"
	"vidtube/internal/infrastructure/minio"
	"vidtube/internal/presentation/handler"
	"vidtube/internal/presentation/middleware"
	"vidtube/pkg/logger"
)

func HandleRun(args []string) {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	logger.Info("running vidtube", "version", vidtube.StringVersion())

	brokerClient, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}

	brokerPublisher := broker.NewPublisher(brokerClient, cfg.PublisherConfig)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}

	videoWriter := database.NewVideoWriter(db)
	videoRetriever := database.NewVideoRetriever(db)
	videoUpdater := database.NewVideoUpdater(db)
	videoCounter := database.NewVideoCounter(db)
	videoRemover := database.NewVideoRemover(db)
	videoAggregator := database.NewVideoAggregator(db)

	minioClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	if err := minioClient.EnsureBucket(context.Background(), cfg.MinIOUploader.Bucket); err != nil {
		ExitOnError(err)
	}

	blobUploader := minio.NewUploader(minioClient, &cfg.MinIOUploader)
	blobRemover := minio.NewRemover(minioClient, &cfg.MinIORemover)

	listHandler := handler.NewListHandler(usecase.NewLister(videoAggregator))
	getHandler := handler.NewGetHandler(usecase.NewGetter(videoAggregator))
	publishHandler := handler.NewPublishHandler(usecase.NewCreator(
		videoWriter, videoRetriever, videoRemover, blobUploader, blobRemover, brokerPublisher))
	editor := usecase.NewEditor(videoRetriever, videoUpdater, blobUploader, blobRemover)
	updateHandler := handler.NewUpdateHandler(editor)
	toggleHandler := handler.NewToggleHandler(editor)
	viewsHandler := handler.NewViewsHandler(usecase.NewCounter(videoCounter))
	deleteHandler := handler.NewDeleteHandler(usecase.NewDeleter(
		videoRetriever, videoRemover, blobRemover, brokerPublisher))

	e := echo.New()
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodPatch, http.MethodDelete, http.MethodHead, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("500M"))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(20)))
	e.Use(middleware.Identity())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	videos := e.Group("/api/v1/videos")
	videos.GET("", listHandler.HandleList)
	videos.GET("/:videoId", getHandler.HandleGet)
	videos.POST("", publishHandler.HandlePublish, middleware.RequireIdentity())
	videos.PATCH("/:videoId", updateHandler.HandleUpdate, middleware.RequireIdentity())
	videos.DELETE("/:videoId", deleteHandler.HandleDelete, middleware.RequireIdentity())
	videos.PATCH("/toggle/publish/:videoId", toggleHandler.HandleToggle, middleware.RequireIdentity())
	videos.PATCH("/views/:videoId", viewsHandler.HandleIncrement)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTPServer.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		ExitOnError(err)
	}

	if err := db.Stop(); err != nil {
		logger.Error("couldn't stop db instance", "err", err)
	}
	if err := brokerClient.Close(); err != nil {
		logger.Error("couldn't close broker client", "err", err)
	}
}
