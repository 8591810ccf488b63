package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // 确保在精简镜像中也能识别时区

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/user/filmhub/internal/config"
	"github.com/user/filmhub/internal/external"
	"github.com/user/filmhub/internal/handler"
	"github.com/user/filmhub/internal/repository"
	"github.com/user/filmhub/internal/router"
	"github.com/user/filmhub/internal/service"
)

func main() {
	envErr := godotenv.Load()
	cfg := config.Load()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       "filmhub",
		Level:      hclog.LevelFromString(cfg.LogLevel),
		JSONFormat: cfg.IsProduction(),
	})
	if envErr != nil {
		logger.Info("未找到 .env 文件，使用系统环境变量")
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("服务异常退出", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger hclog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repository.InitDB(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	sqlDB, _ := db.DB()
	defer sqlDB.Close()

	if cfg.AutoMigrate {
		if err := repository.AutoMigrate(db); err != nil {
			return err
		}
	}
	repos := repository.NewRepositories(db)

	store, err := newMediaStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	if cfg.Identity.Domain == "" {
		logger.Warn("未配置 AUTH0_DOMAIN，用户资料接口将不可用")
	}
	users := external.NewCachedDirectory(external.NewIdentityClient(cfg.Identity), cfg.Identity.CacheTTL, logger)
	hub := external.NewHub(cfg.CORSOrigins, logger)
	defer hub.Close()

	episodes := service.NewEpisodeService(repos, store, logger)
	histories := service.NewWatchHistoryService(repos, logger)
	h := handler.NewHandler(handler.Services{
		Movie:        service.NewMovieService(repos, episodes, histories, store, logger),
		Episode:      episodes,
		Genre:        service.NewGenreService(repos),
		BlogPost:     service.NewBlogPostService(repos, store, logger),
		BlogTag:      service.NewBlogTagService(repos),
		Post:         service.NewPostService(repos, store, logger),
		Tag:          service.NewTagService(repos),
		Comment:      service.NewCommentService(repos, users, logger),
		WatchHistory: histories,
		User:         service.NewUserService(repos, users),
		Notification: service.NewNotificationService(repos, hub, logger),
		Order:        service.NewOrderService(repos, external.NewStripeGateway(cfg.Stripe), logger),
		Statistic:    service.NewStatisticService(repos),
	}, hub, logger)

	service.NewCleanupService(repos, logger).Start(ctx, 24*time.Hour)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router.New(cfg, h, logger),
		ReadTimeout:    2 * time.Minute,
		WriteTimeout:   cfg.Upload.Timeout + 30*time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("服务器启动", "addr", "http://localhost:"+cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("正在关闭服务器...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("服务器已退出")
	return nil
}

// newMediaStore 配置了上传服务时优先使用，S3 用于直传和删除
func newMediaStore(ctx context.Context, cfg *config.Config, logger hclog.Logger) (*external.MediaStore, error) {
	var uploader *external.UploadClient
	if cfg.Upload.BaseURL != "" {
		uploader = external.NewUploadClient(cfg.Upload.BaseURL, cfg.Upload.Timeout)
	}
	var objects *external.S3Store
	if cfg.S3.Bucket != "" {
		s3Store, err := external.NewS3Store(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		objects = s3Store
	}
	if uploader == nil && objects == nil {
		logger.Warn("未配置 UPLOAD_SERVICE_URL 或 S3_BUCKET，文件上传将失败")
	}
	return external.NewMediaStore(uploader, objects, logger), nil
}
