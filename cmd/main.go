package main

import (
	"context"
	"errors"
	"file-storage-server/config"
	_ "file-storage-server/docs"
	"file-storage-server/internal/handler"
	"file-storage-server/internal/platform"
	"file-storage-server/internal/repository"
	"file-storage-server/internal/security"
	"file-storage-server/internal/service"
	"file-storage-server/internal/util"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title File-storage-server
// @version 1.0
// @description REST API облачного хранилища файлов: вход по одноразовому коду, загрузка, поиск, доступ и удаление файлов

// @host localhost:8080

// @securityDefinitions.apikey SessionCookie
// @in header
// @name Cookie
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// до чтения конфигурации пишем только в stdout
	_ = util.InitLogger(&config.LoggingConfig{Level: "info"})

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		util.Sugar.Fatalw("ошибка загрузки конфигурации", "path", configPath, "error", err)
	}

	if err := util.InitLogger(&cfg.Logging); err != nil {
		util.Sugar.Fatalw("ошибка настройки логгера", "error", err)
	}
	defer func() { _ = util.Logger.Sync() }()

	db, err := config.SetupDatabase(&cfg.Database)
	if err != nil {
		util.Sugar.Fatalw("не удалось подключиться к БД", "error", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			util.Sugar.Warnw("ошибка при закрытии БД", "error", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.Redis)
	if err != nil {
		util.Sugar.Fatalw("ошибка подключения к Redis", "error", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			util.Sugar.Warnw("ошибка при закрытии Redis", "error", err)
		}
	}()

	storage, err := platform.NewS3Storage(ctx, &cfg.S3, cfg.Platform.BucketID)
	if err != nil {
		util.Sugar.Fatalw("ошибка создания S3 хранилища", "error", err)
	}

	srv, router := config.SetupServer(cfg.Server.Addr)

	fileRepo := repository.NewFileRepository(db, cfg.Platform.FilesCollectionID)
	userRepo := repository.NewUserRepository(db, cfg.Platform.UsersCollectionID)
	accountRepo := repository.NewAccountRepository(db, cfg.Platform.AccountsCollectionID)
	sessionRepo := repository.NewSessionRepository(redisClient)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.Limits.CacheTTL)*time.Second)

	clients := platform.NewFactory(platform.Dependencies{
		Platform: cfg.Platform,
		Session:  cfg.Session,
		OTP:      cfg.OTP,
		Accounts: accountRepo,
		Sessions: sessionRepo,
		Mailer:   platform.NewMailer(cfg.SMTP, config.Duration(cfg.OTP.TTL)),
		Files:    fileRepo,
		Users:    userRepo,
		Storage:  storage,
	})

	userService := service.NewUserService(clients)
	fileService := service.NewFileService(clients, userService, cacheRepo, cacheRepo, cfg.Platform, cfg.Limits)

	authHandler := handler.NewAuthHandler(userService, cfg.Cookie, cfg.Server.SignInPath)
	fileHandler := handler.NewFileHandler(fileService, cfg.Limits)
	storageHandler := handler.NewStorageHandler(fileService, cfg.Platform.BucketID)

	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(security.SessionMiddleware(cfg.Cookie.Name))
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	otpLimiter := security.NewIPRateLimiter(cfg.OTP.PerMinute)

	setupAuthRoutes(router, authHandler, otpLimiter)
	setupFileRoutes(router, fileHandler, userService)
	setupStorageRoutes(router, storageHandler)

	runServer(ctx, srv, config.Duration(cfg.Server.ShutdownTimeout))
}

func setupAuthRoutes(r chi.Router, h *handler.AuthHandler, limiter *security.IPRateLimiter) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/sign-up", h.SignUp)
			r.Post("/sign-in", h.SignIn)
			r.Post("/verify", h.Verify)
		})
		r.Get("/me", h.Me)
		r.Post("/sign-out", h.SignOut)
	})
}

func setupFileRoutes(r chi.Router, h *handler.FileHandler, users *service.UserService) {
	r.Route("/api/files", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/types/{type}", h.ListByType)

		r.Group(func(r chi.Router) {
			r.Use(security.RequireUser(users))
			r.Post("/", h.Upload)
			r.Get("/usage", h.Usage)

			r.Route("/{fileId}", func(r chi.Router) {
				r.Get("/", h.Get)
				r.Put("/name", h.Rename)
				r.Put("/users", h.Share)
				r.Delete("/", h.Delete)
			})
		})
	})

	r.Get("/api/routes/revalidated", h.Revalidated)
}

func setupStorageRoutes(r chi.Router, h *handler.StorageHandler) {
	r.Get("/storage/buckets/{bucketId}/files/{fileId}/view", h.View)
}

func runServer(ctx context.Context, server *http.Server, shutdownTimeout time.Duration) {
	serverErrors := make(chan error, 1)

	go func() {
		util.Logger.Info("сервер запущен", zap.String("addr", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			util.Sugar.Fatalw("ошибка работы сервера", "error", err)
		}
	case sig := <-signalChannel:
		util.Logger.Info("получен сигнал остановки работы сервера", zap.String("signal", sig.String()))
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, shutdownTimeout)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		util.Sugar.Warnw("ошибка при остановке сервера", "error", err)
	} else {
		util.Logger.Info("сервер успешно остановлен")
	}
}
