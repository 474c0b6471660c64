// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_hanviet_learn/internal/config"
	"go_hanviet_learn/internal/handlers"
	"go_hanviet_learn/internal/middleware"
	"go_hanviet_learn/internal/model"
	"go_hanviet_learn/internal/repository"
	"go_hanviet_learn/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// DB接続 (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// スキーマを最新化
	if err := db.AutoMigrate(
		&model.User{},
		&model.UserVerificationToken{},
		&model.PasswordResetToken{},
		&model.Vocab{},
		&model.Lesson{},
		&model.Sentence{},
		&model.ReadingUnit{},
		&model.ReadingQuestion{},
		&model.Session{},
		&model.Answer{},
		&model.ImportLog{},
	); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	userRepo := repository.NewGormUserRepository()
	tokenRepo := repository.NewGormTokenRepository()
	vocabRepo := repository.NewGormVocabRepository()
	lessonRepo := repository.NewGormLessonRepository()
	sentenceRepo := repository.NewGormSentenceRepository()
	unitRepo := repository.NewGormReadingUnitRepository()
	questionRepo := repository.NewGormReadingQuestionRepository()
	sessionRepo := repository.NewGormSessionRepository()
	answerRepo := repository.NewGormAnswerRepository()
	importLogRepo := repository.NewGormImportLogRepository()

	mailer := service.NewMailer(&config.Cfg)
	generator := service.NewSentenceGeneratorService(db, unitRepo, lessonRepo, &config.Cfg)

	authService := service.NewAuthService(db, userRepo, tokenRepo, mailer, &config.Cfg)
	vocabService := service.NewVocabService(db, vocabRepo)
	lessonService := service.NewLessonService(db, lessonRepo, sentenceRepo, generator, &config.Cfg)
	readingService := service.NewReadingService(db, unitRepo, questionRepo)
	sessionService := service.NewSessionService(db, sessionRepo, answerRepo, &config.Cfg)
	testService := service.NewTestService(db, vocabRepo, sentenceRepo, questionRepo, sessionRepo, answerRepo, generator, &config.Cfg, nil)
	importService := service.NewImportService(db, vocabRepo, unitRepo, questionRepo, importLogRepo)

	authHandler := handlers.NewAuthHandler(authService)
	vocabHandler := handlers.NewVocabHandler(vocabService)
	lessonHandler := handlers.NewLessonHandler(lessonService)
	readingHandler := handlers.NewReadingHandler(readingService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	testHandler := handlers.NewTestHandler(testService)
	importHandler := handlers.NewImportHandler(importService)

	// Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	r.Use(cors.New(corsOptions).Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	jwtAuth := middleware.JWTAuthMiddleware(&config.Cfg)
	adminOnly := middleware.AdminOnlyMiddleware(db, userRepo)

	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Get("/verify", authHandler.VerifyAccount)
			r.Post("/login", authHandler.Login)
			r.Post("/forgot-password", authHandler.RequestPasswordReset)
			r.Post("/reset-password", authHandler.ResetPassword)
		})

		// 閲覧系は認証不要
		r.Get("/vocabs", vocabHandler.GetVocabs)
		r.Get("/vocabs/tags", vocabHandler.GetTagCounts)
		r.Get("/vocabs/{vocab_id}", vocabHandler.GetVocab)
		r.Get("/lessons", lessonHandler.GetLessons)
		r.Get("/lessons/tags", lessonHandler.GetTagCounts)
		r.Get("/lessons/{lesson_id}", lessonHandler.GetLesson)
		r.Get("/sentences", lessonHandler.GetSentences)
		r.Get("/reading-units", readingHandler.GetUnits)
		r.Get("/reading-units/tags", readingHandler.GetTagCounts)
		r.Get("/reading-units/{unit_id}", readingHandler.GetUnit)
		r.Get("/reading-units/{unit_id}/questions", readingHandler.GetQuestions)
		r.Post("/reading-units/{unit_id}/grade", readingHandler.GradeUnit)

		// --- Protected routes (require JWT) ---
		r.Group(func(r chi.Router) {
			r.Use(jwtAuth)

			r.Get("/auth/me", authHandler.GetMe)

			r.Post("/vocabs", vocabHandler.PostVocab)
			r.Patch("/vocabs/{vocab_id}", vocabHandler.PatchVocab)
			r.Delete("/vocabs/{vocab_id}", vocabHandler.DeleteVocab)

			r.Post("/lessons", lessonHandler.PostLesson)
			r.Post("/lessons/{lesson_id}/sentences", lessonHandler.PostSentence)

			r.Post("/reading-units", readingHandler.PostUnit)
			r.Delete("/reading-units/{unit_id}", readingHandler.DeleteUnit)
			r.Post("/reading-units/{unit_id}/questions", readingHandler.PostQuestion)

			r.Route("/tests", func(r chi.Router) {
				r.Post("/", testHandler.PostTest)
				r.Post("/{session_id}/submit", testHandler.SubmitTest)
			})

			r.Route("/sessions", func(r chi.Router) {
				r.Post("/", sessionHandler.PostSession)
				r.Get("/", sessionHandler.GetSessions)
				r.Post("/answers", sessionHandler.PostAnswer)
				r.Get("/{session_id}", sessionHandler.GetSession)
				r.Post("/{session_id}/complete", sessionHandler.CompleteSession)
			})

			r.Get("/progress", sessionHandler.GetProgress)

			// --- Admin routes ---
			r.Route("/admin/import", func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/vocabulary", importHandler.ImportVocabulary)
				r.Post("/reading-units", importHandler.ImportReadingUnits)
				r.Get("/logs", importHandler.GetImportLogs)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
