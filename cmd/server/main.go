package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/habeshadev/habesha-dating-api/internal/auth"
	"github.com/habeshadev/habesha-dating-api/internal/config"
	"github.com/habeshadev/habesha-dating-api/internal/database"
	"github.com/habeshadev/habesha-dating-api/internal/handler"
	"github.com/habeshadev/habesha-dating-api/internal/repository"
	"github.com/habeshadev/habesha-dating-api/internal/security"
	"github.com/habeshadev/habesha-dating-api/internal/usecase"
	"github.com/habeshadev/habesha-dating-api/internal/validation"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Err(err).Msg("no .env file loaded")
	}

	cfg := config.New(&logger)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	client, err := database.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	db := client.Database(cfg.MongoDatabase)

	userRepo := repository.NewUserMongoRepository(ctx, &logger, db)
	profileRepo := repository.NewProfileMongoRepository(ctx, &logger, db)

	hasher, err := security.NewHasher(cfg.PasswordHasher, cfg.BcryptCost)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create password hasher")
	}

	validator, err := validation.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create validator")
	}

	jwtAuth := auth.NewJWTAuthenticator(cfg.TokenAudience, cfg.TokenIssuer)

	authUsecase := usecase.NewAuthUsecase(userRepo, hasher, jwtAuth, cfg)
	profileUsecase := usecase.NewProfileUsecase(profileRepo)

	authHandler := handler.NewAuthHandler(authUsecase, validator, &logger)
	profileHandler := handler.NewProfileHandler(profileUsecase, validator, &logger)

	router := handler.NewRouter(authHandler, profileHandler, jwtAuth, cfg.JWTSecret, &logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Str("addr", addr).Msg("server started")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		logger.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped with error")
	}

	logger.Info().Msg("server gracefully stopped")
}
