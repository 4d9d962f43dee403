package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio/database"
	"portfolio/handlers"
	"portfolio/logger"
	"portfolio/mailer"
	"portfolio/media"
	"portfolio/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	log := logger.New()
	handlers.SetLogger(log)

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	var dbErr error
	for i := 1; i <= 3; i++ {
		if dbErr = database.ConnectMongo(); dbErr == nil {
			break
		}
		log.Warn().Err(dbErr).Int("attempt", i).Msg("mongodb connection failed")
		time.Sleep(2 * time.Second)
	}
	if dbErr != nil {
		log.Fatal().Err(dbErr).Msg("could not connect to mongodb")
	}
	log.Info().Msg("mongodb connected")

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	created, err := database.EnsureAdminUser(seedCtx)
	cancelSeed()
	if err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}
	if created {
		log.Info().Msg("admin user created")
	}

	uploader, err := media.New()
	if err != nil {
		log.Warn().Err(err).Msg("media uploads disabled, CLOUDINARY_URL not usable")
	} else {
		handlers.SetUploader(uploader)
	}

	mail := mailer.NewFromEnv()
	if !mail.Enabled() {
		log.Warn().Msg("email replies disabled, SMTP_HOST not set")
	}
	handlers.SetMailer(mail)

	if os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", port).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	if err := database.DisconnectMongo(); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect failed")
	}
	log.Info().Msg("server stopped")
}
