// webhook-listener is a minimal server that receives Prelude webhook
// deliveries, verifies their signature and logs the classified events.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/AndreaAlhena/prelude-sdk/config"
	"github.com/AndreaAlhena/prelude-sdk/logging"
	"github.com/AndreaAlhena/prelude-sdk/webhook"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Init("webhook-listener", cfg.LogLevel, cfg.AppEnv)

	service := webhook.NewService()
	handler := webhook.NewHandler(service, cfg.WebhookSecret, handleEvent)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Method(http.MethodPost, "/webhooks/prelude", handler)

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server started", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func handleEvent(r *http.Request, result *webhook.Result) error {
	log := logging.FromContext(r.Context())

	switch p := result.Payload.(type) {
	case *webhook.VerifyPayload:
		log.Info("verify event",
			"type", result.Event.Type(),
			"verification_id", p.VerificationID(),
			"status", p.Status(),
			"target", p.Target(),
		)
	case *webhook.TransactionalPayload:
		log.Info("transactional event",
			"type", result.Event.Type(),
			"message_id", p.MessageID(),
			"status", p.Status(),
			"segments", p.SegmentCount(),
		)
	case *webhook.GenericPayload:
		log.Info("generic event", "type", result.Event.Type(), "payload", p.Data())
	}
	return nil
}
