package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zhouzirui/mindchat/backend/internal/config"
	"github.com/zhouzirui/mindchat/backend/internal/handler"
	"github.com/zhouzirui/mindchat/backend/internal/model/persona"
	"github.com/zhouzirui/mindchat/backend/internal/service/ai"
	"github.com/zhouzirui/mindchat/backend/internal/service/chat"
	"github.com/zhouzirui/mindchat/backend/pkg/log"
	"github.com/zhouzirui/mindchat/backend/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env is fine; the process environment still applies.
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		_ = log.Init("info", "json")
		log.Fatalw("failed to load configuration", "error", err)
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalw("failed to initialize logger", "error", err)
	}
	defer log.Sync()

	if envErr != nil {
		log.Warnw("no .env file loaded, using process environment only", "error", envErr)
	}

	personaStore := persona.NewMemoryStore(persona.Seed())
	activePersona, ok := personaStore.FindByID(persona.DefaultID)
	if !ok {
		log.Fatalw("default persona missing", "persona", persona.DefaultID)
	}

	var completer chat.Completer
	if aiService, err := newAIService(ctx, cfg.AI, activePersona); err != nil {
		log.Warnw("continuing without completion service, chat requests will fail", "provider", cfg.AI.Provider, "error", err)
	} else {
		completer = aiService
		log.Infow("completion service initialized", "provider", cfg.AI.Provider, "model", cfg.AI.Model)
	}
	if !cfg.AI.Enabled() {
		log.Warnw("completion credential not configured", "provider", cfg.AI.Provider)
	}

	chatService := chat.NewService(completer)
	router := handler.NewRouter(personaStore, persona.DefaultID, chatService, web.Static())

	startServer(ctx, cfg.Server, router)
}

func newAIService(ctx context.Context, cfg config.AIConfig, p persona.Persona) (*ai.Service, error) {
	chatModel, err := ai.NewChatModel(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return ai.NewService(ctx, chatModel, p)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Infow("chat relay listening", "addr", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalw("server error", "error", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
