package handler

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/zhouzirui/mindchat/backend/internal/handler/chat"
	"github.com/zhouzirui/mindchat/backend/internal/handler/persona"
	middlewarePkg "github.com/zhouzirui/mindchat/backend/internal/middleware"
	personaModel "github.com/zhouzirui/mindchat/backend/internal/model/persona"
)

// NewRouter wires HTTP routes to core services. static is served as-is at the root.
func NewRouter(personas personaModel.Store, personaID string, relay chat.Relayer, static fs.FS) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewarePkg.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	personaHandler := persona.New(personas, personaID)
	chatHandler := chat.New(relay)

	r.Route("/api", func(api chi.Router) {
		personaHandler.RegisterRoutes(api)
		chatHandler.RegisterRoutes(api)
	})

	if static != nil {
		r.Handle("/*", http.FileServer(http.FS(static)))
	}

	return r
}
