package server

import (
	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, opts Options, hub *Hub) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("casetrack API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(opts.Logger, opts.DB))
	r.Get("/ws", handleWS(hub, opts.Engine, opts.Logger))

	r.Route("/api/game", func(r chi.Router) {
		r.Get("/state", handleGameState(opts.Engine))
		r.Post("/actions", handleAction(opts.Engine))
		r.Post("/reset", handleReset(opts.Engine))
		r.Get("/events", handleEvents(opts.Engine))
	})

	r.Get("/api/cases", handleListCases(opts.Catalog))
	r.Get("/api/cases/{id}/preview", handlePreviewCase(opts.Catalog))

	r.Post("/api/coach/hint", handleHint(opts.Engine, opts.Coach))
	r.Post("/api/coach/peek", handlePeek(opts.Engine, opts.Coach))
}
