package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/abhisek/casetrack/internal/cases"
)

// CaseSummary describes a catalog template without instantiating it.
type CaseSummary struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	Category   cases.Category     `json:"category"`
	Difficulty cases.Difficulty   `json:"difficulty"`
	Decision   cases.DecisionKind `json:"decision"`
	TimeLimit  int                `json:"timeLimit"`
}

func summarize(t *cases.Template) CaseSummary {
	return CaseSummary{
		ID:         t.ID,
		Title:      t.Title,
		Category:   t.Category,
		Difficulty: t.Difficulty,
		Decision:   t.Decision.Kind,
		TimeLimit:  t.TimeLimit,
	}
}

func handleListCases(catalog *cases.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates := catalog.All()
		if d := r.URL.Query().Get("difficulty"); d != "" {
			diff, err := cases.ParseDifficulty(d)
			if err != nil {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			templates = catalog.ByDifficulty(diff)
		}
		out := make([]CaseSummary, 0, len(templates))
		for _, t := range templates {
			out = append(out, summarize(t))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// handlePreviewCase instantiates a template with the given seed, truth
// included. It does not touch the live game.
func handlePreviewCase(catalog *cases.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t, ok := catalog.Get(chi.URLParam(r, "id"))
		if !ok {
			writeError(w, http.StatusNotFound, "case not found")
			return
		}
		seed := uint64(1)
		if raw := r.URL.Query().Get("seed"); raw != "" {
			v, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				writeError(w, http.StatusBadRequest, "seed must be an unsigned 32-bit integer")
				return
			}
			seed = v
		}
		writeJSON(w, http.StatusOK, cases.Generate(t, uint32(seed)))
	}
}
