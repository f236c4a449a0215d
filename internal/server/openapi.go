package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/abhisek/casetrack/internal/cases"
	"github.com/abhisek/casetrack/internal/coach"
	"github.com/abhisek/casetrack/internal/game"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ActionRequest documents the action envelope. For SUBMIT_ANSWER the
// payload may be {"input": "<typed answer>"} instead of the decoded
// {"answer", "choice"} form.
type ActionRequest struct {
	Type    string         `json:"type" required:"true" enum:"START_GAME,START_TURN,CHOOSE_DIFFICULTY,SUBMIT_ANSWER,EXPIRE_TIMER,APPLY_GRADING,SHOW_RESULTS,RESOLVE_EVENT,CHOOSE_EVENT_OPTION,CONTINUE_EVENT,CHOOSE_FORK_PATH,END_TURN,USE_ADD60,USE_GOOGLE_PEEK,USE_HINT,RESET_GAME"`
	Payload map[string]any `json:"payload,omitempty"`
}

type previewPath struct {
	ID   string `path:"id"`
	Seed uint32 `query:"seed" description:"Sampling seed, default 1"`
}

type listCasesQuery struct {
	Difficulty string `query:"difficulty" enum:"quick,full"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "casetrack API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Pass-the-device consulting case board game.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /api/game/state
	getState, _ := r.NewOperationContext(http.MethodGet, "/api/game/state")
	getState.SetSummary("Get game state")
	getState.AddRespStructure(game.State{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getState)

	// POST /api/game/actions
	postAction, _ := r.NewOperationContext(http.MethodPost, "/api/game/actions")
	postAction.SetSummary("Dispatch an action")
	postAction.SetDescription("Applies one action and returns the new state. An action that does not apply in the current phase returns 409 with the unchanged state.")
	postAction.AddReqStructure(ActionRequest{})
	postAction.AddRespStructure(game.State{}, openapi.WithHTTPStatus(http.StatusOK))
	postAction.AddRespStructure(game.State{}, openapi.WithHTTPStatus(http.StatusConflict))
	postAction.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postAction)

	// POST /api/game/reset
	postReset, _ := r.NewOperationContext(http.MethodPost, "/api/game/reset")
	postReset.SetSummary("Reset the game")
	postReset.AddRespStructure(game.State{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(postReset)

	// GET /api/game/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/game/events")
	getEvents.SetSummary("SSE state stream")
	getEvents.SetDescription("Server-Sent Events: one \"state\" event per change, starting with the current state.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /ws
	getWS, _ := r.NewOperationContext(http.MethodGet, "/ws")
	getWS.SetSummary("WebSocket state stream")
	getWS.SetDescription("Streams {type: state} frames. Incoming frames are action envelopes.")
	getWS.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWS)

	// GET /api/cases
	listCases, _ := r.NewOperationContext(http.MethodGet, "/api/cases")
	listCases.SetSummary("List case templates")
	listCases.AddReqStructure(listCasesQuery{})
	listCases.AddRespStructure([]CaseSummary{}, openapi.WithHTTPStatus(http.StatusOK))
	listCases.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(listCases)

	// GET /api/cases/{id}/preview
	preview, _ := r.NewOperationContext(http.MethodGet, "/api/cases/{id}/preview")
	preview.SetSummary("Preview a case")
	preview.SetDescription("Instantiates a template with a seed. The truth is included.")
	preview.AddReqStructure(previewPath{})
	preview.AddRespStructure(cases.PromptInstance{}, openapi.WithHTTPStatus(http.StatusOK))
	preview.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(preview)

	// POST /api/coach/hint
	postHint, _ := r.NewOperationContext(http.MethodPost, "/api/coach/hint")
	postHint.SetSummary("Hint for the current prompt")
	postHint.SetDescription("Available after USE_HINT on the current prompt.")
	postHint.AddRespStructure(coach.Hint{}, openapi.WithHTTPStatus(http.StatusOK))
	postHint.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postHint)

	// POST /api/coach/peek
	postPeek, _ := r.NewOperationContext(http.MethodPost, "/api/coach/peek")
	postPeek.SetSummary("Approach for the current prompt")
	postPeek.SetDescription("Available after USE_GOOGLE_PEEK on the current prompt.")
	postPeek.AddRespStructure(coach.Peek{}, openapi.WithHTTPStatus(http.StatusOK))
	postPeek.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusConflict))
	_ = r.AddOperation(postPeek)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
