package app

import (
	"net/http"

	"github.com/goccy/go-json"
	datastar "github.com/starfederation/datastar/sdk/go"

	"github.com/jrschumacher/jwtinspect/components"
	"github.com/jrschumacher/jwtinspect/internal/logger"
)

// inspectSignals are merged back into the page after each inspection.
type inspectSignals struct {
	Provider string `json:"provider"`
	Error    string `json:"error"`
}

// InspectStreamHandler re-renders the inspection fragment over SSE whenever the
// page's token signal changes.
func (r *Router) InspectStreamHandler(w http.ResponseWriter, req *http.Request) {
	raw, err := readToken(w, req)
	if err != nil {
		http.Error(w, "Bad request", http.StatusBadRequest)
		return
	}

	m, errMsg := r.inspect(raw)

	sse := datastar.NewSSE(w, req)
	if err := sse.MergeFragmentTempl(
		components.Inspection(m, errMsg),
		datastar.WithSelectorID(components.InspectionID),
	); err != nil {
		logger.Error("Failed to merge inspection fragment", "error", err)
		return
	}

	signals := inspectSignals{Error: errMsg}
	if !m.Empty() {
		signals.Provider = m.Provider.String()
	}
	signalsJSON, err := json.Marshal(signals)
	if err != nil {
		logger.Error("Failed to marshal signals", "error", err)
		return
	}
	if err := sse.MergeSignals(signalsJSON); err != nil {
		logger.Error("Failed to merge signals", "error", err)
	}
}
