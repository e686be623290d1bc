// Package httpapi exposes the puzzle solver over HTTP.
package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/lumigrid/lumigrid/lightsout"
)

// solveRequest is the wire shape of a solve call.
type solveRequest struct {
	Board      boardPayload `json:"board"`
	Difficulty string       `json:"difficulty"`
}

// boardPayload accepts the two board encodings the frontends send:
// a flat array of tile values, or an array of rows.
type boardPayload struct {
	tiles []int
}

func (b *boardPayload) UnmarshalJSON(data []byte) error {
	var flat []int
	if err := json.Unmarshal(data, &flat); err == nil {
		b.tiles = flat
		return nil
	}
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	b.tiles = lightsout.Flatten(rows)
	return nil
}

// solveResponse is the wire envelope. SolutionSteps marshals as null when
// the solve failed, and as a (possibly empty) array otherwise.
type solveResponse struct {
	SolutionSteps []lightsout.Step `json:"solution_steps"`
}

// Handler serves the solver endpoints.
type Handler struct {
	solver *lightsout.Solver
	log    *logrus.Logger
}

// NewHandler wires a solver and a logger into an HTTP handler set.
func NewHandler(solver *lightsout.Solver, log *logrus.Logger) *Handler {
	return &Handler{solver: solver, log: log}
}

// Register mounts the API routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/solve", h.handleSolve)
}

// handleSolve decodes a puzzle, solves it, and answers with the press list.
// Any solve failure collapses to the null marker on the wire; the cause is
// logged server-side.
func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeStatus(w, http.StatusMethodNotAllowed, `{"error":"method not allowed"}`)
		return
	}

	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeStatus(w, http.StatusBadRequest, `{"error":"malformed request body"}`)
		return
	}

	steps, err := h.solver.Solve(req.Board.tiles, lightsout.Difficulty(req.Difficulty))
	if err != nil {
		h.log.WithFields(logrus.Fields{
			"difficulty": req.Difficulty,
			"tiles":      len(req.Board.tiles),
		}).WithError(err).Warn("solve failed")
		writeJSON(w, solveResponse{})
		return
	}

	h.log.WithFields(logrus.Fields{
		"difficulty": req.Difficulty,
		"tiles":      len(req.Board.tiles),
		"steps":      len(steps),
	}).Info("solve completed")
	writeJSON(w, solveResponse{SolutionSteps: steps})
}

// writeJSON emits v with a 200 status.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(v)
}

// writeStatus emits a small fixed JSON body with the given status code.
func writeStatus(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = io.WriteString(w, body+"\n")
}
