package httpadapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"svw.info/starbattle/internal/domain"
	"svw.info/starbattle/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/save", h.handleSave)
	mux.HandleFunc("/api/load", h.handleLoad)
	mux.HandleFunc("/api/list", h.handleList)
}

// stateReq carries a definition plus the current marks; an absent grid means
// an all-empty board.
type stateReq struct {
	Def  domain.PuzzleDef    `json:"def"`
	Grid [][]domain.CellMark `json:"grid,omitempty"`
}

// buildState validates the definition and assembles a State, reporting the
// structural issues instead of repairing anything.
func (h *Handler) buildState(r *http.Request, req *stateReq) (*domain.State, []domain.Issue, error) {
	issues, err := h.UC.ValidateRegions(r.Context(), &req.Def)
	if err != nil {
		return nil, nil, err
	}
	if len(issues) > 0 {
		return nil, issues, nil
	}
	s := domain.NewState(&req.Def)
	if req.Grid != nil {
		if len(req.Grid) != req.Def.Size {
			return nil, []domain.Issue{{Message: fmt.Sprintf("grid has %d rows, want %d", len(req.Grid), req.Def.Size)}}, nil
		}
		for i, row := range req.Grid {
			if len(row) != req.Def.Size {
				return nil, []domain.Issue{{Message: fmt.Sprintf("grid row %d has %d cells, want %d", i, len(row), req.Def.Size)}}, nil
			}
		}
		s.Grid = req.Grid
	}
	return s, nil, nil
}

// ---- Solve ----

type solveResp struct {
	Found      bool           `json:"found"`
	Hint       *domain.Hint   `json:"hint,omitempty"`
	Issues     []domain.Issue `json:"issues,omitempty"`
	Deductions int            `json:"deductions,omitempty"`
	DurationMs int64          `json:"durationMs,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req stateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	s, issues, err := h.buildState(r, &req)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	if len(issues) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(solveResp{Issues: issues})
		return
	}
	hint, st, err := h.UC.Solve(r.Context(), s)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(solveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(solveResp{
		Found:      hint != nil,
		Hint:       hint,
		Deductions: st.Deductions,
		DurationMs: st.Duration.Milliseconds(),
	})
}

// ---- Validate ----

type validateResp struct {
	OK         bool               `json:"ok"`
	Issues     []domain.Issue     `json:"issues,omitempty"`
	Violations []domain.Violation `json:"violations,omitempty"`
	Error      string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req stateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	s, issues, err := h.buildState(r, &req)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	if len(issues) > 0 {
		_ = json.NewEncoder(w).Encode(validateResp{OK: false, Issues: issues})
		return
	}
	violations, err := h.UC.ValidateState(r.Context(), s)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(validateResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(validateResp{OK: len(violations) == 0, Violations: violations})
}

// ---- Save / Load / List ----

type saveResp struct {
	ID    string `json:"id,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var p domain.Puzzle
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}
	issues, err := h.UC.ValidateRegions(r.Context(), &p.Def)
	if err == nil && len(issues) > 0 {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(saveResp{Error: issues[0].Message})
		return
	}
	if err := h.UC.Save(r.Context(), &p); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(saveResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(saveResp{ID: p.ID})
}

type loadResp struct {
	Puzzle *domain.Puzzle `json:"puzzle,omitempty"`
	Issues []domain.Issue `json:"issues,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (h *Handler) handleLoad(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	id := r.URL.Query().Get("id")
	if id == "" {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(loadResp{Error: "missing id"})
		return
	}
	p, err := h.UC.Load(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if os.IsNotExist(err) {
			code = http.StatusNotFound
		}
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(loadResp{Error: err.Error()})
		return
	}
	issues, err := h.UC.ValidateRegions(r.Context(), &p.Def)
	if err == nil && len(issues) > 0 {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_ = json.NewEncoder(w).Encode(loadResp{Issues: issues})
		return
	}
	_ = json.NewEncoder(w).Encode(loadResp{Puzzle: p})
}

type listResp struct {
	Puzzles []domain.PuzzleMeta `json:"puzzles"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	metas, err := h.UC.List(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(listResp{Error: err.Error()})
		return
	}
	_ = json.NewEncoder(w).Encode(listResp{Puzzles: metas})
}
