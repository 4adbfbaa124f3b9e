package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"svw.info/starbattle/internal/domain"
	"svw.info/starbattle/internal/infrastructure/storage"
	"svw.info/starbattle/internal/solver"
	"svw.info/starbattle/internal/usecase"
	"svw.info/starbattle/internal/validator"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	v := validator.New()
	uc := usecase.NewService(solver.New(v, nil), v, storage.NewFS(t.TempDir()))
	mux := http.NewServeMux()
	New(uc).Register(mux)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func columnsDef(n, stars int) domain.PuzzleDef {
	regions := make([][]int, n)
	for r := range regions {
		regions[r] = make([]int, n)
		for c := range regions[r] {
			regions[r][c] = c + 1
		}
	}
	return domain.PuzzleDef{Size: n, StarsPerUnit: stars, Regions: regions}
}

func TestValidateRejectsBrokenDef(t *testing.T) {
	mux := newTestMux(t)
	def := columnsDef(4, 1)
	def.Regions = def.Regions[:2] // wrong row count

	w := postJSON(t, mux, "/api/validate", stateReq{Def: def})
	var resp validateResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK || len(resp.Issues) == 0 {
		t.Fatalf("broken definition must report issues, got %+v", resp)
	}
}

func TestValidateReportsAdjacency(t *testing.T) {
	mux := newTestMux(t)
	req := stateReq{Def: columnsDef(4, 1), Grid: make([][]domain.CellMark, 4)}
	for i := range req.Grid {
		req.Grid[i] = make([]domain.CellMark, 4)
	}
	req.Grid[0][0] = domain.Star
	req.Grid[1][1] = domain.Star

	w := postJSON(t, mux, "/api/validate", req)
	var resp validateResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.OK || len(resp.Violations) == 0 {
		t.Fatalf("touching stars must be reported, got %+v", resp)
	}
}

func TestSolveReturnsForcedStar(t *testing.T) {
	mux := newTestMux(t)
	req := stateReq{Def: columnsDef(4, 1), Grid: make([][]domain.CellMark, 4)}
	for i := range req.Grid {
		req.Grid[i] = make([]domain.CellMark, 4)
	}
	req.Grid[0][0] = domain.Cross
	req.Grid[0][2] = domain.Cross
	req.Grid[0][3] = domain.Cross

	w := postJSON(t, mux, "/api/solve", req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp solveResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Found || resp.Hint == nil {
		t.Fatalf("want a hint, got %+v", resp)
	}
	if resp.Hint.Kind != domain.PlaceStar {
		t.Fatalf("hint kind = %s, want place-star", resp.Hint.Kind)
	}
	if len(resp.Hint.ResultCells) != 1 || resp.Hint.ResultCells[0] != (domain.CellCoord{Row: 0, Col: 1}) {
		t.Fatalf("result cells = %v, want [(0,1)]", resp.Hint.ResultCells)
	}
	if resp.Deductions == 0 {
		t.Fatal("response should carry the cycle's deduction count")
	}
}

func TestSolveRejectsGet(t *testing.T) {
	mux := newTestMux(t)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/solve", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", w.Code)
	}
}

func TestSaveLoadList(t *testing.T) {
	mux := newTestMux(t)
	p := domain.Puzzle{ID: "weekly-1", Name: "weekly", Def: columnsDef(4, 1)}

	w := postJSON(t, mux, "/api/save", p)
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d, body %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/load?id=weekly-1", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("load status = %d, body %s", w.Code, w.Body.String())
	}
	var lr loadResp
	if err := json.Unmarshal(w.Body.Bytes(), &lr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if lr.Puzzle == nil || lr.Puzzle.ID != "weekly-1" || lr.Puzzle.Def.Size != 4 {
		t.Fatalf("loaded %+v", lr.Puzzle)
	}
	if lr.Puzzle.CreatedAt == 0 {
		t.Fatal("save should stamp CreatedAt")
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/list", nil))
	var ls listResp
	if err := json.Unmarshal(w.Body.Bytes(), &ls); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ls.Puzzles) != 1 || ls.Puzzles[0].ID != "weekly-1" {
		t.Fatalf("list = %+v", ls.Puzzles)
	}
}

func TestSaveRejectsInvalidDef(t *testing.T) {
	mux := newTestMux(t)
	p := domain.Puzzle{ID: "bad", Def: domain.PuzzleDef{Size: 0, StarsPerUnit: 1}}
	if w := postJSON(t, mux, "/api/save", p); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestLoadMissing(t *testing.T) {
	mux := newTestMux(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/load", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing id: status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/load?id=ghost", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown id: status = %d, want 404", w.Code)
	}
}
