package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	charmlog "github.com/charmbracelet/log"

	"github.com/matzehuels/permtower/pkg/cache"
	"github.com/matzehuels/permtower/pkg/store"
)

func newTestServer(t *testing.T) (*Server, http.Handler) {
	t.Helper()
	s := NewServer(Options{
		Logger: charmlog.New(io.Discard),
		Store:  store.NewMemoryStore(),
		Cache:  cache.NewMemoryCache(),
	})
	return s, s.Router()
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func getPath(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	_, h := newTestServer(t)
	rec := getPath(t, h, "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /healthz = %d, want 200", rec.Code)
	}
}

func TestSign(t *testing.T) {
	_, h := newTestServer(t)

	rec := postJSON(t, h, "/v1/sign", map[string]any{
		"degree":      5,
		"permutation": map[string]any{"notation": "(0 4)(1 3)"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /v1/sign = %d: %s", rec.Code, rec.Body.String())
	}

	resp := decode[signResponse](t, rec)
	if resp.Sign != 1 {
		t.Errorf("sign = %d, want 1", resp.Sign)
	}
	if !resp.AlternatingMember {
		t.Error("alternating_member = false, want true")
	}
	if got := len(resp.CycleType); got != 3 {
		t.Errorf("cycle_type has %d entries, want 3", got)
	}
}

func TestSign_ImageInput(t *testing.T) {
	_, h := newTestServer(t)

	rec := postJSON(t, h, "/v1/sign", map[string]any{
		"degree":      5,
		"permutation": map[string]any{"image": []int{1, 0, 2, 3, 4}},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /v1/sign = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[signResponse](t, rec)
	if resp.Notation != "(0 1)" || resp.Sign != -1 {
		t.Errorf("response = %+v, want (0 1) with sign -1", resp)
	}
}

func TestSign_InvalidInput(t *testing.T) {
	_, h := newTestServer(t)

	rec := postJSON(t, h, "/v1/sign", map[string]any{
		"degree":      5,
		"permutation": map[string]any{"image": []int{0, 0, 1, 2, 3}},
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("POST /v1/sign with bad image = %d, want 400", rec.Code)
	}
	body := decode[errorBody](t, rec)
	if body.Code != "INVALID_PERMUTATION" {
		t.Errorf("error code = %s, want INVALID_PERMUTATION", body.Code)
	}
}

func TestConjugate(t *testing.T) {
	_, h := newTestServer(t)

	rec := postJSON(t, h, "/v1/conjugate", map[string]any{
		"degree": 5,
		"a":      map[string]any{"notation": "(0 1 2)"},
		"b":      map[string]any{"notation": "(2 3 4)"},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /v1/conjugate = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[conjugateResponse](t, rec)
	if !resp.Conjugate || resp.Conjugator == "" {
		t.Errorf("response = %+v, want a conjugator witness", resp)
	}
}

func TestConjugate_NotConjugate(t *testing.T) {
	_, h := newTestServer(t)

	// A 5-cycle and its square: conjugate in S5, split classes in A5.
	rec := postJSON(t, h, "/v1/conjugate", map[string]any{
		"degree":      5,
		"a":           map[string]any{"notation": "(0 1 2 3 4)"},
		"b":           map[string]any{"notation": "(0 2 4 1 3)"},
		"alternating": true,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /v1/conjugate = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[conjugateResponse](t, rec)
	if resp.Conjugate {
		t.Error("5-cycle and its square reported conjugate in A5")
	}
	if resp.Reason == "" {
		t.Error("negative response carries no reason")
	}
}

func TestConjugate_OddInputWithAlternating(t *testing.T) {
	_, h := newTestServer(t)

	rec := postJSON(t, h, "/v1/conjugate", map[string]any{
		"degree":      5,
		"a":           map[string]any{"notation": "(0 1)"},
		"b":           map[string]any{"notation": "(2 3)"},
		"alternating": true,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("POST /v1/conjugate with odd input = %d, want 422", rec.Code)
	}
}

func TestClosure_ComputesPersistsAndCaches(t *testing.T) {
	s, h := newTestServer(t)

	body := map[string]any{
		"degree":     5,
		"ambient":    "A",
		"generators": []map[string]any{{"notation": "(0 1 2)"}},
	}

	rec := postJSON(t, h, "/v1/closure", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /v1/closure = %d: %s", rec.Code, rec.Body.String())
	}
	first := decode[closureResponse](t, rec)
	if first.Cached {
		t.Error("first request reported cached")
	}
	if first.Record.Order != 60 || !first.Record.FullGroup {
		t.Errorf("record = %+v, want full A5 of order 60", first.Record)
	}
	if first.Record.Ambient != "A5" {
		t.Errorf("ambient = %s, want A5", first.Record.Ambient)
	}

	// The record is persisted and retrievable.
	getRec := getPath(t, h, "/v1/closures/"+first.Record.ID)
	if getRec.Code != http.StatusOK {
		t.Fatalf("GET /v1/closures/{id} = %d", getRec.Code)
	}

	// The second identical request is served from the cache.
	rec2 := postJSON(t, h, "/v1/closure", body)
	second := decode[closureResponse](t, rec2)
	if !second.Cached {
		t.Error("second request not served from cache")
	}
	if second.Record.ID != first.Record.ID {
		t.Errorf("cached record ID = %s, want %s", second.Record.ID, first.Record.ID)
	}

	// Recent listing includes the record.
	recent := getPath(t, h, "/v1/closures")
	if recent.Code != http.StatusOK {
		t.Fatalf("GET /v1/closures = %d", recent.Code)
	}
	listing := decode[map[string][]store.ClosureRecord](t, recent)
	if len(listing["records"]) != 1 {
		t.Errorf("recent listing has %d records, want 1", len(listing["records"]))
	}

	_ = s
}

func TestClosure_EmptyGenerators(t *testing.T) {
	_, h := newTestServer(t)

	rec := postJSON(t, h, "/v1/closure", map[string]any{"degree": 5, "ambient": "A"})
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /v1/closure = %d: %s", rec.Code, rec.Body.String())
	}
	resp := decode[closureResponse](t, rec)
	if resp.Record.Order != 1 {
		t.Errorf("closure of no generators has order %d, want 1", resp.Record.Order)
	}
}

func TestClosure_RejectsNonMember(t *testing.T) {
	_, h := newTestServer(t)

	rec := postJSON(t, h, "/v1/closure", map[string]any{
		"degree":     5,
		"ambient":    "A",
		"generators": []map[string]any{{"notation": "(0 1)"}},
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("POST /v1/closure with odd generator in A = %d, want 422", rec.Code)
	}
	body := decode[errorBody](t, rec)
	if body.Code != "NOT_MEMBER" {
		t.Errorf("error code = %s, want NOT_MEMBER", body.Code)
	}
}

func TestClosure_RejectsDegreeBeyondCap(t *testing.T) {
	_, h := newTestServer(t)

	rec := postJSON(t, h, "/v1/closure", map[string]any{"degree": 11, "ambient": "S"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("POST /v1/closure with degree 11 = %d, want 422", rec.Code)
	}
}

func TestGetClosure_NotFound(t *testing.T) {
	_, h := newTestServer(t)

	rec := getPath(t, h, "/v1/closures/no-such-record")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("GET /v1/closures/no-such-record = %d, want 404", rec.Code)
	}
}

func TestSimpleA5(t *testing.T) {
	_, h := newTestServer(t)

	rec := getPath(t, h, "/v1/simple/a5")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /v1/simple/a5 = %d", rec.Code)
	}
	resp := decode[map[string]any](t, rec)
	if resp["simple"] != true {
		t.Errorf("simple = %v, want true", resp["simple"])
	}
}

func TestRequestIDHeader(t *testing.T) {
	_, h := newTestServer(t)

	rec := getPath(t, h, "/healthz")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("response missing X-Request-ID header")
	}

	// A caller-supplied ID is echoed back.
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "caller-id")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "caller-id" {
		t.Errorf("X-Request-ID = %q, want caller-id", got)
	}
}
