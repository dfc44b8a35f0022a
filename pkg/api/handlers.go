package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/permtower/pkg/errors"
	"github.com/matzehuels/permtower/pkg/group"
	"github.com/matzehuels/permtower/pkg/observability"
	"github.com/matzehuels/permtower/pkg/perm"
	"github.com/matzehuels/permtower/pkg/store"
)

// permInput is a permutation in a request body: either cycle notation or an
// explicit image array. Notation wins when both are present.
type permInput struct {
	Notation string `json:"notation,omitempty"`
	Image    []int  `json:"image,omitempty"`
}

func (in permInput) parse(degree int) (perm.Permutation, error) {
	if in.Notation != "" {
		if err := errors.ValidateNotation(in.Notation); err != nil {
			return perm.Permutation{}, err
		}
		p, err := perm.Parse(degree, in.Notation)
		if err != nil {
			return perm.Permutation{}, errors.Wrap(errors.ErrCodeInvalidNotation, err, "parse %q", in.Notation)
		}
		return p, nil
	}
	p, err := perm.FromSlice(in.Image)
	if err != nil {
		return perm.Permutation{}, errors.Wrap(errors.ErrCodeInvalidPermutation, err, "parse image array")
	}
	return p, nil
}

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidPermutation, errors.ErrCodeInvalidCycles,
		errors.ErrCodeInvalidNotation, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case errors.ErrCodeSizeMismatch, errors.ErrCodeNotConjugate,
		errors.ErrCodeNotMember, errors.ErrCodeDegreeTooLarge:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, errorBody{Code: string(code), Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --- sign ---

type signRequest struct {
	Degree      int       `json:"degree"`
	Permutation permInput `json:"permutation"`
}

type signResponse struct {
	Notation          string  `json:"notation"`
	Cycles            [][]int `json:"cycles"`
	CycleType         []int   `json:"cycle_type"`
	Sign              int     `json:"sign"`
	AlternatingMember bool    `json:"alternating_member"`
}

func (s *Server) handleSign(w http.ResponseWriter, r *http.Request) {
	var req signRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}
	p, err := req.Permutation.parse(req.Degree)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, signResponse{
		Notation:          p.String(),
		Cycles:            p.Cycles(),
		CycleType:         p.CycleType(),
		Sign:              p.Sign(),
		AlternatingMember: p.IsEven(),
	})
}

// --- conjugate ---

type conjugateRequest struct {
	Degree      int       `json:"degree"`
	A           permInput `json:"a"`
	B           permInput `json:"b"`
	Alternating bool      `json:"alternating"` // demand an even conjugator
}

type conjugateResponse struct {
	Conjugate  bool   `json:"conjugate"`
	Conjugator string `json:"conjugator,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

func (s *Server) handleConjugate(w http.ResponseWriter, r *http.Request) {
	var req conjugateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}
	a, err := req.A.parse(req.Degree)
	if err != nil {
		s.writeError(w, err)
		return
	}
	b, err := req.B.parse(req.Degree)
	if err != nil {
		s.writeError(w, err)
		return
	}

	find := group.Conjugator
	if req.Alternating {
		find = group.AlternatingConjugator
	}
	c, err := find(a, b)
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotConjugate) {
			writeJSON(w, http.StatusOK, conjugateResponse{Conjugate: false, Reason: errors.UserMessage(err)})
			return
		}
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conjugateResponse{Conjugate: true, Conjugator: c.String()})
}

// --- closure ---

type closureRequest struct {
	Degree     int         `json:"degree"`
	Ambient    string      `json:"ambient"` // "S" or "A"
	Generators []permInput `json:"generators"`
}

type closureResponse struct {
	Record store.ClosureRecord `json:"record"`
	Cached bool                `json:"cached"`
}

func (s *Server) handleClosure(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req closureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode request body"))
		return
	}
	if err := errors.ValidateDegree(req.Degree, s.maxDegree); err != nil {
		s.writeError(w, err)
		return
	}

	gens := make([]perm.Permutation, 0, len(req.Generators))
	for _, in := range req.Generators {
		g, err := in.parse(req.Degree)
		if err != nil {
			s.writeError(w, err)
			return
		}
		gens = append(gens, g)
	}

	var (
		ambient    *group.Subgroup
		ambientTag string
		err        error
	)
	switch req.Ambient {
	case "", "A":
		ambient, err = group.Alternating(req.Degree)
		ambientTag = "A" + strconv.Itoa(req.Degree)
	case "S":
		ambient, err = group.Symmetric(req.Degree)
		ambientTag = "S" + strconv.Itoa(req.Degree)
	default:
		s.writeError(w, errors.New(errors.ErrCodeInvalidFormat, "ambient must be \"S\" or \"A\", got %q", req.Ambient))
		return
	}
	if err != nil {
		s.writeError(w, err)
		return
	}

	genNotations := make([]string, len(gens))
	for i, g := range gens {
		genNotations[i] = g.String()
	}

	// Cache-aside on the canonical generator set.
	key := s.keyer.ClosureKey(req.Degree, ambientTag, genNotations)
	if data, ok, _ := s.cache.Get(ctx, key); ok {
		observability.Cache().OnCacheHit(ctx, "closure")
		var rec store.ClosureRecord
		if json.Unmarshal(data, &rec) == nil {
			writeJSON(w, http.StatusOK, closureResponse{Record: rec, Cached: true})
			return
		}
	}
	observability.Cache().OnCacheMiss(ctx, "closure")

	start := time.Now()
	closure, err := group.NormalClosure(ctx, gens, ambient)
	if err != nil {
		s.writeError(w, err)
		return
	}

	rec := store.NewRecord(store.ClosureRecord{
		Degree:     req.Degree,
		Ambient:    ambientTag,
		Generators: genNotations,
		Order:      closure.Order(),
		FullGroup:  closure.Equal(ambient),
		Duration:   time.Since(start).Milliseconds(),
	})
	if err := s.store.Put(ctx, rec); err != nil {
		s.logger.Warnf("Persist closure record: %v", err)
	}
	if data, err := json.Marshal(rec); err == nil {
		if err := s.cache.Set(ctx, key, data, s.cacheTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, "closure", len(data))
		}
	}

	writeJSON(w, http.StatusOK, closureResponse{Record: rec, Cached: false})
}

func (s *Server) handleRecentClosures(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if q := r.URL.Query().Get("limit"); q != "" {
		if v, err := strconv.Atoi(q); err == nil && v > 0 {
			limit = v
		}
	}
	recs, err := s.store.Recent(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"records": recs})
}

func (s *Server) handleGetClosure(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// --- simplicity ---

func (s *Server) handleSimpleA5(w http.ResponseWriter, r *http.Request) {
	simple, err := group.IsSimpleOnFive(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"group": "A5", "simple": simple})
}
