package console

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/spigell/smart-recruit/internal/api"
	"github.com/spigell/smart-recruit/internal/notify"
	"github.com/spigell/smart-recruit/internal/state"

	"go.uber.org/zap"
)

type cannedResponse struct {
	status int
	body   string
}

// backend is an in-memory recruiting API.
type backend struct {
	mu         sync.Mutex
	candidates []api.Candidate
	offers     []api.Offer
	applicants map[int][]api.Candidate
	analysis   map[string]any
	requests   []string
	bodies     map[string]map[string]any
	fail       map[string]cannedResponse
	nextID     int

	srv *httptest.Server
}

func newBackend(t *testing.T) *backend {
	t.Helper()

	b := &backend{
		applicants: map[int][]api.Candidate{},
		bodies:     map[string]map[string]any{},
		fail:       map[string]cannedResponse{},
		nextID:     100,
		analysis: map[string]any{
			"success":  true,
			"analyse":  map[string]any{"score": 82, "justification": "Profil solide en Go"},
			"candidat": map[string]any{"nom": "Amina"},
			"offre":    map[string]any{"titre": "Dev Go"},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/candidates", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "candidats": b.candidates})
	})
	mux.HandleFunc("POST /api/candidates", func(w http.ResponseWriter, r *http.Request) {
		var input api.CandidateInput
		_ = json.NewDecoder(r.Body).Decode(&input)

		b.mu.Lock()
		defer b.mu.Unlock()
		b.nextID++
		b.candidates = append(b.candidates, api.Candidate{
			ID: b.nextID, Name: input.Name, Email: input.Email, Bio: input.Bio, Degree: input.Degree,
		})
		writeJSON(w, http.StatusCreated, map[string]any{"success": true})
	})
	mux.HandleFunc("DELETE /api/candidates/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))

		b.mu.Lock()
		defer b.mu.Unlock()
		kept := b.candidates[:0]
		for _, c := range b.candidates {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		b.candidates = kept
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})
	mux.HandleFunc("GET /api/offers", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "offres": b.offers})
	})
	mux.HandleFunc("POST /api/offers", func(w http.ResponseWriter, r *http.Request) {
		var input api.OfferInput
		_ = json.NewDecoder(r.Body).Decode(&input)

		b.mu.Lock()
		defer b.mu.Unlock()
		b.nextID++
		offer := api.Offer{ID: b.nextID, Title: input.Title, Description: input.Description, Skills: input.Skills}
		if input.Salary != nil {
			offer.Salary = *input.Salary
		}
		b.offers = append(b.offers, offer)
		writeJSON(w, http.StatusCreated, map[string]any{"success": true})
	})
	mux.HandleFunc("DELETE /api/offers/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))

		b.mu.Lock()
		defer b.mu.Unlock()
		kept := b.offers[:0]
		for _, o := range b.offers {
			if o.ID != id {
				kept = append(kept, o)
			}
		}
		b.offers = kept
		writeJSON(w, http.StatusOK, map[string]any{"success": true})
	})
	mux.HandleFunc("POST /api/offers/{id}/analyze-match", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		writeJSON(w, http.StatusOK, b.analysis)
	})
	mux.HandleFunc("GET /api/offers/{id}/candidates", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))

		b.mu.Lock()
		defer b.mu.Unlock()
		applicants := b.applicants[id]
		if applicants == nil {
			applicants = []api.Candidate{}
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "candidats": applicants})
	})
	mux.HandleFunc("POST /api/apply", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusCreated, map[string]any{"success": true})
	})

	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Method + " " + r.URL.Path

		data, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(data))

		var body map[string]any
		if len(data) > 0 {
			_ = json.Unmarshal(data, &body)
		}

		b.mu.Lock()
		b.requests = append(b.requests, key)
		if body != nil {
			b.bodies[key] = body
		}
		canned, failing := b.fail[key]
		b.mu.Unlock()

		if failing {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(canned.status)
			_, _ = w.Write([]byte(canned.body))
			return
		}

		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.srv.Close)

	return b
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (b *backend) failWith(key string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.fail[key] = cannedResponse{status: status, body: body}
}

func (b *backend) recorded() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requests...)
}

func (b *backend) body(key string) map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

func (b *backend) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = nil
}

func (b *backend) count(key string) int {
	n := 0
	for _, r := range b.recorded() {
		if r == key {
			n++
		}
	}
	return n
}

func newTestApp(t *testing.T, b *backend, config Config) *App {
	t.Helper()

	client := api.New(zap.NewNop(), b.srv.URL+"/api", "")
	client.HTTPClient.Timeout = 2 * time.Second

	return New(client, state.New(), notify.NewSlot(time.Hour, nil), zap.NewNop(), config)
}

func currentToast(t *testing.T, app *App) notify.Message {
	t.Helper()

	msg, ok := app.Notifications().Current()
	if !ok {
		t.Fatalf("expected a notification")
	}
	return msg
}
