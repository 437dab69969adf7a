package router_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	mem "digipet/internal/adapters/storage/memory"
	"digipet/internal/domain/digipet"
	"digipet/internal/router"
)

type stats struct {
	Happiness  int `json:"happiness"`
	Nutrition  int `json:"nutrition"`
	Discipline int `json:"discipline"`
}

type stateBody struct {
	Message string `json:"message"`
	Digipet *stats `json:"digipet"`
}

// Ignorar repetidamente baja cada stat en 10 hasta llegar a 0.
func TestHTTP_IgnoreRepeatedly_FloorsAtZero(t *testing.T) {
	store := mem.NewDigipetStore()
	if err := store.Set(context.Background(), digipet.Digipet{Happiness: 20, Nutrition: 25, Discipline: 30}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	ts := httptest.NewServer(router.NewRouter(router.Options{Store: store}))
	defer ts.Close()

	// GET /digipet informa la mascota con sus stats
	{
		st, body := getState(t, ts.URL, "/digipet")
		if st != http.StatusOK {
			t.Fatalf("expected 200, got %d", st)
		}
		if !regexp.MustCompile(`(?i)your digipet`).MatchString(body.Message) {
			t.Fatalf("message should mention your digipet, got %q", body.Message)
		}
		expectStats(t, body, stats{20, 25, 30})
	}

	steps := []stats{
		{10, 15, 20},
		{0, 5, 10},
		{0, 0, 0},
		{0, 0, 0},
	}
	for i, want := range steps {
		st, body := getState(t, ts.URL, "/digipet/ignore")
		if st != http.StatusOK {
			t.Fatalf("ignore #%d: expected 200, got %d", i+1, st)
		}
		expectStats(t, body, want)
	}
}

func TestHTTP_FullLifecycle(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// Sin mascota
	{
		st, body := getState(t, ts.URL, "/digipet")
		if st != http.StatusNotFound || body.Digipet != nil {
			t.Fatalf("expected 404 without digipet, got %d %+v", st, body)
		}
		if st, _ := getState(t, ts.URL, "/digipet/ignore"); st != http.StatusNotFound {
			t.Fatalf("expected 404 ignoring nothing, got %d", st)
		}
	}

	// Hatch y rechazo de segundo hatch
	{
		st, body := getState(t, ts.URL, "/digipet/hatch")
		if st != http.StatusOK {
			t.Fatalf("expected 200 hatch, got %d", st)
		}
		expectStats(t, body, stats{50, 50, 50})

		st, body = getState(t, ts.URL, "/digipet/hatch")
		if st != http.StatusConflict {
			t.Fatalf("expected 409 second hatch, got %d", st)
		}
		expectStats(t, body, stats{50, 50, 50})
	}

	actions := []struct {
		path string
		want stats
	}{
		{"/digipet/walk", stats{60, 45, 50}},
		{"/digipet/feed", stats{60, 55, 45}},
		{"/digipet/train", stats{55, 55, 55}},
		{"/digipet/ignore", stats{45, 45, 45}},
	}
	for _, a := range actions {
		st, body := getState(t, ts.URL, a.path)
		if st != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", a.path, st)
		}
		expectStats(t, body, a.want)
	}

	// Rehome
	{
		st, body := getState(t, ts.URL, "/digipet/rehome")
		if st != http.StatusOK || body.Digipet != nil {
			t.Fatalf("expected 200 rehome without digipet, got %d %+v", st, body)
		}
		if st, _ := getState(t, ts.URL, "/digipet"); st != http.StatusNotFound {
			t.Fatalf("expected 404 after rehome, got %d", st)
		}
	}

	// Historial: más reciente primero
	{
		st, raw := doGet(t, ts.URL, "/digipet/history")
		if st != http.StatusOK {
			t.Fatalf("expected 200 history, got %d body=%s", st, raw)
		}
		var resp struct {
			Events []struct {
				Action    string `json:"action"`
				Happiness int    `json:"happiness"`
			} `json:"events"`
		}
		if err := json.Unmarshal(raw, &resp); err != nil {
			t.Fatalf("decode history: %v", err)
		}
		want := []string{"rehome", "ignore", "train", "feed", "walk", "hatch"}
		if len(resp.Events) != len(want) {
			t.Fatalf("expected %d events, got %d", len(want), len(resp.Events))
		}
		for i, a := range want {
			if resp.Events[i].Action != a {
				t.Fatalf("event %d: expected %s, got %s", i, a, resp.Events[i].Action)
			}
		}
	}

	// Filtro por acción + acción desconocida
	{
		st, raw := doGet(t, ts.URL, "/digipet/history?actions=feed,walk&limit=1")
		if st != http.StatusOK || !strings.Contains(string(raw), `"feed"`) || strings.Contains(string(raw), `"walk"`) {
			t.Fatalf("unexpected filtered history %d %s", st, raw)
		}
		if st, _ := doGet(t, ts.URL, "/digipet/history?actions=dance"); st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown action, got %d", st)
		}
	}
}

func TestHTTP_HatchOnStart(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{HatchOnStart: true}))
	defer ts.Close()

	st, body := getState(t, ts.URL, "/digipet")
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	expectStats(t, body, stats{50, 50, 50})
}

func TestHTTP_HealthAndWelcome(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	if st, body := doGet(t, ts.URL, "/health"); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health %d %q", st, body)
	}
	if st, body := doGet(t, ts.URL, "/swagger/doc.json"); st != http.StatusOK || !strings.Contains(string(body), "/digipet/ignore") {
		t.Fatalf("unexpected swagger doc %d", st)
	}
	for _, p := range []string{"/", "/instructions"} {
		st, body := doGet(t, ts.URL, p)
		var resp struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &resp)
		if st != http.StatusOK || resp.Message == "" {
			t.Fatalf("%s: unexpected %d %s", p, st, body)
		}
	}
}

func getState(t *testing.T, baseURL, path string) (int, stateBody) {
	t.Helper()

	st, raw := doGet(t, baseURL, path)
	var body stateBody
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("%s: invalid json %q: %v", path, raw, err)
	}
	return st, body
}

func expectStats(t *testing.T, body stateBody, want stats) {
	t.Helper()

	if body.Digipet == nil {
		t.Fatalf("expected digipet %+v, got null (message=%q)", want, body.Message)
	}
	if *body.Digipet != want {
		t.Fatalf("expected %+v, got %+v", want, *body.Digipet)
	}
}

func doGet(t *testing.T, baseURL, path string) (int, []byte) {
	t.Helper()

	res, err := http.Get(baseURL + path)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)
	return res.StatusCode, body
}
