package briefing

import (
	"context"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newOfflineProvider() *Provider {
	return &Provider{
		client: &http.Client{Timeout: fetchTimeout},
		rand:   rand.New(rand.NewSource(1)),
	}
}

func TestFetchOfflineUsesBank(t *testing.T) {
	p := newOfflineProvider()
	line := p.Fetch(context.Background(), "NORMAL")
	if line == "" {
		t.Fatal("Fetch returned an empty line")
	}
	found := false
	for _, s := range fallbackBank {
		if s == line {
			found = true
		}
	}
	if !found {
		t.Errorf("offline line %q is not from the bank", line)
	}
}

func TestFetchRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("difficulty"); got != "HARDCORE" {
			t.Errorf("difficulty query = %q, want HARDCORE", got)
		}
		w.Write([]byte("  Strike the convoy before it scatters.\n"))
	}))
	defer srv.Close()

	p := newOfflineProvider()
	p.endpoint = srv.URL
	line := p.Fetch(context.Background(), "HARDCORE")
	if line != "Strike the convoy before it scatters." {
		t.Errorf("remote line = %q, want the trimmed body", line)
	}
}

func TestFetchFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := newOfflineProvider()
	p.endpoint = srv.URL
	line := p.Fetch(context.Background(), "EASY")
	found := false
	for _, s := range fallbackBank {
		if s == line {
			found = true
		}
	}
	if !found {
		t.Errorf("error path returned %q, want a bank line", line)
	}
}

func TestFetchFallsBackOnEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	p := newOfflineProvider()
	p.endpoint = srv.URL
	line := p.Fetch(context.Background(), "ENDLESS")
	if line == "" {
		t.Fatal("empty-body path returned an empty line")
	}
}

func TestFetchHonorsCanceledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := newOfflineProvider()
	p.endpoint = srv.URL
	if line := p.Fetch(ctx, "NORMAL"); line == "" {
		t.Fatal("canceled fetch returned an empty line instead of the bank")
	}
}
