// Package briefing fetches a short mission-briefing line for the sortie
// screen. The text is flavor only: any network failure falls back to a
// bundled bank so the game never blocks on it.
package briefing

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Env var naming follows the app name; empty means offline-only.
const urlEnv = "SKYSTRIKE_BRIEFING_URL"

const fetchTimeout = 2 * time.Second
const maxBriefingBytes = 512

var fallbackBank = []string{
	"Hostile wings inbound from the northern front. Clear the corridor.",
	"Radar shows a carrier group massing past the ridge. Thin them out.",
	"Supply lines are cut. Punch through and keep your guns warm.",
	"Command wants the sector swept before dawn. Make it quick.",
	"Intercepted chatter mentions a capital hull. Expect heavy escort.",
}

// Provider resolves briefing text, remote first, bank second.
type Provider struct {
	endpoint string
	client   *http.Client
	rand     *rand.Rand
}

func NewProvider() *Provider {
	return &Provider{
		endpoint: os.Getenv(urlEnv),
		client:   &http.Client{Timeout: fetchTimeout},
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Fetch returns one briefing line for the given difficulty label. It
// never returns an empty string and never fails.
func (p *Provider) Fetch(ctx context.Context, difficulty string) string {
	if p.endpoint == "" {
		return p.fallback()
	}

	text, err := p.fetchRemote(ctx, difficulty)
	if err != nil || text == "" {
		return p.fallback()
	}
	return text
}

func (p *Provider) fetchRemote(ctx context.Context, difficulty string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	reqURL := fmt.Sprintf("%s?difficulty=%s", p.endpoint, url.QueryEscape(difficulty))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("briefing endpoint returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBriefingBytes))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(body)), nil
}

func (p *Provider) fallback() string {
	return fallbackBank[p.rand.Intn(len(fallbackBank))]
}
