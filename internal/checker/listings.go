package checker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	consts "github.com/StephanGoldberg/startup-launch-checker/internal/constants"
)

// Platform describes one launch-listing search endpoint. SearchURL builds
// the query URL for a startup name; the response is expected to be a JSON
// document with a "hits" array.
type Platform struct {
	Name      string
	SearchURL func(name string) string
}

// defaultPlatforms is the fixed, ordered set of platforms queried per run.
var defaultPlatforms = []Platform{
	{
		Name: "Hacker News",
		SearchURL: func(name string) string {
			return fmt.Sprintf("https://hn.algolia.com/api/v1/search?query=%s&tags=story", url.QueryEscape(name))
		},
	},
}

// ListingChecker looks up the startup name on public launch platforms.
type ListingChecker struct {
	Timeout   time.Duration
	UserAgent string
	Limiter   *rate.Limiter
	Platforms []Platform
}

// NewListingChecker returns a ListingChecker with the package defaults applied.
func NewListingChecker() *ListingChecker {
	return &ListingChecker{
		Timeout:   consts.DefaultProbeTimeout,
		UserAgent: consts.UserAgent,
		Limiter:   rate.NewLimiter(rate.Limit(consts.DefaultRateLimit), 1),
		Platforms: defaultPlatforms,
	}
}

// Check queries every listing platform for the startup name derived from
// domain. A platform whose lookup fails is reported with Found=nil rather
// than false; the method never returns an error.
func (l *ListingChecker) Check(ctx context.Context, domain string) []ListingPresence {
	name := StartupName(domain)

	results := make([]ListingPresence, 0, len(l.Platforms))
	for _, platform := range l.Platforms {
		results = append(results, ListingPresence{
			Platform: platform.Name,
			Found:    l.lookup(ctx, platform.SearchURL(name)),
		})
	}
	return results
}

func (l *ListingChecker) lookup(ctx context.Context, searchURL string) *bool {
	if l.Limiter != nil {
		_ = l.Limiter.Wait(ctx)
	}

	client := &http.Client{Timeout: l.Timeout}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", l.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	var payload struct {
		Hits []json.RawMessage `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil
	}

	found := len(payload.Hits) > 0
	return &found
}
