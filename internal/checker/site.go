package checker

import (
	"context"
	"crypto/tls"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	consts "github.com/StephanGoldberg/startup-launch-checker/internal/constants"
)

// SiteChecker performs the readiness checks against one target website:
// a single root-page fetch, an HTML marker scan, and two well-known path
// probes. The zero value is not usable; populate the timeouts or use the
// package defaults via NewSiteChecker.
type SiteChecker struct {
	Timeout      time.Duration // main page fetch
	ProbeTimeout time.Duration // per well-known path probe
	UserAgent    string
	Limiter      *rate.Limiter // paces all outbound requests, may be nil
}

// NewSiteChecker returns a SiteChecker with the package defaults applied.
func NewSiteChecker() *SiteChecker {
	return &SiteChecker{
		Timeout:      consts.DefaultFetchTimeout,
		ProbeTimeout: consts.DefaultProbeTimeout,
		UserAgent:    consts.UserAgent,
		Limiter:      rate.NewLimiter(rate.Limit(consts.DefaultRateLimit), 1),
	}
}

// Check runs the full site pipeline against target and returns the aggregated
// result. It never returns an error: transport failures (DNS, refused
// connection, timeout, TLS) collapse into Live=false with the error message
// recorded, and an HTTP error response still counts as live but carries no
// body and no timing.
func (s *SiteChecker) Check(ctx context.Context, target string) SiteResult {
	baseURL := EnsureScheme(target)

	result := s.fetchSite(ctx, baseURL)

	flags := AnalyzeHTML(result.HTML)
	result.HasOGTags = flags.HasOGTags
	result.HasMetaDescription = flags.HasMetaDescription
	result.HasViewport = flags.HasViewport
	result.HasFavicon = flags.HasFavicon

	result.RobotsTxt = s.CheckPath(ctx, baseURL, "/robots.txt")
	result.SitemapXML = s.CheckPath(ctx, baseURL, "/sitemap.xml")

	return result
}

// fetchSite performs the single blocking GET against the root page.
func (s *SiteChecker) fetchSite(ctx context.Context, baseURL string) SiteResult {
	result := SiteResult{
		Target:    baseURL,
		CheckedAt: time.Now().UTC(),
	}

	s.wait(ctx)

	client := s.newClient(s.Timeout)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	req.Header.Set("User-Agent", s.UserAgent)

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	elapsed := roundSeconds(time.Since(start).Seconds())
	defer resp.Body.Close()

	// HasSSL is only set once the host has answered: an unreachable
	// target fails every checklist item, the scheme included.
	result.Live = true
	result.StatusCode = resp.StatusCode
	result.HasSSL = strings.HasPrefix(baseURL, "https://")

	// An HTTP-level error response means the host answered but the page is
	// not usable: keep live=true with the status code, skip body and timing.
	if resp.StatusCode >= http.StatusBadRequest {
		_, _ = io.Copy(io.Discard, resp.Body)
		return result
	}

	result.ResponseTime = &elapsed

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		// Partial body is acceptable; the marker scan works on what we got.
		result.Error = err.Error()
	}
	result.HTML = strings.ToValidUTF8(string(body), "�")

	return result
}

// CheckPath probes baseURL+path and reports whether it answered with exactly
// HTTP 200. Any transport failure or non-200 status yields false; the method
// never returns an error.
func (s *SiteChecker) CheckPath(ctx context.Context, baseURL, path string) bool {
	s.wait(ctx)

	client := s.newClient(s.ProbeTimeout)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(baseURL, "/")+path, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode == http.StatusOK
}

func (s *SiteChecker) newClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: false},
		},
	}
}

func (s *SiteChecker) wait(ctx context.Context) {
	if s.Limiter != nil {
		_ = s.Limiter.Wait(ctx)
	}
}

// roundSeconds rounds elapsed wall-clock seconds to two decimals, the
// precision shown in reports.
func roundSeconds(v float64) float64 {
	return math.Round(v*100) / 100
}
