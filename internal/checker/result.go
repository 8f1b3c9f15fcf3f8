package checker

import "time"

// SiteResult represents the outcome of checking a single target site.
// It is built up incrementally by SiteChecker.Check and never aliased;
// the record only lives for the duration of one CLI invocation.
type SiteResult struct {
	Target       string    `json:"target"`
	CheckedAt    time.Time `json:"checked_at"`
	Live         bool      `json:"live"`
	StatusCode   int       `json:"status_code,omitempty"`
	ResponseTime *float64  `json:"response_time_s,omitempty"` // nil when no timing was captured
	HasSSL       bool      `json:"has_ssl"`
	Error        string    `json:"error,omitempty"`

	// HTML is the decoded root page body. Kept out of JSON output:
	// exports should stay small and the markers below already capture
	// everything the checklist needs.
	HTML string `json:"-"`

	HasOGTags          bool `json:"has_og_tags"`
	HasMetaDescription bool `json:"has_meta_description"`
	HasViewport        bool `json:"has_viewport"`
	HasFavicon         bool `json:"has_favicon"`
	RobotsTxt          bool `json:"robots_txt"`
	SitemapXML         bool `json:"sitemap_xml"`
}

// ListingPresence records whether a launch platform knows about the startup.
// Found is nil when the lookup itself failed, which is reported as unknown
// rather than as absence.
type ListingPresence struct {
	Platform string `json:"platform"`
	Found    *bool  `json:"found"`
}
