package checker

import "strings"

// HTMLFlags holds the four launch markers scanned out of a root page.
type HTMLFlags struct {
	HasOGTags          bool
	HasMetaDescription bool
	HasViewport        bool
	HasFavicon         bool
}

// AnalyzeHTML scans raw HTML for the launch markers. The contract is literal
// case-insensitive substring containment, not DOM parsing: markers inside
// comments or scripts count, and malformed HTML never fails the scan. The
// function is pure and idempotent.
func AnalyzeHTML(html string) HTMLFlags {
	lower := strings.ToLower(html)

	return HTMLFlags{
		HasOGTags:          strings.Contains(lower, `property="og:`) || strings.Contains(lower, `property='og:`),
		HasMetaDescription: strings.Contains(lower, `name="description"`) || strings.Contains(lower, `name='description'`),
		HasViewport:        strings.Contains(lower, `name="viewport"`) || strings.Contains(lower, `name='viewport'`),
		HasFavicon:         strings.Contains(lower, "favicon") || strings.Contains(lower, `rel="icon"`),
	}
}
