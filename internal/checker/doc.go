// Package checker implements the network-facing half of the launch
// readiness pipeline.
//
// Architecture overview:
//
//   - SiteChecker fetches the root page of a target, scans the returned HTML
//     for launch markers, and probes the well-known SEO paths (/robots.txt,
//     /sitemap.xml). Its Check method never returns an error: every network
//     failure collapses into sentinel values on SiteResult (Live=false, flag
//     false, timing nil) so the CLI can always render a report.
//   - ListingChecker queries public launch-listing search APIs (currently the
//     Hacker News Algolia endpoint) for mentions of the startup name.
//   - NormalizeTarget turns whatever the operator typed (bare domain, full
//     URL, trailing slashes) into a canonical https:// base URL.
//
// All outbound requests share one rate limiter so a run stays polite even
// though the pipeline itself is strictly sequential.
package checker
