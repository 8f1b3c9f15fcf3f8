package checker

import "strings"

// TargetInfo contains the normalized pieces of an operator-supplied target.
type TargetInfo struct {
	Original string // target exactly as typed
	Domain   string // bare domain, no scheme, no trailing slash
	BaseURL  string // https:// base URL used for all requests
}

// NormalizeTarget canonicalizes a target string. Operators type all of
//   - mystartup.com
//   - https://mystartup.com/
//   - http://mystartup.com
//
// and every form resolves to the same https:// base URL: the scheme is
// stripped and re-added as https, matching the checker's assumption that a
// launch-ready site serves TLS.
func NormalizeTarget(target string) TargetInfo {
	domain := strings.TrimSpace(target)
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.Trim(domain, "/")

	return TargetInfo{
		Original: target,
		Domain:   domain,
		BaseURL:  "https://" + domain,
	}
}

// EnsureScheme prepends https:// when target carries no scheme at all.
// An explicit http:// scheme is preserved.
func EnsureScheme(target string) string {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return target
	}
	return "https://" + target
}

// StartupName derives the startup's name from its domain: the label before
// the first dot. Listing searches use this as the query term.
func StartupName(domain string) string {
	return strings.Split(domain, ".")[0]
}
