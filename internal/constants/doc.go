// Package constants centralizes configuration defaults shared across the CLI.
//
// Keeping the user agent, timeouts, and checklist thresholds in one place
// prevents magic numbers from scattering across cmd/ and internal/ and lets
// both packages reference the same defaults without import cycles.
package constants
