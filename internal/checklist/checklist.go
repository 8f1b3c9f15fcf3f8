package checklist

import (
	"math"

	"github.com/StephanGoldberg/startup-launch-checker/internal/checker"
	consts "github.com/StephanGoldberg/startup-launch-checker/internal/constants"
)

// Item describes one launch checklist entry: a display name and the
// predicate that decides it against a site result.
type Item struct {
	Name      string
	Predicate func(r checker.SiteResult) bool
}

// launchCatalog lists every launch readiness control, in report order.
// All items carry equal weight; checklist_test.go validates the contents
// stay in sync with the priority fix list below.
var launchCatalog = []Item{
	{Name: "SSL/HTTPS", Predicate: func(r checker.SiteResult) bool {
		return r.HasSSL
	}},
	{Name: "Fast load (<2s)", Predicate: func(r checker.SiteResult) bool {
		return r.ResponseTime != nil && *r.ResponseTime < consts.FastLoadThresholdSeconds
	}},
	{Name: "robots.txt", Predicate: func(r checker.SiteResult) bool {
		return r.RobotsTxt
	}},
	{Name: "sitemap.xml", Predicate: func(r checker.SiteResult) bool {
		return r.SitemapXML
	}},
	{Name: "Open Graph tags", Predicate: func(r checker.SiteResult) bool {
		return r.HasOGTags
	}},
	{Name: "Meta description", Predicate: func(r checker.SiteResult) bool {
		return r.HasMetaDescription
	}},
	{Name: "Mobile viewport", Predicate: func(r checker.SiteResult) bool {
		return r.HasViewport
	}},
	{Name: "Favicon", Predicate: func(r checker.SiteResult) bool {
		return r.HasFavicon
	}},
}

// priorityFixes is the fixed-order subset of checklist items surfaced as
// fix-first suggestions when they fail.
var priorityFixes = []string{
	"SSL/HTTPS",
	"Open Graph tags",
	"Meta description",
	"sitemap.xml",
}

// Catalog returns a copy of the launch checklist.
func Catalog() []Item {
	out := make([]Item, len(launchCatalog))
	copy(out, launchCatalog)
	return out
}

// Size returns the number of checklist items.
func Size() int {
	return len(launchCatalog)
}

// Verdict buckets a score into one of three launch readiness tiers.
type Verdict string

const (
	// VerdictReady means the site can go live with confidence (score >= 80).
	VerdictReady Verdict = "LAUNCH READY"
	// VerdictAlmost means a few items still need fixing (score >= 55).
	VerdictAlmost Verdict = "ALMOST READY"
	// VerdictNotReady means critical items are failing.
	VerdictNotReady Verdict = "NOT READY"
)

// Summary returns the human-readable advice attached to a verdict.
func (v Verdict) Summary() string {
	switch v {
	case VerdictReady:
		return "go live with confidence"
	case VerdictAlmost:
		return "fix a few things first"
	default:
		return "critical issues need fixing"
	}
}

// VerdictFor buckets a score into its readiness tier.
func VerdictFor(score int) Verdict {
	switch {
	case score >= 80:
		return VerdictReady
	case score >= 55:
		return VerdictAlmost
	default:
		return VerdictNotReady
	}
}

// Evaluation is the outcome of scoring a site result against the checklist.
type Evaluation struct {
	Passed  []string `json:"passed"`
	Failed  []string `json:"failed"`
	Score   int      `json:"score"`
	Verdict Verdict  `json:"verdict"`
}

// Evaluate applies every checklist predicate to r. A predicate that panics
// counts as failed; the caller never sees the panic. Score is the passed
// percentage rounded to the nearest integer.
func Evaluate(r checker.SiteResult) Evaluation {
	eval := Evaluation{
		Passed: make([]string, 0, len(launchCatalog)),
		Failed: make([]string, 0, len(launchCatalog)),
	}

	for _, item := range launchCatalog {
		if evalItem(item, r) {
			eval.Passed = append(eval.Passed, item.Name)
		} else {
			eval.Failed = append(eval.Failed, item.Name)
		}
	}

	eval.Score = scoreFor(len(eval.Passed))
	eval.Verdict = VerdictFor(eval.Score)
	return eval
}

// PriorityFixes returns the fix-first suggestions: the fixed priority list
// intersected with the failed set, preserving priority order.
func PriorityFixes(failed []string) []string {
	failedSet := make(map[string]struct{}, len(failed))
	for _, name := range failed {
		failedSet[name] = struct{}{}
	}

	fixes := make([]string, 0, len(priorityFixes))
	for _, name := range priorityFixes {
		if _, ok := failedSet[name]; ok {
			fixes = append(fixes, name)
		}
	}
	return fixes
}

func evalItem(item Item, r checker.SiteResult) (passed bool) {
	defer func() {
		if recover() != nil {
			passed = false
		}
	}()

	if item.Predicate == nil {
		return false
	}
	return item.Predicate(r)
}

func scoreFor(passed int) int {
	return int(math.Round(float64(passed) / float64(len(launchCatalog)) * 100))
}
