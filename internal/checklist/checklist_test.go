package checklist

import (
	"fmt"
	"math"
	"testing"

	"github.com/StephanGoldberg/startup-launch-checker/internal/checker"
)

func readySiteResult() checker.SiteResult {
	rt := 1.0
	return checker.SiteResult{
		Live:               true,
		StatusCode:         200,
		ResponseTime:       &rt,
		HasSSL:             true,
		HasOGTags:          true,
		HasMetaDescription: true,
		HasViewport:        true,
		HasFavicon:         true,
		RobotsTxt:          true,
		SitemapXML:         true,
	}
}

func TestEvaluate_FullyReadySite(t *testing.T) {
	eval := Evaluate(readySiteResult())

	if eval.Score != 100 {
		t.Errorf("expected score 100, got %d", eval.Score)
	}
	if eval.Verdict != VerdictReady {
		t.Errorf("expected verdict %q, got %q", VerdictReady, eval.Verdict)
	}
	if len(eval.Passed) != Size() {
		t.Errorf("expected %d passed items, got %d", Size(), len(eval.Passed))
	}
	if len(eval.Failed) != 0 {
		t.Errorf("expected no failed items, got %v", eval.Failed)
	}
}

func TestEvaluate_UnreachableHost(t *testing.T) {
	eval := Evaluate(checker.SiteResult{
		Live:  false,
		Error: "connection refused",
	})

	if eval.Score != 0 {
		t.Errorf("expected score 0, got %d", eval.Score)
	}
	if eval.Verdict != VerdictNotReady {
		t.Errorf("expected verdict %q, got %q", VerdictNotReady, eval.Verdict)
	}
	if len(eval.Failed) != Size() {
		t.Errorf("expected all %d items failed, got %d", Size(), len(eval.Failed))
	}
}

func TestEvaluate_FastLoadRequiresTiming(t *testing.T) {
	r := readySiteResult()
	r.ResponseTime = nil
	eval := Evaluate(r)

	for _, name := range eval.Passed {
		if name == "Fast load (<2s)" {
			t.Fatal("fast-load must fail when no timing was captured")
		}
	}

	slow := 2.0
	r.ResponseTime = &slow
	eval = Evaluate(r)
	for _, name := range eval.Passed {
		if name == "Fast load (<2s)" {
			t.Fatal("a 2.0s response is not under the threshold")
		}
	}
}

// TestEvaluate_ScoreLaw checks score = round(passed*100/8) for every
// combination of the eight booleans.
func TestEvaluate_ScoreLaw(t *testing.T) {
	rt := 1.0
	for mask := 0; mask < 1<<8; mask++ {
		r := checker.SiteResult{
			HasSSL:             mask&(1<<0) != 0,
			HasOGTags:          mask&(1<<2) != 0,
			HasMetaDescription: mask&(1<<3) != 0,
			HasViewport:        mask&(1<<4) != 0,
			HasFavicon:         mask&(1<<5) != 0,
			RobotsTxt:          mask&(1<<6) != 0,
			SitemapXML:         mask&(1<<7) != 0,
		}
		if mask&(1<<1) != 0 {
			r.ResponseTime = &rt
		}

		eval := Evaluate(r)

		passed := 0
		for bit := 0; bit < 8; bit++ {
			if mask&(1<<bit) != 0 {
				passed++
			}
		}

		want := int(math.Round(float64(passed) * 100 / 8))
		if eval.Score != want {
			t.Fatalf("mask %08b: expected score %d, got %d", mask, want, eval.Score)
		}
		if len(eval.Passed) != passed {
			t.Fatalf("mask %08b: expected %d passed, got %d", mask, passed, len(eval.Passed))
		}
		if got := VerdictFor(eval.Score); eval.Verdict != got {
			t.Fatalf("mask %08b: verdict %q does not match tier %q", mask, eval.Verdict, got)
		}
	}
}

func TestVerdictFor_Tiers(t *testing.T) {
	tests := []struct {
		score   int
		verdict Verdict
	}{
		{100, VerdictReady},
		{88, VerdictReady},
		{80, VerdictReady},
		{75, VerdictAlmost},
		{63, VerdictAlmost},
		{55, VerdictAlmost},
		{50, VerdictNotReady},
		{13, VerdictNotReady},
		{0, VerdictNotReady},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("score %d", tt.score), func(t *testing.T) {
			if got := VerdictFor(tt.score); got != tt.verdict {
				t.Errorf("expected %q, got %q", tt.verdict, got)
			}
		})
	}
}

func TestEvaluate_PanickingPredicateCountsAsFailed(t *testing.T) {
	item := Item{
		Name: "boom",
		Predicate: func(r checker.SiteResult) bool {
			panic("predicate exploded")
		},
	}

	if evalItem(item, checker.SiteResult{}) {
		t.Error("expected a panicking predicate to count as failed")
	}
	if evalItem(Item{Name: "nil predicate"}, checker.SiteResult{}) {
		t.Error("expected a nil predicate to count as failed")
	}
}

func TestPriorityFixes_FixedOrderIntersection(t *testing.T) {
	allFailed := make([]string, 0, Size())
	for _, item := range Catalog() {
		allFailed = append(allFailed, item.Name)
	}

	fixes := PriorityFixes(allFailed)
	want := []string{"SSL/HTTPS", "Open Graph tags", "Meta description", "sitemap.xml"}
	if len(fixes) != len(want) {
		t.Fatalf("expected %d fixes, got %v", len(want), fixes)
	}
	for i, name := range want {
		if fixes[i] != name {
			t.Errorf("position %d: expected %q, got %q", i, name, fixes[i])
		}
	}
}

func TestPriorityFixes_SubsetKeepsPriorityOrder(t *testing.T) {
	// Failed order deliberately scrambled; output must follow priority order.
	fixes := PriorityFixes([]string{"sitemap.xml", "Favicon", "SSL/HTTPS"})

	want := []string{"SSL/HTTPS", "sitemap.xml"}
	if len(fixes) != len(want) {
		t.Fatalf("expected %v, got %v", want, fixes)
	}
	for i := range want {
		if fixes[i] != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], fixes[i])
		}
	}
}

func TestPriorityFixes_NoFailures(t *testing.T) {
	if fixes := PriorityFixes(nil); len(fixes) != 0 {
		t.Errorf("expected no fixes, got %v", fixes)
	}
}

func TestCatalog_ContentsAndCopy(t *testing.T) {
	if Size() != 8 {
		t.Fatalf("expected 8 checklist items, got %d", Size())
	}

	names := make(map[string]struct{}, Size())
	for _, item := range Catalog() {
		if item.Predicate == nil {
			t.Errorf("item %q has no predicate", item.Name)
		}
		names[item.Name] = struct{}{}
	}

	// Every priority fix must name a real checklist item.
	for _, fix := range PriorityFixes([]string{"SSL/HTTPS", "Open Graph tags", "Meta description", "sitemap.xml"}) {
		if _, ok := names[fix]; !ok {
			t.Errorf("priority fix %q is not a checklist item", fix)
		}
	}

	// Mutating the returned slice must not touch the catalog.
	cat := Catalog()
	cat[0].Name = "mutated"
	if Catalog()[0].Name != "SSL/HTTPS" {
		t.Error("Catalog() must return an independent copy")
	}
}
