package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/StephanGoldberg/startup-launch-checker/internal/checker"
	"github.com/StephanGoldberg/startup-launch-checker/internal/checklist"
)

// RunReport aggregates everything a single invocation produced. It is the
// payload behind --json and --output; the record is discarded when the
// process exits.
type RunReport struct {
	Tool          string                    `json:"tool"`
	Version       string                    `json:"version"`
	Domain        string                    `json:"domain"`
	Site          checker.SiteResult        `json:"site"`
	Checklist     checklist.Evaluation      `json:"checklist"`
	PriorityFixes []string                  `json:"priority_fixes,omitempty"`
	Listings      []checker.ListingPresence `json:"listings,omitempty"`
}

// newListingChecker is swapped out in tests to avoid real platform lookups.
var newListingChecker = checker.NewListingChecker

func runLaunchCheck(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	info := checker.NormalizeTarget(args[0])
	out := cmd.OutOrStdout()

	limiter := rate.NewLimiter(rate.Limit(flagRateLimit), 1)
	siteChecker := &checker.SiteChecker{
		Timeout:      time.Duration(flagTimeout) * time.Second,
		ProbeTimeout: time.Duration(flagProbeTimeout) * time.Second,
		UserAgent:    userAgent,
		Limiter:      limiter,
	}
	listingChecker := newListingChecker()
	listingChecker.Timeout = time.Duration(flagProbeTimeout) * time.Second
	listingChecker.UserAgent = userAgent
	listingChecker.Limiter = limiter

	if !flagJSON {
		printRunHeader(out, info.Domain)
		fmt.Fprintln(out, colorInfo("Fetching website..."))
	}

	logger.Debugw("checking site", "target", info.BaseURL)
	site := siteChecker.Check(ctx, info.BaseURL)

	if !flagJSON {
		fmt.Fprintln(out, colorInfo("Checking launch listings..."))
	}
	listings := listingChecker.Check(ctx, info.Domain)

	eval := checklist.Evaluate(site)
	report := RunReport{
		Tool:          "launchcheck",
		Version:       Version,
		Domain:        info.Domain,
		Site:          site,
		Checklist:     eval,
		PriorityFixes: checklist.PriorityFixes(eval.Failed),
		Listings:      listings,
	}

	logger.Infow("run complete",
		"domain", info.Domain,
		"live", site.Live,
		"score", eval.Score,
		"verdict", eval.Verdict,
	)

	if flagJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
	} else {
		renderTextReport(out, report)
	}

	if flagOutput != "" {
		if err := writeReportFile(flagOutput, report); err != nil {
			return fmt.Errorf("write report file: %w", err)
		}
		if !flagJSON {
			fmt.Fprintf(out, "\n%s %s\n", colorInfo("Report saved:"), flagOutput)
		}
	}

	// An unreachable site is a finding, not a CLI failure: the run completed.
	return nil
}
