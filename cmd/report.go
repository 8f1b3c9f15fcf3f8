package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/nao1215/markdown"

	"github.com/StephanGoldberg/startup-launch-checker/internal/checker"
	"github.com/StephanGoldberg/startup-launch-checker/internal/checklist"
	consts "github.com/StephanGoldberg/startup-launch-checker/internal/constants"
)

const reportWidth = 58

func printRunHeader(out io.Writer, domain string) {
	rule := strings.Repeat("=", reportWidth)
	fmt.Fprintf(out, "\n%s\n", rule)
	fmt.Fprintln(out, "  Startup Launch Readiness Checker")
	fmt.Fprintf(out, "  Target: %s\n", domain)
	fmt.Fprintf(out, "%s\n\n", rule)
}

// renderTextReport writes the human-readable report. This is the default
// output surface; everything else (--json, --output) is derived from the
// same RunReport.
func renderTextReport(out io.Writer, report RunReport) {
	rule := strings.Repeat("-", reportWidth)
	site := report.Site
	eval := report.Checklist

	fmt.Fprintf(out, "\n%s\n", rule)
	fmt.Fprintln(out, "  WEBSITE STATUS")
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "  Live:           %s\n", formatYesNo(site.Live))
	fmt.Fprintf(out, "  HTTPS:          %s\n", formatYesNo(site.HasSSL))
	fmt.Fprintf(out, "  Response time:  %s\n", formatResponseTime(site.ResponseTime))
	if site.Error != "" {
		fmt.Fprintf(out, "  Error:          %s\n", colorError(site.Error))
	}

	fmt.Fprintf(out, "\n%s\n", rule)
	fmt.Fprintf(out, "  LAUNCH CHECKLIST (%d/%d passed)\n", len(eval.Passed), checklist.Size())
	fmt.Fprintln(out, rule)
	for _, item := range eval.Passed {
		fmt.Fprintf(out, "  %s %s\n", colorSuccess("✓"), item)
	}
	for _, item := range eval.Failed {
		fmt.Fprintf(out, "  %s %s  %s\n", colorError("✗"), item, colorWarn("(fix before launch)"))
	}

	fmt.Fprintf(out, "\n%s\n", rule)
	fmt.Fprintf(out, "  LAUNCH READINESS SCORE: %d/100\n", eval.Score)
	fmt.Fprintf(out, "  %s - %s\n", colorVerdict(eval.Verdict), eval.Verdict.Summary())
	fmt.Fprintln(out, rule)

	if len(report.PriorityFixes) > 0 {
		fmt.Fprintf(out, "\n  Priority fixes:\n")
		for _, fix := range report.PriorityFixes {
			fmt.Fprintf(out, "     -> %s\n", fix)
		}
	}

	if len(report.Listings) > 0 {
		fmt.Fprintf(out, "\n%s\n", rule)
		fmt.Fprintln(out, "  LAUNCH LISTINGS")
		fmt.Fprintln(out, rule)
		for _, listing := range report.Listings {
			fmt.Fprintf(out, "  %-16s%s\n", listing.Platform+":", formatListing(listing))
		}
	}

	fmt.Fprintln(out)
}

func formatYesNo(v bool) string {
	if v {
		return colorSuccess("Yes")
	}
	return colorError("No")
}

func formatResponseTime(rt *float64) string {
	if rt == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2fs", *rt)
}

func formatListing(listing checker.ListingPresence) string {
	switch {
	case listing.Found == nil:
		return colorWarn("unknown (lookup failed)")
	case *listing.Found:
		return colorSuccess("listed")
	default:
		return colorError("not found")
	}
}

// writeReportFile exports report to path, picking the format from the file
// extension: .json, .md, or .pdf.
func writeReportFile(path string, report RunReport) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = json.MarshalIndent(report, "", "  ")
	case ".md":
		data, err = generateMarkdownReport(report)
	case ".pdf":
		data, err = generatePDFReport(report)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownReportFormat, filepath.Ext(path))
	}
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, consts.DefaultFilePerm)
}

// generateMarkdownReport renders the run as a shareable markdown document.
func generateMarkdownReport(report RunReport) ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1("Launch Readiness Report")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Domain", "`" + report.Domain + "`"},
			{"Checked", report.Site.CheckedAt.Format(time.RFC3339)},
			{"Live", yesNo(report.Site.Live)},
			{"HTTPS", yesNo(report.Site.HasSSL)},
			{"Response time", formatResponseTimePlain(report.Site.ResponseTime)},
			{"Score", fmt.Sprintf("%d/100", report.Checklist.Score)},
			{"Verdict", string(report.Checklist.Verdict)},
		},
	})
	md.PlainText("")

	md.H2("Checklist")
	items := make([]string, 0, checklist.Size())
	for _, name := range report.Checklist.Passed {
		items = append(items, "[x] "+name)
	}
	for _, name := range report.Checklist.Failed {
		items = append(items, "[ ] "+name)
	}
	md.BulletList(items...)
	md.PlainText("")

	if len(report.PriorityFixes) > 0 {
		md.H2("Priority Fixes")
		md.BulletList(report.PriorityFixes...)
		md.PlainText("")
	}

	if len(report.Listings) > 0 {
		md.H2("Launch Listings")
		rows := make([][]string, 0, len(report.Listings))
		for _, listing := range report.Listings {
			rows = append(rows, []string{listing.Platform, listingStatusPlain(listing)})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Platform", "Status"},
			Rows:   rows,
		})
	}

	if err := md.Build(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// generatePDFReport renders the run as a one-page PDF summary.
func generatePDFReport(report RunReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Launch Readiness Report: %s", report.Domain), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Checked: %s", report.Site.CheckedAt.Format(time.RFC1123)), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Live: %s | HTTPS: %s | Response time: %s",
		yesNo(report.Site.Live), yesNo(report.Site.HasSSL), formatResponseTimePlain(report.Site.ResponseTime)), "", 1, "", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Score: %d/100 (%s)", report.Checklist.Score, report.Checklist.Verdict), "", 1, "", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Checklist", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, name := range report.Checklist.Passed {
		pdf.CellFormat(0, 6, fmt.Sprintf("[PASS] %s", name), "", 1, "", false, 0, "")
	}
	for _, name := range report.Checklist.Failed {
		pdf.CellFormat(0, 6, fmt.Sprintf("[FAIL] %s", name), "", 1, "", false, 0, "")
	}
	pdf.Ln(3)

	if len(report.PriorityFixes) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Priority Fixes", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, fix := range report.PriorityFixes {
			pdf.CellFormat(0, 6, fmt.Sprintf("- %s", fix), "", 1, "", false, 0, "")
		}
		pdf.Ln(3)
	}

	if len(report.Listings) > 0 {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Launch Listings", "", 1, "", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		for _, listing := range report.Listings {
			pdf.CellFormat(0, 6, fmt.Sprintf("%s: %s", listing.Platform, listingStatusPlain(listing)), "", 1, "", false, 0, "")
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func formatResponseTimePlain(rt *float64) string {
	if rt == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2fs", *rt)
}

func listingStatusPlain(listing checker.ListingPresence) string {
	switch {
	case listing.Found == nil:
		return "unknown"
	case *listing.Found:
		return "listed"
	default:
		return "not found"
	}
}
