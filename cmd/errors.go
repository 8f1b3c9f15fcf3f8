package cmd

import "errors"

// ErrUnknownReportFormat signals an --output extension with no exporter.
var ErrUnknownReportFormat = errors.New("unknown report format")
