// SPDX-License-Identifier: MIT

package export

import "errors"

// Sentinel errors for export.
var (
	ErrLabelMismatch = errors.New("export: labels do not match lattice")
	ErrNilWriter     = errors.New("export: nil writer")
)

// PartsHeader is the header row of WriteParts.
var PartsHeader = []string{
	"PARTITION", "PARAMETER", "PART", "VALUE", "REF_VALUE",
	"COMPLEXITY_REDUCTION", "INFORMATION_LOSS",
}

// SummaryHeader is the header row of WriteSummary.
var SummaryHeader = []string{
	"PARTITION", "PARAMETER", "UNIT", "SIZE", "SCORE",
	"COMPLEXITY_REDUCTION", "INFORMATION_LOSS",
}
