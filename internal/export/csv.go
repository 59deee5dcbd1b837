// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/optpart/objective"
	"github.com/katalvlaran/optpart/partition"
)

// WriteParts writes PartsHeader and one row per part of every partition.
// Value columns stay empty when obj cannot report a Breakdown.
func WriteParts(w io.Writer, obj objective.Objective, lb *Labeler, parts []*partition.Partition) error {
	if w == nil {
		return ErrNilWriter
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(PartsHeader); err != nil {
		return fmt.Errorf("WriteParts: %w", err)
	}
	for i, p := range parts {
		for _, part := range p.Parts {
			cols, err := breakdown(obj, part.Value)
			if err != nil {
				return fmt.Errorf("WriteParts: partition %d: %w", i, err)
			}
			row := append([]string{strconv.Itoa(i), formatFloat(p.Parameter), lb.Part(part)}, cols...)
			if err = cw.Write(row); err != nil {
				return fmt.Errorf("WriteParts: %w", err)
			}
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteSummary writes SummaryHeader and one row per partition.
func WriteSummary(w io.Writer, obj objective.Objective, parts []*partition.Partition) error {
	if w == nil {
		return ErrNilWriter
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryHeader); err != nil {
		return fmt.Errorf("WriteSummary: %w", err)
	}
	for i, p := range parts {
		cols, err := breakdown(obj, p.Value)
		if err != nil {
			return fmt.Errorf("WriteSummary: partition %d: %w", i, err)
		}
		row := []string{
			strconv.Itoa(i), formatFloat(p.Parameter), formatFloat(p.Unit),
			strconv.Itoa(p.Len()), formatFloat(p.Score), cols[2], cols[3],
		}
		if err = cw.Write(row); err != nil {
			return fmt.Errorf("WriteSummary: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// breakdown returns VALUE, REF_VALUE, COMPLEXITY_REDUCTION, INFORMATION_LOSS.
func breakdown(obj objective.Objective, v objective.Value) ([]string, error) {
	b, ok := obj.(objective.Breakdowner)
	if !ok || v == nil {
		return []string{"", "", "", ""}, nil
	}
	bd, err := b.Breakdown(v)
	if err != nil {
		return nil, err
	}

	return []string{
		formatFloat(bd.Raw), formatFloat(bd.Reference),
		formatFloat(bd.Reduction), formatFloat(bd.Loss),
	}, nil
}

func formatFloat(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
