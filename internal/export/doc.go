// SPDX-License-Identifier: MIT

// Package export renders partitions as CSV.
//
// WriteParts emits one row per part of every partition:
//
//	PARTITION,PARAMETER,PART,VALUE,REF_VALUE,COMPLEXITY_REDUCTION,INFORMATION_LOSS
//
// and WriteSummary one row per partition. Part labels come from a Labeler:
// intervals and arcs print as "first-last", other sets as "{x,y}", and
// product parts join their per-dimension labels as "(..)x(..)".
package export
