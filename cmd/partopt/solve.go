// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/optpart/partition"
)

func newSolveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Optimal partition for one trade-off parameter",
		Long:  "solve prints the optimal partition for --param, or for --unit when the objective's values are normalized.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, s, err := a.load()
			if err != nil {
				return err
			}
			var best *partition.Partition
			if a.v.IsSet(keyUnit) {
				best, err = s.OptimalPartitionAtUnit(a.v.GetFloat64(keyUnit))
			} else {
				best, err = s.OptimalPartition(a.v.GetFloat64(keyParam))
			}
			if err != nil {
				return err
			}
			a.log.Info("solved", "parameter", best.Parameter, "parts", best.Len(), "score", best.Score)

			return a.write(cmd, p, []*partition.Partition{best}, a.v.GetBool(keySummary))
		},
	}
	f := cmd.Flags()
	f.Float64(keyParam, 0.5, "trade-off parameter")
	f.Float64(keyUnit, 0, "trade-off in unit coordinates [0,1]; overrides --param")
	f.Bool(keySummary, false, "one summary row instead of one row per part")

	return cmd
}
