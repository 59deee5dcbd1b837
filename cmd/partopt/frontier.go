// SPDX-License-Identifier: MIT

package main

import "github.com/spf13/cobra"

func newFrontierCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frontier",
		Short: "All distinct optimal partitions across the parameter range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, s, err := a.load()
			if err != nil {
				return err
			}
			front, err := s.Frontier(a.v.GetFloat64(keyThreshold))
			if err != nil {
				return err
			}
			a.log.Info("frontier", "partitions", len(front))

			return a.write(cmd, p, front, a.v.GetBool(keySummary))
		},
	}
	f := cmd.Flags()
	f.Float64(keyThreshold, 0.01, "stop bisecting below this unit distance")
	f.Bool(keySummary, false, "one summary row per partition")

	return cmd
}
