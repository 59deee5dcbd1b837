// SPDX-License-Identifier: MIT

// Command partopt solves optimal-partition problems described in YAML.
//
//	partopt solve    --problem f.yaml --param 0.4
//	partopt frontier --problem f.yaml --threshold 0.01 [--summary]
//
// Results are CSV on stdout or in --output. Every flag can also be set in a
// YAML config file (--config, or ./partopt.yaml) or through PARTOPT_*
// environment variables, e.g. PARTOPT_LOG_FORMAT=json.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
