// SPDX-License-Identifier: MIT

// Command wavefront builds Zernike wavefronts from run files and reports,
// summarizes or renders them.
//
//	wavefront terms --ordering standard --base 0
//	wavefront describe run.toml
//	wavefront stats run.yaml
//	wavefront render run.toml -o wavefront.png
package main

import (
	"os"

	"github.com/katalvlaran/wavefront/logging"
)

func main() {
	logger := logging.New("wavefront")
	if err := newRootCmd(os.Stdout, logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("wavefront failed")
		os.Exit(1)
	}
}
