// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"masklint-cli/internal/lint"
	"masklint-cli/internal/outdir"

	"github.com/spf13/cobra"
)

// runCmd lints every script in the maskfile.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the linters against every script in the maskfile",
	Long: `Run the linters against every script in the maskfile.

Every script is extracted into a temporary directory, handed to the linter
matching its language and the findings are printed under the command's
qualified name. Commands with no findings print nothing. The temporary
directory is removed when the run finishes, successfully or not.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) (err error) {
	defer func() { explain(err) }()

	mf, err := loadMaskfile()
	if err != nil {
		return err
	}

	dir, err := outdir.Ephemeral()
	if err != nil {
		return err
	}
	defer func() {
		if cleanupErr := dir.Cleanup(); cleanupErr != nil && err == nil {
			err = cleanupErr
		}
	}()
	logger.Debug("provisioned output directory", "path", dir.Path)

	walker := &lint.Walker{
		OutDir:    dir.Path,
		Out:       cmd.OutOrStdout(),
		Emphasize: emphasize(),
		Logger:    logger,
	}
	for _, command := range mf.Commands {
		if err = walker.Walk(command, ""); err != nil {
			return err
		}
	}
	return nil
}
