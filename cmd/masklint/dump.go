// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"masklint-cli/internal/lint"
	"masklint-cli/internal/outdir"

	"github.com/spf13/cobra"
)

var (
	dumpOutput string

	// dumpCmd extracts the scripts without linting them.
	dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Extract all scripts from the maskfile into a directory",
		Long: `Extract all scripts from the maskfile into a directory.

Each script is written to '<qualified name><extension>' with spaces
replaced by underscores, e.g. the 'services start' command becomes
'services_start.sh'. The directory is created if it does not exist.
Existing files are never overwritten: a name collision aborts the dump.
No linting is performed and nothing is printed.`,
		Args: cobra.NoArgs,
		RunE: runDump,
	}
)

func init() {
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "directory to dump the scripts into")
	_ = dumpCmd.MarkFlagRequired("output")
}

func runDump(cmd *cobra.Command, args []string) (err error) {
	defer func() { explain(err) }()

	mf, err := loadMaskfile()
	if err != nil {
		return err
	}

	dir, err := outdir.At(dumpOutput)
	if err != nil {
		return err
	}
	logger.Debug("provisioned output directory", "path", dir.Path)

	walker := &lint.Walker{
		OutDir:      dir.Path,
		ExtractOnly: true,
		Out:         cmd.OutOrStdout(),
		Logger:      logger,
	}
	for _, command := range mf.Commands {
		if err = walker.Walk(command, ""); err != nil {
			return err
		}
	}
	return nil
}
