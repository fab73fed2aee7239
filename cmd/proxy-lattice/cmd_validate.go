package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"proxy-lattice/internal/schema"
	"proxy-lattice/lattice"
)

var validateCmd = &cobra.Command{
	Use:   "validate <schema.yaml>",
	Short: "Check a lattice schema and print its diagnostics",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	f, err := schema.LoadFile(args[0])
	if err != nil {
		return err
	}

	diags := schema.Validate(f)
	out := cmd.OutOrStdout()

	for _, d := range diags.Warnings {
		fmt.Fprintln(out, "warning:", d)
	}

	for _, d := range diags.Errors {
		fmt.Fprintln(out, "error:", d)
	}

	logger.Debug("Schema validated",
		zap.String("path", args[0]),
		zap.Int("types", len(f.Types)),
		zap.Int("errors", len(diags.Errors)),
		zap.Int("warnings", len(diags.Warnings)))

	if diags.HasErrors() {
		return fmt.Errorf("%s: %d error(s)", args[0], len(diags.Errors))
	}

	fmt.Fprintf(out, "%s: ok (%d types)\n", args[0], len(f.Types))

	return nil
}

// loadLattice loads the schema at path and builds its lattice.
func loadLattice(path string) (*schema.File, *lattice.Lattice, error) {
	f, err := schema.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	l, err := f.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return f, l, nil
}
