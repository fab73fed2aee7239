package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var castCmd = &cobra.Command{
	Use:   "cast <schema.yaml> <From> <To>",
	Short: "Check whether a cast between two lattice types is declared",
	Long: `Reports whether a proxy typed as From may be cast to To.

Upcasts always succeed. Declared downcasts succeed only when the runtime
type of the object is To or one of its descendants.`,
	Args: cobra.ExactArgs(3),
	RunE: runCast,
}

func runCast(cmd *cobra.Command, args []string) error {
	_, l, err := loadLattice(args[0])
	if err != nil {
		return err
	}

	from, ok := l.Lookup(args[1])
	if !ok {
		return fmt.Errorf("unknown type %q", args[1])
	}

	// Assume the best case runtime type: the target itself.
	runtime, _ := l.Lookup(args[2])

	to, err := l.Cast(from, runtime, args[2])
	if err != nil {
		return err
	}

	kind := "downcast, checked against the runtime type"
	if from.IsA(to) {
		kind = "upcast"
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s: ok (%s)\n", from.Name(), to.Name(), kind)

	return nil
}
