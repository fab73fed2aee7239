package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"proxy-lattice/lattice"
)

var describeDump bool

var describeCmd = &cobra.Command{
	Use:   "describe <schema.yaml> <Type>",
	Short: "Print the ancestors, casts and properties of a lattice type",
	Args:  cobra.ExactArgs(2),
	RunE:  runDescribe,
}

func init() {
	describeCmd.Flags().BoolVar(&describeDump, "dump", false, "Dump the raw type spec")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	_, l, err := loadLattice(args[0])
	if err != nil {
		return err
	}

	n, ok := l.Lookup(args[1])
	if !ok {
		return fmt.Errorf("unknown type %q", args[1])
	}

	out := cmd.OutOrStdout()
	describeNode(out, n)

	if describeDump {
		fmt.Fprintln(out)
		spew.Fdump(out, n.Spec())
	}

	return nil
}

func describeNode(w io.Writer, n *lattice.Node) {
	title := n.Name()
	if n.Abstract() {
		title += " (abstract)"
	}

	fmt.Fprintln(w, title)
	fmt.Fprintf(w, "  external:    %s\n", n.External())
	fmt.Fprintf(w, "  ancestors:   %s\n", joinNames(n.Ancestors()))
	fmt.Fprintf(w, "  casts:       %s\n", joinNames(n.Casts()))
	fmt.Fprintf(w, "  reachable:   %s\n", joinNames(n.Reachable()))
	fmt.Fprintf(w, "  children:    %s\n", joinNames(n.Children()))

	own := make(map[string]bool)
	for _, p := range n.OwnProperties() {
		own[p.Name] = true
	}

	fmt.Fprintln(w, "  properties:")

	for _, p := range n.Properties() {
		typ := p.Type
		if p.Kind == lattice.PropertyScalar {
			typ = p.Scalar.Name()
		}

		from := ""
		if !own[p.Name] {
			from = " (inherited)"
		}

		fmt.Fprintf(w, "    %-20s %-7s %s%s\n", p.Name, p.Kind.Name(), typ, from)
	}
}

func joinNames(nodes []*lattice.Node) string {
	if len(nodes) == 0 {
		return "-"
	}

	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name()
	}

	return strings.Join(names, ", ")
}
