package main

import (
	"fmt"
	"go/token"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"proxy-lattice/internal/common"
	"proxy-lattice/internal/gen"
	"proxy-lattice/options"
)

var (
	genOut           string
	genPackage       string
	genOnly          []string
	genNoDocs        bool
	genFeatures      string
	genRuntimeModule string
)

var genCmd = &cobra.Command{
	Use:   "gen <schema.yaml>",
	Short: "Generate a typed proxy package from a lattice schema",
	Long: `Generates one file per lattice type plus lattice_gen.go, which holds
the type table and the Lattice() accessor.

Example:
  proxy-lattice gen examples/analysis/lattice.yaml --out analysis --package analysis`,
	Args: cobra.ExactArgs(1),
	RunE: runGen,
}

func init() {
	genCmd.Flags().StringVarP(&genOut, "out", "o", ".", "Output directory")
	genCmd.Flags().StringVarP(&genPackage, "package", "p", "", "Package name (default: schema package, then output directory name)")
	genCmd.Flags().StringSliceVar(&genOnly, "only", nil, "Generate only these types and the types they reference")
	genCmd.Flags().BoolVar(&genNoDocs, "no-docs", false, "Omit doc comments taken from the schema")
	genCmd.Flags().StringVar(&genFeatures, "features", "all", "Features to emit, e.g. properties,casts,registry,docs")
	genCmd.Flags().StringVar(&genRuntimeModule, "runtime-module", gen.DefaultConfig().RuntimeModule,
		"Import path prefix of the proxy runtime packages")
}

func runGen(cmd *cobra.Command, args []string) error {
	f, l, err := loadLattice(args[0])
	if err != nil {
		return err
	}

	features, err := parseFeatures(genFeatures)
	if err != nil {
		return err
	}

	if genNoDocs {
		features = features.Without(options.FeatureDocs)
	}

	pkg, err := packageName(genPackage, f.Package, genOut)
	if err != nil {
		return err
	}

	config := gen.DefaultConfig()
	config.PackageName = pkg
	config.OutputDir = genOut
	config.Features = features
	config.Only = genOnly
	config.RuntimeModule = genRuntimeModule
	config.Source = filepath.ToSlash(args[0])

	files, err := gen.NewGenerator(config, gen.WithLogger(logger)).Generate(l)
	if err != nil {
		return err
	}

	written, err := gen.WriteFiles(files, genOut)
	if err != nil {
		return err
	}

	logger.Info("Proxies generated",
		zap.String("package", pkg),
		zap.String("features", features.String()),
		zap.Int("files", len(files)),
		zap.Int("written", len(written)))

	for _, w := range written {
		fmt.Fprintln(cmd.OutOrStdout(), w)
	}

	return nil
}

// parseFeatures reads a comma or pipe separated feature list.
func parseFeatures(s string) (options.FeatureEnum, error) {
	features := options.FeatureNone

	for _, name := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '|' }) {
		f, ok := options.ParseFeature(name)
		if !ok {
			return options.FeatureNone, fmt.Errorf("unknown feature %q", strings.TrimSpace(name))
		}

		features |= f
	}

	return features, nil
}

// packageName picks the flag value, then the schema's package, then the
// base name of dir.
func packageName(name, fromSchema, dir string) (string, error) {
	if name == "" {
		name = fromSchema
	}

	if name == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", err
		}

		name = strings.ReplaceAll(strings.ToLower(common.PkgAlias(filepath.ToSlash(abs))), "-", "")
	}

	if !token.IsIdentifier(name) {
		return "", fmt.Errorf("invalid package name %q", name)
	}

	return name, nil
}
