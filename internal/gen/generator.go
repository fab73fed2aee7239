package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"sort"
	"text/template"

	"go.uber.org/zap"

	"proxy-lattice/internal/naming"
	"proxy-lattice/lattice"
	"proxy-lattice/options"
)

// RegistryFile is the name of the file holding the type table.
const RegistryFile = "lattice_gen.go"

// Config holds configuration for code generation.
type Config struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir receives unformatted sidecars when formatting fails.
	OutputDir string
	// Features selects what is emitted.
	Features options.FeatureEnum
	// Only restricts output to these types and the types they refer to.
	Only []string
	// RuntimeModule is the import path prefix of the runtime packages.
	RuntimeModule string
	// Source is mentioned in the generated header when set.
	Source string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		PackageName:   "proxies",
		OutputDir:     "./generated",
		Features:      options.FeatureAll,
		RuntimeModule: "proxy-lattice",
	}
}

// Generator renders proxy packages.
type Generator struct {
	config Config
	logger *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for per-file debug output.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config, opts ...Option) *Generator {
	g := &Generator{config: config, logger: zap.NewNop()}
	for _, o := range opts {
		o(g)
	}

	return g
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "system_deflection_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one file per selected type plus the registry file.
// Files are sorted by name.
func (g *Generator) Generate(l *lattice.Lattice) ([]GeneratedFile, error) {
	if l == nil {
		return nil, errors.New("lattice is nil")
	}

	selected, err := closure(l, g.config.Only)
	if err != nil {
		return nil, err
	}

	nodes, err := parentFirst(selected)
	if err != nil {
		return nil, err
	}

	files := make([]GeneratedFile, 0, len(nodes)+1)
	owners := make(map[string]string, len(nodes)+1)

	add := func(f *GeneratedFile, owner string) error {
		if prev, dup := owners[f.Filename]; dup {
			return fmt.Errorf("%s and %s both generate %s", prev, owner, f.Filename)
		}

		owners[f.Filename] = owner
		files = append(files, *f)

		g.logger.Debug("generated file",
			zap.String("file", f.Filename),
			zap.String("type", owner),
			zap.Int("bytes", len(f.Content)))

		return nil
	}

	for _, n := range nodes {
		f, err := g.generateType(n)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", n.Name(), err)
		}

		if err := add(f, n.Name()); err != nil {
			return nil, err
		}
	}

	if g.config.Features.Has(options.FeatureRegistry) {
		f, err := g.generateRegistry(nodes)
		if err != nil {
			return nil, fmt.Errorf("generating registry: %w", err)
		}

		if err := add(f, "the registry"); err != nil {
			return nil, err
		}
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Filename < files[j].Filename })

	return files, nil
}

func (g *Generator) generateType(n *lattice.Node) (*GeneratedFile, error) {
	td := g.buildTypeData(n)

	data := &fileData{
		PackageName: g.config.PackageName,
		Source:      g.config.Source,
		Filename:    typeFilename(n.Name()),
		ModImports:  []string{g.runtimeImport("proxy")},
		Type:        td,
	}

	for _, p := range td.Properties {
		if p.Kind == lattice.PropertyList {
			data.ModImports = []string{g.runtimeImport("marshal"), g.runtimeImport("proxy")}
			break
		}
	}

	return g.render(typeTemplate, data)
}

func (g *Generator) generateRegistry(nodes []*lattice.Node) (*GeneratedFile, error) {
	data := &fileData{
		PackageName: g.config.PackageName,
		Source:      g.config.Source,
		Filename:    RegistryFile,
		StdImports:  []string{"sync"},
	}

	scalars := false

	for _, n := range nodes {
		td := g.buildTypeData(n)
		for _, p := range td.OwnProperties {
			scalars = scalars || p.Kind == lattice.PropertyScalar
		}

		data.Types = append(data.Types, td)
	}

	data.ModImports = append(data.ModImports, g.runtimeImport("handle"), g.runtimeImport("lattice"))
	if scalars {
		data.ModImports = append(data.ModImports, g.runtimeImport("primitive"))
	}

	data.ModImports = append(data.ModImports, g.runtimeImport("proxy"))

	return g.render(registryTemplate, data)
}

// render executes a template and formats the result. On a formatting
// failure the raw output is returned along with the error and written to a
// sidecar file in OutputDir.
func (g *Generator) render(tmpl *template.Template, data *fileData) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			if werr := writeDebugUnformatted(g.config.OutputDir, data.Filename, buf.Bytes()); werr != nil {
				g.logger.Warn("failed to write unformatted sidecar", zap.Error(werr))
			}
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

func (g *Generator) runtimeImport(pkg string) string {
	module := g.config.RuntimeModule
	if module == "" {
		module = DefaultConfig().RuntimeModule
	}

	return module + "/" + pkg
}

// typeFilename names the file of a type. The _gen suffix keeps names such
// as FooTest or BarWindows from turning into test or build-constrained files.
func typeFilename(typeName string) string {
	return naming.Snake(typeName) + "_gen.go"
}
