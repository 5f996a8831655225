package model

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed conventions.yaml
var defaultConventionsYAML []byte

// Conventions is the static mapping that drives classification and
// companion renames. It is data, not code: the default table is embedded,
// and a project may override it with its own YAML file.
type Conventions struct {
	ClassExt          string      `yaml:"class_ext"`
	SourceRoots       []Path      `yaml:"source_roots"`
	Extensions        []string    `yaml:"extensions"`
	GeneratedSuffixes []string    `yaml:"generated_suffixes"`
	ClassDirs         []ClassDir  `yaml:"class_dirs"`
	Companions        []Companion `yaml:"controller_companions"`
	ViewsDir          Path        `yaml:"views_dir"`
	LayoutsDir        Path        `yaml:"layouts_dir"`
	RoutesFile        Path        `yaml:"routes_file"`
	RewriteScope      []Path      `yaml:"controller_rewrite_scope"`
}

// DefaultConventions parses the embedded convention table.
func DefaultConventions() *Conventions {
	conv, err := parseConventions(defaultConventionsYAML)
	if err != nil {
		// The embedded table is part of the binary; a parse failure here
		// is a build defect, not a runtime condition.
		panic(fmt.Sprintf("embedded conventions are invalid: %v", err))
	}

	return conv
}

// LoadConventions reads a convention table from a YAML file. An empty path
// returns the embedded defaults.
func LoadConventions(path string) (*Conventions, error) {
	if path == "" {
		return DefaultConventions(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read conventions file: %w", err)
	}

	conv, err := parseConventions(data)
	if err != nil {
		return nil, fmt.Errorf("parse conventions file %s: %w", path, err)
	}

	return conv, nil
}

func parseConventions(data []byte) (*Conventions, error) {
	var conv Conventions
	if err := yaml.Unmarshal(data, &conv); err != nil {
		return nil, err
	}

	if len(conv.ClassDirs) == 0 {
		return nil, fmt.Errorf("conventions define no class_dirs")
	}

	if conv.ClassExt == "" {
		conv.ClassExt = ".rb"
	}

	return &conv, nil
}

// CompanionPath expands a companion template for the decamelized
// controller name.
func (c *Conventions) CompanionPath(comp Companion, underscored string) Path {
	return Path(fmt.Sprintf(comp.Template, underscored))
}

// ViewsPath returns the views directory for the decamelized controller name.
func (c *Conventions) ViewsPath(underscored string) Path {
	return Path(string(c.ViewsDir) + "/" + underscored)
}
