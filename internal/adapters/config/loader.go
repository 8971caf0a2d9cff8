// Package config provides the loader for the optional run layout override file.
package config

import (
	"fmt"
	"maps"
	"os"

	"go.trai.ch/runall/internal/core/domain"
	"go.trai.ch/runall/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the conventional name of the override file.
const DefaultFileName = "runall.yaml"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load overlays the file at path on base. An empty path returns base as is.
func (l *Loader) Load(path string, base domain.Config) (domain.Config, error) {
	if path == "" {
		return base, base.Validate()
	}

	var runfile Runfile
	if err := l.readAndUnmarshalYAML(path, &runfile); err != nil {
		return domain.Config{}, err
	}

	cfg := apply(base, &runfile)
	if err := cfg.Validate(); err != nil {
		return domain.Config{}, zerr.With(err, "config_path", path)
	}
	return cfg, nil
}

func (l *Loader) readAndUnmarshalYAML(path string, runfile *Runfile) error {
	data, err := os.ReadFile(path) //nolint:gosec // user provided path
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "config_path", path)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "config_path", path)
	}
	// An empty document leaves every default in place.
	if len(root.Content) == 0 {
		return nil
	}

	doc := root.Content[0]
	if doc.Kind != yaml.MappingNode {
		return zerr.With(domain.ErrConfigParseFailed, "config_path", path)
	}
	l.warnUnknownKeys(path, doc)

	if err := doc.Decode(runfile); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "config_path", path)
	}
	return nil
}

func (l *Loader) warnUnknownKeys(path string, doc *yaml.Node) {
	// Mapping content alternates key and value nodes.
	for i := 0; i+1 < len(doc.Content); i += 2 {
		key := doc.Content[i].Value
		if _, ok := knownKeys[key]; !ok {
			l.Logger.Warn(fmt.Sprintf("unknown key %q in %s is ignored", key, path))
		}
	}
}

func apply(base domain.Config, f *Runfile) domain.Config {
	cfg := base
	if f.Count != nil {
		cfg.Count = *f.Count
	}
	if f.Prefix != nil {
		cfg.Prefix = *f.Prefix
	}
	if f.Label != nil {
		cfg.Label = *f.Label
	}
	if f.Build != nil {
		cfg.BuildCommand = f.Build
	}
	if f.BuildDir != nil {
		cfg.BuildDir = *f.BuildDir
	}
	if f.InputDir != nil {
		cfg.InputDir = *f.InputDir
	}
	if f.InputExt != nil {
		cfg.InputExt = *f.InputExt
	}
	if len(f.Env) > 0 {
		env := maps.Clone(base.Env)
		if env == nil {
			env = make(map[string]string, len(f.Env))
		}
		maps.Copy(env, f.Env)
		cfg.Env = env
	}
	return cfg
}
