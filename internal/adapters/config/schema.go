package config

// Runfile represents the structure of the optional runall.yaml override file.
// Pointer and nil-slice fields distinguish "unset" from zero values.
type Runfile struct {
	Count    *int              `yaml:"count"`
	Prefix   *string           `yaml:"prefix"`
	Label    *string           `yaml:"label"`
	Build    []string          `yaml:"build"`
	BuildDir *string           `yaml:"buildDir"`
	InputDir *string           `yaml:"inputDir"`
	InputExt *string           `yaml:"inputExt"`
	Env      map[string]string `yaml:"env"`
}

// knownKeys lists the top-level keys of a Runfile.
var knownKeys = map[string]struct{}{
	"count":    {},
	"prefix":   {},
	"label":    {},
	"build":    {},
	"buildDir": {},
	"inputDir": {},
	"inputExt": {},
	"env":      {},
}
