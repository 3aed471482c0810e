// Package config provides xml2rdf configuration via Viper.
//
// Settings come from, in precedence order: environment variables
// (XML2RDF_ prefix), a project xml2rdf.toml found by walking up from the
// working directory, and built-in defaults. CLI flags override all of
// these at the command layer.
package config

// Config represents the xml2rdf configuration
type Config struct {
	Namespace string        `mapstructure:"namespace"`
	Output    OutputConfig  `mapstructure:"output"`
	Logging   LoggingConfig `mapstructure:"logging"`
}

// OutputConfig configures where converted triples go
type OutputConfig struct {
	File string `mapstructure:"file"` // empty = stdout
}

// LoggingConfig configures log output
type LoggingConfig struct {
	JSON bool `mapstructure:"json"` // machine-readable JSON log lines
}

// DefaultNamespace is the base IRI prefix for minted resources and
// predicates when no namespace is configured.
const DefaultNamespace = "https://decisym.ai/xml2rdf/data"
