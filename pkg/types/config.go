// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ContentConfig locates the static content collections.
type ContentConfig struct {
	// Dir holds diseases.yaml, medications.yaml, protocols.yaml,
	// calculators.yaml, screenings.yaml and references.yaml.
	Dir string `json:"dir" yaml:"dir" mapstructure:"dir"`
}

// CitationConfig holds citation rendering defaults.
type CitationConfig struct {
	// Style is the default inline style: "numeric" or "author-year".
	Style string `json:"style" yaml:"style" mapstructure:"style"`
}

// LogConfig controls logger setup.
type LogConfig struct {
	// Level is a logrus level name (debug, info, warn, error).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is "text" or "json".
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// SnapshotConfig holds settings for the SQLite export.
type SnapshotConfig struct {
	// Path is the database file written by the export command.
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// IndexConfig holds settings for the cross-reference index cache.
type IndexConfig struct {
	// CacheSize is the number of content sets whose index is memoized (default 4).
	CacheSize int `json:"cache_size" yaml:"cache_size" mapstructure:"cache_size"`
}

// Config groups all settings read from screenref.yaml.
type Config struct {
	Content  ContentConfig  `json:"content" yaml:"content" mapstructure:"content"`
	Citation CitationConfig `json:"citation" yaml:"citation" mapstructure:"citation"`
	Log      LogConfig      `json:"log" yaml:"log" mapstructure:"log"`
	Snapshot SnapshotConfig `json:"snapshot" yaml:"snapshot" mapstructure:"snapshot"`
	Index    IndexConfig    `json:"index" yaml:"index" mapstructure:"index"`
}
