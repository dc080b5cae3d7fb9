package types

import "time"

// HTTPConfig holds shared HTTP settings for commands that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "bookscout/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for Open Library queries.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Fields lists the response fields requested from the API
	// (default: title, author_name).
	Fields []string `json:"fields" yaml:"fields"`

	// Limit is the maximum number of results to request (default 1).
	Limit int `json:"limit" yaml:"limit"`
}

// HistoryConfig holds settings for the local search history store.
type HistoryConfig struct {
	// Path is the directory holding the history database (default ".bookscout").
	Path string `json:"path" yaml:"path"`

	// MaxEntries caps how many entries the history command lists by
	// default (default 20).
	MaxEntries int `json:"max_entries" yaml:"max_entries"`
}

// Config groups all settings for the CLI.
type Config struct {
	Search  SearchConfig  `json:"search" yaml:"search"`
	History HistoryConfig `json:"history" yaml:"history"`

	// Debug enables debug-level logging.
	Debug bool `json:"debug" yaml:"debug"`
}

// DefaultFields is the field list requested when none is configured.
var DefaultFields = []string{"title", "author_name"}

// DefaultLimit is the result limit used when none is configured.
const DefaultLimit = 1

// DefaultConfig returns the configuration used when no config file or
// flags override it.
func DefaultConfig() Config {
	return Config{
		Search: SearchConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   10 * time.Second,
				UserAgent: "bookscout/0.1",
			},
			Fields: append([]string(nil), DefaultFields...),
			Limit:  DefaultLimit,
		},
		History: HistoryConfig{
			Path:       ".bookscout",
			MaxEntries: 20,
		},
	}
}
