package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "DADADA"

// EnvConfig holds overrides read from DADADA_* environment variables.
// Pointer and empty fields mean "not set".
type EnvConfig struct {
	// Env: DADADA_CONFIG
	Config string `envconfig:"CONFIG"`

	// Env: DADADA_TITLE
	Title string `envconfig:"TITLE"`

	// Env: DADADA_NO_CSS
	NoCSS *bool `envconfig:"NO_CSS"`

	// Env: DADADA_NO_JS
	NoJS *bool `envconfig:"NO_JS"`

	// Env: DADADA_ASSET_PATH
	AssetPath string `envconfig:"ASSET_PATH"`

	// Env: DADADA_TEMPLATE
	Template string `envconfig:"TEMPLATE"`

	// Env: DADADA_HIGHLIGHT_STYLE
	HighlightStyle string `envconfig:"HIGHLIGHT_STYLE"`

	// Env: DADADA_TIMEOUT
	Timeout string `envconfig:"TIMEOUT"`

	// Env: DADADA_LOG_LEVEL
	LogLevel string `envconfig:"LOG_LEVEL"`
}

// LoadFromEnv reads DADADA_* variables.
func LoadFromEnv() (EnvConfig, error) {
	var env EnvConfig
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return EnvConfig{}, fmt.Errorf("%w: %v", ErrInvalidValue, err)
	}
	return env, nil
}

// Apply overlays the set fields of e onto cfg.
func (e EnvConfig) Apply(cfg *Config) {
	if e.Title != "" {
		cfg.Document.Title = e.Title
	}
	if e.NoCSS != nil {
		css := !*e.NoCSS
		cfg.Document.CSS = &css
	}
	if e.NoJS != nil {
		js := !*e.NoJS
		cfg.Document.JS = &js
	}
	if e.AssetPath != "" {
		cfg.Assets.BasePath = e.AssetPath
	}
	if e.Template != "" {
		cfg.Assets.Template = e.Template
	}
	if e.HighlightStyle != "" {
		cfg.Assets.HighlightStyle = e.HighlightStyle
	}
	if e.Timeout != "" {
		cfg.PDF.Timeout = e.Timeout
	}
}
