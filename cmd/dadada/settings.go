package main

import (
	"fmt"
	"time"

	dadada "github.com/alnah/go-dadada"
	"github.com/alnah/go-dadada/internal/config"
)

// loadConfig resolves configuration with precedence
// defaults < config file < environment. Flags are merged by the caller.
// The returned EnvConfig carries settings that are not part of Config.
func loadConfig(path string, env *Environment) (*config.Config, config.EnvConfig, error) {
	envCfg, err := env.LoadEnv()
	if err != nil {
		return nil, config.EnvConfig{}, fmt.Errorf("reading environment: %w", err)
	}

	if path == "" {
		path = envCfg.Config
	}

	cfg := config.DefaultConfig()
	if path != "" {
		cfg, err = config.LoadConfig(path)
		if err != nil {
			return nil, envCfg, fmt.Errorf("loading config: %w", err)
		}
	}

	envCfg.Apply(cfg)
	return cfg, envCfg, nil
}

// mergeDocumentFlags merges page wrapper flags into config. CLI values win.
func mergeDocumentFlags(f *documentFlags, cfg *config.Config) {
	if f.title != "" {
		cfg.Document.Title = f.title
	}
	if f.noCSS {
		cfg.Document.CSS = boolPtr(false)
	}
	if f.noJS {
		cfg.Document.JS = boolPtr(false)
	}
	if f.meta != "" {
		cfg.Document.Meta = f.meta
	}
	if f.header != "" {
		cfg.Document.Header = f.header
	}
	if f.footer != "" {
		cfg.Document.Footer = f.footer
	}
}

// mergeAssetFlags merges asset flags into config.
func mergeAssetFlags(f *assetFlags, cfg *config.Config) {
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.style != "" {
		cfg.Assets.Style = f.style
	}
	if f.template != "" {
		cfg.Assets.Template = f.template
	}
	if f.highlightStyle != "" {
		cfg.Assets.HighlightStyle = f.highlightStyle
	}
	if f.noRawHTML {
		cfg.Markdown.RawHTML = boolPtr(false)
	}
}

// mergePDFFlags merges PDF flags into config.
func mergePDFFlags(f *pdfFlags, cfg *config.Config) {
	if f.enabled {
		cfg.PDF.Enabled = true
	}
	if f.timeout != "" {
		cfg.PDF.Timeout = f.timeout
	}
	if f.page.size != "" {
		cfg.PDF.Page.Size = f.page.size
	}
	if f.page.orientation != "" {
		cfg.PDF.Page.Orientation = f.page.orientation
	}
	if f.page.margin != 0 {
		cfg.PDF.Page.Margin = f.page.margin
	}
}

// assemblerOptions translates config into Assembler options.
func assemblerOptions(cfg *config.Config) ([]dadada.AssemblerOption, error) {
	var opts []dadada.AssemblerOption

	if cfg.Assets.BasePath != "" {
		loader, err := dadada.NewAssetLoader(cfg.Assets.BasePath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, dadada.WithAssetLoader(loader))
	}
	if cfg.Assets.Style != "" {
		opts = append(opts, dadada.WithStyle(cfg.Assets.Style))
	}
	if cfg.Assets.Template != "" {
		opts = append(opts, dadada.WithTemplateSet(cfg.Assets.Template))
	}
	if cfg.Assets.HighlightStyle != "" {
		opts = append(opts, dadada.WithHighlightStyle(cfg.Assets.HighlightStyle))
	}
	if cfg.Markdown.RawHTML != nil {
		opts = append(opts, dadada.WithRawHTML(*cfg.Markdown.RawHTML))
	}
	return opts, nil
}

// documentOptions builds the page wrapper options. language overrides
// detection from firstPath.
func documentOptions(cfg *config.Config, firstPath, language string) dadada.Options {
	opts := dadada.DefaultOptions()
	opts.Title = cfg.Document.Title
	if cfg.Document.CSS != nil {
		opts.WithCSS = *cfg.Document.CSS
	}
	if cfg.Document.JS != nil {
		opts.WithJS = *cfg.Document.JS
	}
	opts.ExtraMeta = cfg.Document.Meta
	opts.ExtraHeader = cfg.Document.Header
	opts.ExtraFooter = cfg.Document.Footer

	opts.Language = language
	if opts.Language == "" && firstPath != "" {
		opts.Language = dadada.DetectLanguage(firstPath)
	}
	return opts
}

// newPDFExporter returns nil when PDF export is disabled.
func newPDFExporter(cfg *config.Config) *dadada.PDFExporter {
	if !cfg.PDF.Enabled {
		return nil
	}
	opts := []dadada.PDFOption{
		dadada.WithPageSettings(dadada.PageSettings{
			Size:        cfg.PDF.Page.Size,
			Orientation: cfg.PDF.Page.Orientation,
			Margin:      cfg.PDF.Page.Margin,
		}),
	}
	if d := cfg.PDFTimeout(); d > 0 {
		opts = append(opts, dadada.WithPDFTimeout(d))
	}
	return dadada.NewPDFExporter(opts...)
}

func boolPtr(b bool) *bool { return &b }

// elapsed formats a duration for debug logs.
func elapsed(start time.Time, now func() time.Time) string {
	return now().Sub(start).Round(time.Millisecond).String()
}
