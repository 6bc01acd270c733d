package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	dadada "github.com/alnah/go-dadada"
	"github.com/alnah/go-dadada/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage          = errors.New("invalid usage")
	ErrNoInput        = errors.New("no input files")
	ErrPDFNeedsOutput = errors.New("--pdf requires an output file")
	ErrNoOutDir       = errors.New("no output directory (use --out-dir)")
)

// outputPermissions is rw-r--r--.
const outputPermissions = 0o644

// renderJob is one document to produce.
type renderJob struct {
	sources []dadada.Source
	headers bool
	opts    dadada.Options
	output  string // empty = stdout
}

// renderer renders jobs with one Assembler and an optional PDF exporter.
type renderer struct {
	asm      *dadada.Assembler
	exporter *dadada.PDFExporter // nil when PDF export is disabled
	stdout   io.Writer
	logger   *log.Logger
}

// render extracts, assembles and writes one job. It returns the block count.
func (r *renderer) render(ctx context.Context, job renderJob) (int, error) {
	blocks, err := dadada.Collect(job.sources, job.headers)
	if err != nil {
		return 0, err
	}
	r.logger.WithFields(log.Fields{
		"files":  len(job.sources),
		"blocks": len(blocks),
	}).Debug("extracted blocks")

	if job.output == "" {
		return len(blocks), r.asm.Write(r.stdout, blocks, job.opts)
	}

	html, err := r.asm.Build(blocks, job.opts)
	if err != nil {
		return 0, err
	}
	if err := writeOutput(job.output, []byte(html)); err != nil {
		return 0, err
	}
	r.logger.WithField("path", job.output).Debug("wrote HTML")

	if r.exporter != nil {
		pdfPath := fileutil.ReplaceExt(job.output, ".pdf")
		pdf, err := r.exporter.Export(ctx, html)
		if err != nil {
			return 0, err
		}
		if err := writeOutput(pdfPath, pdf); err != nil {
			return 0, err
		}
		r.logger.WithField("path", pdfPath).Debug("wrote PDF")
	}

	return len(blocks), nil
}

// close releases the browser, if any.
func (r *renderer) close() {
	if r.exporter != nil {
		if err := r.exporter.Close(); err != nil {
			r.logger.WithError(err).Warn("closing browser")
		}
	}
}

// writeOutput writes data atomically so a failed run leaves no partial file.
func writeOutput(path string, data []byte) error {
	if err := fileutil.WriteFileAtomic(path, data, outputPermissions); err != nil {
		return fmt.Errorf("%w: %s: %w", dadada.ErrOutputAccess, path, err)
	}
	return nil
}

// runRender renders the given source files into one document.
func runRender(ctx context.Context, args []string, f *renderFlags, env *Environment) error {
	if len(args) == 0 {
		return ErrNoInput
	}

	cfg, envCfg, err := loadConfig(f.common.config, env)
	if err != nil {
		return err
	}
	mergeDocumentFlags(&f.document, cfg)
	mergeAssetFlags(&f.assets, cfg)
	mergePDFFlags(&f.pdf, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(env.Stderr, envCfg.LogLevel, f.common.verbose, f.common.quiet)

	if cfg.PDF.Enabled && f.output == "" {
		return ErrPDFNeedsOutput
	}

	asmOpts, err := assemblerOptions(cfg)
	if err != nil {
		return err
	}
	asm, err := dadada.NewAssembler(asmOpts...)
	if err != nil {
		return err
	}

	r := &renderer{asm: asm, exporter: newPDFExporter(cfg), stdout: env.Stdout, logger: logger}
	defer r.close()

	start := env.Now()
	blocks, err := r.render(ctx, renderJob{
		sources: dadada.Paths(args...),
		headers: f.fileHeaders,
		opts:    documentOptions(cfg, args[0], f.document.language),
		output:  f.output,
	})
	if err != nil {
		return err
	}

	if f.output != "" {
		logger.WithFields(log.Fields{
			"path":    f.output,
			"blocks":  blocks,
			"elapsed": elapsed(start, env.Now),
		}).Info("rendered")
	}
	return nil
}
