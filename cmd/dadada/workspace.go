package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rodaine/table"
	log "github.com/sirupsen/logrus"

	dadada "github.com/alnah/go-dadada"
	"github.com/alnah/go-dadada/internal/config"
	"github.com/alnah/go-dadada/internal/fileutil"
	"github.com/alnah/go-dadada/internal/workspace"
)

// mergeWorkspaceFlags merges workspace flags into config. CLI values win.
func mergeWorkspaceFlags(f *workspaceFlags, cfg *config.Config) {
	if f.manifestPath != "" {
		cfg.Workspace.ManifestPath = f.manifestPath
	}
	if f.outDir != "" {
		cfg.Workspace.OutDir = f.outDir
	}
	if f.splitPackage {
		cfg.Workspace.SplitPackage = true
	}
	if f.splitExample {
		cfg.Workspace.SplitExample = true
	}
	if len(f.include) > 0 {
		cfg.Workspace.Include = f.include
	}
	if len(f.exclude) > 0 {
		cfg.Workspace.Exclude = f.exclude
	}
}

// runWorkspace renders the examples of every module in a Go workspace.
func runWorkspace(ctx context.Context, f *workspaceFlags, env *Environment) error {
	cfg, envCfg, err := loadConfig(f.common.config, env)
	if err != nil {
		return err
	}
	mergeDocumentFlags(&f.document, cfg)
	mergeAssetFlags(&f.assets, cfg)
	mergePDFFlags(&f.pdf, cfg)
	mergeWorkspaceFlags(f, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Workspace.OutDir == "" {
		return ErrNoOutDir
	}

	logger := newLogger(env.Stderr, envCfg.LogLevel, f.common.verbose, f.common.quiet)

	manifest, err := workspace.Discover(cfg.Workspace.ManifestPath)
	if err != nil {
		return err
	}
	logger.WithFields(log.Fields{
		"manifest": manifest.Path,
		"members":  len(manifest.Members),
	}).Debug("loaded workspace")

	filter, err := workspace.NewFilter(cfg.Workspace.Include, cfg.Workspace.Exclude)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	var members []workspace.MemberExamples
	for _, m := range manifest.Members {
		examples, err := workspace.Examples(m, filter)
		if err != nil {
			return fmt.Errorf("%w: %w", dadada.ErrFileAccess, err)
		}
		logger.WithFields(log.Fields{"member": m.Name, "examples": len(examples)}).Debug("scanned member")
		members = append(members, workspace.MemberExamples{Member: m, Examples: examples})
	}

	jobs := workspace.Plan(members, cfg.Workspace.SplitPackage, cfg.Workspace.SplitExample)
	if len(jobs) == 0 {
		logger.WithField("manifest", manifest.Path).Warn("no examples found")
		return nil
	}

	outDir := cfg.Workspace.OutDir
	if err := prepareDir(outDir, logger); err != nil {
		return err
	}
	for _, d := range workspace.Dirs(jobs) {
		if err := prepareDir(filepath.Join(outDir, filepath.FromSlash(d)), logger); err != nil {
			return err
		}
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

	tbl := table.New("Output", "Files", "Blocks").WithWriter(env.Stdout)
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		output := filepath.Join(outDir, filepath.FromSlash(job.RelPath))
		blocks, err := r.render(ctx, workspaceJob(job, cfg, f.document.language, output))
		if err != nil {
			return err
		}
		tbl.AddRow(output, len(job.Files), blocks)
	}

	if !f.common.quiet {
		tbl.Print()
	}
	return nil
}

// workspaceJob maps a planned job to a render job with file-header blocks.
func workspaceJob(job workspace.Job, cfg *config.Config, language, output string) renderJob {
	sources := make([]dadada.Source, len(job.Files))
	for i, file := range job.Files {
		sources[i] = dadada.Source{Path: file.Path, Title: file.Name, Dir: file.RelDir}
	}

	var first string
	if len(job.Files) > 0 {
		first = job.Files[0].Name
	}
	opts := documentOptions(cfg, first, language)
	if opts.Title == "" {
		opts.Title = job.Title()
	}

	return renderJob{sources: sources, headers: true, opts: opts, output: output}
}

// prepareDir creates dir if missing and warns when it already exists.
func prepareDir(dir string, logger *log.Logger) error {
	existed, err := fileutil.EnsureDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %w", dadada.ErrOutputAccess, err)
	}
	if existed {
		logger.WithField("path", dir).Info("output path already exists, files may be overwritten")
	}
	return nil
}
