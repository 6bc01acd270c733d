package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. The root command renders files;
// subcommands cover workspaces and diagnostics.
func newRootCmd(env *Environment) *cobra.Command {
	flags := &renderFlags{}

	root := &cobra.Command{ //nolint:exhaustruct
		Use:   "dadada [flags] <file>...",
		Short: "Render annotated source files as one literate HTML page",
		Long: `dadada pairs each comment passage of a source file with the code it
annotates and writes the result as a single self-contained HTML page.
Comments are rendered as Markdown; code is shown verbatim.

Default flags can be set in DADADA_FLAGS, e.g. DADADA_FLAGS="--no-js".`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrNoInput
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args, flags, env)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	fs := root.Flags()
	addCommonFlags(fs, &flags.common)
	fs.StringVarP(&flags.output, "output", "o", "", "output file (default: stdout)")
	fs.BoolVar(&flags.fileHeaders, "file-headers", false, "insert a header block before each file")
	addDocumentFlags(fs, &flags.document, true)
	addAssetFlags(fs, &flags.assets)
	addPDFFlags(fs, &flags.pdf)

	root.SetOut(env.Stdout)
	root.SetErr(env.Stderr)
	root.SetFlagErrorFunc(usageError)

	root.AddCommand(
		newWorkspaceCmd(env),
		newDoctorCmd(env),
		newVersionCmd(env),
	)
	return root
}

func newWorkspaceCmd(env *Environment) *cobra.Command {
	flags := &workspaceFlags{}

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "workspace [flags]",
		Aliases: []string{"ws"},
		Short:   "Render the examples of every module in a go.work or go.mod",
		Long: `Each examples/<name>.go file and each examples/<name>/ directory of a
module is one example. Without --split-package every example goes into
<out-dir>/index.html; with it each module gets <out-dir>/<module>.html.
--split-example writes one page per example under a directory per group.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWorkspace(cmd.Context(), flags, env)
		},
	}

	fs := cmd.Flags()
	addCommonFlags(fs, &flags.common)
	addWorkspaceFlags(fs, flags)
	addDocumentFlags(fs, &flags.document, false)
	addAssetFlags(fs, &flags.assets)
	addPDFFlags(fs, &flags.pdf)
	cmd.SetFlagErrorFunc(usageError)
	return cmd
}

func newVersionCmd(env *Environment) *cobra.Command {
	return &cobra.Command{ //nolint:exhaustruct
		Use:   "version",
		Short: "Show version information",
		Args:  noArgs,
		Run: func(*cobra.Command, []string) {
			fmt.Fprintf(env.Stdout, "dadada %s\n", Version)
		},
	}
}

func usageError(_ *cobra.Command, err error) error {
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %q takes no arguments, got %q", ErrUsage, cmd.CommandPath(), args)
	}
	return nil
}

// run executes the command line and returns the process exit code.
// Errors are printed to stderr with an actionable hint when one applies.
func run(ctx context.Context, args []string, env *Environment) int {
	root := newRootCmd(env)
	if args == nil {
		args = []string{} // cobra reads os.Args on nil
	}
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}
	return ExitSuccess
}
