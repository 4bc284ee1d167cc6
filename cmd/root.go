package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"xfetch/internal/confirm"
	"xfetch/internal/elevate"
	"xfetch/internal/fsop"
	"xfetch/internal/plog"
	"xfetch/internal/ui"
)

// Version is set at build time with -ldflags "-X xfetch/cmd.Version=...".
var Version = "dev"

// Process-level collaborators, replaced in tests.
var (
	stdin          io.Reader = os.Stdin
	writeClipboard           = clipboard.WriteAll
	newGate                  = elevate.NewGate
)

// rootOptions carries the persistent flags of one command tree.
type rootOptions struct {
	verbose bool
	noColor bool
	yes     bool

	// xfetch only
	noElevate bool
	elevated  bool

	// args is the command line without the program name, handed to the
	// elevated child unchanged.
	args []string
}

func (o *rootOptions) decider() confirm.Decider {
	if o.yes {
		return confirm.Always(true)
	}
	return confirm.NewPrompter(stdin, ui.Output())
}

func (o *rootOptions) executor(workers int) *fsop.Executor {
	exec := fsop.New(o.decider())
	exec.Workers = workers
	return exec
}

func (o *rootOptions) setup(cmd *cobra.Command, _ []string) error {
	// Arguments are valid by now; later failures are not usage mistakes.
	cmd.SilenceUsage = true
	plog.SetVerbose(o.verbose)
	if o.noColor {
		ui.SetColor(false)
	}
	plog.Debug("Dispatching", "command", cmd.CommandPath(), "args", o.args)
	return nil
}

// ensureElevated runs the privilege gate. When an elevated copy of the
// program was started it returns a relaunchError so nothing else runs here.
func (o *rootOptions) ensureElevated(cmd *cobra.Command) error {
	if o.noElevate || cmd == cmd.Root() || cmd.Name() == "help" {
		return nil
	}
	decision, err := newGate().Ensure(cmd.Context(), o.args, o.elevated)
	if err != nil {
		return err
	}
	if decision.Relaunched {
		return &relaunchError{code: decision.ExitCode}
	}
	return nil
}

func newBaseCmd(use, short, long string, opts *rootOptions) *cobra.Command {
	root := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long,
		Version:       Version,
		Args:          usageArgs(cobra.NoArgs),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return &usageError{err: errors.New("a subcommand is required")}
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "print diagnostic details")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	pf.BoolVarP(&opts.yes, "yes", "y", false, "overwrite existing destinations without asking")
	return root
}

func newXfetchCmd(opts *rootOptions) *cobra.Command {
	root := newBaseCmd("xfetch", "File and directory management",
		`xfetch creates files and directories and imports existing ones into a
destination directory. It asks before overwriting anything that already exists.

Every run needs administrative rights: when they are missing, xfetch starts
itself again through sudo (Unix) or "Run as administrator" (Windows).`, opts)

	pf := root.PersistentFlags()
	pf.BoolVar(&opts.noElevate, "no-elevate", false, "do not request elevated privileges")
	pf.BoolVar(&opts.elevated, "elevated", false, "set on the relaunched elevated process")
	_ = pf.MarkHidden("elevated")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := opts.setup(cmd, args); err != nil {
			return err
		}
		return opts.ensureElevated(cmd)
	}

	root.AddCommand(newCreateCmd(opts))
	root.AddCommand(newImportCmd(opts))
	return root
}

func newCortexCmd(opts *rootOptions) *cobra.Command {
	root := newBaseCmd("cortex", "Create, copy and paste files and directories",
		`cortex creates files and directories and copies them to an exact
destination path. It asks before overwriting anything that already exists.`, opts)

	root.PersistentPreRunE = opts.setup

	root.AddCommand(newCreateCmd(opts))
	root.AddCommand(newCopyCmd(opts, "copy", "Copy a file or directory to a destination path"))
	root.AddCommand(newCopyCmd(opts, "paste", "Paste a file or directory at a destination path"))
	return root
}

// run builds a command tree, executes it with args and returns the process
// exit code. Every error is reported here, once.
func run(build func(*rootOptions) *cobra.Command, args []string) int {
	opts := &rootOptions{args: args}
	root := build(opts)
	root.SetArgs(args)
	root.SetErr(ui.Output())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return report(root.ExecuteContext(ctx))
}

// Execute runs the xfetch command line and exits.
func Execute() {
	os.Exit(run(newXfetchCmd, os.Args[1:]))
}

// ExecuteCortex runs the cortex command line and exits.
func ExecuteCortex() {
	os.Exit(run(newCortexCmd, os.Args[1:]))
}
