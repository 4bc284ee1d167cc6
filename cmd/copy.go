package cmd

import (
	"github.com/spf13/cobra"

	"xfetch/internal/ui"
)

// newCopyCmd builds cortex's copy and paste commands. Both copy <source> to
// exactly <destination>, directories included with their contents.
func newCopyCmd(root *rootOptions, name, short string) *cobra.Command {
	var opts transferOptions
	cmd := &cobra.Command{
		Use:   name + " <source> <destination>",
		Short: short,
		Long: short + `.
Directories are copied with all their contents. An existing destination is
replaced only after you confirm the overwrite.`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := root.executor(int(opts.workers)).Copy(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if res.Skipped {
				ui.Warning("Skipped", "%s not overwritten: %s", noun(res.Kind), res.Path)
				return nil
			}
			ui.Info("Success", "%s copied to: %s (%s)", noun(res.Kind), res.Path, summary(res))
			opts.publish(res.Path)
			return nil
		},
	}
	bindTransferFlags(cmd.Flags(), &opts)
	return cmd
}
