package cmd

import (
	"github.com/spf13/cobra"

	"xfetch/internal/ui"
)

func newImportCmd(root *rootOptions) *cobra.Command {
	var opts transferOptions
	cmd := &cobra.Command{
		Use:   "import <source> [destination]",
		Short: "Import a file or directory",
		Long: `Copy <source> into the directory [destination], which defaults to the
current directory. The copy keeps the source's name. Directories are copied
with all their contents and merged into an existing copy.`,
		Example: `  xfetch import ~/notes.txt
  xfetch import ./assets /srv/www --workers 4`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest := "."
			if len(args) == 2 {
				dest = args[1]
			}

			res, err := root.executor(int(opts.workers)).Import(cmd.Context(), args[0], dest)
			if err != nil {
				return err
			}
			if res.Skipped {
				ui.Warning("Skipped", "Item not overwritten: %s", res.Path)
				return nil
			}
			ui.Info("Success", "%s imported to: %s (%s)", noun(res.Kind), res.Path, summary(res))
			opts.publish(res.Path)
			return nil
		},
	}
	bindTransferFlags(cmd.Flags(), &opts)
	return cmd
}
