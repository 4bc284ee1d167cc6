package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"xfetch/internal/ui"
)

type createOptions struct {
	directory bool
}

func bindCreateFlags(fs *pflag.FlagSet, opts *createOptions) {
	fs.BoolVarP(&opts.directory, "directory", "d", false, "create a directory instead of a file")
}

func newCreateCmd(root *rootOptions) *cobra.Command {
	var opts createOptions
	cmd := &cobra.Command{
		Use:   "create <path>",
		Short: "Create a file or directory",
		Long: `Create an empty file at <path>, or an empty directory with --directory.
The parent directory must already exist. An existing file is truncated only
after you confirm the overwrite.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := root.executor(1).Create(args[0], opts.directory)
			if err != nil {
				return err
			}
			if res.Skipped {
				ui.Warning("Skipped", "%s not overwritten: %s", noun(res.Kind), res.Path)
				return nil
			}
			ui.Info("Success", "%s created: %s", noun(res.Kind), res.Path)
			return nil
		},
	}
	bindCreateFlags(cmd.Flags(), &opts)
	return cmd
}
