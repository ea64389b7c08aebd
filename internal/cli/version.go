package cli

import (
	"runtime"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			printKeyValue(out, "version", StyleTitle.Render(version))
			printKeyValue(out, "commit", commit)
			printKeyValue(out, "built", date)
			printKeyValue(out, "go", StyleDim.Render(runtime.Version()))
		},
	}
}
