package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newRunCmd(flags *graphFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run [script]",
		Short: "Execute console commands from a script file or stdin",
		Long: `Run executes one console command per line, stopping at the first failing line.
Blank lines and lines starting with # are skipped. Without a script argument,
commands are read from stdin.`,
		Example: `  wgraph run build.wg
  printf 'vertex A\nvertex B\nedge A B 3\nmatrix\n' | wgraph run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			session, err := newSession(cmd, flags)
			if err != nil {
				return err
			}
			return runScript(cmd, session.Execute, in)
		},
	}
}

// runScript feeds every line of in to exec, checking for cancellation
// between lines.
func runScript(cmd *cobra.Command, exec func(string) error, in io.Reader) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	scanner := bufio.NewScanner(in)
	for n := 1; scanner.Scan(); n++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := exec(scanner.Text()); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	logger.Debug("script finished")

	return nil
}
