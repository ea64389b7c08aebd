package cli

import (
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/internal/console"
)

func newShellCmd(flags *graphFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive prompt with command and vertex completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newSession(cmd, flags)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "%s Type help for commands, exit or Ctrl-D to leave.", StyleTitle.Render("wgraph shell"))
			defer printSuccess(out, "Bye!")

			p := prompt.New(
				func(line string) {
					if err := session.Execute(line); err != nil {
						printError(cmd.ErrOrStderr(), err)
					}
				},
				completer(session.Graph()),
				prompt.OptionPrefix("wgraph> "),
				prompt.OptionPrefixTextColor(prompt.Cyan),
				prompt.OptionSuggestionTextColor(prompt.Yellow),
				prompt.OptionSuggestionBGColor(prompt.Black),
				prompt.OptionSetExitCheckerOnInput(isExit),
			)
			p.Run()

			return cmd.Context().Err()
		},
	}
}

// isExit stops the prompt once "exit" or "quit" is submitted.
func isExit(in string, breakline bool) bool {
	word := strings.ToLower(strings.TrimSpace(in))
	return breakline && (word == "exit" || word == "quit")
}

// completer suggests command names for the first word and vertex names for
// the following ones.
func completer(g *core.Graph[string]) prompt.Completer {
	commands := make([]prompt.Suggest, 0, len(console.Commands))
	for _, c := range console.Commands {
		commands = append(commands, prompt.Suggest{
			Text:        c.Name,
			Description: strings.TrimSpace(c.Args + " - " + c.Usage),
		})
	}

	return func(d prompt.Document) []prompt.Suggest {
		words := strings.Fields(d.TextBeforeCursor())
		if len(words) == 0 {
			return []prompt.Suggest{}
		}
		if len(words) == 1 && !strings.HasSuffix(d.TextBeforeCursor(), " ") {
			return prompt.FilterHasPrefix(commands, words[0], true)
		}

		vertices := make([]prompt.Suggest, 0, g.VertexCount())
		for v := range g.Vertices().Values() {
			vertices = append(vertices, prompt.Suggest{Text: v})
		}
		return prompt.FilterHasPrefix(vertices, d.GetWordBeforeCursor(), false)
	}
}
