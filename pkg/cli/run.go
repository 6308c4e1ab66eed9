package cli

import (
	"fmt"
	"os"

	"github.com/datatug/vfstug/pkg/commands"
	"github.com/spf13/cobra"
)

func newRunCmd(app *App) *cobra.Command {
	var printAfter bool
	cmd := &cobra.Command{
		Use:   "run <script.yaml>",
		Short: "Apply a YAML command script to the tree",
		Long: `Runs each step of the script through the same commands the explorer uses.
Ids in a step may refer to an earlier step as $N, the first id step N produced.
The run stops at the first rejected step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			script, err := commands.ParseScript(f)
			_ = f.Close()
			if err != nil {
				return err
			}

			e, err := app.load()
			if err != nil {
				return err
			}
			defer e.close()

			out := cmd.OutOrStdout()
			outcomes, runErr := script.Run(commandContext(cmd), e.dispatcher)
			for i, outcome := range outcomes {
				if _, err := fmt.Fprintf(out, "%d. %s\n", i+1, outcome.Message); err != nil {
					return err
				}
			}
			if runErr != nil {
				return runErr
			}
			if printAfter {
				s := e.dispatcher.Session()
				return printTree(out, e, s.Store().RootID())
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&printAfter, "print-tree", false, "print the tree after the script")
	return cmd
}
