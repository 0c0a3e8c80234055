package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func queryCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a smart query against a contract",
		Example: strings.TrimSpace(fmt.Sprintf(`
$ %s query --contract credit-manager --json msgs/config.json`, appName)),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contract, _ := cmd.Flags().GetString(flagContract)
			path, _ := cmd.Flags().GetString(flagJSON)

			msg, err := readMessage(path)
			if err != nil {
				return err
			}
			chain, err := a.Chain()
			if err != nil {
				return err
			}
			return chain.Query(cmd.Context(), contract, msg, cmd.OutOrStdout())
		},
	}
	return addMessageFlags(cmd)
}
