package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func executeCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute",
		Short: "Execute a contract with the message in a json file",
		Example: strings.TrimSpace(fmt.Sprintf(`
$ %s execute --contract credit-manager --json msgs/create_account.json
$ %s execute --contract red-bank --json msgs/deposit.json --amount 1000000uosmo`, appName, appName)),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			contract, _ := cmd.Flags().GetString(flagContract)
			path, _ := cmd.Flags().GetString(flagJSON)
			amount, _ := cmd.Flags().GetString(flagAmount)

			msg, err := readMessage(path)
			if err != nil {
				return err
			}
			chain, err := a.Chain()
			if err != nil {
				return err
			}
			return chain.Execute(cmd.Context(), contract, msg, amount, cmd.OutOrStdout())
		},
	}
	addMessageFlags(cmd)
	cmd.Flags().String(flagAmount, "", "amount to send with the tx, e.g. 1000000uosmo")
	return cmd
}

// readMessage returns the contents of the message file.
func readMessage(path string) (string, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read message file %w", err)
	}
	return strings.TrimSpace(string(bz)), nil
}
