package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func contractsCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contracts [name-or-address]",
		Short: "List the contracts file, or resolve one entry by name or address",
		Example: strings.TrimSpace(fmt.Sprintf(`
$ %s contracts
$ %s contracts credit-manager
$ %s contracts osmo1...`, appName, appName, appName)),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := a.Registry()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				if name, ok := reg.ResolveName(args[0]); ok {
					fmt.Fprintln(out, name)
					return nil
				}
				address, err := reg.ResolveAddress(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, address)
				return nil
			}

			jsn, err := cmd.Flags().GetBool(flagJSON)
			if err != nil {
				return err
			}
			if jsn {
				bz, err := json.Marshal(reg.Entries())
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(bz))
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, e := range reg.Entries() {
				fmt.Fprintf(tw, "%s\t%s\n", e.Name, e.Address)
			}
			return tw.Flush()
		},
	}
	return addJsonFlag(cmd)
}
