package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// navCmd evaluates the navigation guard for a path against the stored
// session, which makes the gate behavior inspectable from the shell.
var navCmd = &cobra.Command{
	Use:   "nav <path>",
	Short: "Resolve a navigation intent against the route guard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		d := a.guard.Resolve(args[0])
		if !d.Allowed {
			fmt.Printf("redirect -> %s\n", d.RedirectTo)
			return nil
		}
		fmt.Printf("allow -> %s\n", d.RouteName)
		if len(d.Params) > 0 {
			keys := make([]string, 0, len(d.Params))
			for k := range d.Params {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				fmt.Printf("  %s=%s\n", k, d.Params[k])
			}
		}
		return nil
	},
}
