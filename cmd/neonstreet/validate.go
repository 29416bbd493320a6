package main

import (
	"fmt"

	"github.com/phanxgames/neonstreet"
	"github.com/spf13/cobra"
)

func validateCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check a street config without opening a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(gf.configPath)
			if err != nil {
				return err
			}
			nav, err := neonstreet.NewNavigator(cfg.StreetList(), cfg.NavigatorOptions())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, st := range nav.Streets() {
				fmt.Fprintf(out, "%d  %-20s %d shops, enters at %d\n", i, st.Name, len(st.Shops), nav.ResetIndex(i))
			}
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
}
