package main

import (
	"fmt"

	"github.com/phanxgames/neonstreet"
	"github.com/spf13/cobra"
)

func layoutCmd(gf *globalFlags) *cobra.Command {
	var (
		width, height float64
		street        string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the shop position table for a viewport",
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
			if street != "" && !nav.JumpToStreet(street) {
				return fmt.Errorf("unknown street %q", street)
			}
			l, err := neonstreet.NewLayout(neonstreet.Viewport{Width: width, Height: height}, nav.ShopCount(), cfg.LayoutParams())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s @ %gx%g\n", nav.ActiveStreet().Name, width, height)
			for i, sh := range nav.Shops() {
				p, _ := l.Position(i)
				r, _ := l.HitRegion(i)
				fmt.Fprintf(out, "%2d  %-18s x=%7.1f y=%6.1f  hit=[%.1f,%.1f %gx%g]\n",
					i, sh.Label, p.X, p.Y, r.X, r.Y, r.Width, r.Height)
			}
			b := l.WorldBounds()
			fmt.Fprintf(out, "world %gx%g\n", b.Width, b.Height)
			return nil
		},
	}

	cmd.Flags().Float64Var(&width, "width", 1280, "viewport width in pixels")
	cmd.Flags().Float64Var(&height, "height", 720, "viewport height in pixels")
	cmd.Flags().StringVar(&street, "street", "", "street name (default: start street)")
	return cmd
}
