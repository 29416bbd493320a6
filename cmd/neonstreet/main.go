// Command neonstreet opens the neon shop street in a window or a terminal.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/phanxgames/neonstreet"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "~/.config/neonstreet/street.yaml"

type globalFlags struct {
	configPath string
	logLevel   string
}

func main() {
	var gf globalFlags

	rootCmd := &cobra.Command{
		Use:           "neonstreet",
		Short:         "Walk a street of neon shops",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return neonstreet.InitLogger(gf.logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&gf.configPath, "config", "c", "", "street config file (default "+defaultConfigPath+" when present)")
	rootCmd.PersistentFlags().StringVar(&gf.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd(&gf))
	rootCmd.AddCommand(tuiCmd(&gf))
	rootCmd.AddCommand(validateCmd(&gf))
	rootCmd.AddCommand(layoutCmd(&gf))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "neonstreet:", err)
		os.Exit(1)
	}
}

// loadConfig reads the --config file, or the default path when it exists,
// or falls back to the built-in street.
func loadConfig(path string) (neonstreet.Config, error) {
	if path != "" {
		return neonstreet.LoadConfig(path)
	}
	def, err := homedir.Expand(defaultConfigPath)
	if err != nil {
		return neonstreet.DefaultConfig(), nil
	}
	if _, err := os.Stat(def); errors.Is(err, fs.ErrNotExist) {
		neonstreet.Logger().Debug("no config file, using defaults", "path", def)
		return neonstreet.DefaultConfig(), nil
	}
	return neonstreet.LoadConfig(def)
}
