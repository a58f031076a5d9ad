package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/liftoff/internal/app"
	"github.com/five82/liftoff/internal/spacex"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootFlags struct {
	configPath string
	prefsPath  string
	endpoint   string
}

func (f *rootFlags) options() app.Options {
	return app.Options{
		ConfigPath: f.configPath,
		PrefsPath:  f.prefsPath,
		Endpoint:   f.endpoint,
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	spacex.Version = version

	root := &cobra.Command{
		Use:   "liftoff",
		Short: "Browse SpaceX launches in the terminal",
		Long: "liftoff fetches the SpaceX launch history once and lets you search,\n" +
			"filter by outcome or date window, and page through it nine at a time.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), flags.options())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/liftoff/config.toml)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "prefs file (default ~/.config/liftoff/prefs.toml)")
	pf.StringVar(&flags.endpoint, "endpoint", "", "launches endpoint, overrides the config file")

	root.AddCommand(newListCmd(flags))
	return root
}
