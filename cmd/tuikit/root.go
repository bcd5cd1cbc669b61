package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
	logFile    string
	theme      string
	locale     string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tuikit",
		Short:         "tuikit showcases theme-aware terminal widgets",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the gallery
			return runGalleryCommand(cmd, flags, false)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Gallery configuration file (.yaml, .yml or .toml)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: text or json")
	pf.StringVar(&flags.logFile, "log-file", "", "Append logs to this file")
	pf.StringVar(&flags.theme, "theme", "", "Theme name (see 'tuikit themes')")
	pf.StringVar(&flags.locale, "locale", "", "Message locale, e.g. fr or de-CH (see 'tuikit locales')")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newThemesCmd())
	cmd.AddCommand(newLocalesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
