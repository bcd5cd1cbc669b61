package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tuikit/internal/i18n"
	"github.com/alexisbeaulieu97/tuikit/internal/ui/components"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the built-in themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var data [][]string
			for _, name := range components.ThemeNames() {
				theme, _ := components.ThemeByName(name)
				primary := theme.Palette.Primary.Base
				surface := theme.Palette.Surface.Base
				data = append(data, []string{
					name,
					primary.Light + " / " + primary.Dark,
					surface.Light + " / " + surface.Dark,
				})
			}
			renderTable(cmd.OutOrStdout(), []string{"NAME", "PRIMARY", "SURFACE"}, data)
			return nil
		},
	}
}

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List the message catalogs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := i18n.Load()
			if err != nil {
				return fmt.Errorf("load message catalogs: %w", err)
			}

			var data [][]string
			for _, locale := range catalog.Locales() {
				bundle := catalog.Bundle(locale)
				def := ""
				if locale == i18n.DefaultLocale {
					def = "*"
				}
				data = append(data, []string{
					locale + def,
					strconv.Itoa(len(bundle.Keys())),
					bundle.Message("combobox.no_results"),
				})
			}
			renderTable(cmd.OutOrStdout(), []string{"LOCALE", "KEYS", "SAMPLE"}, data)
			return nil
		},
	}
}

func renderTable(w io.Writer, header []string, data [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}
