package cli

import (
	"fmt"
	"strings"

	"github.com/mkowalczyk/briefdesk/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the deliverable catalog",
	}

	cmd.AddCommand(
		newCatalogAssetsCmd(app),
		newCatalogTemplatesCmd(app),
	)

	return cmd
}

func newCatalogAssetsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List catalog deliverables and base prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"ID", "DELIVERABLE", "BASE PRICE"}
			var rows [][]string
			for _, a := range app.Catalog.Assets() {
				price := fmt.Sprintf("%d tk", a.BasePrice)
				name := a.Name
				if a.Toggle {
					name += formatter.Dim(" (add-on)")
				}
				rows = append(rows, []string{formatter.Dim(a.ID), formatter.Bold(name), price})
			}

			fmt.Printf("%s\n", formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newCatalogTemplatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List brief templates and their preset bundles",
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"ID", "TEMPLATE", "PRESET"}
			var rows [][]string
			for _, tmpl := range app.Catalog.Templates() {
				preset := strings.Join(app.Catalog.PresetBundle(tmpl.ID), ", ")
				if preset == "" {
					preset = formatter.Dim("--")
				}
				rows = append(rows, []string{formatter.Dim(tmpl.ID), formatter.Bold(tmpl.Name), preset})
			}

			fmt.Printf("%s\n", formatter.RenderTable(headers, rows))
			return nil
		},
	}
}
