package cli

import (
	"github.com/mkowalczyk/briefdesk/internal/assist"
	"github.com/mkowalczyk/briefdesk/internal/catalog"
	"github.com/mkowalczyk/briefdesk/internal/pricing"
	"github.com/mkowalczyk/briefdesk/internal/service"
	"github.com/spf13/cobra"
)

// App holds everything CLI commands need: the brief list service, the loaded
// catalog, pricing configuration, and the assist client.
type App struct {
	Briefs  service.BriefService
	Catalog *catalog.Catalog
	Pricing pricing.Config
	Assist  assist.Client

	// Interactive reports whether stdout is a terminal. The builder session
	// refuses to start without one.
	Interactive bool
}

// NewRootCmd creates the top-level "briefdesk" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "briefdesk",
		Short: "Author and track creative-production briefs",
	}

	root.AddCommand(
		newNewCmd(app),
		newBriefCmd(app),
		newCatalogCmd(app),
	)

	return root
}
