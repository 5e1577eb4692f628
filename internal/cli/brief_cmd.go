package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mkowalczyk/briefdesk/internal/cli/formatter"
	"github.com/mkowalczyk/briefdesk/internal/contract"
	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/mkowalczyk/briefdesk/internal/importer"
	"github.com/spf13/cobra"
)

func newBriefCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "brief",
		Short: "Manage committed briefs",
	}

	cmd.AddCommand(
		newBriefListCmd(app),
		newBriefInspectCmd(app),
		newBriefStatusCmd(app),
		newBriefRemoveCmd(app),
		newBriefExportCmd(app),
		newBriefImportCmd(app),
	)

	return cmd
}

func newBriefListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List committed briefs",
		RunE: func(cmd *cobra.Command, args []string) error {
			briefs, err := app.Briefs.List(context.Background())
			if err != nil {
				return err
			}

			if len(briefs) == 0 {
				fmt.Println("No briefs yet. Start one with 'briefdesk new'.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatBriefList(briefs, app.Pricing))
			return nil
		},
	}
}

func newBriefInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "inspect ID",
		Aliases: []string{"show"},
		Short:   "Show one brief in full",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Briefs.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatBriefInspect(rec, app.Pricing))
			return nil
		},
	}
}

func newBriefStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status ID STATUS",
		Short: "Set a brief's status (draft, in_review, scoped, signed)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status := domain.BriefStatus(args[1])
			if !domain.ValidBriefStatuses[args[1]] {
				return fmt.Errorf("unknown status %q", args[1])
			}

			if err := app.Briefs.UpdateStatus(context.Background(), args[0], status); err != nil {
				return err
			}

			fmt.Printf("Brief %s is now %s\n", args[0], formatter.StatusPill(status))
			return nil
		},
	}
}

func newBriefRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Delete a committed brief",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete without --yes")
			}

			if err := app.Briefs.Delete(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Deleted brief %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm deletion")

	return cmd
}

func newBriefExportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export ID",
		Short: "Print one brief as versioned JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := app.Briefs.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(contract.ExportBrief(rec, app.Pricing), "", "  ")
			if err != nil {
				return fmt.Errorf("encoding export: %w", err)
			}

			fmt.Printf("%s\n", data)
			return nil
		},
	}
}

func newBriefImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a brief draft from JSON and commit it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := importer.LoadDraftFile(args[0])
			if err != nil {
				return err
			}

			if errs := importer.ValidateDraftFile(file); len(errs) > 0 {
				fmt.Println(formatter.StyleRed.Render(fmt.Sprintf("Import file has %d problem(s):", len(errs))))
				for _, e := range errs {
					fmt.Printf("  ✗ %s\n", e)
				}
				return fmt.Errorf("import aborted")
			}

			draft, err := importer.Convert(file, app.Catalog, app.Pricing)
			if err != nil {
				return err
			}

			rec, err := app.Briefs.Commit(context.Background(), draft, domain.StatusDraft)
			if err != nil {
				var incomplete *domain.IncompleteError
				if errors.As(err, &incomplete) {
					fmt.Println(formatter.FormatMissingFields(incomplete.Missing))
					return fmt.Errorf("import aborted: brief is incomplete")
				}
				return err
			}

			fmt.Printf("Imported brief %s (%s)\n", formatter.Bold(rec.DisplayID()), rec.Title)
			return nil
		},
	}
}
