package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/mkowalczyk/briefdesk/internal/service"
	"github.com/mkowalczyk/briefdesk/internal/workflow"
	"github.com/spf13/cobra"
)

func newNewCmd(app *App) *cobra.Command {
	var fromID string
	var reviseID string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start an interactive brief-building session",
		Long: `Start an interactive brief-building session.

With --from, the new brief starts as a copy of an existing one with the
title, due date and leads cleared. With --revise, the session edits a full
copy and the review screen shows what changed against the original.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Interactive {
				return fmt.Errorf("'briefdesk new' needs an interactive terminal")
			}
			if fromID != "" && reviseID != "" {
				return fmt.Errorf("--from and --revise are mutually exclusive")
			}

			ctx := context.Background()
			machine, err := startMachine(ctx, app, fromID, reviseID)
			if err != nil {
				return err
			}

			session := newBuilderSession(app, machine)
			if err := session.Run(ctx); err != nil {
				if errors.Is(err, errSessionDiscarded) {
					fmt.Println("Brief discarded. Nothing was saved.")
					return nil
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&fromID, "from", "", "Duplicate an existing brief (id or prefix)")
	cmd.Flags().StringVar(&reviseID, "revise", "", "Open a change request against an existing brief (id or prefix)")

	return cmd
}

// startMachine builds the workflow machine for a fresh, duplicated or revised
// session. Pre-populated drafts skip the template picker.
func startMachine(ctx context.Context, app *App, fromID, reviseID string) (*workflow.Machine, error) {
	switch {
	case reviseID != "":
		draft, rec, err := app.Briefs.StartChangeRequest(ctx, reviseID)
		if err != nil {
			return nil, err
		}
		fmt.Printf("Opening a change request against %s.\n", rec.DisplayID())
		machine := workflow.NewMachineAt(draft, domain.StepFormEditing)
		machine.EnterChangeRequest()
		return machine, nil

	case fromID != "":
		draft, err := app.Briefs.StartDuplicate(ctx, fromID)
		if err != nil {
			return nil, err
		}
		return workflow.NewMachineAt(draft, domain.StepFormEditing), nil

	default:
		return workflow.NewMachine(service.NewDraft()), nil
	}
}
