package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mkowalczyk/briefdesk/internal/assist"
	"github.com/mkowalczyk/briefdesk/internal/catalog"
	"github.com/mkowalczyk/briefdesk/internal/cli/formatter"
	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/mkowalczyk/briefdesk/internal/review"
	"github.com/mkowalczyk/briefdesk/internal/selection"
	"github.com/mkowalczyk/briefdesk/internal/workflow"
)

// errSessionDiscarded signals a deliberate cancel so callers can exit quietly
// instead of printing an error.
var errSessionDiscarded = errors.New("session discarded")

// builderSession drives one authoring run: template picker, form editing,
// deliverable refinement, optional assistant chat, review, commit.
type builderSession struct {
	app     *App
	machine *workflow.Machine
	sel     *selection.Model
	draft   *domain.BriefDraft
}

func newBuilderSession(app *App, machine *workflow.Machine) *builderSession {
	draft := machine.Draft()
	return &builderSession{
		app:     app,
		machine: machine,
		sel:     selection.NewModel(app.Catalog, app.Pricing, draft),
		draft:   draft,
	}
}

// Run loops until the machine lands on a terminal step. A discarded session
// returns errSessionDiscarded; a submitted one commits the draft and prints
// the stored record.
func (s *builderSession) Run(ctx context.Context) error {
	for !s.machine.Step().IsTerminal() {
		var err error
		switch s.machine.Step() {
		case domain.StepTemplatePicker:
			err = s.stepTemplatePicker()
		case domain.StepFormEditing:
			err = s.stepFormEditing()
		case domain.StepDeliverableRefinement:
			err = s.stepRefinement(ctx)
		case domain.StepAIRefinement:
			err = s.stepAssist(ctx)
		}
		if err != nil {
			return err
		}
	}

	if s.machine.Step() == domain.StepDiscarded {
		return errSessionDiscarded
	}
	return s.commit(ctx)
}

func (s *builderSession) stepTemplatePicker() error {
	var choice string
	if err := formTemplatePicker(s.app.Catalog, &choice).Run(); err != nil {
		return s.machine.Discard()
	}

	if choice == catalog.BrowseAllID {
		s.sel.SetBrowseAll()
		if err := s.seedFromCatalog(); err != nil {
			return err
		}
	} else {
		s.sel.SetTemplate(choice)
	}
	return s.machine.Begin()
}

// seedFromCatalog asks for an initial asset pick when no template provides
// one, so the refinement step has lines to work with.
func (s *builderSession) seedFromCatalog() error {
	assets := s.app.Catalog.Assets()
	options := make([]huh.Option[string], 0, len(assets))
	for _, a := range assets {
		label := fmt.Sprintf("%s (%d tk)", a.Name, a.BasePrice)
		if a.Toggle {
			label = a.Name + " (add-on)"
		}
		options = append(options, huh.NewOption(label, a.ID))
	}

	var picked []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Pick your deliverables").
				Description("You can adjust quantities and add custom work next.").
				Options(options...).
				Value(&picked),
		),
	).WithTheme(briefdeskHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return s.machine.Discard()
	}
	for _, id := range picked {
		s.sel.Add(id)
	}
	return nil
}

func (s *builderSession) stepFormEditing() error {
	values := fieldValuesFromDraft(s.draft)
	if err := formBriefFields(s.app.Catalog, values).Run(); err != nil {
		return s.machine.Discard()
	}
	values.apply(s.draft)

	if warning := s.draft.TitleWarning(s.app.Pricing.TitlePattern); warning != "" {
		fmt.Println(formatter.StyleYellow.Render("⚠ " + warning))
	}

	if err := s.machine.RefineDeliverables(); err != nil {
		if errors.Is(err, workflow.ErrNoDeliverables) {
			if seedErr := s.seedFromCatalog(); seedErr != nil {
				return seedErr
			}
			return s.machine.RefineDeliverables()
		}
		return err
	}
	return nil
}

func (s *builderSession) stepRefinement(ctx context.Context) error {
	view := newRefineView(s.app.Catalog, s.sel, s.draft, s.app.Pricing)
	if _, err := tea.NewProgram(view).Run(); err != nil {
		return fmt.Errorf("running refinement view: %w", err)
	}

	switch view.outcome {
	case refineOutcomeBack:
		return s.machine.BackToForm()
	case refineOutcomeCancel:
		return s.machine.Discard()
	}
	return s.review(ctx, false)
}

// review shows the diff summary and asks what to do next. Inside the
// assistant step the only exits are submit and discard.
func (s *builderSession) review(ctx context.Context, inAssist bool) error {
	summary := review.BuildSummary(s.draft, s.machine.Original())
	fmt.Println(formatter.FormatReviewSummary(summary, s.app.Pricing))

	if missing := s.draft.MissingFields(); len(missing) > 0 {
		fmt.Println(formatter.FormatMissingFields(missing))
	}

	options := []huh.Option[string]{huh.NewOption("Submit for review", "submit")}
	if !inAssist {
		if s.app.Assist.Available(ctx) {
			options = append(options, huh.NewOption("Polish with the assistant", "assist"))
		}
		options = append(options,
			huh.NewOption("Keep refining deliverables", "refine"),
			huh.NewOption("Back to the brief form", "form"),
			huh.NewOption("Pick a different template", "template"),
		)
	}
	options = append(options, huh.NewOption("Discard this brief", "discard"))

	var action string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What next?").
				Options(options...).
				Value(&action),
		),
	).WithTheme(briefdeskHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return s.machine.Discard()
	}

	switch action {
	case "submit":
		err := s.machine.Submit()
		var incomplete *domain.IncompleteError
		if errors.As(err, &incomplete) {
			fmt.Println(formatter.FormatMissingFields(incomplete.Missing))
			if inAssist {
				return s.review(ctx, true)
			}
			return s.machine.BackToForm()
		}
		return err
	case "assist":
		return s.machine.RequestAssist()
	case "form":
		return s.machine.BackToForm()
	case "template":
		if err := s.machine.BackToForm(); err != nil {
			return err
		}
		return s.machine.BackToTemplates()
	case "refine":
		return nil // stays on the refinement step
	case "discard":
		return s.machine.Discard()
	}
	return nil
}

// stepAssist runs the advisory chat. Responses never mutate the draft; the
// user copies what they like back into the brief before this step.
func (s *builderSession) stepAssist(ctx context.Context) error {
	fmt.Println(formatter.Header("Brief assistant"))
	fmt.Println(formatter.Dim("Ask for wording help. '/summary' rewrites the summary, '/suggest' proposes deliverables."))
	fmt.Println(formatter.Dim("Press enter on an empty line to review and submit."))

	for {
		var prompt string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("You").
					Placeholder("e.g. tighten the summary for an exec audience").
					Value(&prompt),
			),
		).WithTheme(briefdeskHuhTheme()).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return s.machine.Discard()
		}

		prompt = strings.TrimSpace(prompt)
		if prompt == "" {
			return s.review(ctx, true)
		}

		task := assist.TaskFreeChat
		switch {
		case prompt == "/summary":
			task = assist.TaskRefineSummary
			prompt = "Rewrite the brief summary so an account director can approve it at a glance."
		case prompt == "/suggest":
			task = assist.TaskSuggestDeliverable
			prompt = "Suggest one catalog deliverable that would strengthen this brief, with a reason."
		}

		resp, err := s.app.Assist.Exchange(ctx, assist.ExchangeRequest{
			Task:         task,
			SystemPrompt: assistSystemPrompt(s.draft),
			UserPrompt:   prompt,
		})
		if err != nil {
			fmt.Println(formatter.StyleRed.Render("Assistant unavailable: " + err.Error()))
			continue
		}
		fmt.Printf("\n%s\n\n", resp.Text)
	}
}

// assistSystemPrompt grounds the model in the brief being written.
func assistSystemPrompt(d *domain.BriefDraft) string {
	var sb strings.Builder
	sb.WriteString("You help a marketing ops team polish a production brief. Be concise and concrete.\n")
	if d.Title != "" {
		sb.WriteString("Title: " + d.Title + "\n")
	}
	if d.Objective != "" {
		sb.WriteString("Objective: " + d.Objective + "\n")
	}
	if d.Summary != "" {
		sb.WriteString("Summary: " + d.Summary + "\n")
	}
	if len(d.Items) > 0 {
		sb.WriteString("Deliverables:\n")
		for _, li := range d.Items {
			sb.WriteString("- " + li.Name + " ×" + strconv.Itoa(li.Quantity) + "\n")
		}
	}
	return sb.String()
}

func (s *builderSession) commit(ctx context.Context) error {
	rec, err := s.app.Briefs.Commit(ctx, s.draft, domain.StatusInReview)
	if err != nil {
		return fmt.Errorf("committing brief: %w", err)
	}

	fmt.Printf("\n%s Brief %s submitted for review.\n", formatter.StyleGreen.Render("✔"), formatter.Bold(rec.DisplayID()))
	fmt.Printf("%s\n", formatter.Dim("Inspect it any time with 'briefdesk brief inspect "+rec.DisplayID()+"'."))
	return nil
}
