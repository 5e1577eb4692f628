package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/mkowalczyk/briefdesk/internal/catalog"
	"github.com/mkowalczyk/briefdesk/internal/cli/formatter"
	"github.com/mkowalczyk/briefdesk/internal/domain"
)

// briefdeskHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func briefdeskHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// formTemplatePicker builds the entry form: one concrete template, or the
// browse-everything pseudo-template.
func formTemplatePicker(cat *catalog.Catalog, result *string) *huh.Form {
	templates := cat.Templates()
	options := make([]huh.Option[string], 0, len(templates)+1)
	for _, tmpl := range templates {
		label := tmpl.Name
		if n := len(cat.PresetBundle(tmpl.ID)); n > 0 {
			label = fmt.Sprintf("%s — %d preset deliverables", tmpl.Name, n)
		}
		options = append(options, huh.NewOption(label, tmpl.ID))
	}
	options = append(options, huh.NewOption("Browse the full catalog", catalog.BrowseAllID))

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How do you want to start?").
				Options(options...).
				Value(result),
		),
	).WithTheme(briefdeskHuhTheme()).WithShowHelp(false)
}

// briefFieldValues carries the form-editing answers until they are committed
// onto the draft. Pending text-box contents never live on the draft itself.
type briefFieldValues struct {
	Title          string
	DueDate        string
	Leads          []string
	UnderNDA       bool
	Objective      string
	TargetAudience string
	Summary        string
	WorkTypes      []string
	Channels       []string
	Outputs        []string
	Watermark      bool
}

func fieldValuesFromDraft(d *domain.BriefDraft) *briefFieldValues {
	v := &briefFieldValues{
		Title:          d.Title,
		Leads:          append([]string(nil), d.Leads...),
		UnderNDA:       d.UnderNDA,
		Objective:      d.Objective,
		TargetAudience: d.TargetAudience,
		Summary:        d.Summary,
		WorkTypes:      append([]string(nil), d.WorkTypes...),
		Channels:       append([]string(nil), d.Channels...),
		Outputs:        append([]string(nil), d.Outputs...),
		Watermark:      d.WatermarkAllFiles,
	}
	if d.DueDate != nil {
		v.DueDate = d.DueDate.Format("2006-01-02")
	}
	return v
}

// apply commits the answers onto the draft. The due date has already been
// validated by the form.
func (v *briefFieldValues) apply(d *domain.BriefDraft) {
	d.Title = strings.TrimSpace(v.Title)
	d.Leads = nil
	for _, id := range v.Leads {
		d.AddLead(id)
	}
	d.UnderNDA = v.UnderNDA
	d.Objective = v.Objective
	d.TargetAudience = v.TargetAudience
	d.Summary = v.Summary
	d.SetWorkTypes(v.WorkTypes)
	d.SetChannels(v.Channels)
	d.SetOutputs(v.Outputs)

	if v.DueDate == "" {
		d.DueDate = nil
	} else if due, err := time.Parse("2006-01-02", v.DueDate); err == nil {
		d.DueDate = &due
	}
}

// formBriefFields builds the main form-editing step.
func formBriefFields(cat *catalog.Catalog, v *briefFieldValues) *huh.Form {
	leads := cat.Leads()
	leadOptions := make([]huh.Option[string], 0, len(leads))
	for _, l := range leads {
		label := l.Name
		if l.Role != "" {
			label = fmt.Sprintf("%s — %s", l.Name, l.Role)
		}
		leadOptions = append(leadOptions, huh.NewOption(label, l.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project title").
				Value(&v.Title),
			huh.NewInput().
				Title("Due date").
				Description("YYYY-MM-DD, leave empty to decide later").
				Validate(validateOptionalDate).
				Value(&v.DueDate),
			huh.NewMultiSelect[string]().
				Title("Project leads").
				Options(leadOptions...).
				Value(&v.Leads),
			huh.NewConfirm().
				Title("Under NDA?").
				Value(&v.UnderNDA),
		),
		huh.NewGroup(
			huh.NewText().
				Title("Objective").
				Lines(2).
				Value(&v.Objective),
			huh.NewInput().
				Title("Target audience").
				Value(&v.TargetAudience),
			huh.NewText().
				Title("Brief summary").
				Lines(4).
				Value(&v.Summary),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Work types").
				Options(stringOptions(cat.WorkTypes())...).
				Value(&v.WorkTypes),
			huh.NewMultiSelect[string]().
				Title("Channels").
				Options(stringOptions(cat.Channels())...).
				Value(&v.Channels),
			huh.NewMultiSelect[string]().
				Title("Expected outputs").
				Options(stringOptions(cat.Outputs())...).
				Value(&v.Outputs),
		),
	).WithTheme(briefdeskHuhTheme()).WithShowHelp(false)
}

// customItemValues carries the add-custom-deliverable form answers.
type customItemValues struct {
	Name        string
	Description string
	Quantity    string
}

func formCustomItem(v *customItemValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Deliverable name").
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name must not be blank")
					}
					return nil
				}).
				Value(&v.Name),
			huh.NewText().
				Title("What should it cover?").
				Lines(3).
				Value(&v.Description),
			huh.NewInput().
				Title("Quantity").
				Placeholder("1").
				Value(&v.Quantity),
		),
	).WithTheme(briefdeskHuhTheme()).WithShowHelp(false)
}

func formConfirm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(result),
		),
	).WithTheme(briefdeskHuhTheme()).WithShowHelp(false)
}

func stringOptions(values []string) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		options = append(options, huh.NewOption(v, v))
	}
	return options
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	return nil
}
