package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkowalczyk/briefdesk/internal/catalog"
	"github.com/mkowalczyk/briefdesk/internal/cli/formatter"
	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/mkowalczyk/briefdesk/internal/pricing"
	"github.com/mkowalczyk/briefdesk/internal/selection"
)

// refinePhase tracks what the refinement screen is currently asking for.
type refinePhase int

const (
	refinePhaseList refinePhase = iota
	refinePhaseBrowse
	refinePhaseQty
	refinePhaseSpec
	refinePhaseWeek
	refinePhaseCustomName
	refinePhaseCustomDesc
	refinePhaseCustomQty
)

// refineOutcome says where the session goes after the view quits.
type refineOutcome int

const (
	refineOutcomeNext refineOutcome = iota
	refineOutcomeBack
	refineOutcomeCancel
)

// refineView is the deliverable-refinement step: a line-item list with
// quantity, specification and delivery-week editing, catalog browsing, and
// custom deliverables.
type refineView struct {
	cat     *catalog.Catalog
	sel     *selection.Model
	draft   *domain.BriefDraft
	pricing pricing.Config

	phase   refinePhase
	cursor  int
	browse  int
	input   textinput.Model
	custom  struct{ name, desc string }
	errMsg  string
	outcome refineOutcome
}

func newRefineView(cat *catalog.Catalog, sel *selection.Model, draft *domain.BriefDraft, cfg pricing.Config) *refineView {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 300

	v := &refineView{
		cat:     cat,
		sel:     sel,
		draft:   draft,
		pricing: cfg,
		input:   ti,
	}
	v.sel.OnRemove(func(string) {
		if v.cursor >= len(draft.Items) && v.cursor > 0 {
			v.cursor--
		}
	})
	return v
}

func (v *refineView) Init() tea.Cmd { return nil }

func (v *refineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if v.phase != refinePhaseList && v.phase != refinePhaseBrowse {
		return v.updateInput(key)
	}
	if v.phase == refinePhaseBrowse {
		return v.updateBrowse(key)
	}
	return v.updateList(key)
}

func (v *refineView) updateList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	v.errMsg = ""
	items := v.draft.Items

	switch key.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(items)-1 {
			v.cursor++
		}
	case "+", "=":
		if li := v.current(); li != nil {
			v.sel.AdjustQuantity(li.ID, +1)
		}
	case "-":
		if li := v.current(); li != nil {
			v.sel.AdjustQuantity(li.ID, -1)
		}
	case "x", "delete":
		if li := v.current(); li != nil {
			v.sel.Remove(li.ID)
		}
	case "q":
		if li := v.current(); li != nil {
			v.startInput(refinePhaseQty, fmt.Sprintf("%d", li.Quantity))
		}
	case "e":
		if li := v.current(); li != nil {
			v.startInput(refinePhaseSpec, li.Specification)
		}
	case "w":
		if li := v.current(); li != nil {
			v.startInput(refinePhaseWeek, li.DeliveryWeek)
		}
	case "a":
		v.phase = refinePhaseBrowse
		v.browse = 0
	case "c":
		v.custom.name, v.custom.desc = "", ""
		v.startInput(refinePhaseCustomName, "")
	case "b":
		v.outcome = refineOutcomeBack
		return v, tea.Quit
	case "enter", "n":
		v.outcome = refineOutcomeNext
		return v, tea.Quit
	case "ctrl+c", "esc":
		v.outcome = refineOutcomeCancel
		return v, tea.Quit
	}
	return v, nil
}

func (v *refineView) updateBrowse(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	assets := v.cat.Assets()

	switch key.String() {
	case "up", "k":
		if v.browse > 0 {
			v.browse--
		}
	case "down", "j":
		if v.browse < len(assets)-1 {
			v.browse++
		}
	case "enter", " ":
		if v.browse < len(assets) {
			v.sel.Add(assets[v.browse].ID)
		}
	case "esc", "a":
		v.phase = refinePhaseList
	case "ctrl+c":
		v.outcome = refineOutcomeCancel
		return v, tea.Quit
	}
	return v, nil
}

func (v *refineView) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		v.outcome = refineOutcomeCancel
		return v, tea.Quit
	case "esc":
		v.phase = refinePhaseList
		return v, nil
	case "enter":
		return v.commitInput()
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(key)
	return v, cmd
}

func (v *refineView) commitInput() (tea.Model, tea.Cmd) {
	text := v.input.Value()
	li := v.current()

	switch v.phase {
	case refinePhaseQty:
		if li != nil {
			v.sel.CommitQuantityText(li.ID, text)
		}
	case refinePhaseSpec:
		if li != nil {
			v.sel.UpdateSpecification(li.ID, text)
		}
	case refinePhaseWeek:
		if li != nil {
			v.sel.UpdateDeliveryWeek(li.ID, text)
		}
	case refinePhaseCustomName:
		v.custom.name = text
		v.startInput(refinePhaseCustomDesc, "")
		return v, nil
	case refinePhaseCustomDesc:
		v.custom.desc = text
		v.startInput(refinePhaseCustomQty, "")
		return v, nil
	case refinePhaseCustomQty:
		qty := 1
		fmt.Sscanf(strings.TrimSpace(text), "%d", &qty)
		if _, err := v.sel.AddCustom(v.custom.name, v.custom.desc, qty); err != nil {
			v.errMsg = err.Error()
			v.startInput(refinePhaseCustomName, v.custom.name)
			return v, nil
		}
		v.cursor = len(v.draft.Items) - 1
	}

	v.phase = refinePhaseList
	return v, nil
}

func (v *refineView) startInput(phase refinePhase, seed string) {
	v.phase = phase
	v.input.SetValue(seed)
	v.input.CursorEnd()
	v.input.Focus()
}

func (v *refineView) current() *domain.LineItem {
	if v.cursor < 0 || v.cursor >= len(v.draft.Items) {
		return nil
	}
	return v.draft.Items[v.cursor]
}

func (v *refineView) View() string {
	var sb strings.Builder
	sb.WriteString(formatter.Header("Deliverables"))
	sb.WriteString("\n")

	if v.phase == refinePhaseBrowse {
		sb.WriteString(v.viewBrowse())
		return sb.String()
	}

	if len(v.draft.Items) == 0 {
		sb.WriteString(formatter.Dim("Nothing selected yet. Press 'a' to browse the catalog or 'c' for a custom deliverable.\n"))
	}
	for i, li := range v.draft.Items {
		marker := "  "
		if i == v.cursor {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		price := fmt.Sprintf("%d tk", li.Subtotal())
		if li.IsCustom {
			price = formatter.StyleYellow.Render("pending")
		}
		sb.WriteString(fmt.Sprintf("%s%s ×%d  %s", marker, formatter.Bold(li.Name), li.Quantity, price))
		if li.Specification != "" {
			sb.WriteString(formatter.Dim("  · " + firstLine(li.Specification)))
		}
		if li.DeliveryWeek != "" {
			sb.WriteString(formatter.Dim("  · " + li.DeliveryWeek))
		}
		sb.WriteString("\n")
	}

	quote := v.sel.Quote()
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%s %s\n", formatter.Dim("Total:"), formatter.TokenLabel(quote.TokenTotal, quote.HasProvisional, v.pricing)))

	switch v.phase {
	case refinePhaseQty:
		sb.WriteString("\nQuantity (empty removes): " + v.input.View())
	case refinePhaseSpec:
		sb.WriteString("\nSpecification: " + v.input.View())
	case refinePhaseWeek:
		sb.WriteString("\nDelivery week: " + v.input.View())
	case refinePhaseCustomName:
		sb.WriteString("\nCustom deliverable name: " + v.input.View())
	case refinePhaseCustomDesc:
		sb.WriteString("\nDescription: " + v.input.View())
	case refinePhaseCustomQty:
		sb.WriteString("\nQuantity: " + v.input.View())
	default:
		sb.WriteString(formatter.Dim("\n[a]dd  [c]ustom  [+/-] qty  [q]ty  [e]dit spec  [w]eek  [x] remove  [b]ack  [enter] continue\n"))
	}

	if v.errMsg != "" {
		sb.WriteString("\n" + formatter.StyleRed.Render(v.errMsg) + "\n")
	}
	return sb.String()
}

func (v *refineView) viewBrowse() string {
	var sb strings.Builder
	sb.WriteString(formatter.Dim("Pick from the catalog (enter adds, esc closes):\n"))

	for i, a := range v.cat.Assets() {
		marker := "  "
		if i == v.browse {
			marker = formatter.StyleHeader.Render("▸ ")
		}
		selected := ""
		if v.draft.ItemByID(a.ID) != nil {
			selected = formatter.StyleGreen.Render(" ✓")
		}
		name := a.Name
		if a.Toggle {
			name += formatter.Dim(" (add-on)")
		}
		price, _ := v.cat.PriceFor(a.ID, v.draft.TemplateID)
		sb.WriteString(fmt.Sprintf("%s%s  %d tk%s\n", marker, name, price, selected))
	}
	return sb.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
