package domain

type BriefStatus string

const (
	StatusDraft    BriefStatus = "draft"
	StatusInReview BriefStatus = "in_review"
	StatusScoped   BriefStatus = "scoped"
	StatusSigned   BriefStatus = "signed"
)

// ValidBriefStatuses is the canonical set of accepted brief status strings.
var ValidBriefStatuses = map[string]bool{
	"draft": true, "in_review": true, "scoped": true, "signed": true,
}

type BuilderStep string

const (
	StepTemplatePicker        BuilderStep = "template_picker"
	StepFormEditing           BuilderStep = "form_editing"
	StepDeliverableRefinement BuilderStep = "deliverable_refinement"
	StepAIRefinement          BuilderStep = "ai_refinement"
	StepSubmitted             BuilderStep = "submitted"
	StepDiscarded             BuilderStep = "discarded"
)

// IsTerminal reports whether the step ends the authoring session.
func (s BuilderStep) IsTerminal() bool {
	return s == StepSubmitted || s == StepDiscarded
}
