package workflow

import (
	"errors"
	"fmt"

	"github.com/mkowalczyk/briefdesk/internal/domain"
)

// ErrInvalidTransition is wrapped by every TransitionError so callers can
// match the class without caring about the endpoints.
var ErrInvalidTransition = errors.New("invalid step transition")

// ErrNoDeliverables gates the jump from form editing to deliverable
// refinement: the draft needs at least one line item or a selected template
// before that step has anything to show.
var ErrNoDeliverables = errors.New("no deliverables selected")

// TransitionError reports an illegal step change with both endpoints.
type TransitionError struct {
	From domain.BuilderStep
	To   domain.BuilderStep
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move from %s to %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// Machine tracks which authoring step a builder session is on and enforces
// the legal moves between steps. The draft itself is mutated elsewhere; the
// machine only reads it for gating.
//
// Change-request mode is an orthogonal flag: entering it freezes a deep copy
// of the draft exactly once, and the frozen copy is what the review screen
// diffs against.
type Machine struct {
	step  domain.BuilderStep
	draft *domain.BriefDraft

	changeRequest bool
	original      *domain.BriefDraft
}

// NewMachine starts a session at the template picker.
func NewMachine(draft *domain.BriefDraft) *Machine {
	return &Machine{step: domain.StepTemplatePicker, draft: draft}
}

// NewMachineAt resumes a session at a specific step, for drafts that arrive
// pre-populated (duplicates and change requests skip the picker).
func NewMachineAt(draft *domain.BriefDraft, step domain.BuilderStep) *Machine {
	return &Machine{step: step, draft: draft}
}

// Step returns the current authoring step.
func (m *Machine) Step() domain.BuilderStep { return m.step }

// Draft returns the live draft the machine gates.
func (m *Machine) Draft() *domain.BriefDraft { return m.draft }

// Begin leaves the template picker for form editing. Picking a concrete
// template and "create brief" without one both land here; the selection model
// has already been told which.
func (m *Machine) Begin() error {
	return m.move(domain.StepTemplatePicker, domain.StepFormEditing)
}

// BackToTemplates returns from form editing to the picker. Clearing
// template-derived items is the caller's explicit choice, not a side effect
// of navigation.
func (m *Machine) BackToTemplates() error {
	return m.move(domain.StepFormEditing, domain.StepTemplatePicker)
}

// RefineDeliverables advances from form editing to the per-line refinement
// step. Title, date and leads are not required yet; full completeness is only
// enforced at submit.
func (m *Machine) RefineDeliverables() error {
	if m.step != domain.StepFormEditing {
		return &TransitionError{From: m.step, To: domain.StepDeliverableRefinement}
	}
	if len(m.draft.Items) == 0 && m.draft.TemplateID == "" {
		return ErrNoDeliverables
	}
	m.step = domain.StepDeliverableRefinement
	return nil
}

// BackToForm returns from deliverable refinement to form editing.
func (m *Machine) BackToForm() error {
	return m.move(domain.StepDeliverableRefinement, domain.StepFormEditing)
}

// RequestAssist moves into the AI refinement step. It is a dead end: the only
// ways out are submit and discard.
func (m *Machine) RequestAssist() error {
	return m.move(domain.StepDeliverableRefinement, domain.StepAIRefinement)
}

// Submit finalizes the session from any live step, provided the draft is
// complete. An incomplete draft is rejected with the field list and the step
// does not change.
func (m *Machine) Submit() error {
	if m.step.IsTerminal() {
		return &TransitionError{From: m.step, To: domain.StepSubmitted}
	}
	if err := domain.NewIncompleteError(m.draft); err != nil {
		return err
	}
	m.step = domain.StepSubmitted
	return nil
}

// Discard cancels the session from any live step. There is no autosave and
// no undo.
func (m *Machine) Discard() error {
	if m.step.IsTerminal() {
		return &TransitionError{From: m.step, To: domain.StepDiscarded}
	}
	m.step = domain.StepDiscarded
	return nil
}

// EnterChangeRequest flags the session as a revision of a committed brief and
// freezes the original for diffing. Only the first call snapshots; the copy
// never tracks later edits.
func (m *Machine) EnterChangeRequest() {
	if m.changeRequest {
		return
	}
	m.changeRequest = true
	m.original = m.draft.Clone()
}

// IsChangeRequest reports whether the session revises an existing brief.
func (m *Machine) IsChangeRequest() bool { return m.changeRequest }

// Original returns the frozen snapshot, or nil outside change-request mode.
func (m *Machine) Original() *domain.BriefDraft { return m.original }

func (m *Machine) move(from, to domain.BuilderStep) error {
	if m.step != from {
		return &TransitionError{From: m.step, To: to}
	}
	m.step = to
	return nil
}
