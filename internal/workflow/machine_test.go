package workflow

import (
	"testing"
	"time"

	"github.com/mkowalczyk/briefdesk/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeDraft() *domain.BriefDraft {
	due := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	d := domain.NewBriefDraft()
	d.Title = "Spring launch"
	d.DueDate = &due
	d.AddLead("lead-ana")
	d.Items = []*domain.LineItem{{
		ID: "video-30s", CatalogID: "video-30s", Name: "30s video",
		UnitPrice: 8, Quantity: 1,
	}}
	return d
}

func TestMachine_HappyPath(t *testing.T) {
	m := NewMachine(completeDraft())
	assert.Equal(t, domain.StepTemplatePicker, m.Step())

	require.NoError(t, m.Begin())
	require.NoError(t, m.RefineDeliverables())
	require.NoError(t, m.RequestAssist())
	require.NoError(t, m.Submit())
	assert.Equal(t, domain.StepSubmitted, m.Step())
}

func TestMachine_BackNavigation(t *testing.T) {
	m := NewMachine(completeDraft())
	require.NoError(t, m.Begin())
	require.NoError(t, m.BackToTemplates())
	assert.Equal(t, domain.StepTemplatePicker, m.Step())

	require.NoError(t, m.Begin())
	require.NoError(t, m.RefineDeliverables())
	require.NoError(t, m.BackToForm())
	assert.Equal(t, domain.StepFormEditing, m.Step())
}

func TestMachine_IllegalMoves(t *testing.T) {
	cases := []struct {
		name string
		call func(m *Machine) error
	}{
		{"assist from picker", func(m *Machine) error { return m.RequestAssist() }},
		{"refine from picker", func(m *Machine) error { return m.RefineDeliverables() }},
		{"back-to-form from picker", func(m *Machine) error { return m.BackToForm() }},
		{"begin twice", func(m *Machine) error {
			if err := m.Begin(); err != nil {
				return err
			}
			if err := m.Begin(); err != nil {
				return err
			}
			return nil
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMachine(completeDraft())
			err := tc.call(m)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidTransition)

			var te *TransitionError
			require.ErrorAs(t, err, &te)
			assert.NotEmpty(t, te.Error())
		})
	}
}

func TestMachine_RefineRequiresDeliverablesOrTemplate(t *testing.T) {
	d := domain.NewBriefDraft()
	m := NewMachine(d)
	require.NoError(t, m.Begin())

	err := m.RefineDeliverables()
	assert.ErrorIs(t, err, ErrNoDeliverables)
	assert.Equal(t, domain.StepFormEditing, m.Step(), "failed gate leaves the step alone")

	d.TemplateID = "social-refresh"
	assert.NoError(t, m.RefineDeliverables(), "a selected template passes even with zero items")
}

func TestMachine_SubmitFromAnyLiveStep(t *testing.T) {
	m := NewMachine(completeDraft())
	require.NoError(t, m.Begin())
	assert.NoError(t, m.Submit(), "submit is legal straight from form editing")
}

func TestMachine_SubmitRejectsIncompleteDraft(t *testing.T) {
	d := completeDraft()
	d.Title = ""
	m := NewMachineAt(d, domain.StepFormEditing)

	err := m.Submit()
	require.Error(t, err)
	var ie *domain.IncompleteError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, []string{"project title"}, ie.Missing)
	assert.Equal(t, domain.StepFormEditing, m.Step(), "rejection is not a transition")

	d.Title = "X"
	require.NoError(t, m.Submit())
}

func TestMachine_DiscardAlwaysLegalWhileLive(t *testing.T) {
	for _, step := range []domain.BuilderStep{
		domain.StepTemplatePicker,
		domain.StepFormEditing,
		domain.StepDeliverableRefinement,
		domain.StepAIRefinement,
	} {
		m := NewMachineAt(domain.NewBriefDraft(), step)
		require.NoError(t, m.Discard(), "discard from %s", step)
		assert.Equal(t, domain.StepDiscarded, m.Step())
	}
}

func TestMachine_TerminalStepsRefuseEverything(t *testing.T) {
	for _, step := range []domain.BuilderStep{domain.StepSubmitted, domain.StepDiscarded} {
		m := NewMachineAt(completeDraft(), step)
		assert.ErrorIs(t, m.Submit(), ErrInvalidTransition)
		assert.ErrorIs(t, m.Discard(), ErrInvalidTransition)
	}
}

func TestMachine_ChangeRequestSnapshotsOnce(t *testing.T) {
	d := completeDraft()
	m := NewMachineAt(d, domain.StepFormEditing)
	assert.False(t, m.IsChangeRequest())
	assert.Nil(t, m.Original())

	m.EnterChangeRequest()
	require.True(t, m.IsChangeRequest())
	original := m.Original()
	require.NotNil(t, original)

	d.Title = "Renamed after snapshot"
	d.Items[0].Quantity = 9
	assert.Equal(t, "Spring launch", original.Title)
	assert.Equal(t, 1, original.Items[0].Quantity)

	m.EnterChangeRequest()
	assert.Same(t, original, m.Original(), "second call keeps the first snapshot")
}
