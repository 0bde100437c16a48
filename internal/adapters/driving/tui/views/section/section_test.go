package section

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driving"
)

type mockDashboard struct {
	RenderFunc func(ctx context.Context, section domain.Section) (*domain.SectionResult, error)
	calls      int
}

func (m *mockDashboard) Sections() []domain.Section { return domain.Sections() }

func (m *mockDashboard) Render(ctx context.Context, section domain.Section) (*domain.SectionResult, error) {
	m.calls++
	if m.RenderFunc != nil {
		return m.RenderFunc(ctx, section)
	}
	return survival(section), nil
}

func (m *mockDashboard) Dataset() driving.DatasetInfo { return driving.DatasetInfo{} }

func survival(section domain.Section) *domain.SectionResult {
	return &domain.SectionResult{
		PassID:   "pass-1",
		Section:  section,
		Duration: 2 * time.Millisecond,
		Survival: &domain.GroupMeans{
			Title: "Survival Rate by Gender",
			Groups: []domain.GroupMean{
				{Key: "0", Label: "male", Mean: 0.2, Count: 5},
				{Key: "1", Label: "female", Mean: 0.75, Count: 4},
			},
		},
	}
}

func newReadyView(d driving.DashboardService) *View {
	v := NewView(nil, d)
	v.SetDimensions(100, 40)
	return v
}

// deliver runs cmd and feeds its message back into the view.
func deliver(t *testing.T, v *View, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	v.Update(cmd())
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil)

	require.NotNil(t, v)
	assert.NotNil(t, v.styles)
	assert.False(t, v.ready)
	assert.Nil(t, v.Init())
	assert.Contains(t, v.View(), "Initialising")
}

func TestView_SetSection_RendersExactlyOnce(t *testing.T) {
	d := &mockDashboard{}
	v := newReadyView(d)

	cmd := v.SetSection(domain.SectionSurvival)

	assert.True(t, v.Loading())
	assert.Contains(t, v.Content(), "Rendering...")
	assert.Equal(t, status.StateRendering, v.statusBar.State())

	deliver(t, v, cmd)

	assert.Equal(t, 1, d.calls)
	assert.False(t, v.Loading())
	require.NotNil(t, v.Result())
	assert.Contains(t, v.Content(), "Survival Analysis")
	assert.Contains(t, v.Content(), "female")
	assert.Equal(t, status.StateSection, v.statusBar.State())
}

func TestView_RenderError_ShownInline(t *testing.T) {
	d := &mockDashboard{
		RenderFunc: func(context.Context, domain.Section) (*domain.SectionResult, error) {
			return nil, errors.New("missing column: Fare")
		},
	}
	v := newReadyView(d)

	deliver(t, v, v.SetSection(domain.SectionCorrelation))

	assert.EqualError(t, v.Err(), "missing column: Fare")
	assert.Contains(t, v.Content(), "✗ missing column: Fare")
	assert.Equal(t, status.StateError, v.statusBar.State())
}

func TestView_NilDashboard(t *testing.T) {
	v := newReadyView(nil)

	deliver(t, v, v.SetSection(domain.SectionOverview))

	assert.ErrorIs(t, v.Err(), ErrNoDashboard)
}

func TestView_ToggleCode(t *testing.T) {
	v := newReadyView(&mockDashboard{})
	deliver(t, v, v.SetSection(domain.SectionSurvival))
	snippet := render.Snippet(domain.SectionSurvival)

	_, cmd := v.Update(key("c"))

	assert.Nil(t, cmd)
	assert.True(t, v.ShowCode())
	assert.Contains(t, v.Content(), "Code")

	v.Update(key("c"))

	assert.False(t, v.ShowCode())
	assert.NotContains(t, v.Content(), snippet)
}

func TestView_Rerun(t *testing.T) {
	d := &mockDashboard{}
	v := newReadyView(d)
	deliver(t, v, v.SetSection(domain.SectionSurvival))

	_, cmd := v.Update(key("r"))
	deliver(t, v, cmd)

	assert.Equal(t, 2, d.calls)
	assert.Equal(t, domain.SectionSurvival, v.Section())
}

func TestView_NextPrev(t *testing.T) {
	v := newReadyView(&mockDashboard{})
	deliver(t, v, v.SetSection(domain.SectionAdditional))

	_, cmd := v.Update(key("tab"))
	require.NotNil(t, cmd)
	assert.Equal(t, domain.SectionOverview, v.Section())

	_, cmd = v.Update(key("shift+tab"))
	require.NotNil(t, cmd)
	assert.Equal(t, domain.SectionAdditional, v.Section())
}

func TestView_StaleResultIgnored(t *testing.T) {
	v := newReadyView(&mockDashboard{})
	stale := v.SetSection(domain.SectionSurvival)
	v.SetSection(domain.SectionCleaning)

	deliver(t, v, stale)

	assert.Nil(t, v.Result())
	assert.True(t, v.Loading())
}

func TestView_Esc_ReturnsToMenu(t *testing.T) {
	v := newReadyView(&mockDashboard{})

	_, cmd := v.Update(key("esc"))

	require.NotNil(t, cmd)
	changed, ok := cmd().(messages.ViewChanged)
	require.True(t, ok)
	assert.Equal(t, messages.ViewMenu, changed.View)
}

func TestView_Quit(t *testing.T) {
	v := newReadyView(&mockDashboard{})

	_, cmd := v.Update(key("q"))

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestView_WithContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "v")
	var got context.Context
	d := &mockDashboard{
		RenderFunc: func(ctx context.Context, s domain.Section) (*domain.SectionResult, error) {
			got = ctx
			return survival(s), nil
		},
	}
	v := newReadyView(d).WithContext(ctx)

	deliver(t, v, v.SetSection(domain.SectionSurvival))

	assert.Equal(t, "v", got.Value(ctxKey{}))
}

func TestView_SetDimensions(t *testing.T) {
	v := NewView(nil, nil)

	v.SetDimensions(120, 30)

	assert.True(t, v.ready)
	assert.Equal(t, 120, v.viewport.Width)
	assert.Equal(t, 28, v.viewport.Height)
	assert.Equal(t, 120, v.statusBar.Width())
}
