// Package section provides the view that renders one dashboard section in
// a scrollable viewport.
package section

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/render"
	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driving"
)

// ErrNoDashboard is reported when the view has no dashboard service.
var ErrNoDashboard = errors.New("dashboard service not available")

// View shows the rendered result of the selected section.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	dashboard driving.DashboardService
	renderer  *render.Renderer
	statusBar *status.Bar
	viewport  viewport.Model
	ctx       context.Context

	section  domain.Section
	result   *domain.SectionResult
	err      error
	showCode bool
	loading  bool
	content  string

	width  int
	height int
	ready  bool
}

// NewView creates a new section view.
func NewView(s *styles.Styles, dashboard driving.DashboardService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	return &View{
		styles:    s,
		keymap:    km,
		dashboard: dashboard,
		renderer:  render.New(s, 80),
		statusBar: status.NewBar(s, km),
		viewport:  viewport.New(80, 22),
		ctx:       context.Background(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context passed to render passes.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetSection selects a section and returns the command that renders it.
func (v *View) SetSection(section domain.Section) tea.Cmd {
	v.section = section
	v.result = nil
	v.err = nil
	v.viewport.GotoTop()
	return v.run()
}

// run starts a render pass for the current section.
func (v *View) run() tea.Cmd {
	v.loading = true
	v.statusBar.SetState(status.StateRendering)
	v.statusBar.SetMessage(v.section.String())
	v.refresh()

	section, ctx, dashboard := v.section, v.ctx, v.dashboard
	return func() tea.Msg {
		if dashboard == nil {
			return messages.SectionRendered{Section: section, Err: ErrNoDashboard}
		}
		res, err := dashboard.Render(ctx, section)
		return messages.SectionRendered{Section: section, Result: res, Err: err}
	}
}

// Update handles messages for the section view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SectionRendered:
		// A pass for a section we already left.
		if msg.Section != v.section {
			return v, nil
		}
		v.loading = false
		v.result, v.err = msg.Result, msg.Err
		if msg.Err != nil {
			v.statusBar.SetState(status.StateError)
			v.statusBar.SetMessage(msg.Err.Error())
		} else if msg.Result != nil {
			v.statusBar.SetState(status.StateSection)
			v.statusBar.SetMessage(v.section.String())
			v.statusBar.SetDuration(msg.Result.Duration)
		}
		v.refresh()
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch key := msg.String(); {
	case keymap.Matches(key, v.keymap.Code):
		v.showCode = !v.showCode
		v.refresh()
		return v, nil
	case keymap.Matches(key, v.keymap.Rerun):
		return v, v.run()
	case keymap.Matches(key, v.keymap.Next):
		return v, v.SetSection(v.section.Next())
	case keymap.Matches(key, v.keymap.Prev):
		return v, v.SetSection(v.section.Prev())
	case keymap.Matches(key, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(key, v.keymap.Quit):
		return v, tea.Quit
	}

	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

// refresh re-renders the viewport content from the current state.
func (v *View) refresh() {
	var content string
	switch {
	case v.err != nil:
		content = v.renderer.Error(v.section, v.err)
	case v.result != nil:
		content = v.renderer.Section(v.result, v.showCode)
	case v.loading:
		content = v.styles.Title.Render(v.section.String()) + "\n\n" +
			v.styles.Muted.Render("Rendering...")
	}
	v.content = content
	v.viewport.SetContent(content)
}

// View renders the section view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder
	b.WriteString(v.viewport.View())
	b.WriteString("\n")
	b.WriteString(v.statusBar.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	v.viewport.Width = width
	v.viewport.Height = max(1, height-2)
	v.statusBar.SetWidth(width)
	v.renderer = render.New(v.styles, width)
	v.refresh()
}

// Section returns the selected section.
func (v *View) Section() domain.Section {
	return v.section
}

// Result returns the last render result.
func (v *View) Result() *domain.SectionResult {
	return v.result
}

// Err returns the last render error.
func (v *View) Err() error {
	return v.err
}

// ShowCode reports whether the code snippet is shown.
func (v *View) ShowCode() bool {
	return v.showCode
}

// Loading reports whether a render pass is in flight.
func (v *View) Loading() bool {
	return v.loading
}

// Content returns the full rendered content, including lines scrolled
// out of view.
func (v *View) Content() string {
	return v.content
}
