// Package menu provides the main navigation menu view for the TUI.
package menu

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/titanic-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/titanic-cli/internal/core/domain"
	"github.com/custodia-labs/titanic-cli/internal/core/ports/driving"
)

// Item represents a single menu option. Section items render a dashboard
// section; the rest switch view or quit.
type Item struct {
	Label     string
	Section   domain.Section
	IsSection bool
	View      messages.ViewType
	Quit      bool // If true, selecting this item quits the app
}

// View represents the main menu view.
type View struct {
	styles   *styles.Styles
	items    []Item
	dataset  driving.DatasetInfo
	selected int
	width    int
	height   int
	ready    bool
}

// NewView creates a new menu view listing the given sections followed by
// Settings, Help and Quit.
func NewView(s *styles.Styles, sections []domain.Section) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	items := make([]Item, 0, len(sections)+3)
	for _, sec := range sections {
		items = append(items, Item{Label: sec.String(), Section: sec, IsSection: true})
	}
	items = append(items,
		Item{Label: "Settings", View: messages.ViewSettings},
		Item{Label: "Help", View: messages.ViewHelp},
		Item{Label: "Quit", Quit: true},
	)

	return &View{
		styles:   s,
		items:    items,
		selected: 0,
		width:    80,
		height:   24,
	}
}

// Init initialises the menu view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if v.selected > 0 {
				v.selected--
			}
			return v, nil

		case "down", "j":
			if v.selected < len(v.items)-1 {
				v.selected++
			}
			return v, nil

		case "enter":
			item := v.items[v.selected]
			switch {
			case item.Quit:
				return v, tea.Quit
			case item.IsSection:
				return v, func() tea.Msg {
					return messages.SectionSelected{Section: item.Section}
				}
			}
			return v, func() tea.Msg {
				return messages.ViewChanged{View: item.View}
			}

		case "q":
			return v, tea.Quit
		}
	}

	return v, nil
}

// View renders the menu.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Titanic Dashboard"))
	b.WriteString("\n\n")

	subtitle := "Passenger manifest analysis"
	if v.dataset.Location != "" {
		subtitle = fmt.Sprintf("%s · %d rows x %d columns",
			v.dataset.Location, v.dataset.Rows, v.dataset.Columns)
	}
	b.WriteString(v.styles.Muted.Render(subtitle))
	b.WriteString("\n\n")

	for i, item := range v.items {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

		if i == v.selected {
			cursor = "> "
			style = lipgloss.NewStyle().
				Foreground(lipgloss.Color("86")).
				Bold(true)
		}

		b.WriteString(cursor + style.Render(item.Label))
		b.WriteString("\n")
		// Separate the sections from the utility items.
		if item.IsSection && i+1 < len(v.items) && !v.items[i+1].IsSection {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render("[j/k] Navigate  [Enter] Select  [q] Quit"))

	return b.String()
}

// SetDataset sets the dataset summary shown under the title.
func (v *View) SetDataset(info driving.DatasetInfo) {
	v.dataset = info
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Selected returns the currently selected index.
func (v *View) Selected() int {
	return v.selected
}

// Items returns the menu items in display order.
func (v *View) Items() []Item {
	return v.items
}
