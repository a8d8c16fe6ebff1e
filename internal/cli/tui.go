package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// typeDescriptions are shown next to the built-in box types.
var typeDescriptions = map[string]string{
	"basic":  "rectangular box, every edge finger-jointed",
	"angled": "sloped top edge, for display stands",
	"flex":   "living-hinge bands on the side walls",
	"tray":   "low open tray",
}

// edgeDescriptions are shown next to the built-in edge styles.
var edgeDescriptions = map[string]string{
	"finger":   "rectangular fingers and slots",
	"flex":     "finger edge with living-hinge slits behind it",
	"dovetail": "fingers that widen toward the tip",
	"screw":    "T-slot for a captive nut, clearance hole on the mating side",
	"plain":    "straight cut, used for unjointed lids",
}

// =============================================================================
// BoxTypeListModel - Interactive box type selection
// =============================================================================

// BoxTypeListModel is the bubbletea model for picking a box type.
type BoxTypeListModel struct {
	Types    []string
	Cursor   int
	Selected string
}

// NewBoxTypeListModel creates a list with the cursor on current, or on the
// first type when current is not listed.
func NewBoxTypeListModel(types []string, current string) BoxTypeListModel {
	m := BoxTypeListModel{Types: types}
	for i, t := range types {
		if t == current {
			m.Cursor = i
		}
	}
	return m
}

func (m BoxTypeListModel) Init() tea.Cmd {
	return nil
}

func (m BoxTypeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Types)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Types) > 0 {
				m.Selected = m.Types[m.Cursor]
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m BoxTypeListModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Select Box Type"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, len(m.Types))
	for i, t := range m.Types {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		desc := typeDescriptions[t]
		if desc == "" {
			desc = "—"
		}
		rows[i] = []string{cursor, t, desc}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Type", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == m.Cursor:
				return listSelectedStyle
			case col == 2:
				return listDimStyle
			default:
				return listNormalStyle
			}
		})

	b.WriteString(tbl.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Types))))

	return b.String()
}

// pickBoxType runs the picker and returns the chosen type, or "" when the
// user quit without choosing.
func pickBoxType(types []string, current string) (string, error) {
	final, err := tea.NewProgram(NewBoxTypeListModel(types, current)).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(BoxTypeListModel)
	if !ok {
		return "", nil
	}
	return m.Selected, nil
}
