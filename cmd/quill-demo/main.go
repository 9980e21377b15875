// Command quill-demo is a minimal terminal editor over a single LineBuffer.
//
// It owns what the model deliberately does not: the cursor, the viewport,
// and the key bindings. Every edit goes through the buffer API.
//
// Usage: quill-demo [file]
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/internal/grapheme"
)

type model struct {
	buf  *buffer.LineBuffer
	keys keyMap

	// newPath is set when the demo was started with a path that does not
	// exist yet; the first save creates it.
	newPath string

	row, col int
	top      int // first visible line
	width    int
	height   int
	status   string
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	tildeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func newModel(buf *buffer.LineBuffer, newPath string) model {
	return model{buf: buf, keys: defaultKeyMap(), newPath: newPath, width: 80, height: 24}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case matches(msg, m.keys.Quit):
		return m, tea.Quit
	case matches(msg, m.keys.Left):
		if m.col > 0 {
			m.col--
		} else if m.row > 0 {
			m.row--
			m.col = m.lineLen(m.row)
		}
	case matches(msg, m.keys.Right):
		if m.col < m.lineLen(m.row) {
			m.col++
		} else if m.row < m.buf.LineCount()-1 {
			m.row++
			m.col = 0
		}
	case matches(msg, m.keys.Up):
		if m.row > 0 {
			m.row--
		}
	case matches(msg, m.keys.Down):
		if m.row < m.buf.LineCount()-1 {
			m.row++
		}
	case matches(msg, m.keys.Home):
		m.col = 0
	case matches(msg, m.keys.End):
		m.col = m.lineLen(m.row)
	case matches(msg, m.keys.Backspace):
		m.deleteBackward()
	case matches(msg, m.keys.Delete):
		m.deleteForward()
	case matches(msg, m.keys.Enter):
		if err := m.buf.SplitLine(m.row, m.col); err != nil {
			m.status = err.Error()
			break
		}
		m.row++
		m.col = 0
	case matches(msg, m.keys.DeleteLine):
		if err := m.buf.DeleteLine(m.row); err != nil {
			m.status = err.Error()
			break
		}
		m.col = 0
	case matches(msg, m.keys.Save):
		m.save()
	case msg.Type == tea.KeySpace:
		m.insert(" ")
	case msg.Type == tea.KeyTab:
		m.insert("\t")
	case msg.Type == tea.KeyRunes:
		for _, r := range msg.Runes {
			if !m.insert(string(r)) {
				break
			}
		}
	}

	m.clampCursor()
	m.scrollIntoView()
	return m, nil
}

func (m *model) insert(ch string) bool {
	if err := m.buf.InsertChar(m.row, m.col, ch); err != nil {
		m.status = err.Error()
		return false
	}
	m.col++
	return true
}

func (m *model) save() {
	err := m.buf.Save()
	if errors.Is(err, buffer.ErrNoDestination) && m.newPath != "" {
		err = m.buf.SaveAs(m.newPath)
	}
	switch {
	case errors.Is(err, buffer.ErrNoDestination):
		m.status = "no file name; start the demo with a path to save"
	case err != nil:
		m.status = err.Error()
	default:
		m.status = "saved " + m.buf.DisplayName()
	}
}

func (m *model) deleteBackward() {
	if m.col > 0 {
		if _, err := m.buf.RemoveChar(m.row, m.col-1); err != nil {
			m.status = err.Error()
			return
		}
		m.col--
		return
	}
	if m.row == 0 {
		return
	}
	joinCol, err := m.buf.JoinWithPreviousLine(m.row)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.row--
	m.col = joinCol
}

func (m *model) deleteForward() {
	if m.col < m.lineLen(m.row) {
		if _, err := m.buf.RemoveChar(m.row, m.col); err != nil {
			m.status = err.Error()
		}
		return
	}
	if m.row >= m.buf.LineCount()-1 {
		return
	}
	if _, err := m.buf.JoinWithPreviousLine(m.row + 1); err != nil {
		m.status = err.Error()
	}
}

func (m *model) lineLen(row int) int {
	n, err := m.buf.LineLength(row)
	if err != nil {
		return 0
	}
	return n
}

func (m *model) clampCursor() {
	if m.row >= m.buf.LineCount() {
		m.row = m.buf.LineCount() - 1
	}
	if m.row < 0 {
		m.row = 0
	}
	if n := m.lineLen(m.row); m.col > n {
		m.col = n
	}
	if m.col < 0 {
		m.col = 0
	}
}

func (m *model) scrollIntoView() {
	visible := m.height - 1 // one row reserved for the status bar
	if visible < 1 {
		visible = 1
	}
	if m.row < m.top {
		m.top = m.row
	}
	if m.row >= m.top+visible {
		m.top = m.row - visible + 1
	}
}

func (m model) View() string {
	visible := m.height - 1
	if visible < 1 {
		visible = 1
	}

	var sb strings.Builder
	for i := 0; i < visible; i++ {
		row := m.top + i
		if row < m.buf.LineCount() {
			line, _ := m.buf.Line(row)
			if row == m.row {
				line = renderCursor(line, m.col)
			}
			sb.WriteString(line)
		} else {
			sb.WriteString(tildeStyle.Render("~"))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(m.statusBar())
	return sb.String()
}

// renderCursor inverts the cluster under the cursor, or a trailing space
// when the cursor sits at the end of the line.
func renderCursor(line string, col int) string {
	left, rest, ok := grapheme.SplitAt(line, col)
	if !ok {
		return line
	}
	if rest == "" {
		return left + cursorStyle.Render(" ")
	}
	under, _ := grapheme.At(rest, 0)
	return left + cursorStyle.Render(under) + rest[len(under):]
}

func (m model) statusBar() string {
	name := m.buf.DisplayName()
	if m.buf.Modified() {
		name += " [+]"
	}
	left := fmt.Sprintf("%s  %d:%d", name, m.row+1, m.col+1)
	if m.status != "" {
		left += "  " + m.status
	}
	return statusStyle.Width(m.width).Render(left)
}

func main() {
	buf := buffer.New()
	newPath := ""

	if len(os.Args) > 1 {
		path := os.Args[1]
		b, err := buffer.Load(path)
		switch {
		case errors.Is(err, buffer.ErrSourceNotFound):
			newPath = path // created on first save
		case err != nil:
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		default:
			buf = b
		}
	}

	p := tea.NewProgram(newModel(buf, newPath), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
