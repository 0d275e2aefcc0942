package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/genreseek/internal/genres"
	"github.com/five82/genreseek/internal/search"
)

const (
	headerLines = 1
	inputLines  = 3
)

// renderMain renders header, status-dependent body and footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBody())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	var badge string
	switch m.state.Status.Kind {
	case search.StatusLoading:
		badge = styles.Badge(m.theme.Warning).Render("LOADING")
	case search.StatusError:
		badge = styles.Badge(m.theme.Danger).Render("ERROR")
	default:
		badge = styles.Badge(m.theme.Success).Render("READY")
	}

	counts := fmt.Sprintf("top %d  all %d", len(m.state.TopGenres), len(m.state.AllGenres))
	content := styles.Logo.Render("genreseek") + "  " + badge + "  " + counts
	return styles.Header.Width(m.width).Render(content)
}

// renderBody mirrors the loading status: the spinner while loading, the
// error text verbatim on failure, and the search view otherwise.
func (m Model) renderBody() string {
	styles := m.theme.Styles()
	height := max(m.height-headerLines-lipgloss.Height(m.renderFooter()), 1)

	var body string
	switch m.state.Status.Kind {
	case search.StatusLoading:
		body = m.spinner.View() + " " + styles.WarningText.Render("Loading genres...")
	case search.StatusError:
		body = styles.DangerText.Render(errorText(m.state.Status.Err))
	default:
		body = m.renderSearch(height)
	}

	return lipgloss.NewStyle().
		Width(m.width).
		Height(height).
		Padding(0, 1).
		Render(body)
}

func (m Model) renderSearch(height int) string {
	styles := m.theme.Styles()
	input := styles.Input.Width(max(m.width-4, 10)).Render(m.queryField().View())

	// Split what's left between the two lists.
	rows := max(height-inputLines-4, 2)
	topRows := max(rows/2, 1)
	allRows := max(rows-topRows, 1)

	sections := []string{
		input,
		styles.Title.Render("Top genres"),
		m.renderGenreList(m.state.TopGenres, topRows),
		styles.Title.Render("All genres"),
		m.renderGenreList(m.state.AllGenres, allRows),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// queryField returns the input styled for the current theme.
func (m Model) queryField() textinput.Model {
	field := m.input
	field.PromptStyle = m.theme.Styles().AccentText
	return field
}

func (m Model) renderGenreList(list []genres.Genre, rows int) string {
	styles := m.theme.Styles()
	if len(list) == 0 {
		return styles.FaintText.Render("  none")
	}

	shown := list
	more := 0
	if len(list) > rows {
		shown = list[:max(rows-1, 0)]
		more = len(list) - len(shown)
	}

	lines := make([]string, 0, len(shown)+1)
	for _, g := range shown {
		lines = append(lines, "  "+styles.Text.Render(g.String()))
	}
	if more > 0 {
		lines = append(lines, styles.MutedText.Render(fmt.Sprintf("  +%d more", more)))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	keys := m.help.View(m.keys)
	if m.notice != "" {
		keys = styles.WarningText.Render(truncate(m.notice, max(m.width/2, 10))) + "  " + keys
	}
	return styles.Footer.Width(m.width).Render(keys + "  " + styles.FaintText.Render(m.theme.Name))
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}
