package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vaultpass/passgen/internal/password"
)

const optionsWidth = 30

func (m Model) View() string {
	switch m.screen {
	case screenGenerator:
		return m.viewGenerator()
	default:
		return m.viewList()
	}
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Password Types"))
	b.WriteString("\n\n")

	cursor, _ := m.categories.Cursor()
	for i, c := range m.categories.Items() {
		if i == cursor {
			b.WriteString(selectedStyle.Render(highlightSymbol + c.String()))
		} else {
			b.WriteString(itemStyle.Render(strings.Repeat(" ", len(highlightSymbol)) + c.String()))
		}
		b.WriteString("\n")
	}

	return m.frame(b.String(), listHelp{keys: m.keys})
}

func (m Model) viewGenerator() string {
	category := m.Category()
	random, hasOptions := category.(*password.Random)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Password Generator"))
	b.WriteString(" ")
	b.WriteString(offStyle.Render(fmt.Sprintf("(%s, %s)", category, category.LengthRange())))
	b.WriteString("\n\n")
	b.WriteString("Length: " + valueStyle.Render(strconv.Itoa(m.length)) + "\n")

	pwStyle := valueStyle
	if w := m.passwordWidth(hasOptions); w > 0 {
		pwStyle = pwStyle.Width(w)
	}
	b.WriteString("Password: " + pwStyle.Render(m.password))

	body := b.String()
	if hasOptions {
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			blockStyle.Render(body),
			blockStyle.Width(optionsWidth).Render(viewOptions(random)),
		)
	} else {
		body = blockStyle.Render(body)
	}

	return m.footer(body, generatorHelp{keys: m.keys, hasOptions: hasOptions})
}

func viewOptions(r *password.Random) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Options"))
	b.WriteString("\n\n")

	cursor, _ := r.Options.Cursor()
	for i, opt := range r.Options.Items() {
		marker := offStyle.Render("[ ]")
		if r.Enabled(opt) {
			marker = onStyle.Render("[x]")
		}

		label := opt.String()
		if i == cursor {
			label = selectedStyle.Render(highlightSymbol + label)
		} else {
			label = itemStyle.Render(strings.Repeat(" ", len(highlightSymbol)) + label)
		}
		b.WriteString(label + " " + marker + "\n")
	}

	return b.String()
}

// passwordWidth is the wrap width for the password, or 0 when unknown.
func (m Model) passwordWidth(hasOptions bool) int {
	if m.width == 0 {
		return 0
	}
	w := m.width - len("Password: ") - 4
	if hasOptions {
		w -= optionsWidth + 4
	}
	return max(w, 8)
}

func (m Model) frame(body string, km help.KeyMap) string {
	return m.footer(blockStyle.Render(body), km)
}

// footer appends the status line and key help below body.
func (m Model) footer(body string, km help.KeyMap) string {
	var status string
	switch {
	case m.err != nil:
		status = errorStyle.Render("Copy failed: " + m.err.Error())
	case m.status != "":
		status = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, status, m.help.View(km))
}
