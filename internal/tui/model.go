// Package tui is the interactive password generator built on bubbletea.
package tui

import (
	"log/slog"
	"math/rand/v2"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vaultpass/passgen/internal/list"
	"github.com/vaultpass/passgen/internal/logging"
	"github.com/vaultpass/passgen/internal/password"
)

type screen int

const (
	screenList screen = iota
	screenGenerator
)

// Copier places text on the clipboard.
type Copier interface {
	Copy(text string) error
}

// Options configures a new Model.
type Options struct {
	Categories *list.SelectionList[password.Category]
	Length     int
	Rand       *rand.Rand
	Clipboard  Copier
	Logger     *slog.Logger
}

// copiedMsg reports the outcome of a clipboard write.
type copiedMsg struct {
	err error
}

// Model is the root bubbletea model. It owns the session state: the
// category list, the current length and the last generated password.
type Model struct {
	categories *list.SelectionList[password.Category]
	screen     screen
	length     int
	password   string

	rng       *rand.Rand
	clipboard Copier
	logger    *slog.Logger

	keys   keyMap
	help   help.Model
	status string
	err    error
	width  int
}

// New creates a Model showing the category list.
func New(opts Options) Model {
	if opts.Categories == nil {
		opts.Categories = password.DefaultCategories()
	}
	if opts.Rand == nil {
		opts.Rand = password.NewSource()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(keyColor).Bold(true)

	return Model{
		categories: opts.Categories,
		screen:     screenList,
		length:     opts.Length,
		rng:        opts.Rand,
		clipboard:  opts.Clipboard,
		logger:     opts.Logger,
		keys:       defaultKeyMap(),
		help:       h,
	}
}

// Length returns the current password length.
func (m Model) Length() int { return m.length }

// Password returns the last generated password.
func (m Model) Password() string { return m.password }

// Category returns the category under the list cursor.
func (m Model) Category() password.Category {
	c, ok := m.categories.Selected()
	if !ok {
		panic("tui: category list has no selection")
	}
	return c
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn("clipboard copy failed", "error", msg.err)
			m.status, m.err = "", msg.err
			return m, nil
		}
		m.status, m.err = "Copied to clipboard", nil
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		m.status, m.err = "", nil

		switch m.screen {
		case screenList:
			return m.updateList(msg)
		case screenGenerator:
			return m.updateGenerator(msg)
		}
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Select):
		m.screen = screenGenerator
		m.length = m.Category().LengthRange().Clamp(m.length)
		m.regenerate()
		m.logger.Debug("category selected", "category", m.Category().String(), "length", m.length)
		return m, nil
	}

	m.categories.HandleNavigationKey(msg.String())
	return m, nil
}

func (m Model) updateGenerator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	category := m.Category()
	random, hasOptions := category.(*password.Random)

	switch {
	case key.Matches(msg, m.keys.Back):
		m.screen = screenList
		return m, nil

	case key.Matches(msg, m.keys.Shorter):
		m.setLength(m.length - 1)
		return m, nil

	case key.Matches(msg, m.keys.Longer):
		m.setLength(m.length + 1)
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m, m.copyPassword()

	case key.Matches(msg, m.keys.Regenerate):
		m.regenerate()
		return m, nil

	case hasOptions && key.Matches(msg, m.keys.Toggle):
		category.ToggleSelectedOption()
		m.regenerate()
		m.logger.Debug("option toggled", "numbers", random.Numbers, "symbols", random.Symbols)
		return m, nil
	}

	if hasOptions {
		random.Options.HandleNavigationKey(msg.String())
	}
	return m, nil
}

func (m *Model) setLength(n int) {
	clamped := m.Category().LengthRange().Clamp(n)
	if clamped == m.length {
		return
	}
	m.length = clamped
	m.regenerate()
}

func (m *Model) regenerate() {
	m.password = password.Generate(m.Category(), m.length, m.rng)
}

func (m Model) copyPassword() tea.Cmd {
	if m.clipboard == nil {
		return nil
	}
	clip, text := m.clipboard, m.password
	return func() tea.Msg {
		return copiedMsg{err: clip.Copy(text)}
	}
}
