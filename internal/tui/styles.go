package tui

import "github.com/charmbracelet/lipgloss"

const highlightSymbol = ">> "

var (
	borderColor    = lipgloss.Color("7")
	highlightColor = lipgloss.Color("11")
	keyColor       = lipgloss.Color("12")
	errorColor     = lipgloss.Color("9")
	successColor   = lipgloss.Color("10")

	blockStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true)

	itemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	selectedStyle = lipgloss.NewStyle().Foreground(highlightColor)
	valueStyle    = lipgloss.NewStyle().Foreground(highlightColor)

	onStyle  = lipgloss.NewStyle().Foreground(successColor)
	offStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	statusStyle = lipgloss.NewStyle().Foreground(successColor)
	errorStyle  = lipgloss.NewStyle().Foreground(errorColor)
)
