package cli

import "github.com/charmbracelet/lipgloss"

var (
	fillColor  = lipgloss.Color("#4caf50")
	emptyColor = lipgloss.Color("#d3d3d3")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(fillColor).
			MarginBottom(1)

	jarTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	jarStyle = lipgloss.NewStyle().
			Margin(0, 3).
			Align(lipgloss.Center)

	fillStyle  = lipgloss.NewStyle().Background(fillColor)
	emptyStyle = lipgloss.NewStyle().Background(emptyColor)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(fillColor).
			Padding(0, 2)

	blurredButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	historyHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				MarginTop(1)

	selectedItemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	itemStyle         = lipgloss.NewStyle().PaddingLeft(2)
)
