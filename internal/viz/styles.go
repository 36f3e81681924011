package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortlab/internal/engine"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(13)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	statusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	statusPaused  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	statusStopped = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	statusDone    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
)

var tagStyles = map[engine.Tag]lipgloss.Style{
	engine.TagDefault:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	engine.TagComparing: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	engine.TagSwapping:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	engine.TagPivot:     lipgloss.NewStyle().Foreground(lipgloss.Color("213")),
	engine.TagMin:       lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	engine.TagMax:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	engine.TagSorted:    lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
}

func barStyle(tag engine.Tag) lipgloss.Style {
	if s, ok := tagStyles[tag]; ok {
		return s
	}
	return tagStyles[engine.TagDefault]
}
