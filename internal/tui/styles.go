package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	detailStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	opStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	descStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).MarginBottom(1)
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82")).Bold(true)
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Italic(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)
