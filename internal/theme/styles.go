package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/skillpilot/skillpilot/internal/domain"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSubtle)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ServerStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)
)

var (
	activeStyle   = lipgloss.NewStyle().Foreground(ColorActive)
	brokenStyle   = lipgloss.NewStyle().Foreground(ColorBroken).Bold(true)
	directStyle   = lipgloss.NewStyle().Foreground(ColorDirect)
	errorStyle    = lipgloss.NewStyle().Foreground(ColorError)
	inactiveStyle = lipgloss.NewStyle().Foreground(ColorInactive)
)

// LinkStatus renders a link status in its color
func LinkStatus(s domain.LinkStatus) string {
	switch s {
	case domain.LinkActive:
		return activeStyle.Render(string(s))
	case domain.LinkBroken:
		return brokenStyle.Render(string(s))
	case domain.LinkDirect:
		return directStyle.Render(string(s))
	default:
		return inactiveStyle.Render(string(s))
	}
}

// ConnectionStatus renders a connection status in its color
func ConnectionStatus(s domain.ConnectionStatus) string {
	switch s.State {
	case domain.StateConnected:
		return activeStyle.Render(s.String())
	case domain.StateError:
		return errorStyle.Render(s.String())
	case domain.StateConnecting:
		return directStyle.Render(s.String())
	default:
		return inactiveStyle.Render(s.String())
	}
}
