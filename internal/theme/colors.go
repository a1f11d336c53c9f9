package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - titles
	ColorSecondary Color = "86" // Cyan - server names
)

// Link status colors
const (
	ColorActive   Color = "2" // Green - symlink resolves
	ColorBroken   Color = "1" // Red - dangling symlink
	ColorDirect   Color = "3" // Yellow - real directory
	ColorInactive Color = "8" // Gray - empty slot
)

// UI semantic colors
const (
	ColorError  Color = "196" // Bright red
	ColorMuted  Color = "241" // Gray - secondary text
	ColorSubtle Color = "245" // Light gray - labels
)
