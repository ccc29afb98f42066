// Package styles provides shared lipgloss styles for the console output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	ColorGreen  = lipgloss.Color("#9ece6a")
	ColorYellow = lipgloss.Color("#e0af68")
	ColorBlue   = lipgloss.Color("#7aa2f7")
	ColorGray   = lipgloss.Color("#565f89")
	ColorWhite  = lipgloss.Color("#c0caf5")
)

// Banner ASCII art for the console header.
const Banner = `
 ╔═╗╔═╗╦╔═╗╔═╗╔═╗
 ╠═╝╠═╣║╚═╗║╣ ╚═╗
 ╩  ╩ ╩╩╚═╝╚═╝╚═╝`

// BannerStyle styles the ASCII art banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// RecordBoxStyle frames a country record.
var RecordBoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBlue).
	Padding(0, 1)

// LabelStyle styles the field labels inside a record.
var LabelStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// ValueStyle styles the field values inside a record.
var ValueStyle = lipgloss.NewStyle().
	Foreground(ColorWhite)

// TitleStyle styles the record title line.
var TitleStyle = lipgloss.NewStyle().
	Foreground(ColorGreen).
	Bold(true)

// PromptStyle styles the input prompt.
var PromptStyle = lipgloss.NewStyle().
	Foreground(ColorYellow)
