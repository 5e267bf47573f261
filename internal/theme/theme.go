package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Base palette
var (
	ColorLavender = lipgloss.Color("#9f99d1")
	ColorSkyBlue  = lipgloss.Color("#86bada")
	ColorMauve    = lipgloss.Color("#dbaad7")
	ColorPeach    = lipgloss.Color("#f6bcb0")
	ColorGold     = lipgloss.Color("#ffe3b3")
)

// Neutral tones
var (
	ColorElevatedBg = lipgloss.Color("#2a2b42")
	ColorBorder     = lipgloss.Color("#3a3b52")
	ColorMutedText  = lipgloss.Color("#6b6d8a")
	ColorBodyText   = lipgloss.Color("#c8cad8")
	ColorBrightText = lipgloss.Color("#ecedf5")
)

// TitleGradient spans section titles, left to right.
var TitleGradient = [2]string{"#86bada", "#dbaad7"}

// LerpColor interpolates between two hex colors.
func LerpColor(from, to string, t float64) string {
	r1, g1, b1 := HexToRGB(from)
	r2, g2, b2 := HexToRGB(to)

	r := uint8(float64(r1) + t*(float64(r2)-float64(r1)))
	g := uint8(float64(g1) + t*(float64(g2)-float64(g1)))
	b := uint8(float64(b1) + t*(float64(b2)-float64(b1)))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func HexToRGB(hex string) (uint8, uint8, uint8) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

// GradientText applies a gradient color across a string.
func GradientText(text, fromHex, toHex string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(text) * 20) // pre-allocate for ANSI escape overhead
	style := lipgloss.NewStyle().Bold(true)
	for i, r := range runes {
		t := float64(i) / float64(max(len(runes)-1, 1))
		color := LerpColor(fromHex, toHex, t)
		sb.WriteString(style.Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return sb.String()
}

// Title renders a section title in the title gradient.
func Title(text string) string {
	return GradientText(text, TitleGradient[0], TitleGradient[1])
}

// Common styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorBrightText).
			Bold(true).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Foreground(ColorBodyText).
			Padding(0, 1)

	NumberCellStyle = CellStyle.
			Align(lipgloss.Right)

	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMutedText)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSkyBlue)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorPeach).
			Bold(true)
)

// RowBackground returns a subtle background style for alternating rows.
// Even rows (0, 2, 4...) get no background, odd rows get ElevatedBg.
func RowBackground(style lipgloss.Style, index int) lipgloss.Style {
	if index%2 == 1 {
		return style.Background(ColorElevatedBg)
	}
	return style
}
