package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders text in bold with its color sweeping from
// one end of the gradient to the other.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	if text == "" {
		return ""
	}

	// One gradient step per grapheme cluster, so a multi-rune glyph
	// keeps a single color.
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	if len(clusters) == 1 {
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	colors := blendColors(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colors[i].Hex())).
			Render(cluster))
	}
	return b.String()
}

// Fade blends a color toward the theme background to simulate opacity:
// alpha 1 is the color itself, alpha 0 is the background. Toasts use it
// for their fade-in and fade-out.
func Fade(c lipgloss.Color, alpha float64) lipgloss.Color {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	fg, ok1 := colorful.MakeColor(parseColor(c))
	bg, ok2 := colorful.MakeColor(parseColor(T().BgBase))
	if !ok1 || !ok2 {
		return c
	}
	return lipgloss.Color(bg.BlendHcl(fg, alpha).Clamped().Hex())
}

// blendColors interpolates size colors between from and to in HCL space.
// Callers guarantee size >= 2.
func blendColors(size int, from, to lipgloss.Color) []colorful.Color {
	c1, _ := colorful.MakeColor(parseColor(from))
	c2, _ := colorful.MakeColor(parseColor(to))

	colors := make([]colorful.Color, size)
	for i := range size {
		t := float64(i) / float64(size-1)
		colors[i] = c1.BlendHcl(c2, t).Clamped()
	}
	return colors
}

// parseColor reads a hex lipgloss color; anything else, such as an ANSI
// palette index, falls back to a neutral gray.
func parseColor(c lipgloss.Color) color.Color {
	hex := string(c)
	if len(hex) == 7 && hex[0] == '#' {
		if col, err := colorful.Hex(hex); err == nil {
			return col
		}
	}
	return color.RGBA{R: 128, G: 128, B: 128, A: 255}
}
