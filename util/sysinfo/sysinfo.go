package sysinfo

import (
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// SystemInfo describes the terminal todo is printing to.
// It is used to pick an output style when display.style is "auto".
type SystemInfo struct {
	OS           string // runtime.GOOS (darwin, linux, windows)
	Architecture string // runtime.GOARCH (amd64, arm64, etc.)

	TermType      string // $TERM
	ColorTerm     string // $COLORTERM (truecolor indicator)
	ColorFGBG     string // $COLORFGBG
	NoColor       bool   // $NO_COLOR is set
	DetectedTheme string // "dark", "light", "unknown"

	ColorSupport string // "monochrome", "16-color", "256-color", "truecolor", "unknown"
	ColorCount   int
}

// NewSystemInfo collects terminal information from the process environment.
func NewSystemInfo() *SystemInfo {
	return FromEnv(os.Getenv)
}

// FromEnv collects terminal information using getenv for variable lookup.
func FromEnv(getenv func(string) string) *SystemInfo {
	info := &SystemInfo{
		OS:           runtime.GOOS,
		Architecture: runtime.GOARCH,

		TermType:  getenv("TERM"),
		ColorTerm: getenv("COLORTERM"),
		ColorFGBG: getenv("COLORFGBG"),
		NoColor:   getenv("NO_COLOR") != "",
	}

	info.DetectedTheme = detectTheme(info.ColorFGBG)
	info.ColorSupport, info.ColorCount = colorSupport(info.TermType, info.ColorTerm)
	return info
}

// GlamourStyle picks a glamour style name for this terminal.
// "auto" leaves the choice to glamour's own background detection.
func (s *SystemInfo) GlamourStyle() string {
	switch {
	case s.NoColor, s.TermType == "dumb", s.ColorSupport == "monochrome":
		return "notty"
	case s.DetectedTheme == "light":
		return "light"
	case s.DetectedTheme == "dark":
		return "dark"
	default:
		return "auto"
	}
}

// ResolveStyle returns configured unless it is empty or "auto", in which
// case the style is derived from the terminal.
func (s *SystemInfo) ResolveStyle(configured string) string {
	if configured != "" && configured != "auto" {
		return configured
	}
	return s.GlamourStyle()
}

// ToMap returns system information as a map for display.
func (s *SystemInfo) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"os":             s.OS,
		"architecture":   s.Architecture,
		"term_type":      s.TermType,
		"colorterm":      s.ColorTerm,
		"colorfgbg":      s.ColorFGBG,
		"no_color":       s.NoColor,
		"detected_theme": s.DetectedTheme,
		"color_support":  s.ColorSupport,
		"color_count":    s.ColorCount,
		"style":          s.GlamourStyle(),
	}
}

// String returns the map entries as sorted "key: value" lines.
func (s *SystemInfo) String() string {
	m := s.ToMap()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\n", k, m[k])
	}
	return b.String()
}

// detectTheme parses $COLORFGBG to determine if terminal has dark or light background.
// Format: "fg;bg" where bg >= 8 indicates light background.
// Returns "dark", "light", or "unknown".
func detectTheme(colorFGBG string) string {
	if colorFGBG == "" {
		return "unknown"
	}

	parts := strings.Split(colorFGBG, ";")
	if len(parts) < 2 {
		return "unknown"
	}

	var bgValue int
	if _, err := fmt.Sscanf(parts[len(parts)-1], "%d", &bgValue); err != nil {
		return "unknown"
	}

	// 0-7 = dark colors, 8+ = light colors
	if bgValue >= 8 {
		return "light"
	}
	return "dark"
}

// colorSupport checks $COLORTERM first, then the terminfo entry for $TERM.
// No screen is initialized.
func colorSupport(term, colorterm string) (string, int) {
	if colorterm == "truecolor" || colorterm == "24bit" {
		return "truecolor", 16777216
	}
	if term == "" {
		return "unknown", 0
	}

	ti, err := tcell.LookupTerminfo(term)
	if err != nil || ti == nil {
		return "unknown", 0
	}
	return classifyColors(ti.Colors)
}

func classifyColors(colors int) (string, int) {
	switch {
	case colors >= 16777216:
		return "truecolor", colors
	case colors >= 256:
		return "256-color", colors
	case colors >= 16:
		return "16-color", colors
	case colors >= 2:
		return "monochrome", colors
	default:
		return "unknown", colors
	}
}
