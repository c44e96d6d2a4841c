package sysinfo

import (
	"strings"
	"testing"
)

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string { return vars[key] }
}

func TestDetectTheme(t *testing.T) {
	tests := []struct {
		name      string
		colorFGBG string
		want      string
	}{
		{name: "dark theme", colorFGBG: "15;0", want: "dark"},
		{name: "light theme", colorFGBG: "0;15", want: "light"},
		{name: "light theme with bg=8", colorFGBG: "0;8", want: "light"},
		{name: "dark theme with bg=7", colorFGBG: "15;7", want: "dark"},
		{name: "empty string", colorFGBG: "", want: "unknown"},
		{name: "invalid format - single value", colorFGBG: "15", want: "unknown"},
		{name: "non-numeric background", colorFGBG: "15;default", want: "unknown"},
		{name: "multiple values - use last", colorFGBG: "15;0;8", want: "light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectTheme(tt.colorFGBG); got != tt.want {
				t.Errorf("detectTheme(%q) = %q, want %q", tt.colorFGBG, got, tt.want)
			}
		})
	}
}

func TestColorSupport(t *testing.T) {
	tests := []struct {
		name      string
		term      string
		colorterm string
		want      string
	}{
		{name: "empty TERM", want: "unknown"},
		{name: "invalid TERM", term: "nonexistent-terminal-type", want: "unknown"},
		{name: "COLORTERM truecolor", term: "xterm", colorterm: "truecolor", want: "truecolor"},
		{name: "COLORTERM 24bit", colorterm: "24bit", want: "truecolor"},
		{name: "xterm-256color", term: "xterm-256color", want: "256-color"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := colorSupport(tt.term, tt.colorterm)
			if got != tt.want {
				t.Errorf("colorSupport(%q, %q) = %q (%d), want %q", tt.term, tt.colorterm, got, count, tt.want)
			}
		})
	}
}

func TestClassifyColors(t *testing.T) {
	tests := []struct {
		colors int
		want   string
	}{
		{0, "unknown"},
		{2, "monochrome"},
		{8, "monochrome"},
		{16, "16-color"},
		{256, "256-color"},
		{16777216, "truecolor"},
	}
	for _, tt := range tests {
		if got, _ := classifyColors(tt.colors); got != tt.want {
			t.Errorf("classifyColors(%d) = %q, want %q", tt.colors, got, tt.want)
		}
	}
}

func TestGlamourStyle(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "no color", env: map[string]string{"NO_COLOR": "1", "COLORTERM": "truecolor"}, want: "notty"},
		{name: "dumb terminal", env: map[string]string{"TERM": "dumb"}, want: "notty"},
		{name: "light background", env: map[string]string{"COLORTERM": "truecolor", "COLORFGBG": "0;15"}, want: "light"},
		{name: "dark background", env: map[string]string{"COLORTERM": "truecolor", "COLORFGBG": "15;0"}, want: "dark"},
		{name: "unknown background", env: map[string]string{"COLORTERM": "truecolor"}, want: "auto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromEnv(envFrom(tt.env)).GlamourStyle(); got != tt.want {
				t.Errorf("GlamourStyle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveStyle(t *testing.T) {
	info := FromEnv(envFrom(map[string]string{"COLORTERM": "truecolor", "COLORFGBG": "0;15"}))

	if got := info.ResolveStyle("dracula"); got != "dracula" {
		t.Errorf("explicit style overridden: %q", got)
	}
	if got := info.ResolveStyle("auto"); got != "light" {
		t.Errorf("ResolveStyle(auto) = %q, want light", got)
	}
	if got := info.ResolveStyle(""); got != "light" {
		t.Errorf("ResolveStyle(\"\") = %q, want light", got)
	}
}

func TestString(t *testing.T) {
	info := FromEnv(envFrom(map[string]string{"TERM": "dumb"}))
	s := info.String()
	for _, want := range []string{"term_type: dumb\n", "style: notty\n", "detected_theme: unknown\n"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
