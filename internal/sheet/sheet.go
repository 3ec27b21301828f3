// Package sheet renders resolved characters for the terminal, the save file
// and machine readable output.
package sheet

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/npc-generator/internal/engine"
	"github.com/KirkDiggler/npc-generator/internal/errors"
)

// Format selects how a sheet is written
type Format string

// Supported formats
const (
	FormatPlain Format = "text"
	FormatColor Format = "color"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

const (
	// divider closes every text sheet
	dividerWidth = 120
	// defaultPad is the label width of a sheet without groups
	defaultPad = 10
)

// ParseFormat validates a format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatPlain, FormatColor, FormatYAML, FormatJSON:
		return f, nil
	case "":
		return FormatPlain, nil
	default:
		return "", errors.InvalidArgumentf("unknown output format %q", name)
	}
}

// FormatText lays a character out one group per line with labels padded to
// the longest group name, followed by a divider line
func FormatText(c *engine.Character) string {
	groups := groupsOf(c)
	pad := labelWidth(groups)

	var b strings.Builder
	b.WriteString("\n")
	for _, g := range groups {
		fmt.Fprintf(&b, "%-*s\t: %s \n", pad, g.Group, strings.Join(g.Values, ", "))
	}
	b.WriteString(strings.Repeat("-", dividerWidth))
	b.WriteString("\n")

	return b.String()
}

// Styles holds the lipgloss styles of a colored sheet
type Styles struct {
	Label   lipgloss.Style
	Value   lipgloss.Style
	Empty   lipgloss.Style
	Divider lipgloss.Style
}

// DefaultStyles returns the terminal palette
func DefaultStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#5599FF"}).
			Bold(true),
		Value: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#E0E0E0"}),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
			Italic(true),
		Divider: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CCCCCC", Dark: "#444444"}),
	}
}

// FormatStyled renders the text layout with terminal styles
func FormatStyled(c *engine.Character, styles Styles) string {
	groups := groupsOf(c)
	pad := labelWidth(groups)

	var b strings.Builder
	b.WriteString("\n")
	for _, g := range groups {
		label := styles.Label.Render(fmt.Sprintf("%-*s", pad, g.Group))

		value := styles.Empty.Render("-")
		if len(g.Values) > 0 {
			value = styles.Value.Render(strings.Join(g.Values, ", "))
		}

		fmt.Fprintf(&b, "%s\t: %s \n", label, value)
	}
	b.WriteString(styles.Divider.Render(strings.Repeat("-", dividerWidth)))
	b.WriteString("\n")

	return b.String()
}

// Write renders characters to w in the given format. Text formats write one
// sheet after another; YAML writes a document per character and JSON a
// single array.
func Write(w io.Writer, format Format, characters ...*engine.Character) error {
	switch format {
	case FormatPlain, "":
		for _, c := range characters {
			if _, err := io.WriteString(w, FormatText(c)); err != nil {
				return errors.Wrap(err, "failed to write sheet")
			}
		}
	case FormatColor:
		styles := DefaultStyles()
		for _, c := range characters {
			if _, err := io.WriteString(w, FormatStyled(c, styles)); err != nil {
				return errors.Wrap(err, "failed to write sheet")
			}
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, c := range characters {
			if err := enc.Encode(normalize(c)); err != nil {
				return errors.Wrap(err, "failed to encode sheet as yaml")
			}
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "failed to flush yaml encoder")
		}
	case FormatJSON:
		out := make([]*engine.Character, 0, len(characters))
		for _, c := range characters {
			out = append(out, normalize(c))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return errors.Wrap(err, "failed to encode sheet as json")
		}
	default:
		return errors.InvalidArgumentf("unknown output format %q", format)
	}

	return nil
}

// normalize replaces nil value lists so encoders emit empty lists
func normalize(c *engine.Character) *engine.Character {
	groups := groupsOf(c)
	out := &engine.Character{Groups: make([]engine.GroupValues, 0, len(groups))}
	for _, g := range groups {
		values := g.Values
		if values == nil {
			values = []string{}
		}
		out.Groups = append(out.Groups, engine.GroupValues{Group: g.Group, Values: values})
	}
	return out
}

func groupsOf(c *engine.Character) []engine.GroupValues {
	if c == nil {
		return nil
	}
	return c.Groups
}

func labelWidth(groups []engine.GroupValues) int {
	if len(groups) == 0 {
		return defaultPad
	}
	width := 0
	for _, g := range groups {
		if n := utf8.RuneCountInString(g.Group); n > width {
			width = n
		}
	}
	return width
}
