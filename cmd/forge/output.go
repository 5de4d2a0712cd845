package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/chromox/forge/internal/config"
	"github.com/chromox/forge/internal/forge"
)

// render writes v as JSON or YAML, or calls text for the text format.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return text(w)
	}
}

func writeCharacter(w io.Writer, c *forge.Character) error {
	rec := c.Record()
	lines := [][2]string{
		{"Name", rec.Name},
		{"Seed", fmt.Sprint(rec.Seed)},
		{"Heritage", fmt.Sprintf("%s (%s, %s)", rec.Heritage, rec.Gender, rec.Strategy)},
		{"Order", fmt.Sprintf("%s, %s", rec.Affiliation.Order, rec.Affiliation.Office)},
		{"Archetype", fmt.Sprintf("%s / %s: %s", rec.Archetype.System, rec.Archetype.Key, rec.Archetype.Meaning)},
		{"Subtaste", fmt.Sprintf("%s %s %s", rec.Subtaste.Glyph, rec.Subtaste.Code, rec.Subtaste.Label)},
		{"Appearance", fmt.Sprintf("%s; %s; %s", rec.Appearance.Build, rec.Appearance.Distinctive, rec.Appearance.Style)},
		{"Voice", rec.Personality.VoiceTone},
		{"Fear", rec.Personality.DeepFear},
		{"Axes", fmt.Sprintf("order/chaos %.2f  mercy/ruthless %.2f  intro/extro %.2f  faith/doubt %.2f",
			rec.Personality.OrderChaos, rec.Personality.MercyRuthlessness, rec.Personality.IntroExtro, rec.Personality.FaithDoubt)},
	}
	if r := rec.Relic; r != nil {
		lines = append(lines,
			[2]string{"Relic", fmt.Sprintf("%s (%s, %s)", r.Object.Name, r.Object.Category, r.Era)},
			[2]string{"Sacred", fmt.Sprint(r.SacredNumber)},
			[2]string{"Pseudonym", r.Pseudonym},
		)
		if r.Post != nil {
			lines = append(lines, [2]string{"Post", fmt.Sprintf("[%s] %s", r.Post.Category, r.Post.Line)})
		}
	}

	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "%-11s %s\n", l[0]+":", l[1])
	}
	fmt.Fprintf(&b, "\n%s\n", rec.Backstory)
	_, err := io.WriteString(w, b.String())
	return err
}
