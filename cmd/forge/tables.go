package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chromox/forge/internal/subtaste"
)

type systemInfo struct {
	Name       string `json:"name" yaml:"name"`
	Archetypes int    `json:"archetypes" yaml:"archetypes"`
}

type tablesInfo struct {
	Digest       string                 `json:"digest" yaml:"digest"`
	Systems      []systemInfo           `json:"systems" yaml:"systems"`
	Cultures     []string               `json:"cultures" yaml:"cultures"`
	Orders       int                    `json:"orders" yaml:"orders"`
	Skins        []string               `json:"skins" yaml:"skins"`
	Designations []subtaste.Designation `json:"designations" yaml:"designations"`
}

func newTablesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "Describe the loaded lore tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTables(cmd)
		},
	}
}

func (a *app) runTables(cmd *cobra.Command) error {
	t := a.tables
	info := tablesInfo{
		Digest:       t.Digest(),
		Orders:       len(t.Orders),
		Skins:        t.SkinNames(),
		Designations: subtaste.All(),
	}
	for _, s := range t.Systems {
		info.Systems = append(info.Systems, systemInfo{Name: s.Name, Archetypes: len(s.Archetypes)})
	}
	for _, c := range t.Cultures {
		info.Cultures = append(info.Cultures, c.ID)
	}

	return render(cmd.OutOrStdout(), a.cfg.Output.Format, info, func(w io.Writer) error {
		fmt.Fprintf(w, "digest   %s\n", info.Digest)
		for _, s := range info.Systems {
			fmt.Fprintf(w, "system   %-11s %d archetypes\n", s.Name, s.Archetypes)
		}
		fmt.Fprintf(w, "cultures %v\n", info.Cultures)
		fmt.Fprintf(w, "orders   %d\n", info.Orders)
		fmt.Fprintf(w, "skins    %v\n", info.Skins)
		for _, d := range info.Designations {
			if _, err := fmt.Fprintf(w, "subtaste %s %-4s %s\n", d.Glyph, d.Code, d.Label); err != nil {
				return err
			}
		}
		return nil
	})
}
