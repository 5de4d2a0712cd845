package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

type varyFlags struct {
	paramFlags
	seed   int64
	levels []float64
}

// variant is one re-rendering of a character's name.
type variant struct {
	Variance float64 `json:"variance" yaml:"variance"`
	Name     string  `json:"name" yaml:"name"`
}

func newVaryCmd(a *app) *cobra.Command {
	f := &varyFlags{}
	cmd := &cobra.Command{
		Use:   "vary",
		Short: "Render one character's name at several variance levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runVary(cmd, f)
		},
	}
	f.register(cmd)
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Generation seed (default: random)")
	cmd.Flags().Float64SliceVar(&f.levels, "levels", []float64{0, 25, 50, 75, 100}, "Variance levels to render")
	return cmd
}

func (a *app) runVary(cmd *cobra.Command, f *varyFlags) error {
	p, err := f.params(cmd, a.cfg.Generation, a.tables)
	if err != nil {
		return err
	}
	seed := f.seed
	if !cmd.Flags().Changed("seed") {
		seed = randomSeed()
	}

	c, err := a.generate(seed, p)
	if err != nil {
		return err
	}

	// Every level is rendered from the base name, never from a previous level.
	variants := make([]variant, 0, len(f.levels))
	for _, v := range f.levels {
		r := c.Revary(v)
		variants = append(variants, variant{Variance: r.Params.Variance, Name: r.Name})
	}

	return render(cmd.OutOrStdout(), a.cfg.Output.Format, variants, func(w io.Writer) error {
		fmt.Fprintf(w, "seed %d, base %q\n", c.Seed, c.BaseName())
		for _, v := range variants {
			if _, err := fmt.Fprintf(w, "%5.1f%%  %s\n", v.Variance, v.Name); err != nil {
				return err
			}
		}
		return nil
	})
}
