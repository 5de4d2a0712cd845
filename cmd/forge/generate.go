package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chromox/forge/internal/forge"
	"github.com/chromox/forge/internal/logger"
	"github.com/chromox/forge/internal/request"
)

type generateFlags struct {
	paramFlags
	seed      int64
	request   string
	color     string
	personaID string
	tier      int
	icon      string
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one character",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, f)
		},
	}
	f.register(cmd)
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Generation seed (default: random)")
	cmd.Flags().StringVar(&f.request, "request", "", "Emit a creation request instead: persona or relic")
	cmd.Flags().StringVar(&f.color, "color", "", "Persona request color")
	cmd.Flags().StringVar(&f.personaID, "persona-id", "", "Relic request target persona")
	cmd.Flags().IntVar(&f.tier, "tier", request.MinTier, "Relic request tier, 1-5")
	cmd.Flags().StringVar(&f.icon, "icon", "", "Relic request icon (default: subtaste glyph)")
	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, f *generateFlags) error {
	p, err := f.params(cmd, a.cfg.Generation, a.tables)
	if err != nil {
		return err
	}

	seed := f.seed
	if !cmd.Flags().Changed("seed") {
		seed = randomSeed()
		logger.Info("Seed selected", "seed", seed, "random", true)
	}

	c, err := a.generate(seed, p)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format := a.cfg.Output.Format
	switch f.request {
	case "":
		return render(out, format, c.Record(), func(w io.Writer) error {
			return writeCharacter(w, c)
		})
	case "persona":
		req := request.NewPersona(c, f.color)
		return render(out, format, req, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%s [%s] %v\n\n%s\n\n%s\n", req.Name, req.Voice, req.Tags, req.Backstory, req.SystemPrompt)
			return err
		})
	case "relic":
		req, err := request.NewRelic(c, f.personaID, f.tier, f.icon)
		if err != nil {
			return err
		}
		return render(out, format, req, func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%s %s (tier %d, persona %s)\n%s\n\n%s\n", req.Icon, req.Name, req.Tier, req.PersonaID, req.Description, req.Lore)
			return err
		})
	default:
		return fmt.Errorf("unknown request kind %q", f.request)
	}
}

// generate runs the generator, moving to later seeds while the name filter
// rejects the name. The returned character carries the seed actually used.
func (a *app) generate(seed int64, p forge.Params) (*forge.Character, error) {
	if a.filter.IsEnabled() {
		used, err := a.filter.Reroll(seed, a.cfg.Output.RerollAttempts, func(s int64) string {
			return forge.GenerateWith(a.tables, s, p).Name
		})
		if err != nil {
			logger.Warning("Name filter rejected every reroll", "seed", seed, "attempts", a.cfg.Output.RerollAttempts)
			return nil, err
		}
		if used != seed {
			logger.Info("Name filtered, rerolled", "seed", seed, "used", used)
		}
		seed = used
	}
	return forge.GenerateWith(a.tables, seed, p), nil
}
