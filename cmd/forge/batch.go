package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/chromox/forge/internal/config"
	"github.com/chromox/forge/internal/forge"
	"github.com/chromox/forge/internal/logger"
)

type batchFlags struct {
	paramFlags
	start   int64
	count   int
	workers int
}

// batchSummary describes name collisions and filter hits across a batch.
type batchSummary struct {
	Count         int
	DistinctNames int
	CollisionRate float64
	Filtered      int
}

func newBatchCmd(a *app) *cobra.Command {
	f := &batchFlags{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate characters for a range of consecutive seeds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBatch(cmd, f)
		},
	}
	f.register(cmd)
	cmd.Flags().Int64Var(&f.start, "start", 1, "First seed")
	cmd.Flags().IntVarP(&f.count, "count", "n", 10, "Number of characters")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "Concurrent workers (default from config)")
	return cmd
}

func (a *app) runBatch(cmd *cobra.Command, f *batchFlags) error {
	if f.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", f.count)
	}
	p, err := f.params(cmd, a.cfg.Generation, a.tables)
	if err != nil {
		return err
	}
	workers := a.cfg.Output.Workers
	if f.workers > 0 {
		workers = f.workers
	}

	seeds := make([]int64, f.count)
	for i := range seeds {
		seeds[i] = f.start + int64(i)
	}

	chars, err := forge.Batch(cmd.Context(), a.tables, seeds, p, workers)
	if err != nil {
		logger.Error("Batch aborted", "start", f.start, "count", f.count, "error", err)
		return err
	}

	summary := summarize(chars, func(name string) bool { return !a.filter.Check(name).Allowed })
	logger.Info("Batch complete", "count", summary.Count, "distinct", summary.DistinctNames, "workers", workers)
	if summary.Filtered > 0 {
		logger.Warning("Batch contains filtered names", "filtered", summary.Filtered)
	}

	if err := writeBatch(cmd.OutOrStdout(), a.cfg.Output.Format, chars); err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.ErrOrStderr(), "%d characters, %d distinct names, collision rate %.2f%%, %d filtered\n",
		summary.Count, summary.DistinctNames, summary.CollisionRate*100, summary.Filtered)
	return err
}

func summarize(chars []*forge.Character, rejected func(string) bool) batchSummary {
	seen := make(map[string]bool, len(chars))
	s := batchSummary{Count: len(chars)}
	for _, c := range chars {
		seen[c.Name] = true
		if rejected(c.Name) {
			s.Filtered++
		}
	}
	s.DistinctNames = len(seen)
	if s.Count > 0 {
		s.CollisionRate = float64(s.Count-s.DistinctNames) / float64(s.Count)
	}
	return s
}

// writeBatch writes JSON as one record per line and YAML as a sequence.
func writeBatch(w io.Writer, format string, chars []*forge.Character) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for _, c := range chars {
			if err := enc.Encode(c); err != nil {
				return err
			}
		}
		return nil
	case config.FormatYAML:
		recs := make([]forge.Record, len(chars))
		for i, c := range chars {
			recs[i] = c.Record()
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(recs); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, c := range chars {
			if _, err := fmt.Fprintf(w, "%d\t%s\t%s %s\n", c.Seed, c.Name, c.Subtaste.Glyph, c.Subtaste.Code); err != nil {
				return err
			}
		}
		return nil
	}
}
