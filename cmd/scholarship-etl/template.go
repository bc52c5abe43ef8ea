package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studentsignal/internal/enrichment"
	"studentsignal/internal/source"
)

func newTemplateCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write an enrichment skeleton for the current source records",
		Long: `Writes one enrichment entry per source record, keyed by slug. Values
already curated in the existing enrichment file are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			loader, err := source.FromPath(a.cfg.Pipeline.SourcePath)
			if err != nil {
				return err
			}
			records, err := loader.Load(cmd.Context())
			if err != nil {
				return eris.Wrapf(err, "load source %s", loader.Name())
			}

			existing := enrichment.Load(a.cfg.Pipeline.EnrichmentPath, a.log)
			if out == "" {
				out = a.cfg.Pipeline.EnrichmentPath
			}
			f := enrichment.Template(records, existing)
			if err := enrichment.WriteFile(out, f); err != nil {
				return err
			}

			a.log.Info("template: written", zap.String("path", out), zap.Int("entries", len(f.Scholarships)))
			fmt.Fprintf(a.out, "Wrote %d entries to %s\n", len(f.Scholarships), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output path (default: the enrichment file itself)")
	return cmd
}
