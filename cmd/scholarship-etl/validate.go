package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studentsignal/internal/enrichment"
)

var errValidationFailed = eris.New("enrichment file is incomplete or invalid")

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the manual enrichment file for missing or malformed fields",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			path := a.cfg.Pipeline.EnrichmentPath
			f, err := enrichment.ReadFile(path)
			if err != nil {
				a.log.Error("validate: cannot read enrichment file", zap.String("path", path), zap.Error(err))
				return err
			}

			report := enrichment.Validate(f)
			report.Print(a.out)
			if !report.Passed() {
				a.log.Warn("validate: enrichment incomplete",
					zap.Int("complete", report.Completed), zap.Int("entries", len(report.Entries)))
				return errValidationFailed
			}
			return nil
		},
	}
}
