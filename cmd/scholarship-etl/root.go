package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"studentsignal/internal/config"
	"studentsignal/internal/logging"
	"studentsignal/internal/pipeline"
	"studentsignal/internal/source"
	"studentsignal/internal/store"
)

// app is the state shared by the root command and its subcommands.
type app struct {
	cfg config.Config
	log *zap.Logger
	out io.Writer

	dryRun bool
	sample bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, log: zap.NewNop()}
	var (
		sourcePath, enrichmentPath, storeURL, collection string
	)

	root := &cobra.Command{
		Use:   "scholarship-etl",
		Short: "Rebuild the scholarship catalog collection from source records",
		Long: `Loads the scholarship source records, merges the manual enrichment file,
normalizes amounts, deadlines, slugs and tags, and replaces the catalog
collection with the result. Statistics are printed to stdout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.cfg = config.Load()

			flags := cmd.Flags()
			if flags.Changed("source") {
				a.cfg.Pipeline.SourcePath = sourcePath
			}
			if flags.Changed("enrichment") {
				a.cfg.Pipeline.EnrichmentPath = enrichmentPath
			}
			if flags.Changed("store") {
				a.cfg.Store.URL = storeURL
			}
			if flags.Changed("collection") {
				a.cfg.Store.Collection = collection
			}

			log, err := logging.New(a.cfg.Log.Level, a.cfg.Log.JSON)
			if err != nil {
				return eris.Wrap(err, "build logger")
			}
			a.log = log
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.run(cmd.Context()); err != nil {
				a.log.Error("scholarship-etl: run failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&sourcePath, "source", "", "source records file (.csv or .json); empty uses the built-in seed set")
	pf.StringVar(&enrichmentPath, "enrichment", config.DefaultEnrichmentPath, "manual enrichment JSON file")
	root.Flags().StringVar(&storeURL, "store", config.DefaultStoreURL, "destination store URL (mongodb://... or sqlite://path)")
	root.Flags().StringVar(&collection, "collection", config.DefaultCollection, "destination collection or table")
	root.Flags().BoolVar(&a.dryRun, "dry-run", false, "transform and report without touching the store")
	root.Flags().BoolVar(&a.sample, "sample", false, "print the first record before and after transformation")

	root.AddCommand(newValidateCmd(a), newTemplateCmd(a))
	return root
}

func (a *app) run(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if a.cfg.Store.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Store.Timeout)
		defer cancel()
	}

	loader, err := source.FromPath(a.cfg.Pipeline.SourcePath)
	if err != nil {
		return err
	}

	p := &pipeline.Pipeline{
		Source:         loader,
		EnrichmentPath: a.cfg.Pipeline.EnrichmentPath,
		Collection:     a.cfg.Store.Collection,
		Location:       a.cfg.Pipeline.DeadlineLocation(),
		Log:            a.log,
		DryRun:         a.dryRun,
	}

	if !a.dryRun {
		backend, err := store.Open(ctx, a.cfg.Store.URL, a.cfg.Store.Database)
		if err != nil {
			return eris.Wrap(err, "open store")
		}
		defer func() {
			if err := backend.Close(context.WithoutCancel(ctx)); err != nil {
				a.log.Warn("scholarship-etl: closing store", zap.Error(err))
			}
		}()
		p.Writer = backend.Writer(a.log)
	}

	res, err := p.Run(ctx)
	if err != nil {
		return err
	}

	if a.sample || a.dryRun {
		if err := pipeline.PrintSample(a.out, res); err != nil {
			return eris.Wrap(err, "print sample")
		}
	}
	res.Stats.Print(a.out)

	if res.DryRun {
		fmt.Fprintf(a.out, "\nDry run: %d records assembled, store untouched\n", len(res.Records))
		return nil
	}
	target := res.Store.Collection
	if kind, _, _ := store.ParseURL(a.cfg.Store.URL); kind == store.KindMongo {
		target = a.cfg.Store.Database + "." + target
	}
	fmt.Fprintf(a.out, "\nCollection %s rebuilt: %d records\n", target, res.Store.Inserted)
	if res.Stats.MissingWebsite > 0 || res.Stats.MissingSponsor > 0 || res.Stats.MissingApplicationURL > 0 {
		fmt.Fprintf(a.out, "Manual enrichment still needed, edit %s\n", a.cfg.Pipeline.EnrichmentPath)
	}
	return nil
}
