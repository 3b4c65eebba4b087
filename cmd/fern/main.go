// Package main is the entry point for the fern CLI, a matching and sales
// prediction engine for dormant industrial stock.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Gobusters/ectologger"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ramsey-B/fern/config"
	"github.com/Ramsey-B/fern/internal/appcontext"
	"github.com/Ramsey-B/fern/internal/tracing"
	"github.com/Ramsey-B/fern/internal/tracing/exporters"
	"github.com/Ramsey-B/fern/pkg/carbon"
	"github.com/Ramsey-B/fern/pkg/catalog"
	"github.com/Ramsey-B/fern/pkg/geo"
	"github.com/Ramsey-B/fern/pkg/matching"
	"github.com/Ramsey-B/fern/pkg/prediction"
)

// app holds the wired services shared by all subcommands. Built once in the
// root command's PersistentPreRunE.
type app struct {
	cfg        *config.Config
	log        ectologger.Logger
	catalog    *catalog.Catalog
	finder     *matching.Finder
	calculator *carbon.Calculator
	shutdown   func(context.Context) error
}

var engine *app

var rootCmd = &cobra.Command{
	Use:   "fern",
	Short: "Match dormant stock with buyers and predict sales",
	Long: `fern scores every product/buyer pairing on category, location, price and
quantity, predicts sale probability from market trends, and estimates the
CO2 avoided by valorizing stock instead of producing new material.

Subcommands operate on the built-in sample catalog: top lists the best
matches across the whole catalog, product and buyer list matches for one
side, and carbon estimates avoided emissions for a valorization decision.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		log, err := newLogger(cfg)
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}

		ctx := appcontext.SetRequestID(cmd.Context(), uuid.NewString())
		cmd.SetContext(ctx)

		var shutdown func(context.Context) error
		if cfg.TracingEnabled {
			shutdown, err = tracing.Init(ctx, cfg.AppName, exporters.OTLPConfig{
				Endpoint: cfg.OTLPEndpoint,
				Protocol: cfg.OTLPProtocol,
				Insecure: cfg.OTLPInsecure,
				Timeout:  cfg.OTLPTimeout,
			})
			if err != nil {
				return fmt.Errorf("failed to initialize tracing: %w", err)
			}
		}

		cat := catalog.Sample()
		estimator := geo.NewEstimator(geo.DefaultLocations(), cfg.SentinelDistanceKm)
		scorer := matching.NewScorer(estimator, cfg.NearbyRadiusKm)
		finder := matching.NewFinder(log, cat, scorer, prediction.NewPredictor(), matching.Config{
			TopMatchLimit: cfg.TopMatchLimit,
			MinTopScore:   cfg.MinTopScore,
		})

		engine = &app{
			cfg:        cfg,
			log:        log,
			catalog:    cat,
			finder:     finder,
			calculator: carbon.NewCalculator(estimator),
			shutdown:   shutdown,
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if engine != nil && engine.shutdown != nil {
			return engine.shutdown(cmd.Context())
		}
		return nil
	},
}

// newLogger builds an ectologger backed by a zap core, so services keep the
// contextual logger interface while output formatting stays with zap.
func newLogger(cfg *config.Config) (ectologger.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.PrettyLogs {
		zapCfg = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	zl, err := zapCfg.Build()
	if err != nil {
		return nil, err
	}

	return ectologger.NewEctoLogger(func(msg ectologger.EctoLogMessage) {
		zl.Info("log", zap.Any("entry", msg))
	}), nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
