package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/spf13/viper"
	"github.com/sustainage/sdg-engine/internal/api"
	"github.com/sustainage/sdg-engine/internal/pkg/constants"
	"github.com/sustainage/sdg-engine/internal/pkg/logger"
	"github.com/sustainage/sdg-engine/internal/pkg/store"
	"github.com/sustainage/sdg-engine/internal/pkg/store/xpgx"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	initConfig()

	zapLogger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	logger.Init(zapLogger)

	pool, err := connectPool(ctx)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	// A failed ingest leaves the engine serving the empty taxonomy rather
	// than refusing to start.
	taxonomyPath := viper.GetString(constants.ViperTaxonomyPath)
	if taxonomyPath != "" {
		if err = svc.TaxonomyService().Ingest(ctx, taxonomyPath, viper.GetString(constants.ViperTaxonomySheet)); err != nil {
			logger.Errorf(ctx, "taxonomy ingest: %s", err.Error())
		}
	}

	go func() {
		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop

		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := svc.Shutdown(shutdownCtx); err != nil {
			logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
		}
	}()

	svc.Serve(viper.GetString(constants.ViperServerAddr))
}

func initConfig() {
	viper.SetDefault(constants.ViperServerAddr, ":8080")
	viper.SetDefault(constants.ViperTaxonomySheet, constants.DefaultTaxonomySheet)
	viper.SetDefault(constants.ViperCORSOrigin, "http://localhost:3000")

	viper.SetEnvPrefix("sdg")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		logger.Warnf(context.Background(), "no config file, using env and defaults: %s", err.Error())
	}
}

// connectPool waits out Postgres startup with a bounded constant backoff.
func connectPool(ctx context.Context) (xpgx.Pool, error) {
	var pool xpgx.Pool
	err := backoff.Retry(
		func() error {
			var connErr error
			pool, connErr = xpgx.NewPool(ctx, viper.GetString(constants.ViperDatabaseDSN))
			return connErr
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewConstantBackOff(2*time.Second), 15),
			ctx,
		),
	)
	return pool, err
}
