package main

import (
	"context"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/mreiner/compquote/internal/api"
	"github.com/mreiner/compquote/internal/pkg/constants"
	"github.com/mreiner/compquote/internal/pkg/logger"
	"github.com/mreiner/compquote/internal/pkg/store"
	"github.com/mreiner/compquote/internal/pkg/store/xpgx"
)

const shutdownTimeout = 10 * time.Second

func initConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetDefault(constants.ViperServerAddr, ":8080")
	viper.SetDefault(constants.ViperLoggerLevel, "info")
	viper.SetDefault(constants.ViperRefCacheTTL, 5*time.Minute)

	viper.SetEnvPrefix("COMPQUOTE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := initConfig(); err != nil {
		logger.Fatal(ctx, err)
	}
	logger.Init(viper.GetString(constants.ViperLoggerLevel))

	dsn := viper.GetString(constants.ViperPostgresDSN)
	if err := store.Migrate(dsn); err != nil {
		logger.Fatal(ctx, err)
	}

	pool, err := xpgx.NewPool(ctx, dsn)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperServerAddr))

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(shutdownCtx, "shutdown: %s", err.Error())
	}
}
