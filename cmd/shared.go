package cmd

import (
	"context"
	"sync"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tradingdata/trading-bridge/bridge"
	"github.com/tradingdata/trading-bridge/bridge/config"
	"go.uber.org/zap"
)

var (
	cfgPath string

	svcOnce sync.Once
	svcInst *bridge.Service
	svcErr  error
)

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// service singleton can be created lazily by whichever sub-command is executed
// first.
func setConfigPath(p string) { cfgPath = p }

// serviceSingleton initialises a bridge.Service only once and reuses the
// instance across sub-commands within the same CLI invocation.
func serviceSingleton() (*bridge.Service, error) {
	svcOnce.Do(func() {
		cfg := config.Default()
		if cfgPath != "" {
			if cfg, svcErr = config.Load(context.Background(), cfgPath); svcErr != nil {
				return
			}
		}
		var log logr.Logger
		if log, svcErr = newLogger(cfg.Debug); svcErr != nil {
			return
		}
		svcInst, svcErr = bridge.New(
			bridge.WithConfig(cfg),
			bridge.WithLogger(log),
			bridge.WithRegisterer(prometheus.DefaultRegisterer),
		)
	})
	return svcInst, svcErr
}

func newLogger(debug bool) (logr.Logger, error) {
	var zl *zap.Logger
	var err error
	if debug {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return logr.Discard(), err
	}
	return zapr.NewLogger(zl).WithName("tradebridge"), nil
}
