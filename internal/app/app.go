package app

import (
	"github.com/nguyentranbao-ct/product-dashboard/internal/config"
	"github.com/nguyentranbao-ct/product-dashboard/internal/repo/catalog"
	"github.com/nguyentranbao-ct/product-dashboard/internal/server"
	"github.com/nguyentranbao-ct/product-dashboard/internal/usecase"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/logger"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func Invoke(funcs ...any) *fx.App {
	log := logger.MustNamed("app")
	conf := config.MustLoad()
	if err := logger.SetLevel(conf.Log.Level); err != nil {
		log.Warnw("keeping default log level", "error", err)
	}
	log.Debugw("config loaded", zap.Reflect("config", conf))
	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{
				Logger: log.Desugar(),
			}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Provide(
			catalog.NewClient,
			usecase.NewDashboardUsecase,
			server.NewHandler,
		),
		fx.Supply(conf),
		fx.Invoke(initTracing),
		fx.Invoke(funcs...),
	)
}
