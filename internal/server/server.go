package server

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nguyentranbao-ct/product-dashboard/internal/config"
	"github.com/nguyentranbao-ct/product-dashboard/internal/repo/catalog"
	pkgmdw "github.com/nguyentranbao-ct/product-dashboard/internal/server/middleware"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/logger"
	"github.com/nguyentranbao-ct/product-dashboard/pkg/logger/logctx"
	"go.uber.org/fx"
)

// ErrorPrefix starts the body of every failed dashboard response.
const ErrorPrefix = "dashboard products error: "

// NewEcho builds the HTTP server with its middleware chain and routes.
func NewEcho(conf *config.Config, handler Controller) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = pkgmdw.ErrorHandler(logger.MustNamed("http"), ErrorPrefix)

	quiet := pkgmdw.SkipPaths("/health", "/metrics")
	logConfig := pkgmdw.LogRequestConfig{
		Logger:  logger.MustNamed("http"),
		Skipper: quiet,
		KeyAndValues: func(c echo.Context) []any {
			stats, ok := catalog.StatsFromContext(c.Request().Context())
			if !ok {
				return nil
			}
			return []any{"upstream_pages", stats.Pages, "upstream_items", stats.Items}
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.ContextValues())
	e.Use(pkgmdw.Tracing(quiet))
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logctx.Errorw(c.Request().Context(), "PANIC RECOVER", "error", err, "stack", string(stack))
			return err
		},
	}))
	if pattern := conf.Server.CORSOriginPattern; pattern != "" {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, err
		}
		e.Use(pkgmdw.CORS(re))
	}

	e.GET("/health", handler.Health)
	e.GET("/dashboard/products", pkgmdw.WrapHandler(handler.ListProducts))
	if conf.Server.PublicDir != "" {
		e.Static("/", conf.Server.PublicDir)
	}
	if conf.Server.PprofEnabled {
		pkgmdw.PprofWrap(e, "")
	}

	return e, nil
}

func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	handler Controller,
) error {
	e, err := NewEcho(conf, handler)
	if err != nil {
		return err
	}

	addr := conf.Server.Addr()
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logctx.Infow(ctx, "starting HTTP server", "addr", addr)
				if err := e.Start(addr); !errors.Is(err, http.ErrServerClosed) {
					logctx.Errorw(ctx, "HTTP server stopped", "error", err)
					_ = sd.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})

	return nil
}
