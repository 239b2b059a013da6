package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/avstrong/hotelbooking/internal/config"
	"github.com/avstrong/hotelbooking/internal/idgen/random"
	"github.com/avstrong/hotelbooking/internal/logger"
	"github.com/avstrong/hotelbooking/internal/migration"
	"github.com/avstrong/hotelbooking/internal/notify"
	"github.com/avstrong/hotelbooking/internal/reservation"
	"github.com/avstrong/hotelbooking/internal/transport/web"
)

func Run(conf *config.Config, l *logger.Logger) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	system := reservation.New(l, random.New(), notify.NewLogNotifier(l))

	if conf.SeedData {
		migration.Up(l, system)

		l.LogInfo("Seed data has been applied")
	}

	webConf := web.Conf{
		L:                 l,
		Host:              conf.HTTPHost,
		Port:              conf.HTTPPort,
		ReadHeaderTimeout: conf.HTTPReadHeaderTimeout,
		LivenessEndpoint:  conf.LivenessEndpoint,
	}

	srv := web.New(ctx, webConf, system)

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), conf.HTTPShutdownTimeout)
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v...", webConf.Host, webConf.Port)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		cancel()

		return fmt.Errorf("run http server: %w", err)
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
