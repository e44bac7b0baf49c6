// Команда reconcile выполняет один проход сверки счетчиков профилей и завершается.
// Код выхода отличен от нуля, если проход не завершился.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsdevblog/anticrisis/internal/app"
	"github.com/fsdevblog/anticrisis/internal/config"
	"github.com/fsdevblog/anticrisis/internal/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	conf := config.MustLoadConfig()
	l := logger.New(os.Stdout, conf.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	report, err := app.New(conf, l).Reconcile(ctx)
	stop()

	if err != nil {
		entry := l.WithError(err)
		if report != nil {
			entry = entry.WithFields(logrus.Fields{"profiles": report.Profiles, "drifts": len(report.Drifts)})
		}
		entry.Error("reconcile failed")
		os.Exit(1)
	}
	l.WithFields(logrus.Fields{
		"profiles": report.Profiles,
		"drifts":   len(report.Drifts),
	}).Info("reconcile done")
}
