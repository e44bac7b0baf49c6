package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New инициализирует логгер. level перекрывает уровень по умолчанию, если разбирается logrus.
func New(output io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)
	l.SetFormatter(new(logrus.JSONFormatter))
	l.SetLevel(logrus.InfoLevel)

	// перезаписываем ряд настроек для окружений отличных от продакшн
	if os.Getenv("GIN_MODE") != "release" {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(new(logrus.TextFormatter))
	}

	if level != "" {
		if parsed, err := logrus.ParseLevel(level); err == nil {
			l.SetLevel(parsed)
		} else {
			l.WithError(err).Warnf("unknown log level `%s`, keeping %s", level, l.GetLevel())
		}
	}

	return l
}
