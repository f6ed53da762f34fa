package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New создает настроенный логгер приложения
func New(logLevel, logFormat string) *logrus.Logger {
	log := logrus.New()

	switch logFormat {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.SetOutput(os.Stdout)

	// Уровень логирования
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel // Уровень по умолчанию, если передан некорректный
	}
	log.SetLevel(level)
	return log
}

// NewNop создает логгер, отбрасывающий весь вывод. Используется в тестах.
func NewNop() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
