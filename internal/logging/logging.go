package logging

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/eliziario/scanbridge/internal/config"
)

// NewLogger builds the shared logger. Output rotates under the config
// directory; interactive binaries pass toStderr to also mirror warnings to
// the terminal.
func NewLogger(name string, toStderr bool) *logrus.Logger {
	logger := logrus.New()

	logDir := "/tmp"
	if configDir, err := config.ConfigDir(); err == nil {
		dir := filepath.Join(configDir, "logs")
		if err := os.MkdirAll(dir, 0755); err == nil {
			logDir = dir
		}
	}

	logger.SetOutput(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, name+".log"),
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	})

	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	level := logrus.InfoLevel
	if env := os.Getenv("SCANBRIDGE_LOG_LEVEL"); env != "" {
		if parsed, err := logrus.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	logger.SetLevel(level)

	if toStderr {
		logger.AddHook(&stderrHook{})
	}

	return logger
}

// stderrHook mirrors warning-and-above entries to stderr so interactive
// users see failures without tailing the log file.
type stderrHook struct{}

func (h *stderrHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel, logrus.WarnLevel}
}

func (h *stderrHook) Fire(entry *logrus.Entry) error {
	line, err := entry.String()
	if err != nil {
		return err
	}
	_, err = os.Stderr.WriteString(line)
	return err
}
