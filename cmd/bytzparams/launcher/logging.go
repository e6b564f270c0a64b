package launcher

import (
	"fmt"
	"io"
	"time"

	"github.com/evalphobia/logrus_sentry"
	"github.com/sirupsen/logrus"
)

// verbosityLevel maps the 0 (fatal) .. 5 (trace) verbosity scale onto logrus
// levels.
func verbosityLevel(v int) (logrus.Level, error) {
	if v < 0 || v > 5 {
		return 0, fmt.Errorf("log verbosity %d out of range 0..5", v)
	}
	return logrus.Level(v + int(logrus.FatalLevel)), nil
}

// newLogger builds the process logger from cfg. Errors and worse are also
// reported to Sentry when a DSN is configured.
func newLogger(cfg LoggingConfig, out io.Writer) (*logrus.Logger, error) {
	lvl, err := verbosityLevel(cfg.Verbosity)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)

	switch cfg.Format {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{
			ForceColors:   cfg.Color,
			DisableColors: !cfg.Color,
			FullTimestamp: true,
		})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q (valid: text, json)", cfg.Format)
	}

	if cfg.SentryDSN != "" {
		hook, err := logrus_sentry.NewSentryHook(cfg.SentryDSN, []logrus.Level{
			logrus.PanicLevel,
			logrus.FatalLevel,
			logrus.ErrorLevel,
		})
		if err != nil {
			return nil, fmt.Errorf("sentry hook: %w", err)
		}
		hook.Timeout = 2 * time.Second
		logger.AddHook(hook)
	}
	return logger, nil
}

// setupLogging installs the configured logger as the standard logger, which
// is what the chaincfg packages log through.
func setupLogging(cfg LoggingConfig, out io.Writer) error {
	logger, err := newLogger(cfg, out)
	if err != nil {
		return err
	}
	std := logrus.StandardLogger()
	std.SetOutput(logger.Out)
	std.SetLevel(logger.GetLevel())
	std.SetFormatter(logger.Formatter)
	std.ReplaceHooks(logger.Hooks)
	return nil
}
