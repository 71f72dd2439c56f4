// Package logger builds *slog.Logger values with functional options and
// provides a few attribute constructors so log keys stay consistent across
// the inputkit packages.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithTextFormatter(),
//	    logger.WithAttr(logger.Component("dateutil")),
//	)
//
//	cal := dateutil.New(dateutil.WithLogger(log))
//
// The defaults are JSON output on stdout at INFO level. Config can be loaded
// from LOG_LEVEL and LOG_FORMAT through pkg/config:
//
//	cfg, err := logger.LoadConfig()
//	if err != nil {
//	    return err
//	}
//	log := logger.NewFromConfig(cfg)
package logger
