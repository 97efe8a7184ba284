// Package logger provides a structured logging interface for the image mirror.
//
// It wraps the zerolog library and offers:
//   - Leveled logging (Debug, Info, Warn, Error)
//   - Structured fields via WithField, WithFields and the *WithFields methods
//   - Pretty console output on stderr, optionally mirrored to a log file
//   - A global logger for the command line entry point
//   - TestLogger and a nop logger for tests
//
// Basic Usage:
//
//	if err := logger.Initialize(&config.LoggingConfig{Level: "info", File: "mirror.log"}); err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	log := logger.GetLogger()
//	log.WithField("page", pageURL).Info("Scanning page")
//	log.WithError(err).Error("Failed to create target directory")
//
// Components usually receive a Logger and attach their own fields:
//
//	log := logger.GetLogger().WithField("run_id", runID)
//	log.DebugWithFields("Image saved", map[string]interface{}{
//	    "file": "logo.png",
//	    "size": 1024,
//	})
package logger
