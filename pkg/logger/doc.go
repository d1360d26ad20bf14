// Package logger builds *slog.Logger values from functional options and offers
// helper constructors for commonly used attributes.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "utilkit"),
//	    logger.WithOutput(os.Stderr),
//	)
//	logger.SetAsDefault(log)
//
//	log.Error("condition not met",
//	    logger.Component("poll"),
//	    logger.Timeout(timeout),
//	    logger.Error(err),
//	)
//
// Config carries the same settings as environment variables (APP_ENV,
// SERVICE_NAME, LOG_LEVEL, LOG_FORMAT) and FromConfig turns it into options,
// rejecting unknown levels and formats with ErrInvalidLevel or ErrInvalidFormat.
//
// # Error Handling
//
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally:
//
//	log.Info("done", logger.Error(err))
package logger
