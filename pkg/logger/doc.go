// Package logger builds the slog loggers used across PureText.
//
// New returns a *slog.Logger configured with Option values: output format
// (text or json), minimum level, static attributes and ContextExtractor
// callbacks that copy request-scoped values such as the request id from
// context.Context into every record.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Env, "puretextd"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "converted clipboard",
//	    logger.Mode(string(mode)),
//	    logger.InputLen(len(in)),
//	)
//
// Attribute helpers (Error, Mode, Component, ...) keep key names consistent.
// Error and Errors return an empty attribute for nil errors, so they can be
// passed unconditionally.
package logger
