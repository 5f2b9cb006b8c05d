// Package logger builds slog loggers and the attribute helpers used across
// the module.
//
// New returns a *slog.Logger configured with functional options: format,
// level, output, static attributes, and ContextExtractor callbacks that pull
// attributes out of the context of each record.
//
//	log := logger.New(
//		logger.WithEnvironment(os.Getenv("APP_ENV"), "billing"),
//		logger.WithContextExtractors(logger.ModelExtractor()),
//	)
//
//	factory := validation.New(validation.WithLogger(log))
//
// The validation engine stores the model being derived in the context of
// every storage lookup (ContextWithModel), so with ModelExtractor installed a
// warning raised deep inside a schema provider still names the model that
// triggered it. Attributes passed explicitly to a log call take precedence
// over extracted ones with the same key.
//
// Attribute helpers (Model, Property, Marker, RuleKind, Table, Error, ...)
// keep key names consistent. Error and Errors return an empty attribute for
// nil errors, which slog drops, so callers need no nil check.
//
// Discard returns a logger that drops everything; it is the default wherever
// a logger is optional.
package logger
