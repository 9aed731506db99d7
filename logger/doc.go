// Package logger provides structured logging using zerolog.
//
// It supports multiple output formats (JSON, console), log level
// configuration, and component-scoped loggers with structured fields.
//
// # Configuration
//
//	logger:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("pacer")
//	log.Info("emitted", logger.Fields(logger.FieldPacerID, id))
package logger
