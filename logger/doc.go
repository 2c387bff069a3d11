// Package logger provides structured logging for swapkit adapters using
// zerolog.
//
// It supports JSON and console output formats, log level configuration, and
// component-scoped loggers with structured fields.
//
// # Usage
//
//	log := logger.NewDefault("swapkit").WithComponent("runner")
//	log.Info("batch complete", logger.Fields("items", 3))
package logger
