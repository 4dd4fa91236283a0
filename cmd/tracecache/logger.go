// logger.go: console Logger implementation for the CLI
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package main

import "log"

// consoleLogger implements tracecache.Logger for console output.
type consoleLogger struct {
	logger *log.Logger
}

func newConsoleLogger() *consoleLogger {
	return &consoleLogger{
		logger: log.New(log.Writer(), "[tracecache] ", log.LstdFlags),
	}
}

func (l *consoleLogger) Debug(msg string, keyvals ...interface{}) {
	l.logger.Printf("DEBUG %s %v", msg, keyvals)
}

func (l *consoleLogger) Info(msg string, keyvals ...interface{}) {
	l.logger.Printf("INFO %s %v", msg, keyvals)
}

func (l *consoleLogger) Warn(msg string, keyvals ...interface{}) {
	l.logger.Printf("WARN %s %v", msg, keyvals)
}

func (l *consoleLogger) Error(msg string, keyvals ...interface{}) {
	l.logger.Printf("ERROR %s %v", msg, keyvals)
}
