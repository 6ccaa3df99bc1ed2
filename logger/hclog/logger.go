// Package hclog adapts a go-hclog logger to logger.Logger.
//
// The first argument of every call is used as the message and the rest are
// passed on as key/value pairs.
package hclog

import (
	"fmt"

	gohclog "github.com/hashicorp/go-hclog"

	"github.com/pwnedgod/uuidcodec/logger"
)

type hclogLogger struct {
	log gohclog.Logger
}

func NewLogger(log gohclog.Logger) logger.Logger {
	if log == nil {
		log = gohclog.NewNullLogger()
	}
	return &hclogLogger{log: log}
}

func (l hclogLogger) Info(args ...any) {
	msg, kv := split(args)
	l.log.Info(msg, kv...)
}

func (l hclogLogger) Debug(args ...any) {
	msg, kv := split(args)
	l.log.Debug(msg, kv...)
}

func (l hclogLogger) Error(args ...any) {
	msg, kv := split(args)
	l.log.Error(msg, kv...)
}

func split(args []any) (string, []any) {
	if len(args) == 0 {
		return "", nil
	}
	msg, ok := args[0].(string)
	if !ok {
		msg = fmt.Sprint(args[0])
	}
	return msg, args[1:]
}
