package envconf

import (
	"github.com/signalfx/golib/log"
)

// LoggingHooks returns Hooks that send every failure to logger as a key/value record
func LoggingHooks(logger log.Logger) Hooks {
	return Hooks{
		OnError: func(msg string, envKey string, err error) {
			logger.Log(log.Msg, msg, "key", envKey, log.Err, err)
		},
	}
}
