package trace

import (
	"github.com/sirupsen/logrus"
)

// DbgPrint logs a debug-level message through the package logger. Verbosity
// is controlled by the caller raising logrus' level, not by this function.
func DbgPrint(format string, args ...any) {
	logrus.Debugf(format, args...)
}
