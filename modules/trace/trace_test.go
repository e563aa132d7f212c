package trace

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestDebug(t *testing.T) {
	logrus.SetLevel(logrus.DebugLevel)
	DbgPrint("jack")
}
