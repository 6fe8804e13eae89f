// Package logging holds the logger shared by the library packages. Output is
// discarded until an application configures it.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func init() {
	Log.SetOutput(io.Discard)
}
