// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/antgroup/hugemv/pkg/version"
	"github.com/sirupsen/logrus"
)

type Globals struct {
	Verbose bool        `short:"V" name:"verbose" help:"Make the operation more talkative"`
	Version VersionFlag `short:"v" name:"version" help:"Show version number and quit"`
	Values  []string    `short:"X" name:"config" help:"Override a routeconfig default, format: <key>=<value>"`
	CWD     string      `name:"cwd" help:"Set the working directory the from-pattern is resolved against"`
}

// ConfigureLogging raises the package logger to debug level when Verbose is
// set; callers install this once after parsing flags.
func (g *Globals) ConfigureLogging() {
	if g.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

func (g *Globals) DbgPrint(format string, args ...any) {
	if !g.Verbose {
		return
	}
	logrus.Debugf(format, args...)
}

type VersionFlag bool

func (v VersionFlag) Decode(ctx *kong.DecodeContext) error { return nil }
func (v VersionFlag) IsBool() bool                         { return true }
func (v VersionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	fmt.Println(version.GetVersionString())
	app.Exit(0)
	return nil
}
