// Copyright ©️ Ant Group. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/antgroup/hugemv/pkg/command"
	"github.com/antgroup/hugemv/pkg/version"
)

type App struct {
	command.Globals

	From       string `arg:"" name:"from" help:"From-pattern matched against the working directory"`
	To         string `arg:"" name:"to" help:"To-pattern used to resolve each match's destination"`
	Copy       bool   `name:"copy" help:"Copy matched files instead of moving them"`
	HardLink   bool   `name:"hard-link" help:"Hard-link matched files instead of moving them"`
	SoftLink   bool   `name:"symlink" help:"Symlink matched files instead of moving them"`
	Overwrite  bool   `name:"overwrite" help:"Allow a route to replace an existing destination file"`
	Parents    bool   `name:"parents" help:"Create missing destination parent directories"`
	Depth      int    `name:"depth" help:"Limit how many path components below the from-pattern's literal prefix are walked (0 = configured default, unlimited if none)"`
	DryRun     bool   `name:"dry-run" short:"n" help:"Resolve and validate routes without touching the file system"`
}

func main() {
	var app App
	ctx := kong.Parse(&app,
		kong.Name("hugemv"),
		kong.Description("hugemv - mass rename, copy, and link files by pattern"),
		kong.UsageOnError(),
		kong.Vars{"version": version.GetVersionString()},
	)
	app.Globals.ConfigureLogging()
	if err := ctx.Run(&app.Globals); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *App) Run(g *command.Globals) error {
	return run(a, g)
}
