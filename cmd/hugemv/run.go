package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/antgroup/hugemv/modules/actuator"
	"github.com/antgroup/hugemv/modules/manifest"
	"github.com/antgroup/hugemv/modules/pattern/from"
	"github.com/antgroup/hugemv/modules/pattern/to"
	"github.com/antgroup/hugemv/modules/policy"
	"github.com/antgroup/hugemv/modules/routeconfig"
	"github.com/antgroup/hugemv/modules/strengthen"
	"github.com/antgroup/hugemv/modules/transform"
	"github.com/antgroup/hugemv/pkg/command"
	"github.com/sirupsen/logrus"
)

// applyOverrides applies Globals.Values ("key=value", from --config) on top
// of a routeconfig-derived policy/depth, before CLI flags get their turn.
func applyOverrides(values []string, p *policy.Policy, depth *int) error {
	for _, kv := range values {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("malformed --config override %q, want key=value", kv)
		}
		switch key {
		case "overwrite":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("--config overwrite=%q: %w", value, err)
			}
			p.Overwrite = b
		case "create_parents":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return fmt.Errorf("--config create_parents=%q: %w", value, err)
			}
			p.CreateParents = b
		case "depth":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("--config depth=%q: %w", value, err)
			}
			*depth = n
		default:
			return fmt.Errorf("unknown routeconfig override key %q", key)
		}
	}
	return nil
}

func operationKind(a *App) (manifest.Kind, error) {
	count := 0
	if a.Copy {
		count++
	}
	if a.HardLink {
		count++
	}
	if a.SoftLink {
		count++
	}
	if count > 1 {
		return 0, fmt.Errorf("--copy, --hard-link, and --symlink are mutually exclusive")
	}
	switch {
	case a.Copy:
		return manifest.CopyKind, nil
	case a.HardLink:
		return manifest.HardLinkKind, nil
	case a.SoftLink:
		return manifest.SoftLinkKind, nil
	default:
		return manifest.MoveKind, nil
	}
}

func run(a *App, g *command.Globals) error {
	kind, err := operationKind(a)
	if err != nil {
		return err
	}

	dir := g.CWD
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = wd
	} else {
		dir = strengthen.ExpandPath(dir)
	}

	defaults, err := routeconfig.Load(dir)
	if err != nil {
		return err
	}
	p := defaults.Policy()
	depth := defaults.WalkDepth()
	if err := applyOverrides(g.Values, &p, &depth); err != nil {
		return err
	}
	if a.Overwrite {
		p.Overwrite = true
	}
	if a.Parents {
		p.CreateParents = true
	}
	if a.Depth != 0 {
		depth = a.Depth
	}

	fromPat, err := from.New(a.From)
	if err != nil {
		return fmt.Errorf("parse from-pattern %q: %w", a.From, err)
	}
	toPat, err := to.New(a.To)
	if err != nil {
		return fmt.Errorf("parse to-pattern %q: %w", a.To, err)
	}

	tr := transform.New(p, fromPat, toPat, kind)
	plan, err := tr.Read(dir, depth)
	if err != nil {
		return err
	}

	routes := plan.Manifest.Routes()
	if len(routes) == 0 {
		logrus.Debug("no routes matched")
		return nil
	}
	for _, route := range routes {
		g.DbgPrint("%s -> %s", route.Source, route.Destination)
	}
	if a.DryRun {
		for _, route := range routes {
			fmt.Printf("%s -> %s\n", route.Source, route.Destination)
		}
		return nil
	}
	return actuator.New().Write(plan)
}
