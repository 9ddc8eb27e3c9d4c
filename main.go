package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/compozed/stackdactyl/creator"
)

const (
	defaultStackFile = "./stackdactyl.yml"
	defaultLevel     = "INFO"

	usage = "usage: stackdactyl [flags] deploy|upgrade|restart|down|destroy|exec [command ...]"
)

func main() {
	stackFile := flag.String("stack", defaultStackFile, "location of the stack file")
	forcePull := flag.Bool("force-pull", false, "force re-download of the deployment repository")
	yes := flag.Bool("yes", false, "confirm destructive operations")
	flag.Parse()

	level := os.Getenv("STACKDACTYL_LOGLEVEL")
	if level == "" {
		level = defaultLevel
	}

	overrides := map[string]string{}
	if *forcePull {
		overrides["STACKDACTYL_FORCE_PULL"] = "true"
	}
	getenv := func(key string) string {
		if value, ok := overrides[key]; ok {
			return value
		}
		return os.Getenv(key)
	}

	var (
		c   creator.Creator
		err error
	)
	if _, statErr := os.Stat(*stackFile); statErr == nil {
		c, err = creator.Custom(level, *stackFile, getenv)
	} else {
		c, err = creator.Env(level, getenv)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := c.CreateLogger()
	out := c.CreateWriter()
	d := c.CreateDeployer()

	switch flag.Arg(0) {
	case "deploy":
		err = d.Deploy(out)
	case "upgrade":
		err = d.Upgrade(out)
	case "restart":
		err = d.Restart(out)
	case "down":
		err = d.Teardown(out, false)
	case "destroy":
		if !*yes {
			log.Fatal("destroy permanently deletes all data volumes; re-run with -yes to confirm")
		}
		err = d.Teardown(out, true)
	case "exec":
		var output []byte
		output, err = c.CreateCourier().Exec(c.CreateConfig().Project, flag.Args()[1:]...)
		fmt.Fprintf(out, "%s", output)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatal(err)
	}
}
