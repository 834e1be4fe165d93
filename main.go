package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/peterbourgon/ff"
	"github.com/pkg/profile"

	"github.com/a-bouts/nav-geo/latlon"
)

type config struct {
	correctRadius bool
	debug         bool
	cpuprofile    bool
}

func parseFlags(args []string) (config, []string, error) {
	fs := flag.NewFlagSet("nav-geo", flag.ContinueOnError)
	var (
		correctRadius = fs.Bool("correct-radius", true, "use the Earth radius at the midpoint latitude for distances")
		debug         = fs.Bool("debug", false, "debug logs")
		cpuprofile    = fs.Bool("cpuprofile", false, "write a cpu profile in the working directory")
		_             = fs.String("config", "", "config file (optional)")
	)
	err := ff.Parse(fs, args,
		ff.WithEnvVarNoPrefix(),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser))
	if err != nil {
		return config{}, nil, err
	}

	return config{correctRadius: *correctRadius, debug: *debug, cpuprofile: *cpuprofile}, fs.Args(), nil
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, args, err := parseFlags(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := newLogger(stderr, cfg.debug)

	if len(args) != 18 {
		fmt.Fprint(stdout, usage)
		return 0
	}

	if cfg.cpuprofile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	}

	x, y, err := parsePlaces(args)
	if err != nil {
		log.WithError(err).Error("Cannot read places")
		return 1
	}
	log.withPlace("origin", x).Debug("Origin")
	log.withPlace("destination", y).Debug("Destination")

	n := latlon.New(latlon.WithCorrectRadius(cfg.correctRadius))
	log.Debugf("Correct radius %t", n.CorrectRadius())

	report(stdout, n, x, y)
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
