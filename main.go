package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/peterbourgon/ff"
	"github.com/pkg/profile"

	"github.com/a-bouts/sphere-triangle/input"
	"github.com/a-bouts/sphere-triangle/latlon"
	"github.com/a-bouts/sphere-triangle/report"
	"github.com/a-bouts/sphere-triangle/triangle"
)

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("sphere-triangle", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var fields [6]*string
	for i, name := range input.Names {
		fields[i] = fs.String(name, input.Defaults[i], "vertex "+name[3:]+" "+name[:3]+" in degrees")
	}
	var (
		arc        = fs.String("arc", "cosine", "arc measure: cosine, clamped or haversine")
		format     = fs.String("format", "text", "output format: text, json or yaml")
		strict     = fs.Bool("strict", false, "reject latitudes outside [-90, 90] and longitudes outside [-180, 360]")
		debug      = fs.Bool("debug", false, "debug logs")
		logFormat  = fs.String("log-format", "text", "log format: text or json")
		cpuprofile = fs.String("cpuprofile", "", "write a cpu profile in this directory")
		_          = fs.String("config", "", "config file (key value per line)")
	)

	if err := ff.Parse(fs, args,
		ff.WithEnvVarNoPrefix(),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger, err := newLogger(stderr, *debug, *logFormat)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if *cpuprofile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*cpuprofile), profile.NoShutdownHook, profile.Quiet).Stop()
	}

	m, ok := latlon.Measurer(*arc)
	if !ok {
		logger.Errorf("Unknown arc measure '%s'", *arc)
		return 2
	}

	var values [6]string
	for i, f := range fields {
		values[i] = *f
	}
	vs, err := input.Parse(values, *strict)
	if err != nil {
		logger.WithError(err).Error("Invalid input")
		return 2
	}

	start := time.Now()

	res := triangle.Solver{Arc: m, Log: logger}.Solve(vs[0], vs[1], vs[2])

	logger.Debugf("Solve took %s", time.Since(start))
	if !res.Finite() {
		logger.Warn("Degenerate triangle, some measures are not finite")
	}

	if err := report.Write(stdout, *format, report.Report{Vertices: vs, Result: res}); err != nil {
		logger.WithError(err).Error("Cannot write report")
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
