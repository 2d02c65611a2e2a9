// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plotcmd is the command-line driver shared by the plotting
// commands: it parses arguments, saves the chart next to the input
// file and optionally prints a summary of the plotted data.
package plotcmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"

	"github.com/osbench/benchplot/chart"
	"github.com/osbench/benchplot/summary"
)

// ErrUsage is returned by Run for invalid arguments, after printing
// the usage message.
var ErrUsage = errors.New("usage error")

var exit = os.Exit // replaced during testing

// A Command is one plotting command.
type Command struct {
	// Name is the command name, used in messages.
	Name string

	// Plot reads the file at path and returns its chart and a
	// summary of the plotted data.
	Plot func(path string) (*plot.Plot, *summary.Table, error)
}

// Main runs c with the process arguments and exits: 0 on success or
// after printing help for -h, 2 on a usage error and 1 on any other
// error.
func (c *Command) Main() {
	log.SetPrefix(c.Name + ": ")
	log.SetFlags(0)
	err := c.Run(os.Stdout, os.Stderr, os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		exit(0)
		return
	}
	if errors.Is(err, ErrUsage) {
		exit(2)
		return
	}
	if err != nil {
		log.Fatal(err)
	}
}

// Run runs c with the given arguments. It writes the chart to the
// input file's name with its extension replaced by each of
// chart.Formats. The summary, if requested, goes to stdout; usage
// messages go to stderr. Run returns flag.ErrHelp if help was
// requested, and ErrUsage for other invalid arguments. A file name
// starting with "-" must follow "--".
func (c *Command) Run(stdout, stderr io.Writer, args []string) error {
	fs := flag.NewFlagSet(c.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("summary", "", "also print the plotted data to stdout in `format`: text, csv or html")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [options] [--] file.csv\n", c.Name)
		fmt.Fprintf(stderr, "options:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); errors.Is(err, flag.ErrHelp) {
		return err
	} else if err != nil {
		return ErrUsage
	}
	if fs.NArg() != 1 || !validFormat(*format) {
		fs.Usage()
		return ErrUsage
	}
	path := fs.Arg(0)

	p, tab, err := c.Plot(path)
	if err != nil {
		return err
	}
	if err := chart.Save(p, chart.OutputPrefix(path)); err != nil {
		return err
	}
	if *format == "" || tab == nil {
		return nil
	}
	return summary.Format(stdout, []*summary.Table{tab}, *format)
}

func validFormat(f string) bool {
	if f == "" {
		return true
	}
	for _, s := range summary.Formats {
		if f == s {
			return true
		}
	}
	return false
}

// Title returns the summary title for the input file at path.
func Title(path string) string {
	return filepath.Base(path)
}
