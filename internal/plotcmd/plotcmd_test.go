// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plotcmd

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/plot"

	"github.com/osbench/benchplot/summary"
)

func testCommand(calls *[]string) *Command {
	return &Command{
		Name: "plottest",
		Plot: func(path string) (*plot.Plot, *summary.Table, error) {
			*calls = append(*calls, path)
			if strings.HasSuffix(path, "bad.csv") {
				return nil, nil, errors.New("bad input")
			}
			tab := &summary.Table{Header: []string{"k", "v"}}
			tab.AddRow("a", "1")
			return plot.New(), tab, nil
		},
	}
}

func TestRun(t *testing.T) {
	var calls []string
	c := testCommand(&calls)
	input := filepath.Join(t.TempDir(), "run.csv")

	var stdout, stderr bytes.Buffer
	if err := c.Run(&stdout, &stderr, []string{input}); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 1 || calls[0] != input {
		t.Errorf("Plot called with %q, want [%q]", calls, input)
	}
	for _, ext := range []string{".pdf", ".png"} {
		if _, err := os.Stat(strings.TrimSuffix(input, ".csv") + ext); err != nil {
			t.Errorf("missing output: %v", err)
		}
	}
	if stdout.Len() != 0 || stderr.Len() != 0 {
		t.Errorf("unexpected output:\nstdout: %s\nstderr: %s", &stdout, &stderr)
	}

	stdout.Reset()
	if err := c.Run(&stdout, &stderr, []string{"-summary", "csv", input}); err != nil {
		t.Fatal(err)
	}
	if got, want := stdout.String(), "k,v\na,1\n"; got != want {
		t.Errorf("summary %q, want %q", got, want)
	}
}

func TestRunUsage(t *testing.T) {
	var calls []string
	c := testCommand(&calls)
	for _, args := range [][]string{
		{},
		{"a.csv", "b.csv"},
		{"-summary", "xml", "a.csv"},
		{"-nosuchflag", "a.csv"},
	} {
		var stdout, stderr bytes.Buffer
		err := c.Run(&stdout, &stderr, args)
		if !errors.Is(err, ErrUsage) {
			t.Errorf("%q: want ErrUsage, got %v", args, err)
		}
		if !strings.Contains(stderr.String(), "usage: plottest [options] [--] file.csv") {
			t.Errorf("%q: stderr lacks usage:\n%s", args, &stderr)
		}
	}
	if len(calls) != 0 {
		t.Errorf("Plot called for invalid arguments: %q", calls)
	}
}

func TestRunHelp(t *testing.T) {
	var calls []string
	c := testCommand(&calls)
	for _, arg := range []string{"-h", "-help"} {
		var stdout, stderr bytes.Buffer
		if err := c.Run(&stdout, &stderr, []string{arg}); !errors.Is(err, flag.ErrHelp) {
			t.Errorf("%s: want flag.ErrHelp, got %v", arg, err)
		}
		if !strings.Contains(stderr.String(), "-summary format") {
			t.Errorf("%s: stderr lacks flag list:\n%s", arg, &stderr)
		}
	}
	if len(calls) != 0 {
		t.Errorf("Plot called for help: %q", calls)
	}
}

func TestRunDashFile(t *testing.T) {
	var calls []string
	c := testCommand(&calls)
	var stdout, stderr bytes.Buffer
	if err := c.Run(&stdout, &stderr, []string{"--", "-bad.csv"}); err == nil || err.Error() != "bad input" {
		t.Errorf("want plot error, got %v", err)
	}
	if len(calls) != 1 || calls[0] != "-bad.csv" {
		t.Errorf("Plot called with %q, want [\"-bad.csv\"]", calls)
	}
}

func TestRunErrors(t *testing.T) {
	var calls []string
	c := testCommand(&calls)
	var stdout, stderr bytes.Buffer

	err := c.Run(&stdout, &stderr, []string{"bad.csv"})
	if err == nil || err.Error() != "bad input" {
		t.Errorf("want plot error, got %v", err)
	}

	unwritable := filepath.Join(t.TempDir(), "missing-dir", "x.csv")
	if err := c.Run(&stdout, &stderr, []string{unwritable}); err == nil {
		t.Errorf("want save error, got nil")
	}
}

func TestMainExit(t *testing.T) {
	defer func(args []string) { os.Args = args }(os.Args)
	defer func() { exit = os.Exit }()
	defer func(f *os.File) { os.Stderr = f }(os.Stderr)

	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer devnull.Close()
	os.Stderr = devnull

	for _, test := range []struct {
		args []string
		want int
	}{
		{nil, 2},
		{[]string{"-summary", "xml", "a.csv"}, 2},
		{[]string{"-h"}, 0},
	} {
		code := -1
		exit = func(c int) { code = c }
		os.Args = append([]string{"plottest"}, test.args...)
		var calls []string
		testCommand(&calls).Main()
		if code != test.want {
			t.Errorf("%q: exit code %d, want %d", test.args, code, test.want)
		}
	}
}
