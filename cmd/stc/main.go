// Copyright 2015 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Program stc loads protocol trees by descriptor and either prints one
// or checks whether two of them are async-equivalent.
//
// Usage: stc [--format FORMAT] SOURCE
//        stc --against SOURCE SOURCE
//
// SOURCE names a descriptor the Loader resolves to a protocol tree.
// FORMAT, which defaults to "raw", selects how a single SOURCE is
// rendered. Use "stc --help" for the list of known descriptors and
// formats.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pborman/getopt"
	"github.com/npillmayer/schuko/tracing"

	"github.com/stsession/mpst/internal/xtrace"
	"github.com/stsession/mpst/pkg/compare"
	"github.com/stsession/mpst/pkg/proto"
)

func tracer() tracing.Trace { return xtrace.Select("stc") }

func main() {
	var format string
	var against string
	var help bool

	getopt.StringVarLong(&format, "format", 0, "output format: raw, tree", "FORMAT")
	getopt.StringVarLong(&against, "against", 0, "compare SOURCE against this second descriptor instead of printing it", "SOURCE")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("SOURCE")
	getopt.Parse()

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, "\nKnown descriptors: %s\n\nFormats:\n", knownDescriptors())
		names := make([]string, 0, len(formatters))
		for n := range formatters {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(os.Stderr, "    %s - %s\n", n, formatters[n].help)
		}
		os.Exit(0)
	}

	args := getopt.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "stc: exactly one SOURCE is required")
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	var loader Loader = demoLoader{}
	t, err := loader.Load(args[0])
	exitIfError(err)

	if against != "" {
		o, err := loader.Load(against)
		exitIfError(err)
		runCompare(t, o)
		return
	}

	if format == "" {
		format = "raw"
	}
	fm, ok := formatters[format]
	if !ok {
		fmt.Fprintf(os.Stderr, "stc: %q is not a known format; choices are: %s\n", format, strings.Join(formatNames(), ", "))
		os.Exit(1)
	}
	fm.f(os.Stdout, t)
}

func formatNames() []string {
	names := make([]string, 0, len(formatters))
	for n := range formatters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func runCompare(g, l *proto.Tree) {
	equal := compare.Equal(g, l)
	if equal {
		tracer().Infof("compare: %s and %s are async-equivalent", g.Info.Name, l.Info.Name)
		fmt.Fprintf(os.Stdout, "equivalent: %s (%s) ~ %s (%s)\n", g.Info.Name, g.Info.Kind, l.Info.Name, l.Info.Kind)
		return
	}
	tracer().Infof("compare: %s and %s are NOT async-equivalent", g.Info.Name, l.Info.Name)
	fmt.Fprintf(os.Stdout, "NOT equivalent: %s (%s) vs %s (%s)\n", g.Info.Name, g.Info.Kind, l.Info.Name, l.Info.Kind)
	if g.Root != nil {
		fmt.Fprintln(os.Stdout, "-- left --")
		g.Print(os.Stdout)
	}
	if l.Root != nil {
		fmt.Fprintln(os.Stdout, "-- right --")
		l.Print(os.Stdout)
	}
	os.Exit(1)
}
