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

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/stsession/mpst/pkg/proto"
)

// Each format renders a loaded *proto.Tree to standard output. The
// registry mirrors the teacher's formatter map keyed by name.
type formatter struct {
	name string
	help string
	f    func(w io.Writer, t *proto.Tree)
}

var formatters = map[string]*formatter{}

func register(f *formatter) { formatters[f.name] = f }

func init() {
	register(&formatter{name: "raw", help: "deterministic Print dump (the golden-file format)", f: renderRaw})
	register(&formatter{name: "tree", help: "colourised tree view", f: renderTree})
}

func renderRaw(w io.Writer, t *proto.Tree) {
	t.Print(w)
}

// renderTree turns t's body into a pterm.LeveledList and renders it
// with pterm.DefaultTree, the same leveled-list-then-DefaultTree path
// gorgo's REPL uses to print s-expressions. Both printers are rebound to
// w via WithWriter so the formatter actually honours its io.Writer sink
// instead of always writing to pterm's own default output.
func renderTree(w io.Writer, t *proto.Tree) {
	info := pterm.Info.WithWriter(w)
	info.Println(fmt.Sprintf("%s (%s)", t.Info.Name, t.Info.Kind))
	if t.Root == nil {
		info.Println("empty protocol")
		return
	}
	ll := pterm.LeveledList{}
	ll = leveledNode(t.Root, ll, 0)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).WithWriter(w).Render()
}

func leveledNode(n *proto.Node, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: nodeLabel(n)})
	for _, c := range n.Children {
		ll = leveledNode(c, ll, level+1)
	}
	return ll
}

func nodeLabel(n *proto.Node) string {
	label := n.Kind.String()
	if n.Marked {
		label = pterm.Error.Sprint(label)
	}
	return label
}

func exitIfError(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
