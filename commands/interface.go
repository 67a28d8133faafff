// Copyright 2025 Naren Yellavula
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

package commands

import (
	"strings"

	"github.com/cybrota/avlviz/avl"
)

// Handler runs one family of verbs against a tree.
type Handler interface {
	Verbs() []string // first entry is the canonical name
	SupportsVerb(verb string) bool
	Priority() int // Lower number = higher priority
	Run(tree *avl.Tree, args []string) (Outcome, error)
}

// Command is a parsed input line.
type Command struct {
	Parts    []string
	Verb     string
	Args     []string
	FullName string
}

// NewCommand creates a new Command from already split parts. The verb is
// matched case-insensitively.
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts:    parts,
		Verb:     strings.ToLower(parts[0]),
		Args:     parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// Outcome is what a handler reports back to the shell.
type Outcome struct {
	Verb    string
	Keys    []int
	Lines   []string
	Mutated bool
}

// Message joins the outcome lines for single-line displays.
func (o Outcome) Message() string {
	return strings.Join(o.Lines, "\n")
}

// verbSet is embedded by handlers to answer Verbs and SupportsVerb.
type verbSet []string

func (v verbSet) Verbs() []string { return v }

func (v verbSet) SupportsVerb(verb string) bool {
	for _, name := range v {
		if name == verb {
			return true
		}
	}
	return false
}
