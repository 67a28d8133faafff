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
	"fmt"
	"log"
	"sort"

	"github.com/cybrota/avlviz/avl"
	"github.com/mattn/go-shellwords"
)

// Manager dispatches command lines to the registered handlers.
type Manager struct {
	handlers []Handler
}

// NewManager creates a manager with every built-in handler registered.
func NewManager() *Manager {
	manager := &Manager{}

	manager.RegisterHandler(&insertHandler{verbSet{"insert", "add", "i"}})
	manager.RegisterHandler(&deleteHandler{verbSet{"delete", "del", "rm", "d"}})
	manager.RegisterHandler(&searchHandler{verbSet{"search", "find", "s"}})
	manager.RegisterHandler(&keysHandler{verbSet{"keys", "ls"}})
	manager.RegisterHandler(&printHandler{verbSet{"print", "p"}})
	manager.RegisterHandler(&checkHandler{verbSet{"check", "verify"}})
	manager.RegisterHandler(&statsHandler{verbSet{"stats"}})
	manager.RegisterHandler(&clearHandler{verbSet{"clear", "reset"}})

	return manager
}

// RegisterHandler adds h, keeping handlers ordered by priority.
func (m *Manager) RegisterHandler(h Handler) {
	m.handlers = append(m.handlers, h)
	sort.SliceStable(m.handlers, func(i, j int) bool {
		return m.handlers[i].Priority() < m.handlers[j].Priority()
	})
}

// Verbs lists the canonical verb of each handler in priority order.
func (m *Manager) Verbs() []string {
	verbs := make([]string, 0, len(m.handlers))
	for _, h := range m.handlers {
		verbs = append(verbs, h.Verbs()[0])
	}
	return verbs
}

// Parse splits a line with shell quoting rules.
func Parse(line string) (*Command, error) {
	parts, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %w", line, err)
	}
	if len(parts) == 0 {
		return nil, ErrNoCommand
	}
	return NewCommand(parts), nil
}

// Execute parses line and runs it against tree.
func (m *Manager) Execute(tree *avl.Tree, line string) (Outcome, error) {
	cmd, err := Parse(line)
	if err != nil {
		return Outcome{}, err
	}
	return m.Run(tree, cmd)
}

// Run dispatches an already parsed command.
func (m *Manager) Run(tree *avl.Tree, cmd *Command) (Outcome, error) {
	if cmd.Verb == "" {
		return Outcome{}, ErrNoCommand
	}

	for _, h := range m.handlers {
		if !h.SupportsVerb(cmd.Verb) {
			continue
		}
		outcome, err := h.Run(tree, cmd.Args)
		if err != nil {
			return outcome, fmt.Errorf("%s: %w", h.Verbs()[0], err)
		}
		outcome.Verb = h.Verbs()[0]
		if outcome.Mutated {
			log.Printf("%s", outcome.Message())
		}
		return outcome, nil
	}

	return Outcome{}, fmt.Errorf("%w %q", ErrUnknownCommand, cmd.Verb)
}
