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

package main

import (
	"fmt"
	"time"

	"github.com/cybrota/avlviz/commands"
)

// JournalEntry is one line of the session log shown next to the tree.
type JournalEntry struct {
	At      time.Time
	Message string
	Failed  bool
}

// Journal keeps the most recent entries, newest last.
type Journal struct {
	entries    []JournalEntry
	maxEntries int
}

func NewJournal(maxEntries int) *Journal {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &Journal{maxEntries: maxEntries}
}

func (j *Journal) add(e JournalEntry) {
	j.entries = append(j.entries, e)
	if over := len(j.entries) - j.maxEntries; over > 0 {
		j.entries = append(j.entries[:0], j.entries[over:]...)
	}
}

// Record adds every line of a command outcome.
func (j *Journal) Record(at time.Time, outcome commands.Outcome) {
	for _, line := range outcome.Lines {
		j.add(JournalEntry{At: at, Message: line})
	}
}

func (j *Journal) RecordError(at time.Time, err error) {
	j.add(JournalEntry{At: at, Message: err.Error(), Failed: true})
}

func (j *Journal) Len() int { return len(j.entries) }

// Lines renders the entries newest first, prefixed with the time of day.
func (j *Journal) Lines() []string {
	lines := make([]string, 0, len(j.entries))
	for i := len(j.entries) - 1; i >= 0; i-- {
		e := j.entries[i]
		mark := " "
		if e.Failed {
			mark = "!"
		}
		lines = append(lines, fmt.Sprintf("%s %s %s", FormatTime(e.At), mark, e.Message))
	}
	return lines
}
