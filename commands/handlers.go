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
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/cybrota/avlviz/avl"
)

type insertHandler struct{ verbSet }

func (h *insertHandler) Priority() int { return 1 }

func (h *insertHandler) Run(tree *avl.Tree, args []string) (Outcome, error) {
	keys, err := ParseKeys(args)
	if err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{Keys: keys}
	for _, key := range keys {
		before := tree.Len()
		tree.Insert(key)
		if tree.Len() > before {
			outcome.Mutated = true
			outcome.Lines = append(outcome.Lines, fmt.Sprintf("Inserted: %d", key))
		} else {
			outcome.Lines = append(outcome.Lines,
				fmt.Sprintf("Key %d discarded by %s insertion policy", key, tree.Policy()))
		}
	}
	return outcome, nil
}

type deleteHandler struct{ verbSet }

func (h *deleteHandler) Priority() int { return 1 }

func (h *deleteHandler) Run(tree *avl.Tree, args []string) (Outcome, error) {
	keys, err := ParseKeys(args)
	if err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{Keys: keys}
	for _, key := range keys {
		before := tree.Len()
		tree.Delete(key)
		if tree.Len() < before {
			outcome.Mutated = true
			outcome.Lines = append(outcome.Lines, fmt.Sprintf("Deleted: %d", key))
		} else {
			outcome.Lines = append(outcome.Lines, fmt.Sprintf("Key %d not present", key))
		}
	}
	return outcome, nil
}

type searchHandler struct{ verbSet }

func (h *searchHandler) Priority() int { return 1 }

func (h *searchHandler) Run(tree *avl.Tree, args []string) (Outcome, error) {
	keys, err := ParseKeys(args)
	if err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{Keys: keys}
	for _, key := range keys {
		if tree.Search(key) {
			outcome.Lines = append(outcome.Lines, fmt.Sprintf("Key %d found in tree", key))
		} else {
			outcome.Lines = append(outcome.Lines, fmt.Sprintf("Key %d not found in tree", key))
		}
	}
	return outcome, nil
}

type keysHandler struct{ verbSet }

func (h *keysHandler) Priority() int { return 2 }

func (h *keysHandler) Run(tree *avl.Tree, _ []string) (Outcome, error) {
	keys := tree.Keys()
	if len(keys) == 0 {
		return Outcome{Lines: []string{"(empty)"}}, nil
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = strconv.Itoa(k)
	}
	return Outcome{Keys: keys, Lines: []string{strings.Join(parts, " ")}}, nil
}

// printHandler accepts an optional "balance" or "-b" argument to annotate
// each node with its height and balance factor.
type printHandler struct{ verbSet }

func (h *printHandler) Priority() int { return 2 }

func (h *printHandler) Run(tree *avl.Tree, args []string) (Outcome, error) {
	showBalance := false
	for _, arg := range args {
		switch arg {
		case "-b", "--balance", "balance":
			showBalance = true
		default:
			return Outcome{}, fmt.Errorf("unexpected argument %q", arg)
		}
	}

	var buf bytes.Buffer
	if err := tree.Print(&buf, showBalance); err != nil {
		return Outcome{}, err
	}
	return Outcome{Lines: strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")}, nil
}

type checkHandler struct{ verbSet }

func (h *checkHandler) Priority() int { return 3 }

func (h *checkHandler) Run(tree *avl.Tree, _ []string) (Outcome, error) {
	if err := tree.Verify(); err != nil {
		return Outcome{}, err
	}
	return Outcome{Lines: []string{
		fmt.Sprintf("ok: %d nodes, height %d", tree.Len(), tree.Height()),
	}}, nil
}

type statsHandler struct{ verbSet }

func (h *statsHandler) Priority() int { return 3 }

func (h *statsHandler) Run(tree *avl.Tree, _ []string) (Outcome, error) {
	line := fmt.Sprintf("nodes=%d height=%d policy=%s revision=%d",
		tree.Len(), tree.Height(), tree.Policy(), tree.Revision())
	if root := tree.Root(); root != nil {
		line += fmt.Sprintf(" root=%d", root.Key())
	}
	return Outcome{Lines: []string{line}}, nil
}

type clearHandler struct{ verbSet }

func (h *clearHandler) Priority() int { return 3 }

func (h *clearHandler) Run(tree *avl.Tree, _ []string) (Outcome, error) {
	n := tree.Len()
	tree.Clear()
	return Outcome{Mutated: n > 0, Lines: []string{fmt.Sprintf("Cleared %d nodes", n)}}, nil
}
