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
	"errors"
	"strings"
	"testing"

	"github.com/cybrota/avlviz/avl"
)

func TestManagerInsertSearchDelete(t *testing.T) {
	manager := NewManager()
	tree := avl.NewWithPolicy(avl.PolicyOrdered)

	outcome, err := manager.Execute(tree, "insert 30 20 10")
	if err != nil {
		t.Fatalf("insert: unexpected error: %v", err)
	}
	if !outcome.Mutated || outcome.Verb != "insert" {
		t.Errorf("insert outcome = %+v", outcome)
	}
	if got := outcome.Lines[0]; got != "Inserted: 30" {
		t.Errorf("first line = %q, want %q", got, "Inserted: 30")
	}
	if root := tree.Root().Key(); root != 20 {
		t.Errorf("root = %d, want 20", root)
	}

	outcome, err = manager.Execute(tree, "find 10 99")
	if err != nil {
		t.Fatalf("search: unexpected error: %v", err)
	}
	want := []string{"Key 10 found in tree", "Key 99 not found in tree"}
	if strings.Join(outcome.Lines, "|") != strings.Join(want, "|") {
		t.Errorf("search lines = %v, want %v", outcome.Lines, want)
	}
	if outcome.Mutated {
		t.Error("search must not report a mutation")
	}

	outcome, err = manager.Execute(tree, "DEL 20 999")
	if err != nil {
		t.Fatalf("delete: unexpected error: %v", err)
	}
	want = []string{"Deleted: 20", "Key 999 not present"}
	if strings.Join(outcome.Lines, "|") != strings.Join(want, "|") {
		t.Errorf("delete lines = %v, want %v", outcome.Lines, want)
	}
	if tree.Len() != 2 {
		t.Errorf("Len = %d, want 2", tree.Len())
	}
}

func TestInsertReportsDiscardedKeys(t *testing.T) {
	manager := NewManager()
	tree := avl.New()

	outcome, err := manager.Execute(tree, "i 10 20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := outcome.Lines[1]; got != "Key 20 discarded by literal insertion policy" {
		t.Errorf("line = %q", got)
	}
	if tree.Search(20) {
		t.Error("20 must not be stored under the literal policy")
	}
}

func TestInvalidKeyNeverReachesTree(t *testing.T) {
	manager := NewManager()
	tree := avl.New()
	tree.Insert(5)
	rev := tree.Revision()

	_, err := manager.Execute(tree, "insert 4 four")
	if !errors.Is(err, ErrInvalidKey) {
		t.Fatalf("err = %v, want ErrInvalidKey", err)
	}
	if tree.Revision() != rev || tree.Search(4) {
		t.Error("tree changed after rejected input")
	}
	if !strings.Contains(err.Error(), "please enter a valid integer") {
		t.Errorf("error text %q lacks the user message", err.Error())
	}
}

func TestManagerErrors(t *testing.T) {
	manager := NewManager()
	tree := avl.New()

	tests := []struct {
		line string
		want error
	}{
		{"", ErrNoCommand},
		{"   ", ErrNoCommand},
		{"rotate 4", ErrUnknownCommand},
		{"insert", ErrMissingKey},
		{"search 1.5", ErrInvalidKey},
	}
	for _, tc := range tests {
		_, err := manager.Execute(tree, tc.line)
		if !errors.Is(err, tc.want) {
			t.Errorf("Execute(%q) error = %v, want %v", tc.line, err, tc.want)
		}
	}

	if _, err := manager.Execute(tree, `insert "1`); err == nil {
		t.Error("expected a parse error for an unterminated quote")
	}
}

func TestReadOnlyHandlers(t *testing.T) {
	manager := NewManager()
	tree := avl.NewWithPolicy(avl.PolicyOrdered)
	if _, err := manager.Execute(tree, "add 2 1 3"); err != nil {
		t.Fatal(err)
	}

	outcome, err := manager.Execute(tree, "keys")
	if err != nil || outcome.Message() != "1 2 3" {
		t.Errorf("keys = %q, %v", outcome.Message(), err)
	}

	outcome, err = manager.Execute(tree, "print")
	if err != nil || len(outcome.Lines) != 3 || outcome.Lines[1] != "|------+ 2" {
		t.Errorf("print = %q, %v", outcome.Lines, err)
	}

	if _, err := manager.Execute(tree, "print sideways"); err == nil {
		t.Error("print should reject unknown arguments")
	}

	outcome, err = manager.Execute(tree, "check")
	if err != nil || outcome.Message() != "ok: 3 nodes, height 2" {
		t.Errorf("check = %q, %v", outcome.Message(), err)
	}

	outcome, err = manager.Execute(tree, "stats")
	if err != nil || outcome.Message() != "nodes=3 height=2 policy=ordered revision=3 root=2" {
		t.Errorf("stats = %q, %v", outcome.Message(), err)
	}

	outcome, err = manager.Execute(tree, "clear")
	if err != nil || !outcome.Mutated || tree.Len() != 0 {
		t.Errorf("clear = %+v, %v", outcome, err)
	}

	outcome, _ = manager.Execute(tree, "keys")
	if outcome.Message() != "(empty)" {
		t.Errorf("keys on empty tree = %q", outcome.Message())
	}
}

func TestCommand(t *testing.T) {
	cmd, err := Parse(`Insert 1 "2"`)
	if err != nil {
		t.Fatal(err)
	}

	if cmd.Verb != "insert" {
		t.Errorf("Expected Verb to be 'insert', got '%s'", cmd.Verb)
	}
	if len(cmd.Args) != 2 || cmd.Args[1] != "2" {
		t.Errorf("unexpected args %v", cmd.Args)
	}
	if cmd.FullName != "Insert 1 2" {
		t.Errorf("Expected FullName to be 'Insert 1 2', got '%s'", cmd.FullName)
	}
}

func TestVerbsInPriorityOrder(t *testing.T) {
	verbs := NewManager().Verbs()
	want := []string{"insert", "delete", "search", "keys", "print", "check", "stats", "clear"}
	if strings.Join(verbs, ",") != strings.Join(want, ",") {
		t.Errorf("Verbs() = %v, want %v", verbs, want)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"42", 42, false},
		{" -7 ", -7, false},
		{"", 0, true},
		{"0x10", 0, true},
		{"abc", 0, true},
	}
	for _, tc := range tests {
		got, err := ParseKey(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseKey(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseKey(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
