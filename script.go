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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cybrota/avlviz/avl"
	"github.com/cybrota/avlviz/commands"
)

// runScript executes one command per line. Blank lines and lines starting
// with '#' are skipped. The first failing line stops the run unless
// keepGoing is set; it returns the number of lines executed successfully.
func runScript(tree *avl.Tree, manager *commands.Manager, r io.Reader, out io.Writer, keepGoing bool) (int, error) {
	scanner := bufio.NewScanner(r)

	executed := 0
	var firstErr error
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		outcome, err := manager.Execute(tree, line)
		if err != nil {
			err = fmt.Errorf("line %d: %w", lineNo, err)
			fmt.Fprintf(out, "%v\n", err)
			if !keepGoing {
				return executed, err
			}
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		executed++
		for _, msg := range outcome.Lines {
			fmt.Fprintln(out, msg)
		}
	}

	if err := scanner.Err(); err != nil {
		return executed, err
	}
	return executed, firstErr
}

func runScriptFile(tree *avl.Tree, manager *commands.Manager, path string, out io.Writer, keepGoing bool) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return runScript(tree, manager, file, out, keepGoing)
}
