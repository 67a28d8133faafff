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
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cybrota/avlviz/avl"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

// KeyEntry is a key read from a key file together with its line number.
type KeyEntry struct {
	Key  int
	Line int
}

// InvalidToken is text in a key file that is not an integer.
type InvalidToken struct {
	Text string
	Line int
}

// LoadReport summarises a bulk load.
type LoadReport struct {
	Read      int // keys handed to Insert
	Stored    int // keys that produced a node
	Discarded int // keys the insertion policy dropped
	Repeated  int // keys seen earlier in the same file
	Invalid   int
}

// readKeys scans whitespace separated integers. Everything after '#' on a
// line is a comment.
func readKeys(r io.Reader) ([]KeyEntry, []InvalidToken, error) {
	var keys []KeyEntry
	var invalid []InvalidToken

	scanner := bufio.NewScanner(r)
	// Increase buffer size for long single-line key lists
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for _, field := range strings.Fields(line) {
			key, err := strconv.Atoi(field)
			if err != nil {
				invalid = append(invalid, InvalidToken{Text: field, Line: lineNo})
				continue
			}
			keys = append(keys, KeyEntry{Key: key, Line: lineNo})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return keys, invalid, nil
}

func readKeyFile(path string) ([]KeyEntry, []InvalidToken, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("key file %s not found", path)
		}
		return nil, nil, err
	}
	defer file.Close()

	return readKeys(file)
}

// loadKeysIntoTree inserts the keys in file order. A bloom filter tracks
// which keys were already seen in the input so repeats can be reported
// without keeping a second copy of every key.
func loadKeysIntoTree(tree *avl.Tree, keys []KeyEntry, showProgress bool, progressOut io.Writer) LoadReport {
	report := LoadReport{}
	seen := bloom.NewWithEstimates(uint(max(len(keys), 1024)), 0.0001)

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(keys),
			progressbar.OptionSetWriter(progressOut),
			progressbar.OptionSetDescription("🌳 Inserting keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(progressOut, "\n✅ Load completed!\n")
			}),
		)
	}

	for _, entry := range keys {
		text := strconv.Itoa(entry.Key)
		if seen.TestString(text) {
			report.Repeated++
		}
		seen.AddString(text)

		before := tree.Len()
		tree.Insert(entry.Key)
		report.Read++
		if tree.Len() > before {
			report.Stored++
		} else {
			report.Discarded++
		}

		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	log.Printf("Loaded %d keys: %d stored, %d discarded", report.Read, report.Stored, report.Discarded)
	return report
}

// loadKeyFile reads path and loads it into tree. Invalid tokens are
// reported and skipped.
func loadKeyFile(tree *avl.Tree, path string, showProgress bool) (LoadReport, error) {
	keys, invalid, err := readKeyFile(path)
	if err != nil {
		return LoadReport{}, err
	}
	for _, tok := range invalid {
		log.Printf("Skipping %q on line %d: not an integer", tok.Text, tok.Line)
	}

	report := loadKeysIntoTree(tree, keys, showProgress, os.Stderr)
	report.Invalid = len(invalid)
	return report, nil
}
