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
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrNoCommand      = errors.New("no command provided")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingKey     = errors.New("missing key")
	// ErrInvalidKey carries the message shown to users for non-integer input.
	ErrInvalidKey = errors.New("please enter a valid integer")
)

// ParseKey converts user text into a tree key. Surrounding spaces are
// ignored; anything else that is not a base-10 int is rejected.
func ParseKey(s string) (int, error) {
	key, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidKey, s)
	}
	return key, nil
}

// ParseKeys validates every argument before any of them is used.
func ParseKeys(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, ErrMissingKey
	}
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		key, err := ParseKey(arg)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}
