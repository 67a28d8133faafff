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
	"testing"
	"time"
)

// TestFormatFunctions uses a known date.
func TestFormatFunctions(t *testing.T) {
	// January 2, 2006 is a Monday.
	testTime := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

	t.Run("FormatTime", func(t *testing.T) {
		expected := "15:04:05"
		result := FormatTime(testTime)
		if result != expected {
			t.Errorf("FormatTime: expected %q, got %q", expected, result)
		}
	})

	t.Run("FormatDateTime", func(t *testing.T) {
		expected := "Monday, 02 Jan 2006 15:04:05"
		result := FormatDateTime(testTime)
		if result != expected {
			t.Errorf("FormatDateTime: expected %q, got %q", expected, result)
		}
	})

	t.Run("EmptyFormatUsesDefault", func(t *testing.T) {
		if got, want := Format("", testTime), FormatDateTime(testTime); got != want {
			t.Errorf("Format(\"\"): expected %q, got %q", want, got)
		}
	})
}

// Test Translate to ensure custom formats are properly converted.
func TestTranslate(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"YYYY-MM-DD", "2006-01-02"},
		{"hh:mm:ss", "15:04:05"},
		{"DDDD, DD MMM YYYY hh:mm:ss pm", "Monday, 02 Jan 2006 15:04:05 PM"},
	}
	for _, c := range cases {
		result := Translate(c.input)
		if result != c.expected {
			t.Errorf("Translate(%q): expected %q, got %q", c.input, c.expected, result)
		}
	}
}
