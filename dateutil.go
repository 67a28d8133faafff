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

// dateutil.go
// Excel-style date format placeholders, after https://github.com/metakeule/fmtdate by Marc René Arns

package main

import (
	"strings"
	"time"
)

/*
	Formats:

	MMM  - month (Jan)
	MM   - month (01)
	DDDD - day (Monday)
	DD   - day (02)
	YYYY - year (2006)
	hh   - hours (15)
	mm   - minutes (04)
	ss   - seconds (05)
	pm   - PM
*/

type placeholder struct{ find, subst string }

var placeholders = []placeholder{
	{"hh", "15"},
	{"h", "03"},
	{"mm", "04"},
	{"ss", "05"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"MM", "01"},
	{"M", "1"},
	{"pm", "PM"},
	{"ZZZZ", "-0700"},
	{"ZZZ", "MST"},
	{"ZZ", "Z07:00"},
	{"YYYY", "2006"},
	{"YY", "06"},
	{"DDDD", "Monday"},
	{"DDD", "Mon"},
	{"DD", "02"},
	{"D", "2"},
}

var (
	DefaultTimeFormat     = "hh:mm:ss"
	DefaultDateTimeFormat = "DDDD, DD MMM YYYY hh:mm:ss"
)

// Translate converts a memorable format to Go's reference layout.
func Translate(format string) string {
	out := format
	for _, ph := range placeholders {
		out = strings.Replace(out, ph.find, ph.subst, -1)
	}
	return out
}

// Format formats date with an Excel-style format string.
func Format(format string, date time.Time) string {
	if format == "" {
		format = DefaultDateTimeFormat
	}
	return date.Format(Translate(format))
}

// FormatTime formats the given date to the DefaultTimeFormat
func FormatTime(date time.Time) string {
	return Format(DefaultTimeFormat, date)
}

// FormatDateTime formats the given date to the DefaultDateTimeFormat
func FormatDateTime(date time.Time) string {
	return Format(DefaultDateTimeFormat, date)
}
