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
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cybrota/avlviz/avl"
	"github.com/cybrota/avlviz/commands"
	"github.com/gizak/termui/v3/widgets"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBanner(t *testing.T) {
	at := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)
	got := getBanner(at, avl.Stats{Len: 3, Height: 2, Revision: 7}, avl.PolicyOrdered)

	want := "Monday, 02 Jan 2006 15:04:05. nodes=3 height=2 rev=7 policy=ordered"
	if got != want {
		t.Errorf("getBanner() = %q, want %q", got, want)
	}
}

func TestClassicCommandLine(t *testing.T) {
	cases := []struct {
		verb, input, want string
	}{
		{"insert", "42", "insert 42"},
		{"delete", " -7 ", "delete -7"},
		{"insert", "search 5", "search 5"},
		{"insert", "keys", "keys"},
		{"insert", "", ""},
	}

	for _, c := range cases {
		if got := classicCommandLine(c.verb, c.input); got != c.want {
			t.Errorf("classicCommandLine(%q, %q) = %q, want %q", c.verb, c.input, got, c.want)
		}
	}
}

func TestComputeHeaderRatio(t *testing.T) {
	cases := []struct {
		height int
		want   float64
	}{
		{0, 0.05},
		{10, 0.25},
		{30, 0.1},
		{100, 0.05},
	}

	for _, c := range cases {
		assert.InDelta(t, c.want, computeHeaderRatio(c.height), 1e-9, "height %d", c.height)
	}
}

func TestExecuteClassic(t *testing.T) {
	g := avl.NewGuarded(avl.NewWithPolicy(avl.PolicyOrdered))
	manager := commands.NewManager()
	journal := NewJournal(10)
	at := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)

	outcome, err := executeClassic(g, manager, journal, "insert 30 20 10", at)
	require.NoError(t, err)
	assert.True(t, outcome.Mutated)
	assert.Equal(t, 3, g.Stats().Len)
	assert.Equal(t, 3, journal.Len())

	_, err = executeClassic(g, manager, journal, "delete ten", at)
	assert.True(t, errors.Is(err, commands.ErrInvalidKey))
	assert.Equal(t, 3, g.Stats().Len)
	assert.Equal(t, "08:00:00 ! delete: please enter a valid integer: \"ten\"", journal.Lines()[0])

	rendered := renderGuardedTree(NewLayoutCache(0), g, 0, LayoutOptions{LevelHeight: 2})
	assert.True(t, strings.Contains(rendered, "20"))
	assert.True(t, strings.Contains(rendered, "30"))
}

func TestExecuteClassicWithConcurrentStats(t *testing.T) {
	g := avl.NewGuarded(avl.New())
	manager := commands.NewManager()
	journal := NewJournal(1000)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				s := g.Stats()
				assert.LessOrEqual(t, s.Height, 2*s.Len+1)
			}
		}
	}()

	// Descending keys are always stored under the literal policy.
	for k := 200; k > 0; k-- {
		_, err := executeClassic(g, manager, journal, classicCommandLine("insert", strconv.Itoa(k)), time.Now())
		require.NoError(t, err)
	}
	close(stop)
	wg.Wait()

	var verifyErr error
	g.Read(func(t *avl.Tree) { verifyErr = t.Verify() })
	assert.NoError(t, verifyErr)
	assert.Equal(t, 200, g.Stats().Len)
}

func TestBannerTickerSendsUpdates(t *testing.T) {
	g := avl.NewGuarded(avl.NewWithPolicy(avl.PolicyOrdered))
	g.Insert(1)
	g.Insert(2)

	done := make(chan struct{})
	clock := make(chan time.Time)
	tipTicks := make(chan time.Time)
	updates := startBannerTicker(done, clock, tipTicks, g, avl.PolicyOrdered)

	bannerPara := widgets.NewParagraph()
	tipPara := widgets.NewParagraph()
	tipPara.Text = "unchanged"

	at := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)
	clock <- at
	u := <-updates
	u.apply(bannerPara, tipPara)
	assert.Equal(t, getBanner(at, g.Stats(), avl.PolicyOrdered), bannerPara.Text)
	assert.Equal(t, "unchanged", tipPara.Text)

	tipTicks <- at
	u = <-updates
	u.apply(bannerPara, tipPara)
	assert.Contains(t, tips, strings.TrimSpace(tipPara.Text))
	assert.Contains(t, bannerPara.Text, "nodes=2")

	close(done)
}
