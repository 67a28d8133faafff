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
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/cybrota/avlviz/avl"
	"github.com/cybrota/avlviz/commands"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	tb "github.com/nsf/termbox-go"
	"github.com/patrickmn/go-cache"
)

// DisableMouseInput in termbox-go. This should be called after ui.Init()
func DisableMouseInput() {
	tb.SetInputMode(tb.InputEsc)
}

// getBanner creates the clock and tree statistics line
func getBanner(t time.Time, stats avl.Stats, policy avl.InsertPolicy) string {
	return fmt.Sprintf("%s. nodes=%d height=%d rev=%d policy=%s",
		FormatDateTime(t), stats.Len, stats.Height, stats.Revision, policy)
}

// getPaddedTip adds before and after padding to a tip
func getPaddedTip(tip string) string {
	return " " + tip + " "
}

// classicCommandLine turns the input buffer into a command line. A bare key
// is run with defaultVerb; anything else is passed through unchanged.
func classicCommandLine(defaultVerb, input string) string {
	input = strings.TrimSpace(input)
	if _, err := commands.ParseKey(input); err == nil {
		return defaultVerb + " " + input
	}
	return input
}

// computeHeaderRatio determines the percentage of vertical space to allocate
// for the banner widgets. It reserves at least three lines and no more than a
// quarter of the screen.
func computeHeaderRatio(termHeight int) float64 {
	if termHeight <= 0 {
		return 0.05
	}
	minLines := 3.0
	ratio := minLines / float64(termHeight)
	if ratio < 0.05 {
		ratio = 0.05
	}
	if ratio > 0.25 {
		ratio = 0.25
	}
	return ratio
}

func layoutGrid(
	grid *ui.Grid,
	inputPara *widgets.Paragraph,
	statusPara *widgets.Paragraph,
	journalList *widgets.List,
	bannerPara *widgets.Paragraph,
	tipPara *widgets.Paragraph,
	treePara *widgets.Paragraph,
	headerRatio float64,
) {
	grid.Set(
		ui.NewCol(0.3,
			ui.NewRow(0.12, inputPara),
			ui.NewRow(0.12, statusPara),
			ui.NewRow(0.76, journalList),
		),
		ui.NewCol(0.7,
			ui.NewRow(headerRatio, ui.NewCol(0.5, bannerPara), ui.NewCol(0.5, tipPara)),
			ui.NewRow(1-headerRatio, treePara),
		),
	)
}

// executeClassic runs one command line under the write lock and records the
// result in the journal.
func executeClassic(g *avl.Guarded, manager *commands.Manager, journal *Journal, line string, at time.Time) (commands.Outcome, error) {
	var (
		outcome commands.Outcome
		err     error
	)
	g.Write(func(t *avl.Tree) {
		outcome, err = manager.Execute(t, line)
	})
	if err != nil {
		journal.RecordError(at, err)
		return outcome, err
	}
	journal.Record(at, outcome)
	return outcome, nil
}

func renderGuardedTree(lc *cache.Cache, g *avl.Guarded, width int, opts LayoutOptions) string {
	var rendered string
	g.Read(func(t *avl.Tree) {
		rendered = RenderTreeCached(lc, t, width, opts)
	})
	return rendered
}

// bannerUpdate carries new banner or tip text from the ticker goroutine to the
// event loop. Empty fields are left unchanged.
type bannerUpdate struct {
	banner string
	tip    string
}

func (u bannerUpdate) apply(bannerPara, tipPara *widgets.Paragraph) {
	if u.banner != "" {
		bannerPara.Text = u.banner
	}
	if u.tip != "" {
		tipPara.Text = u.tip
	}
}

// startBannerTicker turns clock and tip ticks into banner updates until done
// is closed. Tree statistics are read through g while the event loop may be
// mutating the tree.
func startBannerTicker(done <-chan struct{}, clock, tipTicks <-chan time.Time, g *avl.Guarded, policy avl.InsertPolicy) <-chan bannerUpdate {
	updates := make(chan bannerUpdate)
	go func() {
		for {
			var u bannerUpdate
			select {
			case <-done:
				return
			case t := <-clock:
				u.banner = getBanner(t, g.Stats(), policy)
			case <-tipTicks:
				u.tip = getPaddedTip(GetRandomTip())
			}

			select {
			case updates <- u:
			case <-done:
				return
			}
		}
	}()
	return updates
}

func run(g *avl.Guarded, config *Config) {
	// Done channel for ticker
	done := make(chan struct{})

	manager := commands.NewManager()
	journal := NewJournal(config.Journal.MaxEntries)
	lc := NewLayoutCache(time.Duration(config.Display.CacheMinutes) * time.Minute)
	opts := LayoutOptions{LevelHeight: config.Display.LevelHeight, ShowBalance: config.Display.ShowBalance}

	var policy avl.InsertPolicy
	g.Read(func(t *avl.Tree) { policy = t.Policy() })

	if err := ui.Init(); err != nil {
		log.Fatalf("failed to initialize termui: %v", err)
	}
	DisableMouseInput()
	defer ui.Close()

	bannerPara := widgets.NewParagraph()
	bannerPara.Title = " Today "
	bannerPara.Text = getBanner(time.Now(), g.Stats(), policy)
	bannerPara.WrapText = true
	bannerPara.BorderStyle = StyleBorder(false)

	tipPara := widgets.NewParagraph()
	tipPara.Title = " Tip "
	tipPara.Text = getPaddedTip(GetRandomTip())
	tipPara.TextStyle = StyleTextMuted()
	tipPara.WrapText = true
	tipPara.BorderStyle = StyleBorder(false)

	// 1. Create the input paragraph
	inputPara := widgets.NewParagraph()
	inputPara.Title = " Key or Command "
	inputPara.Text = ""
	inputPara.TextStyle = StylePrimary()
	inputPara.BorderStyle = StyleBorder(true)

	statusPara := widgets.NewParagraph()
	statusPara.Title = " Status "
	statusPara.Text = "[<C-n>](fg:green) insert [<C-d>](fg:green) delete [<C-f>](fg:green) search"
	statusPara.BorderStyle = StyleBorder(false)

	journalList := widgets.NewList()
	journalList.Title = " Journal "
	journalList.Rows = []string{}
	journalList.TextStyle = StyleText()
	journalList.SelectedRowStyle = StyleText()
	journalList.BorderStyle = StyleBorder(false)

	treePara := widgets.NewParagraph()
	treePara.Title = " AVL Tree "
	treePara.TextStyle = StyleEdges()
	treePara.WrapText = false
	treePara.BorderStyle = StyleBorder(false)

	// === Layout with Grid ===
	termWidth, termHeight := ui.TerminalDimensions()
	headerRatio := computeHeaderRatio(termHeight)
	grid := ui.NewGrid()
	grid.SetRect(0, 0, termWidth, termHeight)

	layoutGrid(grid, inputPara, statusPara, journalList, bannerPara, tipPara, treePara, headerRatio)
	treePara.Text = renderGuardedTree(lc, g, treePara.Inner.Dx(), opts)
	ui.Render(grid)

	uiEvents := ui.PollEvents()
	inputBuffer := ""

	dateTi := time.NewTicker(1 * time.Second)
	tipTi := time.NewTicker(10 * time.Second)
	defer dateTi.Stop()
	defer tipTi.Stop()

	// The ticker reads the tree concurrently with the event loop below; only
	// the event loop touches widgets.
	updates := startBannerTicker(done, dateTi.C, tipTi.C, g, policy)

	apply := func(line string) {
		if strings.TrimSpace(line) == "" {
			return
		}
		outcome, err := executeClassic(g, manager, journal, line, time.Now())
		if err != nil {
			statusPara.Text = err.Error()
			statusPara.TextStyle = StyleError()
			return
		}
		statusPara.Text = outcome.Message()
		statusPara.TextStyle = StyleSuccess()
		if len(outcome.Keys) > 0 && outcome.Verb != "search" {
			inputBuffer = ""
		}
	}

	keyAction := func(verb string) {
		if _, err := commands.ParseKey(inputBuffer); err != nil {
			statusPara.Text = invalidKeyMessage
			statusPara.TextStyle = StyleError()
			return
		}
		apply(classicCommandLine(verb, inputBuffer))
	}

	for {
		var e ui.Event
		select {
		case u := <-updates:
			u.apply(bannerPara, tipPara)
			ui.Render(bannerPara, tipPara)
			continue
		case e = <-uiEvents:
		}

		switch e.ID {
		case "<C-c>", "<Escape>":
			// Ctrl-C or Escape to exit
			close(done)
			return
		case "<C-n>":
			keyAction("insert")
		case "<C-d>":
			keyAction("delete")
		case "<C-f>":
			keyAction("search")
		case "<Enter>":
			apply(classicCommandLine("insert", inputBuffer))
		case "<C-b>":
			opts.ShowBalance = !opts.ShowBalance
		case "<C-y>":
			var sb strings.Builder
			g.Read(func(t *avl.Tree) { _ = t.Print(&sb, opts.ShowBalance) })
			if err := clipboard.WriteAll(sb.String()); err != nil {
				log.Printf("Failed to copy tree: %v", err)
				statusPara.Text = "Copy failed"
				statusPara.TextStyle = StyleError()
			} else {
				statusPara.Text = "Tree copied to clipboard"
				statusPara.TextStyle = StyleSuccess()
			}
		case "<C-r>":
			inputBuffer = ""
		case "<Backspace>", "<C-<Backspace>>":
			// Remove the last character from input
			if len(inputBuffer) > 0 {
				inputBuffer = inputBuffer[:len(inputBuffer)-1]
			}
		case "<Space>":
			inputBuffer += " "
		case "<Up>":
			journalList.ScrollUp()
		case "<Down>":
			journalList.ScrollDown()
		case "<Resize>":
			// Adjust layout when the terminal size changes
			if payload, ok := e.Payload.(ui.Resize); ok {
				grid.SetRect(0, 0, payload.Width, payload.Height)
				headerRatio = computeHeaderRatio(payload.Height)
			} else {
				termWidth, termHeight := ui.TerminalDimensions()
				grid.SetRect(0, 0, termWidth, termHeight)
				headerRatio = computeHeaderRatio(termHeight)
			}
			layoutGrid(grid, inputPara, statusPara, journalList, bannerPara, tipPara, treePara, headerRatio)
			ui.Clear()
		default:
			// Typically a typed character
			if e.Type == ui.KeyboardEvent && len(e.ID) == 1 {
				inputBuffer += e.ID
			}
		}

		inputPara.Text = inputBuffer
		journalList.Rows = journal.Lines()
		treePara.Text = renderGuardedTree(lc, g, treePara.Inner.Dx(), opts)

		// Re-render all widgets
		ui.Render(grid)
	}
}
