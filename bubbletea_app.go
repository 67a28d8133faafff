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
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlviz/avl"
	"github.com/cybrota/avlviz/commands"
	"github.com/patrickmn/go-cache"
)

// Focus targets cycled by tab
const (
	FocusInput = iota
	FocusInsert
	FocusDelete
	FocusSearch
	focusCount
)

const invalidKeyMessage = "Please enter a valid integer"

var buttonVerbs = map[int]string{
	FocusInsert: "insert",
	FocusDelete: "delete",
	FocusSearch: "search",
}

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	// Components
	keyInput        textinput.Model
	treeViewport    viewport.Model
	journalViewport viewport.Model

	// Data
	tree        *avl.Tree
	manager     *commands.Manager
	layoutCache *cache.Cache
	journal     *Journal
	config      *Config

	// State
	focusIndex  int
	showHelp    bool
	showBalance bool
	status      string
	statusError bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer
	helpContent     string

	// Side effects, replaced in tests
	now      func() time.Time
	copyText func(string) error

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	Button         lipgloss.Style
	ButtonFocused  lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 2).
			MarginRight(1),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 2).
			MarginRight(1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// InitialModel creates the initial model
func InitialModel(tree *avl.Tree, manager *commands.Manager, config *Config, lc *cache.Cache) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter an integer key..."
	ti.Prompt = "key> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	ti.Focus()
	ti.CharLimit = 20
	ti.Width = 24

	treeViewport := viewport.New(0, 0)
	journalViewport := viewport.New(0, 0)

	return Model{
		keyInput:        ti,
		treeViewport:    treeViewport,
		journalViewport: journalViewport,
		tree:            tree,
		manager:         manager,
		layoutCache:     lc,
		journal:         NewJournal(config.Journal.MaxEntries),
		config:          config,
		focusIndex:      FocusInput,
		showBalance:     config.Display.ShowBalance,
		status:          fmt.Sprintf("Policy: %s", tree.Policy()),
		styles:          NewStyles(),
		now:             time.Now,
		copyText:        clipboard.WriteAll,
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			m.setFocus((m.focusIndex + 1) % focusCount)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focusIndex + focusCount - 1) % focusCount)
			return m, nil
		case "enter":
			if verb, ok := buttonVerbs[m.focusIndex]; ok {
				m.apply(verb)
			} else {
				m.apply("insert")
			}
			return m, nil
		case "ctrl+n":
			m.apply("insert")
			return m, nil
		case "ctrl+d":
			m.apply("delete")
			return m, nil
		case "ctrl+f":
			m.apply("search")
			return m, nil
		case "ctrl+b":
			m.showBalance = !m.showBalance
			m.refreshTree()
			return m, nil
		case "ctrl+y":
			m.copyTree()
			return m, nil
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshTree()
			return m, nil
		}

		if m.focusIndex == FocusInput {
			m.keyInput, cmd = m.keyInput.Update(msg)
		} else {
			m.treeViewport, cmd = m.treeViewport.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshTree()
		m.refreshJournal()
		m.ready = true
	}

	return m, nil
}

func (m *Model) setFocus(index int) {
	m.focusIndex = index
	if index == FocusInput {
		m.keyInput.Focus()
	} else {
		m.keyInput.Blur()
	}
}

// apply runs one button action against the key field. Text that is not an
// integer never reaches the tree.
func (m *Model) apply(verb string) {
	key, err := commands.ParseKey(m.keyInput.Value())
	if err != nil {
		m.setStatus(invalidKeyMessage, true)
		return
	}

	outcome, err := m.manager.Run(m.tree, commands.NewCommand([]string{verb, strconv.Itoa(key)}))
	if err != nil {
		m.journal.RecordError(m.now(), err)
		m.setStatus(err.Error(), true)
		m.refreshJournal()
		return
	}

	m.journal.Record(m.now(), outcome)
	m.setStatus(outcome.Message(), false)
	if verb != "search" {
		m.keyInput.SetValue("")
	}
	m.refreshTree()
	m.refreshJournal()
}

func (m *Model) setStatus(text string, failed bool) {
	m.status = text
	m.statusError = failed
}

func (m *Model) copyTree() {
	var sb strings.Builder
	if err := m.tree.Print(&sb, m.showBalance); err != nil {
		m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	if err := m.copyText(sb.String()); err != nil {
		m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("📋 Copied %d nodes to clipboard", m.tree.Len()), false)
}

func (m Model) layoutOptions() LayoutOptions {
	return LayoutOptions{
		LevelHeight: m.config.Display.LevelHeight,
		ShowBalance: m.showBalance,
	}
}

// refreshTree redraws the tree pane, or the help text while F1 is active.
func (m *Model) refreshTree() {
	if m.showHelp {
		m.treeViewport.SetContent(m.renderedHelp())
		return
	}
	m.treeViewport.SetContent(RenderTreeCached(m.layoutCache, m.tree, m.treeViewport.Width, m.layoutOptions()))
}

func (m *Model) refreshJournal() {
	m.journalViewport.SetContent(strings.Join(m.journal.Lines(), "\n"))
}

// renderedHelp renders the usage markdown once and reuses it.
func (m *Model) renderedHelp() string {
	if m.helpContent != "" {
		return m.helpContent
	}
	if m.glamourRenderer == nil {
		m.glamourRenderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(72),
		)
	}

	helpTxt := usageMarkdown()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(helpTxt); err == nil {
			m.helpContent = rendered
			return rendered
		}
	}
	// Fall back to plain text
	m.helpContent = helpTxt
	return helpTxt
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	leftWidth := m.leftWidth()
	treeWidth := m.width - leftWidth - 4
	bodyHeight := m.height - 6

	m.keyInput.Width = leftWidth - 10
	m.journalViewport.Width = leftWidth - 2
	m.journalViewport.Height = max(bodyHeight-8, 1)
	m.treeViewport.Width = max(treeWidth-2, 1)
	m.treeViewport.Height = max(bodyHeight-1, 1)
}

func (m Model) leftWidth() int {
	return max(m.width*35/100, 34)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 60 || m.height < 15 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth := m.leftWidth()
	treeWidth := m.width - leftWidth - 4
	bodyHeight := m.height - 6

	// Key field and buttons
	inputStyle := m.styles.BorderBlurred
	inputTitle := " 🔑 Key "
	if m.focusIndex == FocusInput {
		inputStyle = m.styles.BorderFocused
		inputTitle = " 🔑 Key (Active) "
	}
	inputBox := inputStyle.
		Width(leftWidth).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(inputTitle),
			m.keyInput.View(),
			"",
			m.renderButtons(),
		))

	journalBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(bodyHeight - 7).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(" 📜 Journal "),
			m.journalViewport.View(),
		))

	treeTitle := fmt.Sprintf(" 🌳 Tree  nodes=%d height=%d policy=%s ", m.tree.Len(), m.tree.Height(), m.tree.Policy())
	if m.showHelp {
		treeTitle = " 📖 Help "
	}
	treeStyle := m.styles.BorderBlurred
	if m.focusIndex != FocusInput {
		treeStyle = m.styles.BorderFocused
	}
	treeBox := treeStyle.
		Width(treeWidth).
		Height(bodyHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Render(treeTitle),
			m.treeViewport.View(),
		))

	leftColumn := lipgloss.JoinVertical(lipgloss.Left, inputBox, journalBox)
	main := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, treeBox)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderKeyHelp(),
	)
}

func (m Model) renderButtons() string {
	labels := []struct {
		focus int
		text  string
	}{
		{FocusInsert, "Insert"},
		{FocusDelete, "Delete"},
		{FocusSearch, "Search"},
	}

	var buttons []string
	for _, l := range labels {
		style := m.styles.Button
		if m.focusIndex == l.focus {
			style = m.styles.ButtonFocused
		}
		buttons = append(buttons, style.Render(l.text))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m Model) renderStatus() string {
	style := m.styles.SuccessMessage
	if m.statusError {
		style = m.styles.ErrorMessage
	}
	return lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(style.Render(m.status))
}

// renderKeyHelp renders the help footer
func (m Model) renderKeyHelp() string {
	keys := []string{"enter", "tab", "ctrl+n/d/f", "ctrl+b", "ctrl+y", "f1", "esc"}
	descs := []string{"apply", "switch focus", "insert/delete/search", "balance factors", "copy tree", "help", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%d lines%s to clipboard.\n", Green, strings.Count(text, "\n"), Reset)
	return nil
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(tree *avl.Tree, config *Config) error {
	InitializeColors()

	lc := NewLayoutCache(time.Duration(config.Display.CacheMinutes) * time.Minute)
	model := InitialModel(tree, commands.NewManager(), config, lc)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
