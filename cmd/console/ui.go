package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"

	"github.com/oubliette-games/dungeon-escape/pkg/game"
)

type screen int

const (
	screenMenu screen = iota
	screenNameEntry
	screenResumeEntry
	screenGameplay
	screenGameOver
)

var menuItems = []string{"New Game", "Resume Game", "Quit"}

// ConsoleUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ConsoleUI struct {
	config *ConsoleConfig
	client *http.Client

	scr         screen
	menuIndex   int
	nameInput   textinput.Model
	resumeInput textinput.Model
	view        *game.View

	width   int
	height  int
	err     error
	loading bool
	notice  string
}

type sessionCreatedMsg struct {
	view *game.View
	err  error
}

type sessionLoadedMsg struct {
	view *game.View
	err  error
}

type actionResultMsg struct {
	result *ActionResult
	err    error
}

type clipboardMsg struct {
	err error
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220")). // gold
			Bold(true)

	goldStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	alertStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // green
			Bold(true)

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")) // off-white

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("220")).
				Bold(true)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	roomPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(1).
			PaddingLeft(3).
			PaddingRight(1)

	statsPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2)
)

func NewConsoleUI(cfg *ConsoleConfig, client *http.Client) ConsoleUI {
	nameInput := textinput.New()
	nameInput.Placeholder = "Your name"
	nameInput.CharLimit = game.MaxNameLen
	nameInput.Width = 20

	resumeInput := textinput.New()
	resumeInput.Placeholder = "Session ID"
	resumeInput.CharLimit = 36
	resumeInput.Width = 38

	return ConsoleUI{
		config:      cfg,
		client:      client,
		scr:         screenMenu,
		nameInput:   nameInput,
		resumeInput: resumeInput,
	}
}

func (m ConsoleUI) Init() tea.Cmd {
	return nil
}

func (m ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		return m, nil
	}

	switch m.scr {
	case screenMenu:
		return m.updateMenu(msg)
	case screenNameEntry:
		return m.updateNameEntry(msg)
	case screenResumeEntry:
		return m.updateResumeEntry(msg)
	case screenGameplay:
		return m.updateGameplay(msg)
	case screenGameOver:
		return m.updateGameOver(msg)
	}
	return m, nil
}

func (m ConsoleUI) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionCreatedMsg, sessionLoadedMsg, actionResultMsg:
		// Stale responses from an abandoned game are ignored
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.menuIndex > 0 {
				m.menuIndex--
			}
		case tea.KeyDown:
			if m.menuIndex < len(menuItems)-1 {
				m.menuIndex++
			}
		case tea.KeyEnter:
			switch m.menuIndex {
			case 0:
				m.scr = screenNameEntry
				m.err = nil
				m.nameInput.Reset()
				m.nameInput.Focus()
				return m, textinput.Blink
			case 1:
				m.scr = screenResumeEntry
				m.err = nil
				m.resumeInput.Reset()
				m.resumeInput.Focus()
				return m, textinput.Blink
			case 2:
				return m, tea.Quit
			}
		default:
			if msg.String() == "q" {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m ConsoleUI) updateNameEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionCreatedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.view = msg.view
		m.scr = screenGameplay
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.scr = screenMenu
			m.err = nil
			return m, nil
		case tea.KeyEnter:
			name := strings.TrimSpace(m.nameInput.Value())
			if name == "" || m.loading {
				return m, nil
			}
			m.loading = true
			return m, m.createSessionCmd(name)
		}
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m ConsoleUI) updateResumeEntry(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.view = msg.view
		if m.view.Ended {
			m.scr = screenGameOver
		} else {
			m.scr = screenGameplay
		}
		m.notice = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.scr = screenMenu
			m.err = nil
			return m, nil
		case tea.KeyEnter:
			if m.loading {
				return m, nil
			}
			id, err := uuid.Parse(strings.TrimSpace(m.resumeInput.Value()))
			if err != nil {
				m.err = fmt.Errorf("invalid session ID")
				return m, nil
			}
			m.loading = true
			return m, m.loadSessionCmd(id)
		}
	}

	var cmd tea.Cmd
	m.resumeInput, cmd = m.resumeInput.Update(msg)
	return m, cmd
}

func (m ConsoleUI) updateGameplay(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actionResultMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		state := msg.result.State
		m.view = &state
		if m.view.Ended {
			if m.view.Outcome == nil {
				// Quitting abandons the game and returns to the menu
				m.scr = screenMenu
				m.view = nil
				m.menuIndex = 0
				return m, nil
			}
			m.scr = screenGameOver
		}
		return m, nil

	case clipboardMsg:
		if msg.err != nil {
			m.notice = "Clipboard unavailable"
		} else {
			m.notice = "Session ID copied to clipboard"
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS:
			return m, m.copySessionIDCmd()
		case tea.KeyEnter:
			if m.view != nil && m.view.Phase == game.PhaseMessage && !m.loading {
				return m.dispatch(game.ActionAcknowledge)
			}
			return m, nil
		}

		if m.loading || m.view == nil {
			return m, nil
		}
		if action, ok := m.actionForKey(strings.ToLower(msg.String())); ok {
			return m.dispatch(action)
		}
	}
	return m, nil
}

func (m ConsoleUI) updateGameOver(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			m.scr = screenMenu
			m.view = nil
			m.menuIndex = 0
			m.err = nil
			return m, nil
		}
	}
	return m, nil
}

// actionForKey maps a key press to an action for the current phase.
// Traversal keys are sent even when the move is blocked; the server
// resolves them, including the out-of-moves loss.
func (m ConsoleUI) actionForKey(key string) (game.Action, bool) {
	switch m.view.Phase {
	case game.PhaseExploring:
		switch key {
		case "f":
			return game.ActionForward, true
		case "b":
			return game.ActionBack, true
		case "c":
			return game.ActionCollect, true
		case "q":
			return game.ActionQuit, true
		}
	case game.PhaseCombat:
		switch key {
		case "f":
			return game.ActionFight, true
		case "r":
			return game.ActionFlee, true
		}
	case game.PhaseChoice:
		switch key {
		case "1":
			return game.ActionChooseKey, true
		case "2":
			return game.ActionChoosePotion, true
		}
	}
	return "", false
}

func (m ConsoleUI) dispatch(action game.Action) (tea.Model, tea.Cmd) {
	m.loading = true
	m.notice = ""
	return m, m.sendActionCmd(action)
}

func (m ConsoleUI) createSessionCmd(name string) tea.Cmd {
	return func() tea.Msg {
		view, err := createSession(m.client, m.config.APIBaseURL, name)
		return sessionCreatedMsg{view, err}
	}
}

func (m ConsoleUI) loadSessionCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		view, err := getSession(m.client, m.config.APIBaseURL, id)
		return sessionLoadedMsg{view, err}
	}
}

func (m ConsoleUI) sendActionCmd(action game.Action) tea.Cmd {
	return func() tea.Msg {
		result, err := applyAction(m.client, m.config.APIBaseURL, m.view.ID, action)
		return actionResultMsg{result, err}
	}
}

func (m ConsoleUI) copySessionIDCmd() tea.Cmd {
	id := m.view.ID.String()
	return func() tea.Msg {
		return clipboardMsg{err: clipboard.WriteAll(id)}
	}
}

func (m ConsoleUI) View() string {
	switch m.scr {
	case screenMenu:
		return m.renderMenu()
	case screenNameEntry:
		return m.renderNameEntry()
	case screenResumeEntry:
		return m.renderResumeEntry()
	case screenGameplay:
		return m.renderGameplay()
	case screenGameOver:
		return m.renderGameOver()
	}
	return ""
}

func (m ConsoleUI) renderMenu() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("DUNGEON ESCAPE"))
	content.WriteString("\n\n")

	for i, item := range menuItems {
		if i == m.menuIndex {
			content.WriteString(selectedItemStyle.Render(fmt.Sprintf("▶ %s", item)))
		} else {
			content.WriteString(itemStyle.Render(fmt.Sprintf("  %s", item)))
		}
		content.WriteString("\n")
	}

	content.WriteString("\n")
	content.WriteString(dimStyle.Render("Use ↑/↓ to navigate, Enter to select, Esc to exit"))

	return m.centered(content.String())
}

func (m ConsoleUI) renderNameEntry() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("ENTER YOUR NAME:"))
	content.WriteString("\n\n")
	content.WriteString(m.nameInput.View())
	content.WriteString("\n\n")

	if m.loading {
		content.WriteString(dimStyle.Render("Setting up your adventure..."))
	} else if m.err != nil {
		content.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	} else if strings.TrimSpace(m.nameInput.Value()) != "" {
		content.WriteString(goldStyle.Render("PRESS ENTER TO BEGIN"))
	} else {
		content.WriteString(dimStyle.Render("Esc returns to the menu"))
	}

	return m.centered(content.String())
}

func (m ConsoleUI) renderResumeEntry() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("RESUME GAME"))
	content.WriteString("\n\n")
	content.WriteString(m.resumeInput.View())
	content.WriteString("\n\n")

	if m.loading {
		content.WriteString(dimStyle.Render("Loading your adventure..."))
	} else if m.err != nil {
		content.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	} else {
		content.WriteString(dimStyle.Render("Paste a session ID and press Enter, Esc for menu"))
	}

	return m.centered(content.String())
}

func (m ConsoleUI) renderGameplay() string {
	if m.view == nil {
		return "\n  Initializing..."
	}

	roomWidth := m.width*2/3 - 4
	if roomWidth < 30 {
		roomWidth = 30
	}
	statsWidth := m.width - roomWidth - 6
	if statsWidth < 24 {
		statsWidth = 24
	}

	var room strings.Builder
	room.WriteString(titleStyle.Render(m.view.RoomName))
	room.WriteString("\n\n")
	room.WriteString(textStyle.Render(wordwrap.String(m.view.RoomDescription, roomWidth-4)))
	room.WriteString("\n")

	if m.view.EntityLine != "" {
		room.WriteString("\n")
		if m.view.Phase == game.PhaseCombat {
			room.WriteString(alertStyle.Render(wordwrap.String(m.view.EntityLine, roomWidth-4)))
		} else {
			room.WriteString(goldStyle.Render(wordwrap.String(m.view.EntityLine, roomWidth-4)))
		}
		room.WriteString("\n")
	}

	if m.view.Phase == game.PhaseMessage && m.view.Message != "" {
		room.WriteString("\n")
		room.WriteString(textStyle.Render(wordwrap.String(m.view.Message, roomWidth-4)))
		room.WriteString("\n")
	}

	if len(m.view.RecentActions) > 0 {
		room.WriteString("\n")
		room.WriteString(dimStyle.Render("Recent Actions:"))
		room.WriteString("\n")
		for _, line := range m.view.RecentActions {
			room.WriteString(dimStyle.Render("- " + line))
			room.WriteString("\n")
		}
	}

	var stats strings.Builder
	stats.WriteString(titleStyle.Render("PLAYER"))
	stats.WriteString("\n\n")
	stats.WriteString(textStyle.Render("Player: " + m.view.PlayerName))
	stats.WriteString("\n")
	stats.WriteString(textStyle.Render(fmt.Sprintf("Health: %d / %d", m.view.Health, m.view.MaxHealth)))
	stats.WriteString("\n")
	stats.WriteString(textStyle.Render(fmt.Sprintf("Moves Left: %d", m.view.Moves)))
	stats.WriteString("\n")
	stats.WriteString(textStyle.Render("Inventory: " + inventoryLine(m.view.Inventory)))
	stats.WriteString("\n\n")

	stats.WriteString(titleStyle.Render("ACTIONS"))
	stats.WriteString("\n\n")
	stats.WriteString(goldStyle.Render(m.actionPrompts()))
	stats.WriteString("\n\n")

	if m.loading {
		stats.WriteString(dimStyle.Render("..."))
	} else if m.err != nil {
		stats.WriteString(errorStyle.Render(wordwrap.String("Error: "+m.err.Error(), statsWidth-4)))
	} else if m.notice != "" {
		stats.WriteString(dimStyle.Render(m.notice))
	}
	stats.WriteString("\n\n")
	stats.WriteString(dimStyle.Render("Ctrl+S: copy session ID"))
	stats.WriteString("\n")
	stats.WriteString(dimStyle.Render("Esc: exit"))

	roomPanel := roomPanelStyle.Width(roomWidth).Render(room.String())
	statsPanel := statsPanelStyle.Width(statsWidth).Render(stats.String())

	return lipgloss.JoinHorizontal(lipgloss.Top, roomPanel, statsPanel)
}

func (m ConsoleUI) renderGameOver() string {
	var content strings.Builder

	if m.view != nil && m.view.Outcome != nil && m.view.Outcome.Win {
		content.WriteString(winStyle.Render("VICTORY!"))
	} else {
		content.WriteString(loseStyle.Render("GAME OVER"))
	}
	content.WriteString("\n\n")

	if m.view != nil && m.view.Outcome != nil {
		content.WriteString(textStyle.Render(wordwrap.String(m.view.Outcome.Reason, 60)))
		content.WriteString("\n\n")
	}

	content.WriteString(goldStyle.Render("PRESS ENTER TO RETURN TO MENU"))

	return m.centered(content.String())
}

// actionPrompts renders the prompt list for the current phase, showing
// only the moves that are actually available.
func (m ConsoleUI) actionPrompts() string {
	switch m.view.Phase {
	case game.PhaseCombat:
		return "[F] Fight!\n[R] Attempt to Run"
	case game.PhaseChoice:
		return "[1] Take Golden Key\n[2] Take Health Potion"
	case game.PhaseMessage:
		return "[Enter] Continue"
	default:
		var prompts []string
		for _, action := range m.view.Actions {
			switch action {
			case game.ActionCollect:
				prompts = append(prompts, "[C] Collect Sword")
			case game.ActionForward:
				prompts = append(prompts, "[F] Forward")
			case game.ActionBack:
				prompts = append(prompts, "[B] Backtrack")
			case game.ActionQuit:
				prompts = append(prompts, "[Q] Quit")
			}
		}
		return strings.Join(prompts, "\n")
	}
}

func inventoryLine(items []string) string {
	if len(items) == 0 {
		return "Empty"
	}
	return strings.Join(items, ", ")
}

func (m ConsoleUI) centered(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content, lipgloss.WithWhitespaceChars(" "))
}
