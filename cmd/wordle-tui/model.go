package main

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/wordle/apps/wordle-go/internal/game"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/play"
	"github.com/robalobadob/wordle/apps/wordle-go/internal/words"
)

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleEmpty   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleTyped   = lipgloss.NewStyle().Bold(true)
	styleCorrect = lipgloss.NewStyle().Background(lipgloss.Color("2")).Foreground(lipgloss.Color("0")).Bold(true)
	stylePresent = lipgloss.NewStyle().Background(lipgloss.Color("3")).Foreground(lipgloss.Color("0")).Bold(true)
	styleAbsent  = lipgloss.NewStyle().Background(lipgloss.Color("8")).Foreground(lipgloss.Color("15"))
	styleMessage = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleHeart   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	styleDialog  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3).BorderForeground(lipgloss.Color("13"))
	styleHelp    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// wordsLoadedMsg carries the word list once the source resolves.
type wordsLoadedMsg struct{ list words.List }

// changedMsg means the table changed (input, timer, or reveal step).
type changedMsg struct{}

type model struct {
	table   *play.Table
	changes <-chan struct{}
	src     words.Source
}

func newModel(table *play.Table, src words.Source) model {
	changes, _ := table.Subscribe() // released by table.Close
	return model{table: table, changes: changes, src: src}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(loadWords(m.src), waitForChange(m.changes))
}

func loadWords(src words.Source) tea.Cmd {
	return func() tea.Msg {
		timeout := src.Timeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout+time.Second)
		defer cancel()
		return wordsLoadedMsg{list: words.Load(ctx, src)}
	}
}

// waitForChange turns the next table notification into a changedMsg.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case wordsLoadedMsg:
		m.table.Start(msg.list)
		return m, nil

	case changedMsg:
		return m, waitForChange(m.changes)

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			_ = m.table.Press("ENTER")
		case tea.KeyBackspace, tea.KeyDelete:
			_ = m.table.Press("BACKSPACE")
		case tea.KeyCtrlR:
			_ = m.table.Reset()
		case tea.KeyCtrlO:
			m.toggleDialog()
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				_ = m.table.Press(string(r))
			}
		}
	}
	return m, nil
}

func (m model) toggleDialog() {
	snap := m.table.Snapshot()
	if snap.Celebration != nil && snap.Celebration.Dialog {
		_ = m.table.CloseDialog()
		return
	}
	_ = m.table.OpenDialog()
}

func (m model) View() string {
	snap := m.table.Snapshot()
	var b strings.Builder

	b.WriteString(styleTitle.Render("WORDLE"))
	b.WriteString("\n\n")

	if snap.State == game.StateLoading {
		b.WriteString("Loading words…\n")
		return b.String()
	}

	if snap.Celebration != nil {
		b.WriteString(renderCelebration(snap.Celebration))
	} else {
		b.WriteString(renderBoard(snap))
	}
	b.WriteString("\n")

	if snap.Message != "" {
		b.WriteString(styleMessage.Render(snap.Message))
	}
	b.WriteString("\n\n")
	b.WriteString(renderKeys(snap.Keys))
	b.WriteString("\n")

	if snap.Celebration != nil && snap.Celebration.Dialog {
		b.WriteString(styleDialog.Render(styleHeart.Render("♥ YES ♥")))
		b.WriteString("\n")
	}

	b.WriteString(styleHelp.Render(helpLine(snap)))
	b.WriteString("\n")
	return b.String()
}

func helpLine(snap play.Snapshot) string {
	switch {
	case snap.Celebration != nil:
		return "ctrl+o answer • ctrl+r play again • esc quit"
	case snap.State.Over():
		return "ctrl+r play again • esc quit"
	}
	return "type a word • enter submit • backspace delete • esc quit"
}

func markStyle(m game.Mark) lipgloss.Style {
	switch m {
	case game.MarkCorrect:
		return styleCorrect
	case game.MarkPresent:
		return stylePresent
	case game.MarkAbsent:
		return styleAbsent
	}
	return styleTyped
}

func renderBoard(snap play.Snapshot) string {
	var b strings.Builder
	for _, row := range snap.Board {
		cells := make([]string, 0, len(row))
		for _, tile := range row {
			if tile.Letter == "" {
				cells = append(cells, styleEmpty.Render(" · "))
				continue
			}
			cells = append(cells, markStyle(tile.Mark).Render(" "+tile.Letter+" "))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
	return b.String()
}

func renderCelebration(c *play.Celebration) string {
	var b strings.Builder
	for r := 0; r < play.CelebrationRows; r++ {
		cells := make([]string, 0, play.CelebrationCols)
		for col := 0; col < play.CelebrationCols; col++ {
			letter := c.Tiles[r*play.CelebrationCols+col]
			if letter == "" {
				cells = append(cells, "   ")
				continue
			}
			cells = append(cells, styleHeart.Render(" "+letter+" "))
		}
		b.WriteString(strings.Join(cells, ""))
		b.WriteString("\n")
	}
	return b.String()
}

func renderKeys(rows [][]play.Key) string {
	var b strings.Builder
	for _, row := range rows {
		cells := make([]string, 0, len(row))
		for _, k := range row {
			label := k.Key
			switch label {
			case "ENTER":
				label = "⏎"
			case "DELETE":
				label = "⌫"
			}
			cells = append(cells, markStyle(k.Mark).Render(" "+label+" "))
		}
		b.WriteString(lipgloss.PlaceHorizontal(44, lipgloss.Center, strings.Join(cells, "")))
		b.WriteString("\n")
	}
	return b.String()
}
