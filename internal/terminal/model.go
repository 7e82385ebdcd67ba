package terminal

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/tracknav/internal/keymap"
)

// model only displays frames; all state lives in the loop.
type model struct {
	t     *Terminal
	frame string
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.t.resized(msg.Width, msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, interrupt) {
			m.t.cancel()
			return m, nil
		}
		for _, k := range translate(msg) {
			m.t.pushKey(k)
		}
	case frameMsg:
		m.frame = string(msg)
	}
	return m, nil
}

func (m model) View() string {
	return m.frame
}

// translate maps a Bubble Tea key event to parser keys. Pasted text yields
// one key per rune.
func translate(msg tea.KeyMsg) []keymap.Key {
	if msg.Alt {
		return []keymap.Key{{Type: keymap.KeyOther}}
	}
	switch msg.Type { //nolint:exhaustive // everything else is KeyOther
	case tea.KeyRunes:
		keys := make([]keymap.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, keymap.Rune(r))
		}
		return keys
	case tea.KeySpace:
		return []keymap.Key{keymap.Rune(' ')}
	case tea.KeyEnter:
		return []keymap.Key{keymap.Enter}
	case tea.KeyEsc:
		return []keymap.Key{keymap.Escape}
	case tea.KeyBackspace:
		return []keymap.Key{keymap.Backspace}
	}
	return []keymap.Key{{Type: keymap.KeyOther}}
}
