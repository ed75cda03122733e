package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Start key.Binding
	Stop  key.Binding
	Erase key.Binding
	Exit  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Stop:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "stop")),
		Erase: key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "erase")),
		Exit:  key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "quit")),
		Quit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// stateHelp adapts a fixed binding list to help.KeyMap.
type stateHelp []key.Binding

func (s stateHelp) ShortHelp() []key.Binding {
	return s
}

func (s stateHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{s}
}

func (k keyMap) helpFor(running bool) stateHelp {
	if running {
		return stateHelp{k.Erase, k.Stop, k.Quit}
	}
	return stateHelp{k.Start, k.Exit}
}
