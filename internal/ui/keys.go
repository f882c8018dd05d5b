package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"tasklist/internal/config"
)

type keyMap struct {
	Quit    key.Binding
	Up      key.Binding
	Down    key.Binding
	Add     key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	Edit    key.Binding
	Detail  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Yes     key.Binding
	No      key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:    binding("quit", k.Quit),
		Up:      binding("up", k.Up, "up"),
		Down:    binding("down", k.Down, "down"),
		Add:     binding("add", k.Add),
		Toggle:  binding("toggle", k.Toggle),
		Delete:  binding("delete", k.Delete),
		Edit:    binding("edit", k.Edit),
		Detail:  binding("detail", k.Detail),
		Confirm: binding("save", k.Confirm),
		Cancel:  binding("cancel", k.Cancel),
		Yes:     binding("yes", k.Yes),
		No:      binding("no", k.No),
	}
}

func binding(desc string, keys ...string) key.Binding {
	var ks []string
	for _, k := range keys {
		if k != "" {
			ks = append(ks, k)
		}
	}
	if len(ks) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(ks...), key.WithHelp(keyLabel(ks[0]), desc))
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Add, k.Toggle, k.Edit, k.Delete, k.Detail, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// inputKeys is the help shown while a text input has focus.
type inputKeys keyMap

func (k inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

func (k inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
