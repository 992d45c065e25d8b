package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Prev     key.Binding
	Next     key.Binding
	Confirm  key.Binding
	Submit   key.Binding
	Goto     key.Binding
	Force    key.Binding
	Dismiss  key.Binding
	Retry    key.Binding
	Menu     key.Binding
	Switch   key.Binding
	Import   key.Binding
	Trivia   key.Binding
	Quit     key.Binding
	ForceEnd key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "focus up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "focus down")),
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Confirm:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		Submit:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "submit")),
		Goto:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "go to question")),
		Force:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "submit anyway")),
		Dismiss:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Retry:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		Menu:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "main menu")),
		Switch:   key.NewBinding(key.WithKeys("v", "tab"), key.WithHelp("v", "results/review")),
		Import:   key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import file")),
		Trivia:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "load trivia")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceEnd: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func helpLine(bindings ...key.Binding) string {
	line := ""
	for idx, binding := range bindings {
		help := binding.Help()
		if idx > 0 {
			line += "  "
		}
		line += help.Key + " " + help.Desc
	}
	return line
}
