package settings

import "exacto/sight"

// Option is one row of a NavigationMenu.
type Option struct {
	Label string
	Open  func() Menu
}

// NavigationMenu lists Options followed by a Back row.
type NavigationMenu struct {
	Options  []Option
	selected int
}

// Selected returns the cursor row; len(Options) is the Back row.
func (m *NavigationMenu) Selected() int { return m.selected }

func (m *NavigationMenu) Input(_ *sight.Sight, in RotorInput) {
	rows := len(m.Options) + 1
	m.selected = wrap(m.selected, in, rows)
}

func (m *NavigationMenu) Click(*sight.Sight) Click {
	if m.selected < len(m.Options) {
		return Click{Next: m.Options[m.selected].Open()}
	}
	return Click{Back: true}
}

func (m *NavigationMenu) Draw(r Renderer, _ sight.Sight) {
	for i, o := range m.Options {
		r.RenderText(o.Label, uint8(i), styleFor(i == m.selected, false))
	}
	r.RenderText("Back", uint8(len(m.Options)), styleFor(m.selected == len(m.Options), false))
}

// wrap moves i one row for Up (+1) or Down (-1) in a list of n rows.
func wrap(i int, in RotorInput, n int) int {
	if n <= 0 {
		return 0
	}
	if in == Up {
		i++
	} else {
		i--
	}
	return ((i % n) + n) % n
}

func styleFor(active, focused bool) TextType {
	switch {
	case active && focused:
		return Selected
	case active:
		return Highlighted
	}
	return Normal
}
