// Package settings implements the rotor-driven settings menu of the sight.
//
// The encoder is polled once per frame. Rotation moves the cursor (or
// changes a focused value) and a press activates the current row. With no
// menu open, rotation is ignored and a press opens the main menu.
package settings

import "exacto/sight"

// RotorInput is one detent of rotor movement.
type RotorInput uint8

const (
	Up RotorInput = iota
	Down
)

// Click is what a menu asks the State to do after a press.
type Click struct {
	Next Menu // open Next on top of the current menu
	Back bool // close the current menu
}

// Menu is one screen of the settings tree.
type Menu interface {
	Input(s *sight.Sight, in RotorInput)
	Click(s *sight.Sight) Click
	Draw(r Renderer, s sight.Sight)
}

const maxDepth = 4

// State tracks the open menus and the last encoder reading.
type State struct {
	stack   [maxDepth]Menu
	depth   int
	rotor   int
	pressed bool
}

// NewState returns a closed menu primed with the encoder's current reading
// so the first Update does not see a spurious rotation.
func NewState(position int, pressed bool) *State {
	return &State{rotor: position, pressed: pressed}
}

// IsOpen reports whether any menu is shown.
func (st *State) IsOpen() bool { return st.depth > 0 }

// Current returns the menu on top, or nil when closed.
func (st *State) Current() Menu {
	if st.depth == 0 {
		return nil
	}
	return st.stack[st.depth-1]
}

// Update feeds one encoder reading and reports whether the screen must be
// redrawn. A press is acted on when the button goes down; a lower position
// than last time is Up and a higher one is Down.
func (st *State) Update(position int, pressed bool, s *sight.Sight) bool {
	wasPressed := st.pressed
	st.pressed = pressed
	if pressed {
		st.rotor = position
		if wasPressed {
			return false
		}
		return st.press(s)
	}

	var in RotorInput
	switch {
	case position < st.rotor:
		in = Up
	case position > st.rotor:
		in = Down
	default:
		return false
	}
	st.rotor = position

	m := st.Current()
	if m == nil {
		return false
	}
	m.Input(s, in)
	return true
}

// Draw renders the menu on top. It draws nothing when closed.
func (st *State) Draw(r Renderer, s sight.Sight) {
	if m := st.Current(); m != nil {
		m.Draw(r, s)
	}
}

// Close drops every open menu.
func (st *State) Close() {
	for i := range st.stack {
		st.stack[i] = nil
	}
	st.depth = 0
}

// Reset closes the menu and takes the given reading as the new baseline.
func (st *State) Reset(position int, pressed bool) {
	st.Close()
	st.rotor = position
	st.pressed = pressed
}

func (st *State) press(s *sight.Sight) bool {
	m := st.Current()
	if m == nil {
		st.push(MainMenu())
		return true
	}

	c := m.Click(s)
	switch {
	case c.Next != nil:
		st.push(c.Next)
	case c.Back:
		st.depth--
		st.stack[st.depth] = nil
	}
	return true
}

func (st *State) push(m Menu) {
	if st.depth == maxDepth {
		return
	}
	st.stack[st.depth] = m
	st.depth++
}
