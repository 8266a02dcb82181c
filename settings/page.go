package settings

import "exacto/sight"

// Control is one row of a Page.
type Control interface {
	Draw(r Renderer, s sight.Sight, row uint8, active, focused bool)
	Selectable() bool
}

// Button opens another menu, or leaves the page when Open is nil.
type Button struct {
	Label string
	Open  func() Menu
}

func (b Button) Selectable() bool { return true }

func (b Button) Draw(r Renderer, _ sight.Sight, row uint8, active, _ bool) {
	r.RenderText(b.Label, row, styleFor(active, false))
}

// Adjuster edits one sight field. Clicking it toggles focus; while focused
// each detent changes the value by one, Down (clockwise) increasing it.
type Adjuster struct {
	Label  string
	Field  sight.Field
	Format func(v int) string
}

func (a Adjuster) Selectable() bool { return true }

func (a Adjuster) Draw(r Renderer, s sight.Sight, row uint8, active, focused bool) {
	style := styleFor(active, focused)
	r.RenderText(a.Label, row, style)
	r.RenderAdditionalText(a.Format(s.Get(a.Field)), row, style)
}

// TextLine is static text the cursor skips over.
type TextLine struct {
	Text string
}

func (TextLine) Selectable() bool { return false }

func (l TextLine) Draw(r Renderer, _ sight.Sight, row uint8, _, _ bool) {
	r.RenderText(l.Text, row, Normal)
}

// Page is a list of controls with a cursor over the selectable ones.
type Page struct {
	Controls []Control
	Preview  bool // draw the sight preview under the controls

	active  int
	focused bool
}

// NewPage returns a page with the cursor on its first selectable control.
func NewPage(preview bool, controls ...Control) *Page {
	p := &Page{Controls: controls, Preview: preview}
	for i, c := range controls {
		if c.Selectable() {
			p.active = i
			break
		}
	}
	return p
}

// Active returns the index of the control under the cursor.
func (p *Page) Active() int { return p.active }

// Focused reports whether the active adjuster owns the rotor.
func (p *Page) Focused() bool { return p.focused }

func (p *Page) Input(s *sight.Sight, in RotorInput) {
	if p.focused {
		if a, ok := p.Controls[p.active].(Adjuster); ok {
			delta := -1
			if in == Down {
				delta = 1
			}
			s.Adjust(a.Field, delta)
		}
		return
	}

	n := len(p.Controls)
	i := p.active
	for range n {
		i = wrap(i, in, n)
		if p.Controls[i].Selectable() {
			p.active = i
			return
		}
	}
}

func (p *Page) Click(*sight.Sight) Click {
	if len(p.Controls) == 0 {
		return Click{Back: true}
	}
	switch c := p.Controls[p.active].(type) {
	case Adjuster:
		p.focused = !p.focused
	case Button:
		if c.Open == nil {
			return Click{Back: true}
		}
		return Click{Next: c.Open()}
	}
	return Click{}
}

func (p *Page) Draw(r Renderer, s sight.Sight) {
	for i, c := range p.Controls {
		active := i == p.active
		c.Draw(r, s, uint8(i), active, active && p.focused)
	}
	if p.Preview {
		r.RenderSightPreview(s)
	}
}
