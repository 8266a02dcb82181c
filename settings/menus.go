package settings

import (
	"strconv"

	"exacto/internal/buildinfo"
	"exacto/sight"
)

// MainMenu is the root of the settings tree.
func MainMenu() Menu {
	return &NavigationMenu{Options: []Option{
		{Label: "Sight", Open: SightPage},
		{Label: "Ballistics", Open: BallisticsPage},
		{Label: "About", Open: AboutPage},
	}}
}

// SightPage adjusts the range and the zero offsets.
func SightPage() Menu {
	return NewPage(true,
		Adjuster{Label: "Range", Field: sight.FieldRange, Format: withUnit("m")},
		Adjuster{Label: "X zero", Field: sight.FieldXZero, Format: signed},
		Adjuster{Label: "Y zero", Field: sight.FieldYZero, Format: signed},
		Button{Label: "Back"},
	)
}

// BallisticsPage adjusts the inputs of the drift engine.
func BallisticsPage() Menu {
	return NewPage(false,
		Adjuster{Label: "Energy", Field: sight.FieldEnergy, Format: tenths("J")},
		Adjuster{Label: "Spin", Field: sight.FieldSpin, Format: withUnit("r/s")},
		Button{Label: "Back"},
	)
}

// AboutPage shows the build identity.
func AboutPage() Menu {
	return NewPage(false,
		TextLine{Text: "Name: " + buildinfo.Name},
		TextLine{Text: "Firmware: " + buildinfo.Short()},
		TextLine{Text: "Author: " + buildinfo.Author},
		Button{Label: "Exit"},
	)
}

func withUnit(unit string) func(int) string {
	return func(v int) string { return strconv.Itoa(v) + " " + unit }
}

func signed(v int) string {
	if v > 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

func tenths(unit string) func(int) string {
	return func(v int) string {
		neg := v < 0
		if neg {
			v = -v
		}
		s := strconv.Itoa(v/10) + "." + strconv.Itoa(v%10) + " " + unit
		if neg {
			return "-" + s
		}
		return s
	}
}
