package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"exacto/ballistic"
	"exacto/hal"
	"exacto/sight"
)

var errBadSweep = errors.New("drifttable: bad range sweep")

type row struct {
	Range  int
	Drift  ballistic.Drift[ballistic.Scalar]
	Steps  int
	PixelX int32
	PixelY int32
}

// sweep solves cfg at every `every` meters from `from` to `to` inclusive.
func sweep(cfg ballistic.Config[ballistic.Scalar], from, to, every int) ([]row, error) {
	if every <= 0 || from < sight.MinRange || to > sight.MaxRange || from > to {
		return nil, fmt.Errorf("%w: from=%d to=%d every=%d", errBadSweep, from, to, every)
	}

	rows := make([]row, 0, (to-from)/every+1)
	for r := from; r <= to; r += every {
		rng := ballistic.ScalarFromInt(int32(r))
		d, tr := ballistic.CalculateTrace(&cfg, rng)
		rows = append(rows, row{
			Range:  r,
			Drift:  d,
			Steps:  tr.Steps,
			PixelX: sight.Offset(d.X, rng, hal.ScreenWidth),
			PixelY: sight.Offset(d.Y, rng, hal.ScreenHeight),
		})
	}
	return rows, nil
}

func writeTable(w io.Writer, rows []row) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANGE\tX\tX (m)\tY\tY (m)\tSTEPS\tPX\tPY")
	for _, r := range rows {
		fmt.Fprintf(tw, "%dm\t%v\t%.6f\t%v\t%.6f\t%d\t%d\t%d\n",
			r.Range,
			r.Drift.X, ballistic.ScalarFloat(r.Drift.X),
			r.Drift.Y, ballistic.ScalarFloat(r.Drift.Y),
			r.Steps, r.PixelX, r.PixelY)
	}
	return tw.Flush()
}
