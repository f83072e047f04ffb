package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/automoto/fightcore/assets/animations"
	"github.com/automoto/fightcore/catalog"
	"github.com/automoto/fightcore/config"
)

// frameRow is one line of a frame table.
type frameRow struct {
	Frame  int
	Sprite int
	Phase  animations.Phase
	Tick   int           // first simulation step the frame is shown on
	At     time.Duration // Tick as wall time
	Hitbox bool
}

func frameRows(move catalog.Move, tickRate int) []frameRow {
	clip := move.Clip
	step := animations.FrameDuration(1, tickRate)
	rows := make([]frameRow, len(clip.Frames))
	for i, sprite := range clip.Frames {
		phase := animations.PhaseAt(clip.Window, i)
		rows[i] = frameRow{
			Frame:  i,
			Sprite: sprite,
			Phase:  phase,
			Tick:   i * clip.Rate,
			At:     time.Duration(i*clip.Rate) * step,
			Hitbox: move.Attack != nil && phase == animations.PhaseActive,
		}
	}
	return rows
}

// writeCharacter prints a summary of ch followed by a frame table for every
// state selected by only (all states when only is StateNone).
func writeCharacter(out io.Writer, ch *catalog.Character, tickRate int, only config.StateID) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\thealth %d\tspeed %.1f\thurtbox %gx%g\n",
		ch.Name, ch.Health, ch.Speed, ch.Hurtbox.Width, ch.Hurtbox.Height)

	for state := config.Idle; state < config.StateCount; state++ {
		if only != config.StateNone && state != only {
			continue
		}
		move, ok := ch.Move(state)
		if !ok {
			continue
		}
		clip := move.Clip
		total := animations.FrameDuration(len(clip.Frames)*clip.Rate, tickRate)
		fmt.Fprintf(tw, "\n%s\t%d frames\trate %d\t%s\n", state, len(clip.Frames), clip.Rate, total)
		if a := move.Attack; a != nil {
			fmt.Fprintf(tw, "\tdamage %d\thit_stun %d (%s)\thitbox %+v\n",
				a.Damage, a.HitStun, animations.FrameDuration(a.HitStun, tickRate), a.Hitbox)
		}
		fmt.Fprintln(tw, "\tframe\tsprite\tphase\ttick\tat\thitbox")
		for _, r := range frameRows(move, tickRate) {
			box := ""
			if r.Hitbox {
				box = "open"
			}
			fmt.Fprintf(tw, "\t%d\t%d\t%s\t%d\t%s\t%s\n", r.Frame, r.Sprite, r.Phase, r.Tick, r.At, box)
		}
	}
	fmt.Fprintln(tw)
	return tw.Flush()
}
