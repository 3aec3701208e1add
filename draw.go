package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/ledgeclimb/character"
	"github.com/milk9111/ledgeclimb/ecs"
	"github.com/milk9111/ledgeclimb/ecs/component"
	"golang.org/x/image/colornames"
)

var (
	backgroundColor = color.NRGBA{R: 0x1d, G: 0x22, B: 0x2b, A: 0xff}
	triggerColor    = colornames.Gold
	playerColor     = colornames.Crimson
	climbColor      = colornames.Orange
	probeColor      = colornames.Lime
)

func (g *Game) drawLevel(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	if g.scene == nil {
		return
	}

	for _, b := range g.scene.Level.Boxes {
		x, y, w, h := g.camera.RectToScreen(b.MinX, b.MinZ, b.MaxX, b.MaxZ)
		vector.DrawFilledRect(screen, x, y, w, h, b.BoxColor(colornames.Dimgray), false)
	}

	ecs.ForEach(g.scene.World, component.TriggerComponent.Kind(), func(e ecs.Entity, t *component.Trigger) {
		x, y, w, h := g.camera.RectToScreen(t.MinX, t.MinZ, t.MaxX, t.MaxZ)
		vector.StrokeRect(screen, x, y, w, h, 2, triggerColor, false)
	})
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	m := g.motor()
	actor := g.actor()
	if m == nil || actor == nil {
		return
	}

	params := m.Params()
	pos := m.Position()
	x, y, w, h := g.camera.RectToScreen(pos.X()-params.Radius, pos.Z()-params.HalfHeight, pos.X()+params.Radius, pos.Z()+params.HalfHeight)

	clr := color.Color(playerColor)
	if actor.Climb().Phase != character.PhaseIdle {
		clr = climbColor
	}
	vector.DrawFilledRect(screen, x, y, w, h, clr, false)

	fx, fz := pos.X()+m.Forward().X()*params.Radius, pos.Z()+params.HalfHeight*0.5
	sx, sy := g.camera.ToScreen(fx, fz)
	vector.DrawFilledCircle(screen, sx, sy, 4, colornames.White, true)

	if !g.opts.Debug {
		return
	}
	if grab, ok := actor.CanClimbLedge(); ok {
		gx, gy := g.camera.ToScreen(grab.X(), grab.Z())
		vector.StrokeCircle(screen, gx, gy, 8, 2, probeColor, true)
	}
	if snap := actor.Climb(); snap.Phase == character.PhaseClimbing {
		px, py := g.camera.ToScreen(snap.Pending.X(), snap.Pending.Z())
		vector.StrokeLine(screen, sx, sy, px, py, 2, probeColor, true)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	actor := g.actor()
	m := g.motor()
	if actor == nil || m == nil {
		return
	}

	abilities := actor.Abilities()
	snap := actor.Climb()

	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&b, "mode: %s  phase: %s", m.MovementMode(), snap.Phase)
	if snap.Phase == character.PhaseLerpingToLedge {
		fmt.Fprintf(&b, " (%.0f%%)", snap.Alpha*100)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "double jump: %v (charge %v)  sprint: %v  max speed: %.0f\n",
		abilities.HasDoubleJump, abilities.CanDoubleJump, abilities.HasSprint, m.MaxSpeed())
	if mont := g.scene.Montage(); mont != nil {
		if name, progress := mont.Player.Current(); name != "" {
			fmt.Fprintf(&b, "montage: %s %.0f%%\n", name, progress*100)
		}
	}
	if g.opts.Debug {
		pos := m.Position()
		fmt.Fprintf(&b, "pos: (%.1f, %.1f, %.1f)  vel: %v\n", pos.X(), pos.Y(), pos.Z(), m.Velocity())
	}
	if g.toastTimer > 0 {
		fmt.Fprintf(&b, "\n%s\n", g.toast)
	}
	b.WriteString("\nA/D move  SPACE jump  SHIFT sprint  ESC pause")

	ebitenutil.DebugPrint(screen, b.String())
}
