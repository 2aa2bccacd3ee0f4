package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"memorypuzzle/internal/gamemode"
	"memorypuzzle/internal/render"
)

var clickButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonRight,
	ebiten.MouseButtonMiddle,
}

// Game adapts the controller to ebiten's loop.
type Game struct {
	ctrl     *gamemode.Controller
	renderer *render.Renderer

	width, height int
}

func NewGame(ctrl *gamemode.Controller, renderer *render.Renderer, width, height int) *Game {
	return &Game{ctrl: ctrl, renderer: renderer, width: width, height: height}
}

// Update: one frame tick at cfg.FPS
func (g *Game) Update() error {
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	in := gamemode.Input{X: x, Y: y}
	for _, b := range clickButtons {
		if inpututil.IsMouseButtonJustReleased(b) {
			in.Clicked = true
		}
	}
	return g.ctrl.Tick(in)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.ctrl.Scene())
}

// Layout: the window is never scaled
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
