package ui

import (
	"fmt"

	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Scene is the read-only view of a game the renderer draws each frame
type Scene interface {
	Trail() []types.Point
	Velocity() types.Velocity
	Food() types.Point
	Score() int
	HighScore() int
	Grid() types.Grid
	Paused() bool
}

const (
	buttonPadding = 4
	cellGap       = 2 // tiles are drawn tileSize-2 wide
)

var (
	boardColor = rl.Black
	snakeColor = rl.Lime
	foodColor  = rl.Red
	hudColor   = rl.DarkGray
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	hudHeight    int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer(hudHeight int) *Renderer {
	r := &Renderer{hudHeight: int32(hudHeight)}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.offsetX = 0
	r.offsetY = r.hudHeight
}

// BoardViewport is the pixel area left for the board below the HUD strip
func (r *Renderer) BoardViewport() (int, int) {
	return int(r.screenWidth), int(r.screenHeight - r.hudHeight)
}

// PauseButton is the on-screen play/pause control in the HUD
func (r *Renderer) PauseButton() rl.Rectangle {
	size := float32(r.hudHeight - 2*buttonPadding)
	return rl.NewRectangle(float32(r.screenWidth)-size-buttonPadding, buttonPadding, size, size)
}

func (r *Renderer) Draw(s Scene) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(boardColor)

	grid := s.Grid()
	tile := int32(grid.TileSize)
	canvasW, canvasH := grid.CanvasSize()
	rl.DrawRectangleLines(r.offsetX, r.offsetY, int32(canvasW), int32(canvasH), rl.DarkGray)

	food := s.Food()
	r.drawCell(food, tile, foodColor)

	trail := s.Trail()
	for _, p := range trail {
		r.drawCell(p, tile, snakeColor)
	}
	if len(trail) > 0 {
		r.drawHeading(trail[len(trail)-1], s.Velocity(), tile)
	}

	r.drawHUD(s)
	if s.Paused() {
		r.drawPausedBanner()
	}
	rl.EndDrawing()
}

func (r *Renderer) drawCell(p types.Point, tile int32, color rl.Color) {
	rl.DrawRectangle(
		r.offsetX+int32(p.X)*tile,
		r.offsetY+int32(p.Y)*tile,
		tile-cellGap, tile-cellGap, color)
}

// drawHeading marks the head with a small triangle pointing along v
func (r *Renderer) drawHeading(head types.Point, v types.Velocity, tile int32) {
	size := float32(tile - cellGap)
	x := float32(r.offsetX + int32(head.X)*tile)
	y := float32(r.offsetY + int32(head.Y)*tile)
	half := size / 2
	quarter := size / 4

	var a, b, c rl.Vector2
	switch {
	case v.X > 0:
		a = rl.NewVector2(x+size-quarter, y+half)
		b = rl.NewVector2(x+half, y+quarter)
		c = rl.NewVector2(x+half, y+size-quarter)
	case v.X < 0:
		a = rl.NewVector2(x+quarter, y+half)
		b = rl.NewVector2(x+half, y+size-quarter)
		c = rl.NewVector2(x+half, y+quarter)
	case v.Y > 0:
		a = rl.NewVector2(x+half, y+size-quarter)
		b = rl.NewVector2(x+size-quarter, y+half)
		c = rl.NewVector2(x+quarter, y+half)
	default:
		a = rl.NewVector2(x+half, y+quarter)
		b = rl.NewVector2(x+quarter, y+half)
		c = rl.NewVector2(x+size-quarter, y+half)
	}
	// raylib wants counter-clockwise vertex order
	rl.DrawTriangle(a, b, c, rl.DarkGreen)
}

func (r *Renderer) drawHUD(s Scene) {
	rl.DrawRectangle(0, 0, r.screenWidth, r.hudHeight, hudColor)

	fontSize := r.hudHeight * 2 / 3
	textY := (r.hudHeight - fontSize) / 2
	rl.DrawText(fmt.Sprintf("Score: %d", s.Score()), 10, textY, fontSize, rl.White)
	rl.DrawText(fmt.Sprintf("Best: %d", s.HighScore()), 10+fontSize*7, textY, fontSize, rl.LightGray)

	btn := r.PauseButton()
	rl.DrawRectangleLinesEx(btn, 2, rl.White)
	if s.Paused() {
		// play
		rl.DrawTriangle(
			rl.NewVector2(btn.X+btn.Width/4, btn.Y+btn.Height/4),
			rl.NewVector2(btn.X+btn.Width/4, btn.Y+btn.Height*3/4),
			rl.NewVector2(btn.X+btn.Width*3/4, btn.Y+btn.Height/2),
			rl.White)
		return
	}
	barW := btn.Width / 6
	rl.DrawRectangleRec(rl.NewRectangle(btn.X+btn.Width/4, btn.Y+btn.Height/4, barW, btn.Height/2), rl.White)
	rl.DrawRectangleRec(rl.NewRectangle(btn.X+btn.Width*3/4-barW, btn.Y+btn.Height/4, barW, btn.Height/2), rl.White)
}

func (r *Renderer) drawPausedBanner() {
	const text = "Paused - press Space"
	fontSize := r.hudHeight
	width := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.screenWidth-width)/2, r.offsetY+(r.screenHeight-r.offsetY-fontSize)/2, fontSize, rl.White)
}
