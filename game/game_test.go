package game

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// newTestGame builds a game with a fixed seed and a manual clock.
func newTestGame(width, height int, autostart bool) (*Game, *time.Time) {
	now := time.Unix(0, 0)
	g := NewGame(width, height, Options{
		Seed:      1,
		AutoStart: autostart,
		Now:       func() time.Time { return now },
	})
	return g, &now
}

// farFood parks the food in a corner the tests never steer towards
var farFood = types.Point{X: 0, Y: 9}

func TestNewGame_InitialState(t *testing.T) {
	g, _ := newTestGame(210, 205, false)
	grid := g.Grid()
	if grid.Width != 10 || grid.Height != 10 || grid.TileSize != types.DefaultTileSize {
		t.Fatalf("grid = %+v, want 10x10 tile %d", grid, types.DefaultTileSize)
	}
	if g.Head() != (types.Point{X: 5, Y: 5}) {
		t.Fatalf("head = %v, want (5,5)", g.Head())
	}
	if len(g.Trail()) != 5 || g.TargetLength() != 5 {
		t.Fatalf("trail %d / target %d, want 5 / 5", len(g.Trail()), g.TargetLength())
	}
	if !g.Paused() || g.State() != Paused {
		t.Fatal("game should open paused")
	}
	if g.Score() != 0 {
		t.Fatalf("score = %d, want 0", g.Score())
	}
	if !grid.Contains(g.Food()) {
		t.Fatalf("food %v outside grid", g.Food())
	}
	if g.UUID == "" {
		t.Fatal("game should carry a session id")
	}
}

func TestNewGame_TinyViewportFallsBackToOneCell(t *testing.T) {
	g, _ := newTestGame(5, 5, false)
	if grid := g.Grid(); grid.Width != 1 || grid.Height != 1 {
		t.Fatalf("grid = %dx%d, want 1x1", grid.Width, grid.Height)
	}
}

func TestAdvance_BoundaryIsGameOver(t *testing.T) {
	g, _ := newTestGame(200, 200, false)
	g.snake = &entity.Snake{
		Head:         types.Point{X: 9, Y: 5},
		Body:         []types.Point{{X: 7, Y: 5}, {X: 8, Y: 5}, {X: 9, Y: 5}},
		TargetLength: 3,
	}
	if !g.SetVelocity(types.Right) {
		t.Fatal("first velocity should be accepted")
	}
	if got := g.Advance(); got != GameOver {
		t.Fatalf("advance = %v, want game-over", got)
	}
	if g.LastCollision() != manager.WallCollision {
		t.Fatalf("collision = %v, want wall", g.LastCollision())
	}
	if len(g.Trail()) != 3 {
		t.Fatal("game over must not touch the trail")
	}
}

func TestAdvance_SelfCollisionIsGameOver(t *testing.T) {
	g, _ := newTestGame(200, 200, false)
	g.snake = &entity.Snake{
		Head:         types.Point{X: 5, Y: 7},
		Body:         []types.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}},
		TargetLength: 3,
	}
	g.SetVelocity(types.Up)
	if got := g.Advance(); got != GameOver {
		t.Fatalf("advance into (5,6) = %v, want game-over", got)
	}
	if g.LastCollision() != manager.SelfCollision {
		t.Fatalf("collision = %v, want self", g.LastCollision())
	}
}

func TestAdvance_EatingFoodGrows(t *testing.T) {
	g, _ := newTestGame(200, 200, false)
	var scores []int
	g.OnScoreChanged(func(s int) { scores = append(scores, s) })

	g.foodMgr.SetFood(types.Point{X: 5, Y: 4})
	if got := g.Advance(); got != AteFood {
		t.Fatalf("advance = %v, want ate-food", got)
	}
	if g.TargetLength() != 6 {
		t.Fatalf("target = %d, want 6", g.TargetLength())
	}
	if g.Score() != 1 || g.HighScore() != 1 {
		t.Fatalf("score %d best %d, want 1 and 1", g.Score(), g.HighScore())
	}
	if len(scores) != 1 || scores[0] != 1 {
		t.Fatalf("score notifications = %v, want [1]", scores)
	}
	if !g.Grid().Contains(g.Food()) {
		t.Fatalf("respawned food %v outside grid", g.Food())
	}
	// growth shows up on the following move
	if len(g.Trail()) != 5 {
		t.Fatalf("trail = %d right after eating, want 5", len(g.Trail()))
	}
	g.foodMgr.SetFood(farFood)
	if got := g.Advance(); got != Continues {
		t.Fatalf("advance = %v, want continues", got)
	}
	if len(g.Trail()) != 6 {
		t.Fatalf("trail = %d, want 6", len(g.Trail()))
	}
}

func TestSetVelocity_ReversalLeavesStateUnchanged(t *testing.T) {
	g, _ := newTestGame(200, 200, false)
	g.foodMgr.SetFood(farFood)
	if g.SetVelocity(types.Down) {
		t.Fatal("reversal should be rejected")
	}
	g.Advance()
	if g.Head() != (types.Point{X: 5, Y: 4}) {
		t.Fatalf("head = %v, want (5,4)", g.Head())
	}
	if g.Velocity() != types.Up {
		t.Fatalf("velocity = %v, want Up", g.Velocity())
	}
}

func TestTick_PausedLeavesStateFrozen(t *testing.T) {
	g, _ := newTestGame(200, 200, false)
	g.foodMgr.SetFood(farFood)
	before := g.Trail()
	head := g.Head()

	g.Pause()
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	if g.Head() != head {
		t.Fatalf("head moved to %v while paused", g.Head())
	}
	after := g.Trail()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("trail changed while paused: %v -> %v", before, after)
		}
	}

	g.Resume()
	g.Tick()
	if g.Head() != head.Add(types.Up) {
		t.Fatalf("head = %v after one tick, want %v", g.Head(), head.Add(types.Up))
	}
}

func TestUpdate_ClockDrivesTicks(t *testing.T) {
	g, now := newTestGame(200, 200, true)
	g.foodMgr.SetFood(farFood)

	*now = now.Add(50 * time.Millisecond)
	if g.Update() {
		t.Fatal("tick fired early")
	}
	*now = now.Add(50 * time.Millisecond)
	if !g.Update() {
		t.Fatal("tick should fire after 100ms")
	}
	*now = now.Add(time.Second)
	g.Update()
	if g.Head() != (types.Point{X: 5, Y: 3}) {
		t.Fatalf("head = %v, want (5,3) after two ticks", g.Head())
	}

	g.TogglePause()
	*now = now.Add(time.Second)
	if g.Update() {
		t.Fatal("paused game ticked")
	}
}

func TestTick_GameOverRestartsInPlace(t *testing.T) {
	g, _ := newTestGame(200, 200, true)
	g.foodMgr.SetFood(farFood)
	var scores []int
	g.OnScoreChanged(func(s int) { scores = append(scores, s) })

	for i := 0; i < 6; i++ {
		g.Tick()
	}
	if g.GamesPlayed() != 1 {
		t.Fatalf("games played = %d, want 1", g.GamesPlayed())
	}
	if g.LastCollision() != manager.WallCollision {
		t.Fatalf("collision = %v, want wall", g.LastCollision())
	}
	if g.Head() != (types.Point{X: 5, Y: 5}) || g.TargetLength() != 5 {
		t.Fatalf("restart left head %v target %d", g.Head(), g.TargetLength())
	}
	if g.Paused() {
		t.Fatal("clock should keep running across a game over")
	}
	if len(scores) != 1 || scores[0] != 0 {
		t.Fatalf("score notifications = %v, want [0]", scores)
	}
}

func TestRestart_KeepsClockState(t *testing.T) {
	g, _ := newTestGame(200, 200, false)
	g.foodMgr.SetFood(types.Point{X: 5, Y: 4})
	g.Advance()
	g.Restart()
	if g.Score() != 0 || g.HighScore() != 1 {
		t.Fatalf("score %d best %d, want 0 and 1", g.Score(), g.HighScore())
	}
	if !g.Paused() {
		t.Fatal("restart should not start the clock")
	}
}

func TestResize_RespawnsFoodOutsideNewBounds(t *testing.T) {
	g, _ := newTestGame(400, 400, false)
	g.foodMgr.SetFood(types.Point{X: 15, Y: 15})
	head := g.Head()

	if !g.Resize(200, 200) {
		t.Fatal("200x200 resize rejected")
	}
	if grid := g.Grid(); grid.Width != 10 || grid.Height != 10 {
		t.Fatalf("grid = %dx%d, want 10x10", grid.Width, grid.Height)
	}
	if !g.Grid().Contains(g.Food()) {
		t.Fatalf("food %v left outside 10x10", g.Food())
	}
	if g.Head() != head {
		t.Fatal("resize must not move the snake")
	}

	if g.Resize(10, 500) {
		t.Fatal("viewport narrower than a tile should be ignored")
	}
	if grid := g.Grid(); grid.Width != 10 || grid.Height != 10 {
		t.Fatalf("ignored resize changed grid to %dx%d", grid.Width, grid.Height)
	}
}

func TestAdvance_RandomPlayKeepsTrailConsistent(t *testing.T) {
	g, _ := newTestGame(600, 400, true)
	rng := rand.New(rand.NewSource(99))
	dirs := []types.Velocity{types.Up, types.Down, types.Left, types.Right}

	games := 0
	for step := 0; step < 20000; step++ {
		g.SetVelocity(dirs[rng.Intn(len(dirs))])
		if g.Advance() == GameOver {
			games++
			g.reset()
			continue
		}
		trail := g.Trail()
		target := g.TargetLength()
		if len(trail) > target || len(trail) < target-1 {
			t.Fatalf("step %d: trail %d with target %d", step, len(trail), target)
		}
		seen := make(map[types.Point]bool, len(trail))
		for _, p := range trail {
			if seen[p] {
				t.Fatalf("step %d: duplicate cell %v in %v", step, p, trail)
			}
			seen[p] = true
		}
		if trail[len(trail)-1] != g.Head() {
			t.Fatalf("step %d: head %v is not the newest segment", step, g.Head())
		}
	}
	if games == 0 {
		t.Fatal("random play never ended a game")
	}
}

func TestNewGame_LogsWithSessionPrefix(t *testing.T) {
	var buf bytes.Buffer
	g := NewGame(200, 200, Options{Logger: log.New(&buf, "", 0)})
	if !strings.Contains(buf.String(), "[snake "+g.UUID[:8]+"]") {
		t.Fatalf("log output %q lacks session prefix", buf.String())
	}
}
