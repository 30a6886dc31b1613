package game

import (
	"fmt"
	"io"
	"log"
	"time"

	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
)

// Result is the outcome of a single advance
type Result int

const (
	Continues Result = iota
	AteFood
	GameOver
)

func (r Result) String() string {
	switch r {
	case AteFood:
		return "ate-food"
	case GameOver:
		return "game-over"
	default:
		return "continues"
	}
}

// Options configures a Game. Zero fields fall back to the defaults in types.
type Options struct {
	TileSize      int
	TicksPerSec   int
	InitialLength int
	Seed          uint64
	AutoStart     bool
	Logger        *log.Logger
	Now           func() time.Time
}

// Game is one play session: the board, the snake, the food, the score and the
// clock driving them. All methods must be called from a single goroutine;
// input handlers only queue a velocity that the next tick consumes.
type Game struct {
	UUID  string
	opts  Options
	grid  types.Grid
	snake *entity.Snake

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager
	clock        *Clock

	logger        *log.Logger
	now           func() time.Time
	ticks         int
	lastCollision manager.CollisionType
}

// NewGame lays out a board for a viewport of width x height pixels. The game
// starts paused unless opts.AutoStart is set.
func NewGame(width, height int, opts Options) *Game {
	if opts.TileSize <= 0 {
		opts.TileSize = types.DefaultTileSize
	}
	if opts.TicksPerSec <= 0 {
		opts.TicksPerSec = types.DefaultTicksPerSec
	}
	if opts.InitialLength <= 0 {
		opts.InitialLength = types.DefaultInitialLength
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	gameUUID := uuid.New().String()
	logger := log.New(io.Discard, "", 0)
	if opts.Logger != nil {
		logger = log.New(opts.Logger.Writer(), fmt.Sprintf("[snake %s] ", gameUUID[:8]), opts.Logger.Flags())
	}

	grid, ok := types.NewGrid(width, height, opts.TileSize)
	if !ok {
		grid = types.Grid{Width: 1, Height: 1, TileSize: opts.TileSize}
	}

	g := &Game{
		UUID:         gameUUID,
		opts:         opts,
		grid:         grid,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(grid, opts.Seed),
		stateMgr:     manager.NewStateManager(),
		logger:       logger,
		now:          opts.Now,
	}
	g.clock = NewClock(opts.TicksPerSec, g.Tick)
	g.snake = g.newSnake()

	g.logger.Printf("session %s: grid %dx%d, tile %d, %d ticks/s", gameUUID, grid.Width, grid.Height, grid.TileSize, opts.TicksPerSec)
	if opts.AutoStart {
		g.Resume()
	}
	return g
}

func (g *Game) newSnake() *entity.Snake {
	head := types.Point{X: g.grid.Width / 2, Y: g.grid.Height / 2}
	return entity.NewSnake(head, g.opts.InitialLength)
}

// Advance moves the snake one cell along its queued velocity
func (g *Game) Advance() Result {
	newHead := g.snake.NextHead()

	if c := g.collisionMgr.CheckCollision(newHead, g.snake); c != manager.NoCollision {
		g.lastCollision = c
		return GameOver
	}

	g.snake.Move(newHead)

	if g.collisionMgr.IsFoodCollision(newHead, g.foodMgr.GetFood()) {
		g.snake.Grow()
		g.stateMgr.AddPoint()
		g.foodMgr.Respawn()
		return AteFood
	}
	return Continues
}

// Tick runs one update cycle. It does nothing while the clock is paused.
// A game over restarts the game in place; the clock keeps running.
func (g *Game) Tick() {
	if !g.clock.Running() {
		return
	}
	g.ticks++
	if g.Advance() == GameOver {
		g.stateMgr.RecordGameOver()
		g.logger.Printf("game over (%s collision) after %d ticks, score %d", g.lastCollision, g.ticks, g.stateMgr.GetScore())
		g.reset()
	}
}

// Update polls the clock; the frame loop calls it once per frame.
// It reports whether a tick ran.
func (g *Game) Update() bool {
	return g.clock.Poll(g.now())
}

func (g *Game) reset() {
	g.snake = g.newSnake()
	g.foodMgr.Respawn()
	g.ticks = 0
	g.stateMgr.Reset()
}

// Restart discards the current snake, food and score and starts over.
// The clock state is left untouched.
func (g *Game) Restart() {
	g.logger.Printf("restart requested, score %d", g.stateMgr.GetScore())
	g.reset()
}

// SetVelocity queues a direction change, subject to the reversal guard
func (g *Game) SetVelocity(v types.Velocity) bool {
	return g.snake.SetDirection(v)
}

// TogglePause flips between running and paused
func (g *Game) TogglePause() {
	if g.clock.Running() {
		g.Pause()
	} else {
		g.Resume()
	}
}

func (g *Game) Pause() {
	if !g.clock.Running() {
		return
	}
	g.clock.Pause()
	g.logger.Printf("paused at tick %d", g.ticks)
}

func (g *Game) Resume() {
	if g.clock.Running() {
		return
	}
	g.clock.Resume(g.now())
	g.logger.Printf("resumed at tick %d", g.ticks)
}

func (g *Game) Paused() bool {
	return !g.clock.Running()
}

// Resize recomputes the grid for a new viewport. Viewports smaller than one
// tile are ignored. Food left outside the new bounds is respawned; the snake
// is not moved.
func (g *Game) Resize(width, height int) bool {
	grid, ok := types.NewGrid(width, height, g.opts.TileSize)
	if !ok {
		return false
	}
	g.grid = grid
	g.collisionMgr.SetGrid(grid)
	if g.foodMgr.SetGrid(grid) {
		g.logger.Printf("resize to %dx%d moved food to %v", grid.Width, grid.Height, g.foodMgr.GetFood())
	}
	return true
}

// OnScoreChanged registers l to be called whenever the score changes
func (g *Game) OnScoreChanged(l manager.ScoreListener) {
	g.stateMgr.OnScoreChanged(l)
}

func (g *Game) Trail() []types.Point {
	return g.snake.Trail()
}

func (g *Game) Head() types.Point {
	return g.snake.Head
}

func (g *Game) Velocity() types.Velocity {
	return g.snake.Direction
}

func (g *Game) TargetLength() int {
	return g.snake.TargetLength
}

func (g *Game) Food() types.Point {
	return g.foodMgr.GetFood()
}

func (g *Game) Score() int {
	return g.stateMgr.GetScore()
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

func (g *Game) GamesPlayed() int {
	return g.stateMgr.GetGamesPlayed()
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) TileSize() int {
	return g.grid.TileSize
}

func (g *Game) State() ClockState {
	return g.clock.State()
}

// LastCollision is the cause of the most recent game over
func (g *Game) LastCollision() manager.CollisionType {
	return g.lastCollision
}
