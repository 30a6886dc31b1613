package manager

import (
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// FoodManager owns the single food cell of a game.
// Spawns are uniform over the grid and may land on the snake.
type FoodManager struct {
	grid types.Grid
	food types.Point
	rng  *rand.Rand
}

func NewFoodManager(grid types.Grid, seed uint64) *FoodManager {
	fm := &FoodManager{
		grid: grid,
		rng:  rand.New(rand.NewSource(seed)),
	}
	fm.Respawn()
	return fm
}

// Spawn draws x from [0, grid.Width) and y from [0, grid.Height) independently
func (fm *FoodManager) Spawn(grid types.Grid) types.Point {
	return types.Point{
		X: fm.rng.Intn(grid.Width),
		Y: fm.rng.Intn(grid.Height),
	}
}

// Respawn places the food at a fresh random cell of the current grid
func (fm *FoodManager) Respawn() types.Point {
	fm.food = fm.Spawn(fm.grid)
	return fm.food
}

// SetGrid updates the bounds and moves the food back inside them if the
// resize left it stranded. It reports whether the food was moved.
func (fm *FoodManager) SetGrid(grid types.Grid) bool {
	fm.grid = grid
	if grid.Contains(fm.food) {
		return false
	}
	fm.Respawn()
	return true
}

func (fm *FoodManager) GetFood() types.Point {
	return fm.food
}

// SetFood pins the food to p
func (fm *FoodManager) SetFood(p types.Point) {
	fm.food = p
}
