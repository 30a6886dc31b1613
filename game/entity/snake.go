package entity

import (
	"gridsnake/game/types"
)

// Snake is the segment chain of a single game.
// Body holds the trail oldest-first; the newest entry is the current head
// once the snake has moved at least once.
type Snake struct {
	Head         types.Point
	Body         []types.Point
	TargetLength int
	Direction    types.Velocity // velocity used by the last advance
	pending      types.Velocity // velocity the next advance will use
}

// NewSnake builds a snake whose head sits at head, moving up, with length
// segments stacked below it. The head itself is not part of the seeded trail.
func NewSnake(head types.Point, length int) *Snake {
	if length < 1 {
		length = 1
	}
	s := &Snake{
		Head:         head,
		Body:         make([]types.Point, 0, length+1),
		TargetLength: length,
		Direction:    types.Up,
		pending:      types.Up,
	}
	for i := 0; i < length; i++ {
		s.Body = append(s.Body, types.Point{X: head.X, Y: head.Y + length - i})
	}
	return s
}

// SetDirection queues dir for the next advance. Requests along the axis the
// snake is already travelling on are ignored, which also rules out 180° turns.
// The axis is the one applied by the last advance, so a turn queued in the same
// tick cannot be overwritten by a request on the applied axis.
func (s *Snake) SetDirection(dir types.Velocity) bool {
	if !isUnit(dir) {
		return false
	}
	if (dir.Horizontal() && s.Direction.Horizontal()) || (dir.Vertical() && s.Direction.Vertical()) {
		return false
	}
	s.pending = dir
	return true
}

// Pending returns the velocity the next advance will use
func (s *Snake) Pending() types.Velocity {
	return s.pending
}

// NextHead consumes the pending velocity and returns the cell the head moves into
func (s *Snake) NextHead() types.Point {
	s.Direction = s.pending
	return s.Head.Add(s.Direction)
}

// Move appends newHead to the trail and evicts the oldest segment when the
// trail grows past TargetLength.
func (s *Snake) Move(newHead types.Point) {
	s.Head = newHead
	s.Body = append(s.Body, newHead)
	if len(s.Body) > s.TargetLength {
		s.RemoveTail()
	}
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

// Grow raises the target length by one segment
func (s *Snake) Grow() {
	s.TargetLength++
}

// Occupies reports whether p is one of the trail cells
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Trail returns a copy of the body, oldest segment first
func (s *Snake) Trail() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}

func isUnit(v types.Velocity) bool {
	return (v.X == 0) != (v.Y == 0) && v.X >= -1 && v.X <= 1 && v.Y >= -1 && v.Y <= 1
}
