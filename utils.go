package main

import "fmt"

// scoreTitle is the window title shown while playing
func scoreTitle(score int) string {
	return fmt.Sprintf("Snake - Score: %d", score)
}
