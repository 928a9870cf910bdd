package game

import "time"

const linesPerLevel = 10

var linePoints = [...]int{0, 40, 100, 300, 1200}

// LinePoints returns the score for clearing n rows at once on level.
func LinePoints(n, level int) int {
	if n <= 0 {
		return 0
	}
	if n >= len(linePoints) {
		n = len(linePoints) - 1
	}
	return linePoints[n] * (level + 1)
}

// LevelFor returns the level reached after clearing lines in total.
func LevelFor(lines int) int {
	return lines / linesPerLevel
}

// Gravity is the automatic drop schedule.
type Gravity struct {
	Base    time.Duration
	Speedup time.Duration
	Floor   time.Duration
}

// Interval returns the time between automatic drops on level.
func (g Gravity) Interval(level int) time.Duration {
	return max(g.Base-time.Duration(level)*g.Speedup, g.Floor)
}
