package models

import "time"

// Result is one solved day
type Result struct {
	ID       int64         `json:"id,omitempty"`
	Day      int           `json:"day"`
	Title    string        `json:"title"`
	Input    string        `json:"input"`
	PartOne  string        `json:"part_one"`
	PartTwo  string        `json:"part_two"`
	Duration time.Duration `json:"duration"`
	SolvedAt time.Time     `json:"solved_at"`
}
