package storage

import "time"

type Completion struct {
	ID          int64
	CompletedAt time.Time
	Points      int
}
