package entity

import "time"

// User is an account that can authenticate and own email batches.
type User struct {
	ID        int64
	Email     string
	Password  string
	CreatedAt time.Time
}
