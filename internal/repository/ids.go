package repository

import "time"

// nextID returns a millisecond-timestamp-shaped identifier that is strictly
// greater than floor. Two records created in the same millisecond get
// consecutive identifiers instead of colliding.
func nextID(now time.Time, floor int64) int64 {
	id := now.UnixMilli()
	if id <= floor {
		id = floor + 1
	}
	return id
}
