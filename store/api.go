package store

import (
	"context"
)

// Store defines the application-level persistence API for schedules and
// friend lists. Users without saved data have an empty schedule and no
// friends.
type Store interface {
	// SaveSchedule replaces the schedule of user.
	SaveSchedule(ctx context.Context, user string, schedule Schedule) error

	// Schedule returns the saved schedule of user, or nil if there is none.
	Schedule(ctx context.Context, user string) (Schedule, error)

	// SaveFriends replaces the friend list of user.
	SaveFriends(ctx context.Context, user string, friends []string) error

	// Friends returns the friend list of user in saved order.
	Friends(ctx context.Context, user string) ([]string, error)

	// Clear removes all schedules and friend lists.
	Clear(ctx context.Context) error
}
