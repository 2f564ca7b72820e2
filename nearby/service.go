package nearby

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/viant/sqlite-nearby/index"
	"github.com/viant/sqlite-nearby/location"
	"github.com/viant/sqlite-nearby/store"
)

var (
	// ErrInvalidArgument is returned for a missing user or malformed hour.
	ErrInvalidArgument = errors.New("nearby: invalid argument")
	// ErrNoSchedule is returned when the user has no saved schedule.
	ErrNoSchedule = errors.New("nearby: user has no saved schedule")
	// ErrNoEvent is returned when no event of the user starts at the hour.
	ErrNoEvent = errors.New("nearby: user has no event starting at this hour")
	// ErrNotWalking is returned when the event at the hour is the first of
	// the day, so the user is not walking between events.
	ErrNotWalking = errors.New("nearby: user is not walking between events at this hour")
	// ErrNoPath is returned by a PathFunc when the two locations are not
	// connected.
	ErrNoPath = errors.New("nearby: no path")
)

// PathFunc returns the locations along the shortest walk between two
// locations given by short name. It returns ErrNoPath when there is none.
type PathFunc func(ctx context.Context, from, to string) ([]location.Point, error)

// Nearby describes how close a friend's walk comes to the user's.
type Nearby struct {
	Friend string         `json:"friend"`
	Dist   float64        `json:"dist"`
	Loc    location.Point `json:"loc"`
}

// Walk is the user's walk at an hour together with the friends walking
// nearby. Path and Nearby are empty when Found is false.
type Walk struct {
	Found  bool             `json:"found"`
	Path   []location.Point `json:"path,omitempty"`
	Nearby []Nearby         `json:"nearby,omitempty"`
}

// Service answers nearby-friends queries.
type Service struct {
	store store.Store
	paths PathFunc
	opts  options
}

// New creates a Service reading from st and resolving walks with paths.
func New(st store.Store, paths PathFunc, opts ...Option) (*Service, error) {
	if st == nil {
		return nil, fmt.Errorf("nearby: store is nil")
	}
	if paths == nil {
		return nil, fmt.Errorf("nearby: PathFunc is nil")
	}
	return &Service{store: st, paths: paths, opts: newOptions(opts)}, nil
}

// Walk returns the walk user takes to reach the event starting at hour
// ("H:MM") and, for every mutual friend walking at the same hour, the
// location on the user's walk closest to any location on the friend's.
// Nearby entries follow the order of the user's friend list.
func (s *Service) Walk(ctx context.Context, user, hour string) (*Walk, error) {
	if strings.TrimSpace(user) == "" {
		return nil, fmt.Errorf("%w: user is required", ErrInvalidArgument)
	}
	minute, err := store.ParseHour(hour)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	schedule, err := s.store.Schedule(ctx, user)
	if err != nil {
		return nil, err
	}
	if len(schedule) == 0 {
		return nil, ErrNoSchedule
	}
	at := schedule.IndexAtHour(minute)
	switch {
	case at < 0:
		return nil, ErrNoEvent
	case at == 0:
		return nil, ErrNotWalking
	}

	started := time.Now()
	walk, err := s.walk(ctx, user, hour, minute, schedule[at-1].Location, schedule[at].Location)
	m := s.opts.metrics
	m.WalkDuration.Observe(time.Since(started).Seconds())
	switch {
	case err != nil:
		m.Walks.WithLabelValues(outcomeError).Inc()
	case !walk.Found:
		m.Walks.WithLabelValues(outcomeNoPath).Inc()
	default:
		m.Walks.WithLabelValues(outcomeFound).Inc()
		m.NearbyFound.Add(float64(len(walk.Nearby)))
	}
	return walk, err
}

// walk resolves the user's walk from one location to another and matches
// it against the walks of the user's friends.
func (s *Service) walk(ctx context.Context, user, hour string, minute int, from, to string) (*Walk, error) {
	logger := s.opts.logger.With("user", user, "hour", hour)
	path, err := s.paths(ctx, from, to)
	if errors.Is(err, ErrNoPath) {
		logger.Debug("no path for walk", "from", from, "to", to)
		return &Walk{}, nil
	}
	if err != nil {
		return nil, err
	}
	walk := &Walk{Found: true, Path: path}
	if len(path) == 0 {
		return walk, nil
	}

	friends, err := s.store.Friends(ctx, user)
	if err != nil {
		return nil, err
	}
	s.opts.metrics.FriendsPerWalk.Observe(float64(len(friends)))
	idx := s.opts.newIndex()
	if err := idx.Build(path); err != nil {
		return nil, err
	}

	found := make([]*Nearby, len(friends))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.parallelism)
	for i, friend := range friends {
		g.Go(func() error {
			friendPath, err := s.friendWalk(gctx, user, friend, minute)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				logger.Warn("skipping friend", "friend", friend, "error", err)
				s.opts.metrics.FriendsSkipped.Inc()
				return nil
			}
			if len(friendPath) == 0 {
				return nil
			}
			loc, dist, err := idx.FindClosest(friendPath)
			if errors.Is(err, index.ErrIncomparable) {
				logger.Warn("skipping friend", "friend", friend, "error", err)
				s.opts.metrics.FriendsSkipped.Inc()
				return nil
			}
			if err != nil {
				return err
			}
			found[i] = &Nearby{Friend: friend, Dist: dist, Loc: loc}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, n := range found {
		if n != nil {
			walk.Nearby = append(walk.Nearby, *n)
		}
	}
	logger.Debug("walk resolved", "steps", len(path), "friends", len(friends), "nearby", len(walk.Nearby))
	return walk, nil
}

// friendWalk returns the locations on friend's walk at minute, or nil when
// the friend does not qualify: no schedule, not walking at that hour, no
// path, or user missing from the friend's own list.
func (s *Service) friendWalk(ctx context.Context, user, friend string, minute int) ([]location.Point, error) {
	schedule, err := s.store.Schedule(ctx, friend)
	if err != nil {
		return nil, err
	}
	at := schedule.IndexAtHour(minute)
	if at <= 0 {
		return nil, nil
	}
	theirs, err := s.store.Friends(ctx, friend)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(theirs, user) {
		return nil, nil
	}
	path, err := s.paths(ctx, schedule[at-1].Location, schedule[at].Location)
	if errors.Is(err, ErrNoPath) {
		return nil, nil
	}
	return path, err
}
