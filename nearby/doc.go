// Package nearby reports which friends pass close to a user while walking
// between two scheduled events.
//
// A Service reads schedules and friend lists from a store.Store and asks a
// caller-supplied PathFunc for the locations along each walk. The user's
// walk is indexed once; every mutual friend walking at the same hour is then
// matched against it to find their nearest approach.
//
// Example:
//
//	svc, err := nearby.New(st, campus.Path, nearby.WithParallelism(4))
//	if err != nil {
//		return err
//	}
//	walk, err := svc.Walk(ctx, "Kevin", "10:30")
//	if err != nil {
//		return err
//	}
//	for _, n := range walk.Nearby {
//		fmt.Printf("%s passes within %.1f of %s\n", n.Friend, n.Dist, n.Loc)
//	}
package nearby
