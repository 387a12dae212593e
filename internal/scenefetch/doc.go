// Package scenefetch implements the Fetch Coordinator: a
// bounded-parallelism loop that drains a LIFO queue of scene URLs,
// dispatching each through a platform.Platform, parsing the result into
// the Import Map, and re-enqueuing the scenes it imports.
//
// Up to MaxInFlight HTTP fetches may be outstanding at once, bounded by a
// golang.org/x/sync/semaphore.Weighted; local fetches run synchronously
// on the coordinating goroutine and never touch the semaphore. The
// queue, the Import Map, and the Asset Registry are all mutated only
// while holding the Coordinator's mutex, and every state transition that
// could unblock the coordinating goroutine ends with a broadcast on its
// condition variable.
package scenefetch
