package services

import "sync"

// profileLocks serializes mutating operations per profile. The snapshot
// engine and the asset ledger read-then-write the same rows with no
// optimistic-concurrency check, so concurrent writers to one profile
// must queue.
var profileLocks sync.Map

// lockProfile acquires the profile's mutex and returns the unlock func.
func lockProfile(profileID string) func() {
	v, _ := profileLocks.LoadOrStore(profileID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
