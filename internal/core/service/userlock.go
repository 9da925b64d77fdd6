package service

import "sync"

// UserLocks serializes mutations per user id. The cart and the wishlist live
// on the same user document and every save rewrites the whole aggregate, so
// a single table must cover both services: a cart write racing a wishlist
// write on the same user would otherwise overwrite each other's save.
type UserLocks struct {
	locks sync.Map // user id -> *sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{}
}

func (l *UserLocks) lock(userID string) func() {
	v, _ := l.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
