package state

// Subscription is the handle returned by AddListener.
type Subscription struct {
	store *Store
	fn    Listener
}

// Cancel removes the listener. Calling it more than once is harmless.
// It must not be called from inside a listener.
func (sub *Subscription) Cancel() {
	s := sub.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.listeners {
		if l == sub {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}
