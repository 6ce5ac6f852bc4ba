package domain

import "sync"

const subscriberBuffer = 8

// Subscription is one live query attached to a Feed. Close detaches it;
// closing twice is safe.
type Subscription struct {
	ch    chan []Product
	close func()
	once  sync.Once
}

// Snapshots delivers the full catalog after every mutation. The channel is
// closed when the subscription is.
func (s *Subscription) Snapshots() <-chan []Product {
	return s.ch
}

func (s *Subscription) Close() {
	s.once.Do(s.close)
}

// Seed queues the initial snapshot for a fresh subscription so live queries
// see current state before the first mutation.
func (s *Subscription) Seed(snapshot []Product) {
	select {
	case s.ch <- snapshot:
	default:
	}
}

// Feed fans catalog snapshots out to live query subscribers.
type Feed struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan []Product
}

func NewFeed() *Feed {
	return &Feed{subs: make(map[int]chan []Product)}
}

func (f *Feed) Subscribe() *Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()

	id := f.nextID
	f.nextID++

	ch := make(chan []Product, subscriberBuffer)
	f.subs[id] = ch

	return &Subscription{
		ch: ch,
		close: func() {
			f.mu.Lock()
			defer f.mu.Unlock()
			if sub, ok := f.subs[id]; ok {
				delete(f.subs, id)
				close(sub)
			}
		},
	}
}

// Publish pushes a snapshot to every subscriber. A slow subscriber loses its
// oldest pending snapshot rather than blocking the writer.
func (f *Feed) Publish(snapshot []Product) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	for _, ch := range f.subs {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snapshot:
			default:
			}
		}
	}
}

func (f *Feed) SubscriberCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}
