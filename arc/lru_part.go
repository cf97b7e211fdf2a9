// Package arc implements the ARC (Adaptive Replacement Cache) policy: a
// recency (LRU) half and a frequency (LFU) half, each with its own
// bounded ghost list of evicted keys, with a coordinator that shifts
// capacity between the halves whenever a ghost hit shows one half is
// under-provisioned.
package arc

import "github.com/arazmj/gocache/internal/dlinklist"

// lruPart is the recency half of an ArcCache. It is not safe for
// concurrent use on its own: ArcCache serializes all access to both
// halves under a single coordinator lock, so neither half needs its own
// mutex.
type lruPart[K comparable, V any] struct {
	main  map[K]*dlinklist.Node[K, V]
	order *dlinklist.List[K, V]

	ghostIndex map[K]*dlinklist.Node[K, struct{}]
	ghostOrder *dlinklist.List[K, struct{}]

	capacity           int
	ghostCapacity      int
	transformThreshold int
}

func newLRUPart[K comparable, V any](capacity, ghostCapacity, transformThreshold int) *lruPart[K, V] {
	return &lruPart[K, V]{
		main:               make(map[K]*dlinklist.Node[K, V]),
		order:              dlinklist.New[K, V](),
		ghostIndex:         make(map[K]*dlinklist.Node[K, struct{}]),
		ghostOrder:         dlinklist.New[K, struct{}](),
		capacity:           capacity,
		ghostCapacity:      ghostCapacity,
		transformThreshold: transformThreshold,
	}
}

// put inserts or overwrites key in the main segment. It returns true iff
// the entry now qualifies for promotion into the LFU half (access count
// has reached transformThreshold) — this is "is promotion-eligible", not
// "was freshly inserted".
func (p *lruPart[K, V]) put(key K, value V) (promote bool) {
	if n, ok := p.main[key]; ok {
		n.Value = value
		p.order.MoveToBack(n)
		return n.Freq >= p.transformThreshold
	}

	if p.capacity <= 0 {
		return false
	}
	if len(p.main) == p.capacity {
		p.evictToGhost()
	}
	n := p.order.PushBack(key, value)
	p.main[key] = n
	return n.Freq >= p.transformThreshold
}

// get reports whether key is resident in main, copying its value into out
// and bumping its access count. shouldTransform reports whether the
// access count has reached transformThreshold.
func (p *lruPart[K, V]) get(key K, out *V) (ok bool, shouldTransform bool) {
	n, ok := p.main[key]
	if !ok {
		return false, false
	}
	n.Freq++
	p.order.MoveToBack(n)
	*out = n.Value
	return true, n.Freq >= p.transformThreshold
}

// checkGhost reports whether key is a recent eviction victim of this
// half, removing it from the ghost list if so.
func (p *lruPart[K, V]) checkGhost(key K) bool {
	n, ok := p.ghostIndex[key]
	if !ok {
		return false
	}
	p.ghostOrder.Remove(n)
	delete(p.ghostIndex, key)
	return true
}

// evictToGhost evicts the least-recently-used main entry and records its
// key in the ghost list, making room for a new insert.
func (p *lruPart[K, V]) evictToGhost() {
	victim := p.order.PopFront()
	if victim == nil {
		return
	}
	delete(p.main, victim.Key)
	p.addGhost(victim.Key)
}

func (p *lruPart[K, V]) addGhost(key K) {
	if p.ghostCapacity <= 0 {
		return
	}
	if len(p.ghostIndex) == p.ghostCapacity {
		oldest := p.ghostOrder.PopFront()
		if oldest != nil {
			delete(p.ghostIndex, oldest.Key)
		}
	}
	p.ghostIndex[key] = p.ghostOrder.PushBack(key, struct{}{})
}

// increaseCapacity grows capacity by one.
func (p *lruPart[K, V]) increaseCapacity() {
	p.capacity++
}

// decreaseCapacity shrinks capacity by one, evicting a victim first if the
// half is currently full. It returns false when capacity is already 0.
func (p *lruPart[K, V]) decreaseCapacity() bool {
	if p.capacity <= 0 {
		return false
	}
	if len(p.main) == p.capacity {
		p.evictToGhost()
	}
	p.capacity--
	return true
}

func (p *lruPart[K, V]) len() int { return len(p.main) }

func (p *lruPart[K, V]) purge() {
	p.main = make(map[K]*dlinklist.Node[K, V])
	p.order = dlinklist.New[K, V]()
	p.ghostIndex = make(map[K]*dlinklist.Node[K, struct{}])
	p.ghostOrder = dlinklist.New[K, struct{}]()
}
