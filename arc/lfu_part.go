package arc

import "github.com/arazmj/gocache/internal/dlinklist"

// lfuPart is the frequency half of an ArcCache, shaped like lfu.Cache but
// stripped of aging: ARC's own ghost-driven capacity rebalancing already
// bounds how long a stale-but-once-hot entry survives, so the frequency
// decay heuristic the standalone LFU policy uses is not part of this
// half.
type lfuPart[K comparable, V any] struct {
	main    map[K]*dlinklist.Node[K, V]
	buckets map[int]*dlinklist.List[K, V]
	minFreq int
	hasMin  bool

	ghostIndex map[K]*dlinklist.Node[K, struct{}]
	ghostOrder *dlinklist.List[K, struct{}]

	capacity      int
	ghostCapacity int
}

func newLFUPart[K comparable, V any](capacity, ghostCapacity int) *lfuPart[K, V] {
	return &lfuPart[K, V]{
		main:          make(map[K]*dlinklist.Node[K, V]),
		buckets:       make(map[int]*dlinklist.List[K, V]),
		ghostIndex:    make(map[K]*dlinklist.Node[K, struct{}]),
		ghostOrder:    dlinklist.New[K, struct{}](),
		capacity:      capacity,
		ghostCapacity: ghostCapacity,
	}
}

func (p *lfuPart[K, V]) bucket(freq int) *dlinklist.List[K, V] {
	l, ok := p.buckets[freq]
	if !ok {
		l = dlinklist.New[K, V]()
		p.buckets[freq] = l
	}
	return l
}

// put inserts or overwrites key, promoting it on overwrite exactly like a
// hit.
func (p *lfuPart[K, V]) put(key K, value V) {
	if n, ok := p.main[key]; ok {
		n.Value = value
		p.promote(n)
		return
	}

	if p.capacity <= 0 {
		return
	}
	if len(p.main) == p.capacity {
		p.evictToGhost()
	}
	n := p.bucket(1).PushBack(key, value)
	p.main[key] = n
	p.minFreq, p.hasMin = 1, true
}

// get reports whether key is resident, copying its value into out and
// bumping its frequency.
func (p *lfuPart[K, V]) get(key K, out *V) bool {
	n, ok := p.main[key]
	if !ok {
		return false
	}
	*out = n.Value
	p.promote(n)
	return true
}

// promote moves n from its current frequency bucket to the next one up,
// reusing n itself and updating its Freq in place so p.main's existing
// handle to it stays valid and Freq always matches the bucket holding it.
func (p *lfuPart[K, V]) promote(n *dlinklist.Node[K, V]) {
	oldFreq := n.Freq
	l := p.bucket(oldFreq)
	l.Remove(n)
	if l.Len() == 0 {
		delete(p.buckets, oldFreq)
		if p.hasMin && p.minFreq == oldFreq {
			p.minFreq = oldFreq + 1
		}
	}
	n.Freq = oldFreq + 1
	p.bucket(oldFreq + 1).PushNodeBack(n)
}

func (p *lfuPart[K, V]) checkGhost(key K) bool {
	n, ok := p.ghostIndex[key]
	if !ok {
		return false
	}
	p.ghostOrder.Remove(n)
	delete(p.ghostIndex, key)
	return true
}

func (p *lfuPart[K, V]) evictToGhost() {
	if !p.hasMin {
		return
	}
	l, ok := p.buckets[p.minFreq]
	if !ok {
		return
	}
	victim := l.PopFront()
	if victim == nil {
		return
	}
	if l.Len() == 0 {
		delete(p.buckets, p.minFreq)
		p.hasMin = false
		for freq := range p.buckets {
			if !p.hasMin || freq < p.minFreq {
				p.minFreq, p.hasMin = freq, true
			}
		}
	}
	delete(p.main, victim.Key)
	p.addGhost(victim.Key)
}

func (p *lfuPart[K, V]) addGhost(key K) {
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

func (p *lfuPart[K, V]) increaseCapacity() {
	p.capacity++
}

func (p *lfuPart[K, V]) decreaseCapacity() bool {
	if p.capacity <= 0 {
		return false
	}
	if len(p.main) == p.capacity {
		p.evictToGhost()
	}
	p.capacity--
	return true
}

func (p *lfuPart[K, V]) len() int { return len(p.main) }

func (p *lfuPart[K, V]) purge() {
	p.main = make(map[K]*dlinklist.Node[K, V])
	p.buckets = make(map[int]*dlinklist.List[K, V])
	p.minFreq, p.hasMin = 0, false
	p.ghostIndex = make(map[K]*dlinklist.Node[K, struct{}])
	p.ghostOrder = dlinklist.New[K, struct{}]()
}
