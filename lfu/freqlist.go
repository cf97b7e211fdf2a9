package lfu

import "github.com/arazmj/gocache/internal/dlinklist"

// buckets maps a frequency to the FIFO list of entries currently at that
// frequency. The front of a bucket is the eviction victim within that
// frequency class; new and promoted entries are always pushed to the
// back, so ties within a bucket resolve in insertion order.
type buckets[K comparable, V any] map[int]*dlinklist.List[K, V]

// insert creates a fresh node for (key, value) in the bucket at freq.
// PushBack always initializes a new node's Freq to 1, so insert sets it
// to freq afterward. Existing nodes, including those age() decays, are
// relinked with move instead.
func (b buckets[K, V]) insert(freq int, key K, value V) *dlinklist.Node[K, V] {
	n := b.bucket(freq).PushBack(key, value)
	n.Freq = freq
	return n
}

// move relinks n from the bucket at oldFreq to the bucket at newFreq,
// setting n.Freq to newFreq and reusing n itself rather than allocating a
// replacement — the index map's existing *Node handle to n stays valid,
// and n.Freq always matches the key of the bucket holding it. It reports
// whether the old bucket was emptied.
func (b buckets[K, V]) move(oldFreq, newFreq int, n *dlinklist.Node[K, V]) (emptied bool) {
	if l, ok := b[oldFreq]; ok {
		l.Remove(n)
		if l.Len() == 0 {
			delete(b, oldFreq)
			emptied = true
		}
	}
	n.Freq = newFreq
	b.bucket(newFreq).PushNodeBack(n)
	return emptied
}

func (b buckets[K, V]) bucket(freq int) *dlinklist.List[K, V] {
	l, ok := b[freq]
	if !ok {
		l = dlinklist.New[K, V]()
		b[freq] = l
	}
	return l
}

func (b buckets[K, V]) minNonEmptyKey() (min int, ok bool) {
	for freq, l := range b {
		if l.Len() == 0 {
			continue
		}
		if !ok || freq < min {
			min, ok = freq, true
		}
	}
	return min, ok
}
