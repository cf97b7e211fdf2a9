package main

import (
	"github.com/arazmj/gocache/arc"
	"github.com/arazmj/gocache/cache"
	"github.com/arazmj/gocache/lfu"
	"github.com/arazmj/gocache/lru"
	"github.com/arazmj/gocache/lruk"
	"github.com/arazmj/gocache/sharded"
)

// policyFactory builds a fresh cache.Policy[int, int] sized for a given
// scenario's capacity, so every scenario starts each policy cold.
type policyFactory struct {
	name string
	new  func(capacity int) cache.Policy[int, int]
}

func policyFactories() []policyFactory {
	return []policyFactory{
		{"lru", func(capacity int) cache.Policy[int, int] { return lru.New[int, int](capacity) }},
		{"lfu", func(capacity int) cache.Policy[int, int] { return lfu.New[int, int](capacity, lfu.DefaultMaxAvgFreq) }},
		{"arc", func(capacity int) cache.Policy[int, int] { return arc.New[int, int](capacity, arc.DefaultTransformThreshold) }},
		{"lru-k", func(capacity int) cache.Policy[int, int] { return lruk.New[int, int](capacity, capacity*4, 2) }},
		{"sharded-lru", func(capacity int) cache.Policy[int, int] { return sharded.NewHashLruCache[int, int](capacity, 0) }},
		{"sharded-lfu", func(capacity int) cache.Policy[int, int] { return sharded.NewHashLfuCache[int, int](capacity, 0, lfu.DefaultMaxAvgFreq) }},
	}
}

// runTrace replays trace against policy, loading a miss with the key
// itself as the value, and returns the hit-rate percentage.
func runTrace(policy cache.Policy[int, int], trace []int) float64 {
	hits := 0
	var v int
	for _, key := range trace {
		if policy.Get(key, &v) {
			hits++
			continue
		}
		policy.Put(key, key)
	}
	if len(trace) == 0 {
		return 0
	}
	return 100 * float64(hits) / float64(len(trace))
}

// result is one (policy, scenario) hit-rate pair.
type result struct {
	policy     string
	scenario   string
	hitRatePct float64
}

func runAll(scenarios []scenario) []result {
	var results []result
	for _, pf := range policyFactories() {
		for _, sc := range scenarios {
			policy := pf.new(sc.capacity)
			rate := runTrace(policy, sc.trace)
			results = append(results, result{policy: pf.name, scenario: sc.name, hitRatePct: rate})
		}
	}
	return results
}
