package main

import "math/rand"

// scenario generates a deterministic key-access trace and reports the
// capacity each policy should be constructed with to exercise it. The
// trace sequencing and random-number generation live here rather than in
// any of the core cache engines, which stay free of workload-shaping
// concerns.
type scenario struct {
	name     string
	capacity int
	trace    []int
}

// hotSetScenario is a 70/30 split over 20 hot keys and 5000 cold keys.
func hotSetScenario(rng *rand.Rand, steps int) scenario {
	const hotKeys = 20
	const coldKeys = 5000
	trace := make([]int, steps)
	for i := range trace {
		if rng.Float64() < 0.70 {
			trace[i] = rng.Intn(hotKeys)
		} else {
			trace[i] = hotKeys + rng.Intn(coldKeys)
		}
	}
	return scenario{name: "hot-set", capacity: 50, trace: trace}
}

// loopScanScenario is a 500-key mix of 60% sequential scan, 30% random
// in-range, and 10% out-of-range access.
func loopScanScenario(rng *rand.Rand, steps int) scenario {
	const keys = 500
	trace := make([]int, steps)
	cursor := 0
	for i := range trace {
		switch r := rng.Float64(); {
		case r < 0.60:
			trace[i] = cursor % keys
			cursor++
		case r < 0.90:
			trace[i] = rng.Intn(keys)
		default:
			trace[i] = keys + rng.Intn(keys)
		}
	}
	return scenario{name: "loop-scan", capacity: 50, trace: trace}
}

// phaseShiftScenario cycles a 1000-key space through five access modes
// against a deliberately tight capacity of 4, so the policies' differing
// reactions to a shifting workload are visible in the hit rate.
func phaseShiftScenario(rng *rand.Rand, steps int) scenario {
	const keys = 1000
	const phaseLen = 200
	trace := make([]int, steps)
	cursor := 0
	for i := range trace {
		switch (i / phaseLen) % 5 {
		case 0: // hot-key
			trace[i] = rng.Intn(4)
		case 1: // random
			trace[i] = rng.Intn(keys)
		case 2: // sequential
			trace[i] = cursor % keys
			cursor++
		case 3: // locality-clustered
			cluster := (i / 20) % 10
			trace[i] = cluster*37 + rng.Intn(8)
		default: // mixed
			if rng.Float64() < 0.5 {
				trace[i] = rng.Intn(4)
			} else {
				trace[i] = rng.Intn(keys)
			}
		}
	}
	return scenario{name: "phase-shift", capacity: 4, trace: trace}
}

func allScenarios(seed int64, steps int) []scenario {
	return []scenario{
		hotSetScenario(rand.New(rand.NewSource(seed)), steps),
		loopScanScenario(rand.New(rand.NewSource(seed+1)), steps),
		phaseShiftScenario(rand.New(rand.NewSource(seed+2)), steps),
	}
}
