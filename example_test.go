// example_test.go: godoc examples for the tracecache simulator
//
// These examples appear in the generated documentation on pkg.go.dev
// and are executed as part of the test suite to ensure they remain valid.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0

package tracecache_test

import (
	"fmt"
	"time"

	"github.com/agilira/tracecache"
)

// ExampleNewPolicy demonstrates constructing and driving a single LRU
// policy instance through the request lifecycle.
func ExampleNewPolicy() {
	policy, err := tracecache.NewPolicy(tracecache.PolicySpec{
		Kind:     tracecache.KindLRU,
		Capacity: 200,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	engine := tracecache.NewEngine(policy, nil, nil)

	const maxAge = 5 * time.Minute
	var outcomes []tracecache.Outcome
	for _, req := range []tracecache.Request{
		{Time: 0, ObjectID: "a", Size: 100, MaxAge: maxAge},
		{Time: 1, ObjectID: "b", Size: 100, MaxAge: maxAge},
		{Time: 2, ObjectID: "a", Size: 100, MaxAge: maxAge},
	} {
		o, err := engine.Recv(req)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		outcomes = append(outcomes, o)
	}

	fmt.Println(outcomes[0], outcomes[1], outcomes[2])
	// Output: MISS MISS HIT
}

// ExampleNewPolicy_protected demonstrates the protected admission gate,
// which refuses any object larger than 10% of capacity regardless of the
// wrapped policy's own admission rule.
func ExampleNewPolicy_protected() {
	policy, err := tracecache.NewPolicy(tracecache.PolicySpec{
		Kind:      tracecache.KindFIFO,
		Capacity:  400, // threshold: 40
		Protected: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	engine := tracecache.NewEngine(policy, nil, nil)

	const maxAge = 5 * time.Minute
	big, err := engine.Recv(tracecache.Request{Time: 0, ObjectID: "a", Size: 100, MaxAge: maxAge})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	small, err := engine.Recv(tracecache.Request{Time: 1, ObjectID: "d", Size: 30, MaxAge: maxAge})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(big, small)
	// Output: PASS MISS
}

// ExampleConfig_Validate demonstrates building and validating a run
// configuration before wiring a replay.
func ExampleConfig_Validate() {
	cfg := tracecache.DefaultConfig()
	cfg.Policies = []tracecache.PolicySpec{
		{Kind: tracecache.KindLRU, Capacity: 1 << 20},
		{Kind: tracecache.KindFIFO, Capacity: 1 << 20},
	}

	if err := cfg.Validate(); err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(cfg.ChunkSize, cfg.FreqRecords)
	// Output: 2000 100000
}

// ExampleOutcome_String demonstrates the three possible request outcomes.
func ExampleOutcome_String() {
	fmt.Println(tracecache.Hit, tracecache.Miss, tracecache.Pass)
	// Output: HIT MISS PASS
}
