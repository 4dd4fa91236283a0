// Package tracecache replays a time-ordered trace of HTTP object requests
// against one or more cache admission/replacement policies and reports,
// per (policy, capacity) instance, how often the cache would have served,
// admitted, or bypassed each request.
//
// # Overview
//
// tracecache is a simulator, not a running cache: it never stores object
// payloads, only accounts for their size. Feeding it the same ordered
// request stream through several policy instances at once answers "what
// cache-hit ratio would LRU at 1GB versus FIFO at 2GB have given us on
// last Tuesday's traffic?" without touching production.
//
// # Quick Start
//
//	policy, _ := tracecache.NewPolicy(tracecache.PolicySpec{
//	    Kind:     tracecache.KindLRU,
//	    Capacity: 1 << 30, // 1 GiB of size units
//	})
//	engine := tracecache.NewEngine(policy, nil, nil)
//
//	outcome, err := engine.Recv(tracecache.Request{
//	    Time:     1700000000.5,
//	    ObjectID: "https://example.com/img/hero.jpg",
//	    Size:     204_800,
//	    MaxAge:   5 * time.Minute,
//	})
//
// # Request Lifecycle
//
// Engine.Recv implements the policy-agnostic lifecycle every policy
// shares: clock advance, lookup-with-expiry, admission gate, store,
// evict. Three outcomes are possible:
//
//   - HIT: the object was present and not expired; served from cache.
//   - MISS: the object was absent (or expired) and the policy admitted it.
//   - PASS: the object was absent and the admission gate refused it
//     (too large, or the policy's own admission rule declined), leaving
//     cache state unchanged.
//
// # Policies
//
// FIFO, LRU, LFU, LSO (largest-size-out), SSO (smallest-size-out), and
// RAN (uniformly random) evict by their namesake rule; each has a
// Protected variant (PolicySpec.Protected) that refuses any object over
// 10% of capacity outright. Bélády (KindBelady) is the offline-optimal
// baseline: it requires an Oracle answering "when is this object
// referenced again?" and always evicts whichever stored entry is needed
// furthest in the future — see the oracle package for two Oracle
// implementations.
//
// # Running a Full Replay
//
// The replay package fans a single ordered trace out across many
// (policy, capacity) Engine instances in parallel, each paired with an
// analyzer.Analyzer that reports cache-hit-ratio time series to the CSV
// sinks in the report package. The source package abstracts trace
// ingestion (an in-memory slice for tests, a bleve-indexed store with
// scroll-style pagination for real traces).
//
// # Configuration
//
//	cfg := tracecache.DefaultConfig()
//	cfg.Policies = []tracecache.PolicySpec{
//	    {Kind: tracecache.KindLRU, Capacity: 1 << 30},
//	    {Kind: tracecache.KindBelady, Capacity: 1 << 30, Oracle: myOracle},
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// Validate normalizes ChunkSize, FreqRecords, FreqSeconds, GroupInterval,
// and OutputDir to their defaults when left unset, and rejects a
// configuration that cannot describe a runnable simulation (empty
// Policies, non-positive capacity, unknown policy kind, negative
// DefaultMaxAge).
//
// # Observability
//
// Logger and MetricsCollector are passed in at construction — there is
// no package-level global state. Both default to no-op implementations,
// so a run configured without them pays zero overhead. The otel package
// (a separate module) implements MetricsCollector on top of
// OpenTelemetry for runs that want per-outcome counters exported to
// Prometheus or another OTEL-compatible backend.
//
// # Errors
//
// tracecache uses github.com/agilira/go-errors for structured, coded
// errors (ErrCodeInvalidConfig, ErrCodeClockRegression,
// ErrCodeIngestionFatal, ...). IsFatal reports whether an error should
// trigger the fatal-sentinel / non-zero-exit-code path described for the
// replay pipeline; GetErrorCode extracts the code from any wrapped
// error for programmatic dispatch.
package tracecache
