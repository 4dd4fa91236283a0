// engine.go: the policy-agnostic cache request lifecycle
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package tracecache

// Engine drives a single policy instance through the request lifecycle
// described by Recv. One Engine corresponds to one (policy, capacity)
// simulator instance in a run.
type Engine struct {
	policy  Policy
	clock   float64
	started bool

	logger  Logger
	metrics MetricsCollector
}

// NewEngine wires policy to the given collaborators. A nil logger or
// metrics collector is replaced by its no-op default.
func NewEngine(policy Policy, logger Logger, metrics MetricsCollector) *Engine {
	if logger == nil {
		logger = NoOpLogger{}
	}
	if metrics == nil {
		metrics = NoOpMetricsCollector{}
	}
	return &Engine{policy: policy, logger: logger, metrics: metrics}
}

// Policy returns the wrapped Policy, for callers that need its Name or
// Capacity without threading a second reference through.
func (e *Engine) Policy() Policy { return e.policy }

// Recv advances the engine's clock to req.Time and returns the outcome of
// serving req: HIT if a live entry for req.ObjectID is already stored,
// MISS if the request was admitted after a cache miss, PASS if the
// admission gate refused it.
//
// Recv returns ErrCodeClockRegression if req.Time precedes the engine's
// current clock; the first call to Recv always succeeds regardless of
// req.Time.
func (e *Engine) Recv(req Request) (Outcome, error) {
	if e.started && req.Time < e.clock {
		return Miss, NewErrClockRegression(e.clock, req.Time)
	}
	e.clock = req.Time
	e.started = true

	if entry, ok := e.policy.Lookup(req.ObjectID); ok {
		if !entry.Expired(e.clock) {
			e.policy.OnHit(e.clock, entry)
			e.metrics.RecordOutcome(Hit)
			e.logger.Debug("recv", "clock", e.clock, "outcome", Hit.String(), "object_id", req.ObjectID)
			return Hit, nil
		}
		e.policy.Remove(req.ObjectID)
	}

	if req.Size > e.policy.Capacity() || !e.policy.Admit(req) {
		e.metrics.RecordOutcome(Pass)
		e.logger.Debug("recv", "clock", e.clock, "outcome", Pass.String(), "object_id", req.ObjectID)
		return Pass, nil
	}

	_, evicted := e.policy.Store(e.clock, req)
	for i := 0; i < evicted; i++ {
		e.metrics.RecordEviction()
	}
	e.metrics.RecordOutcome(Miss)
	e.logger.Debug("recv", "clock", e.clock, "outcome", Miss.String(), "object_id", req.ObjectID)
	return Miss, nil
}
