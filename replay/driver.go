// driver.go: the replay coordinator fanning a trace out across simulator instances
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package replay

import (
	"context"
	"io"
	"sync"

	"github.com/GabrielNunesIT/go-libs/workerpool"
	"github.com/agilira/tracecache"
	"github.com/agilira/tracecache/analyzer"
	"github.com/agilira/tracecache/source"
)

// Instance is one (policy, capacity) simulator driven by the Driver: an
// Engine paired with the Analyzer that consumes its outcome stream.
type Instance struct {
	Engine   *tracecache.Engine
	Analyzer *analyzer.Analyzer

	ch  chan message
	err error
}

// NewInstance wires engine to analyzer for one simulator instance.
func NewInstance(engine *tracecache.Engine, an *analyzer.Analyzer) *Instance {
	return &Instance{Engine: engine, Analyzer: an, ch: make(chan message, 1)}
}

// Err returns the fatal error this instance observed, if any, after Run
// returns.
func (inst *Instance) Err() error { return inst.err }

// consume drains inst.ch until end-of-stream, a fatal message, or ctx is
// cancelled. On any instance-local failure it calls cancel so the rest of
// the fan-out (pump's broadcast, and every other instance still running)
// unwinds instead of blocking on this instance's now-unread channel —
// spec §7's fail-fast requirement applies to the whole run, not just the
// instance that failed.
func (inst *Instance) consume(ctx context.Context, cancel context.CancelFunc) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-inst.ch:
			if !ok {
				return
			}
			if msg.err != nil {
				inst.err = msg.err
				cancel()
				return
			}
			if msg.endOfStream {
				if err := inst.Analyzer.Finalize(); err != nil {
					inst.err = tracecache.NewErrInternal("analyzer finalize", err)
					cancel()
				}
				return
			}
			for _, r := range msg.records {
				outcome, err := inst.Engine.Recv(r)
				if err != nil {
					inst.err = err
					cancel()
					return
				}
				if err := inst.Analyzer.Record(r.Time, outcome, r.GroupID); err != nil {
					inst.err = tracecache.NewErrInternal("analyzer record", err)
					cancel()
					return
				}
			}
		}
	}
}

// Driver pulls ordered chunks from a Source and broadcasts each to every
// registered Instance, driving them through a bounded worker pool — one
// worker per instance, exactly as §5's "K simulator workers" calls for.
type Driver struct {
	src       source.Source
	instances []*Instance
}

// New builds a Driver reading src and fanning out to instances.
func New(src source.Source, instances []*Instance) *Driver {
	return &Driver{src: src, instances: instances}
}

// Run pulls chunks from the source until exhaustion or a fatal ingestion
// error, broadcasting each to every instance, then waits for every
// instance to drain and finalize. It returns the first fatal error
// observed, from the source or from any instance.
//
// runCtx is cancelled the moment any instance fails, so pump's in-flight
// broadcast and every other still-running instance unwind immediately
// instead of blocking on the failed instance's unread channel.
func (d *Driver) Run(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := workerpool.New(runCtx, func(ctx context.Context, inst *Instance) {
		inst.consume(ctx, cancel)
	}, workerpool.WithWorkers[*Instance](len(d.instances)), workerpool.WithBufferSize[*Instance](len(d.instances)))

	for _, inst := range d.instances {
		pool.Submit(inst)
	}

	runErr := d.pump(runCtx)

	for _, inst := range d.instances {
		close(inst.ch)
	}
	pool.Shutdown()

	if runErr != nil {
		return runErr
	}
	return d.firstInstanceError()
}

// pump reads the source to exhaustion, broadcasting each chunk (or the
// terminal sentinel) to every instance's channel. It stops as soon as ctx
// is cancelled, whether that came from the caller or from an instance
// failure reached via Run's cancel.
func (d *Driver) pump(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		chunk, err := d.src.Next(ctx)
		if err == io.EOF {
			d.broadcast(ctx, message{endOfStream: true})
			return nil
		}
		if err != nil {
			d.broadcast(ctx, message{err: err})
			return err
		}
		d.broadcast(ctx, message{records: chunk.Records})
	}
}

// broadcast sends msg to every instance's channel, abandoning any send that
// would otherwise block forever on an instance that already exited after a
// failure (ctx is cancelled the moment that happens).
func (d *Driver) broadcast(ctx context.Context, msg message) {
	var wg sync.WaitGroup
	wg.Add(len(d.instances))
	for _, inst := range d.instances {
		go func(inst *Instance) {
			defer wg.Done()
			select {
			case inst.ch <- msg:
			case <-ctx.Done():
			}
		}(inst)
	}
	wg.Wait()
}

func (d *Driver) firstInstanceError() error {
	for _, inst := range d.instances {
		if inst.err != nil {
			return inst.err
		}
	}
	return nil
}
