// chunk.go: in-band sentinels for the replay fan-out pipeline
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package replay

import "github.com/agilira/tracecache"

// message is what the driver coordinator broadcasts to every simulator
// worker's channel. Exactly one of Records, EndOfStream, or Err is
// meaningful per message, matching the in-band sentinel rule of §5: no
// channel ever closes without an explicit end-of-stream or fatal marker.
type message struct {
	records []tracecache.Request

	// endOfStream, when true, signals the trace is exhausted; no further
	// messages follow it on this channel.
	endOfStream bool

	// err, when non-nil, is a fatal ingestion failure; workers must stop
	// processing and propagate it rather than treat this as end-of-stream.
	err error
}
