package workload

import (
	"bytes"
	"context"
	"time"

	"github.com/calebmor/gauntlet/internal/model"
)

const (
	commMessageSize     = 1024 // 1 KiB payload
	commProcessingDelay = time.Millisecond
	commNetworkDelay    = 5 * time.Millisecond
)

// CommunicationThroughput builds a fixed-size synthetic payload per
// iteration and applies fixed processing and network delays. The delays
// are synthetic; no real protocol is modeled.
type CommunicationThroughput struct{}

func (w *CommunicationThroughput) Category() model.Category {
	return model.CategoryCommunicationThroughput
}

func (w *CommunicationThroughput) Run(ctx context.Context, unit model.WorkUnit) model.WorkResult {
	started := time.Now()
	var m model.CommMetrics

	hist := newLatencyHistogram()

	for running(ctx, unit.Deadline) {
		msgStart := time.Now()

		payload := bytes.Repeat([]byte{'x'}, commMessageSize)
		time.Sleep(commProcessingDelay)

		// Latency covers payload construction and processing, not the
		// trailing network delay, matching how the host measured it.
		hist.RecordValue(time.Since(msgStart).Microseconds())
		m.Messages++
		m.Bytes += int64(len(payload))

		time.Sleep(commNetworkDelay)
	}

	m.AvgLatencyMS = hist.Mean() / 1000
	return finish(unit, started, m, "")
}
