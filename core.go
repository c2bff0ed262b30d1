// SPDX-License-Identifier: EPL-2.0

package audrt

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/ik5/audrt/config"
	"github.com/ik5/audrt/exchange"
	"github.com/ik5/audrt/midi"
	"github.com/ik5/audrt/stats"
)

// eventQueueCap bounds the MIDI queue between the ingestion context
// and the audio period. Newer events are dropped when full.
const eventQueueCap = 64

// Core wires the exchange, the MIDI sources and the timing monitor
// into one unit. The audio driver calls AcceptInput and ProduceOutput
// once per period; everything else runs in the service loop.
type Core struct {
	cfg    config.Config
	ex     *exchange.Exchanger
	mon    *stats.Monitor
	logger *slog.Logger

	events     chan midi.Event
	eventDrops atomic.Uint64
	engineSink atomic.Pointer[midi.Sink]

	serial *midi.SerialSource
	port   *midi.PortSource
}

// New builds a Core from a validated configuration. A nil logger
// falls back to slog.Default. When the mode includes the USB host
// path, a port source starts polling on the first Run tick.
func New(cfg config.Config, logger *slog.Logger) (*Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	ex, err := exchange.New(cfg.BlockSize, nil)
	if err != nil {
		return nil, err
	}
	mon, err := stats.NewMonitor(cfg.SampleRate, cfg.StatsDepth)
	if err != nil {
		return nil, err
	}

	c := &Core{
		cfg:    cfg,
		ex:     ex,
		mon:    mon,
		logger: logger,
		events: make(chan midi.Event, eventQueueCap),
	}

	if cfg.MIDIMode.UsesPort() {
		c.port = midi.NewPortSource(cfg.PortMatch, c, logger)
	}

	return c, nil
}

// SetEngine binds the signal-processing engine. A nil engine selects
// pass-through. An engine that also implements midi.Sink receives the
// queued events at the start of each period, on the audio context.
func (c *Core) SetEngine(engine exchange.Processor) {
	c.ex.SetProcessor(engine)

	if sink, ok := engine.(midi.Sink); ok {
		c.engineSink.Store(&sink)
	} else {
		c.engineSink.Store(nil)
	}
}

// SetSerialReader binds the byte-stream MIDI reader (UART or USB
// gadget endpoint). Ignored unless the configured mode includes a
// byte-stream path.
func (c *Core) SetSerialReader(r io.Reader) {
	if !c.cfg.MIDIMode.UsesByteStream() {
		return
	}
	c.serial = midi.NewSerialSource(r, c)
}

// OnMIDIEvent implements midi.Sink for the ingestion sources. It
// never blocks; when the queue is full the event is dropped and
// counted.
func (c *Core) OnMIDIEvent(ev midi.Event) {
	select {
	case c.events <- ev:
	default:
		c.eventDrops.Add(1)
	}
}

// AcceptInput hands one raw input block to the exchange.
func (c *Core) AcceptInput(block []uint32) bool {
	return c.ex.AcceptInput(block)
}

// ProduceOutput delivers queued MIDI events to the engine, runs it on
// the period and measures the whole thing.
func (c *Core) ProduceOutput(block []uint32) int {
	c.mon.BeginPeriod()

	c.drainEvents()

	n := c.ex.ProduceOutput(block)
	if n == 0 {
		return 0
	}

	c.mon.EndPeriod(c.ex.Frames())
	return n
}

func (c *Core) drainEvents() {
	sink := c.engineSink.Load()
	for {
		select {
		case ev := <-c.events:
			if sink != nil {
				(*sink).OnMIDIEvent(ev)
			}
		default:
			return
		}
	}
}

// Poll services the MIDI sources once: drains the byte-stream reader
// and checks the port topology. Run calls it on every tick; tests and
// custom loops may call it directly.
func (c *Core) Poll() {
	if c.serial != nil {
		if err := c.serial.Poll(); err != nil {
			c.logger.Debug("serial midi poll failed", "err", err)
		}
	}
	if c.port != nil {
		c.port.Poll()
	}
}

// Run is the service loop: MIDI polling at the configured cadence and
// periodic statistics reports. It returns when ctx is done.
func (c *Core) Run(ctx context.Context) error {
	poll := time.NewTicker(time.Duration(c.cfg.PollInterval))
	defer poll.Stop()

	var reportC <-chan time.Time
	if c.cfg.ReportInterval > 0 {
		report := time.NewTicker(time.Duration(c.cfg.ReportInterval))
		defer report.Stop()
		reportC = report.C
	}

	for {
		select {
		case <-ctx.Done():
			if c.port != nil {
				if err := c.port.Close(); err != nil {
					c.logger.Debug("midi port close failed", "err", err)
				}
			}
			return ctx.Err()
		case <-poll.C:
			c.Poll()
		case <-reportC:
			c.report()
		}
	}
}

func (c *Core) report() {
	avg := c.mon.Average()
	max := c.mon.Max()

	c.logger.Info("period stats",
		"avg_us", avg.Duration.Microseconds(),
		"avg_cpu_pct", avg.CPUPercent,
		"max_us", max.Duration.Microseconds(),
		"max_cpu_pct", max.CPUPercent,
		"samples", c.mon.ValidSamples(),
		"dropped_periods", c.ex.Dropped(),
		"dropped_events", c.eventDrops.Load(),
	)
}

// Stats exposes the timing monitor for out-of-band inspection.
func (c *Core) Stats() *stats.Monitor { return c.mon }

// BlockSize returns the negotiated interleaved block length.
func (c *Core) BlockSize() int { return c.cfg.BlockSize }

// DroppedPeriods reports periods discarded over block-size mismatch.
func (c *Core) DroppedPeriods() uint64 { return c.ex.Dropped() }

// DroppedEvents reports MIDI events discarded over queue overflow.
func (c *Core) DroppedEvents() uint64 { return c.eventDrops.Load() }

// BoundPort names the currently bound MIDI input port, empty when
// none is.
func (c *Core) BoundPort() string {
	if c.port == nil {
		return ""
	}
	return c.port.Bound()
}
