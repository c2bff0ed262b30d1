// SPDX-License-Identifier: EPL-2.0

package stats

import (
	"math"
	"sync/atomic"
	"time"
)

// Sample is one period's timing measurement.
type Sample struct {
	Duration   time.Duration
	CPUPercent float32
}

// Monitor collects timing samples from the real-time context into a
// circular buffer readable from any other context without locking.
type Monitor struct {
	sampleRate int

	// Each slot packs one Sample: duration in microseconds as float32
	// bits in the high word, CPU percentage bits in the low word. One
	// atomic store per period keeps the write torn-free.
	slots []atomic.Uint64
	index atomic.Uint32
	valid atomic.Uint32

	// Touched only by the real-time context.
	start  time.Time
	active bool

	now func() time.Time
}

// NewMonitor creates a monitor for the given sample rate keeping depth
// samples of history.
func NewMonitor(sampleRate, depth int) (*Monitor, error) {
	if sampleRate <= 0 {
		return nil, ErrBadSampleRate
	}
	if depth <= 0 {
		return nil, ErrBadDepth
	}

	return &Monitor{
		sampleRate: sampleRate,
		slots:      make([]atomic.Uint64, depth),
		now:        time.Now,
	}, nil
}

// Depth returns the sample-history capacity.
func (m *Monitor) Depth() int { return len(m.slots) }

// BeginPeriod records the start of one processing period.
func (m *Monitor) BeginPeriod() {
	m.start = m.now()
	m.active = true
}

// EndPeriod closes the period opened by BeginPeriod and appends one
// timing sample, overwriting the oldest once the buffer is full.
// samplesProcessed sets the time budget the elapsed duration is
// measured against. Without a preceding BeginPeriod it is a no-op.
func (m *Monitor) EndPeriod(samplesProcessed int) {
	if !m.active {
		return
	}
	m.active = false

	elapsed := m.now().Sub(m.start)

	var cpu float32
	if samplesProcessed > 0 {
		budget := float64(samplesProcessed) / float64(m.sampleRate) * float64(time.Second)
		cpu = float32(float64(elapsed) / budget * 100.0)
	}

	i := m.index.Load()
	m.slots[i].Store(pack(elapsed, cpu))
	m.index.Store((i + 1) % uint32(len(m.slots)))

	if v := m.valid.Load(); v < uint32(len(m.slots)) {
		m.valid.Store(v + 1)
	}
}

// ValidSamples returns how many samples currently hold data.
func (m *Monitor) ValidSamples() int {
	return int(m.valid.Load())
}

// Average returns the mean duration and CPU usage over the valid
// samples. The zero Sample is returned while no data exists.
func (m *Monitor) Average() Sample {
	n := int(m.valid.Load())
	if n == 0 {
		return Sample{}
	}

	var sumDur float64
	var sumCPU float64
	for i := range n {
		s := unpack(m.slots[i].Load())
		sumDur += float64(s.Duration)
		sumCPU += float64(s.CPUPercent)
	}

	return Sample{
		Duration:   time.Duration(sumDur / float64(n)),
		CPUPercent: float32(sumCPU / float64(n)),
	}
}

// Max returns the worst duration and CPU usage over the valid samples.
func (m *Monitor) Max() Sample {
	n := int(m.valid.Load())
	if n == 0 {
		return Sample{}
	}

	var max Sample
	for i := range n {
		s := unpack(m.slots[i].Load())
		if s.Duration > max.Duration {
			max.Duration = s.Duration
		}
		if s.CPUPercent > max.CPUPercent {
			max.CPUPercent = s.CPUPercent
		}
	}

	return max
}

// Reset discards all accumulated samples.
func (m *Monitor) Reset() {
	m.valid.Store(0)
	m.index.Store(0)
	for i := range m.slots {
		m.slots[i].Store(0)
	}
}

func pack(d time.Duration, cpu float32) uint64 {
	us := float32(float64(d) / float64(time.Microsecond))
	return uint64(math.Float32bits(us))<<32 | uint64(math.Float32bits(cpu))
}

func unpack(v uint64) Sample {
	us := math.Float32frombits(uint32(v >> 32))
	cpu := math.Float32frombits(uint32(v))
	return Sample{
		Duration:   time.Duration(float64(us) * float64(time.Microsecond)),
		CPUPercent: cpu,
	}
}
