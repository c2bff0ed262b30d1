// SPDX-License-Identifier: EPL-2.0

package exchange

import (
	"testing"

	"github.com/ik5/audrt/internal/audiotest"
	"github.com/ik5/audrt/pcm"
)

const blockSize = 16

func TestNew_BadBlockSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -2, 3, 255} {
		if _, err := New(size, nil); err == nil {
			t.Errorf("New(%d) error = nil, want ErrBadBlockSize", size)
		}
	}
}

func TestAcceptInput_SizeMismatch(t *testing.T) {
	t.Parallel()

	e, err := New(blockSize, nil)
	if err != nil {
		t.Fatal(err)
	}

	if e.AcceptInput(make([]uint32, blockSize-2)) {
		t.Error("AcceptInput accepted a short block")
	}
	if e.AcceptInput(make([]uint32, blockSize+2)) {
		t.Error("AcceptInput accepted a long block")
	}
	if got := e.Dropped(); got != 2 {
		t.Errorf("Dropped() = %d, want 2", got)
	}
}

func TestProduceOutput_SizeMismatch(t *testing.T) {
	t.Parallel()

	e, err := New(blockSize, nil)
	if err != nil {
		t.Fatal(err)
	}

	if n := e.ProduceOutput(make([]uint32, blockSize/2)); n != 0 {
		t.Errorf("ProduceOutput(short block) = %d, want 0", n)
	}
}

func TestPassThrough(t *testing.T) {
	t.Parallel()

	// With no engine bound the output block must reproduce the input
	// block sample for sample (up to requantization, which is exact for
	// values that came in as codes).
	e, err := New(blockSize, nil)
	if err != nil {
		t.Fatal(err)
	}

	in := audiotest.RampBlock(blockSize, 0)
	if !e.AcceptInput(in) {
		t.Fatal("AcceptInput rejected a well-sized block")
	}

	out := make([]uint32, blockSize)
	if n := e.ProduceOutput(out); n != blockSize {
		t.Fatalf("ProduceOutput() = %d, want %d", n, blockSize)
	}

	for i := range in {
		if out[i] != in[i] {
			t.Fatalf("out[%d] = %#x, want %#x", i, out[i], in[i])
		}
	}
}

func TestEngineInvocation(t *testing.T) {
	t.Parallel()

	eng := audiotest.NewGainEngine(0.5)
	e, err := New(blockSize, eng)
	if err != nil {
		t.Fatal(err)
	}

	in := audiotest.RampBlock(blockSize, 0)
	e.AcceptInput(in)

	out := make([]uint32, blockSize)
	e.ProduceOutput(out)

	if eng.Calls() != 1 {
		t.Fatalf("engine ran %d times, want 1", eng.Calls())
	}

	for i := range in {
		want := pcm.FromFloat(pcm.ToFloat(in[i]) * 0.5)
		if out[i] != want {
			t.Fatalf("out[%d] = %#x, want %#x", i, out[i], want)
		}
	}
}

func TestSetProcessor_SwapAndClear(t *testing.T) {
	t.Parallel()

	e, err := New(blockSize, nil)
	if err != nil {
		t.Fatal(err)
	}

	in := audiotest.RampBlock(blockSize, 0)
	out := make([]uint32, blockSize)

	eng := audiotest.NewGainEngine(1.0)
	e.SetProcessor(eng)
	e.AcceptInput(in)
	e.ProduceOutput(out)
	if eng.Calls() != 1 {
		t.Fatalf("engine ran %d times after bind, want 1", eng.Calls())
	}

	e.SetProcessor(nil)
	e.AcceptInput(in)
	e.ProduceOutput(out)
	if eng.Calls() != 1 {
		t.Errorf("engine ran %d times after unbind, want still 1", eng.Calls())
	}
}

func TestDoubleBuffer_EngineSeesCurrentPeriod(t *testing.T) {
	t.Parallel()

	// For each period k the engine must see the conversion of period
	// k's input, never a stale or future block, across enough periods
	// to exercise both slots.
	eng := &audiotest.CaptureEngine{}
	e, err := New(blockSize, eng)
	if err != nil {
		t.Fatal(err)
	}

	const periods = 5
	out := make([]uint32, blockSize)
	inputs := make([][]uint32, periods)

	for k := range periods {
		inputs[k] = audiotest.RampBlock(blockSize, k)
		if !e.AcceptInput(inputs[k]) {
			t.Fatalf("period %d: AcceptInput rejected", k)
		}
		if n := e.ProduceOutput(out); n != blockSize {
			t.Fatalf("period %d: ProduceOutput() = %d", k, n)
		}
	}

	if len(eng.Inputs) != periods {
		t.Fatalf("engine saw %d periods, want %d", len(eng.Inputs), periods)
	}

	for k := range periods {
		for i, got := range eng.Inputs[k] {
			want := pcm.ToFloat(inputs[k][2*i])
			if got != want {
				t.Fatalf("period %d frame %d: engine saw %v, want %v", k, i, got, want)
			}
		}
	}
}

func TestDroppedPeriodKeepsPreviousInput(t *testing.T) {
	t.Parallel()

	// A size-mismatched delivery drops that period's data; the engine
	// keeps processing the last good input.
	eng := &audiotest.CaptureEngine{}
	e, err := New(blockSize, eng)
	if err != nil {
		t.Fatal(err)
	}

	good := audiotest.RampBlock(blockSize, 1)
	e.AcceptInput(good)

	e.AcceptInput(make([]uint32, blockSize-2)) // rejected

	out := make([]uint32, blockSize)
	e.ProduceOutput(out)

	if len(eng.Inputs) != 1 {
		t.Fatalf("engine saw %d periods, want 1", len(eng.Inputs))
	}
	if got, want := eng.Inputs[0][1], pcm.ToFloat(good[2]); got != want {
		t.Errorf("engine input frame 1 = %v, want %v from the good block", got, want)
	}
}
