/**
 * Unit tests for the butterfly transform kernels
 *
 * Copyright 2026, The polarfec Authors
 */

package polar

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestLog2OfPowerOf2(t *testing.T) {
	for i := uint32(0); i < 32; i++ {
		if got := log2OfPowerOf2(1 << i); got != i {
			t.Fatal("log2(1<<", i, ") =", got, "want", i)
		}
	}
}

func TestInterleaveFrozenAndInfoBits(t *testing.T) {
	target := make([]byte, 4)
	interleaveFrozenAndInfoBits(target, []byte{1, 0, 0, 1}, []byte{0, 0}, []byte{1, 0})
	if !bytes.Equal(target, []byte{0, 1, 0, 0}) {
		t.Fatal("got", target)
	}
	interleaveFrozenAndInfoBits(target, []byte{0xFF, 0xFF, 0xFF, 0xFF}, []byte{1, 0, 1, 1}, nil)
	if !bytes.Equal(target, []byte{1, 0, 1, 1}) {
		t.Fatal("got", target)
	}
	interleaveFrozenAndInfoBits(target, []byte{0, 0, 0, 0}, nil, []byte{1, 1, 0, 0})
	if !bytes.Equal(target, []byte{1, 1, 0, 0}) {
		t.Fatal("got", target)
	}
}

// The portable vectorized kernel must reproduce the scalar reference for
// every impulse input. Impulses span the input space, so with linearity
// this pins down the whole transform at these sizes.
func TestEncodeStagesVecImpulses(t *testing.T) {
	for _, frameSize := range []int{16, 32, 64} {
		for pos := 0; pos < frameSize; pos++ {
			temp := make([]byte, frameSize)
			temp[pos] = 1
			want := make([]byte, frameSize)
			encodeStagesGeneric(want, temp)

			temp = make([]byte, frameSize)
			temp[pos] = 1
			got := make([]byte, frameSize)
			encodeStagesVec(got, temp)

			if !bytes.Equal(got, want) {
				t.Fatal("impulse at", pos, "of", frameSize, ": got", got, "want", want)
			}
		}
	}
}

// All kernel selections must produce byte-identical frames, over aligned
// and deliberately misaligned buffers. frameSize 16 exercises the fused
// last-4-pass network with zero coarse passes.
func TestEncodeStagesEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	auto := defaultOptions()
	variants := map[string]options{
		"auto":   auto,
		"vec":    {vectorized: true, useSSSE3: false},
		"scalar": {vectorized: false},
	}

	for frameSize := 16; frameSize <= 8192; frameSize <<= 1 {
		for round := 0; round < 8; round++ {
			input := randomBits(rng, frameSize)

			want := make([]byte, frameSize)
			temp := make([]byte, frameSize)
			copy(temp, input)
			encodeStagesGeneric(want, temp)

			for name, o := range variants {
				aligned := AllocAligned(2, frameSize)
				frame, temp := aligned[0], aligned[1]
				copy(temp, input)
				encodeStages(frame, temp, &o)
				if !bytes.Equal(frame, want) {
					t.Fatal(name, "aligned: size", frameSize, "round", round, "mismatch")
				}

				raw := AllocAligned(2, frameSize+16)
				frame, temp = raw[0][1:frameSize+1], raw[1][1:frameSize+1]
				copy(temp, input)
				encodeStages(frame, temp, &o)
				if !bytes.Equal(frame, want) {
					t.Fatal(name, "misaligned: size", frameSize, "round", round, "mismatch")
				}
			}
		}
	}
}

// Frames smaller than the vector width must fall back to the scalar
// kernel regardless of options.
func TestEncodeStagesSmallFrames(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	o := defaultOptions()
	for _, frameSize := range []int{1, 2, 4, 8} {
		input := randomBits(rng, frameSize)

		want := make([]byte, frameSize)
		temp := make([]byte, frameSize)
		copy(temp, input)
		encodeStagesGeneric(want, temp)

		frame := make([]byte, frameSize)
		copy(temp, input)
		encodeStages(frame, temp, &o)
		if !bytes.Equal(frame, want) {
			t.Fatal("size", frameSize, ": got", frame, "want", want)
		}
	}
}

func benchmarkEncodeStages(b *testing.B, frameSize int, o options) {
	rng := rand.New(rand.NewSource(0))
	input := randomBits(rng, frameSize)
	bufs := AllocAligned(2, frameSize)
	frame, temp := bufs[0], bufs[1]
	b.SetBytes(int64(frameSize))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(temp, input)
		encodeStages(frame, temp, &o)
	}
}

func BenchmarkEncodeStages1K(b *testing.B) {
	benchmarkEncodeStages(b, 1024, defaultOptions())
}

func BenchmarkEncodeStages64K(b *testing.B) {
	benchmarkEncodeStages(b, 64*1024, defaultOptions())
}

func BenchmarkEncodeStagesVec1K(b *testing.B) {
	benchmarkEncodeStages(b, 1024, options{vectorized: true})
}

func BenchmarkEncodeStagesVec64K(b *testing.B) {
	benchmarkEncodeStages(b, 64*1024, options{vectorized: true})
}

func BenchmarkEncodeStagesGeneric1K(b *testing.B) {
	benchmarkEncodeStages(b, 1024, options{})
}

func BenchmarkEncodeStagesGeneric64K(b *testing.B) {
	benchmarkEncodeStages(b, 64*1024, options{})
}

func BenchmarkEncoder4K(b *testing.B) {
	rng := rand.New(rand.NewSource(0))
	const frameSize = 4096
	mask, frozen, info := randomPartition(rng, frameSize)
	enc, err := New(frameSize)
	if err != nil {
		b.Fatal(err)
	}
	bufs := AllocAligned(2, frameSize)
	frame, temp := bufs[0], bufs[1]
	b.SetBytes(frameSize)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := enc.Encode(frame, temp, mask, frozen, info); err != nil {
			b.Fatal(err)
		}
	}
}
