/**
 * Polar code encoding over 8-bit values.
 *
 * Copyright 2026, The polarfec Authors
 */

// Package polar implements the polar code encoding transform: the
// recursive pairwise-XOR ("butterfly") combination of frozen and
// information bits into a codeword, with one byte per logical bit.
//
// The package provides a portable reference kernel and SIMD-accelerated
// kernels producing bit-identical output. Kernel selection is automatic
// based on CPU capability, frame size and buffer alignment.
package polar

import "errors"

// Encoder encodes a frame of bits with the polar butterfly transform.
// An Encoder is safe for concurrent use as long as each call operates
// on its own frame and temp buffers.
type Encoder interface {
	// Encode overwrites frame with the codeword for the given frozen
	// and information bits.
	//
	// frame receives the result and temp is scratch space; both must
	// be frameSize bytes and must not overlap. frozenBitMask holds one
	// byte per position, nonzero for frozen positions. frozenBits and
	// infoBits hold one bit per byte (0 or 1) and are consumed in
	// order; their lengths must match the number of nonzero and zero
	// mask positions respectively. temp is clobbered.
	Encode(frame, temp, frozenBitMask, frozenBits, infoBits []byte) error
}

// polarCode holds the frame geometry and kernel selection for a fixed
// frame size. Construct using New().
type polarCode struct {
	frameSize int
	o         options
}

// ErrInvalidFrameSize will be returned by New, if the requested frame
// size is not a power of two or is less than 1.
var ErrInvalidFrameSize = errors.New("frame size must be a power of two, 1 or larger")

// New creates a new encoder for the given frame size.
// The frame size must be a power of two. You can reuse this encoder;
// the frozen set is supplied per call, so one encoder serves any
// frozen/information partition of the same length.
func New(frameSize int, opts ...Option) (Encoder, error) {
	if frameSize < 1 || frameSize&(frameSize-1) != 0 {
		return nil, ErrInvalidFrameSize
	}
	p := &polarCode{
		frameSize: frameSize,
		o:         defaultOptions(),
	}
	for _, opt := range opts {
		opt(&p.o)
	}
	return p, nil
}

// ErrBufferLength is returned if frame, temp or frozenBitMask does not
// have exactly frameSize bytes.
var ErrBufferLength = errors.New("frame, temp and mask buffers must be frameSize bytes")

// ErrFrozenBitCount is returned if len(frozenBits) does not match the
// number of nonzero positions in frozenBitMask.
var ErrFrozenBitCount = errors.New("frozen bit count does not match mask")

// ErrInfoBitCount is returned if len(infoBits) does not match the
// number of zero positions in frozenBitMask.
var ErrInfoBitCount = errors.New("info bit count does not match mask")

// ErrBufferOverlap is returned if frame and temp share memory.
var ErrBufferOverlap = errors.New("frame and temp buffers must not overlap")

func (p *polarCode) Encode(frame, temp, frozenBitMask, frozenBits, infoBits []byte) error {
	if err := p.checkArgs(frame, temp, frozenBitMask, frozenBits, infoBits); err != nil {
		return err
	}
	interleaveFrozenAndInfoBits(temp, frozenBitMask, frozenBits, infoBits)
	encodeStages(frame, temp, &p.o)
	return nil
}

// checkArgs verifies the contract documented on Encoder.Encode.
// The kernels below assume it holds and perform no checks of their own.
func (p *polarCode) checkArgs(frame, temp, mask, frozenBits, infoBits []byte) error {
	if len(frame) != p.frameSize || len(temp) != p.frameSize || len(mask) != p.frameSize {
		return ErrBufferLength
	}
	frozen := 0
	for _, m := range mask {
		if m != 0 {
			frozen++
		}
	}
	if len(frozenBits) != frozen {
		return ErrFrozenBitCount
	}
	if len(infoBits) != p.frameSize-frozen {
		return ErrInfoBitCount
	}
	if sliceOverlap(frame, temp) {
		return ErrBufferOverlap
	}
	return nil
}

// interleaveFrozenAndInfoBits merges the frozen and info bit streams
// into target, walking the mask in position order. Each stream has its
// own cursor starting at 0.
func interleaveFrozenAndInfoBits(target, frozenBitMask, frozenBits, infoBits []byte) {
	frozen, info := 0, 0
	for i, m := range frozenBitMask {
		if m != 0 {
			target[i] = frozenBits[frozen]
			frozen++
		} else {
			target[i] = infoBits[info]
			info++
		}
	}
}

// log2OfPowerOf2 returns the exponent of val.
// The result is undefined if val is not an exact power of two.
// Algorithm from: http://graphics.stanford.edu/~seander/bithacks.html#IntegerLog
func log2OfPowerOf2(val uint32) uint32 {
	res := uint32(0)
	if val&0xAAAAAAAA != 0 {
		res = 1
	}
	if val&0xFFFF0000 != 0 {
		res |= 1 << 4
	}
	if val&0xFF00FF00 != 0 {
		res |= 1 << 3
	}
	if val&0xF0F0F0F0 != 0 {
		res |= 1 << 2
	}
	if val&0xCCCCCCCC != 0 {
		res |= 1 << 1
	}
	return res
}
