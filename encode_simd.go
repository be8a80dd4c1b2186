// Copyright 2026, The polarfec Authors, see LICENSE for details.

package polar

// Portable realization of the vectorized butterfly kernel, operating on
// explicit 16-lane registers. Lane i of a register is byte i. The amd64
// assembly in encode_amd64.s follows the same control flow with real
// SSE registers; on other platforms this version is the vectorized
// path.
//
// Two tiers: while more than 4 passes remain, each branch is processed
// in 32-element chunks (one shift-mask-XOR micro step, an even/odd
// separation shuffle, then a 64-bit lane unpack into the two output
// halves). The final 4 passes fit in one register and are fused into a
// bit-reversal shuffle followed by cascaded shift-mask-XOR reductions
// with shifts of 8, 4, 2 and 1 lanes.

var (
	// maskStage1 keeps even lanes, the pair-wise XOR micro step.
	maskStage1 = [16]byte{
		0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00,
		0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00, 0xFF, 0x00,
	}
	maskStage2 = [16]byte{
		0xFF, 0xFF, 0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00,
		0xFF, 0xFF, 0x00, 0x00, 0xFF, 0xFF, 0x00, 0x00,
	}
	maskStage3 = [16]byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00,
		0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00,
	}
	maskStage4 = [16]byte{
		0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	// shuffleSeparate moves "sum" lanes (even) to the low half and
	// "carry" lanes (odd) to the high half.
	shuffleSeparate = [16]byte{0, 2, 4, 6, 8, 10, 12, 14, 1, 3, 5, 7, 9, 11, 13, 15}

	// shuffleStage4 is the bit-reversal permutation feeding the fused
	// last-4-pass network.
	shuffleStage4 = [16]byte{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}
)

// srlXorMasked computes v[i] ^= v[i+shift] & mask[i] for every lane,
// with lanes shifted past the register reading as zero. Ascending order
// makes the in-place update safe: lane i+shift is always read before it
// is written.
func srlXorMasked(v *[16]byte, shift int, mask *[16]byte) {
	for i := 0; i < 16-shift; i++ {
		v[i] ^= v[i+shift] & mask[i]
	}
}

// shuffleLanes permutes v so that lane i becomes v[tbl[i]].
func shuffleLanes(v *[16]byte, tbl *[16]byte) {
	var r [16]byte
	for i := range r {
		r[i] = v[tbl[i]]
	}
	*v = r
}

// encodeStagesVec runs the butterfly transform with the two-tier
// vectorized control flow. Output is byte-identical to
// encodeStagesGeneric.
//
// len(frame) must be a power of two, 16 or larger. temp is clobbered.
func encodeStagesVec(frame, temp []byte) {
	frameSize := len(frame)
	stage := int(log2OfPowerOf2(uint32(frameSize)))
	frameHalf := frameSize >> 1
	numBranches := 1

	var r0, r1 [16]byte

	// Coarse tier. A branch has at least 32 elements here, so chunks of
	// two registers always stay within one branch half.
	for stage > 4 {
		framePos, tempPos := 0, 0
		for branch := 0; branch < numBranches; branch++ {
			for bit := 0; bit < frameHalf; bit += 16 {
				copy(r0[:], temp[tempPos:tempPos+16])
				copy(r1[:], temp[tempPos+16:tempPos+32])
				tempPos += 32

				srlXorMasked(&r0, 1, &maskStage1)
				shuffleLanes(&r0, &shuffleSeparate)
				srlXorMasked(&r1, 1, &maskStage1)
				shuffleLanes(&r1, &shuffleSeparate)

				// unpack low and high 64-bit halves into the per-pass
				// output positions.
				copy(frame[framePos:framePos+8], r0[:8])
				copy(frame[framePos+8:framePos+16], r1[:8])
				copy(frame[framePos+frameHalf:framePos+frameHalf+8], r0[8:])
				copy(frame[framePos+frameHalf+8:framePos+frameHalf+16], r1[8:])
				framePos += 16
			}
			framePos += frameHalf
		}
		copy(temp, frame[:frameSize])

		numBranches <<= 1
		frameHalf >>= 1
		stage--
	}

	// Fine tier: the remaining 4 passes, fused per 16-lane chunk.
	framePos, tempPos := 0, 0
	for branch := 0; branch < numBranches; branch++ {
		copy(r0[:], temp[tempPos:tempPos+16])
		tempPos += 16

		shuffleLanes(&r0, &shuffleStage4)
		srlXorMasked(&r0, 8, &maskStage4)
		srlXorMasked(&r0, 4, &maskStage3)
		srlXorMasked(&r0, 2, &maskStage2)
		srlXorMasked(&r0, 1, &maskStage1)

		copy(frame[framePos:framePos+16], r0[:])
		framePos += 16
	}
}
