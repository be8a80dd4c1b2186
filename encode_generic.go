// Copyright 2026, The polarfec Authors, see LICENSE for details.

package polar

// encodeStagesGeneric is the reference implementation of the butterfly
// transform. It runs log2(N) passes over the interleaved input in temp
// and leaves the codeword in frame. The SIMD kernels must match its
// output byte for byte.
//
// frame and temp must both hold len(frame) bytes, with len(frame) a
// power of two. temp is clobbered.
func encodeStagesGeneric(frame, temp []byte) {
	frameSize := len(frame)
	if frameSize == 1 {
		// Zero passes. The codeword is the interleaved input.
		frame[0] = temp[0]
		return
	}
	frameHalf := frameSize >> 1
	numBranches := 1

	for stage := log2OfPowerOf2(uint32(frameSize)); stage > 0; stage-- {
		encodeStage(frame, temp, numBranches, frameHalf)
		copy(temp, frame[:frameSize])

		numBranches <<= 1
		frameHalf >>= 1
	}
}

// encodeStage performs one butterfly pass: within each branch of width
// 2*frameHalf, neighbor pairs of temp are combined so that
//
//	frame[j] = temp[2j] ^ temp[2j+1]
//	frame[j+frameHalf] = temp[2j+1]
//
// with j relative to the branch start.
func encodeStage(frame, temp []byte, numBranches, frameHalf int) {
	for branch := 0; branch < numBranches; branch++ {
		off := branch * frameHalf * 2
		for j := 0; j < frameHalf; j++ {
			frame[off+j] = temp[off+2*j] ^ temp[off+2*j+1]
			frame[off+j+frameHalf] = temp[off+2*j+1]
		}
	}
}
