//go:build !noasm && !appengine && !gccgo

// Copyright 2026, The polarfec Authors, see LICENSE for details.

package polar

//go:noescape
func encodeStagesSSSE3(frame, temp *byte, frameSize uint64)

//go:noescape
func encodeStagesAlignedSSSE3(frame, temp *byte, frameSize uint64)

// encodeStages runs the butterfly passes over the interleaved input in
// temp, leaving the codeword in frame. The assembly kernels need at
// least 16 elements; below that the scalar reference is the right
// choice anyway. When both buffers sit on 16 byte boundaries the
// aligned-load entry is taken.
func encodeStages(frame, temp []byte, o *options) {
	frameSize := len(frame)
	if !o.vectorized || frameSize < 16 {
		encodeStagesGeneric(frame, temp)
		return
	}
	if o.useSSSE3 {
		if aligned16(frame) && aligned16(temp) {
			encodeStagesAlignedSSSE3(&frame[0], &temp[0], uint64(frameSize))
		} else {
			encodeStagesSSSE3(&frame[0], &temp[0], uint64(frameSize))
		}
		return
	}
	encodeStagesVec(frame, temp)
}
