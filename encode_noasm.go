//go:build !amd64 || noasm || appengine || gccgo

// Copyright 2026, The polarfec Authors, see LICENSE for details.

package polar

// encodeStages runs the butterfly passes over the interleaved input in
// temp, leaving the codeword in frame. Without the assembly kernel the
// portable vectorized implementation stands in; it computes the same
// bytes through the same two-tier control flow.
func encodeStages(frame, temp []byte, o *options) {
	if o.vectorized && len(frame) >= 16 {
		encodeStagesVec(frame, temp)
		return
	}
	encodeStagesGeneric(frame, temp)
}
