package canon

// permutationsOf calls visit once for every permutation of base (including
// base's own order), mutating a shared buffer in place between calls.
// visit must not retain its argument past the call.
func permutationsOf(base []byte, visit func([]byte)) {
	buf := append([]byte(nil), base...)

	var permute func(k int)

	permute = func(k int) {
		if k == len(buf) {
			visit(buf)
			return
		}

		for i := k; i < len(buf); i++ {
			buf[k], buf[i] = buf[i], buf[k]
			permute(k + 1)
			buf[k], buf[i] = buf[i], buf[k]
		}
	}

	permute(0)
}

// forEachBlockPerm enumerates every permutation of {0,...,total-1} that is
// block-diagonal with respect to the contiguous run lengths in blocks (sum
// of blocks must equal total): positions within a block may be permuted
// freely among themselves, positions in different blocks never swap. visit
// receives the candidate permutation (new position -> value) as a shared,
// reused buffer.
func forEachBlockPerm(blocks []int, total int, visit func(pi []byte)) {
	pi := make([]byte, total)
	for i := range pi {
		pi[i] = byte(i)
	}

	var rec func(blockIdx, start int)

	rec = func(blockIdx, start int) {
		if blockIdx == len(blocks) {
			visit(pi)
			return
		}

		length := blocks[blockIdx]
		idxs := make([]byte, length)

		for k := range idxs {
			idxs[k] = byte(start + k)
		}

		permutationsOf(idxs, func(p []byte) {
			copy(pi[start:start+length], p)
			rec(blockIdx+1, start+length)
		})
	}

	rec(0, 0)
}
