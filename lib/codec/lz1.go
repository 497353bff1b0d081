package codec

// LZ1 is the simplest LZ-family variant: fill commands plus an absolute
// repeat command whose 2-byte offset is stored high byte first.
type LZ1 struct{}

func (LZ1) Name() string { return "lz1" }

func (LZ1) Compress(data []byte) ([]byte, error) {
	return lzCompress(data, []func(e *lzEncoder) lzCandidate{
		func(e *lzEncoder) lzCandidate { return e.rle16() },
		func(e *lzEncoder) lzCandidate { return e.rle8() },
		func(e *lzEncoder) lzCandidate { return e.incrementFill() },
		func(e *lzEncoder) lzCandidate { return e.repeatLE() },
	}), nil
}

func (LZ1) Decompress(data []byte) ([]byte, error) {
	fns := [8]func(d *lzDecoder){
		(*lzDecoder).directCopy,
		(*lzDecoder).fillByte,
		(*lzDecoder).fillWord,
		(*lzDecoder).incFill,
		(*lzDecoder).repeatLE,
		(*lzDecoder).noop,
		(*lzDecoder).noop,
		(*lzDecoder).longCommand,
	}
	return lzDecompress(data, fns), nil
}
