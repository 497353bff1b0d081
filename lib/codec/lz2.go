package codec

// LZ2 is LZ1 with the absolute repeat offset stored low byte first instead
// of high byte first.
type LZ2 struct{}

func (LZ2) Name() string { return "lz2" }

func (LZ2) Compress(data []byte) ([]byte, error) {
	return lzCompress(data, []func(e *lzEncoder) lzCandidate{
		func(e *lzEncoder) lzCandidate { return e.rle16() },
		func(e *lzEncoder) lzCandidate { return e.rle8() },
		func(e *lzEncoder) lzCandidate { return e.incrementFill() },
		func(e *lzEncoder) lzCandidate { return e.repeatBE() },
	}), nil
}

func (LZ2) Decompress(data []byte) ([]byte, error) {
	fns := [8]func(d *lzDecoder){
		(*lzDecoder).directCopy,
		(*lzDecoder).fillByte,
		(*lzDecoder).fillWord,
		(*lzDecoder).incFill,
		(*lzDecoder).repeatBE,
		(*lzDecoder).noop,
		(*lzDecoder).noop,
		(*lzDecoder).longCommand,
	}
	return lzDecompress(data, fns), nil
}
