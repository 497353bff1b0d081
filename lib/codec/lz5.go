package codec

// LZ5 adds a REPEAT_INVERSE command (copies bytes XORed with 0xFF from an
// absolute big-endian offset) and a single-byte relative repeat measured
// from the current output length.
const (
	cmdLz5RepeatInverse = 5
	cmdLz5RepeatRel     = 6
)

type LZ5 struct{}

func (LZ5) Name() string { return "lz5" }

func (e *lzEncoder) repeatInverse() lzCandidate {
	length, index := e.searchInverse()
	return lzCandidate{cmdLz5RepeatInverse, length, []byte{byte(index >> 8), byte(index & 0xFF)}}
}

func (e *lzEncoder) repeatRelByte() lzCandidate {
	length, index := e.search()
	relative := e.offset - index
	if relative > 255 {
		return lzCandidate{cmdLz5RepeatRel, 0, nil}
	}
	return lzCandidate{cmdLz5RepeatRel, length, []byte{byte(relative)}}
}

func (LZ5) Compress(data []byte) ([]byte, error) {
	return lzCompress(data, []func(e *lzEncoder) lzCandidate{
		func(e *lzEncoder) lzCandidate { return e.rle16() },
		func(e *lzEncoder) lzCandidate { return e.rle8() },
		func(e *lzEncoder) lzCandidate { return e.incrementFill() },
		func(e *lzEncoder) lzCandidate { return e.repeatLE() },
		func(e *lzEncoder) lzCandidate { return e.repeatInverse() },
		func(e *lzEncoder) lzCandidate { return e.repeatRelByte() },
	}), nil
}

func (d *lzDecoder) lz5RepeatInverse() {
	start := int(d.byteAt(d.offset))<<8 | int(d.byteAt(d.offset+1))
	d.offset += 2
	src := d.repeatBytes(start, d.length)
	for _, b := range src {
		d.out = append(d.out, b^0xFF)
	}
}

func (d *lzDecoder) lz5RepeatRel() {
	start := len(d.out) - int(d.byteAt(d.offset))
	d.offset++
	d.copyFrom(start)
}

func (LZ5) Decompress(data []byte) ([]byte, error) {
	fns := [8]func(d *lzDecoder){
		(*lzDecoder).directCopy,
		(*lzDecoder).fillByte,
		(*lzDecoder).fillWord,
		(*lzDecoder).incFill,
		(*lzDecoder).repeatLE,
		(*lzDecoder).lz5RepeatInverse,
		(*lzDecoder).lz5RepeatRel,
		(*lzDecoder).longCommand,
	}
	return lzDecompress(data, fns), nil
}
