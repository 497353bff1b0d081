package codec

// LZ19 is LZ2 plus a source-reverse-traversal repeat and a bit-reversed
// repeat, both addressed with an absolute little-endian offset.
const (
	cmdLz19RepeatBitRev  = 5
	cmdLz19RepeatReverse = 6
)

type LZ19 struct{}

func (LZ19) Name() string { return "lz19" }

func (e *lzEncoder) repeatReverseLE() lzCandidate {
	length, index := e.searchReverse()
	return lzCandidate{cmdLz19RepeatReverse, length, []byte{byte(index & 0xFF), byte(index >> 8)}}
}

func (e *lzEncoder) repeatBitReverseLE() lzCandidate {
	length, index := e.searchBitReverse()
	return lzCandidate{cmdLz19RepeatBitRev, length, []byte{byte(index & 0xFF), byte(index >> 8)}}
}

func (LZ19) Compress(data []byte) ([]byte, error) {
	return lzCompress(data, []func(e *lzEncoder) lzCandidate{
		func(e *lzEncoder) lzCandidate { return e.rle16() },
		func(e *lzEncoder) lzCandidate { return e.rle8() },
		func(e *lzEncoder) lzCandidate { return e.incrementFill() },
		func(e *lzEncoder) lzCandidate { return e.repeatBE() },
		func(e *lzEncoder) lzCandidate { return e.repeatReverseLE() },
		func(e *lzEncoder) lzCandidate { return e.repeatBitReverseLE() },
	}), nil
}

// lz19's decompress-side bit-reverse/reverse handlers are not present in
// the upstream source (its lz19_decompress inherits unimplemented base
// methods for these two slots); this port completes them analogously to
// lz3's equivalent commands, using an absolute little-endian offset to
// match this variant's encoder.
func (d *lzDecoder) lz19RepeatBitReverse() {
	start := int(d.byteAt(d.offset)) | int(d.byteAt(d.offset+1))<<8
	d.offset += 2
	src := d.repeatBytes(start, d.length)
	rev := make([]byte, len(src))
	for i, b := range src {
		rev[i] = bitReverse(b)
	}
	d.out = append(d.out, rev...)
}

func (d *lzDecoder) lz19RepeatReverse() {
	start := int(d.byteAt(d.offset)) | int(d.byteAt(d.offset+1))<<8
	d.offset += 2
	src := d.repeatBytes(start, d.length)
	rev := make([]byte, len(src))
	for i, b := range src {
		rev[len(src)-1-i] = b
	}
	d.out = append(d.out, rev...)
}

func (LZ19) Decompress(data []byte) ([]byte, error) {
	fns := [8]func(d *lzDecoder){
		(*lzDecoder).directCopy,
		(*lzDecoder).fillByte,
		(*lzDecoder).fillWord,
		(*lzDecoder).incFill,
		(*lzDecoder).repeatBE,
		(*lzDecoder).lz19RepeatBitReverse,
		(*lzDecoder).lz19RepeatReverse,
		(*lzDecoder).longCommand,
	}
	return lzDecompress(data, fns), nil
}
