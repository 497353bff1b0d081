package codec

// LZ3 adds a zero-fill command and three back-reference forms: a
// relative/absolute hybrid repeat, a source-reverse-traversal repeat, and a
// bit-reversed-byte repeat. The hybrid repeat command preserves the
// original's offset quirk: the long (absolute) form's two offset bytes are
// read as (hi<<8)|lo with the top bit of the first byte clear, since a set
// top bit selects the short relative form. lz1 and lz5 read their absolute
// offsets in the same byte order; lz2 and lz19 read them low byte first.
const (
	cmdLz3RepeatRel     = cmdRepeat // 4
	cmdLz3RepeatBitRev  = 5
	cmdLz3RepeatReverse = 6
)

type LZ3 struct{}

func (LZ3) Name() string { return "lz3" }

func (e *lzEncoder) repeatFunc(command byte, search func() (int, int)) lzCandidate {
	length, index := search()
	relative := e.offset - index
	if relative < 128 {
		return lzCandidate{command, length, []byte{byte(relative) | 0x80}}
	}
	return lzCandidate{command, length, []byte{byte((index >> 8) & 0x7F), byte(index & 0xFF)}}
}

func (LZ3) Compress(data []byte) ([]byte, error) {
	return lzCompress(data, []func(e *lzEncoder) lzCandidate{
		func(e *lzEncoder) lzCandidate { return e.rle16() },
		func(e *lzEncoder) lzCandidate { return e.rle8() },
		func(e *lzEncoder) lzCandidate { return e.zeroFill() },
		func(e *lzEncoder) lzCandidate { return e.repeatFunc(cmdLz3RepeatRel, e.search) },
		func(e *lzEncoder) lzCandidate { return e.repeatFunc(cmdLz3RepeatReverse, e.searchReverse) },
		func(e *lzEncoder) lzCandidate { return e.repeatFunc(cmdLz3RepeatBitRev, e.searchBitReverse) },
	}), nil
}

// repeatData reads an lz3-style offset (relative 1-byte form when the top
// bit is set, else a 2-byte big-endian-ish absolute form) and returns the
// referenced slice of already-decoded output.
func (d *lzDecoder) repeatData() []byte {
	index := d.byteAt(d.offset)
	var start int
	if index&0x80 != 0 {
		start = len(d.out) - int(index&0x7F)
		d.offset++
	} else {
		start = int(index)<<8 | int(d.byteAt(d.offset+1))
		d.offset += 2
	}
	return d.repeatBytes(start, d.length)
}

func (d *lzDecoder) lz3RepeatRel() {
	d.out = append(d.out, d.repeatData()...)
}

func (d *lzDecoder) lz3RepeatBitReverse() {
	src := d.repeatData()
	rev := make([]byte, len(src))
	for i, b := range src {
		rev[i] = bitReverse(b)
	}
	d.out = append(d.out, rev...)
}

func (d *lzDecoder) lz3RepeatReverse() {
	src := d.repeatData()
	rev := make([]byte, len(src))
	for i, b := range src {
		rev[len(src)-1-i] = b
	}
	d.out = append(d.out, rev...)
}

func (LZ3) Decompress(data []byte) ([]byte, error) {
	fns := [8]func(d *lzDecoder){
		(*lzDecoder).directCopy,
		(*lzDecoder).fillByte,
		(*lzDecoder).fillWord,
		(*lzDecoder).fillZero,
		(*lzDecoder).lz3RepeatRel,
		(*lzDecoder).lz3RepeatBitReverse,
		(*lzDecoder).lz3RepeatReverse,
		(*lzDecoder).longCommand,
	}
	return lzDecompress(data, fns), nil
}
