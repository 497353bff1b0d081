package codec

// lz.go implements the shared compressor/decompressor skeleton used by the
// five LZ-family variants (lz1, lz2, lz3, lz5, lz19). Each variant differs
// only in which command set is enabled and how repeat offsets are encoded;
// see spec Design Notes "Codec commonalities".

const (
	cmdDirectCopy = 0
	cmdFillByte   = 1
	cmdFillWord   = 2
	cmdFillInc    = 3 // aliases cmdFillZero; a variant registers only one
	cmdFillZero   = 3
	cmdRepeat     = 4
)

// lzCandidate is one command's proposal for the bytes starting at the
// encoder's current offset: how many input bytes it would consume and the
// operand bytes that follow the command header.
type lzCandidate struct {
	command byte
	length  int
	val     []byte
}

// lzEncoder holds the greedy compressor's cursor and search helpers over
// the uncompressed input.
type lzEncoder struct {
	in     []byte
	offset int
}

func (e *lzEncoder) rle8() lzCandidate {
	val := e.in[e.offset]
	index := e.offset + 1
	for index < len(e.in) && e.in[index] == val {
		index++
	}
	return lzCandidate{cmdFillByte, index - e.offset, []byte{val}}
}

func (e *lzEncoder) rle16() lzCandidate {
	if e.offset+4 >= len(e.in) {
		return lzCandidate{cmdFillWord, 0, nil}
	}
	v1, v2 := e.in[e.offset], e.in[e.offset+1]
	index := e.offset + 2
	for index+1 < len(e.in) && e.in[index] == v1 && e.in[index+1] == v2 {
		index += 2
	}
	length := index - e.offset
	if length <= 2 {
		length = 0
	}
	return lzCandidate{cmdFillWord, length, []byte{v1, v2}}
}

func (e *lzEncoder) incrementFill() lzCandidate {
	val := e.in[e.offset]
	index := e.offset
	for index < len(e.in) && e.in[index] == val {
		val = (val + 1) & 0xFF
		index++
	}
	return lzCandidate{cmdFillInc, index - e.offset, []byte{e.in[e.offset]}}
}

func (e *lzEncoder) zeroFill() lzCandidate {
	index := e.offset + 1
	for index < len(e.in) && e.in[index] == 0 {
		index++
	}
	return lzCandidate{cmdFillZero, index - e.offset, nil}
}

// search finds the longest forward match of in[offset:] against some
// earlier position in in[:offset], returning (length, matchIndex).
func (e *lzEncoder) search() (int, int) {
	maxLen, maxIdx := 0, 0
	for index := 0; index < e.offset; index++ {
		i, off := index, e.offset
		for off < len(e.in) && e.in[i] == e.in[off] {
			off++
			i++
		}
		length := off - e.offset
		if length > maxLen {
			maxLen = length
			maxIdx = i - length
		}
	}
	return maxLen, maxIdx
}

// searchInverse matches in[offset:] against the bitwise-NOT of earlier bytes.
func (e *lzEncoder) searchInverse() (int, int) {
	maxLen, maxIdx := 0, 0
	for index := 0; index < e.offset; index++ {
		i, off := index, e.offset
		for off < len(e.in) && e.in[i] == e.in[off]^0xFF {
			off++
			i++
		}
		length := off - e.offset
		if length > maxLen {
			maxLen = length
			maxIdx = i - length
		}
	}
	return maxLen, maxIdx
}

// searchReverse matches in[offset:] walking the source backward from index.
func (e *lzEncoder) searchReverse() (int, int) {
	maxLen, maxIdx := 0, 0
	for index := e.offset; index >= 0; index-- {
		i, off := index, e.offset
		for off < len(e.in) && i >= 0 && e.in[i] == e.in[off] {
			off++
			i--
		}
		length := off - e.offset
		if length > maxLen {
			maxLen = length
			maxIdx = i + 1
		}
	}
	return maxLen, maxIdx
}

// searchBitReverse matches in[offset:] against the bit-reversed earlier
// bytes; ports and completes the lz3/lz19 bit-reverse repeat command.
func (e *lzEncoder) searchBitReverse() (int, int) {
	maxLen, maxIdx := 0, 0
	for index := 0; index < e.offset; index++ {
		i, off := index, e.offset
		for off < len(e.in) && e.in[i] == bitReverse(e.in[off]) {
			off++
			i++
		}
		length := off - e.offset
		if length > maxLen {
			maxLen = length
			maxIdx = i - length
		}
	}
	return maxLen, maxIdx
}

func (e *lzEncoder) repeatBE() lzCandidate {
	length, index := e.search()
	return lzCandidate{cmdRepeat, length, []byte{byte(index & 0xFF), byte(index >> 8)}}
}

func (e *lzEncoder) repeatLE() lzCandidate {
	length, index := e.search()
	return lzCandidate{cmdRepeat, length, []byte{byte(index >> 8), byte(index & 0xFF)}}
}

// bitReverse reverses the bit order of a byte.
func bitReverse(b byte) byte {
	var r byte
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}

// lzWriteCommand appends a command header (short or long form) plus its
// operand bytes to out.
func lzWriteCommand(out []byte, command byte, length int, val []byte) []byte {
	if command == cmdFillWord {
		length >>= 1
	}
	length--
	if length > 0x1F {
		header := 0xE0 | (command << 2) | byte(length>>8)
		out = append(out, header, byte(length&0xFF))
		out = append(out, val...)
	} else {
		header := command<<5 | byte(length)
		out = append(out, header)
		out = append(out, val...)
	}
	return out
}

// lzCompress runs the greedy command-selection loop shared by every LZ
// variant: at each position every candidate function is evaluated and the
// one maximizing length-minus-header-bytes is chosen; runs that gain fewer
// than 3 bytes accumulate into a direct-copy span instead.
func lzCompress(data []byte, candidates []func(e *lzEncoder) lzCandidate) []byte {
	e := &lzEncoder{in: data}
	var out []byte
	var direct []byte

	flushDirect := func() {
		if len(direct) == 0 {
			return
		}
		out = lzWriteCommand(out, cmdDirectCopy, len(direct), direct)
		direct = nil
	}

	for e.offset < len(e.in) {
		best := candidates[0](e)
		bestScore := best.length - len(best.val)
		for _, f := range candidates[1:] {
			c := f(e)
			score := c.length - len(c.val)
			if score > bestScore {
				best, bestScore = c, score
			}
		}

		length := best.length
		if bestScore > 2 {
			flushDirect()
			out = lzWriteCommand(out, best.command, length, best.val)
		} else {
			direct = append(direct, e.in[e.offset])
			length = 1
		}
		e.offset += length
	}
	flushDirect()
	out = append(out, 0xFF)
	return out
}

// lzDecoder holds the decompressor's cursor over the compressed input and
// the output accumulated so far.
type lzDecoder struct {
	in        []byte
	offset    int
	length    int
	out       []byte
	functions [8]func(d *lzDecoder)
}

func (d *lzDecoder) directCopy() {
	end := d.offset + d.length
	if end > len(d.in) {
		end = len(d.in)
	}
	d.out = append(d.out, d.in[d.offset:end]...)
	d.offset += d.length
}

// byteAt tolerates a truncated stream by returning 0 for an out-of-range
// read instead of panicking.
func (d *lzDecoder) byteAt(i int) byte {
	if i < 0 || i >= len(d.in) {
		return 0
	}
	return d.in[i]
}

func (d *lzDecoder) fillByte() {
	val := d.byteAt(d.offset)
	for i := 0; i < d.length; i++ {
		d.out = append(d.out, val)
	}
	d.offset++
}

func (d *lzDecoder) fillZero() {
	for i := 0; i < d.length; i++ {
		d.out = append(d.out, 0)
	}
}

func (d *lzDecoder) fillWord() {
	v1, v2 := d.byteAt(d.offset), d.byteAt(d.offset+1)
	for i := 0; i < d.length; i++ {
		d.out = append(d.out, v1, v2)
	}
	d.offset += 2
}

func (d *lzDecoder) incFill() {
	val := d.byteAt(d.offset)
	for i := 0; i < d.length; i++ {
		d.out = append(d.out, val)
		val = (val + 1) & 0xFF
	}
	d.offset++
}

func (d *lzDecoder) repeatBE() {
	start := int(d.byteAt(d.offset)) | int(d.byteAt(d.offset+1))<<8
	d.offset += 2
	d.copyFrom(start)
}

func (d *lzDecoder) repeatLE() {
	start := int(d.byteAt(d.offset))<<8 | int(d.byteAt(d.offset+1))
	d.offset += 2
	d.copyFrom(start)
}

// repeatBytes reads length bytes starting at start out of the output
// produced so far. Unlike a plain slice of d.out, this tolerates (and is
// required for) self-overlapping back-references where start+length
// exceeds the current output length: each byte is resolved against
// whatever has already been produced, including bytes this same call
// appended moments earlier, which is how a single-byte-back reference can
// legitimately repeat a run far longer than the distance it points to.
func (d *lzDecoder) repeatBytes(start, length int) []byte {
	out := make([]byte, 0, length)
	for i := 0; i < length; i++ {
		idx := start + i
		var b byte
		switch {
		case idx < 0:
			b = 0
		case idx < len(d.out):
			b = d.out[idx]
		case idx-len(d.out) < len(out):
			b = out[idx-len(d.out)]
		}
		out = append(out, b)
	}
	return out
}

func (d *lzDecoder) copyFrom(start int) {
	d.out = append(d.out, d.repeatBytes(start, d.length)...)
}

func (d *lzDecoder) noop() {}

func lzDecompress(data []byte, functions [8]func(d *lzDecoder)) []byte {
	d := &lzDecoder{in: data, functions: functions}
	for d.offset < len(d.in) {
		d.command()
	}
	return d.out
}

func (d *lzDecoder) command() {
	if d.offset >= len(d.in) {
		return
	}
	chunk := d.in[d.offset]
	if chunk == 0xFF {
		d.offset = len(d.in)
		return
	}
	command := (chunk & 0xE0) >> 5
	d.length = int(chunk & 0x1F)
	if command != 7 {
		d.length++
	}
	d.offset++
	if command == 7 {
		d.longCommand()
		return
	}
	d.functions[command](d)
}

func (d *lzDecoder) longCommand() {
	if d.offset >= len(d.in) {
		d.offset = len(d.in)
		return
	}
	command := d.length >> 2
	extLength := int(d.in[d.offset])
	d.length = ((d.length & 0x3) << 8 | extLength) + 1
	d.offset++
	d.functions[command](d)
}
