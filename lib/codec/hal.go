package codec

// HAL implements the exhal/inhal compression format used by HAL
// Laboratory SNES titles (Kirby's Dream Course, Kirby Super Star, ...).
// Commands are a 3-bit type plus a 5-bit length-1, with a long form
// (top 3 bits 0b111) extending length to 10 bits via a second byte.
// Command 7 aliases command 4 (both are a plain backward reference) in
// both the long and regular encodings; this is preserved rather than
// treated as a defect.
type HAL struct{}

func (HAL) Name() string { return "hal" }

const (
	halRunSize     = 32
	halLongRunSize = 1024
)

func halRotate(b byte) byte {
	var result byte
	if b&0x01 != 0 {
		result |= 0x80
	}
	if b&0x02 != 0 {
		result |= 0x40
	}
	if b&0x04 != 0 {
		result |= 0x20
	}
	if b&0x08 != 0 {
		result |= 0x10
	}
	if b&0x10 != 0 {
		result |= 0x08
	}
	if b&0x20 != 0 {
		result |= 0x04
	}
	if b&0x40 != 0 {
		result |= 0x02
	}
	if b&0x80 != 0 {
		result |= 0x01
	}
	return result
}

func (HAL) Decompress(data []byte) ([]byte, error) {
	var out []byte
	pos := 0
	for pos < len(data) {
		input := data[pos]
		pos++
		if input == 0xFF {
			break
		}

		var command int
		var length int
		if input&0xE0 == 0xE0 {
			command = int(input>>2) & 0x07
			if pos >= len(data) {
				break
			}
			length = (int(input&0x03)<<8 | int(data[pos])) + 1
			pos++
		} else {
			command = int(input >> 5)
			length = int(input&0x1F) + 1
		}

		switch command {
		case 0:
			for i := 0; i < length; i++ {
				if pos >= len(data) {
					break
				}
				out = append(out, data[pos])
				pos++
			}
		case 1:
			if pos >= len(data) {
				break
			}
			value := data[pos]
			pos++
			for i := 0; i < length; i++ {
				out = append(out, value)
			}
		case 2:
			if pos+1 >= len(data) {
				break
			}
			v1, v2 := data[pos], data[pos+1]
			pos += 2
			for i := 0; i < length; i++ {
				out = append(out, v1, v2)
			}
		case 3:
			if pos >= len(data) {
				break
			}
			value := data[pos]
			pos++
			for i := 0; i < length; i++ {
				out = append(out, value+byte(i))
			}
		case 4, 7:
			if pos+1 >= len(data) {
				break
			}
			offset := int(data[pos])<<8 | int(data[pos+1])
			pos += 2
			if offset+length > len(out) {
				for i := 0; i < length; i++ {
					if offset+i < len(out) {
						out = append(out, out[offset+i])
					}
				}
			} else {
				for i := 0; i < length; i++ {
					out = append(out, out[offset+i])
				}
			}
		case 5:
			if pos+1 >= len(data) {
				break
			}
			offset := int(data[pos])<<8 | int(data[pos+1])
			pos += 2
			for i := 0; i < length; i++ {
				if offset+i < len(out) {
					out = append(out, halRotate(out[offset+i]))
				}
			}
		case 6:
			if pos+1 >= len(data) {
				break
			}
			offset := int(data[pos])<<8 | int(data[pos+1])
			pos += 2
			for i := 0; i < length; i++ {
				if offset-i >= 0 && offset-i < len(out) {
					out = append(out, out[offset-i])
				}
			}
		}
	}
	return out, nil
}

type halRLE struct {
	size   int
	data   int
	method int
}

type halBackref struct {
	size   int
	offset int
	method int
}

type halCompressor struct {
	in       []byte
	out      []byte
	inpos    int
	dontpack []byte
	fast     bool
}

func (HAL) Compress(data []byte) ([]byte, error) {
	c := &halCompressor{in: data, fast: true}
	return c.compress(), nil
}

func (c *halCompressor) compress() []byte {
	for c.inpos < len(c.in) {
		rle := c.rleCheck()

		var backref halBackref
		if rle.size < halLongRunSize && len(c.in)-c.inpos >= 4 {
			backref = c.refSearch()
		}

		switch {
		case backref.size > rle.size:
			c.writeBackref(backref)
		case rle.size >= 2:
			c.writeRLE(rle)
		default:
			c.writeNextByte()
		}
	}
	c.writeRaw()
	c.out = append(c.out, 0xFF)
	return c.out
}

func (c *halCompressor) rleCheck() halRLE {
	cur := c.in[c.inpos:]
	best := halRLE{}

	size := 0
	for i := 0; i < len(cur) && i < halLongRunSize; i++ {
		if cur[i] == cur[0] {
			size++
		} else {
			break
		}
	}
	if size > best.size && size > 2 {
		best = halRLE{size: size, data: int(cur[0]), method: 0}
	}

	if len(cur) >= 2 {
		size = 0
		firstWord := int(cur[0]) | int(cur[1])<<8
		limit := 2 * halLongRunSize
		if limit > len(cur)-1 {
			limit = len(cur) - 1
		}
		for i := 0; i < limit; i += 2 {
			if i+1 < len(cur) {
				word := int(cur[i]) | int(cur[i+1])<<8
				if word == firstWord {
					size += 2
				} else {
					break
				}
			}
		}
		if size > best.size && size > 2 {
			best = halRLE{size: size, data: firstWord, method: 1}
		}
	}

	return best
}

func (c *halCompressor) refSearch() halBackref {
	cur := c.in[c.inpos:]
	best := halBackref{}

	if len(cur) >= 4 {
		pattern := [4]byte{cur[0], cur[1], cur[2], cur[3]}
		start := c.inpos - 8192
		if start < 0 {
			start = 0
		}
		for offset := start; offset < c.inpos; offset++ {
			if c.in[offset] == pattern[0] && c.in[offset+1] == pattern[1] &&
				c.in[offset+2] == pattern[2] && c.in[offset+3] == pattern[3] {
				size := 4
				for size < halLongRunSize && size < len(cur) &&
					offset+size < c.inpos && c.in[offset+size] == cur[size] {
					size++
				}
				if size >= 4 && size > best.size {
					best = halBackref{size: size, offset: offset, method: 0}
				}
			}
		}
	}

	return best
}

func (c *halCompressor) writeRaw() {
	if len(c.dontpack) == 0 {
		return
	}
	size := len(c.dontpack) - 1
	if size >= halRunSize {
		c.out = append(c.out, 0xE0|byte(size>>8), byte(size&0xFF))
	} else {
		c.out = append(c.out, byte(size))
	}
	c.out = append(c.out, c.dontpack...)
	c.dontpack = nil
}

func (c *halCompressor) writeBackref(backref halBackref) {
	c.writeRaw()
	size := backref.size - 1
	method := backref.method
	if size >= halRunSize {
		c.out = append(c.out, byte(0xF0+(method<<2))|byte(size>>8), byte(size&0xFF))
	} else {
		c.out = append(c.out, byte(0x80+(method<<5))|byte(size))
	}
	c.out = append(c.out, byte(backref.offset>>8), byte(backref.offset&0xFF))
	c.inpos += backref.size
}

func (c *halCompressor) writeRLE(rle halRLE) {
	c.writeRaw()
	method := rle.method
	var size int
	if method == 1 {
		size = rle.size/2 - 1
	} else {
		size = rle.size - 1
	}
	if size >= halRunSize {
		c.out = append(c.out, byte(0xE4+(method<<2))|byte(size>>8), byte(size&0xFF))
	} else {
		c.out = append(c.out, byte(0x20+(method<<5))|byte(size))
	}
	c.out = append(c.out, byte(rle.data&0xFF))
	if method == 1 {
		c.out = append(c.out, byte((rle.data>>8)&0xFF))
	}
	c.inpos += rle.size
}

func (c *halCompressor) writeNextByte() {
	c.dontpack = append(c.dontpack, c.in[c.inpos])
	c.inpos++
	if len(c.dontpack) >= halLongRunSize {
		c.writeRaw()
	}
}
