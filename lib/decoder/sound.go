package decoder

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/sargunv/snes2asm/lib/disasm"
)

const brrSampleRate = 32000

// SoundDecoder publishes a run of BRR (Bit Rate Reduction) ADPCM blocks as
// the raw `.brr` side-file needed to reproduce the ROM, plus a `.wav`
// preview decoded to 16-bit mono PCM.
type SoundDecoder struct {
	base
	rate int
}

// NewSound creates a SoundDecoder over [start,end) decoding at the given
// sample rate (0 defaults to 32000, the SNES's native DSP rate).
func NewSound(label string, start, end, rate int) *SoundDecoder {
	if rate == 0 {
		rate = brrSampleRate
	}
	return &SoundDecoder{base: base{label: label, start: start, end: end}, rate: rate}
}

func (d *SoundDecoder) filename() string { return d.label + ".brr" }

func (d *SoundDecoder) Decode(rom disasm.ROM) []disasm.Offset {
	raw := rom.Read(d.start, d.end)
	d.addFile(d.filename(), raw)
	d.addFile(d.label+".wav", brrToWav(raw, d.rate))

	return []disasm.Offset{{
		Pos: d.start,
		Ins: disasm.Instruction{Code: fmt.Sprintf(".INCBIN \"%s\"", d.filename()), Preamble: d.label + ":"},
	}}
}

// brrDecode decodes BRR blocks to signed 16-bit PCM samples. Filter
// arithmetic uses Go's arithmetic right shift on signed ints, matching
// the source's reliance on sign-extending shifts for the negative
// half of each prediction.
func brrDecode(data []byte) []int16 {
	var samples []int16
	var last1, last2 int32

	for h := 0; h+9 <= len(data); h += 9 {
		header := data[h]
		shift := int(header >> 4)
		filt := int((header >> 2) & 0x3)

		for i := 0; i < 16; i++ {
			lowNibble := i&1 != 0
			bytePos := h + 1 + i/2
			var nibble byte
			if lowNibble {
				nibble = data[bytePos] & 0xF
			} else {
				nibble = data[bytePos] >> 4
			}
			sample := int32(nibble)
			if sample >= 8 {
				sample -= 16
			}

			if shift > 12 {
				sample = sample &^ 0x7FF
			} else {
				sample = (sample << uint(shift)) >> 1
			}

			sample = brrFilter(sample, filt, last1, last2)
			sample = brrClamp(sample)

			last1 = last2
			last2 = sample

			samples = append(samples, int16(sample*2))
		}
	}
	return samples
}

func brrFilter(sample int32, filt int, last1, last2 int32) int32 {
	switch filt {
	case 1:
		sample += last2 - (last2 >> 4)
	case 2:
		sample += last2 << 1
		sample += -(last2 + (last2 << 1)) >> 5
		sample += -last1
		sample += last1 >> 4
	case 3:
		sample += last2 << 1
		sample += -(last2 + (last2 << 2) + (last2 << 3)) >> 6
		sample += -last1
		sample += (last1 + (last1 << 1)) >> 4
	}
	return sample
}

func brrClamp(val int32) int32 {
	if val > 0x7FFF {
		return 0x7FFF
	}
	if val < -0x7FFF {
		return -0x7FFF
	}
	return val
}

// brrToWav wraps decoded PCM samples in a canonical 44-byte RIFF/WAVE
// header: 1 channel, 16-bit, PCM.
func brrToWav(brrData []byte, rate int) []byte {
	samples := brrDecode(brrData)

	var pcm bytes.Buffer
	binary.Write(&pcm, binary.LittleEndian, samples)
	dataSize := uint32(pcm.Len())

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	binary.Write(&buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(&buf, binary.LittleEndian, uint32(16))
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	binary.Write(&buf, binary.LittleEndian, uint32(rate))
	binary.Write(&buf, binary.LittleEndian, uint32(rate*2)) // byte rate
	binary.Write(&buf, binary.LittleEndian, uint16(2))      // block align
	binary.Write(&buf, binary.LittleEndian, uint16(16))     // bits per sample

	buf.WriteString("data")
	binary.Write(&buf, binary.LittleEndian, dataSize)
	buf.Write(pcm.Bytes())

	return buf.Bytes()
}
