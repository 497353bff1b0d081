package codec

import "fmt"

// RLE2 de-interleaves data into even- and odd-indexed byte streams,
// RLE1-compresses each independently, and concatenates the two streams.
// Decompression splits the concatenated stream at the first stream's
// terminator and re-interleaves.
type RLE2 struct{}

func (RLE2) Name() string { return "rle2" }

func (RLE2) Compress(data []byte) ([]byte, error) {
	var even, odd []byte
	for i, b := range data {
		if i%2 == 0 {
			even = append(even, b)
		} else {
			odd = append(odd, b)
		}
	}
	out1, _ := rle1Compress(even)
	out2, _ := rle1Compress(odd)
	return append(out1, out2...), nil
}

func (RLE2) Decompress(data []byte) ([]byte, error) {
	even, consumed, err := rle1Decompress(data)
	if err != nil {
		return nil, err
	}
	if consumed > len(data) {
		return nil, fmt.Errorf("rle2: malformed first sub-stream")
	}
	odd, _, err := rle1Decompress(data[consumed:])
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(even)+len(odd))
	for i := 0; i < len(even) || i < len(odd); i++ {
		if i < len(even) {
			out = append(out, even[i])
		}
		if i < len(odd) {
			out = append(out, odd[i])
		}
	}
	return out, nil
}
