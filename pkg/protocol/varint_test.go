package protocol

import (
	"math"
	"testing"
)

func TestEncodeDecodeUvarint(t *testing.T) {
	tests := []struct {
		name  string
		value uint64
		bytes int // expected encoded length
	}{
		{"zero", 0, 1},
		{"one", 1, 1},
		{"max_1byte", 127, 1},
		{"min_2byte", 128, 2},
		{"max_2byte", 16383, 2},
		{"min_3byte", 16384, 3},
		{"medium", 1000000, 3},
		{"large", 1 << 28, 5},
		{"max_uint32", math.MaxUint32, 5},
		{"max_uint64", math.MaxUint64, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := make([]byte, MaxVarintLen)
			n := EncodeUvarint(buf, tc.value)
			if n != tc.bytes {
				t.Errorf("EncodeUvarint(%d) = %d bytes, want %d", tc.value, n, tc.bytes)
			}
			if l := UvarintLen(tc.value); l != n {
				t.Errorf("UvarintLen(%d) = %d, but EncodeUvarint wrote %d bytes", tc.value, l, n)
			}

			decoded, read := DecodeUvarint(buf[:n])
			if read != n {
				t.Errorf("DecodeUvarint read %d bytes, want %d", read, n)
			}
			if decoded != tc.value {
				t.Errorf("DecodeUvarint = %d, want %d", decoded, tc.value)
			}

			// Encoder and Decoder agree with the free functions.
			e := NewEncoder()
			e.WriteUvarint(tc.value)
			got, err := NewDecoder(e.Bytes()).ReadUvarint()
			if err != nil || got != tc.value {
				t.Errorf("ReadUvarint() = %d, %v; want %d", got, err, tc.value)
			}
		})
	}
}

func TestDecodeUvarintErrors(t *testing.T) {
	if _, n := DecodeUvarint([]byte{}); n != -1 {
		t.Errorf("DecodeUvarint(empty) = %d, want -1", n)
	}
	if _, n := DecodeUvarint([]byte{0x80, 0x80, 0x80}); n != -1 {
		t.Errorf("DecodeUvarint(incomplete) = %d, want -1", n)
	}

	overflow := make([]byte, 11)
	for i := range overflow {
		overflow[i] = 0x80
	}
	if _, n := DecodeUvarint(overflow); n != -2 {
		t.Errorf("DecodeUvarint(overflow) = %d, want -2", n)
	}
}

func TestStringLen(t *testing.T) {
	tests := []struct {
		s    string
		want int
	}{
		{"", 1},
		{"abc", 4},
		{string(make([]byte, 200)), 202},
	}
	for _, tc := range tests {
		e := NewEncoder()
		e.WriteString(tc.s)
		if got := StringLen(tc.s); got != tc.want || got != e.Len() {
			t.Errorf("StringLen(len %d) = %d, want %d (encoded %d)", len(tc.s), got, tc.want, e.Len())
		}
	}
}
