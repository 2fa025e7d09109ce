package wireformat

import (
	"bytes"
	"math"
	"testing"
)

func TestByteLen(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		want    uint32
		wantErr bool
	}{
		{name: "zero", n: 0, want: 0},
		{name: "small", n: 10, want: 40},
		{name: "max addressable", n: math.MaxUint32 / ElemSize, want: math.MaxUint32 - 3},
		{name: "negative", n: -1, wantErr: true},
		{name: "overflows u32", n: math.MaxUint32/ElemSize + 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ByteLen(tt.n)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ByteLen(%d) = %d, want error", tt.n, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ByteLen(%d): %v", tt.n, err)
			}
			if got != tt.want {
				t.Errorf("ByteLen(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestAppendInt32sLayout(t *testing.T) {
	got := AppendInt32s(nil, []int32{1, -1, math.MinInt32})
	want := []byte{
		0x01, 0x00, 0x00, 0x00,
		0xff, 0xff, 0xff, 0xff,
		0x00, 0x00, 0x00, 0x80,
	}
	if !bytes.Equal(got, want) {
		t.Errorf("AppendInt32s layout = %x, want %x", got, want)
	}
}

func TestReadInt32sRoundTrip(t *testing.T) {
	src := []int32{0, 1, -1, 42, math.MaxInt32, math.MinInt32}
	buf := AppendInt32s(nil, src)

	got := make([]int32, len(src))
	if err := ReadInt32s(got, buf); err != nil {
		t.Fatalf("ReadInt32s: %v", err)
	}
	for i := range src {
		if got[i] != src[i] {
			t.Errorf("element %d = %d, want %d", i, got[i], src[i])
		}
	}
}

func TestReadInt32sSizeMismatch(t *testing.T) {
	if err := ReadInt32s(make([]int32, 2), make([]byte, 7)); err == nil {
		t.Error("ReadInt32s accepted a short buffer")
	}
	if err := ReadInt32s(make([]int32, 2), make([]byte, 12)); err == nil {
		t.Error("ReadInt32s accepted a long buffer")
	}
}
