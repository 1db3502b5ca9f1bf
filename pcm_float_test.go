package wavegen

import (
	"errors"
	"math"
	"testing"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name    string
		newInfo func(Channels) (SampleInfo, error)
		in      float64
		want    float64
	}{
		{"int8 zero", Int8, 0, 128},
		{"int8 max", Int8, 1, 255},
		{"int8 min", Int8, -1, 1},
		{"int8 half", Int8, 0.5, 191.5},
		{"int16 zero", Int16, 0, 0},
		{"int16 max", Int16, 1, 32767},
		{"int16 min", Int16, -1, -32767},
		{"int16 half", Int16, 0.5, 16383.5},
		{"int24 max", Int24, 1, 8388607},
		{"int24 min", Int24, -1, -8388607},
		{"int32 max", Int32, 1, 2147483647},
		{"int32 min", Int32, -1, -2147483647},
		{"float", Float32, 0.1, float64(float32(0.1))},
		{"float max", Float32, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := mustInfo(t, tt.newInfo, Mono)

			got, err := info.Quantize(tt.in)
			if err != nil {
				t.Fatal(err)
			}

			if got != tt.want {
				t.Fatalf("Quantize(%g)=%v, want %v", tt.in, got, tt.want)
			}

			if back := info.Dequantize(got); math.Abs(back-tt.in) > 1e-7 {
				t.Fatalf("Dequantize(%v)=%v, want %v", got, back, tt.in)
			}
		})
	}
}

func TestQuantizeOutOfRange(t *testing.T) {
	infos := []func(Channels) (SampleInfo, error){Int8, Int16, Int24, Int32, Float32}
	values := []float64{1.0000001, -1.0000001, 2, -2, math.Inf(1), math.NaN()}

	for _, newInfo := range infos {
		info := mustInfo(t, newInfo, Stereo)

		for _, v := range values {
			if _, err := info.Quantize(v); !errors.Is(err, ErrRange) {
				t.Fatalf("%s Quantize(%g) err=%v, want ErrRange", info, v, err)
			}
		}
	}
}

func TestQuantizeZeroInfo(t *testing.T) {
	if _, err := (SampleInfo{}).Quantize(0); !errors.Is(err, ErrUnsupported) {
		t.Fatalf("zero SampleInfo Quantize err=%v, want ErrUnsupported", err)
	}
}

func TestPutIntBounds(t *testing.T) {
	tests := []struct {
		name    string
		newInfo func(Channels) (SampleInfo, error)
		in      int64
		ok      bool
	}{
		{"int8 low", Int8, 0, true},
		{"int8 high", Int8, 255, true},
		{"int8 negative", Int8, -1, false},
		{"int8 over", Int8, 256, false},
		{"int16 low", Int16, math.MinInt16, true},
		{"int16 over", Int16, math.MaxInt16 + 1, false},
		{"int24 high", Int24, 1<<23 - 1, true},
		{"int24 over", Int24, 1 << 23, false},
		{"int24 under", Int24, -1<<23 - 1, false},
		{"int32 low", Int32, math.MinInt32, true},
		{"int32 over", Int32, math.MaxInt32 + 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := mustInfo(t, tt.newInfo, Mono)
			b := make([]byte, info.SampleSize())

			err := info.putInt(b, tt.in)
			if tt.ok && err != nil {
				t.Fatalf("putInt(%d): %v", tt.in, err)
			}

			if !tt.ok && !errors.Is(err, ErrRange) {
				t.Fatalf("putInt(%d) err=%v, want ErrRange", tt.in, err)
			}

			if tt.ok {
				if got := info.value(b); got != float64(tt.in) {
					t.Fatalf("value(putInt(%d))=%v", tt.in, got)
				}
			}
		})
	}
}
