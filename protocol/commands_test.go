package protocol

import (
	"bytes"
	"testing"
)

func TestBuildReadConcentrationCmd(t *testing.T) {
	frame := BuildReadConcentrationCmd()

	expected := [FrameSize]byte{0xFF, 0x01, 0x86, 0x00, 0x00, 0x00, 0x00, 0x00, 0x79}
	if frame != expected {
		t.Errorf("frame = % X, want % X", frame, expected)
	}
}

func TestBuildCalibrateZeroPointCmd(t *testing.T) {
	frame := BuildCalibrateZeroPointCmd()

	expected := [FrameSize]byte{0xFF, 0x01, 0x87, 0x00, 0x00, 0x00, 0x00, 0x00, 0x78}
	if frame != expected {
		t.Errorf("frame = % X, want % X", frame, expected)
	}
}

func TestBuildCalibrateSpanPointCmd(t *testing.T) {
	tests := []struct {
		name     string
		span     uint16
		expected [FrameSize]byte
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "datasheet span 2000",
			span:     2000,
			expected: [FrameSize]byte{0xFF, 0x01, 0x88, 0x07, 0xD0, 0x00, 0x00, 0x00, 0xA0},
		},
		{
			name:     "span 1000",
			span:     1000,
			expected: [FrameSize]byte{0xFF, 0x01, 0x88, 0x03, 0xE8, 0x00, 0x00, 0x00, 0x8C},
		},
		{
			name:    "zero span",
			span:    0,
			wantErr: true,
			errMsg:  "span cannot be zero",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := BuildCalibrateSpanPointCmd(tt.span)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !bytes.Contains([]byte(err.Error()), []byte(tt.errMsg)) {
					t.Errorf("error = %v, want substring %q", err, tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if frame != tt.expected {
				t.Errorf("frame = % X, want % X", frame, tt.expected)
			}
		})
	}
}

func TestBuildAutoCalibrationCmd(t *testing.T) {
	tests := []struct {
		name     string
		state    AutoCalibrationState
		expected [FrameSize]byte
	}{
		{
			name:     "enable",
			state:    AutoCalibrationEnable,
			expected: [FrameSize]byte{0xFF, 0x01, 0x79, 0xA0, 0x00, 0x00, 0x00, 0x00, 0xE6},
		},
		{
			name:     "disable",
			state:    AutoCalibrationDisable,
			expected: [FrameSize]byte{0xFF, 0x01, 0x79, 0x00, 0x00, 0x00, 0x00, 0x00, 0x86},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := BuildAutoCalibrationCmd(tt.state)
			if frame != tt.expected {
				t.Errorf("frame = % X, want % X", frame, tt.expected)
			}
		})
	}
}

func TestBuildSetRangeCmd(t *testing.T) {
	tests := []struct {
		name     string
		rng      Range
		expected [FrameSize]byte
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "1000 ppm",
			rng:      Range1000,
			expected: [FrameSize]byte{0xFF, 0x01, 0x99, 0x00, 0x00, 0x00, 0x03, 0xE8, 0x7B},
		},
		{
			name:     "2000 ppm",
			rng:      Range2000,
			expected: [FrameSize]byte{0xFF, 0x01, 0x99, 0x00, 0x00, 0x00, 0x07, 0xD0, 0x8F},
		},
		{
			name:     "3000 ppm",
			rng:      Range3000,
			expected: [FrameSize]byte{0xFF, 0x01, 0x99, 0x00, 0x00, 0x00, 0x0B, 0xB8, 0xA3},
		},
		{
			name:     "5000 ppm",
			rng:      Range5000,
			expected: [FrameSize]byte{0xFF, 0x01, 0x99, 0x00, 0x00, 0x00, 0x13, 0x88, 0xCB},
		},
		{
			name:     "10000 ppm",
			rng:      Range10000,
			expected: [FrameSize]byte{0xFF, 0x01, 0x99, 0x00, 0x00, 0x00, 0x27, 0x10, 0x2F},
		},
		{
			name:    "unsupported range",
			rng:     Range(4000),
			wantErr: true,
			errMsg:  "range must be one of",
		},
		{
			name:    "zero range",
			rng:     Range(0),
			wantErr: true,
			errMsg:  "range must be one of",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame, err := BuildSetRangeCmd(tt.rng)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errMsg)
				}
				if !bytes.Contains([]byte(err.Error()), []byte(tt.errMsg)) {
					t.Errorf("error = %v, want substring %q", err, tt.errMsg)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if frame != tt.expected {
				t.Errorf("frame = % X, want % X", frame, tt.expected)
			}
		})
	}
}

func TestRangeValid(t *testing.T) {
	for _, rng := range []Range{Range1000, Range2000, Range3000, Range5000, Range10000} {
		if !rng.Valid() {
			t.Errorf("Range(%d).Valid() = false, want true", uint16(rng))
		}
	}

	for _, rng := range []Range{0, 1, 999, 4000, 10001, 65535} {
		if rng.Valid() {
			t.Errorf("Range(%d).Valid() = true, want false", uint16(rng))
		}
	}
}

func BenchmarkBuildReadConcentrationCmd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		BuildReadConcentrationCmd()
	}
}

func BenchmarkBuildSetRangeCmd(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = BuildSetRangeCmd(Range5000)
	}
}
