package utils

import "testing"

func TestConvertSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0B"},
		{1, "1 B"},
		{1023, "1023 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048576, "1 MB"},
		{1073741824, "1 GB"},
		{157303079731, "146.5 GB"},
		{214748364800, "200 GB"},
		{1099511627776, "1 TB"},
		{-2048, "-2 KB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := ConvertSize(tt.bytes); got != tt.want {
				t.Errorf("ConvertSize(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}
