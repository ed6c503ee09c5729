package levlog

import (
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	var tests = []struct {
		property string
		t        time.Time
		want     string
	}{
		{"afternoon", time.Date(2016, 4, 9, 18, 3, 28, 342017000, time.Local), "2016-04-09 06:03:28"},
		{"morning", time.Date(2016, 4, 9, 9, 3, 28, 0, time.Local), "2016-04-09 09:03:28"},
		{"midnight", time.Date(2018, 3, 7, 0, 0, 0, 0, time.Local), "2018-03-07 12:00:00"},
		{"noon", time.Date(2018, 3, 7, 12, 30, 5, 0, time.Local), "2018-03-07 12:30:05"},
		{"padding", time.Date(987, 1, 2, 3, 4, 5, 0, time.Local), "0987-01-02 03:04:05"},
		{"end of year", time.Date(2024, 12, 31, 23, 59, 59, 0, time.Local), "2024-12-31 11:59:59"},
	}

	for _, test := range tests {
		got := FormatTimestamp(test.t)
		if got != test.want {
			t.Errorf("%s FormatTimestamp() got %q, want %q", test.property, got, test.want)
		}
	}
}

func TestFormatTimestampUsesLocalTime(t *testing.T) {
	ts := time.Date(2020, 6, 1, 15, 0, 0, 0, time.UTC)
	want := FormatTimestamp(ts.Local())

	got := FormatTimestamp(ts)
	if got != want {
		t.Errorf("FormatTimestamp got %q, want %q", got, want)
	}
}

func TestFormatMessage(t *testing.T) {
	want := "2016-04-09 06:03:28: WARN - disk nearly full"
	ts := time.Date(2016, 4, 9, 18, 3, 28, 0, time.Local)

	got := FormatMessage(ts, "WARN", "disk nearly full")
	if got != want {
		t.Errorf("FormatMessage got %q, want %q", got, want)
	}
}

func TestTmpBufferPadNDigitsTruncatesToWidth(t *testing.T) {
	want := "345"
	b := newTmpBuffer()

	b.padNDigits(12345, 3)
	got := string(b.b[:b.pos])
	if got != want {
		t.Errorf("padNDigits got %q, want %q", got, want)
	}
}
