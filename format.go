package levlog

import (
	"sync"
	"time"
)

var timenow = time.Now // to facilitate testing

var stampBuf = struct {
	sync.Mutex
	*tmpBuffer
}{tmpBuffer: newTmpBuffer()}

// FormatTimestamp renders t in local time as "yyyy-mm-dd hh:mm:ss" using a
// 12-hour clock, so both midnight and noon show as 12.
func FormatTimestamp(t time.Time) string {
	t = t.Local()
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	hour %= 12
	if hour == 0 {
		hour = 12
	}

	stampBuf.Lock()
	defer stampBuf.Unlock()
	b := stampBuf.tmpBuffer
	b.reset()
	b.padNDigits(year, 4)
	b.add('-')
	b.pad2Digits(int(month))
	b.add('-')
	b.pad2Digits(day)
	b.add(' ')
	b.pad2Digits(hour)
	b.add(':')
	b.pad2Digits(minute)
	b.add(':')
	b.pad2Digits(second)
	return string(b.b[:b.pos])
}

// FormatMessage returns "<timestamp>: <level> - <message>".
func FormatMessage(t time.Time, level, message string) string {
	return FormatTimestamp(t) + ": " + level + " - " + message
}

func newTmpBuffer() *tmpBuffer {
	return &tmpBuffer{b: make([]byte, 32)}
}

type tmpBuffer struct {
	b   []byte
	pos int
}

func (t *tmpBuffer) reset() {
	t.pos = 0
}

func (t *tmpBuffer) add(b byte) {
	t.b[t.pos] = b
	t.pos++
}

const digits = "0123456789" // helper to convert int to char

func (t *tmpBuffer) pad2Digits(i int) {
	t.b[t.pos+1] = digits[i%10]
	i /= 10
	t.b[t.pos] = digits[i%10]
	t.pos += 2
}

func (t *tmpBuffer) padNDigits(i, n int) {
	j := n - 1
	for ; j >= 0 && i > 0; j-- {
		t.b[t.pos+j] = digits[i%10]
		i /= 10
	}
	for ; j >= 0; j-- {
		t.b[t.pos+j] = '0'
	}
	t.pos += n
}
