package market

import "time"

const (
	Second Timestamp = 1000
	Minute           = 60 * Second
	Hour             = 60 * Minute
	Day              = 24 * Hour
)

// Timestamp is a count of milliseconds. It is used both as an instant
// (milliseconds since the Unix epoch) and as a duration.
type Timestamp uint64

// Now returns the current instant.
func Now() Timestamp {
	return FromTime(time.Now())
}

// FromTime converts t to milliseconds since the epoch. Instants before the
// epoch clamp to zero.
func FromTime(t time.Time) Timestamp {
	ms := t.UnixMilli()
	if ms < 0 {
		return 0
	}
	return Timestamp(ms)
}

func Days(n uint64) Timestamp    { return Timestamp(n) * Day }
func Hours(n uint64) Timestamp   { return Timestamp(n) * Hour }
func Minutes(n uint64) Timestamp { return Timestamp(n) * Minute }
func Seconds(n uint64) Timestamp { return Timestamp(n) * Second }

// Add returns ts+d.
func (ts Timestamp) Add(d Timestamp) Timestamp {
	return ts + d
}

// Sub returns ts-d, saturating at zero instead of wrapping.
func (ts Timestamp) Sub(d Timestamp) Timestamp {
	if d > ts {
		return 0
	}
	return ts - d
}

func (ts Timestamp) Millis() uint64 {
	return uint64(ts)
}

// Time converts an instant back to a UTC time.Time.
func (ts Timestamp) Time() time.Time {
	return time.UnixMilli(int64(ts)).UTC()
}

func (ts Timestamp) String() string {
	return ts.Time().Format(time.RFC3339Nano)
}
