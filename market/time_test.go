package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurations(t *testing.T) {
	assert.Equal(t, uint64(2*24*60*60*1000), Days(2).Millis())
	assert.Equal(t, uint64(3*60*60*1000), Hours(3).Millis())
	assert.Equal(t, uint64(5*60*1000), Minutes(5).Millis())
	assert.Equal(t, uint64(7000), Seconds(7).Millis())
}

func TestTimestampArithmetic(t *testing.T) {
	ts := Timestamp(10 * Day)
	assert.Equal(t, Timestamp(9*Day), ts.Sub(Days(1)))
	assert.Equal(t, Timestamp(11*Day), ts.Add(Days(1)))
	assert.Equal(t, Timestamp(0), Days(1).Sub(Days(2)))
}

func TestTimestampRoundTrip(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	ts := FromTime(now)
	assert.Equal(t, uint64(now.UnixMilli()), ts.Millis())
	assert.True(t, now.Equal(ts.Time()))
	assert.Equal(t, Timestamp(0), FromTime(time.Unix(-10, 0)))
}
