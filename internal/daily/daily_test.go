package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKey_UTC(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	ts := time.Date(2026, 10, 17, 5, 0, 0, 0, loc)
	assert.Equal(t, "2026-10-16", DateKey(ts))
}

func TestPicker_On(t *testing.T) {
	day := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	later := day.Add(10 * time.Hour)
	p := NewPicker("salt", nil)

	a := p.On(day, 487)
	assert.Equal(t, a, p.On(later, 487), "stable within a day")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 487)
	assert.Equal(t, 0, p.On(day, 0))
	assert.Equal(t, 0, p.On(day, 1))

	seen := map[int]bool{}
	for d := 0; d < 30; d++ {
		seen[p.On(day.AddDate(0, 0, d), 487)] = true
	}
	assert.Greater(t, len(seen), 1, "different days spread across the list")

	salts := map[int]bool{}
	for _, s := range []string{"a", "b", "c", "d", "e", "f"} {
		salts[NewPicker(s, nil).On(day, 487)] = true
	}
	assert.Greater(t, len(salts), 1, "salt changes the sequence")
}

func TestPicker_PickReadsClock(t *testing.T) {
	day := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	now := day
	p := NewPicker("salt", func() time.Time { return now })
	assert.Equal(t, p.On(day, 10), p.Pick(10))

	now = day.AddDate(0, 0, 1)
	assert.Equal(t, p.On(now, 10), p.Pick(10))
}
