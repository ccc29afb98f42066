package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryN(n int) Entry {
	return Entry{
		ISOCode:     fmt.Sprintf("C%d", n),
		CountryName: fmt.Sprintf("Country %d", n),
		Timestamp:   time.Date(2024, 1, 1, 0, 0, n, 0, time.UTC),
	}
}

func TestStore_RecordUnderCapacity(t *testing.T) {
	s := NewStore(10)

	for i := 0; i < 5; i++ {
		s.Record(entryN(i))
	}

	recent := s.Recent()
	require.Len(t, recent, 5)

	// Newest first: last recorded entry leads.
	for i, e := range recent {
		assert.Equal(t, fmt.Sprintf("C%d", 4-i), e.ISOCode)
	}
}

func TestStore_EvictsOldestFirst(t *testing.T) {
	s := NewStore(10)

	for i := 0; i < 13; i++ {
		s.Record(entryN(i))
	}

	recent := s.Recent()
	require.Len(t, recent, 10)

	// Entries 0..2 were evicted; 12 is the newest.
	assert.Equal(t, "C12", recent[0].ISOCode)
	assert.Equal(t, "C3", recent[9].ISOCode)
	assert.Equal(t, 10, s.Len())
}

func TestStore_RecordNeverFails(t *testing.T) {
	s := NewStore(2)

	// Arbitrary content, including zero values, is accepted.
	s.Record(Entry{})
	s.Record(Entry{ISOCode: "??", CountryName: ""})
	s.Record(Entry{ISOCode: "PE", CountryName: "Peru", Timestamp: time.Now()})

	assert.Equal(t, 2, s.Len())
}

func TestNewStore_CapacityFallback(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     int
	}{
		{
			name:     "explicit capacity is kept",
			capacity: 5,
			want:     5,
		},
		{
			name:     "zero falls back to default",
			capacity: 0,
			want:     DefaultCapacity,
		},
		{
			name:     "negative falls back to default",
			capacity: -3,
			want:     DefaultCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewStore(tt.capacity).Cap())
		})
	}
}

func TestStore_RecentReturnsCopy(t *testing.T) {
	s := NewStore(10)
	s.Record(entryN(0))
	s.Record(entryN(1))

	recent := s.Recent()
	recent[0].ISOCode = "XX"

	assert.Equal(t, "C1", s.Recent()[0].ISOCode)
}
