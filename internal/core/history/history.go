// Package history keeps a bounded in-memory record of successful lookups.
package history

import "time"

// DefaultCapacity is the number of lookups retained when no capacity is
// configured.
const DefaultCapacity = 10

// Entry records one successful country lookup.
type Entry struct {
	ISOCode     string
	CountryName string
	Timestamp   time.Time
}
