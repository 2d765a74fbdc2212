package schedule

import (
	"math/rand"

	"smarttable/internal/catalog"
)

// Orderer produces the trial order of teachers, rooms and timeslots for one
// session. Teachers are shuffled for variety (with the course's preferred
// teacher, when recorded, moved to the front); rooms are filtered by type and
// timeslots are left in catalog order, so for a fixed teacher earlier rooms
// and slots are packed first.
type Orderer interface {
	// Teachers returns all teachers in a fresh randomized order. When
	// preferredId is non-empty that teacher comes first and the rest follow
	// shuffled, so the sticky choice is retried before any alternative.
	Teachers(preferredId string) []catalog.Teacher

	// Rooms returns the rooms whose type matches the course's type, in
	// catalog order.
	Rooms(course catalog.Course) []catalog.Room

	// TimeSlots returns all timeslots in catalog order.
	TimeSlots() []catalog.TimeSlot
}

// NewOrderer builds an orderer over the catalog. The rand source is supplied
// by the caller so that runs are reproducible under a fixed seed.
func NewOrderer(cat catalog.Catalog, rng *rand.Rand) Orderer {
	return &randomOrderer{
		catalog: cat,
		rng:     rng,
	}
}
