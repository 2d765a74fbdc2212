package schedule

import (
	"math/rand"

	"github.com/samber/lo"

	"smarttable/internal/catalog"
)

type randomOrderer struct {
	catalog catalog.Catalog
	rng     *rand.Rand
}

func (orderer *randomOrderer) Teachers(preferredId string) []catalog.Teacher {
	shuffled := make([]catalog.Teacher, len(orderer.catalog.Teachers))
	copy(shuffled, orderer.catalog.Teachers)
	orderer.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if preferredId == "" {
		return shuffled
	}

	ordered := make([]catalog.Teacher, 0, len(shuffled))
	if preferred, ok := lo.Find(shuffled, func(teacher catalog.Teacher) bool {
		return teacher.Id == preferredId
	}); ok {
		ordered = append(ordered, preferred)
	}
	for _, teacher := range shuffled {
		if teacher.Id != preferredId {
			ordered = append(ordered, teacher)
		}
	}

	return ordered
}

func (orderer *randomOrderer) Rooms(course catalog.Course) []catalog.Room {
	return lo.Filter(orderer.catalog.Rooms, func(room catalog.Room, _ int) bool {
		return room.RoomType == course.CourseType
	})
}

func (orderer *randomOrderer) TimeSlots() []catalog.TimeSlot {
	return orderer.catalog.TimeSlots
}
