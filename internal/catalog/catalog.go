package catalog

// Theory and Lab are the two recognized course and room types. A course may
// only be placed in a room whose type matches its own.
const (
	Theory = "Theory"
	Lab    = "Lab"
)

type Course struct {
	Id              string
	Code            string
	Name            string
	SessionsPerWeek int    `mapstructure:"sessions_per_week"`
	CourseType      string `mapstructure:"course_type"`
}

type Teacher struct {
	Id         string
	Name       string
	Department string
}

type Room struct {
	Id         string
	RoomNumber string `mapstructure:"room_number"`
	Capacity   int
	RoomType   string `mapstructure:"room_type"`
}

type TimeSlot struct {
	Id        string
	Day       string
	Period    int
	StartTime string `mapstructure:"start_time"`
	EndTime   string `mapstructure:"end_time"`
}

type Group struct {
	Id         string
	Name       string
	Semester   int
	Department string
}

// Catalog holds the five input collections of one scheduling run. It is
// supplied whole by the caller and never mutated by the scheduling core.
type Catalog struct {
	Courses   []Course
	Teachers  []Teacher
	Rooms     []Room
	TimeSlots []TimeSlot `mapstructure:"timeslots"`
	Groups    []Group
}
