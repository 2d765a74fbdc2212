package catalog

import "fmt"

// Sample returns the built-in demonstration catalog: five computer-science
// courses, four teachers, two theory rooms, two labs, a Monday-to-Friday week
// of eight one-hour periods and three student groups.
func Sample() Catalog {
	courses := []Course{
		{Id: "C1", Code: "CS101", Name: "Data Structures", SessionsPerWeek: 3, CourseType: Theory},
		{Id: "C2", Code: "CS102", Name: "Database Lab", SessionsPerWeek: 2, CourseType: Lab},
		{Id: "C3", Code: "CS103", Name: "Algorithms", SessionsPerWeek: 3, CourseType: Theory},
		{Id: "C4", Code: "CS104", Name: "Web Technology", SessionsPerWeek: 3, CourseType: Theory},
		{Id: "C5", Code: "CS105", Name: "Programming Lab", SessionsPerWeek: 2, CourseType: Lab},
	}

	teachers := []Teacher{
		{Id: "T1", Name: "Dr. John Smith", Department: "Computer Science"},
		{Id: "T2", Name: "Prof. Sarah Johnson", Department: "Computer Science"},
		{Id: "T3", Name: "Dr. Michael Brown", Department: "Computer Science"},
		{Id: "T4", Name: "Prof. Emily Davis", Department: "Computer Science"},
	}

	rooms := []Room{
		{Id: "R1", RoomNumber: "A101", Capacity: 60, RoomType: Theory},
		{Id: "R2", RoomNumber: "A102", Capacity: 60, RoomType: Theory},
		{Id: "R3", RoomNumber: "Lab1", Capacity: 30, RoomType: Lab},
		{Id: "R4", RoomNumber: "Lab2", Capacity: 30, RoomType: Lab},
	}

	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	hours := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00"}

	timeslots := make([]TimeSlot, 0, len(days)*(len(hours)-1))
	for _, day := range days {
		for period := 1; period < len(hours); period++ {
			timeslots = append(timeslots, TimeSlot{
				Id:        fmt.Sprintf("S-%v-%v", day, period),
				Day:       day,
				Period:    period,
				StartTime: hours[period-1],
				EndTime:   hours[period],
			})
		}
	}

	groups := []Group{
		{Id: "G1", Name: "CS-A", Semester: 3, Department: "Computer Science"},
		{Id: "G2", Name: "CS-B", Semester: 3, Department: "Computer Science"},
		{Id: "G3", Name: "IT-A", Semester: 3, Department: "Information Technology"},
	}

	return Catalog{
		Courses:   courses,
		Teachers:  teachers,
		Rooms:     rooms,
		TimeSlots: timeslots,
		Groups:    groups,
	}
}
