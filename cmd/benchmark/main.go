package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"smarttable/internal/catalog"
	"smarttable/internal/schedule"
)

var days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

var seeds = []int64{1, 2, 3, 4, 5}

type instanceShape struct {
	Courses  int
	Teachers int
	Rooms    int
	Groups   int
	Periods  int
}

var shapes = []instanceShape{
	{Courses: 3, Teachers: 2, Rooms: 2, Groups: 2, Periods: 6},
	{Courses: 5, Teachers: 4, Rooms: 4, Groups: 3, Periods: 8},
	{Courses: 10, Teachers: 6, Rooms: 6, Groups: 4, Periods: 8},
	{Courses: 15, Teachers: 10, Rooms: 8, Groups: 6, Periods: 8},
	{Courses: 20, Teachers: 12, Rooms: 10, Groups: 8, Periods: 10},
}

func main() {
	outFilePtr := flag.String("out", "benchmark.csv", "Path to the CSV file where the results will be written")
	flag.Parse()

	file, err := os.Create(*outFilePtr)
	if err != nil {
		log.Fatalf("cannot create output file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"courses", "teachers", "rooms", "groups", "periods", "seed", "result", "assignments", "duration_ms"}
	if err := writer.Write(header); err != nil {
		log.Fatalf("cannot write csv header: %v", err)
	}

	for _, shape := range shapes {
		for _, seed := range seeds {
			fmt.Printf("Benchmarking %v courses x %v groups with seed %v\n", shape.Courses, shape.Groups, seed)

			rng := rand.New(rand.NewSource(seed))
			cat := makeCatalog(shape, rng)
			solver := schedule.NewSolver(rng)

			started := time.Now()
			result := solver.Solve(cat)
			duration := time.Since(started)

			row := []string{
				strconv.Itoa(shape.Courses),
				strconv.Itoa(shape.Teachers),
				strconv.Itoa(shape.Rooms),
				strconv.Itoa(shape.Groups),
				strconv.Itoa(shape.Periods),
				strconv.FormatInt(seed, 10),
				result.Kind.String(),
				strconv.Itoa(len(result.Solution)),
				strconv.FormatInt(duration.Milliseconds(), 10),
			}
			if err := writer.Write(row); err != nil {
				log.Fatalf("cannot write csv row: %v", err)
			}
		}
	}
}

// makeCatalog generates a random instance: roughly a third of the courses and
// rooms are labs, courses need 1 to 3 sessions per week.
func makeCatalog(shape instanceShape, rng *rand.Rand) catalog.Catalog {
	cat := catalog.Catalog{}

	for i := 0; i < shape.Courses; i++ {
		courseType := catalog.Theory
		if i%3 == 2 {
			courseType = catalog.Lab
		}
		cat.Courses = append(cat.Courses, catalog.Course{
			Id:              fmt.Sprintf("C%v", i+1),
			Code:            fmt.Sprintf("CRS%03d", i+1),
			Name:            fmt.Sprintf("Course %v", i+1),
			SessionsPerWeek: rng.Intn(3) + 1,
			CourseType:      courseType,
		})
	}

	for i := 0; i < shape.Teachers; i++ {
		cat.Teachers = append(cat.Teachers, catalog.Teacher{
			Id:         fmt.Sprintf("T%v", i+1),
			Name:       fmt.Sprintf("Teacher %v", i+1),
			Department: "Benchmark",
		})
	}

	for i := 0; i < shape.Rooms; i++ {
		roomType := catalog.Theory
		if i%3 == 2 {
			roomType = catalog.Lab
		}
		cat.Rooms = append(cat.Rooms, catalog.Room{
			Id:         fmt.Sprintf("R%v", i+1),
			RoomNumber: fmt.Sprintf("Room %v", i+1),
			Capacity:   30 + rng.Intn(60),
			RoomType:   roomType,
		})
	}

	for _, day := range days {
		for period := 1; period <= shape.Periods; period++ {
			cat.TimeSlots = append(cat.TimeSlots, catalog.TimeSlot{
				Id:        fmt.Sprintf("S-%v-%v", day, period),
				Day:       day,
				Period:    period,
				StartTime: fmt.Sprintf("%02d:00", 8+period),
				EndTime:   fmt.Sprintf("%02d:00", 9+period),
			})
		}
	}

	for i := 0; i < shape.Groups; i++ {
		cat.Groups = append(cat.Groups, catalog.Group{
			Id:         fmt.Sprintf("G%v", i+1),
			Name:       fmt.Sprintf("Group %v", i+1),
			Semester:   i%8 + 1,
			Department: "Benchmark",
		})
	}

	return cat
}
