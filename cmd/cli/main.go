package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"smarttable/internal/catalog"
	"smarttable/internal/schedule"
)

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the catalog JSON file; if empty, the built-in sample catalog is used")
	outFilePathPtr := flag.String("out", "", "Path to the file where the timetable will be written; if empty, it'll be written into the Standard Output")
	seedPtr := flag.Int64("seed", 0, "Seed for the solver's random source; if 0, the current time is used")
	budgetPtr := flag.Int("budget", schedule.DefaultBudget, "Maximum number of candidate trials before the run is abandoned")
	flag.Parse()
	filePath := *filePathPtr
	outFile := *outFilePathPtr
	seed := *seedPtr
	budget := *budgetPtr

	// Validate arguments
	if budget <= 0 {
		log.Fatalf("budget must be positive: %v", budget)
	}

	// Extract catalog
	var cat catalog.Catalog
	if filePath == "" {
		cat = catalog.Sample()
	} else {
		var err error
		cat, err = catalog.CatalogFromJson(filePath)
		if err != nil {
			log.Fatalf("cannot parse catalog file: %v", err)
		}
	}

	// Initialize solver
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	solver := schedule.NewSolver(rng, schedule.WithBudget(budget))

	// Build timetable
	result := solver.Solve(cat)

	switch result.Kind {
	case schedule.Infeasible:
		fmt.Printf("No feasible timetable: session %v of %v for group %v cannot be placed\n",
			result.FailedSession+1, result.FailedCourse, result.FailedGroup)
		os.Exit(20)
	case schedule.BudgetExhausted:
		fmt.Printf("Gave up after %v candidate trials\n", budget)
		os.Exit(20)
	}

	// Verify timetable correctness
	if !solver.Verify(result.Solution, cat) {
		fmt.Println("Verification failed")
		os.Exit(15)
	}

	// Build output from solution
	output := struct {
		Timetable schedule.FormattedSolution `json:"timetable"`
		Summary   schedule.Summary           `json:"summary"`
	}{
		Timetable: schedule.Format(result.Solution),
		Summary:   schedule.Summarize(result.Solution),
	}

	// Marshal output into json
	outputJson, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		fmt.Println(string(outputJson))
	} else {
		if err := os.WriteFile(outFile, outputJson, 0666); err != nil {
			log.Fatalf("an error occurred while writing to the output file: %v", err)
		}
	}

	fmt.Printf("Seed: %v\n", seed)
	fmt.Printf("Assignments: %v\n", output.Summary.TotalAssignments)
	os.Exit(10)
}
