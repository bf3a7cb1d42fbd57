package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/limaJavier/timetable-engine/pkg/model"
)

const (
	feasibleTestDirectory         = "../../pkg/model/testdata/feasible/"
	MB                    float64 = 1024 * 1024
)

var (
	weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	scales   = []int{1, 5, 10, 25, 50}
)

type TestMetadata struct {
	Name     string
	Batches  int
	Subjects int
	Faculty  int
	Rooms    int
	Slots    int
	input    model.ModelInput
}

type BenchmarkResult struct {
	Test           TestMetadata
	Duration       float64 // Mean milliseconds per run
	DurationStdDev float64
	Memory         float64 // Mean MB allocated per run
	Placed         int
	Unscheduled    int
	Conflicts      int
	Score          int
	Valid          bool
}

func main() {
	outFilePtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where results are written")
	repeatPtr := flag.Int("repeat", 5, "Number of runs per test")
	seedPtr := flag.Int64("seed", 1, "Seed of the synthetic instances")
	flag.Parse()

	if *repeatPtr <= 0 {
		log.Fatalf("repeat must be positive: %v", *repeatPtr)
	}

	tests := append(getTests(), getSyntheticTests(*seedPtr)...)
	timetabler := model.NewGreedyTimetabler(nil, nil)
	results := make([]BenchmarkResult, 0, len(tests))

	for _, test := range tests {
		fmt.Printf("Benchmarking test \"%v\" (%v batches, %v subjects, %v slots)\n", test.Name, test.Batches, test.Subjects, test.Slots)
		results = append(results, measure(timetabler, test, *repeatPtr))
	}

	file, err := os.Create(*outFilePtr)
	if err != nil {
		log.Fatalf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	if err := toCsv(file, results); err != nil {
		log.Fatalf("cannot write CSV file: %v", err)
	}
}

func getTests() []TestMetadata {
	testFiles, err := os.ReadDir(feasibleTestDirectory)
	if err != nil {
		log.Fatalf("cannot read directory: %v", err)
	}

	tests := make([]TestMetadata, 0, len(testFiles))
	for _, file := range testFiles {
		filename := feasibleTestDirectory + file.Name()
		input, err := model.InputFromJson(filename)
		if err != nil {
			log.Fatalf("cannot parse input file: %v", err)
		}
		tests = append(tests, newTestMetadata(filename, input))
	}
	return tests
}

func getSyntheticTests(seed int64) []TestMetadata {
	rng := rand.New(rand.NewSource(seed))
	return lo.Map(scales, func(scale int, _ int) TestMetadata {
		return newTestMetadata(fmt.Sprintf("synthetic-%v", scale), generateInstance(scale, rng))
	})
}

func newTestMetadata(name string, input model.ModelInput) TestMetadata {
	return TestMetadata{
		Name:     name,
		Batches:  len(input.Batches),
		Subjects: len(input.Subjects),
		Faculty:  len(input.Faculty),
		Rooms:    len(input.Rooms),
		Slots:    len(model.GenerateTimeSlots(input.Institution)),
		input:    input,
	}
}

// Builds a catalog whose size grows linearly with scale: three subjects, two faculty members and two rooms per
// batch. Every subject has at least one eligible faculty member
func generateInstance(scale int, rng *rand.Rand) model.ModelInput {
	subjects := lo.Times(3*scale, func(index int) model.Subject {
		return model.Subject{
			Id:      fmt.Sprintf("S%03d", index),
			Code:    fmt.Sprintf("S%03d", index),
			Name:    fmt.Sprintf("Subject %v", index),
			Type:    model.Theory,
			Credits: rng.Intn(3) + 1,
		}
	})
	faculty := lo.Times(2*scale, func(index int) model.Faculty {
		eligible := []string{subjects[index%len(subjects)].Id}
		for range 2 {
			eligible = append(eligible, subjects[rng.Intn(len(subjects))].Id)
		}
		return model.Faculty{
			Id:               fmt.Sprintf("F%03d", index),
			Name:             fmt.Sprintf("Faculty %v", index),
			EligibleSubjects: lo.Uniq(eligible),
		}
	})
	// Subjects beyond the faculty count are covered round-robin
	for index := len(faculty); index < len(subjects); index++ {
		member := &faculty[index%len(faculty)]
		member.EligibleSubjects = lo.Uniq(append(member.EligibleSubjects, subjects[index].Id))
	}
	rooms := lo.Times(2*scale, func(index int) model.Room {
		return model.Room{
			Id:       fmt.Sprintf("R%03d", index),
			Name:     fmt.Sprintf("Room %v", index),
			Type:     model.Classroom,
			Capacity: 30 + rng.Intn(50),
		}
	})
	batches := lo.Times(scale, func(index int) model.StudentBatch {
		return model.StudentBatch{
			Id:   fmt.Sprintf("B%03d", index),
			Name: fmt.Sprintf("Batch %v", index),
			Size: 20 + rng.Intn(60),
			MandatorySubjects: lo.Uniq(lo.Times(4, func(_ int) string {
				return subjects[rng.Intn(len(subjects))].Id
			})),
		}
	})

	return model.ModelInput{
		Institution: model.Institution{
			Id:            "synthetic",
			Name:          "Synthetic Institute",
			WorkingDays:   weekdays[:5],
			PeriodsPerDay: 8,
			PeriodTimings: lo.Times(8, func(index int) model.PeriodTiming {
				return model.PeriodTiming{
					Period:    index + 1,
					StartTime: fmt.Sprintf("%02d:00", 8+index),
					EndTime:   fmt.Sprintf("%02d:50", 8+index),
				}
			}),
		},
		Subjects:        subjects,
		Faculty:         faculty,
		Rooms:           rooms,
		Batches:         batches,
		HardConstraints: model.DefaultHardConstraints(),
		SoftConstraints: model.DefaultSoftConstraints(),
	}
}

func measure(timetabler model.Timetabler, test TestMetadata, repeat int) BenchmarkResult {
	durations := make([]float64, 0, repeat)
	allocations := make([]float64, 0, repeat)

	var timetable model.GeneratedTimetable
	for range repeat {
		var before, after runtime.MemStats
		runtime.GC()
		runtime.ReadMemStats(&before)
		start := time.Now()

		var err error
		timetable, err = timetabler.Build(test.input, model.DefaultOptimizationSettings())
		if err != nil {
			log.Fatalf("an error occurred during the construction of test \"%v\": %v", test.Name, err)
		}

		durations = append(durations, float64(time.Since(start).Microseconds())/1000)
		runtime.ReadMemStats(&after)
		allocations = append(allocations, float64(after.TotalAlloc-before.TotalAlloc)/MB)
	}

	duration, durationStdDev := stat.MeanStdDev(durations, nil)
	if repeat == 1 {
		durationStdDev = 0
	}
	return BenchmarkResult{
		Test:           test,
		Duration:       duration,
		DurationStdDev: durationStdDev,
		Memory:         stat.Mean(allocations, nil),
		Placed:         len(timetable.Entries),
		Unscheduled:    len(timetable.Unscheduled),
		Conflicts:      len(timetable.Conflicts),
		Score:          timetable.Score,
		Valid:          timetabler.Verify(timetable, test.input),
	}
}

func toCsv(out io.Writer, results []BenchmarkResult) error {
	writer := csv.NewWriter(out)

	header := []string{"Test", "Batches", "Subjects", "Faculty", "Rooms", "Slots", "Duration(ms)", "Duration-StdDev(ms)", "Memory(MB)", "Placed", "Unscheduled", "Conflicts", "Score", "Valid"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			result.Test.Name,
			fmt.Sprintf("%d", result.Test.Batches),
			fmt.Sprintf("%d", result.Test.Subjects),
			fmt.Sprintf("%d", result.Test.Faculty),
			fmt.Sprintf("%d", result.Test.Rooms),
			fmt.Sprintf("%d", result.Test.Slots),
			fmt.Sprintf("%.3f", result.Duration),
			fmt.Sprintf("%.3f", result.DurationStdDev),
			fmt.Sprintf("%.2f", result.Memory),
			fmt.Sprintf("%d", result.Placed),
			fmt.Sprintf("%d", result.Unscheduled),
			fmt.Sprintf("%d", result.Conflicts),
			fmt.Sprintf("%d", result.Score),
			strconv.FormatBool(result.Valid),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
