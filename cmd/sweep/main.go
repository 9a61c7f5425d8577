// Package main sweeps tuning parameters through ranges and reports how each
// value shifts run outcomes, with t-statistics across seeds.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/openlife/config"
	"github.com/pthm-cable/openlife/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	paramsPath := flag.String("params", "", "Base flat parameter file applied over the config")
	variancesPath := flag.String("variances", "variances.txt", "Variances file: 'name begin end step' per line")
	seeds := flag.Int("seeds", 10, "Runs per swept value")
	maxTicks := flag.Int("max-ticks", 5000, "Tick cap per run")
	outputDir := flag.String("output", "", "Output directory for sweep.csv")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if *maxTicks <= 0 || *seeds < 2 {
		log.Fatal("--max-ticks must be positive and --seeds at least 2")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	base, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *paramsPath != "" {
		pd, err := config.ReadParamFile(*paramsPath)
		if err != nil {
			log.Fatalf("failed to read params: %v", err)
		}
		if _, unknown, err := base.ApplyParams(pd); err != nil {
			log.Fatalf("failed to apply params: %v", err)
		} else if len(unknown) > 0 {
			log.Printf("ignoring unknown params: %v", unknown)
		}
	}

	variances, err := ReadVariances(*variancesPath)
	if err != nil {
		log.Fatal(err)
	}

	runSeeds := make([]int64, *seeds)
	for i := range runSeeds {
		runSeeds[i] = int64(i*1000 + 42)
	}

	sw := &Sweeper{
		Base:     base,
		Seeds:    runSeeds,
		MaxTicks: *maxTicks,
		Progress: printProgress,
	}

	var rows []SweepRow
	for _, v := range variances {
		fmt.Printf("Sweeping %s over %v\n", v.Name, v.Values())
		r, err := sw.Sweep(v)
		if err != nil {
			log.Fatal(err)
		}
		rows = append(rows, r...)
	}

	outPath := filepath.Join(*outputDir, "sweep.csv")
	f, err := os.Create(outPath)
	if err != nil {
		log.Fatalf("failed to create %s: %v", outPath, err)
	}
	defer f.Close()
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		log.Fatalf("failed to write %s: %v", outPath, err)
	}
	fmt.Printf("\nSweep results saved to: %s\n", outPath)
}

func printProgress(name string, value float64, samples map[string][]float64) {
	fmt.Printf("%-18s| %v\n", name, value)
	for _, m := range Metrics {
		mean, std := telemetry.MeanStd(samples[m])
		fmt.Printf("%-18s| %.2f ± %.2f\n", m, mean, std)
	}
	fmt.Println("--------------------------------------------------------------------------------")
}
