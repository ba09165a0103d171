package main

//go:generate go run ./gen -components 24 -systems 12 -out generated.go

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/ecsreg/ecs"
	"github.com/plus3/ecsreg/eventbus"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	entityCount := flag.Int("entities", 10000, "The initial number of entities to create.")
	churn := flag.Int("churn", 100, "Entities killed and spawned every frame.")
	seed := flag.Uint64("seed", 1, "Seed for entity composition and churn.")
	profileMode := flag.String("profile", "", "Write a profile to the working directory: cpu, mem or empty to disable.")
	logLevel := flag.String("log-level", "warn", "Registry log level: debug, info, warn or error.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		log.Fatalf("Invalid -log-level %q: %v", *logLevel, err)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		log.Fatalf("Invalid -profile %q: expected cpu or mem", *profileMode)
	}

	log.Println("Starting ECS stress test...")

	// 1. Setup Registry, event bus and Scheduler
	components := ecs.NewComponentRegistry()
	RegisterAllGeneratedComponents(components)
	registry := ecs.NewRegistry(
		ecs.WithComponentRegistry(components),
		ecs.WithLogger(logger),
		ecs.WithPoolCapacity(*entityCount/4),
	)
	bus := eventbus.New(eventbus.WithLogger(logger))
	scheduler := ecs.NewScheduler(registry, bus)
	RegisterAllGeneratedSystems(scheduler)

	rng := rand.New(rand.NewPCG(*seed, *seed))
	counter := &churnCounter{}
	scheduler.Register(&churnSystem{rng: rng, rate: *churn})
	scheduler.Register(counter)

	// 2. Populate the registry with initial entities
	log.Printf("Populating registry with %d entities...\n", *entityCount)
	for i := 0; i < *entityCount; i++ {
		// Spawn an entity with 1 to 5 random components
		SpawnRandomEntity(registry, rng, rng.IntN(5)+1)
	}
	log.Println("Population complete.")

	// 3. Run the simulation loop
	report := &Report{
		Duration:       *duration,
		Entities:       *entityCount,
		Components:     componentCount,
		Systems:        systemCount,
		Churn:          *churn,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...\n", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalUpdates int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(deltaTime.Seconds())
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			totalUpdates++
		}
	}

	// Flush the last frame's kills and spawns so the stats are settled
	registry.Update()

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = totalUpdates
	report.UpdateTime.Finalize()
	report.Killed = counter.killed
	report.Spawned = counter.spawned
	report.Registry = registry.CollectStats()
	report.Scheduler = scheduler.GetStats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	// 4. Generate Report to Console
	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
