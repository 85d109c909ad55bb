// Command loadplan runs the container-loading engine against a YAML
// job file and writes the resulting dense label volume as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/voxload/loadplan/internal/engine"
	"github.com/voxload/loadplan/internal/jobconfig"
	"github.com/voxload/loadplan/internal/validate"
)

const version = "0.1.0"

var (
	jobPath     = flag.String("job", "", "Path to a YAML job file (required)")
	output      = flag.String("output", "", "Output file for the label volume JSON (default: stdout)")
	runValidate = flag.Bool("validate", false, "Run the post-hoc invariant validator and print a report to stderr")
	verbose     = flag.Bool("verbose", false, "Enable verbose diagnostic logging")
	versionFlag = flag.Bool("version", false, "Print version and exit")
	help        = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Printf("loadplan version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *jobPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -job flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Printf("Loading job from %s\n", *jobPath)
	}
	job, err := jobconfig.LoadJob(*jobPath)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}

	container := job.ToContainer()
	boxes := job.ToBoxes()

	opt := engine.New(job.Engine)
	sol, diag, err := opt.OptimizeWithDiagnostics(ctx, boxes, container)
	if err != nil {
		return fmt.Errorf("optimize failed: %w", err)
	}

	if *verbose {
		fmt.Printf("Run %s: algorithm=%s placed=%d/%d elapsed=%s\n",
			diag.RunID, diag.Algorithm, len(sol.Placements), len(boxes), diag.Elapsed)
	}

	if *runValidate {
		report := validate.Validate(sol, container)
		for _, r := range report.Results {
			status := "OK"
			if !r.Passed {
				status = "FAIL"
			}
			fmt.Fprintf(os.Stderr, "[%s] %s: %s\n", status, r.Name, r.Details)
		}
	}

	volume := sol.LabelVolume(container)
	data, err := json.MarshalIndent(volume, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding label volume: %w", err)
	}

	if *output == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(*output, data, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: loadplan -job <job.yaml> [-output <file>] [-validate] [-verbose]")
}

func printHelp() {
	fmt.Println("loadplan - randomized constructive 3D container loading")
	fmt.Println()
	printUsage()
	fmt.Println()
	flag.PrintDefaults()
}
