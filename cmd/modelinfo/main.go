package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/suparena/modelstore"
	"github.com/suparena/modelstore/artifact"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	envFile     = flag.String("env", "", "Load deployment settings from a .env file")
	dumpFlag    = flag.Bool("dump", false, "Dump candidate names from every code unit")
)

// modelinfo inspects a deployment the way the discovery pass sees it:
// it resolves the code unit locations (failing loudly on a broken
// multi-part deployment) and optionally dumps the candidates each unit
// contributes. Deployment settings come from MODELSTORE_* variables.
func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := modelstore.GetVersionInfo()
		fmt.Printf("modelstore modelinfo version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			fmt.Fprintf(os.Stderr, "loading %s: %v\n", *envFile, err)
			os.Exit(1)
		}
	} else {
		// Best effort, matching the integration tooling.
		_ = godotenv.Load()
	}

	sourceDir := os.Getenv(modelstore.EnvSource)
	dataDir := os.Getenv(modelstore.EnvData)
	if sourceDir == "" {
		fmt.Fprintf(os.Stderr, "%s is not set\n", modelstore.EnvSource)
		os.Exit(1)
	}

	paths, err := artifact.SourcePaths(sourceDir, dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "broken deployment: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%d code unit(s), counter %d\n", len(paths), artifact.UnitCount(dataDir))
	for _, path := range paths {
		en := artifact.ForPath(path, nil)
		candidates, err := en.Candidates()
		if err != nil {
			fmt.Printf("  %s: unreadable (%v)\n", path, err)
			continue
		}
		fmt.Printf("  %s: %d candidate(s)\n", path, len(candidates))
		if *dumpFlag {
			for _, c := range candidates {
				fmt.Printf("    %s\n", c)
			}
		}
	}
}
