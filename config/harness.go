package config

import "os"

type HarnessConfig struct {
	ListenAddr string
	DryRun     bool
}

// GetHarnessConfig configures the local HTTP harness. DRY_RUN swaps the AWS
// collaborators for in-memory ones so the conversion path can be exercised
// without credentials.
func GetHarnessConfig() (*HarnessConfig, error) {
	listenAddr := os.Getenv("LISTEN_ADDR")
	if listenAddr == "" {
		listenAddr = ":8080"
	}

	dryRun := false
	switch os.Getenv("DRY_RUN") {
	case "1", "true", "yes":
		dryRun = true
	}

	return &HarnessConfig{
		ListenAddr: listenAddr,
		DryRun:     dryRun,
	}, nil
}
