// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/romdeps/internal/adapters/approvals"
	_ "go.trai.ch/romdeps/internal/adapters/config"
	_ "go.trai.ch/romdeps/internal/adapters/decider"
	_ "go.trai.ch/romdeps/internal/adapters/elf"
	_ "go.trai.ch/romdeps/internal/adapters/fs"
	_ "go.trai.ch/romdeps/internal/adapters/logger"
	_ "go.trai.ch/romdeps/internal/adapters/report"
	_ "go.trai.ch/romdeps/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/romdeps/internal/app"
)
