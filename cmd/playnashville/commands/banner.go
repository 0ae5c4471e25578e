package commands

import (
	"fmt"

	"github.com/imuzolev/playnashville/logger"
	"github.com/imuzolev/playnashville/version"
)

// printStartupBanner prints the user-friendly startup message
func printStartupBanner(verbosity, port int) {
	// ANSI escape codes
	cyan := "\033[36m"
	green := "\033[32m"
	yellow := "\033[33m"
	blue := "\033[34m"
	bold := "\033[1m"
	reset := "\033[0m"

	versionInfo := version.Get()

	fmt.Printf("\n%s%s", cyan, bold)
	fmt.Printf("   ╔══════════════════════════════════════════════╗\n")
	fmt.Printf("   ║                                              ║\n")
	fmt.Printf("   ║   ♪ ♫   P L A Y   N A S H V I L L E   ♫ ♪    ║\n")
	fmt.Printf("   ║                                              ║\n")
	fmt.Printf("   ║       chords in, scale degrees out           ║\n")
	fmt.Printf("   ║                                              ║\n")
	fmt.Printf("   ╚══════════════════════════════════════════════╝%s\n\n", reset)

	fmt.Printf("%s%s┌─ Server Info ────────────────────────────────┐%s\n", green, bold, reset)
	fmt.Printf("%s│%s Version:   %s (commit %s)\n", green, reset, versionInfo.Version, versionInfo.Short())
	fmt.Printf("%s│%s Built:     %s\n", green, reset, versionInfo.BuildTime)
	fmt.Printf("%s│%s Verbosity: %s\n", green, reset, logger.LevelName(verbosity))
	fmt.Printf("%s│%s Listening: http://localhost:%d\n", green, reset, port)
	fmt.Printf("%s│%s API:       POST /api/process, GET /api/tonalities\n", green, reset)
	fmt.Printf("%s│%s WebSocket: /ws\n", green, reset)
	fmt.Printf("%s└──────────────────────────────────────────────┘%s\n", green, reset)

	fmt.Printf("\n%s%s✨ POST song text to /api/process for live annotation%s\n", yellow, bold, reset)
	fmt.Printf("%s💡 Press Ctrl+C to stop%s\n\n", blue, reset)
}
