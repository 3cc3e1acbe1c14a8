package main

import (
	"fmt"
	"os"
	"strings"

	"smriti/service"
)

// CliVersion is the version reported by the version command.
const CliVersion = "1.0.0"

var exit = os.Exit

func main() {
	exit(RealMain())
}

// RealMain dispatches the CLI command and returns an exit code.
func RealMain() int {
	if len(os.Args) < 2 {
		printHelp()
		return 1
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
		return 0
	case "version":
		fmt.Printf("smriti version %s\n", CliVersion)
		return 0
	case "serve":
		return service.RunAppServer()
	case "db":
		return service.HandleDBCommand(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		return 1
	}
}

func printHelp() {
	helpText := `Usage: smriti <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the API server.
  db <init|clean|backup|restore> Manage the database.
`
	fmt.Println(helpText)
}
