package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bomb-arena/internal/config"
	"github.com/vovakirdan/bomb-arena/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List controllers and rule presets",
	Long:  `Shows the registered player controllers and the named rule presets.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	controllers := registry.List()

	fmt.Println("Controllers:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, c := range controllers {
		maxIDLen = max(maxIDLen, len(c.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, c := range controllers {
		fmt.Printf("  %-*s  %s\n", maxIDLen, c.ID, c.Title)
	}

	fmt.Println()
	fmt.Println("Presets:")
	fmt.Println()
	for _, p := range config.Presets() {
		fmt.Printf("  %-10s  %s\n", p, p.Description())
	}

	fmt.Println()
	fmt.Println("Run 'arena play --p2 <id> --preset <name>' to use them.")
}
