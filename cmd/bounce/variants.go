package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce/internal/config"
	"github.com/vovakirdan/bounce/internal/registry"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List all available rule sets",
	Long:  `Shows every rule-set variant that can be passed to 'bounce play --variant'.`,
	Run:   runVariants,
}

func runVariants(cmd *cobra.Command, args []string) {
	variants := registry.List()

	if len(variants) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, v := range variants {
		if len(v.ID) > maxIDLen {
			maxIDLen = len(v.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")

	for _, v := range variants {
		marker := ""
		if v.ID == string(config.DefaultVariant) {
			marker = " (default)"
		}
		fmt.Printf("  %-*s  %s%s\n", maxIDLen, v.ID, v.Description, marker)
	}

	fmt.Println()
	fmt.Println("Run 'bounce play --variant <id>' to play a variant.")
}
