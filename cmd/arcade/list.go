package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/canvas-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	idLen, titleLen := len("ID"), len("Title")
	for _, g := range games {
		idLen = max(idLen, len(g.ID))
		titleLen = max(titleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idLen, "ID", titleLen, "Title", "Description")
	fmt.Printf("  %-*s  %-*s  %s\n", idLen, "--", titleLen, "-----", "-----------")
	for _, g := range games {
		fmt.Printf("  %-*s  %-*s  %s\n", idLen, g.ID, titleLen, g.Title, g.Description)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
