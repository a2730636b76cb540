package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fish-clicker/internal/fish"
	"github.com/vovakirdan/fish-clicker/internal/platform/tui"
	"github.com/vovakirdan/fish-clicker/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresReset bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  fishclick scores
  fishclick scores --limit 20
  fishclick scores --tui
  fishclick scores --reset`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresReset, "reset", false, "Delete all recorded scores (asks for confirmation)")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer store.Close()

	switch {
	case flagScoresReset:
		resetScores(store)
	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			store.Close()
			fail("%v", err)
		}
	default:
		printScores(store)
	}
}

func printScores(store *storage.Store) {
	scores, err := store.TopScores(fish.ID, flagScoresLimit)
	if err != nil {
		store.Close()
		fail("retrieving scores: %v", err)
	}

	fmt.Printf("High Scores - %s\n", fish.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'fishclick' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-12s  %s\n", "----", "-----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8s  %-12s  %s\n", i+1, fish.ScoreLabel(entry.Score), player, dateStr)
	}

	fmt.Println()
	if best, err := store.HighScore(fish.ID); err == nil {
		fmt.Printf("Best: %s\n", fish.ScoreLabel(best))
	}
	if stats, err := store.GetGameStats(fish.ID); err == nil {
		fmt.Printf("Games: %d  Players: %d  Average: %.1f\n",
			stats.GamesCount, stats.Players, stats.AvgScore)
	}
}

func resetScores(store *storage.Store) {
	fmt.Print("Delete all recorded scores? [y/N] ")
	answer, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if strings.ToLower(strings.TrimSpace(answer)) != "y" {
		fmt.Println("Aborted.")
		return
	}
	if err := store.ClearScores(fish.ID); err != nil {
		store.Close()
		fail("clearing scores: %v", err)
	}
	fmt.Println("Scores cleared.")
}
