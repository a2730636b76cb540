package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fish-clicker/internal/core"
	"github.com/vovakirdan/fish-clicker/internal/fish"
	"github.com/vovakirdan/fish-clicker/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) *Model {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 42
	return NewModel(Options{
		Game:          fish.DefaultOptions(),
		Runtime:       cfg,
		Store:         store,
		Player:        "tester",
		ScreenshotDir: filepath.Join(t.TempDir(), "shots"),
	})
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

// startGame presses enter and runs one tick.
func startGame(t *testing.T, m *Model) {
	t.Helper()
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m.Update(TickMsg{})
	if !m.State().Playing {
		t.Fatal("enter followed by a tick should start the game")
	}
}

// clickFishCell clicks the first terminal cell covering the fish and ticks.
func clickFishCell(m *Model) {
	c := m.proj.Cells(m.game.Sprite().Bounds())[0]
	m.Update(tea.MouseMsg{X: c.Col, Y: c.Row, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(TickMsg{})
}

func TestModelStartsInMenu(t *testing.T) {
	m := newTestModel(t, nil)

	view := m.View()
	for _, want := range []string{">START", " EXIT", fish.Title} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
}

func TestModelClickScores(t *testing.T) {
	m := newTestModel(t, nil)
	startGame(t, m)

	clickFishCell(m)
	if m.State().Score != 1 {
		t.Fatalf("score after clicking the fish = %d, expected 1", m.State().Score)
	}
	if !strings.Contains(m.View(), "000001") {
		t.Error("view should show the updated score")
	}
}

func TestModelClickOffGridIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	startGame(t, m)

	// The last terminal row holds the help line.
	m.Update(tea.MouseMsg{X: 0, Y: 23, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.queue.Len() != 0 {
		t.Errorf("click on the help row queued %d events", m.queue.Len())
	}
}

func TestModelMenuExitQuits(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	_, cmd := m.Update(TickMsg{})

	if !m.State().Exit {
		t.Error("EXIT should request exit")
	}
	if !isQuit(cmd) {
		t.Error("exit should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelQuitSavesScoreOnce(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store)
	startGame(t, m)
	clickFishCell(m)
	clickFishCell(m)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !isQuit(cmd) {
		t.Fatal("q should quit")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	scores, err := store.TopScores(fish.ID, 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected one saved score, got %d", len(scores))
	}
	got := scores[0]
	if got.Score != 2 || got.Player != "tester" || got.SessionID != m.SessionID() {
		t.Errorf("saved entry = %+v", got)
	}
}

func TestModelQuitWithoutScoreSavesNothing(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store)
	startGame(t, m)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	scores, err := store.TopScores(fish.ID, 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("zero score should not be saved, got %d entries", len(scores))
	}
}

func TestModelNarrowTerminalClickScores(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH, cfg.Seed = 10, 6, 42
	m := NewModel(Options{Game: fish.DefaultOptions(), Runtime: cfg})
	startGame(t, m)

	for i := 1; i <= 3; i++ {
		clickFishCell(m)
		if m.State().Score != i {
			t.Fatalf("click %d on a 10-column terminal: score = %d", i, m.State().Score)
		}
	}
}

func TestModelFinishSavesWithoutQuit(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, store)
	startGame(t, m)
	clickFishCell(m)

	// The program stopped without a quit key, e.g. a dropped connection.
	m.Finish()
	m.Finish()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	scores, err := store.TopScores(fish.ID, 10)
	if err != nil {
		t.Fatalf("TopScores failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 1 || scores[0].SessionID != m.SessionID() {
		t.Errorf("expected one saved score of 1 for the session, got %+v", scores)
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	m := newTestModel(t, nil)
	startGame(t, m)
	clickFishCell(m)
	pos := m.game.Sprite().Pos

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	if !m.State().Playing || m.State().Score != 1 {
		t.Errorf("resize changed the session: %+v", m.State())
	}
	if m.game.Sprite().Pos != pos {
		t.Error("resize moved the fish")
	}
	if m.proj.Cols != 120 || m.proj.Rows != 39 {
		t.Errorf("projection = %dx%d, expected 120x39", m.proj.Cols, m.proj.Rows)
	}

	clickFishCell(m)
	if m.State().Score != 2 {
		t.Errorf("click after resize: score = %d, expected 2", m.State().Score)
	}
}

func TestModelScoreboardToggle(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab in the menu should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing its title")
	}

	_, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick loop should keep running behind the scoreboard")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Fatal("esc should close the scoreboard")
	}
	if !strings.Contains(m.View(), ">START") {
		t.Error("closing the scoreboard should return to the menu")
	}
}

func TestModelScoreboardBlockedWhilePlaying(t *testing.T) {
	m := newTestModel(t, nil)
	startGame(t, m)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard != nil {
		t.Error("the scoreboard should not open during play")
	}
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t, nil)

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	files, err := filepath.Glob(filepath.Join(m.shotDir, fish.ID+"_*.txt"))
	if err != nil || len(files) != 1 {
		t.Fatalf("expected one screenshot, got %v (%v)", files, err)
	}
	data, err := os.ReadFile(files[0])
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	if !strings.Contains(string(data), ">START") {
		t.Error("screenshot should contain the menu")
	}
}
