package t2048

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func newTestGame(t *testing.T, difficulty Difficulty, hooks bool) *Game {
	t.Helper()
	cfg := config.DefaultT2048Config()
	cfg.Debug.Hooks = hooks

	g := New(difficulty, cfg)
	if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	return g
}

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants() {
		if !registry.Exists(v.GameID) {
			t.Errorf("variant %s not registered", v.GameID)
			continue
		}
		g, err := registry.Create(v.GameID, config.DefaultT2048Config())
		if err != nil {
			t.Fatalf("Create(%s) failed: %v", v.GameID, err)
		}
		if g.ID() != v.GameID || g.Title() != v.Title {
			t.Errorf("Create(%s) = %s %q", v.GameID, g.ID(), g.Title())
		}
	}
}

func TestResetUsesConfiguredSize(t *testing.T) {
	cfg := config.DefaultT2048Config()
	cfg.Board.Size = 5

	g := New(DifficultyNormal, cfg)
	if err := g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 1}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if g.Engine().Size() != 5 {
		t.Errorf("engine size = %d, want 5", g.Engine().Size())
	}
	if g.Engine().Grid().Count() != 2 {
		t.Errorf("tile count = %d, want 2", g.Engine().Grid().Count())
	}
}

func TestResetInvalidConfig(t *testing.T) {
	cfg := config.DefaultT2048Config()
	cfg.Board.Size = 1

	g := New(DifficultyNormal, cfg)
	if err := g.Reset(core.DefaultConfig()); err == nil {
		t.Error("Reset() with size 1 should fail")
	}
}

func TestStepMoveCountsOnlyChanges(t *testing.T) {
	g := newTestGame(t, DifficultyNormal, false)
	if err := g.Engine().LoadGrid(Grid{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}); err != nil {
		t.Fatalf("LoadGrid() failed: %v", err)
	}

	res := g.Step(frame(core.ActionLeft))
	if res.Changed {
		t.Error("blocked move should not report a change")
	}

	res = g.Step(frame(core.ActionRight))
	if !res.Changed {
		t.Error("move should report a change")
	}
	if g.Snapshot().Moves != 1 {
		t.Errorf("Moves = %d, want 1", g.Snapshot().Moves)
	}
}

func TestDebugHooksGated(t *testing.T) {
	g := newTestGame(t, DifficultyNormal, false)
	g.Step(frame(core.ActionForceWin))
	if g.State().Won {
		t.Error("force win should be ignored without debug hooks")
	}

	g = newTestGame(t, DifficultyNormal, true)
	res := g.Step(frame(core.ActionForceWin))
	if !res.State.Won || !res.State.GameOver {
		t.Errorf("State = %+v, want won and over", res.State)
	}
	if res.Status != "You Win!" {
		t.Errorf("Status = %q, want %q", res.Status, "You Win!")
	}
}

func TestGameOverBlocksMovesUntilRestart(t *testing.T) {
	g := newTestGame(t, DifficultyNormal, true)
	g.Step(frame(core.ActionForceLose))

	if !g.State().GameOver || g.Snapshot().State != StateLost {
		t.Fatalf("expected lost game, got %+v", g.Snapshot())
	}

	before := g.Engine().Grid()
	res := g.Step(frame(core.ActionUp))
	if res.Changed || !g.Engine().Grid().Equal(before) {
		t.Error("moves should be ignored after the game is over")
	}

	res = g.Step(frame(core.ActionRestart))
	if !res.Changed || res.State.GameOver {
		t.Errorf("restart result = %+v", res)
	}
	if g.Engine().Grid().Count() != 2 || g.Engine().Score() != 0 {
		t.Error("restart should produce a fresh board")
	}
	if g.Snapshot().Moves != 0 {
		t.Errorf("Moves = %d after restart, want 0", g.Snapshot().Moves)
	}
}

func TestEasySuppressesLoss(t *testing.T) {
	g := newTestGame(t, DifficultyEasy, true)

	res := g.Step(frame(core.ActionForceLose))
	if res.State.GameOver {
		t.Error("easy mode should not end the game on a loss")
	}
	if g.Snapshot().State != StateStuck {
		t.Errorf("State = %s, want %s", g.Snapshot().State, StateStuck)
	}
	if !strings.Contains(res.Status, "clear") {
		t.Errorf("Status = %q, want a hint to clear", res.Status)
	}

	res = g.Step(frame(core.ActionClear))
	if !res.Changed || res.Status != "Board cleared" {
		t.Errorf("clear result = %+v", res)
	}
	if g.Snapshot().State != StatePlaying {
		t.Errorf("State = %s after clear, want %s", g.Snapshot().State, StatePlaying)
	}
	// ForceLose leaves 16 as the maximum on a 4x4 board
	if g.Snapshot().MaxTile != 16 {
		t.Errorf("MaxTile = %d after clear, want 16", g.Snapshot().MaxTile)
	}
}

func TestClearOutsideEasy(t *testing.T) {
	for _, d := range []Difficulty{DifficultyNormal, DifficultyHard} {
		g := newTestGame(t, d, false)
		before := g.Engine().Grid()

		res := g.Step(frame(core.ActionClear))
		if res.Changed || res.Err != nil {
			t.Errorf("%s: clear result = %+v", d, res)
		}
		if !strings.Contains(res.Status, "easy") {
			t.Errorf("%s: Status = %q", d, res.Status)
		}
		if !g.Engine().Grid().Equal(before) {
			t.Errorf("%s: clear should not touch the grid", d)
		}
	}
}

func TestTooSmallPausesGame(t *testing.T) {
	g := newTestGame(t, DifficultyNormal, false)
	g.Resize(10, 5)

	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s, want %s", g.Snapshot().State, StatePausedSmall)
	}

	before := g.Engine().Grid()
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
		g.Step(frame(a))
	}
	if !g.Engine().Grid().Equal(before) {
		t.Error("input should be ignored while the window is too small")
	}

	g.Resize(80, 24)
	if g.Snapshot().State != StatePlaying {
		t.Errorf("State = %s after resize, want %s", g.Snapshot().State, StatePlaying)
	}
	if !g.Engine().Grid().Equal(before) {
		t.Error("Resize should keep the board")
	}
}

func TestWiderTilePausesGame(t *testing.T) {
	cfg := config.DefaultT2048Config()
	cfg.Debug.Hooks = true
	g := New(DifficultyNormal, cfg)

	// Exactly enough room for a 4x4 board of three-digit tiles
	l := layout{size: 4, cellW: minCellWidth}
	if err := g.Reset(core.RuntimeConfig{ScreenW: l.minWidth(), ScreenH: l.minHeight(), Seed: 3}); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}
	if g.Snapshot().State != StatePlaying {
		t.Fatalf("State = %s, want %s", g.Snapshot().State, StatePlaying)
	}

	g.Step(frame(core.ActionForceWin))
	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("State = %s after a 2048 tile, want %s", g.Snapshot().State, StatePausedSmall)
	}

	screen := core.NewScreen(l.minWidth(), l.minHeight())
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("render should show the too-small notice")
	}

	g.Resize(g.layout().minWidth(), l.minHeight())
	if g.Snapshot().State != StateWin {
		t.Errorf("State = %s after resize, want %s", g.Snapshot().State, StateWin)
	}
}

func TestDeterministicGames(t *testing.T) {
	inputs := []core.Action{
		core.ActionLeft, core.ActionUp, core.ActionRight, core.ActionDown,
		core.ActionLeft, core.ActionUp, core.ActionUp, core.ActionRight,
	}

	play := func() Snapshot {
		g := newTestGame(t, DifficultyHard, false)
		for _, a := range inputs {
			g.Step(frame(a))
		}
		return g.Snapshot()
	}

	a, b := play(), play()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, DifficultyNormal, true)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"2048", "Score: 0", "normal  4x4", "┌", "┘"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	g.Step(frame(core.ActionForceWin))
	g.Render(screen)
	if !strings.Contains(screen.String(), "YOU WIN!") {
		t.Error("win overlay not rendered")
	}

	g.Resize(30, 8)
	small := core.NewScreen(30, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("too small notice not rendered")
	}
}

func TestTileColor(t *testing.T) {
	if TileColor(2) == TileColor(2048) {
		t.Error("2 and 2048 should use different colors")
	}
	if TileColor(4096) != core.ColorMagenta {
		t.Errorf("TileColor(4096) = %v, want magenta", TileColor(4096))
	}
}
