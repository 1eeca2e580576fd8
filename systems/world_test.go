package systems

import (
	"testing"

	"github.com/automoto/canteenrun/assets"
	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/shared/leveldata"
	"github.com/automoto/canteenrun/systems/factory"
	"github.com/automoto/canteenrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// flatLevel has no obstacles and a single canteen far from the spawn point.
func flatLevel(name string) leveldata.Level {
	return leveldata.Level{
		Name:     name,
		Width:    1024,
		Height:   576,
		Spawn:    leveldata.Point{X: 80, Y: 380},
		HasSpawn: true,
		Canteens: []leveldata.CanteenSpawn{{X: 900, Y: 410}},
	}
}

func newTestWorld(t *testing.T, levels ...leveldata.Level) *ecs.ECS {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, levels, 0)
	factory.CreateSpace(e, 1024, 576, 32, 32)
	factory.CreateSession(e)
	factory.CreateWater(e, 1024)
	factory.CreatePlayer(e, cfg.Player.SpawnX, cfg.Player.SpawnY)
	LoadLevel(e, 0)
	return e
}

// hold replaces this frame's pressed actions, keeping last frame for JustPressed.
func hold(e *ecs.ECS, actions ...cfg.ActionID) {
	input := getOrCreateInput(e)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		input.Current[a] = true
	}
	releaseLatched(input)
}

func playerEntry(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	if !ok {
		t.Fatalf("no player")
	}
	return entry
}

func placePlayer(t *testing.T, e *ecs.ECS, x, y float64) {
	t.Helper()
	obj := components.Object.Get(playerEntry(t, e))
	obj.X, obj.Y = x, y
	obj.Update()
}

func TestJumpSettlesOnGround(t *testing.T) {
	e := newTestWorld(t, flatLevel("flat"))
	entry := playerEntry(t, e)
	obj := components.Object.Get(entry)

	hold(e, cfg.ActionJump)
	Step(e)
	if !components.Player.Get(entry).Jumping {
		t.Fatalf("expected jumping after jump input")
	}

	hold(e)
	peak := obj.Y
	for i := 0; i < 60; i++ {
		Step(e)
		if obj.Y < peak {
			peak = obj.Y
		}
		if obj.Y+obj.H > cfg.Physics.GroundY+1e-9 {
			t.Fatalf("frame %d: bottom %v below ground", i, obj.Y+obj.H)
		}
	}

	if peak >= 380-80 {
		t.Fatalf("peak y = %v, expected a real jump", peak)
	}
	if obj.Y != 380 {
		t.Fatalf("y = %v, want 380", obj.Y)
	}
	if vy := components.Physics.Get(entry).SpeedY; vy != 0 {
		t.Fatalf("vy = %v, want 0", vy)
	}
	if components.Player.Get(entry).Jumping {
		t.Fatalf("still jumping after landing")
	}
}

func TestHorizontalMovement(t *testing.T) {
	cases := []struct {
		name    string
		actions []cfg.ActionID
		wantX   float64
	}{
		{"right", []cfg.ActionID{cfg.ActionMoveRight}, 84},
		{"left", []cfg.ActionID{cfg.ActionMoveLeft}, 76},
		{"both cancel", []cfg.ActionID{cfg.ActionMoveLeft, cfg.ActionMoveRight}, 80},
		{"none", nil, 80},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := newTestWorld(t, flatLevel("flat"))
			hold(e, c.actions...)
			Step(e)
			if x := components.Object.Get(playerEntry(t, e)).X; x != c.wantX {
				t.Fatalf("x = %v, want %v", x, c.wantX)
			}
		})
	}
}

func TestRockPushesPlayerBack(t *testing.T) {
	cases := []struct {
		name   string
		startX float64
		action cfg.ActionID
		wantX  float64
	}{
		{"from the left", 40, cfg.ActionMoveRight, 100 - 50},
		{"from the right", 160, cfg.ActionMoveLeft, 150},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			level := flatLevel("rock")
			level.Rocks = []leveldata.Rect{{X: 100, Y: 400, W: 50, H: 40}}
			e := newTestWorld(t, level)
			placePlayer(t, e, c.startX, 380)

			for i := 0; i < 20; i++ {
				hold(e, c.action)
				Step(e)
			}

			obj := components.Object.Get(playerEntry(t, e))
			if obj.X != c.wantX {
				t.Fatalf("x = %v, want %v", obj.X, c.wantX)
			}
			rock := components.Object.Get(Rocks(e)[0]).Rect()
			if obj.X < rock.Right() && obj.X+obj.W > rock.X {
				t.Fatalf("player still overlaps rock: x=%v", obj.X)
			}
		})
	}
}

func TestStandingOnLogKeepsHeight(t *testing.T) {
	level := flatLevel("log")
	level.Logs = []leveldata.Rect{{X: 300, Y: 300, W: 100, H: 20}}
	e := newTestWorld(t, level)
	placePlayer(t, e, 320, 240)

	entry := playerEntry(t, e)
	obj := components.Object.Get(entry)
	for i := 0; i < 30; i++ {
		hold(e)
		Step(e)
		if obj.Y != 240 {
			t.Fatalf("frame %d: y = %v, want 240", i, obj.Y)
		}
	}
	if components.Physics.Get(entry).SpeedY != 0 {
		t.Fatalf("vy = %v, want 0", components.Physics.Get(entry).SpeedY)
	}
}

func TestFallingOntoLog(t *testing.T) {
	level := flatLevel("log")
	level.Logs = []leveldata.Rect{{X: 300, Y: 300, W: 100, H: 20}}
	e := newTestWorld(t, level)
	placePlayer(t, e, 320, 150)

	obj := components.Object.Get(playerEntry(t, e))
	for i := 0; i < 60; i++ {
		hold(e)
		Step(e)
	}
	if obj.Y+obj.H != 300 {
		t.Fatalf("bottom = %v, want log top 300", obj.Y+obj.H)
	}
}

func TestCollectRequiresHeldKey(t *testing.T) {
	level := flatLevel("collect")
	level.Canteens = []leveldata.CanteenSpawn{{X: 200, Y: 410}, {X: 900, Y: 410}}
	e := newTestWorld(t, level)
	placePlayer(t, e, 170, 380)
	session := GetOrCreateSession(e)

	hold(e)
	Step(e)
	if session.CanteensCollected != 0 {
		t.Fatalf("collected without key: %d", session.CanteensCollected)
	}

	for i := 0; i < 3; i++ {
		hold(e, cfg.ActionCollect)
		Step(e)
		if session.CanteensCollected != 1 {
			t.Fatalf("frame %d: collected = %d, want 1", i, session.CanteensCollected)
		}
	}

	canteens := Canteens(e)
	if !components.Canteen.Get(canteens[0]).Collected || components.Canteen.Get(canteens[1]).Collected {
		t.Fatalf("wrong canteen flags")
	}
	if session.CanteensCollected > session.CanteensTotal {
		t.Fatalf("collected %d > total %d", session.CanteensCollected, session.CanteensTotal)
	}
}

func TestCollectFractionalOverlapAtCellEdge(t *testing.T) {
	level := flatLevel("collect")
	// Hitbox spans x 320..340, which starts exactly on a 32 px cell boundary.
	level.Canteens = []leveldata.CanteenSpawn{{X: 330, Y: 410}, {X: 900, Y: 410}}
	e := newTestWorld(t, level)
	// Right edge 320.5 overlaps the hitbox by half a pixel.
	placePlayer(t, e, 270.5, 380)

	hold(e, cfg.ActionCollect)
	Step(e)
	if n := GetOrCreateSession(e).CanteensCollected; n != 1 {
		t.Fatalf("collected = %d, want 1", n)
	}
}

func TestCollectOutOfReach(t *testing.T) {
	level := flatLevel("collect")
	level.Canteens = []leveldata.CanteenSpawn{{X: 200, Y: 410}}
	e := newTestWorld(t, level)
	// Right edge 150 stops short of the hitbox at 190.
	placePlayer(t, e, 100, 380)

	hold(e, cfg.ActionCollect)
	Step(e)
	if n := GetOrCreateSession(e).CanteensCollected; n != 0 {
		t.Fatalf("collected = %d, want 0", n)
	}
}

func TestLevelCompletion(t *testing.T) {
	first := flatLevel("first")
	first.Canteens = []leveldata.CanteenSpawn{{X: 100, Y: 410}}
	second := flatLevel("second")
	second.Canteens = []leveldata.CanteenSpawn{{X: 600, Y: 410}, {X: 700, Y: 410}}

	t.Run("advances to the next level", func(t *testing.T) {
		e := newTestWorld(t, first, second)

		hold(e, cfg.ActionCollect)
		Step(e)

		level := GetLevel(e)
		if level.LevelIndex != 1 || level.CurrentLevel.Name != "second" {
			t.Fatalf("level = %d %s, want 1 second", level.LevelIndex, level.CurrentLevel.Name)
		}
		session := GetOrCreateSession(e)
		if session.CanteensCollected != 0 || session.CanteensTotal != 2 {
			t.Fatalf("counter = %d / %d, want 0 / 2", session.CanteensCollected, session.CanteensTotal)
		}
		if len(Canteens(e)) != 2 {
			t.Fatalf("live canteens = %d, want 2", len(Canteens(e)))
		}
		for _, c := range Canteens(e) {
			if components.Canteen.Get(c).Collected {
				t.Fatalf("fresh level has a collected canteen")
			}
		}
		if session.LevelsCompleted != 1 {
			t.Fatalf("levels completed = %d, want 1", session.LevelsCompleted)
		}
		notice := CurrentNotice(e)
		if !notice.Active || notice.Kind != components.NoticeLevelComplete || notice.Text != "Level 1 complete!" {
			t.Fatalf("notice = %+v", notice)
		}
	})

	t.Run("resets the session after the last level", func(t *testing.T) {
		last := flatLevel("last")
		last.Canteens = []leveldata.CanteenSpawn{{X: 100, Y: 410}}
		e := newTestWorld(t, second, last)
		LoadLevel(e, 1)
		session := GetOrCreateSession(e)
		session.Distance = 12
		session.ElapsedFrames = 600

		hold(e, cfg.ActionCollect)
		Step(e)

		if idx := GetLevel(e).LevelIndex; idx != 0 {
			t.Fatalf("level index = %d, want 0", idx)
		}
		if session.Distance != 0 || session.ElapsedFrames != 0 || session.CanteensCollected != 0 {
			t.Fatalf("session not reset: %+v", session)
		}
		if session.CanteensTotal != 2 || session.LevelsCompleted != 0 {
			t.Fatalf("total = %d completed = %d, want 2 and 0", session.CanteensTotal, session.LevelsCompleted)
		}
		if notice := CurrentNotice(e); notice.Kind != components.NoticeSessionComplete {
			t.Fatalf("notice kind = %v, want session complete", notice.Kind)
		}
	})
}

func TestWaterRestartsLevel(t *testing.T) {
	level := flatLevel("water")
	level.Canteens = []leveldata.CanteenSpawn{{X: 400, Y: 410}, {X: 900, Y: 410}}
	e := newTestWorld(t, level)

	session := GetOrCreateSession(e)
	components.Canteen.Get(Canteens(e)[0]).Collected = true
	session.CanteensCollected = 1

	// Bottom edge at 510 is past the water line at 460.
	placePlayer(t, e, 300, 450)
	components.Physics.Get(playerEntry(t, e)).SpeedY = 7
	UpdateHazard(e)

	if !NoticeActive(e) || CurrentNotice(e).Kind != components.NoticeDeath {
		t.Fatalf("expected a death notice")
	}
	if session.Deaths != 1 {
		t.Fatalf("deaths = %d, want 1", session.Deaths)
	}
	if session.CanteensCollected != 0 {
		t.Fatalf("counter = %d, want 0", session.CanteensCollected)
	}
	for _, c := range Canteens(e) {
		if components.Canteen.Get(c).Collected {
			t.Fatalf("canteen flag survived the restart")
		}
	}
	entry := playerEntry(t, e)
	obj := components.Object.Get(entry)
	if obj.X != 80 || obj.Y != 380 || components.Physics.Get(entry).SpeedY != 0 {
		t.Fatalf("player not back at spawn: (%v, %v)", obj.X, obj.Y)
	}
	if GetLevel(e).LevelIndex != 0 {
		t.Fatalf("death changed the level")
	}
}

func TestWaterIgnoresPlayerAboveLine(t *testing.T) {
	e := newTestWorld(t, flatLevel("water"))
	// Bottom edge exactly on the water line.
	placePlayer(t, e, 300, cfg.WaterY()-cfg.Player.Height)
	UpdateHazard(e)
	if NoticeActive(e) || GetOrCreateSession(e).Deaths != 0 {
		t.Fatalf("touching the water line counted as a death")
	}
}

func TestGroundClampHoldsAcrossBundledLevels(t *testing.T) {
	for i, level := range assets.MustLoadLevels() {
		t.Run(level.Name, func(t *testing.T) {
			e := newTestWorld(t, level)
			obj := components.Object.Get(playerEntry(t, e))
			for frame := 0; frame < 200; frame++ {
				hold(e, cfg.ActionMoveRight, cfg.ActionJump)
				Step(e)
				if obj.Y+obj.H > cfg.Physics.GroundY {
					t.Fatalf("level %d frame %d: bottom %v below ground at x=%v", i, frame, obj.Y+obj.H, obj.X)
				}
				if NoticeActive(e) {
					t.Fatalf("level %d frame %d: unexpected notice %q", i, frame, CurrentNotice(e).Text)
				}
			}
		})
	}
}

func TestNoticeBlocksGameplay(t *testing.T) {
	e := newTestWorld(t, flatLevel("flat"))
	ShowNotice(e, components.NoticeDeath, "test")
	obj := components.Object.Get(playerEntry(t, e))

	hold(e, cfg.ActionMoveRight)
	Step(e)
	if obj.X != 80 {
		t.Fatalf("player moved under a notice: x = %v", obj.X)
	}
	if GetOrCreateSession(e).ElapsedFrames != 0 {
		t.Fatalf("timer ran under a notice")
	}

	hold(e, cfg.ActionConfirm)
	UpdateNotice(e)
	if NoticeActive(e) {
		t.Fatalf("confirm did not dismiss the notice")
	}

	hold(e, cfg.ActionMoveRight)
	Step(e)
	if obj.X != 84 {
		t.Fatalf("x = %v, want 84 after dismissal", obj.X)
	}
}

func TestConfirmOnSharedButtonDoesNotJump(t *testing.T) {
	e := newTestWorld(t, flatLevel("flat"))
	entry := playerEntry(t, e)
	ShowNotice(e, components.NoticeDeath, "test")

	// The gamepad A button drives both confirm and jump.
	hold(e, cfg.ActionConfirm, cfg.ActionJump)
	UpdateNotice(e)
	Step(e)
	if NoticeActive(e) {
		t.Fatalf("confirm did not dismiss the notice")
	}
	if components.Player.Get(entry).Jumping {
		t.Fatalf("dismissing press also jumped")
	}

	hold(e, cfg.ActionConfirm, cfg.ActionJump)
	Step(e)
	if components.Player.Get(entry).Jumping {
		t.Fatalf("jump fired while the dismissing press was still held")
	}

	hold(e)
	Step(e)
	hold(e, cfg.ActionJump)
	Step(e)
	if !components.Player.Get(entry).Jumping {
		t.Fatalf("jump did not fire after the button was released and pressed again")
	}
}

func TestConfirmKeepsUnrelatedHeldActions(t *testing.T) {
	e := newTestWorld(t, flatLevel("flat"))
	ShowNotice(e, components.NoticeDeath, "test")

	hold(e, cfg.ActionConfirm, cfg.ActionMoveRight)
	UpdateNotice(e)
	hold(e, cfg.ActionMoveRight)
	Step(e)
	if x := components.Object.Get(playerEntry(t, e)).X; x != 84 {
		t.Fatalf("x = %v, want 84", x)
	}
}

func TestNoticeTimesOut(t *testing.T) {
	e := newTestWorld(t, flatLevel("flat"))
	ShowNotice(e, components.NoticeLevelComplete, "done")

	for i := 0; i < cfg.Notice.DurationFrames-1; i++ {
		hold(e)
		UpdateNotice(e)
	}
	if !NoticeActive(e) {
		t.Fatalf("notice dismissed early")
	}
	hold(e)
	UpdateNotice(e)
	if NoticeActive(e) {
		t.Fatalf("notice still active after %d frames", cfg.Notice.DurationFrames)
	}
	if n := CurrentNotice(e); n.Alpha != 0 || n.Fade != nil {
		t.Fatalf("cleared notice kept fade state: %+v", n)
	}
}

func TestPauseGatesGameplay(t *testing.T) {
	e := newTestWorld(t, flatLevel("flat"))
	obj := components.Object.Get(playerEntry(t, e))

	hold(e, cfg.ActionPause)
	UpdatePause(e)
	if !IsPaused(e) {
		t.Fatalf("pause key did not pause")
	}

	hold(e, cfg.ActionMoveRight)
	UpdatePause(e)
	Step(e)
	if obj.X != 80 {
		t.Fatalf("player moved while paused: x = %v", obj.X)
	}

	hold(e, cfg.ActionPause)
	UpdatePause(e)
	if IsPaused(e) {
		t.Fatalf("pause key did not resume")
	}
}

func TestPauseMenuOptions(t *testing.T) {
	t.Run("navigation wraps", func(t *testing.T) {
		e := newTestWorld(t, flatLevel("flat"))
		hold(e, cfg.ActionPause)
		UpdatePause(e)

		hold(e, cfg.ActionMenuUp)
		UpdatePause(e)
		if got := GetOrCreatePause(e).SelectedOption; got != components.MenuExit {
			t.Fatalf("selected = %v, want exit", got)
		}
		hold(e, cfg.ActionMenuDown)
		UpdatePause(e)
		if got := GetOrCreatePause(e).SelectedOption; got != components.MenuResume {
			t.Fatalf("selected = %v, want resume", got)
		}
	})

	t.Run("resume", func(t *testing.T) {
		e := newTestWorld(t, flatLevel("flat"))
		hold(e, cfg.ActionPause)
		UpdatePause(e)

		hold(e)
		RequestPauseOption(e, components.MenuResume)
		UpdatePause(e)
		if IsPaused(e) {
			t.Fatalf("resume left the session paused")
		}
	})

	t.Run("restart", func(t *testing.T) {
		e := newTestWorld(t, flatLevel("a"), flatLevel("b"))
		LoadLevel(e, 1)
		session := GetOrCreateSession(e)
		session.ElapsedFrames = 300
		session.Distance = 5
		ShowNotice(e, components.NoticeDeath, "x")

		hold(e, cfg.ActionPause)
		UpdatePause(e)
		hold(e)
		RequestPauseOption(e, components.MenuRestart)
		UpdatePause(e)

		if IsPaused(e) || NoticeActive(e) {
			t.Fatalf("restart should leave a running session with no notice")
		}
		if GetLevel(e).LevelIndex != 0 || session.ElapsedFrames != 0 || session.Distance != 0 {
			t.Fatalf("restart did not reset: level %d %+v", GetLevel(e).LevelIndex, session)
		}
	})

	t.Run("exit", func(t *testing.T) {
		e := newTestWorld(t, flatLevel("flat"))
		hold(e, cfg.ActionPause)
		UpdatePause(e)
		hold(e)
		RequestPauseOption(e, components.MenuExit)
		UpdatePause(e)
		if !ExitRequested(e) {
			t.Fatalf("exit not requested")
		}
	})

	t.Run("requests are ignored while running", func(t *testing.T) {
		e := newTestWorld(t, flatLevel("flat"))
		RequestPauseOption(e, components.MenuExit)
		UpdatePause(e)
		if ExitRequested(e) {
			t.Fatalf("exit applied while running")
		}
	})
}

func TestInstructionsToggle(t *testing.T) {
	e := newTestWorld(t, flatLevel("flat"))

	steps := []struct {
		held bool
		want bool
	}{
		{true, true},
		{true, true}, // still held, no retrigger
		{false, true},
		{true, false},
	}
	for i, s := range steps {
		if s.held {
			hold(e, cfg.ActionToggleInstructions)
		} else {
			hold(e)
		}
		UpdateInstructions(e)
		if got := InstructionsVisible(e); got != s.want {
			t.Fatalf("step %d: visible = %v, want %v", i, got, s.want)
		}
	}
}

func TestTimerCountsOnlyRunningFrames(t *testing.T) {
	e := newTestWorld(t, flatLevel("flat"))
	for i := 0; i < 65*cfg.C.TPS; i++ {
		hold(e)
		Step(e)
	}
	session := GetOrCreateSession(e)
	if got := TimerText(session); got != "Time: 1:05" {
		t.Fatalf("timer = %q, want Time: 1:05", got)
	}

	session.State = components.SessionPaused
	Step(e)
	if session.ElapsedFrames != 65*cfg.C.TPS {
		t.Fatalf("timer ran while paused")
	}
}

func TestLevelText(t *testing.T) {
	e := newTestWorld(t, flatLevel("a"), flatLevel("b"))
	if got := LevelText(e); got != "Level 1" {
		t.Fatalf("got %q", got)
	}
	LoadLevel(e, 1)
	if got := LevelText(e); got != "Level 2" {
		t.Fatalf("got %q", got)
	}
}

func TestLoadLevelReplacesObjects(t *testing.T) {
	a := flatLevel("a")
	a.Rocks = []leveldata.Rect{{X: 100, Y: 400, W: 50, H: 40}, {X: 700, Y: 400, W: 50, H: 40}}
	a.Logs = []leveldata.Rect{{X: 300, Y: 300, W: 100, H: 20}}
	b := flatLevel("b")
	b.Logs = []leveldata.Rect{{X: 500, Y: 300, W: 100, H: 20}}

	e := newTestWorld(t, a, b)
	space := components.Space.Get(mustFirst(t, e, components.Space))
	before := len(space.Objects())

	LoadLevel(e, 1)
	if len(Rocks(e)) != 0 || len(Logs(e)) != 1 || len(Canteens(e)) != 1 {
		t.Fatalf("live objects rocks=%d logs=%d canteens=%d", len(Rocks(e)), len(Logs(e)), len(Canteens(e)))
	}
	// Two rocks swapped for nothing; one log for one log.
	if after := len(space.Objects()); after != before-2 {
		t.Fatalf("space objects = %d, want %d", after, before-2)
	}

	LoadLevel(e, 7)
	if GetLevel(e).LevelIndex != 0 {
		t.Fatalf("out-of-range index should fall back to the first level")
	}
}

func mustFirst[T any](t *testing.T, e *ecs.ECS, c *donburi.ComponentType[T]) *donburi.Entry {
	t.Helper()
	entry, ok := c.First(e.World)
	if !ok {
		t.Fatalf("no %s entity", c.Name())
	}
	return entry
}
