package systems

import (
	"sort"

	"github.com/automoto/canteenrun/components"
	cfg "github.com/automoto/canteenrun/config"
	"github.com/automoto/canteenrun/shared/leveldata"
	factory2 "github.com/automoto/canteenrun/systems/factory"
	"github.com/automoto/canteenrun/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetLevel returns the level list singleton, or nil before one is created.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

// CurrentLevel returns the active authored level, or nil.
func CurrentLevel(e *ecs.ECS) *leveldata.Level {
	level := GetLevel(e)
	if level == nil {
		return nil
	}
	return level.CurrentLevel
}

// LoadLevel makes the level at index the active one. It removes every live
// rock, log and canteen, spawns the new level's authored set, returns the
// player to the spawn point at rest and resets the canteen counter.
// An out-of-range index wraps to the first level.
func LoadLevel(e *ecs.ECS, index int) {
	level := GetLevel(e)
	if level == nil || len(level.Levels) == 0 {
		return
	}
	if index < 0 || index >= len(level.Levels) {
		index = 0
	}

	clearLevelObjects(e)

	level.LevelIndex = index
	level.CurrentLevel = &level.Levels[index]
	current := level.CurrentLevel

	for i, r := range current.Rocks {
		factory2.CreateRock(e, i, r)
	}
	for i, l := range current.Logs {
		factory2.CreateLog(e, i, l)
	}
	for i, c := range current.Canteens {
		factory2.CreateCanteen(e, i, c)
	}

	spawnX, spawnY := cfg.Player.SpawnX, cfg.Player.SpawnY
	if current.HasSpawn {
		spawnX, spawnY = current.Spawn.X, current.Spawn.Y
	}
	if entry, ok := tags.Player.First(e.World); ok {
		player := components.Player.Get(entry)
		player.SpawnX, player.SpawnY = spawnX, spawnY
		player.Jumping = false
		components.Physics.Get(entry).SpeedY = 0

		obj := components.Object.Get(entry)
		obj.X, obj.Y = spawnX, spawnY
		obj.Update()
	}

	session := GetOrCreateSession(e)
	session.CanteensCollected = 0
	session.CanteensTotal = len(current.Canteens)
}

// ResetSession returns to the first level and zeroes every session counter.
func ResetSession(e *ecs.ECS) {
	session := GetOrCreateSession(e)
	*session = components.SessionData{State: components.SessionRunning}
	resetProgress(e)
	LoadLevel(e, 0)
}

// RestartSession is the pause menu restart: a full reset that also drops any notice.
func RestartSession(e *ecs.ECS) {
	ClearNotice(e)
	ResetSession(e)
}

func clearLevelObjects(e *ecs.ECS) {
	var doomed []*donburi.Entry
	tags.LevelObject.Each(e.World, func(entry *donburi.Entry) {
		doomed = append(doomed, entry)
	})

	spaceEntry, hasSpace := components.Space.First(e.World)
	for _, entry := range doomed {
		if hasSpace && entry.HasComponent(components.Object) {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(entry).Object)
		}
		e.World.Remove(entry.Entity())
	}
}

// sortedEntries collects entries from each and orders them by index.
func sortedEntries(e *ecs.ECS, each func(donburi.World, func(*donburi.Entry)), index func(*donburi.Entry) int) []*donburi.Entry {
	var entries []*donburi.Entry
	each(e.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	sort.Slice(entries, func(i, j int) bool {
		return index(entries[i]) < index(entries[j])
	})
	return entries
}

// Rocks returns the live rocks in authored order.
func Rocks(e *ecs.ECS) []*donburi.Entry {
	return sortedEntries(e, tags.Rock.Each, func(entry *donburi.Entry) int {
		return components.Rock.Get(entry).Index
	})
}

// Logs returns the live logs in authored order.
func Logs(e *ecs.ECS) []*donburi.Entry {
	return sortedEntries(e, tags.Log.Each, func(entry *donburi.Entry) int {
		return components.Log.Get(entry).Index
	})
}

// Canteens returns the live canteens in authored order.
func Canteens(e *ecs.ECS) []*donburi.Entry {
	return sortedEntries(e, tags.Canteen.Each, func(entry *donburi.Entry) int {
		return components.Canteen.Get(entry).Index
	})
}
