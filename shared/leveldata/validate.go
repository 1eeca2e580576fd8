package leveldata

import (
	"errors"
	"fmt"
)

// ErrNoCanteens is returned for a level that could never be completed.
var ErrNoCanteens = errors.New("level has no canteens")

// ErrNoSpawn is returned for a level without a PlayerSpawn object.
var ErrNoSpawn = errors.New("level has no player spawn")

// Validate rejects malformed level data. All problems are reported together.
func Validate(level *Level) error {
	var errs []error

	if !level.HasSpawn {
		errs = append(errs, ErrNoSpawn)
	}
	if len(level.Canteens) == 0 {
		errs = append(errs, ErrNoCanteens)
	}
	for i, r := range level.Rocks {
		if r.W <= 0 || r.H <= 0 {
			errs = append(errs, fmt.Errorf("rock %d has non-positive size %vx%v", i, r.W, r.H))
		}
	}
	for i, r := range level.Logs {
		if r.W <= 0 || r.H <= 0 {
			errs = append(errs, fmt.Errorf("log %d has non-positive size %vx%v", i, r.W, r.H))
		}
	}
	for i, c := range level.Canteens {
		if c.Size < 0 {
			errs = append(errs, fmt.Errorf("canteen %d has negative size %v", i, c.Size))
		}
	}

	return errors.Join(errs...)
}
