package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat    SoundType = iota // Snake eats food
	SoundCrash                   // Snake game over
	SoundSelect                  // Body selected or deselected
	SoundKey                     // Shell key click
	soundTypeCount
)

var soundNames = [soundTypeCount]string{
	SoundEat:    "eat",
	SoundCrash:  "crash",
	SoundSelect: "select",
	SoundKey:    "key",
}

func (s SoundType) String() string {
	if s >= 0 && s < soundTypeCount {
		return soundNames[s]
	}
	return "unknown"
}

// ParseSoundType resolves a sound name as used in config volume maps
func ParseSoundType(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
	ErrUnknownSound  = errors.New("unknown sound")
)
