package constants

import "time"

// Audio device
const (
	AudioSampleRate = 48000
	AudioBuffer     = 100 * time.Millisecond
)

// Bell Sound Timing (food eaten)
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Crash Sound Timing (game over)
const (
	CrashSoundDuration = 300 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 200 * time.Millisecond
)

// Whoosh Sound Timing (view transition)
const (
	WhooshSoundDuration = 300 * time.Millisecond
	WhooshSoundAttack   = 150 * time.Millisecond
	WhooshSoundRelease  = 150 * time.Millisecond
)

// Key Click Timing (shell typing)
const (
	ClickSoundDuration = 20 * time.Millisecond
	ClickSoundAttack   = 1 * time.Millisecond
	ClickSoundRelease  = 15 * time.Millisecond
)
