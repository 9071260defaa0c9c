package audio

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/gopxl/beep"
)

// fakeOutput captures the streamer handed to the device
type fakeOutput struct {
	mu       sync.Mutex
	initErr  error
	rate     beep.SampleRate
	streamer beep.Streamer
	closed   bool
}

func (f *fakeOutput) Init(sr beep.SampleRate, _ int) error {
	f.rate = sr
	return f.initErr
}
func (f *fakeOutput) Play(s beep.Streamer) { f.streamer = s }
func (f *fakeOutput) Lock()                { f.mu.Lock() }
func (f *fakeOutput) Unlock()              { f.mu.Unlock() }
func (f *fakeOutput) Close()               { f.closed = true }

// drain pulls n samples from the device stream and returns the peak amplitude
func (f *fakeOutput) drain(n int) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	buf := make([][2]float64, 512)
	peak := 0.0
	for n > 0 {
		chunk := buf[:min(n, len(buf))]
		got, _ := f.streamer.Stream(chunk)
		for _, s := range chunk[:got] {
			peak = math.Max(peak, math.Abs(s[0]))
		}
		n -= len(chunk)
	}
	return peak
}

// TestSoundManagerGracefulDegradation verifies operations are safe without initialization
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManagerWithOutput(DefaultConfig(), &fakeOutput{})

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	for s := SoundType(0); s < soundTypeCount; s++ {
		if sm.Play(s) {
			t.Errorf("Play(%s) reported sound before Initialize", s)
		}
	}
	sm.ToggleMute()
	sm.SetMuted(false)
	if sm.Active() != 0 {
		t.Error("Active sounds without initialization")
	}
	sm.Cleanup()
}

// TestSoundManagerDisabled verifies a disabled config degrades to silent
func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	out := &fakeOutput{}
	sm := NewSoundManagerWithOutput(cfg, out)

	if err := sm.Initialize(); !errors.Is(err, ErrAudioDisabled) {
		t.Fatalf("Initialize = %v, want ErrAudioDisabled", err)
	}
	if !sm.IsSilent() {
		t.Error("Expected silent manager")
	}
	if out.streamer != nil {
		t.Error("Disabled manager opened the device")
	}
	if sm.Play(SoundEat) {
		t.Error("Silent manager reported playback")
	}
}

// TestSoundManagerDeviceFailure verifies a failing device degrades to silent
func TestSoundManagerDeviceFailure(t *testing.T) {
	out := &fakeOutput{initErr: errors.New("no device")}
	sm := NewSoundManagerWithOutput(DefaultConfig(), out)

	if err := sm.Initialize(); err == nil {
		t.Fatal("Expected device error")
	}
	if !sm.IsSilent() || sm.Play(SoundCrash) {
		t.Error("Failed device must leave a silent manager")
	}
	sm.Cleanup()
	if out.closed {
		t.Error("Closed a device that never opened")
	}
}

// TestSoundManagerPlayMixes verifies effects reach the device stream and finish
func TestSoundManagerPlayMixes(t *testing.T) {
	out := &fakeOutput{}
	sm := NewSoundManagerWithOutput(DefaultConfig(), out)
	if err := sm.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if out.rate != 48000 {
		t.Errorf("Device rate %d, want 48000", out.rate)
	}

	// Second initialization is a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second Initialize: %v", err)
	}

	if !sm.Play(SoundEat) {
		t.Fatal("Play(SoundEat) returned false")
	}
	if sm.Active() != 1 {
		t.Errorf("Active = %d, want 1", sm.Active())
	}

	if peak := out.drain(4800); peak == 0 {
		t.Error("Bell produced silence")
	}

	// Bell is 600ms, drain well past it
	out.drain(48000)
	if sm.Active() != 0 {
		t.Errorf("Finished sound still mixed: %d", sm.Active())
	}

	sm.Cleanup()
	if !out.closed {
		t.Error("Cleanup did not close the device")
	}
	if sm.Play(SoundEat) {
		t.Error("Play after Cleanup reported sound")
	}
}

// TestSoundManagerMute verifies mute drops playing and new sounds
func TestSoundManagerMute(t *testing.T) {
	out := &fakeOutput{}
	sm := NewSoundManagerWithOutput(DefaultConfig(), out)
	if err := sm.Initialize(); err != nil {
		t.Fatal(err)
	}

	sm.Play(SoundSelect)
	if !sm.ToggleMute() {
		t.Fatal("ToggleMute should report muted")
	}
	if sm.Active() != 0 {
		t.Error("Muting did not clear playing sounds")
	}
	if sm.Play(SoundKey) {
		t.Error("Muted manager reported playback")
	}
	if sm.ToggleMute() || sm.IsMuted() {
		t.Error("Second toggle should unmute")
	}
	if !sm.Play(SoundKey) {
		t.Error("Unmuted manager should play")
	}
}

// TestEffectDurations verifies each effect ends after its configured length
func TestEffectDurations(t *testing.T) {
	cfg := DefaultConfig()
	rate := beep.SampleRate(cfg.SampleRate)

	for s := SoundType(0); s < soundTypeCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			streamer := Effect(s, cfg)
			if streamer == nil {
				t.Fatal("nil effect")
			}
			buf := make([][2]float64, 256)
			total := 0
			for {
				n, ok := streamer.Stream(buf)
				total += n
				for _, smp := range buf[:n] {
					if math.Abs(smp[0]) > 1 {
						t.Fatalf("sample out of range: %f", smp[0])
					}
				}
				if !ok || total > rate.N(2e9) {
					break
				}
			}
			if total == 0 || total > rate.N(1e9) {
				t.Errorf("%s streamed %d samples", s, total)
			}
		})
	}

	if Effect(soundTypeCount, cfg) != nil {
		t.Error("Expected nil for unknown sound")
	}
}

// TestZeroVolumeSilent verifies a zero effect volume yields silence
func TestZeroVolumeSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Volumes[SoundEat.String()] = 0

	buf := make([][2]float64, 1024)
	n, _ := Effect(SoundEat, cfg).Stream(buf)
	for _, s := range buf[:n] {
		if s[0] != 0 {
			t.Fatalf("Expected silence, got %f", s[0])
		}
	}
}
