package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue lengths.
const (
	hitLength      = 250 * time.Millisecond
	collectLength  = 120 * time.Millisecond
	gameOverLength = 1200 * time.Millisecond
	successLength  = 900 * time.Millisecond
)

// SoundManager manages all game audio through a single mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	withMusic   bool
	initialized bool
}

// NewSoundManager creates a sound manager. Music is only played when
// withMusic is set; cues always play.
func NewSoundManager(withMusic bool) *SoundManager {
	return &SoundManager{
		mixer:     &beep.Mixer{},
		withMusic: withMusic,
	}
}

// Initialize opens the audio device.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if sm.music != nil {
		sm.music.Paused = true
		sm.music = nil
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Hit plays a short falling buzz.
func (sm *SoundManager) Hit() {
	sm.play(hitLength, NewToneGenerator(sampleRate, 220, 90, hitLength, 0.35))
}

// Collect plays a short rising chirp.
func (sm *SoundManager) Collect() {
	sm.play(collectLength, NewToneGenerator(sampleRate, 880, 1320, collectLength, 0.25))
}

// GameOver plays a long descending tone.
func (sm *SoundManager) GameOver() {
	sm.play(gameOverLength, NewToneGenerator(sampleRate, 440, 110, gameOverLength, 0.3))
}

// Success plays a rising arpeggio.
func (sm *SoundManager) Success() {
	sm.play(successLength, NewArpeggioGenerator(sampleRate, []float64{523.25, 659.25, 783.99, 1046.5}, successLength/4, 0.25))
}

func (sm *SoundManager) play(length time.Duration, s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(beep.Take(sampleRate.N(length), s))
	speaker.Unlock()
}

// PlayMusic starts the music loop, or resumes it if paused.
func (sm *SoundManager) PlayMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.withMusic {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	if sm.music != nil {
		sm.music.Paused = false
		return
	}
	sm.music = &beep.Ctrl{Streamer: NewMusicGenerator(sampleRate), Paused: false}
	sm.mixer.Add(sm.music)
}

// PauseMusic pauses the music loop in place.
func (sm *SoundManager) PauseMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music != nil {
		speaker.Lock()
		sm.music.Paused = true
		speaker.Unlock()
	}
}

// StopMusic stops the music loop; the next PlayMusic starts from the top.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music != nil {
		speaker.Lock()
		sm.music.Streamer = nil
		sm.music = nil
		speaker.Unlock()
	}
}
