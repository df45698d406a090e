package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Config carries the audio startup options
type Config struct {
	Mute   bool
	Volume float64 // 0.0-1.0 master scale for the pickup chime
	Music  bool    // initial music state, from the save file
}

// Service owns the speaker: a looping synthwave bed behind a mixer,
// with one-shot pickup chimes layered on top. Degrades to a silent
// no-op when no audio backend is available; callers never branch.
type Service struct {
	cfg Config

	musicCtrl *beep.Ctrl
	mixer     *beep.Mixer

	disabled atomic.Bool
	volume   float64
}

// NewService creates the audio service
func NewService(cfg Config) *Service {
	if cfg.Volume <= 0 || cfg.Volume > 1 {
		cfg.Volume = 0.8
	}
	return &Service{cfg: cfg, volume: cfg.Volume}
}

// Name implements services.Service
func (s *Service) Name() string { return "audio" }

// Init implements services.Service: opens the speaker. Failure flips
// the disabled flag instead of failing startup; the game runs silent.
func (s *Service) Init(any) error {
	if s.cfg.Mute {
		s.disabled.Store(true)
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		s.disabled.Store(true)
		return nil
	}

	s.mixer = &beep.Mixer{}
	return nil
}

// Start implements services.Service: begins playback with the music
// loop paused or running per the saved preference
func (s *Service) Start() error {
	if s.disabled.Load() {
		return nil
	}

	s.musicCtrl = &beep.Ctrl{
		Streamer: NewMusicLoop(sampleRate),
		Paused:   !s.cfg.Music,
	}
	s.mixer.Add(s.musicCtrl)
	speaker.Play(s.mixer)
	return nil
}

// Stop implements services.Service
func (s *Service) Stop() error {
	if s.disabled.Load() {
		return nil
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	return nil
}

// SetMusic pauses or resumes the background loop
func (s *Service) SetMusic(enabled bool) {
	if s.disabled.Load() || s.musicCtrl == nil {
		return
	}
	speaker.Lock()
	s.musicCtrl.Paused = !enabled
	speaker.Unlock()
}

// PlayPickup layers one collection chime over the music
func (s *Service) PlayPickup() {
	if s.disabled.Load() {
		return
	}
	speaker.Lock()
	s.mixer.Add(CreatePickupSound(sampleRate, s.volume))
	speaker.Unlock()
}

// SetVolume adjusts the chime volume (0.0-1.0)
func (s *Service) SetVolume(vol float64) {
	if vol < 0 {
		vol = 0
	}
	if vol > 1 {
		vol = 1
	}
	s.volume = vol
}

// Disabled reports whether audio degraded to silence
func (s *Service) Disabled() bool { return s.disabled.Load() }
