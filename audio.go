package neonstreet

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/mitchellh/go-homedir"
)

const sampleRate = beep.SampleRate(44100)

// AudioPlayer is the background music collaborator. The scene only ever
// starts, pauses, resumes and queries it.
type AudioPlayer interface {
	Play()
	Pause()
	Resume()
	IsPlaying() bool
}

// SilentAudio is the degraded player used when no audio device or track is
// available. It never plays.
type SilentAudio struct{}

func (SilentAudio) Play() {}
func (SilentAudio) Pause() {}
func (SilentAudio) Resume() {}
func (SilentAudio) IsPlaying() bool { return false }

var (
	speakerOnce sync.Once
	speakerErr  error
)

// initSpeaker opens the output device once per process.
func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	})
	return speakerErr
}

// Music is a looping background track played through the beep speaker.
type Music struct {
	ctrl    *beep.Ctrl
	closer  func() error
	start   func(...beep.Streamer)
	lock    func()
	unlock  func()
	started bool
}

func newMusic(s beep.Streamer, volume float64, closer func() error) *Music {
	vol := &effects.Volume{Streamer: s, Base: 2, Volume: volume}
	return &Music{
		ctrl:   &beep.Ctrl{Streamer: vol, Paused: true},
		closer: closer,
		start:  speaker.Play,
		lock:   speaker.Lock,
		unlock: speaker.Unlock,
	}
}

// LoadMusic decodes a .wav or .mp3 file and prepares it to loop forever.
// Volume is in beep's exponential scale: 0 is unchanged, -1 is half.
func LoadMusic(path string, volume float64) (*Music, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("music path: %w", err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open music: %w", err)
	}

	var (
		stream beep.StreamSeekCloser
		format beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		stream, format, err = mp3.Decode(f)
	case ".wav":
		stream, format, err = wav.Decode(f)
	default:
		err = fmt.Errorf("unsupported format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode music %s: %w", path, err)
	}

	if err := initSpeaker(); err != nil {
		stream.Close()
		return nil, fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}

	var looped beep.Streamer = beep.Loop(-1, stream)
	if format.SampleRate != sampleRate {
		looped = beep.Resample(4, format.SampleRate, sampleRate, looped)
	}
	return newMusic(looped, volume, stream.Close), nil
}

// NewToneMusic returns a quiet sine drone, used when no track is configured.
func NewToneMusic(freq, volume float64) (*Music, error) {
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("tone: %w", err)
	}
	if err := initSpeaker(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAudioUnavailable, err)
	}
	return newMusic(tone, volume, nil), nil
}

// OpenMusic loads the configured track, or a drone when path is empty.
// Any failure is logged and degrades to SilentAudio.
func OpenMusic(path string, volume float64) AudioPlayer {
	var (
		m   *Music
		err error
	)
	if path == "" {
		m, err = NewToneMusic(110, volume)
	} else {
		m, err = LoadMusic(path, volume)
	}
	if err != nil {
		logger.Warn("music disabled", "path", path, "err", err)
		return SilentAudio{}
	}
	return m
}

// Play starts the track from where it was, adding it to the speaker on
// first use.
func (m *Music) Play() {
	if !m.started {
		m.started = true
		m.start(m.ctrl)
	}
	m.setPaused(false)
}

// Pause silences the track without losing its position.
func (m *Music) Pause() {
	if m.started {
		m.setPaused(true)
	}
}

// Resume continues a paused track.
func (m *Music) Resume() {
	m.Play()
}

// IsPlaying reports whether the track is audible.
func (m *Music) IsPlaying() bool {
	if !m.started {
		return false
	}
	m.lock()
	defer m.unlock()
	return !m.ctrl.Paused
}

// Close stops the track and releases the decoder.
func (m *Music) Close() error {
	if m.started {
		m.setPaused(true)
	}
	if m.closer != nil {
		return m.closer()
	}
	return nil
}

func (m *Music) setPaused(p bool) {
	m.lock()
	m.ctrl.Paused = p
	m.unlock()
}
