package neonstreet

import (
	"path/filepath"
	"testing"

	"github.com/gopxl/beep"
)

func newTestMusic() (*Music, *int) {
	var started int
	m := newMusic(beep.Silence(-1), 0, nil)
	m.start = func(...beep.Streamer) { started++ }
	m.lock = func() {}
	m.unlock = func() {}
	return m, &started
}

func TestMusicPlayPauseResume(t *testing.T) {
	m, started := newTestMusic()
	if m.IsPlaying() {
		t.Fatal("new music reports playing")
	}

	m.Pause() // before Play: no effect
	if m.IsPlaying() || *started != 0 {
		t.Fatal("Pause before Play touched the speaker")
	}

	m.Play()
	if !m.IsPlaying() || *started != 1 {
		t.Fatalf("after Play: playing=%v started=%d", m.IsPlaying(), *started)
	}
	m.Pause()
	if m.IsPlaying() {
		t.Error("still playing after Pause")
	}
	m.Resume()
	if !m.IsPlaying() || *started != 1 {
		t.Errorf("after Resume: playing=%v started=%d, want true and 1", m.IsPlaying(), *started)
	}
}

func TestMusicClose(t *testing.T) {
	m, _ := newTestMusic()
	var closed bool
	m.closer = func() error { closed = true; return nil }
	m.Play()
	if err := m.Close(); err != nil {
		t.Fatal(err)
	}
	if !closed || m.IsPlaying() {
		t.Errorf("closed=%v playing=%v", closed, m.IsPlaying())
	}
}

func TestOpenMusicMissingFileIsSilent(t *testing.T) {
	p := OpenMusic(filepath.Join(t.TempDir(), "missing.mp3"), 0)
	if _, ok := p.(SilentAudio); !ok {
		t.Fatalf("OpenMusic returned %T, want SilentAudio", p)
	}
	p.Play()
	if p.IsPlaying() {
		t.Error("SilentAudio reports playing")
	}
}

func TestLoadMusicUnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.ogg")
	writeFile(t, path, "not audio")
	if _, err := LoadMusic(path, 0); err == nil {
		t.Error("LoadMusic accepted an .ogg file")
	}
}
