package neonstreet

// Bridge is the narrow command/query surface an overlay UI talks to. It
// never exposes the scene, the layout or the motion controller.
type Bridge struct {
	nav     *Navigator
	router  *InputRouter
	audio   AudioPlayer
	started bool
}

// NewBridge wires a bridge to the navigation state, the input router used
// for button and dropdown commands, and the music collaborator. A nil
// player is replaced by SilentAudio.
func NewBridge(nav *Navigator, router *InputRouter, audio AudioPlayer) *Bridge {
	if audio == nil {
		audio = SilentAudio{}
	}
	return &Bridge{nav: nav, router: router, audio: audio}
}

// ActiveStreet returns the street being shown.
func (b *Bridge) ActiveStreet() Street { return b.nav.ActiveStreet() }

// ActiveStreetName returns the display name of the street being shown.
func (b *Bridge) ActiveStreetName() string { return b.nav.ActiveStreet().Name }

// Streets returns every street for the dropdown, in stable order.
func (b *Bridge) Streets() []Street { return b.nav.Streets() }

// ActiveShop returns the shop the avatar is heading to.
func (b *Bridge) ActiveShop() Shop { return b.nav.ActiveShop() }

// ShopIndex returns the active shop index.
func (b *Bridge) ShopIndex() int { return b.nav.ShopIndex() }

// AtFirstShop reports whether the previous arrow would do nothing.
func (b *Bridge) AtFirstShop() bool { return b.nav.AtFirstShop() }

// AtLastShop reports whether the next arrow would do nothing.
func (b *Bridge) AtLastShop() bool { return b.nav.AtLastShop() }

// AtFirstStreet reports whether the previous street arrow would do nothing.
func (b *Bridge) AtFirstStreet() bool { return b.nav.AtFirstStreet() }

// AtLastStreet reports whether the next street arrow would do nothing.
func (b *Bridge) AtLastStreet() bool { return b.nav.AtLastStreet() }

// Step moves one shop and returns the resulting index.
func (b *Bridge) Step(dir Direction) int { return b.router.Click(dir) }

// StepStreet moves one street.
func (b *Bridge) StepStreet(dir Direction) bool { return b.router.ClickStreet(dir) }

// JumpToStreet activates the named street. Unknown names are ignored.
func (b *Bridge) JumpToStreet(name string) bool { return b.router.Select(name) }

// IsMusicPlaying reports whether background music is audible.
func (b *Bridge) IsMusicPlaying() bool { return b.audio.IsPlaying() }

// ToggleMusic pauses playing music or starts/resumes silent music, and
// returns the new playing state. With no working audio it stays false.
func (b *Bridge) ToggleMusic() bool {
	switch {
	case b.audio.IsPlaying():
		b.audio.Pause()
	case b.started:
		b.audio.Resume()
	default:
		b.started = true
		b.audio.Play()
	}
	playing := b.audio.IsPlaying()
	logger.Debug("music toggled", "playing", playing)
	return playing
}
