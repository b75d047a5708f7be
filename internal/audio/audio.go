// Package audio plays the game's music loop and sound cues.
package audio

// Player receives the gameplay sound cues.
type Player interface {
	Hit()
	Collect()
	GameOver()
	Success()

	PlayMusic()
	PauseMusic()
	StopMusic()
}

// Nop is a Player that plays nothing. SSH sessions and muted runs use it.
type Nop struct{}

func (Nop) Hit()        {}
func (Nop) Collect()    {}
func (Nop) GameOver()   {}
func (Nop) Success()    {}
func (Nop) PlayMusic()  {}
func (Nop) PauseMusic() {}
func (Nop) StopMusic()  {}

var _ Player = Nop{}
var _ Player = (*SoundManager)(nil)
