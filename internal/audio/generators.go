package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ToneGenerator sweeps a sine tone from one frequency to another with a
// linear fade out.
type ToneGenerator struct {
	sr       beep.SampleRate
	from, to float64
	length   int
	volume   float64
	pos      int
	phase    float64
}

// NewToneGenerator creates a tone sweeping from -> to over length.
func NewToneGenerator(sr beep.SampleRate, from, to float64, length time.Duration, volume float64) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		from:   from,
		to:     to,
		length: sr.N(length),
		volume: volume,
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.length), 1.0)
		freq := g.from + (g.to-g.from)*progress

		// Advance phase by frequency so the sweep stays continuous
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		envelope := 1.0 - progress
		sample := g.volume * envelope * math.Sin(g.phase)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// ArpeggioGenerator plays a sequence of notes, each for a fixed length.
type ArpeggioGenerator struct {
	sr     beep.SampleRate
	notes  []float64
	note   int
	volume float64
	pos    int
}

// NewArpeggioGenerator creates a generator stepping through notes.
func NewArpeggioGenerator(sr beep.SampleRate, notes []float64, note time.Duration, volume float64) *ArpeggioGenerator {
	return &ArpeggioGenerator{
		sr:     sr,
		notes:  notes,
		note:   sr.N(note),
		volume: volume,
	}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		idx := g.pos / g.note
		if idx >= len(g.notes) {
			idx = len(g.notes) - 1
		}
		inNote := float64(g.pos%g.note) / float64(g.note)
		t := float64(g.pos) / float64(g.sr)

		envelope := math.Exp(-inNote * 3)
		sample := g.volume * envelope * math.Sin(2*math.Pi*g.notes[idx]*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}

// MusicGenerator generates an endless bass and lead loop.
type MusicGenerator struct {
	sr   beep.SampleRate
	pos  int
	beat int
}

var (
	musicBass = []float64{55, 55, 65.41, 49}
	musicLead = []float64{220, 261.63, 329.63, 261.63, 196, 246.94, 293.66, 246.94}
)

// NewMusicGenerator creates the music loop at 120 BPM.
func NewMusicGenerator(sr beep.SampleRate) *MusicGenerator {
	return &MusicGenerator{
		sr:   sr,
		beat: sr.N(500 * time.Millisecond),
	}
}

func (g *MusicGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beat := g.pos / g.beat
		beatPos := float64(g.pos%g.beat) / float64(g.beat)
		t := float64(g.pos) / float64(g.sr)

		bass := 0.12 * math.Sin(2*math.Pi*musicBass[(beat/4)%len(musicBass)]*t)

		// Lead plays eighth notes with a plucked envelope
		eighth := (g.pos * 2) / g.beat
		eighthPos := math.Mod(beatPos*2, 1.0)
		lead := 0.06 * math.Exp(-eighthPos*4) * math.Sin(2*math.Pi*musicLead[eighth%len(musicLead)]*t)

		sample := bass + lead
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *MusicGenerator) Err() error {
	return nil
}
