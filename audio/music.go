package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// Step sequencer layout: four bars of sixteen steps, looped. Zero means
// rest; bass notes are octave-down MIDI, lead notes arpeggiate the same
// minor progression (Am F C G flavored for the genre).
const (
	musicBPM     = 104
	stepsPerBar  = 16
	musicBars    = 4
	totalSteps   = stepsPerBar * musicBars
	musicPeakAmp = 0.30
)

var bassPattern = [totalSteps]int{
	// Am
	45, 0, 45, 0, 45, 0, 57, 0, 45, 0, 45, 0, 45, 57, 0, 45,
	// F
	41, 0, 41, 0, 41, 0, 53, 0, 41, 0, 41, 0, 41, 53, 0, 41,
	// C
	48, 0, 48, 0, 48, 0, 60, 0, 48, 0, 48, 0, 48, 60, 0, 48,
	// G
	43, 0, 43, 0, 43, 0, 55, 0, 43, 0, 43, 0, 43, 55, 0, 43,
}

var leadPattern = [totalSteps]int{
	69, 0, 72, 0, 76, 0, 72, 0, 69, 0, 72, 0, 76, 81, 0, 76,
	65, 0, 69, 0, 72, 0, 69, 0, 65, 0, 69, 0, 72, 77, 0, 72,
	72, 0, 76, 0, 79, 0, 76, 0, 72, 0, 76, 0, 79, 84, 0, 79,
	67, 0, 71, 0, 74, 0, 71, 0, 67, 0, 71, 0, 74, 79, 0, 74,
}

// hatPattern marks the noise hat steps (offbeat eighths)
var hatPattern = [totalSteps]bool{
	false, false, true, false, false, false, true, false,
	false, false, true, false, false, false, true, false,
	false, false, true, false, false, false, true, false,
	false, false, true, false, false, false, true, false,
	false, false, true, false, false, false, true, false,
	false, false, true, false, false, false, true, false,
	false, false, true, false, false, false, true, false,
	false, false, true, false, false, false, true, false,
}

// noteFreq converts a MIDI note number to frequency
func noteFreq(note int) float64 {
	return 440.0 * math.Pow(2, float64(note-69)/12.0)
}

// musicLoop is the looping synthwave bed: per-sample step sequencing of
// a filtered square bass, a saw lead arpeggio and an offbeat noise hat.
// Self-contained generator in the manner of the one-shot effects, so it
// never allocates per frame.
type musicLoop struct {
	rate           beep.SampleRate
	pos            int
	samplesPerStep int

	bassPhase   float64
	leadPhase   float64
	leadFilter  float64
	noiseState  int64
	loopSamples int
}

// NewMusicLoop creates the background music streamer
func NewMusicLoop(rate beep.SampleRate) beep.Streamer {
	samplesPerStep := int(float64(rate) * 60.0 / musicBPM / 4) // sixteenths
	return &musicLoop{
		rate:           rate,
		samplesPerStep: samplesPerStep,
		loopSamples:    samplesPerStep * totalSteps,
		noiseState:     0x2545F491,
	}
}

func (m *musicLoop) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		loopPos := m.pos % m.loopSamples
		step := loopPos / m.samplesPerStep
		stepPos := loopPos % m.samplesPerStep
		stepT := float64(stepPos) / float64(m.samplesPerStep)

		var sample float64

		// Bass: square wave gated per step, short decay for punch
		if note := bassPattern[step]; note != 0 {
			freq := noteFreq(note)
			m.bassPhase += freq / float64(m.rate)
			m.bassPhase -= math.Floor(m.bassPhase)
			sq := 1.0
			if m.bassPhase >= 0.5 {
				sq = -1.0
			}
			env := math.Exp(-3 * stepT)
			sample += 0.45 * sq * env
		}

		// Lead: saw arpeggio through a one-pole low-pass that opens
		// with the envelope
		if note := leadPattern[step]; note != 0 {
			freq := noteFreq(note)
			m.leadPhase += freq / float64(m.rate)
			m.leadPhase -= math.Floor(m.leadPhase)
			saw := 2.0*m.leadPhase - 1.0
			env := math.Exp(-4 * stepT)
			cutoff := 0.15 + 0.25*env
			m.leadFilter += cutoff * (saw - m.leadFilter)
			sample += 0.35 * m.leadFilter * env
		}

		// Hat: short filtered noise burst on the offbeats
		if hatPattern[step] && stepT < 0.25 {
			m.noiseState = (m.noiseState*1103515245 + 12345) & 0x7fffffff
			noise := float64(m.noiseState)/float64(0x7fffffff)*2 - 1
			env := math.Exp(-30 * stepT)
			sample += 0.12 * noise * env
		}

		sample = math.Tanh(sample) * musicPeakAmp

		samples[i][0] = sample
		samples[i][1] = sample
		m.pos++
	}
	return len(samples), true
}

func (m *musicLoop) Err() error { return nil }
