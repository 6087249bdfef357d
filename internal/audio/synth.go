package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// waveType selects an oscillator wave shape.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// sweep is a finite oscillator whose frequency glides from one value to
// another over its duration, with a linear fade-out to avoid clicks.
type sweep struct {
	fromFreq float64
	toFreq   float64
	phase    float64
	duration int
	position int
	wave     waveType
}

// newSweep creates a frequency-sweep burst streamer.
func newSweep(fromFreq, toFreq float64, d time.Duration, wave waveType) beep.Streamer {
	return &sweep{
		fromFreq: fromFreq,
		toFreq:   toFreq,
		duration: sampleRate.N(d),
		wave:     wave,
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		progress := float64(o.position) / float64(o.duration)
		freq := o.fromFreq + progress*(o.toFreq-o.fromFreq)

		var val float64
		switch o.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case waveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0*o.phase - 1.0
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		// Fade out over the burst to avoid a click at the end
		val *= 0.4 * (1.0 - progress)

		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }
