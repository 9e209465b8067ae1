package audio

import (
	"fmt"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"

	"github.com/vovakirdan/space-odyssey/internal/assets"
	"github.com/vovakirdan/space-odyssey/internal/sim"
)

// Cues is one decoded buffer per sound cue, all at the same sample rate.
type Cues map[sim.Cue]*beep.Buffer

// cueAssets maps cues to manifest names, in load order.
var cueAssets = []struct {
	cue  sim.Cue
	name string
}{
	{sim.CueShoot, "shoot"},
	{sim.CueDeath, "death"},
	{sim.CueExplosion, "explosion"},
}

// LoadCues decodes the cue files from dir, resampled to rate. Cues whose
// file is missing or broken get a synthesized sound and a report entry.
func LoadCues(dir string, rate beep.SampleRate) (Cues, assets.Report) {
	var rep assets.Report
	cues := make(Cues, len(cueAssets))
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}

	for _, ca := range cueAssets {
		buf := beep.NewBuffer(format)
		a, _ := assets.Lookup(ca.name)

		if err := decodeInto(buf, dir, a, rate); err != nil {
			rep.Add(a, err)
			buf = beep.NewBuffer(format)
			buf.Append(synthesize(ca.name, rate))
		}
		cues[ca.cue] = buf
	}
	return cues, rep
}

func decodeInto(buf *beep.Buffer, dir string, a assets.Asset, rate beep.SampleRate) error {
	f, err := assets.Open(dir, a)
	if err != nil {
		return err
	}
	// mp3.Decode takes ownership of f
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode %s: %w", a.File, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != rate {
		s = beep.Resample(4, format.SampleRate, rate, streamer)
	}
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return fmt.Errorf("decode %s: %w", a.File, err)
	}
	if buf.Len() == 0 {
		return fmt.Errorf("decode %s: no samples", a.File)
	}
	return nil
}
