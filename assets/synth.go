package assets

import (
	"bytes"
	"encoding/binary"
	"math"

	cfg "github.com/automoto/wallkick/config"
)

const (
	wavChannels      = 2
	wavBitsPerSample = 16
	bytesPerFrame    = wavChannels * wavBitsPerSample / 8
)

// SynthesizeWAV renders a melody as a 16-bit stereo PCM WAV file.
func SynthesizeWAV(m cfg.Melody, sampleRate int) []byte {
	pcm := synthesizePCM(m, sampleRate)

	var buf bytes.Buffer
	buf.Grow(44 + len(pcm))
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(wavChannels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*bytesPerFrame))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(bytesPerFrame))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(wavBitsPerSample))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

func synthesizePCM(m cfg.Melody, sampleRate int) []byte {
	if m.BPM <= 0 || len(m.Notes) == 0 || sampleRate <= 0 {
		return nil
	}
	beat := int(float64(sampleRate) * 60 / m.BPM)
	if beat <= 0 {
		return nil
	}
	gain := m.Gain
	if gain <= 0 {
		gain = 0.3
	}

	out := make([]byte, 0, beat*len(m.Notes)*bytesPerFrame)
	for i, freq := range m.Notes {
		bass := 0.0
		if len(m.Bass) > 0 {
			bass = m.Bass[(i/4)%len(m.Bass)]
		}
		for s := 0; s < beat; s++ {
			t := float64(s) / float64(sampleRate)
			// Short attack and release so notes do not click.
			env := math.Min(1, math.Min(float64(s), float64(beat-s))/float64(sampleRate)*200)

			v := 0.0
			if freq > 0 {
				v += 0.6 * softSquare(2*math.Pi*freq*t)
			}
			if bass > 0 {
				v += 0.4 * math.Sin(2*math.Pi*bass*t)
			}
			sample := int16(math.Max(-1, math.Min(1, v*gain*env)) * math.MaxInt16)
			out = binary.LittleEndian.AppendUint16(out, uint16(sample))
			out = binary.LittleEndian.AppendUint16(out, uint16(sample))
		}
	}
	return out
}

// softSquare is a square wave with its edges rounded off.
func softSquare(phase float64) float64 {
	return math.Tanh(4 * math.Sin(phase))
}
