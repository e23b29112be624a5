package wave

import "io"
import "os"
import "github.com/faiface/beep"
import "github.com/faiface/beep/wav"
import "github.com/mewkiz/flac"

func loadwav(name string) (out []float64, sr int) {
	file, err := os.Open(name)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	stream, format, err := wav.Decode(file)
	if err != nil {
		return nil, 0
	}
	defer stream.Close()

	var samples = make([][2]float64, 512)
	for {
		n, ok := stream.Stream(samples)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			out = append(out, samples[i][0])
		}
	}

	return out, int(format.SampleRate)
}

func loadflac(name string) (out []float64, sr int) {
	stream, err := flac.Open(name)
	if err != nil {
		return nil, 0
	}
	defer stream.Close()

	var scale = float64(int64(1) << (stream.Info.BitsPerSample - 1))
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0
		}
		for _, sample := range frame.Subframes[0].Samples {
			out = append(out, float64(sample)/scale)
		}
	}

	return out, int(stream.Info.SampleRate)
}

// vecStreamer adapts a mono sample vector to the beep streamer interface.
type vecStreamer struct {
	vec []float64
	pos int
}

func (v *vecStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if v.pos >= len(v.vec) {
		return 0, false
	}
	for n = 0; n < len(samples) && v.pos < len(v.vec); n++ {
		samples[n][0] = v.vec[v.pos]
		samples[n][1] = v.vec[v.pos]
		v.pos++
	}
	return n, true
}

func (v *vecStreamer) Err() error { return nil }

func dumpwav(name string, vec []float64, sr int) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}

	format := beep.Format{
		SampleRate:  beep.SampleRate(sr),
		NumChannels: 1,
		Precision:   2,
	}

	if err := wav.Encode(file, &vecStreamer{vec: vec}, format); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func pad(buf []float64, window int) []float64 {
	if len(buf)&1 == 1 {
		buf = append(buf, 0)
	}
	if len(buf)&2 == 2 {
		buf = append([]float64{0}, buf...)
		buf = append(buf, 0)
	}
	if len(buf)&4 == 4 {
		buf = append([]float64{0, 0}, buf...)
		buf = append(buf, 0, 0)
	}
	for len(buf)%window != 0 {
		buf = append([]float64{0, 0, 0, 0}, buf...)
		buf = append(buf, 0, 0, 0, 0)
	}
	for i := 0; i < window/4; i++ {
		buf = append([]float64{0, 0, 0, 0}, buf...)
		buf = append(buf, 0, 0, 0, 0)
	}
	return buf
}
