// Package wavegen renders periodic waveforms into RIFF/WAVE files.
//
// The package supports PCM integer (8/16/24/32-bit) and IEEE float (32-bit)
// samples with any number of channels. Files always use the canonical
// 44-byte header: a RIFF chunk holding a 16-byte fmt chunk followed by the
// data chunk.
//
// A Writer streams packed samples and keeps the two length fields of the
// header current through Finalize:
//
//	info, _ := wavegen.Int16(wavegen.Stereo)
//	w, err := wavegen.NewWriter(f, info, wavegen.Hz44100)
//	...
//	defer w.Close()
//	err = wavegen.GenerateWave(w, params, nil, 1.0)
//
// Reader decodes files in the same layouts, and both sides exchange
// go-audio buffers for interoperability with the wider go-audio ecosystem.
package wavegen
