// Converts a real-valued 1-D Igor binary wave to a 16-bit PCM WAV file.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-ibw/ibw"
)

var (
	inputPath  string
	outputPath string
	rate       int
	lenient    bool
	verbose    bool
)

func init() {
	flag.StringVar(&inputPath, "i", "", "Input .ibw file (required)")
	flag.StringVar(&outputPath, "o", "", "Output .wav file (defaults to the input name with a .wav extension)")
	flag.IntVar(&rate, "rate", 0, "Sample rate; 0 derives it from the wave's X axis scaling")
	flag.BoolVar(&lenient, "lenient", false, "Continue with a warning on non-zero padding")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
}

func main() {
	flag.Parse()

	if inputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: input path is required. Use the -i flag.")
		flag.Usage()
		os.Exit(1)
	}
	if outputPath == "" {
		ext := filepath.Ext(inputPath)
		outputPath = strings.TrimSuffix(inputPath, ext) + ".wav"
	}

	logger := zap.NewNop()
	if verbose || lenient {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}
	defer logger.Sync()

	if err := convert(logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func convert(logger *zap.Logger) error {
	opts := []ibw.Option{ibw.WithLogger(logger)}
	if lenient {
		opts = append(opts, ibw.WithLenient())
	}

	w, err := ibw.Open(inputPath, opts...)
	if err != nil {
		return err
	}
	if w.IsText() {
		return fmt.Errorf("%s: text waves cannot be rendered as audio", inputPath)
	}
	if w.Rank() != 1 {
		return fmt.Errorf("%s: wave has shape %v, only 1-D waves are supported", inputPath, w.Shape)
	}
	samples, err := w.Floats()
	if err != nil {
		return fmt.Errorf("%s: %w", inputPath, err)
	}

	sampleRate := rate
	if sampleRate == 0 {
		// hsA (sfA[0]) is the X step per point; its inverse is the rate.
		if delta, _ := w.Scale(0); delta > 0 {
			sampleRate = int(math.Round(1 / delta))
		}
	}
	if sampleRate <= 0 {
		sampleRate = 44100
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	enc := wav.NewEncoder(out, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           toPCM16(samples),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing %s: %w", outputPath, err)
	}

	logger.Info("converted wave",
		zap.String("input", inputPath),
		zap.String("output", outputPath),
		zap.Int("samples", len(samples)),
		zap.Int("sampleRate", sampleRate))
	fmt.Printf("%s: %d samples at %d Hz -> %s\n", w.Name(), len(samples), sampleRate, outputPath)
	return nil
}

// toPCM16 normalizes samples to full-scale 16-bit PCM.
func toPCM16(samples []float64) []int {
	var peak float64
	for _, s := range samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	scale := 0.0
	if peak > 0 {
		scale = 32767 / peak
	}
	out := make([]int, len(samples))
	for i, s := range samples {
		out[i] = int(math.Round(s * scale))
	}
	return out
}
