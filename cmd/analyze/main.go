package main

import (
	"fmt"
	"os"
	"time"

	"github.com/eleven-am/voice-confidence/internal/analysis"
	"github.com/eleven-am/voice-confidence/internal/spectral"
	"github.com/eleven-am/voice-confidence/internal/wav"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	fftSize  int
	hopSize  int
	interval float64
)

var rootCmd = &cobra.Command{
	Use:   "analyze <file.wav>",
	Short: "Score a recorded answer for voice confidence",
	Long: `Analyze runs the voice-confidence engine over a 16-bit mono PCM WAV
file and prints interval scores plus the final session summary.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAnalyze(args[0])
	},
}

func init() {
	rootCmd.Flags().IntVar(&fftSize, "fft-size", 2048, "FFT window size in samples")
	rootCmd.Flags().IntVar(&hopSize, "hop-size", 1024, "hop between windows in samples")
	rootCmd.Flags().Float64Var(&interval, "interval", 1.0, "seconds between printed scores")
}

func runAnalyze(path string) error {
	file, err := wav.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	cfg := analysis.DefaultConfig()
	cfg.SampleRate = file.SampleRate
	cfg.FFTSize = fftSize

	analyzer := analysis.New(cfg, nil)
	if err := analyzer.Start(); err != nil {
		return err
	}

	frames := spectral.Frames(file.Samples, fftSize, hopSize)
	if len(frames) == 0 {
		return fmt.Errorf("%s: too short to analyze (need at least %d samples)", path, fftSize)
	}

	color.New(color.Bold).Printf("Analyzing %s (%.1fs, %d Hz, %d frames)\n\n",
		path, file.Duration, file.SampleRate, len(frames))

	start := time.Unix(0, 0)
	hop := time.Duration(float64(hopSize) / float64(file.SampleRate) * float64(time.Second))
	nextPrint := interval

	for i, frame := range frames {
		at := start.Add(time.Duration(i) * hop)
		if _, err := analyzer.ProcessFrame(frame, at); err != nil {
			return err
		}

		elapsed := at.Sub(start).Seconds()
		if elapsed >= nextPrint {
			printScore(elapsed, analyzer.CurrentScore())
			nextPrint += interval
		}
	}

	summary := analyzer.Stop()

	fmt.Println()
	color.New(color.Bold).Println("Summary")
	fmt.Printf("  average score: %s\n", scoreColor(summary.AverageScore).Sprintf("%d", summary.AverageScore))
	fmt.Printf("  samples:       %d\n", summary.TotalSamples)
	fmt.Printf("  duration:      %ds\n", summary.DurationSeconds)
	fmt.Printf("  %s\n", summary.Suggestions)
	return nil
}

func printScore(elapsed float64, score int) {
	fmt.Printf("  %6.1fs  %s\n", elapsed, scoreColor(score).Sprintf("%3d", score))
}

func scoreColor(score int) *color.Color {
	switch {
	case score >= 80:
		return color.New(color.FgGreen)
	case score >= 60:
		return color.New(color.FgCyan)
	case score >= 40:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
