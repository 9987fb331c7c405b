package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"earshot/internal/config"
	"earshot/internal/diagnostics"
	"earshot/internal/logging"
	"earshot/internal/pcm"
	"earshot/internal/wavio"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool
	var clipThreshold float64
	var noiseWindowMS float64
	var noisePercentile float64
	var lagSearchMS float64
	var lagStep int
	var analysisRateHz int

	cmd := &cobra.Command{
		Use:   "analyze <capture.wav>",
		Short: "Analyze a stereo WAV capture and report signal quality",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			params := analysisParams(cfg, cmd, flagParams{
				clipThreshold:   clipThreshold,
				noiseWindowMS:   noiseWindowMS,
				noisePercentile: noisePercentile,
				lagSearchMS:     lagSearchMS,
				lagStep:         lagStep,
				analysisRateHz:  analysisRateHz,
			})

			capture, err := wavio.ReadFile(args[0])
			if err != nil {
				return err
			}

			stereo, err := pcm.DecodeStereo(capture.Format, capture.Payload)
			if err != nil {
				return fmt.Errorf("decode %s: %w", capture.Path, err)
			}

			logger.Debug("capture decoded",
				logging.String("file", capture.Path),
				logging.Int("sample_rate", stereo.SampleRate),
				logging.Int("frames", stereo.Frames()),
				logging.Bool("float_samples", capture.Format.Float),
			)

			report := diagnostics.Analyze(stereo, params, logger)

			if jsonOutput {
				return writeJSON(cmd, report)
			}
			renderReport(cmd.OutOrStdout(), capture.Path, report, decorateOutput(cfg))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the report as JSON")
	cmd.Flags().Float64Var(&clipThreshold, "clip-threshold", 0.95, "Clipping magnitude threshold")
	cmd.Flags().Float64Var(&noiseWindowMS, "noise-window", 50, "Noise-floor window length in ms")
	cmd.Flags().Float64Var(&noisePercentile, "noise-percentile", 0.2, "Noise-floor quiet-window percentile (0, 1]")
	cmd.Flags().Float64Var(&lagSearchMS, "lag-window", 200, "Echo lag search window in +/- ms")
	cmd.Flags().IntVar(&lagStep, "lag-step", 1, "Lag scan stride in samples")
	cmd.Flags().IntVar(&analysisRateHz, "analysis-rate", 8000, "Decimation target rate for the cross-channel pass")

	return cmd
}

type flagParams struct {
	clipThreshold   float64
	noiseWindowMS   float64
	noisePercentile float64
	lagSearchMS     float64
	lagStep         int
	analysisRateHz  int
}

// analysisParams starts from the configured thresholds and applies any flag
// the user set explicitly.
func analysisParams(cfg *config.Config, cmd *cobra.Command, flags flagParams) diagnostics.Params {
	params := diagnostics.Params{
		ClipThreshold:   cfg.Analysis.ClipThreshold,
		NoiseWindowMS:   cfg.Analysis.NoiseWindowMS,
		NoisePercentile: cfg.Analysis.NoisePercentile,
		LagSearchMS:     cfg.Analysis.LagSearchMS,
		LagStep:         cfg.Analysis.LagStep,
		AnalysisRateHz:  cfg.Analysis.AnalysisRateHz,
	}
	if cmd.Flags().Changed("clip-threshold") {
		params.ClipThreshold = flags.clipThreshold
	}
	if cmd.Flags().Changed("noise-window") {
		params.NoiseWindowMS = flags.noiseWindowMS
	}
	if cmd.Flags().Changed("noise-percentile") {
		params.NoisePercentile = flags.noisePercentile
	}
	if cmd.Flags().Changed("lag-window") {
		params.LagSearchMS = flags.lagSearchMS
	}
	if cmd.Flags().Changed("lag-step") {
		params.LagStep = flags.lagStep
	}
	if cmd.Flags().Changed("analysis-rate") {
		params.AnalysisRateHz = flags.analysisRateHz
	}
	return params
}

// decorateOutput decides whether the rendered report may use color and
// emoji markers.
func decorateOutput(cfg *config.Config) bool {
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}
}
