// SPDX-License-Identifier: EPL-2.0

package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ik5/audthin"
	"github.com/ik5/audthin/formats"
	"github.com/ik5/audthin/internal/config"
)

type flags struct {
	configPath string
	verbose    bool
	settings   config.Config
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &flags{settings: config.Default()}

	cmd := &cobra.Command{
		Use:   "audthin [flags] <input>",
		Short: "Print a thinned-out amplitude series of an audio file",
		Long: `audthin decodes an audio file and keeps the sample at offset
floor(k * sourceRate / rate) for k = 0, 1, 2, ... Each kept sample is
printed as "index;value". Multi-channel frames join their channel values
with ",".

Supported inputs: wav, aiff, mp3, ogg (vorbis), flac.

Examples:
  audthin Heartbeat.ogg
  audthin -r 50 --format int16 voice.wav
  audthin --config thin.yaml --mono song.flac`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, f, args[0], stdout, stderr)
		},
	}

	fl := cmd.Flags()
	fl.IntVarP(&f.settings.Rate, "rate", "r", f.settings.Rate, "target rate in Hz")
	fl.BoolVar(&f.settings.Strict, "strict", false, "reject a rate above the source rate")
	fl.BoolVar(&f.settings.Mono, "mono", false, "average channels into one value")
	fl.BoolVar(&f.settings.Stream, "stream", false, "print while decoding instead of decoding first")
	fl.StringVar(&f.settings.Format, "format", f.settings.Format, "value format: float, fixed or int16")
	fl.IntVar(&f.settings.Precision, "precision", f.settings.Precision, "digits after the point for --format fixed")
	fl.StringVar(&f.settings.Separator, "separator", f.settings.Separator, "separator between index and value")
	fl.StringVar(&f.configPath, "config", "", "YAML file with default settings")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func run(cmd *cobra.Command, f *flags, input string, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, f.verbose)
	defer func() { _ = logger.Sync() }()

	settings, err := resolve(cmd.Flags(), f)
	if err != nil {
		return err
	}

	cfg, err := settings.Extraction()
	if err != nil {
		return err
	}

	logger.Debug("settings resolved",
		zap.String("input", input),
		zap.Int("targetRate", cfg.TargetRate),
		zap.Stringer("format", cfg.Output.Format),
		zap.Bool("stream", cfg.Stream),
		zap.Bool("mono", cfg.Mono),
	)

	lines, err := audthin.NewExtractor(cfg, formats.Default(), logger).RunFile(input, stdout)
	if err != nil {
		return err
	}

	logger.Info("done", zap.String("input", input), zap.Int("lines", lines))

	return nil
}

// resolve layers explicitly set flags over the config file.
func resolve(fs *pflag.FlagSet, f *flags) (config.Config, error) {
	if f.configPath == "" {
		return f.settings, nil
	}

	settings, err := config.Load(f.configPath)
	if err != nil {
		return config.Config{}, err
	}

	fs.Visit(func(fl *pflag.Flag) {
		switch fl.Name {
		case "rate":
			settings.Rate = f.settings.Rate
		case "strict":
			settings.Strict = f.settings.Strict
		case "mono":
			settings.Mono = f.settings.Mono
		case "stream":
			settings.Stream = f.settings.Stream
		case "format":
			settings.Format = f.settings.Format
		case "precision":
			settings.Precision = f.settings.Precision
		case "separator":
			settings.Separator = f.settings.Separator
		}
	})

	return settings, nil
}
