// SPDX-License-Identifier: EPL-2.0

package audthin

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/ik5/audthin/audio"
	"github.com/ik5/audthin/decimate"
	"github.com/ik5/audthin/formats"
	"github.com/ik5/audthin/output"
	"go.uber.org/zap"
)

var ErrFileNotFound = errors.New("audio file not found")

// Extractor decodes audio, thins it to the configured rate and prints one
// line per picked frame.
type Extractor struct {
	cfg Config
	reg *audio.Registry
	log *zap.Logger
}

// NewExtractor builds an Extractor. A nil registry selects formats.Default
// and a nil logger discards diagnostics.
func NewExtractor(cfg Config, reg *audio.Registry, logger *zap.Logger) *Extractor {
	if reg == nil {
		reg = formats.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{cfg: cfg, reg: reg, log: logger}
}

// Extract runs src through a default Extractor.
func Extract(src audio.Source, w io.Writer, cfg Config) (int, error) {
	return NewExtractor(cfg, nil, nil).Run(src, w)
}

// ExtractFile runs the file at path through a default Extractor.
func ExtractFile(path string, w io.Writer, cfg Config) (int, error) {
	return NewExtractor(cfg, nil, nil).RunFile(path, w)
}

// RunFile opens path, picks a decoder by extension and runs it. Nothing is
// written when the file cannot be opened or decoded.
func (e *Extractor) RunFile(path string, w io.Writer) (int, error) {
	if err := e.cfg.Validate(); err != nil {
		return 0, err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return 0, fmt.Errorf("%w", err)
	}

	dec, err := e.reg.ForPath(path)
	if err != nil {
		return 0, err
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("decoding %s: %w", path, err)
	}
	defer src.Close()

	e.log.Debug("opened audio file",
		zap.String("path", path),
		zap.Int("sampleRate", src.SampleRate()),
		zap.Int("channels", src.Channels()),
	)

	return e.Run(src, w)
}

// Run writes the lines for src to w and returns how many were written.
func (e *Extractor) Run(src audio.Source, w io.Writer) (int, error) {
	if err := e.cfg.Validate(); err != nil {
		return 0, err
	}

	if e.cfg.Mono {
		src = audio.NewMonoMixer(src)
	}

	opts := e.cfg.decimateOptions()
	if err := decimate.Validate(src.SampleRate(), e.cfg.TargetRate, opts...); err != nil {
		return 0, err
	}

	printer := output.NewPrinter(w, e.cfg.Output)

	var err error
	if e.cfg.Stream {
		err = e.runStream(src, printer, opts)
	} else {
		err = e.runBuffered(src, printer, opts)
	}

	// Lines printed before a failure are kept.
	if flushErr := printer.Flush(); err == nil {
		err = flushErr
	}

	e.log.Debug("extraction finished",
		zap.Int("lines", printer.Lines()),
		zap.Int("targetRate", e.cfg.TargetRate),
		zap.Error(err),
	)

	return printer.Lines(), err
}

func (e *Extractor) runBuffered(src audio.Source, printer *output.Printer, opts []decimate.Option) error {
	buf, err := audio.ReadAll(src)
	if err != nil {
		return fmt.Errorf("decoding audio: %w", err)
	}

	e.log.Debug("decoded audio",
		zap.Int("frames", buf.Len()),
		zap.Int("sampleRate", buf.SampleRate),
	)

	d, err := decimate.New(buf, e.cfg.TargetRate, opts...)
	if err != nil {
		return err
	}

	for p := range d.All() {
		if err := printer.Print(p); err != nil {
			return err
		}
	}

	return nil
}

func (e *Extractor) runStream(src audio.Source, printer *output.Printer, opts []decimate.Option) error {
	s, err := decimate.NewStream(src, e.cfg.TargetRate, opts...)
	if err != nil {
		return err
	}

	for p, err := range s.All() {
		if err != nil {
			return fmt.Errorf("decoding audio: %w", err)
		}
		if err := printer.Print(p); err != nil {
			return err
		}
	}

	return nil
}
