// SPDX-License-Identifier: EPL-2.0

package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ik5/audthin/decimate"
	"github.com/ik5/audthin/utils"
)

// Format selects how a sample value is written.
type Format int

const (
	// FormatFloat writes the shortest decimal that round-trips the float32.
	FormatFloat Format = iota
	// FormatFixed writes Precision digits after the decimal point.
	FormatFixed
	// FormatInt16 writes the sample as signed 16-bit PCM.
	FormatInt16
)

const (
	DefaultSeparator        = ";"
	DefaultChannelSeparator = ","
	DefaultPrecision        = 6
)

var ErrUnknownFormat = errors.New("unknown sample format")

var formatNames = map[string]Format{
	"float": FormatFloat,
	"fixed": FormatFixed,
	"int16": FormatInt16,
}

// ParseFormat maps "float", "fixed" or "int16" to a Format.
func ParseFormat(name string) (Format, error) {
	f, ok := formatNames[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
	return f, nil
}

func (f Format) String() string {
	for name, v := range formatNames {
		if v == f {
			return name
		}
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// Options controls line layout.
type Options struct {
	Format           Format
	Precision        int
	Separator        string
	ChannelSeparator string
}

// DefaultOptions produces "index;value" lines with round-trip floats.
func DefaultOptions() Options {
	return Options{
		Format:           FormatFloat,
		Precision:        DefaultPrecision,
		Separator:        DefaultSeparator,
		ChannelSeparator: DefaultChannelSeparator,
	}
}

// Printer writes one line per pick:
//
//	<index><Separator><value>[<ChannelSeparator><value>...]\n
type Printer struct {
	w     *bufio.Writer
	opts  Options
	line  []byte
	lines int
}

// NewPrinter returns a Printer that buffers writes to w.
func NewPrinter(w io.Writer, opts Options) *Printer {
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}
	if opts.ChannelSeparator == "" {
		opts.ChannelSeparator = DefaultChannelSeparator
	}
	if opts.Precision < 0 {
		opts.Precision = DefaultPrecision
	}

	return &Printer{
		w:    bufio.NewWriter(w),
		opts: opts,
		line: make([]byte, 0, 64),
	}
}

// AppendLine appends the text of p, including the newline, to dst.
func (pr *Printer) AppendLine(dst []byte, p decimate.Pick) []byte {
	dst = strconv.AppendInt(dst, int64(p.Index), 10)
	dst = append(dst, pr.opts.Separator...)

	for ch, v := range p.Frame {
		if ch > 0 {
			dst = append(dst, pr.opts.ChannelSeparator...)
		}
		dst = pr.appendValue(dst, v)
	}

	return append(dst, '\n')
}

func (pr *Printer) appendValue(dst []byte, v float32) []byte {
	switch pr.opts.Format {
	case FormatFixed:
		return strconv.AppendFloat(dst, float64(v), 'f', pr.opts.Precision, 32)
	case FormatInt16:
		return strconv.AppendInt(dst, int64(utils.Float32ToInt16(v)), 10)
	default:
		return strconv.AppendFloat(dst, float64(v), 'g', -1, 32)
	}
}

// Print writes p. Output is buffered until Flush.
func (pr *Printer) Print(p decimate.Pick) error {
	pr.line = pr.AppendLine(pr.line[:0], p)

	if _, err := pr.w.Write(pr.line); err != nil {
		return fmt.Errorf("writing line %d: %w", p.Index, err)
	}
	pr.lines++

	return nil
}

func (pr *Printer) Flush() error {
	if err := pr.w.Flush(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}

// Lines is the number of lines handed to Print so far.
func (pr *Printer) Lines() int { return pr.lines }
