package tabular

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
)

// Stdin is the file name that selects standard input.
const Stdin = "-"

const maxLineSize = 1 << 20

// gap is a run of two whitespace runes, the mark of a column layout.
// RE2's \s is ASCII only, so padding made of NBSP or other Unicode spaces
// is not a gap.
var gap = regexp.MustCompile(`\s\s`)

// Option configures [ParseFile] and [ParseReader].
type Option func(*options)

type options struct {
	skip  int
	stdin io.Reader
}

// WithSkip drops n lines before the header. With n == 0 a single banner line
// is dropped when it looks like prose and the next line looks like a header.
func WithSkip(n int) Option {
	return func(o *options) { o.skip = n }
}

// WithStdin sets the reader used for the "-" file name.
// Default: os.Stdin.
func WithStdin(r io.Reader) Option {
	return func(o *options) { o.stdin = r }
}

// ParseFile reads the named file, or standard input for "-", and parses it.
func ParseFile(name string, opts ...Option) ([]Record, error) {
	o := options{stdin: os.Stdin}
	for _, opt := range opts {
		opt(&o)
	}
	if name == Stdin {
		return ParseReader(o.stdin, opts...)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()
	return ParseReader(f, opts...)
}

// ParseReader reads all lines from r, applies the skip option and parses the
// rest.
func ParseReader(r io.Reader, opts ...Option) ([]Record, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	lines, err := ReadLines(r)
	if err != nil {
		return nil, err
	}
	return Parse(SkipLines(lines, o.skip))
}

// ReadLines reads r fully and returns its lines without line terminators.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

// SkipLines drops the first skip lines. When skip is 0 it drops the first
// line only if that line has no whitespace gap and the second line does, as
// with the banner netstat prints above its header.
func SkipLines(lines []string, skip int) []string {
	if skip > 0 {
		return lines[min(skip, len(lines)):]
	}
	if len(lines) > 1 && !gap.MatchString(lines[0]) && gap.MatchString(lines[1]) {
		return lines[1:]
	}
	return lines
}
