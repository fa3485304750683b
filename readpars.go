// Copyright (c) 2026 Raphaël Scherrer
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package readpars

import (
	"bufio"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
	"go.uber.org/zap"
)

// Reader reads one parameter file sequentially, line by line. A Reader
// is bound to a path at construction, opened at most once, and owned by
// a single caller; it provides no synchronization of its own.
type Reader struct {
	filename string
	fsys     fs.FS
	logger   *zap.Logger
	lz4      bool

	file  fs.File
	br    *bufio.Reader
	count int

	cur line
}

// Option is used to configure a Reader.
type Option func(*Reader)

// WithFS makes the Reader open its path inside the given [fs.FS]
// instead of the OS filesystem. Mainly useful for tests and in-memory
// inputs.
func WithFS(fsys fs.FS) Option {
	return func(r *Reader) {
		r.fsys = fsys
	}
}

// WithLogger registers a logger with the Reader. The default logger is
// a nop.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Reader) {
		r.logger = logger
	}
}

// WithLZ4 makes the Reader treat its input as an lz4-framed stream.
// Paths ending in ".lz4" enable this automatically.
func WithLZ4() Option {
	return func(r *Reader) {
		r.lz4 = true
	}
}

// New returns a Reader bound to the given path. The file is not opened
// until [Reader.Open] is called.
func New(filename string, opts ...Option) *Reader {
	r := &Reader{
		filename: filename,
		logger:   zap.NewNop(),
		lz4:      strings.HasSuffix(filename, ".lz4"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Open opens the underlying file. It fails with [OpenError] if the path
// cannot be opened and with [EmptyFileError] if the file holds zero
// bytes. The line counter starts at zero.
func (r *Reader) Open() error {
	f, err := r.openFile()
	if err != nil {
		return OpenError{File: r.filename, Cause: err}
	}

	var src io.Reader = f
	if r.lz4 {
		src = lz4.NewReader(f)
	}

	r.file = f
	r.br = bufio.NewReader(src)
	if r.EOF() {
		f.Close()
		r.file = nil
		r.br = nil
		return EmptyFileError{File: r.filename}
	}

	r.logger.Debug("opened parameter file", zap.String("file", r.filename))
	return nil
}

func (r *Reader) openFile() (fs.File, error) {
	if r.fsys != nil {
		return r.fsys.Open(r.filename)
	}
	return os.Open(r.filename)
}

// IsOpen reports whether the Reader currently holds an open file.
func (r *Reader) IsOpen() bool {
	return r.file != nil
}

// EOF reports whether the underlying stream has no more bytes to read.
// Callers must check it before every [Reader.ReadLine]. An unopened
// Reader is exhausted.
func (r *Reader) EOF() bool {
	if r.br == nil {
		return true
	}
	_, err := r.br.Peek(1)
	return err != nil
}

// ReadLine advances the Reader by one line: it increments the line
// counter, resets the per-line state, classifies the line as blank,
// comment or data, and for data lines extracts the parameter name. It
// fails with [ReadNameError] if no valid name token can be extracted
// and with [NoValueError] if the name is not followed by at least one
// value token.
//
// Calling ReadLine on an unopened or exhausted Reader is a programming
// error and panics.
func (r *Reader) ReadLine() error {
	if !r.IsOpen() {
		panic("readpars: ReadLine on unopened reader")
	}
	if r.EOF() {
		panic("readpars: ReadLine past end of file")
	}

	r.cur.reset()

	raw, err := r.br.ReadString('\n')
	r.count++
	if err != nil && err != io.EOF {
		return ReadNameError{File: r.filename, Line: r.count}
	}
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")

	r.cur.set(raw)
	r.logger.Debug("read line",
		zap.Int("line", r.count),
		zap.Bool("empty", r.cur.empty),
		zap.Bool("comment", r.cur.comment),
	)

	if r.cur.empty || r.cur.comment {
		return nil
	}

	name, ok := r.cur.next()
	if !ok {
		return ReadNameError{File: r.filename, Line: r.count}
	}
	r.cur.name = name

	if r.cur.endOfLine() {
		return NoValueError{File: r.filename, Line: r.count, Name: name}
	}
	return nil
}

// Empty reports whether the current line has zero length. A line of
// only whitespace is not empty.
func (r *Reader) Empty() bool {
	return r.cur.empty
}

// Comment reports whether the current line starts with '#'.
func (r *Reader) Comment() bool {
	return r.cur.comment
}

// LineCount returns the number of lines read so far.
func (r *Reader) LineCount() int {
	return r.count
}

// Filename returns the path the Reader was bound to.
func (r *Reader) Filename() string {
	return r.filename
}

// Line returns the raw text of the current line.
func (r *Reader) Line() string {
	return r.cur.raw
}

// Name returns the parameter name extracted from the current line, or
// an empty string for blank and comment lines.
func (r *Reader) Name() string {
	return r.cur.name
}

// Unknown returns the [InvalidParameterError] for the current line. It
// is meant to be called by the dispatch loop when the parameter name
// matches none of the names it recognizes.
func (r *Reader) Unknown() error {
	return InvalidParameterError{File: r.filename, Line: r.count, Name: r.cur.name}
}

// Close releases the underlying file. Closing an unopened or already
// closed Reader is a no-op.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	r.br = nil
	r.logger.Debug("closed parameter file",
		zap.String("file", r.filename),
		zap.Int("lines", r.count),
	)
	return err
}
