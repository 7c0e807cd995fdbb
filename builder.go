package densestr

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// BuilderOptions define builder specific options.
type BuilderOptions struct {
	// SizeHint is the expected total size in bytes of all elements.
	// Default: 0.
	SizeHint int

	// CountHint is the expected number of elements.
	// Default: 0.
	CountHint int

	// ValidateUTF8 rejects elements which are not valid UTF-8. Otherwise
	// invalid bytes are replaced with U+FFFD.
	// Default: false.
	ValidateUTF8 bool
}

func (o *BuilderOptions) norm() *BuilderOptions {
	var oo BuilderOptions
	if o != nil {
		oo = *o
	}

	if oo.SizeHint < 0 {
		oo.SizeHint = 0
	}
	if oo.CountHint < 0 {
		oo.CountHint = 0
	}

	return &oo
}

// Builder instances can build a sequence incrementally.
// A Builder must not be copied after first use.
type Builder struct {
	o *BuilderOptions

	buf    strings.Builder
	bounds []int
	n      int // the number of appended elements

	res *Strings // set once built
}

// NewBuilder returns a Builder.
func NewBuilder(o *BuilderOptions) *Builder {
	b := &Builder{o: o.norm()}
	b.buf.Grow(b.o.SizeHint)
	if b.o.CountHint > 1 {
		b.bounds = make([]int, 0, b.o.CountHint-1)
	}
	return b
}

// Append appends an element. Invalid UTF-8 is replaced with U+FFFD unless
// ValidateUTF8 is set, in which case an error is returned.
func (b *Builder) Append(s string) error {
	if err := b.check(b.o.ValidateUTF8 && !utf8.ValidString(s)); err != nil {
		return err
	}

	b.mark()
	b.buf.WriteString(toValid(s))
	return nil
}

// AppendBytes appends an element from a byte slice. The bytes are copied.
// Invalid UTF-8 is handled like in Append.
func (b *Builder) AppendBytes(p []byte) error {
	if err := b.check(b.o.ValidateUTF8 && !utf8.Valid(p)); err != nil {
		return err
	}

	b.mark()
	if utf8.Valid(p) {
		b.buf.Write(p)
	} else {
		b.buf.WriteString(toValid(string(p)))
	}
	return nil
}

// Len returns the number of elements appended so far.
func (b *Builder) Len() int { return b.n }

// Size returns the number of bytes appended so far.
func (b *Builder) Size() int {
	if b.res != nil {
		return b.res.Size()
	}
	return b.buf.Len()
}

// Build returns the sequence and closes the builder. Subsequent calls
// return the same result.
func (b *Builder) Build() *Strings {
	if b.res != nil {
		return b.res
	}

	b.res = &Strings{
		data:   b.buf.String(),
		bounds: b.bounds,
		n:      b.n,
	}
	b.buf = strings.Builder{}
	b.bounds = nil
	return b.res
}

func (b *Builder) check(invalid bool) error {
	if b.res != nil {
		return errClosed
	}
	if invalid {
		return fmt.Errorf("%w: element %d", ErrInvalidUTF8, b.n)
	}
	return nil
}

// mark records the start of the next element.
func (b *Builder) mark() {
	if b.n != 0 {
		b.bounds = append(b.bounds, b.buf.Len())
	}
	b.n++
}
