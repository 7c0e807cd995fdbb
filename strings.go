package densestr

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/maphash"
	"io"
	"iter"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/zeebo/blake3"
)

// Strings is an immutable, ordered sequence of strings backed by a single
// buffer. The zero value is an empty sequence.
//
// A *Strings is safe for concurrent use by multiple readers.
type Strings struct {
	data   string // concatenated elements
	bounds []int  // start offset of elements 1..n-1
	n      int    // number of elements
}

// New creates a new sequence from items. Invalid UTF-8 is replaced with
// U+FFFD, use a Builder with ValidateUTF8 to reject it instead.
func New[T Text](items []T) *Strings {
	size := 0
	for _, x := range items {
		size += len(x)
	}

	var buf strings.Builder
	buf.Grow(size)

	var bounds []int
	if len(items) > 1 {
		bounds = make([]int, 0, len(items)-1)
	}
	for i, x := range items {
		if i != 0 {
			bounds = append(bounds, buf.Len())
		}
		buf.WriteString(toValid(string(x)))
	}

	return &Strings{
		data:   buf.String(),
		bounds: bounds,
		n:      len(items),
	}
}

// Collect creates a new sequence from the values of seq.
func Collect(seq iter.Seq[string]) *Strings {
	b := NewBuilder(nil)
	for v := range seq {
		_ = b.Append(v) // cannot fail without validation
	}
	return b.Build()
}

// FromParts creates a sequence from a raw buffer and the start offsets of
// all but the first element. The result always holds len(bounds)+1 elements,
// so parts of an empty sequence produce a single empty element; the empty
// sequence itself is the zero value.
//
// It returns ErrBadBounds if offsets are decreasing or exceed the buffer
// and ErrInvalidUTF8 if data is not valid UTF-8 or an offset splits a
// character.
func FromParts(data string, bounds []int) (*Strings, error) {
	if err := validBounds(data, bounds); err != nil {
		return nil, err
	}
	if !utf8.ValidString(data) {
		return nil, ErrInvalidUTF8
	}
	if !alignedBounds(data, bounds) {
		return nil, fmt.Errorf("%w: offset splits a character", ErrInvalidUTF8)
	}

	var cp []int
	if len(bounds) != 0 {
		cp = append(make([]int, 0, len(bounds)), bounds...)
	}
	return &Strings{data: data, bounds: cp, n: len(cp) + 1}, nil
}

// Len returns the number of elements.
func (s *Strings) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// Size returns the total number of bytes of all elements.
func (s *Strings) Size() int { return len(s.FullString()) }

// FullString returns all elements concatenated, without separators.
func (s *Strings) FullString() string {
	if s == nil {
		return ""
	}
	return s.data
}

// Bounds returns a copy of the boundary offsets.
func (s *Strings) Bounds() []int {
	if s.Len() < 2 {
		return nil
	}
	return append(make([]int, 0, len(s.bounds)), s.bounds...)
}

// Get returns the element at position i. It returns false if i is out of
// range. The result shares memory with the sequence, it is never copied.
func (s *Strings) Get(i int) (string, bool) {
	start, ok := s.start(i)
	if !ok {
		return "", false
	}
	end, ok := s.end(i)
	if !ok {
		return "", false
	}
	return s.data[start:end], true
}

// At returns the element at position i. It panics if i is out of range.
func (s *Strings) At(i int) string {
	v, ok := s.Get(i)
	if !ok {
		panic(fmt.Sprintf("densestr: index out of range [%d] with length %d", i, s.Len()))
	}
	return v
}

// The starting offset of the i-th element.
func (s *Strings) start(i int) (int, bool) {
	if i < 0 || i >= s.Len() {
		return 0, false
	} else if i == 0 {
		return 0, true
	}
	return s.bounds[i-1], true
}

// The end offset of the i-th element.
func (s *Strings) end(i int) (int, bool) {
	if i < 0 || i >= s.Len() {
		return 0, false
	} else if i == s.n-1 {
		return len(s.data), true
	}
	return s.bounds[i], true
}

// Iter returns a new iterator, positioned before the first element.
func (s *Strings) Iter() *Iterator {
	return &Iterator{s: s}
}

// All returns an iterator over positions and elements.
func (s *Strings) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for it := s.Iter(); it.Next(); {
			if !yield(it.Pos(), it.Value()) {
				return
			}
		}
	}
}

// Values returns an iterator over elements.
func (s *Strings) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		for it := s.Iter(); it.Next(); {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Slice copies all elements into a newly allocated slice. Unlike values
// returned by Get, the results do not retain the shared buffer.
func (s *Strings) Slice() []string {
	out := make([]string, 0, s.Len())
	for it := s.Iter(); it.Next(); {
		out = append(out, strings.Clone(it.Value()))
	}
	return out
}

// views returns all elements as substrings of the shared buffer.
func (s *Strings) views() []string {
	out := make([]string, 0, s.Len())
	for it := s.Iter(); it.Next(); {
		out = append(out, it.Value())
	}
	return out
}

// Equal reports whether both sequences have the same number of elements and
// the same concatenated content.
func (s *Strings) Equal(other *Strings) bool {
	return s.Len() == other.Len() && s.FullString() == other.FullString()
}

// WriteHash writes the concatenated content and the number of elements to h.
// Two equal sequences always write the same input.
func (s *Strings) WriteHash(h hash.Hash) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], uint64(s.Len()))

	_, _ = io.WriteString(h, s.FullString())
	_, _ = h.Write(tmp[:])
}

// Hash returns a seeded hash of the sequence, consistent with Equal.
// Results are only comparable within the same process and seed.
func (s *Strings) Hash(seed maphash.Seed) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	s.WriteHash(&h)
	return h.Sum64()
}

// Sum returns a BLAKE3 digest of the sequence, consistent with Equal.
// Unlike Hash, the result is stable across processes.
func (s *Strings) Sum() [32]byte {
	h := blake3.New()
	s.WriteHash(h)

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// String returns a debug representation, i.e. ["foo", "", "bar"].
func (s *Strings) String() string {
	var sb strings.Builder
	sb.Grow(s.Size() + 4*s.Len() + 2)

	sb.WriteByte('[')
	for it := s.Iter(); it.Next(); {
		if it.Pos() != 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(it.Value()))
	}
	sb.WriteByte(']')
	return sb.String()
}

// --------------------------------------------------------------------

// Iterator iterates over elements in order.
type Iterator struct {
	s   *Strings
	pos int // the next position
	val string
}

// Next advances the cursor to the next element and returns true if
// successful.
func (i *Iterator) Next() bool {
	v, ok := i.s.Get(i.pos)
	if !ok {
		return false
	}
	i.val = v
	i.pos++
	return true
}

// Value returns the current element.
func (i *Iterator) Value() string { return i.val }

// Pos returns the position of the current element, -1 before the first
// call to Next.
func (i *Iterator) Pos() int { return i.pos - 1 }

// More returns true if more elements can be read.
func (i *Iterator) More() bool { return i.pos < i.s.Len() }

// Remaining returns the exact number of elements left.
func (i *Iterator) Remaining() int { return i.s.Len() - i.pos }
