package densestr_test

import (
	"errors"

	"github.com/bsm/densestr"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Builder", func() {
	var subject *densestr.Builder

	BeforeEach(func() {
		subject = densestr.NewBuilder(nil)
	})

	It("should build empty", func() {
		s := subject.Build()
		Expect(s.Len()).To(Equal(0))
		Expect(s.FullString()).To(BeEmpty())
	})

	It("should append", func() {
		Expect(subject.Append("a")).To(Succeed())
		Expect(subject.Append("")).To(Succeed())
		Expect(subject.AppendBytes(nil)).To(Succeed())
		Expect(subject.AppendBytes([]byte("bc"))).To(Succeed())
		Expect(subject.Len()).To(Equal(4))
		Expect(subject.Size()).To(Equal(3))

		s := subject.Build()
		Expect(s.Len()).To(Equal(4))
		Expect(s.Bounds()).To(Equal([]int{1, 1, 1}))
		Expect(s.Slice()).To(Equal([]string{"a", "", "", "bc"}))
		Expect(s.Equal(densestr.New([]string{"a", "", "", "bc"}))).To(BeTrue())
	})

	It("should copy appended bytes", func() {
		p := []byte("foo")
		Expect(subject.AppendBytes(p)).To(Succeed())
		p[0] = 'b'
		Expect(subject.Build().At(0)).To(Equal("foo"))
	})

	It("should prevent appends after build", func() {
		Expect(subject.Append("a")).To(Succeed())
		s := subject.Build()

		Expect(subject.Append("b")).To(MatchError(`densestr: builder is closed`))
		Expect(subject.AppendBytes([]byte("b"))).To(MatchError(`densestr: builder is closed`))
		Expect(subject.Build()).To(BeIdenticalTo(s))
		Expect(subject.Size()).To(Equal(1))
		Expect(s.Slice()).To(Equal([]string{"a"}))
	})

	It("should apply hints", func() {
		subject = densestr.NewBuilder(&densestr.BuilderOptions{SizeHint: 1024, CountHint: 100})
		inputs := seedInputs(100)
		for _, x := range inputs {
			Expect(subject.Append(x)).To(Succeed())
		}
		Expect(subject.Build().Slice()).To(Equal(inputs))

		subject = densestr.NewBuilder(&densestr.BuilderOptions{SizeHint: -1, CountHint: -1})
		Expect(subject.Append("x")).To(Succeed())
		Expect(subject.Build().Slice()).To(Equal([]string{"x"}))
	})

	It("should replace invalid UTF-8 by default", func() {
		Expect(subject.Append("a\xffb")).To(Succeed())
		Expect(subject.AppendBytes([]byte{0xc3})).To(Succeed())
		Expect(subject.AppendBytes([]byte{0xa9})).To(Succeed())

		s := subject.Build()
		Expect(s.Slice()).To(Equal([]string{"a\uFFFDb", "\uFFFD", "\uFFFD"}))
		Expect(validElements(s)).To(BeTrue())
	})

	It("should validate UTF-8", func() {
		subject = densestr.NewBuilder(&densestr.BuilderOptions{ValidateUTF8: true})
		Expect(subject.Append("é")).To(Succeed())

		err := subject.Append("a\xffb")
		Expect(err).To(MatchError(`densestr: invalid UTF-8: element 1`))
		Expect(errors.Is(err, densestr.ErrInvalidUTF8)).To(BeTrue())

		err = subject.AppendBytes([]byte{0xc3})
		Expect(errors.Is(err, densestr.ErrInvalidUTF8)).To(BeTrue())

		Expect(subject.Len()).To(Equal(1))
		Expect(subject.Append("ok")).To(Succeed())

		s := subject.Build()
		Expect(s.Slice()).To(Equal([]string{"é", "ok"}))
		Expect(validElements(s)).To(BeTrue())
	})
})
