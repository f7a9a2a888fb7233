package plc

import (
	"bytes"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Console", func() {
	var out *bytes.Buffer

	BeforeEach(func() {
		out = new(bytes.Buffer)
	})

	It("should read whitespace separated integers", func() {
		c := NewConsole(strings.NewReader("1\n 0  2\n-3"), out)

		for _, want := range []int{1, 0, 2, -3} {
			v, err := c.ReadInt()
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal(want))
		}
	})

	It("should consume and report malformed tokens", func() {
		c := NewConsole(strings.NewReader("abc 1"), out)

		_, err := c.ReadInt()
		Expect(err).To(MatchError(ErrMalformedInput))

		v, err := c.ReadInt()
		Expect(err).NotTo(HaveOccurred())
		Expect(v).To(Equal(1))
	})

	It("should report the end of input", func() {
		c := NewConsole(strings.NewReader(""), out)

		_, err := c.ReadInt()
		Expect(err).To(MatchError(io.EOF))
	})

	It("should print to the output", func() {
		c := NewConsole(strings.NewReader(""), out)

		c.Printf("Opción: ")

		Expect(out.String()).To(Equal("Opción: "))
		Expect(c.Out()).To(BeIdenticalTo(out))
	})
})
