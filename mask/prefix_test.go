package mask_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/masktools/getmask/mask"
)

var _ = Describe("PrefixLength", func() {
	It("derives the dotted netmask", func() {
		Expect(PrefixLength(0).Netmask().String()).To(Equal("0.0.0.0"))
		Expect(PrefixLength(8).Netmask().String()).To(Equal("255.0.0.0"))
		Expect(PrefixLength(19).Netmask().String()).To(Equal("255.255.224.0"))
		Expect(PrefixLength(24).Netmask().String()).To(Equal("255.255.255.0"))
		Expect(PrefixLength(32).Netmask().String()).To(Equal("255.255.255.255"))
	})

	It("derives the wildcard as the bitwise complement", func() {
		Expect(PrefixLength(0).Wildcard().String()).To(Equal("255.255.255.255"))
		Expect(PrefixLength(24).Wildcard().String()).To(Equal("0.0.0.255"))
		Expect(PrefixLength(32).Wildcard().String()).To(Equal("0.0.0.0"))
	})

	It("renders the hex netmask with eight lowercase digits", func() {
		Expect(PrefixLength(24).HexString()).To(Equal("0xffffff00"))
		Expect(PrefixLength(0).HexString()).To(Equal("0x00000000"))
		Expect(PrefixLength(23).HexString()).To(Equal("0xfffffe00"))
	})

	It("renders the CIDR string", func() {
		Expect(PrefixLength(24).String()).To(Equal("/24"))
		Expect(PrefixLength(0).String()).To(Equal("/0"))
	})
})

var _ = Describe("Addr", func() {
	It("parses and renders dotted quads", func() {
		addr, err := ParseAddr("192.168.1.10")
		Expect(err).ToNot(HaveOccurred())
		Expect(addr).To(Equal(Addr(0xC0A8010A)))
		Expect(addr.String()).To(Equal("192.168.1.10"))
	})

	It("converts to a netip address", func() {
		addr, err := ParseAddr("10.0.0.5")
		Expect(err).ToNot(HaveOccurred())
		Expect(addr.Netip().String()).To(Equal("10.0.0.5"))
	})

	It("rejects short and long quads", func() {
		_, err := ParseAddr("10.0.0")
		Expect(err).To(HaveOccurred())

		_, err = ParseAddr("10.0.0.1.2")
		Expect(err).To(HaveOccurred())
	})

	It("rejects empty octets", func() {
		_, err := ParseAddr("10..0.1")
		Expect(err).To(HaveOccurred())
	})
})
