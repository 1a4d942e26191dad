package subnet_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/masktools/getmask/mask"
	. "github.com/masktools/getmask/subnet"
)

func addr(s string) mask.Addr {
	a, err := mask.ParseAddr(s)
	Expect(err).ToNot(HaveOccurred())
	return a
}

var _ = Describe("CalculateForAddr", func() {
	It("derives a /24 network", func() {
		info := CalculateForAddr(24, addr("192.168.1.10"))

		Expect(info.Netmask.String()).To(Equal("255.255.255.0"))
		Expect(info.Wildcard.String()).To(Equal("0.0.0.255"))
		Expect(info.Network.String()).To(Equal("192.168.1.0"))
		Expect(info.Broadcast.String()).To(Equal("192.168.1.255"))
		Expect(info.FirstUsable.String()).To(Equal("192.168.1.1"))
		Expect(info.LastUsable.String()).To(Equal("192.168.1.254"))
		Expect(info.UsableHosts).To(Equal(uint64(254)))
		Expect(info.Class).To(Equal(ClassNormal))
		Expect(info.Class.Warning()).To(BeEmpty())
	})

	It("masks the base address down to the network", func() {
		info := CalculateForAddr(19, addr("172.16.47.200"))

		Expect(info.Network.String()).To(Equal("172.16.32.0"))
		Expect(info.Broadcast.String()).To(Equal("172.16.63.255"))
		Expect(info.UsableHosts).To(Equal(uint64(8190)))
	})

	It("treats /31 as a point-to-point link", func() {
		info := CalculateForAddr(31, addr("10.0.0.0"))

		Expect(info.Network.String()).To(Equal("10.0.0.0"))
		Expect(info.Broadcast.String()).To(Equal("10.0.0.1"))
		Expect(info.FirstUsable.String()).To(Equal("10.0.0.0"))
		Expect(info.LastUsable.String()).To(Equal("10.0.0.1"))
		Expect(info.UsableHosts).To(Equal(uint64(2)))
		Expect(info.Class).To(Equal(ClassPointToPoint))
		Expect(info.Class.Warning()).To(ContainSubstring("point-to-point"))
	})

	It("treats /32 as a host route", func() {
		info := CalculateForAddr(32, addr("10.0.0.5"))

		Expect(info.Network.String()).To(Equal("10.0.0.5"))
		Expect(info.Broadcast.String()).To(Equal("10.0.0.5"))
		Expect(info.FirstUsable.String()).To(Equal("10.0.0.5"))
		Expect(info.LastUsable.String()).To(Equal("10.0.0.5"))
		Expect(info.UsableHosts).To(Equal(uint64(1)))
		Expect(info.Class).To(Equal(ClassHostRoute))
		Expect(info.Class.Warning()).To(ContainSubstring("single host"))
	})

	It("does not overflow for /0 on 0.0.0.0", func() {
		info := CalculateForAddr(0, addr("0.0.0.0"))

		Expect(info.Netmask.String()).To(Equal("0.0.0.0"))
		Expect(info.Wildcard.String()).To(Equal("255.255.255.255"))
		Expect(info.Network.String()).To(Equal("0.0.0.0"))
		Expect(info.Broadcast.String()).To(Equal("255.255.255.255"))
		Expect(info.UsableHosts).To(Equal(uint64(4294967294)))
	})

	It("exposes the usable hosts as an IP range", func() {
		info := CalculateForAddr(24, addr("192.168.1.10"))

		r := info.HostRange()
		Expect(r.IsValid()).To(BeTrue())
		Expect(r.From().String()).To(Equal("192.168.1.1"))
		Expect(r.To().String()).To(Equal("192.168.1.254"))
	})
})

var _ = Describe("Calculate", func() {
	It("defaults the network to 0.0.0.0 in mask-only mode", func() {
		info := Calculate(24)

		Expect(info.HasBase).To(BeFalse())
		Expect(info.Netmask.String()).To(Equal("255.255.255.0"))
		Expect(info.Network.String()).To(Equal("0.0.0.0"))
		Expect(info.UsableHosts).To(Equal(uint64(254)))
	})

	It("counts two usable hosts for every /31 regardless of base", func() {
		Expect(Calculate(31).UsableHosts).To(Equal(uint64(2)))
	})
})
