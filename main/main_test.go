package main_test

import (
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

func runGetmask(args ...string) *gexec.Session {
	cmd := exec.Command(getmaskBinPath, append([]string{"--no-color"}, args...)...)
	session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
	Expect(err).NotTo(HaveOccurred())
	Eventually(session).Should(gexec.Exit())
	return session
}

var _ = Describe("getmask", func() {
	Describe("mask-only mode", func() {
		It("prints the equivalents table for a CIDR prefix", func() {
			session := runGetmask("/24")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say("TCP/IP SUBNET MASK EQUIVALENTS"))
			Expect(session.Out).To(gbytes.Say(`CIDR\s+: /24`))
			Expect(session.Out).To(gbytes.Say(`Netmask\s+: 255.255.255.0`))
			Expect(session.Out).To(gbytes.Say(`Usable IP Addresses\s+: 254`))
		})

		It("accepts a dotted netmask", func() {
			session := runGetmask("255.255.240.0")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say(`CIDR\s+: /20`))
		})

		It("accepts a hex netmask", func() {
			session := runGetmask("0xffffff00")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say(`CIDR\s+: /24`))
		})

		It("warns about /31 subnets", func() {
			session := runGetmask("/31")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say("Warning: /31 subnet"))
		})
	})

	Describe("IP/mask mode", func() {
		It("prints the network breakdown", func() {
			session := runGetmask("192.168.1.10/24")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say("TCP/IP NETWORK INFORMATION"))
			Expect(session.Out).To(gbytes.Say(`Network Address\s+: 192.168.1.0`))
			Expect(session.Out).To(gbytes.Say(`Broadcast Address\s+: 192.168.1.255`))
			Expect(session.Out).To(gbytes.Say(`First Usable IP\s+: 192.168.1.1`))
			Expect(session.Out).To(gbytes.Say(`Last Usable IP\s+: 192.168.1.254`))
		})

		It("joins two positional arguments into IP/netmask", func() {
			session := runGetmask("10.0.0.1", "255.255.0.0")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say(`CIDR\s+: /16`))
			Expect(session.Out).To(gbytes.Say(`Network Address\s+: 10.0.0.0`))
		})

		It("prints the brief single line", func() {
			session := runGetmask("--brief", "192.168.1.10/24")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say(
				`CIDR: /24 \| Network: 192.168.1.0 \| Broadcast: 192.168.1.255 \| Range: 192.168.1.1-192.168.1.254`))
		})
	})

	Describe("input errors", func() {
		It("exits non-zero with guidance for a bare IP address", func() {
			session := runGetmask("239.0.0.1")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("looks like an IP address, not a netmask"))
			Expect(session.Err).To(gbytes.Say(`Hint: Use IP/mask format like 239.0.0.1/24`))
		})

		It("rejects out-of-range prefixes", func() {
			session := runGetmask("/33")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("prefix length must be between 0 and 32"))
		})

		It("rejects an invalid address side of an IP/mask token", func() {
			session := runGetmask("10.0.0.256/24")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("Invalid address: each octet must be a decimal integer between 0 and 255."))
		})

		It("rejects an invalid mask side of an IP/mask token", func() {
			session := runGetmask("10.0.0.1/255.255.255.256")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("Invalid mask: each octet must be a decimal integer between 0 and 255."))
		})

		It("rejects non-contiguous masks", func() {
			session := runGetmask("255.0.255.0")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("bits are not contiguous"))
		})

		It("rejects unrecognized input", func() {
			session := runGetmask("abc")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("Invalid mask format."))
		})

		It("logs parse failures to stderr in debug mode", func() {
			session := runGetmask("--debug", "abc")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say(`\[main\] DEBUG - Parsing input 'abc'`))
		})

		It("prints usage when no input is given", func() {
			session := runGetmask()

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("Usage:"))
		})

		It("rejects brief mode for mask-only input", func() {
			session := runGetmask("--brief", "/24")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("only available for IP/mask inputs"))
		})

		It("rejects whois mode for mask-only input", func() {
			session := runGetmask("--whois", "255.255.255.0")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("only available for IP/mask inputs"))
		})
	})
})
