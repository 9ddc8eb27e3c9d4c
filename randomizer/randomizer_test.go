package randomizer_test

import (
	. "github.com/compozed/stackdactyl/randomizer"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Randomizer", func() {
	Describe("HexString", func() {
		It("returns the requested number of characters", func() {
			r := Randomizer{}
			Expect(r.HexString(16)).To(HaveLen(16))
			Expect(r.HexString(9)).To(HaveLen(9))
		})

		It("only contains lower-case hex characters", func() {
			r := Randomizer{}
			Expect(r.HexString(64)).To(MatchRegexp(`^[0-9a-f]{64}$`))
		})

		It("does not repeat", func() {
			r := Randomizer{}
			Expect(r.HexString(16)).ToNot(Equal(r.HexString(16)))
		})
	})

	Describe("StringRunes", func() {
		It("returns the requested number of letters", func() {
			Expect(StringRunes(10)).To(MatchRegexp(`^[A-Za-z]{10}$`))
		})
	})
})
