package id_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"promptrelay.app/relay/common/id"
)

var _ = Describe("Snowflake IDs", func() {
	BeforeEach(func() {
		Expect(id.Init(1)).To(Succeed())
	})

	It("is ready after Init", func() {
		Expect(id.Ready()).To(BeTrue())
	})

	It("generates increasing unique ids", func() {
		seen := make(map[int64]struct{}, 1000)
		prev := int64(0)
		for range 1000 {
			next := id.New()
			Expect(next).To(BeNumerically(">", prev))
			Expect(seen).NotTo(HaveKey(next))
			seen[next] = struct{}{}
			prev = next
		}
	})
})
