package otel_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"promptrelay.app/relay/common/otel"
	"promptrelay.app/relay/core/config"
)

var _ = Describe("Setup", func() {
	It("is disabled without an endpoint", func() {
		telemetry, err := otel.Setup(context.Background(), config.OTelConfig{ServiceName: "prompt-relay"})
		Expect(err).NotTo(HaveOccurred())
		Expect(telemetry).To(BeNil())
	})
})

var _ = Describe("ParseHeaders", func() {
	DescribeTable("parses exporter headers",
		func(in string, expected map[string]string) {
			Expect(otel.ParseHeaders(in)).To(Equal(expected))
		},
		Entry("empty", "", map[string]string{}),
		Entry("single pair", "authorization=Bearer x", map[string]string{"authorization": "Bearer x"}),
		Entry("trims whitespace", " a = 1 , b=2", map[string]string{"a": "1", "b": "2"}),
		Entry("keeps '=' in values", "sig=a=b", map[string]string{"sig": "a=b"}),
		Entry("skips malformed pairs", "novalue,=x,k=v", map[string]string{"k": "v"}),
	)
})
