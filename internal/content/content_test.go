package content_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"promptrelay.app/relay/internal/content"
)

var _ = Describe("ParseType", func() {
	It("rejects an empty type as missing", func() {
		_, err := content.ParseType("")
		Expect(err).To(MatchError(content.ErrMissingType))
	})

	DescribeTable("rejects unknown types",
		func(raw string) {
			_, err := content.ParseType(raw)
			Expect(err).To(MatchError(content.ErrInvalidType))
		},
		Entry("unrelated word", "poem"),
		Entry("wrong case", "Bio"),
		Entry("padded", " bio"),
	)

	It("accepts every registered type", func() {
		for _, t := range content.Types() {
			parsed, err := content.ParseType(string(t))
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed).To(Equal(t))
		}
	})
})

var _ = Describe("Variants", func() {
	It("registers a variant for every type", func() {
		for _, t := range content.Types() {
			v, ok := content.Lookup(t)
			Expect(ok).To(BeTrue())
			Expect(v.Type).To(Equal(t))
			Expect(v.Fields).To(HaveLen(4))
		}
	})

	It("prefixes every form key with the type", func() {
		for _, t := range content.Types() {
			v, _ := content.Lookup(t)
			for _, f := range v.Fields {
				Expect(f.FormKey).To(Equal(string(t) + "-" + f.Name))
			}
		}
	})
})

var _ = Describe("Normalize", func() {
	It("maps the project example", func() {
		fields := content.Normalize(content.TypeProject, map[string]string{
			"project-title":       "X",
			"project-description": "Y",
		})

		Expect(fields).To(Equal(content.Fields{
			"title":        "X",
			"description":  "Y",
			"technologies": "",
			"outcomes":     "",
		}))
	})

	It("defaults every omitted field to the empty string", func() {
		Expect(content.Normalize(content.TypeReflection, nil)).To(Equal(content.Fields{
			"topic": "", "experience": "", "learnings": "", "future": "",
		}))
	})

	It("defaults the bio tone to professional", func() {
		fields := content.Normalize(content.TypeBio, map[string]string{"bio-name": "Ada"})

		Expect(fields["tone"]).To(Equal("professional"))
		Expect(fields["name"]).To(Equal("Ada"))
		Expect(fields["skills"]).To(BeEmpty())
		Expect(fields["achievements"]).To(BeEmpty())
	})

	It("keeps an explicitly provided tone, even when blank", func() {
		Expect(content.Normalize(content.TypeBio, map[string]string{"bio-tone": "friendly"})["tone"]).To(Equal("friendly"))
		Expect(content.Normalize(content.TypeBio, map[string]string{"bio-tone": ""})["tone"]).To(Equal(""))
	})

	It("ignores unprefixed and foreign keys", func() {
		fields := content.Normalize(content.TypeBio, map[string]string{
			"name":          "ignored",
			"project-title": "ignored",
		})

		Expect(fields["name"]).To(BeEmpty())
		Expect(fields).NotTo(HaveKey("title"))
	})

	It("returns an empty set for unknown types", func() {
		Expect(content.Normalize(content.Type("poem"), map[string]string{"x": "y"})).To(BeEmpty())
	})
})

var _ = Describe("Render", func() {
	DescribeTable("includes every normalized value and the word range",
		func(t content.Type, formData map[string]string, wordRange string) {
			fields := content.Normalize(t, formData)

			prompt, err := content.Render(t, fields)
			Expect(err).NotTo(HaveOccurred())
			Expect(prompt).To(ContainSubstring(wordRange))
			for _, value := range fields {
				Expect(prompt).To(ContainSubstring(value))
			}
		},
		Entry("bio", content.TypeBio, map[string]string{
			"bio-name": "Ada Lovelace", "bio-skills": "Mathematics", "bio-achievements": "First program", "bio-tone": "warm",
		}, "150–200"),
		Entry("project", content.TypeProject, map[string]string{
			"project-title": "Relay", "project-description": "A prompt relay", "project-technologies": "Go", "project-outcomes": "Shipped",
		}, "200–250"),
		Entry("reflection", content.TypeReflection, map[string]string{
			"reflection-topic": "Testing", "reflection-experience": "Wrote specs", "reflection-learnings": "Small steps", "reflection-future": "Every repo",
		}, "250–300"),
	)

	It("renders the project example with empty trailing labels", func() {
		fields := content.Normalize(content.TypeProject, map[string]string{
			"project-title":       "X",
			"project-description": "Y",
		})

		prompt, err := content.Render(content.TypeProject, fields)
		Expect(err).NotTo(HaveOccurred())
		Expect(prompt).To(ContainSubstring("Title: X\n"))
		Expect(prompt).To(ContainSubstring("Description: Y\n"))
		Expect(prompt).To(ContainSubstring("Technologies Used: \n"))
		Expect(prompt).To(ContainSubstring("Results/Outcomes: \n"))
	})

	It("renders the full bio template", func() {
		prompt, err := content.Render(content.TypeBio, content.Normalize(content.TypeBio, map[string]string{
			"bio-name": "Ada", "bio-skills": "Math", "bio-achievements": "Engines",
		}))
		Expect(err).NotTo(HaveOccurred())
		Expect(prompt).To(Equal("Create a professional professional biography for Ada.\n\n" +
			"Skills: Math\n" +
			"Achievements: Engines\n\n" +
			"Write a 150–200 word biography highlighting expertise, accomplishments, and career journey."))
	})

	It("labels reflection fields", func() {
		prompt, err := content.Render(content.TypeReflection, content.Fields{
			"topic": "T", "experience": "E", "learnings": "L", "future": "F",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(prompt).To(HavePrefix("Compose a 250–300 word professional learning reflection."))
		Expect(prompt).To(ContainSubstring("Topic: T\nExperience: E\nInsights: L\nApplications: F"))
	})

	It("fills fields missing from the map with defaults", func() {
		prompt, err := content.Render(content.TypeBio, content.Fields{"name": "Ada"})
		Expect(err).NotTo(HaveOccurred())
		Expect(prompt).To(HavePrefix("Create a professional professional biography for Ada."))
	})

	It("does not escape markup in field values", func() {
		prompt, err := content.Render(content.TypeProject, content.Fields{"title": "<b>R&D</b>"})
		Expect(err).NotTo(HaveOccurred())
		Expect(prompt).To(ContainSubstring("Title: <b>R&D</b>"))
	})

	It("falls back to the generic instruction for unknown types", func() {
		prompt, err := content.Render(content.Type("poem"), content.Fields{"x": "y"})
		Expect(err).NotTo(HaveOccurred())
		Expect(prompt).To(Equal(content.GenericPrompt))
	})
})
