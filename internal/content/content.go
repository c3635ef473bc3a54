// Package content holds the closed set of generation variants. Each variant carries the
// form fields it reads, the target length of the generated text and the prompt template
// the fields are rendered into.
package content

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

type Type string

const (
	TypeBio        Type = "bio"
	TypeProject    Type = "project"
	TypeReflection Type = "reflection"
)

// GenericPrompt is rendered for a type outside the variant table.
const GenericPrompt = "Write a professional summary based on provided input."

// wordRangeKey is the template key carrying Variant.WordRange.
const wordRangeKey = "word_range"

var (
	ErrMissingType = errors.New("missing content type")
	ErrInvalidType = errors.New("invalid content type")
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

// Field maps one canonical field onto its form key.
type Field struct {
	Name    string
	FormKey string
	Default string
}

type Variant struct {
	Type      Type
	WordRange string
	Fields    []Field
	tmpl      *template.Template
}

var variants = map[Type]Variant{
	TypeBio: {
		Type:      TypeBio,
		WordRange: "150–200",
		Fields: []Field{
			{Name: "name", FormKey: "bio-name"},
			{Name: "skills", FormKey: "bio-skills"},
			{Name: "achievements", FormKey: "bio-achievements"},
			{Name: "tone", FormKey: "bio-tone", Default: "professional"},
		},
	},
	TypeProject: {
		Type:      TypeProject,
		WordRange: "200–250",
		Fields: []Field{
			{Name: "title", FormKey: "project-title"},
			{Name: "description", FormKey: "project-description"},
			{Name: "technologies", FormKey: "project-technologies"},
			{Name: "outcomes", FormKey: "project-outcomes"},
		},
	},
	TypeReflection: {
		Type:      TypeReflection,
		WordRange: "250–300",
		Fields: []Field{
			{Name: "topic", FormKey: "reflection-topic"},
			{Name: "experience", FormKey: "reflection-experience"},
			{Name: "learnings", FormKey: "reflection-learnings"},
			{Name: "future", FormKey: "reflection-future"},
		},
	},
}

func init() {
	templates := template.Must(template.New("prompts").Option("missingkey=error").ParseFS(promptFS, "prompts/*.tmpl"))
	for t, v := range variants {
		v.tmpl = templates.Lookup(string(t) + ".tmpl")
		if v.tmpl == nil {
			panic(fmt.Sprintf("content: no prompt template for %q", t))
		}
		variants[t] = v
	}
}

// ParseType validates a raw content type from a request.
func ParseType(raw string) (Type, error) {
	if raw == "" {
		return "", ErrMissingType
	}
	t := Type(raw)
	if _, ok := variants[t]; !ok {
		return "", ErrInvalidType
	}
	return t, nil
}

// Lookup returns the variant registered for t.
func Lookup(t Type) (Variant, bool) {
	v, ok := variants[t]
	return v, ok
}

// Types lists the supported content types in a stable order.
func Types() []Type {
	return []Type{TypeBio, TypeProject, TypeReflection}
}

// Fields is the normalized, default-filled field set of one request.
type Fields map[string]string

// Normalize reads the variant's form keys from formData. Absent keys take the field
// default; present keys are kept verbatim. Keys outside the schema are ignored.
func (v Variant) Normalize(formData map[string]string) Fields {
	fields := make(Fields, len(v.Fields))
	for _, f := range v.Fields {
		if value, ok := formData[f.FormKey]; ok {
			fields[f.Name] = value
		} else {
			fields[f.Name] = f.Default
		}
	}
	return fields
}

// Render interpolates fields into the variant's template. Fields missing from the
// map are filled with their defaults first.
func (v Variant) Render(fields Fields) (string, error) {
	data := make(map[string]string, len(v.Fields)+1)
	for _, f := range v.Fields {
		value, ok := fields[f.Name]
		if !ok {
			value = f.Default
		}
		data[f.Name] = value
	}
	data[wordRangeKey] = v.WordRange

	var sb strings.Builder
	if err := v.tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", v.Type, err)
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}

// Normalize maps formData for t. Unknown types yield an empty field set.
func Normalize(t Type, formData map[string]string) Fields {
	v, ok := variants[t]
	if !ok {
		return Fields{}
	}
	return v.Normalize(formData)
}

// Render renders the prompt for t, or GenericPrompt when t has no variant.
func Render(t Type, fields Fields) (string, error) {
	v, ok := variants[t]
	if !ok {
		return GenericPrompt, nil
	}
	return v.Render(fields)
}
