package namegen

import (
	"strings"

	"github.com/abhissng/versename/corpus"
)

// BuildPrompt renders the instruction sent to the naming service for one poem.
// The service is asked for given names drawn from the poem's imagery.
func BuildPrompt(p corpus.Poem) string {
	var b strings.Builder
	text := strings.Join(p.Paragraphs, "")
	if strings.TrimSpace(text) == "" {
		return ""
	}

	b.WriteString("Suggest given names inspired by this poem.\n")
	if strings.TrimSpace(p.Title) != "" {
		b.WriteString("Title: ")
		b.WriteString(p.Title)
		b.WriteString("\n")
	}
	if strings.TrimSpace(p.Author) != "" {
		b.WriteString("Author: ")
		b.WriteString(p.Author)
		b.WriteString("\n")
	}
	b.WriteString("Poem: ")
	b.WriteString(text)
	return b.String()
}
