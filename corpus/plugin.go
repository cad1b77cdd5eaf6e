package corpus

// Plugin transforms one poem. Plugins are pure: they return a new poem and
// never mutate the input's slices in place.
type Plugin interface {
	// Name returns a short identifier for logs.
	Name() string
	// Description explains what the plugin does.
	Description() string
	// Apply transforms the poem.
	Apply(Poem) Poem
}

// Chain applies plugins in order.
type Chain []Plugin

// Apply runs every plugin over the poem, feeding each one's output into the next.
func (c Chain) Apply(p Poem) Poem {
	for _, plugin := range c {
		p = plugin.Apply(p)
	}
	return p
}

// SplitParagraphs splits a paragraph after an ideographic full stop, but only
// when the stop is followed by a Han character. A stop at the end of the
// paragraph, or one followed by a quote mark or latin text, keeps the
// paragraph intact.
type SplitParagraphs struct{}

// Name implements Plugin.
func (SplitParagraphs) Name() string { return "split-paragraphs" }

// Description implements Plugin.
func (SplitParagraphs) Description() string {
	return "splits paragraphs holding several sentences into one paragraph per sentence"
}

// Apply implements Plugin.
func (SplitParagraphs) Apply(p Poem) Poem {
	out := p
	out.Paragraphs = make([]string, 0, len(p.Paragraphs))
	for _, paragraph := range p.Paragraphs {
		out.Paragraphs = append(out.Paragraphs, splitParagraph(paragraph)...)
	}
	return out
}

func splitParagraph(paragraph string) []string {
	runes := []rune(paragraph)
	var (
		segments []string
		current  []rune
	)
	for i, r := range runes {
		current = append(current, r)
		if r == '。' && i < len(runes)-1 && isHan(runes[i+1]) {
			segments = append(segments, string(current))
			current = current[:0]
		}
	}
	if len(current) > 0 {
		segments = append(segments, string(current))
	}
	if len(segments) == 0 {
		return []string{paragraph}
	}
	return segments
}

// isHan reports whether the rune falls in the CJK unified ideographs block.
func isHan(r rune) bool {
	return r >= 0x4e00 && r <= 0x9fff
}

// ConvertText rewrites every text field of a poem through the given converter,
// e.g. a traditional-to-simplified character converter. The converter itself
// is a collaborator supplied by the caller.
type ConvertText struct {
	Convert func(string) string
}

// Name implements Plugin.
func (ConvertText) Name() string { return "convert-text" }

// Description implements Plugin.
func (ConvertText) Description() string {
	return "rewrites title, author and paragraphs through the configured text converter"
}

// Apply implements Plugin.
func (c ConvertText) Apply(p Poem) Poem {
	if c.Convert == nil {
		return p
	}
	out := Poem{
		Title:      c.Convert(p.Title),
		Author:     c.Convert(p.Author),
		Paragraphs: make([]string, len(p.Paragraphs)),
	}
	for i, paragraph := range p.Paragraphs {
		out.Paragraphs[i] = c.Convert(paragraph)
	}
	return out
}
