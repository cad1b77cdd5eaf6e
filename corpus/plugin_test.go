package corpus_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhissng/versename/corpus"
)

func TestSplitParagraphsSplitsBeforeHan(t *testing.T) {
	poem := corpus.Poem{
		Title:      "靜夜思",
		Author:     "李白",
		Paragraphs: []string{"床前明月光。疑是地上霜。"},
	}

	out := corpus.SplitParagraphs{}.Apply(poem)
	assert.Equal(t, []string{"床前明月光。", "疑是地上霜。"}, out.Paragraphs)
}

func TestSplitParagraphsKeepsTrailingStop(t *testing.T) {
	poem := corpus.Poem{Paragraphs: []string{"舉頭望明月。"}}

	out := corpus.SplitParagraphs{}.Apply(poem)
	assert.Equal(t, []string{"舉頭望明月。"}, out.Paragraphs)
}

func TestSplitParagraphsIgnoresNonHanFollower(t *testing.T) {
	// A quote mark after the stop is part of the same sentence.
	poem := corpus.Poem{Paragraphs: []string{"白云千载空悠悠。」结句"}}

	out := corpus.SplitParagraphs{}.Apply(poem)
	assert.Equal(t, []string{"白云千载空悠悠。」结句"}, out.Paragraphs)
}

func TestSplitParagraphsEmptyParagraphSurvives(t *testing.T) {
	poem := corpus.Poem{Paragraphs: []string{""}}

	out := corpus.SplitParagraphs{}.Apply(poem)
	assert.Equal(t, []string{""}, out.Paragraphs)
}

func TestSplitParagraphsDoesNotMutateInput(t *testing.T) {
	original := []string{"床前明月光。疑是地上霜。"}
	poem := corpus.Poem{Paragraphs: original}

	_ = corpus.SplitParagraphs{}.Apply(poem)
	assert.Equal(t, []string{"床前明月光。疑是地上霜。"}, original)
}

func TestConvertTextAppliesToAllFields(t *testing.T) {
	poem := corpus.Poem{
		Title:      "a",
		Author:     "b",
		Paragraphs: []string{"c", "d"},
	}

	out := corpus.ConvertText{Convert: strings.ToUpper}.Apply(poem)
	assert.Equal(t, "A", out.Title)
	assert.Equal(t, "B", out.Author)
	assert.Equal(t, []string{"C", "D"}, out.Paragraphs)
}

func TestConvertTextNilConverterIsNoop(t *testing.T) {
	poem := corpus.Poem{Title: "unchanged"}

	out := corpus.ConvertText{}.Apply(poem)
	assert.Equal(t, poem, out)
}

func TestChainAppliesInOrder(t *testing.T) {
	chain := corpus.Chain{
		corpus.ConvertText{Convert: func(s string) string { return s + "x" }},
		corpus.ConvertText{Convert: func(s string) string { return s + "y" }},
	}

	out := chain.Apply(corpus.Poem{Title: "t"})
	assert.Equal(t, "txy", out.Title)
}
