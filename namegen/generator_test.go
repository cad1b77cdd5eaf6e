package namegen_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhissng/versename/blame"
	"github.com/abhissng/versename/corpus"
	"github.com/abhissng/versename/namegen"
)

func TestBuildPrompt(t *testing.T) {
	poem := corpus.Poem{
		Title:      "靜夜思",
		Author:     "李白",
		Paragraphs: []string{"床前明月光。", "疑是地上霜。"},
	}

	prompt := namegen.BuildPrompt(poem)
	assert.Contains(t, prompt, "靜夜思")
	assert.Contains(t, prompt, "李白")
	assert.Contains(t, prompt, "床前明月光。疑是地上霜。")
}

func TestBuildPromptEmptyPoem(t *testing.T) {
	assert.Empty(t, namegen.BuildPrompt(corpus.Poem{Title: "title only"}))
}

func TestGenerateMapsPoemsToSuggestions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		// Echo a marker back so the test can tie responses to prompts.
		name := "n/a"
		if idx := strings.Index(req.Prompt, "Title: "); idx >= 0 {
			name = strings.SplitN(req.Prompt[idx+len("Title: "):], "\n", 2)[0]
		}
		_ = json.NewEncoder(w).Encode(namegen.Suggestion{Names: []string{name}})
	}))
	defer server.Close()

	client, err := namegen.NewClient(server.URL)
	require.Nil(t, err)
	generator, err := namegen.NewGenerator(client, namegen.WithRPM(100), namegen.WithMaxConcurrent(2))
	require.Nil(t, err)

	poems := []corpus.Poem{
		{Title: "one", Paragraphs: []string{"床前明月光。"}},
		{Title: "two", Paragraphs: []string{"疑是地上霜。"}},
		{Title: "three", Paragraphs: []string{"舉頭望明月。"}},
	}

	results, err := generator.Generate(poems)
	require.Nil(t, err)
	require.Len(t, results, 3)

	want := []string{"one", "two", "three"}
	for i, res := range results {
		require.True(t, res.Output.IsSuccess(), "poem %d should have succeeded", i)
		assert.Equal(t, []string{want[i]}, res.Output.ToValue().Names)
	}
}

func TestGenerateEmptyPoemFailsAtItsIndexOnly(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(namegen.Suggestion{Names: []string{"名"}})
	}))
	defer server.Close()

	client, err := namegen.NewClient(server.URL)
	require.Nil(t, err)
	generator, err := namegen.NewGenerator(client, namegen.WithRPM(100))
	require.Nil(t, err)

	poems := []corpus.Poem{
		{Paragraphs: []string{"床前明月光。"}},
		{}, // no text at all
		{Paragraphs: []string{"疑是地上霜。"}},
	}

	results, err := generator.Generate(poems)
	require.Nil(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].Output.IsSuccess())
	require.True(t, results[1].Output.IsError())
	assert.Equal(t, blame.ErrorEmptyPrompt, results[1].Output.Error().FetchErrCode())
	assert.True(t, results[2].Output.IsSuccess())
}

func TestNewGeneratorRequiresClient(t *testing.T) {
	_, err := namegen.NewGenerator(nil)
	require.NotNil(t, err)
}
