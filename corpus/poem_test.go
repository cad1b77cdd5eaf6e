package corpus_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhissng/versename/blame"
	"github.com/abhissng/versename/corpus"
)

func writeCorpusFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadDirReadsJSONFilesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "b.json", `[{"title":"second","author":"x","paragraphs":["p"]}]`)
	writeCorpusFile(t, dir, "a.json", `[{"title":"first","author":"y","paragraphs":["q"]}]`)
	writeCorpusFile(t, dir, "notes.txt", "ignored")

	poems, err := corpus.LoadDir(dir)
	require.Nil(t, err)
	require.Len(t, poems, 2)
	assert.Equal(t, "first", poems[0].Title)
	assert.Equal(t, "second", poems[1].Title)
}

func TestLoadFileRejectsMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeCorpusFile(t, dir, "bad.json", "{not json")

	_, err := corpus.LoadFile(filepath.Join(dir, "bad.json"))
	require.NotNil(t, err)
	assert.Equal(t, blame.ErrorCorpusDecodeFailed, err.FetchErrCode())
}

func TestLoadDirMissingDirectory(t *testing.T) {
	_, err := corpus.LoadDir(filepath.Join(t.TempDir(), "missing"))
	require.NotNil(t, err)
	assert.Equal(t, blame.ErrorCorpusReadFailed, err.FetchErrCode())
}

func TestWriteFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	poems := []corpus.Poem{{Title: "t", Author: "a", Paragraphs: []string{"p1", "p2"}}}

	require.Nil(t, corpus.WriteFile(path, poems))

	loaded, err := corpus.LoadFile(path)
	require.Nil(t, err)
	assert.Equal(t, poems, loaded)
}
