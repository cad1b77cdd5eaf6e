// Package corpus loads, transforms and persists the poem corpus the naming
// pipeline draws from. Corpus files follow the chinese-poetry JSON layout:
// each file holds an array of poems with title, author and paragraphs.
package corpus

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/abhissng/versename/blame"
)

// Poem is one corpus entry.
type Poem struct {
	Title      string   `json:"title"`
	Author     string   `json:"author"`
	Paragraphs []string `json:"paragraphs"`
}

// LoadFile reads one corpus file holding an array of poems.
func LoadFile(path string) ([]Poem, blame.Blame) {
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return nil, blame.CorpusReadFailed(path, err)
	}

	var poems []Poem
	if err := json.Unmarshal(data, &poems); err != nil {
		return nil, blame.CorpusDecodeFailed(path, err)
	}
	return poems, nil
}

// LoadDir reads every .json file under dir (non-recursive) and returns the
// poems in file-name order, so repeated loads see the corpus identically.
func LoadDir(dir string) ([]Poem, blame.Blame) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, blame.CorpusReadFailed(dir, err)
	}

	var poems []Poem
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		filePoems, berr := LoadFile(filepath.Join(dir, entry.Name()))
		if berr != nil {
			return nil, berr
		}
		poems = append(poems, filePoems...)
	}
	return poems, nil
}

// WriteFile persists poems as indented JSON, matching the corpus layout.
func WriteFile(path string, poems []Poem) blame.Blame {
	data, err := json.MarshalIndent(poems, "", "  ")
	if err != nil {
		return blame.CorpusWriteFailed(path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return blame.CorpusWriteFailed(path, err)
	}
	return nil
}
