package tokenio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// writeDictionary builds a tiny two-token dictionary on disk and returns
// the paths to its strings and embeddings files.
func writeDictionary(t *testing.T) (stringsPath, embeddingsPath string) {
	t.Helper()
	dir := t.TempDir()

	stringsPath = filepath.Join(dir, "tokens.bin")
	embeddingsPath = filepath.Join(dir, "embeddings.bin")

	// numTokens=2 (little-endian), then:
	//   token 0: is_suffix=0, len=2, "hi"
	//   token 1: is_suffix=1, len=1, "!"
	strings := []byte{
		2, 0,
		0, 2, 'h', 'i',
		1, 1, '!',
	}
	embeddings := []byte{
		10, 20, 30,
		1, 2, 3,
	}

	require.NoError(t, writeFile(stringsPath, strings))
	require.NoError(t, writeFile(embeddingsPath, embeddings))
	return stringsPath, embeddingsPath
}

func TestLoad_ParsesTokensAndEmbeddings(t *testing.T) {
	sp, ep := writeDictionary(t)

	tokens, err := Load(sp, ep, 3)
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, uint16(0), tokens[0].ID)
	assert.False(t, tokens[0].IsSuffix)
	assert.Equal(t, "hi", tokens[0].Text)
	assert.Equal(t, []uint8{10, 20, 30}, tokens[0].Embedding)

	assert.Equal(t, uint16(1), tokens[1].ID)
	assert.True(t, tokens[1].IsSuffix)
	assert.Equal(t, "!", tokens[1].Text)
	assert.Equal(t, []uint8{1, 2, 3}, tokens[1].Embedding)
}

func TestLoad_TruncatedEmbeddingsFileErrors(t *testing.T) {
	sp, ep := writeDictionary(t)
	require.NoError(t, writeFile(ep, []byte{10, 20})) // short one byte

	_, err := Load(sp, ep, 3)
	assert.Error(t, err)
}

func TestLoad_MissingFileErrors(t *testing.T) {
	_, err := Load("/nonexistent/strings.bin", "/nonexistent/embeddings.bin", 3)
	assert.Error(t, err)
}

func TestToken_CloneIsIndependent(t *testing.T) {
	original := Token{ID: 1, Text: "a", Embedding: []uint8{5, 6}}
	clone := original.Clone()
	clone.Embedding[0] = 99

	assert.Equal(t, uint8(5), original.Embedding[0])
	assert.Equal(t, uint8(99), clone.Embedding[0])
}

func TestLogFieldName_ConvertsToSnakeCase(t *testing.T) {
	assert.Equal(t, "hello_world", LogFieldName("Hello World"))
}
