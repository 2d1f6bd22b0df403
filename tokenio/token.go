/*
Package tokenio loads the token dictionary a Brain is trained and run
against: a parallel pair of files, one listing token strings, one
listing their embeddings, read into an ordered slice of Token.
*/
package tokenio

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iancoleman/strcase"
)

// Token is one entry in the dictionary: an id (its position in the
// strings file), whether it is a suffix to be appended to the previous
// token rather than a new word, its text, and its embedding.
type Token struct {
	ID       uint16
	IsSuffix bool
	Text     string
	// Embedding holds NumChannels raw byte weights, one per channel.
	Embedding []uint8
}

// Clone returns a deep copy of t, so callers can hold a Token beyond the
// lifetime of the slice it came from.
func (t Token) Clone() Token {
	embedding := make([]uint8, len(t.Embedding))
	copy(embedding, t.Embedding)
	return Token{
		ID:        t.ID,
		IsSuffix:  t.IsSuffix,
		Text:      t.Text,
		Embedding: embedding,
	}
}

// Load parses the token dictionary from stringsPath and embeddingsPath.
//
// The strings file is little-endian uint16 token count, followed by
// per-token records: one is-suffix byte (0 or 1), one length byte, then
// that many bytes of UTF-8 text. The embeddings file holds, for each
// token in order, numChannels raw bytes with no header or separator.
func Load(stringsPath, embeddingsPath string, numChannels uint16) ([]Token, error) {
	sf, err := os.Open(stringsPath)
	if err != nil {
		return nil, fmt.Errorf("tokenio: open %s: %w", stringsPath, err)
	}
	defer sf.Close()

	ef, err := os.Open(embeddingsPath)
	if err != nil {
		return nil, fmt.Errorf("tokenio: open %s: %w", embeddingsPath, err)
	}
	defer ef.Close()

	return parse(bufio.NewReader(sf), bufio.NewReader(ef), numChannels)
}

func parse(sr, er io.Reader, numChannels uint16) ([]Token, error) {
	var numTokens uint16
	if err := binary.Read(sr, binary.LittleEndian, &numTokens); err != nil {
		return nil, fmt.Errorf("tokenio: read token count: %w", err)
	}

	tokens := make([]Token, 0, numTokens)
	for id := uint16(0); id < numTokens; id++ {
		token, err := parseToken(sr, er, id, numChannels)
		if err != nil {
			return nil, fmt.Errorf("tokenio: parse token: %w", err)
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

func parseToken(sr, er io.Reader, id, numChannels uint16) (Token, error) {
	embedding := make([]uint8, numChannels)
	if _, err := io.ReadFull(er, embedding); err != nil {
		return Token{}, fmt.Errorf("read embedding for token %d: %w", id, err)
	}

	var isSuffixByte [1]byte
	if _, err := io.ReadFull(sr, isSuffixByte[:]); err != nil {
		return Token{}, fmt.Errorf("read suffix flag for token %d: %w", id, err)
	}
	if isSuffixByte[0] != 0 && isSuffixByte[0] != 1 {
		return Token{}, fmt.Errorf("invalid suffix flag for token %d: %d", id, isSuffixByte[0])
	}

	var lenByte [1]byte
	if _, err := io.ReadFull(sr, lenByte[:]); err != nil {
		return Token{}, fmt.Errorf("read string length for token %d: %w", id, err)
	}

	text := make([]byte, lenByte[0])
	if _, err := io.ReadFull(sr, text); err != nil {
		return Token{}, fmt.Errorf("read string of length %d for token %d: %w", lenByte[0], id, err)
	}

	return Token{
		ID:        id,
		IsSuffix:  isSuffixByte[0] == 1,
		Text:      string(text),
		Embedding: embedding,
	}, nil
}

// LogFieldName derives a stable snake_case log-field name from a token's
// text, for drivers that log which token was decoded.
func LogFieldName(text string) string {
	return strcase.ToSnake(strings.TrimSpace(text))
}
