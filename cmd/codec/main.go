/*
Command codec round-trips a stream of token ids through the spike
encoding: each token's embedding is scheduled as a spike train, fed
through a scheduler with no brain in between, and decoded straight back
into a token, to exercise tokenio/tokenout/spiketrain as a unit.
*/
package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/SynapticNetworks/hippocampal-engine/params"
	"github.com/SynapticNetworks/hippocampal-engine/spiketrain"
	"github.com/SynapticNetworks/hippocampal-engine/tokenio"
	"github.com/SynapticNetworks/hippocampal-engine/tokenout"
)

const numEmbeddingChannels = 500

// decodeSpikes drains s into out, then prints whatever token comes out on
// top, with the spacing its is-suffix flag calls for. It reports whether
// a token passed the validity threshold.
func decodeSpikes(s *spiketrain.Scheduler, out *tokenout.TokenOutput) bool {
	out.Reset()
	for {
		spike, ok := s.PeekNext()
		if !ok {
			break
		}
		out.Spike([]uint16{spike.Channel})
		s.Advance()
	}

	best, ok := out.BestToken()
	if !ok {
		fmt.Println()
		return false
	}
	if best.IsSuffix {
		fmt.Print(best.Text)
	} else {
		fmt.Print(" " + best.Text)
	}
	return true
}

// transcodeTokens reads little-endian uint16 token ids from path and
// transcodes each one through the spike encoder and decoder in turn.
func transcodeTokens(p params.Params, path string, tokens []tokenio.Token) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("codec: open %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	scheduler := spiketrain.NewScheduler(numEmbeddingChannels, p, nil)
	var out tokenout.TokenOutput
	out.SetTokens(tokens)

	var timestamp float32
	for {
		var tokenID uint16
		if err := binary.Read(r, binary.LittleEndian, &tokenID); err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("codec: read token id: %w", err)
		}
		scheduler.ScheduleEmbedding(timestamp, p.SecondsPerSample, tokens[tokenID].Embedding, true)
		timestamp += p.SecondsPerSample
		if !decodeSpikes(scheduler, &out) {
			break
		}
	}
	fmt.Println()
	return nil
}

func main() {
	p := params.Default()

	tokens, err := tokenio.Load("data/tokens-20k.raw", "data/embeddings-500.raw", numEmbeddingChannels)
	if err != nil {
		log.Fatalf("codec: %v", err)
	}
	log.Printf("parsed %d tokens", len(tokens))
	if len(tokens) == 0 {
		log.Fatal("codec: empty token dictionary")
	}

	if err := transcodeTokens(p, "data/economist.tok", tokens); err != nil {
		log.Fatalf("codec: %v", err)
	}
}
