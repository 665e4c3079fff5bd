package web

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/rs/zerolog"
)

const encodingName = "cl100k_base"

// TokenBudget cuts text down to a fixed size.
type TokenBudget interface {
	Truncate(text string) string
}

// TiktokenBudget counts cl100k_base tokens. The encoding is loaded on first use; when
// it cannot be loaded the budget falls back to RuneBudget with four runes per token.
type TiktokenBudget struct {
	maxTokens int
	log       zerolog.Logger

	once     sync.Once
	encoding *tiktoken.Tiktoken
}

func NewTiktokenBudget(maxTokens int, log zerolog.Logger) *TiktokenBudget {
	return &TiktokenBudget{maxTokens: maxTokens, log: log}
}

func (b *TiktokenBudget) Truncate(text string) string {
	if b.maxTokens <= 0 {
		return text
	}

	b.once.Do(func() {
		encoding, err := tiktoken.GetEncoding(encodingName)
		if err != nil {
			b.log.Warn().Err(err).Msg("Token encoding unavailable, truncating by characters")
			return
		}
		b.encoding = encoding
	})

	if b.encoding == nil {
		return RuneBudget{MaxRunes: b.maxTokens * 4}.Truncate(text)
	}

	tokens := b.encoding.Encode(text, nil, nil)
	if len(tokens) <= b.maxTokens {
		return text
	}

	return b.encoding.Decode(tokens[:b.maxTokens])
}

type RuneBudget struct {
	MaxRunes int
}

func (b RuneBudget) Truncate(text string) string {
	if b.MaxRunes <= 0 {
		return text
	}

	runes := []rune(text)
	if len(runes) <= b.MaxRunes {
		return text
	}

	return string(runes[:b.MaxRunes])
}
