package core

import (
	"os"
	"strings"
	"unicode/utf8"

	"github.com/huangsam/examviz/schema"
)

// Quote extraction limits.
const (
	maxScannedSentences = 1000
	maxSentenceRunes    = 200 // exclusive, measured before trimming
	minQuoteRunes       = 30  // exclusive, measured after trimming
	maxQuotes           = 3
)

// FallbackQuotes is returned when the corpus cannot be read or has no match.
func FallbackQuotes() []schema.Quote {
	return []schema.Quote{{Text: schema.FallbackQuoteText, Topic: schema.EnglishQuoteTopic}}
}

// ExtractQuotes splits text on periods and keeps up to three pseudo-sentences
// that mention both keywords and fall within the length bounds.
// Only the first thousand pieces are scanned.
func ExtractQuotes(text string) []schema.Quote {
	pieces := strings.Split(text, ".")
	if len(pieces) > maxScannedSentences {
		pieces = pieces[:maxScannedSentences]
	}

	var quotes []schema.Quote
	for _, piece := range pieces {
		if !strings.Contains(piece, schema.QuoteKeywordFirst) || !strings.Contains(piece, schema.QuoteKeywordSecond) {
			continue
		}
		if utf8.RuneCountInString(piece) >= maxSentenceRunes {
			continue
		}
		clean := strings.TrimSpace(piece)
		if utf8.RuneCountInString(clean) <= minQuoteRunes {
			continue
		}
		quotes = append(quotes, schema.Quote{Text: clean + ".", Topic: schema.EnglishQuoteTopic})
		if len(quotes) >= maxQuotes {
			break
		}
	}
	return quotes
}

// ExtractQuotesFromFile reads the corpus at path and extracts quotes from it.
// Undecodable bytes are dropped. A read failure or an empty result yields
// FallbackQuotes, alongside the read error if there was one.
func ExtractQuotesFromFile(path string) ([]schema.Quote, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FallbackQuotes(), err
	}
	quotes := ExtractQuotes(strings.ToValidUTF8(string(data), ""))
	if len(quotes) == 0 {
		return FallbackQuotes(), nil
	}
	return quotes, nil
}
