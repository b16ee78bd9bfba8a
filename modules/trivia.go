package modules

import (
	"fmt"
	"math/rand"
	"time"

	"immutabot/db"
)

// QuizPoll is a single-correct-answer quiz ready to be sent to a chat.
type QuizPoll struct {
	Question      string
	Options       []string
	CorrectOption int
	Explanation   string
}

const quoteDateLayout = "Jan 02, 2006 at 03:04 PM"

// FormatUserDisplay renders a user for all author-facing text: the @handle
// when one is set, otherwise a numeric fallback.
func FormatUserDisplay(userID int64, username string) string {
	if username != "" {
		return "@" + username
	}
	return fmt.Sprintf("User %d", userID)
}

// FormatQuoteDate renders the quote timestamp in the bot's display zone.
func FormatQuoteDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(quoteDateLayout)
}

// BuildQuiz turns a quote and the chat's author set into a "guess who said
// this" poll: the real author plus up to 3 decoy authors, shuffled, with
// the correct option's index recorded.
//
// When two authors render to the same display string the index resolves to
// the first match. Callers must pass at least two distinct authors.
func BuildQuiz(quote *db.Quote, authors []db.Author, rng *rand.Rand, loc *time.Location) QuizPoll {
	correct := FormatUserDisplay(quote.UserID, quote.Username)

	var decoys []string
	for _, a := range authors {
		if a.UserID == quote.UserID {
			continue
		}
		decoys = append(decoys, FormatUserDisplay(a.UserID, a.Username))
	}

	// pick up to 3 decoys without replacement
	rng.Shuffle(len(decoys), func(i, j int) {
		decoys[i], decoys[j] = decoys[j], decoys[i]
	})
	n := 3
	if len(decoys) < n {
		n = len(decoys)
	}

	options := append([]string{correct}, decoys[:n]...)

	// shuffle so the correct answer isn't always first
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIdx := 0
	for i, opt := range options {
		if opt == correct {
			correctIdx = i
			break
		}
	}

	return QuizPoll{
		Question:      fmt.Sprintf("Who said this? (≖_≖)\n\"%s\"", quote.MessageText),
		Options:       options,
		CorrectOption: correctIdx,
		Explanation:   fmt.Sprintf("🗓️ Quote from %s", FormatQuoteDate(quote.MessageDate, loc)),
	}
}
