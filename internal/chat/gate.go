package chat

import (
	"fmt"
	"strings"
	"unicode"
)

// Questions must touch the survey's subject matter before any network call is
// made. The allow-list covers the canonical dimensions plus the phrasings
// people actually use for them. Single terms match whole words only, so "ai"
// does not fire on "maintain"; phrases match as substrings.
var topicKeywords = []string{
	"age", "gender", "education", "employment", "occupation", "job",
	"ai", "artificial intelligence", "ai usage", "usage", "rating",
	"trust", "adoption", "benefit", "harm", "ethics", "ethical",
	"conscious", "profession", "professions", "freedom", "freedoms",
	"knowledge", "device", "devices", "chatgpt", "machine learning",
	"survey", "respondent", "respondents",
}

// OffTopicError rejects a question locally, without contacting the service.
type OffTopicError struct {
	Question string
}

func (e *OffTopicError) Error() string {
	return fmt.Sprintf("question is outside the survey's scope: %q (ask about age, gender, education, employment, AI usage, trust, or adoption)", e.Question)
}

// CheckTopic returns an OffTopicError unless the question mentions at least
// one allow-listed term. Matching is case-insensitive.
func CheckTopic(question string) error {
	q := strings.ToLower(question)
	words := map[string]bool{}
	for _, w := range strings.FieldsFunc(q, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	}) {
		words[w] = true
	}
	for _, kw := range topicKeywords {
		if strings.ContainsRune(kw, ' ') {
			if strings.Contains(q, kw) {
				return nil
			}
			continue
		}
		if words[kw] {
			return nil
		}
	}
	return &OffTopicError{Question: question}
}
