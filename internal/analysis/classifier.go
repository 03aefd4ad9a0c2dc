package analysis

import (
	"strings"

	"github.com/blaisecz/study-tracker/internal/domain"
)

// Classifier detects topic presence in free text.
type Classifier struct {
	topics []TopicRule
}

func NewClassifier(topics []TopicRule) *Classifier {
	rules := make([]TopicRule, len(topics))
	for i, t := range topics {
		rules[i] = TopicRule{Topic: t.Topic, Keywords: lowerAll(t.Keywords)}
	}
	return &Classifier{topics: rules}
}

// Topics returns the configured topics in order.
func (c *Classifier) Topics() []domain.Topic {
	out := make([]domain.Topic, len(c.topics))
	for i, t := range c.topics {
		out[i] = t.Topic
	}
	return out
}

// Classify returns a 0/1 indicator for every configured topic.
func (c *Classifier) Classify(text string) domain.TopicClassification {
	lowered := strings.ToLower(text)
	out := make(domain.TopicClassification, len(c.topics))
	for _, t := range c.topics {
		if containsAny(lowered, t.Keywords) {
			out[t.Topic] = 1
		} else {
			out[t.Topic] = 0
		}
	}
	return out
}
