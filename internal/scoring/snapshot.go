package scoring

import (
	"encoding/json"

	"github.com/google/uuid"

	types "github.com/yungbote/maturitypath-backend/internal/domain"
)

// RecommendationSnapshot is a matched rule materialized at computation time.
// It carries the originating topic for traceability and is what gets
// serialized into the computed_priority recommendations column; later edits to
// the rule catalog never rewrite an already-computed result.
type RecommendationSnapshot struct {
	RuleID      uuid.UUID `json:"rule_id"`
	TopicID     uuid.UUID `json:"topic_id"`
	TopicKey    string    `json:"topic_key"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Why         string    `json:"why,omitempty"`
	What        string    `json:"what,omitempty"`
	How         string    `json:"how,omitempty"`
	ActionItems []string  `json:"action_items"`
	Category    string    `json:"category"`
	Priority    int       `json:"priority"`
	Tags        []string  `json:"tags,omitempty"`
}

// Snapshot materializes a rule for a topic. Malformed action-item or tag blobs
// degrade to empty lists rather than failing the computation.
func Snapshot(rule *types.RecommendationRule, topicKey string) RecommendationSnapshot {
	return RecommendationSnapshot{
		RuleID:      rule.ID,
		TopicID:     rule.TopicID,
		TopicKey:    topicKey,
		Title:       rule.Title,
		Description: rule.Description,
		Why:         rule.Why,
		What:        rule.What,
		How:         rule.How,
		ActionItems: decodeStrings(rule.ActionItems),
		Category:    rule.Category,
		Priority:    rule.Priority,
		Tags:        decodeStrings(rule.Tags),
	}
}

func decodeStrings(raw []byte) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}
	_ = json.Unmarshal(raw, &out)
	return out
}
