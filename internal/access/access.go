package access

import (
	"time"

	"github.com/google/uuid"
	"github.com/sinaliza/sinaliza-api/internal/subtopic"
	"github.com/sinaliza/sinaliza-api/internal/topic"
)

type Tier string

const (
	TierGuest      Tier = "GUEST"
	TierFree       Tier = "FREE"
	TierSubscriber Tier = "SUBSCRIBER"
)

const (
	LockReasonSignIn  = "sign in to unlock"
	LockReasonUpgrade = "upgrade to unlock"
)

// Window é o período de acesso derivado da transação de pagamento mais
// recente do usuário.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w Window) Contains(now time.Time) bool {
	return !now.Before(w.Start) && !now.After(w.End)
}

// ResolveTier decide o nível de acesso: visitante sem identidade, usuário
// autenticado sem assinatura ativa, ou assinante. Apenas a transação mais
// recente é consultada.
func ResolveTier(authenticated bool, window *Window, now time.Time) Tier {
	if !authenticated {
		return TierGuest
	}
	if window != nil && window.Contains(now) {
		return TierSubscriber
	}
	return TierFree
}

// MaxTopics traduz o nível em quantos tópicos do catálogo ficam liberados:
// visitante vê 1, usuário gratuito vê 2, assinante vê todos.
func (t Tier) MaxTopics(total int) int {
	switch t {
	case TierGuest:
		return 1
	case TierFree:
		return 2
	default:
		return total
	}
}

func (t Tier) LockReason() string {
	switch t {
	case TierGuest:
		return LockReasonSignIn
	case TierFree:
		return LockReasonUpgrade
	default:
		return ""
	}
}

type PathEntry struct {
	Topic      topic.Topic         `json:"topic"`
	SubTopics  []subtopic.SubTopic `json:"subtopics"`
	Accessible bool                `json:"accessible"`
	LockReason string              `json:"lock_reason,omitempty"`
}

type Plan struct {
	Tier    Tier        `json:"tier"`
	Entries []PathEntry `json:"entries"`
}

// BuildPath marca cada tópico, na ordem do catálogo, como acessível ou
// bloqueado. As lições herdam a marcação do tópico pai.
func BuildPath(tier Tier, topics []topic.Topic, subsByTopic map[uuid.UUID][]subtopic.SubTopic) Plan {
	maxTopics := tier.MaxTopics(len(topics))

	entries := make([]PathEntry, 0, len(topics))
	for i, t := range topics {
		entry := PathEntry{
			Topic:      t,
			SubTopics:  subsByTopic[t.ID],
			Accessible: i < maxTopics,
		}
		if !entry.Accessible {
			entry.LockReason = tier.LockReason()
		}
		entries = append(entries, entry)
	}

	return Plan{Tier: tier, Entries: entries}
}
