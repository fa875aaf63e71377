package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

type RecommendationsRefreshedEvent struct {
	Type            string `json:"type"`
	CandidateUserID int64  `json:"candidate_user_id"`
	Timestamp       string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyRecommendationsRefreshed broadcasts after a successful cache
// refresh; a missing hub makes it a no-op so usecases never block on it.
func NotifyRecommendationsRefreshed(candidateUserID int64) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := RecommendationsRefreshedEvent{
		Type:            "recommendations_refreshed",
		CandidateUserID: candidateUserID,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
