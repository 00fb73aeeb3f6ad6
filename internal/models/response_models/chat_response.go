package response_models

import (
	"travelai/internal/models/domain_models"
)

type SessionResponse struct {
	SessionID string                 `json:"session_id"`
	ShortID   string                 `json:"short_id"`
	Token     string                 `json:"token"`
	Profile   *domain_models.Profile `json:"profile"`
}

// TurnResponse is the outcome of one synchronous pass through the
// conversation controller. Dispatched is false when the submission was
// empty and nothing happened.
type TurnResponse struct {
	Dispatched    bool                    `json:"dispatched"`
	State         domain_models.TurnState `json:"state"`
	LastUserQuery string                  `json:"last_user_query,omitempty"`
	Messages      []domain_models.Message `json:"messages"`
}

type HistoryResponse struct {
	SessionID     string                  `json:"session_id"`
	ShortID       string                  `json:"short_id"`
	State         domain_models.TurnState `json:"state"`
	LastUserQuery string                  `json:"last_user_query,omitempty"`
	Profile       *domain_models.Profile  `json:"profile"`
	Messages      []domain_models.Message `json:"messages"`
}

type QuickAction struct {
	Label  string `json:"label"`
	Prompt string `json:"prompt"`
}

// PromptIdeas feeds the quick-action buttons and the rotating suggested
// prompts in the chat side rail.
type PromptIdeas struct {
	Mode         string        `json:"mode"`
	QuickActions []QuickAction `json:"quick_actions"`
	Suggestions  []string      `json:"suggestions"`
	Seed         int           `json:"seed"`
}
