package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"travelai/internal/models/domain_models"
	"travelai/internal/models/response_models"
	"travelai/pkg/utils"
)

type ChatServiceInterface interface {
	SubmitMessage(ctx context.Context, session *domain_models.Session, raw string) response_models.TurnResponse
	Regenerate(ctx context.Context, session *domain_models.Session) (response_models.TurnResponse, error)
	ClearChat(session *domain_models.Session)
	History(session *domain_models.Session) response_models.HistoryResponse
}

// ChatService is the conversation controller: it owns the turn lifecycle
// Idle -> PendingSubmit -> AwaitingBackend -> Idle. The whole pass runs
// under the session lock, so a session never has more than one backend
// call in flight.
type ChatService struct {
	promptService PromptServiceInterface
	backend       utils.BackendClientInterface
	logger        *zap.SugaredLogger
}

func NewChatService(
	promptService PromptServiceInterface,
	backend utils.BackendClientInterface,
	logger *zap.SugaredLogger,
) ChatServiceInterface {
	return &ChatService{
		promptService: promptService,
		backend:       backend,
		logger:        logger,
	}
}

// SubmitMessage queues a trimmed question and immediately runs the turn.
// An empty submission is dropped: nothing is appended, no backend call is
// made, and last_user_query keeps its previous value.
func (s *ChatService) SubmitMessage(ctx context.Context, session *domain_models.Session, raw string) response_models.TurnResponse {
	var turn response_models.TurnResponse
	session.Do(func() {
		q := strings.TrimSpace(raw)
		if q == "" {
			turn = s.snapshotLocked(session, false)
			return
		}
		session.LastUserQuery = q
		session.QueuePending(q)
		turn = s.runTurnLocked(ctx, session)
	})
	return turn
}

// Regenerate drops the trailing assistant reply together with the user
// message it answered, then replays the last user query through the
// normal dispatch path. The replayed turn re-appends the pair, so the
// log ends with one user/ai pair carrying the fresh answer.
func (s *ChatService) Regenerate(ctx context.Context, session *domain_models.Session) (response_models.TurnResponse, error) {
	var turn response_models.TurnResponse
	var err error
	session.Do(func() {
		if session.LastUserQuery == "" {
			err = utils.ErrNothingToRegen
			return
		}
		session.Log.DropLastIf(domain_models.RoleAI)
		session.Log.DropLastIf(domain_models.RoleUser)
		session.QueuePending(session.LastUserQuery)
		turn = s.runTurnLocked(ctx, session)
	})
	if err != nil {
		return response_models.TurnResponse{}, err
	}
	return turn, nil
}

func (s *ChatService) ClearChat(session *domain_models.Session) {
	session.Do(func() {
		session.Log.Clear()
		session.LastUserQuery = ""
		session.ConsumePending()
		session.State = domain_models.TurnIdle
	})
}

func (s *ChatService) History(session *domain_models.Session) response_models.HistoryResponse {
	var h response_models.HistoryResponse
	session.Do(func() {
		h = response_models.HistoryResponse{
			SessionID:     session.ID,
			ShortID:       session.ShortID(),
			State:         session.State,
			LastUserQuery: session.LastUserQuery,
			Profile:       session.Profile.Clone(),
			Messages:      session.Log.All(),
		}
	})
	return h
}

// runTurnLocked consumes the pending question and executes one full turn.
// Backend failures are captured as displayed assistant messages; they
// never propagate as errors and never leave the log half-written.
func (s *ChatService) runTurnLocked(ctx context.Context, session *domain_models.Session) response_models.TurnResponse {
	q, ok := session.ConsumePending()
	if !ok {
		return s.snapshotLocked(session, false)
	}

	session.Log.Append(domain_models.RoleUser, q)
	session.State = domain_models.TurnAwaitingBackend

	prompt := s.promptService.Compose(session.Profile, q)
	answer, err := s.backend.Chat(ctx, prompt)
	if err != nil {
		s.logger.Warnw("backend call failed", "session", session.ShortID(), "error", err)
		answer = utils.FailureMessage(err)
	}

	session.Log.Append(domain_models.RoleAI, answer)
	session.State = domain_models.TurnIdle

	return s.snapshotLocked(session, true)
}

func (s *ChatService) snapshotLocked(session *domain_models.Session, dispatched bool) response_models.TurnResponse {
	return response_models.TurnResponse{
		Dispatched:    dispatched,
		State:         session.State,
		LastUserQuery: session.LastUserQuery,
		Messages:      session.Log.All(),
	}
}
