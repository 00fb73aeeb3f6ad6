package services

import (
	"time"

	"go.uber.org/zap"

	"travelai/internal/models/domain_models"
	"travelai/internal/models/request_models"
	mem "travelai/pkg/memcache"
	"travelai/pkg/utils"
)

type SessionServiceInterface interface {
	CreateSession() (*domain_models.Session, string, error)
	GetSession(id string) (*domain_models.Session, error)
	ResetSession(old *domain_models.Session) (*domain_models.Session, string, error)
	UpdateProfile(session *domain_models.Session, req request_models.ProfileUpdateRequest) (*domain_models.Profile, error)
	ResetTripFields(session *domain_models.Session) *domain_models.Profile
	ShufflePrompts(session *domain_models.Session) int
	Export(session *domain_models.Session) (string, []byte, error)
}

type SessionService struct {
	store  mem.SessionStore
	issuer *utils.TokenIssuer
	strict bool
	logger *zap.SugaredLogger
}

func NewSessionService(store mem.SessionStore, issuer *utils.TokenIssuer, strictValidation bool, logger *zap.SugaredLogger) SessionServiceInterface {
	return &SessionService{
		store:  store,
		issuer: issuer,
		strict: strictValidation,
		logger: logger,
	}
}

func (s *SessionService) CreateSession() (*domain_models.Session, string, error) {
	session := domain_models.NewSession()
	token, err := s.issuer.Create(session.ID)
	if err != nil {
		return nil, "", err
	}
	s.store.Put(session)
	s.logger.Infow("session created", "session", session.ShortID(), "active", s.store.Count())
	return session, token, nil
}

func (s *SessionService) GetSession(id string) (*domain_models.Session, error) {
	session, ok := s.store.Get(id)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

// ResetSession is the "New session" action: the old session is discarded
// and a fresh identifier, empty log and default profile take its place.
func (s *SessionService) ResetSession(old *domain_models.Session) (*domain_models.Session, string, error) {
	s.store.Delete(old.ID)
	return s.CreateSession()
}

// UpdateProfile applies a partial edit field by field. By default an
// out-of-domain value keeps the prior one and the update continues; in
// strict mode the first rejection aborts with ErrValidationRejected.
func (s *SessionService) UpdateProfile(session *domain_models.Session, req request_models.ProfileUpdateRequest) (*domain_models.Profile, error) {
	var result *domain_models.Profile
	var firstErr error

	session.Do(func() {
		p := session.Profile

		scalars := []struct {
			field string
			value *string
		}{
			{"mode", req.Mode},
			{"days", req.Days},
			{"budget", req.Budget},
			{"style", req.Style},
			{"pace", req.Pace},
			{"companions", req.Companions},
			{"season", req.Season},
			{"language", req.Language},
			{"detail", req.Detail},
		}
		for _, f := range scalars {
			if f.value == nil {
				continue
			}
			if err := p.Update(f.field, *f.value); err != nil {
				s.logger.Debugw("profile value ignored", "session", session.ShortID(), "field", f.field, "value", *f.value)
				if firstErr == nil {
					firstErr = err
				}
			}
		}

		lists := []struct {
			field  string
			values *[]string
		}{
			{"cities", req.Cities},
			{"interests", req.Interests},
			{"constraints", req.Constraints},
			{"extras", req.Extras},
		}
		for _, f := range lists {
			if f.values == nil {
				continue
			}
			if err := p.UpdateList(f.field, *f.values); err != nil && firstErr == nil {
				firstErr = err
			}
		}

		p.Normalize()
		result = p.Clone()
	})

	if s.strict && firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

func (s *SessionService) ResetTripFields(session *domain_models.Session) *domain_models.Profile {
	var result *domain_models.Profile
	session.Do(func() {
		session.Profile.ResetTripFields()
		result = session.Profile.Clone()
	})
	return result
}

func (s *SessionService) ShufflePrompts(session *domain_models.Session) int {
	var seed int
	session.Do(func() {
		session.Shuffle()
		seed = session.QuickSeed
	})
	return seed
}

// Export renders the download artifact; the filename embeds the first 8
// characters of the session identifier.
func (s *SessionService) Export(session *domain_models.Session) (string, []byte, error) {
	var blob []byte
	var err error
	session.Do(func() {
		blob, err = session.Log.Export(time.Now())
	})
	if err != nil {
		return "", nil, err
	}
	return "travel_ai_chat_" + session.ShortID() + ".json", blob, nil
}
