package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/thrive/wellness-api/internal/api/metrics"
	"github.com/thrive/wellness-api/internal/core/domain"
	"github.com/thrive/wellness-api/internal/core/ports"
	"github.com/thrive/wellness-api/pkg/logger"
)

// DefaultSessionKey is the well-known key the session snapshot lives under.
const DefaultSessionKey = "thrive_user"

// Session is the process-wide session store. It is built once at the
// application root and handed to whoever needs identity.
type Session struct {
	mu      sync.RWMutex
	current *domain.User

	snapshots ports.SnapshotStore
	key       string
	newID     func() string
	log       zerolog.Logger
}

var _ ports.SessionStore = (*Session)(nil)

// NewSession restores the identity persisted under key, if any. A snapshot
// that no longer decodes is discarded and the store starts empty.
func NewSession(ctx context.Context, snapshots ports.SnapshotStore, key string, log zerolog.Logger) (*Session, error) {
	if key == "" {
		key = DefaultSessionKey
	}
	s := &Session{
		snapshots: snapshots,
		key:       key,
		newID:     func() string { return newID("user") },
		log:       logger.Component(log, "session"),
	}

	data, ok, err := snapshots.Load(ctx, key)
	if err != nil {
		metrics.SessionOpsTotal.WithLabelValues("restore", "error").Inc()
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		metrics.SessionOpsTotal.WithLabelValues("restore", "noop").Inc()
		return s, nil
	}

	var u domain.User
	if err := json.Unmarshal(data, &u); err != nil || u.ID == "" {
		s.log.Warn().Err(err).Str("key", key).Msg("discarding unreadable session snapshot")
		if delErr := snapshots.Delete(ctx, key); delErr != nil {
			s.log.Warn().Err(delErr).Str("key", key).Msg("failed to delete unreadable snapshot")
		}
		metrics.SessionOpsTotal.WithLabelValues("restore", "noop").Inc()
		return s, nil
	}

	s.current = &u
	metrics.SessionOpsTotal.WithLabelValues("restore", "ok").Inc()
	s.log.Info().Str("user_id", u.ID).Msg("session restored")
	return s, nil
}

func (s *Session) Current() (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, false
	}
	u := s.current.Clone()
	return &u, true
}

// Login fabricates an identity from the email. The password is not checked.
func (s *Session) Login(ctx context.Context, email, _ string) (*domain.User, error) {
	u := domain.User{
		ID:    s.newID(),
		Name:  localPart(email),
		Email: email,
		Role:  domain.RoleFromEmail(email),
	}
	if err := s.replace(ctx, "login", &u); err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("logged in")
	return &u, nil
}

// Signup fabricates an identity from the supplied name and role.
func (s *Session) Signup(ctx context.Context, email, _ string, name string, role domain.Role) (*domain.User, error) {
	u := domain.User{
		ID:    s.newID(),
		Name:  name,
		Email: email,
		Role:  role,
	}
	if err := s.replace(ctx, "signup", &u); err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("signed up")
	return &u, nil
}

func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	if err := s.snapshots.Delete(ctx, s.key); err != nil {
		metrics.SessionOpsTotal.WithLabelValues("logout", "error").Inc()
		return fmt.Errorf("logout: %w", err)
	}
	metrics.SessionOpsTotal.WithLabelValues("logout", "ok").Inc()
	s.log.Info().Msg("logged out")
	return nil
}

func (s *Session) UpdateProfile(ctx context.Context, patch domain.ProfilePatch) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		metrics.SessionOpsTotal.WithLabelValues("update_profile", "noop").Inc()
		return nil, nil
	}

	updated := s.current.Apply(patch)
	s.current = &updated
	if err := s.persist(ctx, &updated); err != nil {
		metrics.SessionOpsTotal.WithLabelValues("update_profile", "error").Inc()
		return nil, fmt.Errorf("update profile: %w", err)
	}
	metrics.SessionOpsTotal.WithLabelValues("update_profile", "ok").Inc()

	out := updated.Clone()
	return &out, nil
}

// replace swaps in a new identity and persists it. The in-memory identity
// changes even when persisting fails, matching last-write-wins.
func (s *Session) replace(ctx context.Context, op string, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := u.Clone()
	s.current = &stored
	if err := s.persist(ctx, &stored); err != nil {
		metrics.SessionOpsTotal.WithLabelValues(op, "error").Inc()
		return fmt.Errorf("%s: %w", op, err)
	}
	metrics.SessionOpsTotal.WithLabelValues(op, "ok").Inc()
	return nil
}

// persist must be called with s.mu held.
func (s *Session) persist(ctx context.Context, u *domain.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return s.snapshots.Save(ctx, s.key, data)
}

func localPart(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}

// newID returns a fresh record id such as "journal-1b4e28ba-2fa1-...".
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
