package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ziswafid/ziswaf-manager/internal/pkg/apperrors"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/constants"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/models"
	"github.com/ziswafid/ziswaf-manager/internal/pkg/navigation"
)

// Manager exposes the typed session lifecycle over a Store: Save on
// login, Load on read, Clear on logout, plus navigation history updates.
type Manager struct {
	store Store
}

// NewManager creates a session manager over the given store.
func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

// Save persists the token and identity snapshot for a fresh login. The
// navigation history restarts at the root screen.
func (m *Manager) Save(ctx context.Context, userID, token string, user *models.User) error {
	if err := m.store.Set(ctx, userID, constants.FieldAccessToken, token); err != nil {
		return err
	}
	if err := m.SaveUser(ctx, userID, user); err != nil {
		return err
	}
	return m.SaveScreens(ctx, userID, nil)
}

// SaveUser overwrites only the cached identity snapshot.
func (m *Manager) SaveUser(ctx context.Context, userID string, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	return m.store.Set(ctx, userID, constants.FieldUser, string(data))
}

// Load reads the full session state. A session without a token is
// reported as not found.
func (m *Manager) Load(ctx context.Context, userID string) (*models.Session, error) {
	token, err := m.store.Get(ctx, userID, constants.FieldAccessToken)
	if err != nil {
		return nil, err
	}

	sess := &models.Session{AccessToken: token}

	if raw, err := m.store.Get(ctx, userID, constants.FieldUser); err == nil {
		var user models.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, fmt.Errorf("failed to decode cached user: %w", err)
		}
		sess.User = &user
	} else if !apperrors.Is(err, apperrors.KindNotFound) {
		return nil, err
	}

	screens, err := m.Screens(ctx, userID)
	if err != nil {
		return nil, err
	}
	sess.Screens = screens

	return sess, nil
}

// Screens reads the navigation history, which is empty for a session
// that has not navigated yet.
func (m *Manager) Screens(ctx context.Context, userID string) ([]string, error) {
	raw, err := m.store.Get(ctx, userID, constants.FieldScreens)
	if apperrors.Is(err, apperrors.KindNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var screens []string
	if err := json.Unmarshal([]byte(raw), &screens); err != nil {
		return nil, fmt.Errorf("failed to decode screen history: %w", err)
	}
	return screens, nil
}

// SaveScreens overwrites the navigation history.
func (m *Manager) SaveScreens(ctx context.Context, userID string, screens []string) error {
	if screens == nil {
		screens = []string{}
	}
	data, err := json.Marshal(screens)
	if err != nil {
		return fmt.Errorf("failed to marshal screen history: %w", err)
	}
	return m.store.Set(ctx, userID, constants.FieldScreens, string(data))
}

// PushScreen appends a screen to the history and returns the new stack.
func (m *Manager) PushScreen(ctx context.Context, userID, screen string) ([]string, error) {
	screens, err := m.Screens(ctx, userID)
	if err != nil {
		return nil, err
	}

	stack := navigation.NewStack(screens...)
	stack.Push(screen)

	if err := m.SaveScreens(ctx, userID, stack.Screens()); err != nil {
		return nil, err
	}
	return stack.Screens(), nil
}

// PopScreen removes the current screen (if the history allows it) and
// returns the new stack.
func (m *Manager) PopScreen(ctx context.Context, userID string) ([]string, error) {
	screens, err := m.Screens(ctx, userID)
	if err != nil {
		return nil, err
	}

	stack := navigation.NewStack(screens...)
	stack.Back()

	if err := m.SaveScreens(ctx, userID, stack.Screens()); err != nil {
		return nil, err
	}
	return stack.Screens(), nil
}

// Clear drops every session entry for the user.
func (m *Manager) Clear(ctx context.Context, userID string) error {
	return m.store.Clear(ctx, userID)
}
