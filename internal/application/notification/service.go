package notification

import (
	"context"
	"sync"

	"github.com/aromatta/backend/internal/domain/notification"
	"github.com/aromatta/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Service keeps the user's in-app notifications. They live in memory
// only; a restart starts with an empty tray, matching how ephemeral
// alerts are expected to behave.
type Service struct {
	logger *zap.Logger

	mu            sync.RWMutex
	notifications []notification.Notification
}

// NewService creates an empty notification tray
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// AddRequest carries the fields of a new notification
type AddRequest struct {
	Type      string         `json:"type" binding:"required"`
	Title     string         `json:"title" binding:"required"`
	Message   string         `json:"message" binding:"required"`
	Priority  string         `json:"priority" binding:"required"`
	ActionURL string         `json:"actionUrl"`
	Metadata  map[string]any `json:"metadata"`
}

// Add creates a notification and prepends it to the tray
func (s *Service) Add(ctx context.Context, req AddRequest) (*notification.Notification, error) {
	n, err := notification.New(req.Type, req.Title, req.Message, req.Priority)
	if err != nil {
		return nil, err
	}
	n.ActionURL = req.ActionURL
	n.Metadata = req.Metadata

	s.mu.Lock()
	s.notifications = append([]notification.Notification{*n}, s.notifications...)
	s.mu.Unlock()

	s.logger.Debug("Notification added",
		zap.String("type", n.Type),
		zap.String("priority", n.Priority),
	)
	return n, nil
}

// List returns all notifications, newest first
func (s *Service) List(ctx context.Context) []notification.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]notification.Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

// MarkAsRead marks one notification as read
func (s *Service) MarkAsRead(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return nil
		}
	}
	return shared.ErrNotFound
}

// MarkAllAsRead marks every notification as read
func (s *Service) MarkAllAsRead(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].Read = true
	}
}

// Delete removes a notification from the tray
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
			return nil
		}
	}
	return shared.ErrNotFound
}

// UnreadCount counts notifications that have not been read
func (s *Service) UnreadCount(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for i := range s.notifications {
		if !s.notifications[i].Read {
			count++
		}
	}
	return count
}

// hasStockAlert reports whether a stock alert already exists for the
// given product, read or not.
func (s *Service) hasStockAlert(productID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.notifications {
		if s.notifications[i].Type != notification.TypeStock {
			continue
		}
		if id, ok := s.notifications[i].ProductID(); ok && id == productID {
			return true
		}
	}
	return false
}
