package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/aromatta/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Message roles
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Greeting opens every new conversation
const Greeting = "Hola 👋 ¿En qué puedo ayudarte?"

// FallbackReply is shown when the assistant cannot be reached
const FallbackReply = "Hubo un error al conectar con la IA."

// Completer produces a reply for a single user message
type Completer interface {
	Complete(ctx context.Context, message string) (string, error)
}

// Message is one entry in the conversation transcript
type Message struct {
	From string    `json:"from"`
	Text string    `json:"text"`
	At   time.Time `json:"at"`
}

// Service runs the storefront assistant. Completion failures never
// surface as errors; the bot answers with a fallback line instead.
type Service struct {
	completer Completer
	logger    *zap.Logger
	timeout   time.Duration

	mu       sync.Mutex
	messages []Message
}

// NewService starts a conversation with the bot's greeting
func NewService(completer Completer, timeout time.Duration, logger *zap.Logger) *Service {
	return &Service{
		completer: completer,
		logger:    logger,
		timeout:   timeout,
		messages:  []Message{{From: RoleBot, Text: Greeting, At: time.Now()}},
	}
}

// Send records the user message, asks the assistant for a reply and
// records that too. The reply is returned to the caller.
func (s *Service) Send(ctx context.Context, text string) (*Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Message text is required")
	}

	s.mu.Lock()
	s.messages = append(s.messages, Message{From: RoleUser, Text: text, At: time.Now()})
	s.mu.Unlock()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	replyText, err := s.completer.Complete(ctx, text)
	if err != nil {
		s.logger.Warn("Assistant completion failed", zap.Error(err))
		replyText = FallbackReply
	}

	reply := Message{From: RoleBot, Text: replyText, At: time.Now()}
	s.mu.Lock()
	s.messages = append(s.messages, reply)
	s.mu.Unlock()
	return &reply, nil
}

// Transcript returns the conversation so far
func (s *Service) Transcript(ctx context.Context) []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Reset starts the conversation over
func (s *Service) Reset(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = []Message{{From: RoleBot, Text: Greeting, At: time.Now()}}
}
