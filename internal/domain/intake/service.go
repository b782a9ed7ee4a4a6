package intake

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Prompt is the read-only view of a node handed to clients: the question text
// plus the input spec the UI needs to render it.
type Prompt struct {
	NodeID   string    `json:"node_id"`
	Prompt   string    `json:"prompt"`
	Input    InputKind `json:"input"`
	Options  []string  `json:"options,omitempty"`
	Bounds   *Bounds   `json:"bounds,omitempty"`
	Terminal bool      `json:"terminal"`
}

// SubmitResult is returned after an accepted answer.
type SubmitResult struct {
	NextNodeID string          `json:"next_node_id"`
	NextPrompt Prompt          `json:"next_prompt"`
	Record     *ResponseRecord `json:"record"`
}

// Service is the transition engine: it validates answers, commits them to the
// session record, and advances the conversation pointer.
type Service struct {
	sessions SessionRepository
	logger   zerolog.Logger
	// promptDelay reproduces the original UI's pacing pause between recording
	// an answer and presenting the next prompt. Zero disables it.
	promptDelay time.Duration
}

func NewService(sessions SessionRepository, logger zerolog.Logger) *Service {
	return &Service{
		sessions: sessions,
		logger:   logger.With().Str("component", "intake").Logger(),
	}
}

// SetPromptDelay configures the artificial pause before the next prompt.
func (s *Service) SetPromptDelay(d time.Duration) {
	s.promptDelay = d
}

// CreateSession starts a fresh conversation at the start node with an empty
// record.
func (s *Service) CreateSession(ctx context.Context) (*Session, error) {
	now := time.Now().UTC()
	sess := &Session{
		ID:            uuid.New(),
		CurrentNodeID: NodeStart,
		Record:        &ResponseRecord{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Service) GetSession(ctx context.Context, id uuid.UUID) (*Session, error) {
	return s.sessions.GetByID(ctx, id)
}

func (s *Service) ListSessions(ctx context.Context, limit, offset int) ([]*Session, int, error) {
	return s.sessions.List(ctx, limit, offset)
}

func (s *Service) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return s.sessions.Delete(ctx, id)
}

// NextPrompt is a read-only graph lookup for the given node.
func (s *Service) NextPrompt(nodeID string) (Prompt, error) {
	n := LookupNode(nodeID)
	if n == nil {
		return Prompt{}, ErrUnknownNode
	}
	return promptOf(n), nil
}

// CurrentPrompt returns the prompt for a session's current node.
func (s *Service) CurrentPrompt(ctx context.Context, sessionID uuid.UUID) (Prompt, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return Prompt{}, err
	}
	return s.NextPrompt(sess.CurrentNodeID)
}

// SubmitAnswer validates the answer against the session's current node,
// commits it to the record, resolves the next node, and advances the pointer.
// On any failure the session and record are left exactly as they were.
func (s *Service) SubmitAnswer(ctx context.Context, sessionID uuid.UUID, nodeID string, a Answer) (*SubmitResult, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Completed() {
		return nil, ErrSessionComplete
	}
	if nodeID != sess.CurrentNodeID {
		return nil, ErrNodeMismatch
	}

	node := LookupNode(sess.CurrentNodeID)
	if node == nil {
		// Internal invariant violation, not user error: halt advancement
		// rather than crash.
		s.logger.Error().
			Str("session_id", sessionID.String()).
			Str("node_id", sess.CurrentNodeID).
			Msg("session points at a node the graph does not contain")
		return nil, ErrUnknownNode
	}

	// Validation happens before any write; a failure leaves the record
	// untouched and the pointer in place.
	value, verr := validateAnswer(node, a)
	if verr != nil {
		return nil, verr
	}

	applyAnswer(sess.Record, node.ID, value)

	nextID := resolveNext(node, sess.Record, value)
	next := LookupNode(nextID)
	if next == nil {
		s.logger.Error().
			Str("session_id", sessionID.String()).
			Str("node_id", node.ID).
			Str("next_node_id", nextID).
			Msg("edge resolved to a node the graph does not contain")
		return nil, ErrUnknownNode
	}

	// Restarting from the summary discards everything answered so far.
	if node.ID == NodeSummary && nextID == NodeStart {
		sess.Record = &ResponseRecord{}
	}

	sess.CurrentNodeID = nextID
	sess.UpdatedAt = time.Now().UTC()
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, err
	}

	if s.promptDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.promptDelay):
		}
	}

	return &SubmitResult{
		NextNodeID: nextID,
		NextPrompt: promptOf(next),
		Record:     sess.Record,
	}, nil
}

// resolveNext applies the edge rules in order: computed route, per-option
// static edge, single static target.
func resolveNext(n *Node, r *ResponseRecord, v answerValue) string {
	switch {
	case n.Next.Route != nil:
		return n.Next.Route(r, v)
	case n.Next.ByOption != nil:
		return n.Next.ByOption[v.Text]
	default:
		return n.Next.To
	}
}

func promptOf(n *Node) Prompt {
	return Prompt{
		NodeID:   n.ID,
		Prompt:   n.Prompt,
		Input:    n.Input,
		Options:  n.Options,
		Bounds:   n.Bounds,
		Terminal: n.ID == NodeEnd,
	}
}
