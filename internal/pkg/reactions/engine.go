// Package reactions implements the toggle-or-switch state machine for
// likes and dislikes: one reaction per viewer and item, re-applying the
// same kind clears it, applying the other kind switches it in place.
package reactions

import (
	"errors"
	"fmt"

	"github.com/vestniklab/Vestnik/app/models"
)

// ErrAuthRequired is returned for anonymous viewers. No store call is made.
var ErrAuthRequired = errors.New("reactions: authentication required")

// State is the viewer's reaction state on one news item.
type State string

const (
	StateNone     State = "none"
	StateLiked    State = "liked"
	StateDisliked State = "disliked"
)

// Store is the persistence the engine mutates. GetByNewsAndUser returns
// (nil, nil) when the viewer has no reaction on the item.
type Store interface {
	GetByNewsAndUser(newsID, userID uint) (*models.Reaction, error)
	Create(reaction *models.Reaction) error
	UpdateKind(id uint, kind string) error
	Delete(id uint) error
}

// Outcome reports the resulting state plus the count deltas the caller
// applies to its aggregate counts after the mutation has been confirmed.
type Outcome struct {
	State        State `json:"state"`
	LikeDelta    int   `json:"like_delta"`
	DislikeDelta int   `json:"dislike_delta"`
}

// Engine applies reaction transitions against a Store.
type Engine struct {
	store Store
}

// NewEngine creates a reaction engine over the given store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// React applies one transition for (newsID, userID):
//
//	none     --like-->    liked     (insert)
//	none     --dislike--> disliked  (insert)
//	liked    --like-->    none      (delete, toggle off)
//	liked    --dislike--> disliked  (update kind in place)
//	disliked --dislike--> none      (delete, toggle off)
//	disliked --like-->    liked     (update kind in place)
//
// The lookup-then-branch is not atomic against a concurrent reaction from
// the same viewer in another session; last write wins, and the unique
// (news_id, user_id) index bounds the damage to a single row. On any store
// error the previous state is untouched and the error is returned as is.
func (e *Engine) React(userID, newsID uint, kind string) (Outcome, error) {
	if userID == 0 {
		return Outcome{}, ErrAuthRequired
	}
	if !models.ValidReactionKind(kind) {
		return Outcome{}, fmt.Errorf("reactions: unknown kind %q", kind)
	}

	existing, err := e.store.GetByNewsAndUser(newsID, userID)
	if err != nil {
		return Outcome{}, err
	}

	if existing == nil {
		reaction := &models.Reaction{NewsID: newsID, UserID: userID, Kind: kind}
		if err := e.store.Create(reaction); err != nil {
			return Outcome{}, err
		}
		return outcomeFor(kind, 1), nil
	}

	if existing.Kind == kind {
		// Toggle off.
		if err := e.store.Delete(existing.ID); err != nil {
			return Outcome{}, err
		}
		return outcomeFor(kind, -1), nil
	}

	// Switch in place.
	if err := e.store.UpdateKind(existing.ID, kind); err != nil {
		return Outcome{}, err
	}
	out := outcomeFor(kind, 1)
	if kind == models.REACTION_LIKE {
		out.DislikeDelta = -1
	} else {
		out.LikeDelta = -1
	}
	return out, nil
}

// StateOf reports the viewer's current state without mutating anything.
// An anonymous viewer is always StateNone.
func (e *Engine) StateOf(userID, newsID uint) (State, error) {
	if userID == 0 {
		return StateNone, nil
	}
	existing, err := e.store.GetByNewsAndUser(newsID, userID)
	if err != nil {
		return StateNone, err
	}
	return stateFor(existing), nil
}

func outcomeFor(kind string, delta int) Outcome {
	out := Outcome{State: StateNone}
	if kind == models.REACTION_LIKE {
		out.LikeDelta = delta
		if delta > 0 {
			out.State = StateLiked
		}
	} else {
		out.DislikeDelta = delta
		if delta > 0 {
			out.State = StateDisliked
		}
	}
	return out
}

func stateFor(reaction *models.Reaction) State {
	if reaction == nil {
		return StateNone
	}
	if reaction.Kind == models.REACTION_LIKE {
		return StateLiked
	}
	return StateDisliked
}
