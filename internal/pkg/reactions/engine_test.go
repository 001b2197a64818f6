package reactions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vestniklab/Vestnik/app/models"
)

// fakeStore keeps at most one reaction per (news, user) pair in memory and
// counts every call so tests can assert exactly what the engine touched.
type fakeStore struct {
	reactions map[[2]uint]*models.Reaction
	nextID    uint

	getCalls    int
	createCalls int
	updateCalls int
	deleteCalls int

	failNext error
}

func newFakeStore() *fakeStore {
	return &fakeStore{reactions: make(map[[2]uint]*models.Reaction), nextID: 1}
}

func (s *fakeStore) totalCalls() int {
	return s.getCalls + s.createCalls + s.updateCalls + s.deleteCalls
}

func (s *fakeStore) GetByNewsAndUser(newsID, userID uint) (*models.Reaction, error) {
	s.getCalls++
	if s.failNext != nil {
		return nil, s.failNext
	}
	r, ok := s.reactions[[2]uint{newsID, userID}]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (s *fakeStore) Create(reaction *models.Reaction) error {
	s.createCalls++
	if s.failNext != nil {
		return s.failNext
	}
	reaction.ID = s.nextID
	s.nextID++
	cp := *reaction
	s.reactions[[2]uint{reaction.NewsID, reaction.UserID}] = &cp
	return nil
}

func (s *fakeStore) UpdateKind(id uint, kind string) error {
	s.updateCalls++
	if s.failNext != nil {
		return s.failNext
	}
	for _, r := range s.reactions {
		if r.ID == id {
			r.Kind = kind
			return nil
		}
	}
	return errors.New("not found")
}

func (s *fakeStore) Delete(id uint) error {
	s.deleteCalls++
	if s.failNext != nil {
		return s.failNext
	}
	for key, r := range s.reactions {
		if r.ID == id {
			delete(s.reactions, key)
			return nil
		}
	}
	return errors.New("not found")
}

func TestReactToggleRoundTrip(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	out, err := engine.React(7, 1, models.REACTION_LIKE)
	require.NoError(t, err)
	assert.Equal(t, StateLiked, out.State)
	assert.Equal(t, 1, out.LikeDelta)
	assert.Equal(t, 0, out.DislikeDelta)

	out, err = engine.React(7, 1, models.REACTION_LIKE)
	require.NoError(t, err)
	assert.Equal(t, StateNone, out.State)
	assert.Equal(t, -1, out.LikeDelta)
	assert.Equal(t, 0, out.DislikeDelta)

	// The round trip nets out to zero rows and zero count change.
	assert.Empty(t, store.reactions)
	assert.Equal(t, 1, store.createCalls)
	assert.Equal(t, 1, store.deleteCalls)
	assert.Equal(t, 0, store.updateCalls)
}

func TestReactSwitchUpdatesInPlace(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	_, err := engine.React(7, 1, models.REACTION_LIKE)
	require.NoError(t, err)

	out, err := engine.React(7, 1, models.REACTION_DISLIKE)
	require.NoError(t, err)
	assert.Equal(t, StateDisliked, out.State)
	assert.Equal(t, -1, out.LikeDelta)
	assert.Equal(t, 1, out.DislikeDelta)

	// The switch rewrites the existing row, it never deletes and reinserts.
	assert.Equal(t, 1, store.updateCalls)
	assert.Equal(t, 0, store.deleteCalls)
	assert.Equal(t, 1, store.createCalls)

	require.Len(t, store.reactions, 1)
	for _, r := range store.reactions {
		assert.Equal(t, models.REACTION_DISLIKE, r.Kind)
	}
}

func TestReactAnonymousTouchesNothing(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	_, err := engine.React(0, 1, models.REACTION_LIKE)
	require.ErrorIs(t, err, ErrAuthRequired)
	assert.Equal(t, 0, store.totalCalls())
}

func TestReactUnknownKind(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	_, err := engine.React(7, 1, "love")
	require.Error(t, err)
	assert.Equal(t, 0, store.totalCalls())
}

func TestReactStoreFailureLeavesState(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	_, err := engine.React(7, 1, models.REACTION_LIKE)
	require.NoError(t, err)

	boom := errors.New("boom")
	store.failNext = boom
	_, err = engine.React(7, 1, models.REACTION_DISLIKE)
	require.ErrorIs(t, err, boom)

	store.failNext = nil
	state, err := engine.StateOf(7, 1)
	require.NoError(t, err)
	assert.Equal(t, StateLiked, state)
}

func TestStateOf(t *testing.T) {
	store := newFakeStore()
	engine := NewEngine(store)

	state, err := engine.StateOf(0, 1)
	require.NoError(t, err)
	assert.Equal(t, StateNone, state)
	assert.Equal(t, 0, store.totalCalls())

	_, err = engine.React(7, 1, models.REACTION_DISLIKE)
	require.NoError(t, err)

	state, err = engine.StateOf(7, 1)
	require.NoError(t, err)
	assert.Equal(t, StateDisliked, state)
}
