package aggregator

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vestniklab/Vestnik/app/models"
	"github.com/vestniklab/Vestnik/app/repository"
)

type fakeNews struct {
	items []models.News
	err   error
}

func (f *fakeNews) List(filter repository.NewsFilter) ([]models.News, error) {
	return f.items, f.err
}

// fakeProfiles sleeps a random few milliseconds per lookup so slow rows
// finish after fast ones and any ordering bug surfaces.
type fakeProfiles struct {
	profiles map[uint]*models.Profile
	jitter   bool
}

func (f *fakeProfiles) GetByID(id uint) (*models.Profile, error) {
	if f.jitter {
		time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)
	}
	p, ok := f.profiles[id]
	if !ok {
		return nil, errors.New("profile not found")
	}
	return p, nil
}

type fakeCategories struct {
	byNews map[uint][]models.Category
	err    error
}

func (f *fakeCategories) GetForNews(newsID uint) ([]models.Category, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byNews[newsID], nil
}

type fakeComments struct {
	byNews map[uint][]models.Comment
	counts map[uint]int64
}

func (f *fakeComments) GetByNews(newsID uint) ([]models.Comment, error) {
	return f.byNews[newsID], nil
}

func (f *fakeComments) CountByNews(newsID uint) (int64, error) {
	return f.counts[newsID], nil
}

type fakeReactions struct {
	likes    map[uint]int64
	dislikes map[uint]int64
}

func (f *fakeReactions) CountsByNews(newsID uint) (int64, int64, error) {
	return f.likes[newsID], f.dislikes[newsID], nil
}

func testSources(news *fakeNews) Sources {
	return Sources{
		News: news,
		Profiles: &fakeProfiles{jitter: true, profiles: map[uint]*models.Profile{
			10: {ID: 10, Username: "ivan"},
			20: {ID: 20, Username: "olga"},
		}},
		Categories: &fakeCategories{byNews: map[uint][]models.Category{
			1: {{ID: 100, Name: "Политика"}},
		}},
		Comments: &fakeComments{counts: map[uint]int64{1: 3, 2: 1}},
		Reactions: &fakeReactions{
			likes:    map[uint]int64{1: 5},
			dislikes: map[uint]int64{2: 2},
		},
	}
}

func TestCollectPreservesBaseOrder(t *testing.T) {
	// The base query answers in the order 1, 3, 2; the aggregate must come
	// back in exactly that order however long each row takes to resolve.
	news := &fakeNews{items: []models.News{
		{ID: 1, Title: "first", AuthorID: 10},
		{ID: 3, Title: "third", AuthorID: 20},
		{ID: 2, Title: "second", AuthorID: 10},
	}}
	agg := New(testSources(news))

	for run := 0; run < 20; run++ {
		out, err := agg.Collect(repository.NewsFilter{})
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, uint(1), out[0].ID)
		assert.Equal(t, uint(3), out[1].ID)
		assert.Equal(t, uint(2), out[2].ID)
	}
}

func TestCollectResolvesDetails(t *testing.T) {
	news := &fakeNews{items: []models.News{{ID: 1, Title: "first", AuthorID: 10}}}
	agg := New(testSources(news))

	out, err := agg.Collect(repository.NewsFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, "ivan", out[0].AuthorName)
	require.Len(t, out[0].Categories, 1)
	assert.Equal(t, "Политика", out[0].Categories[0].Name)
	assert.Equal(t, int64(3), out[0].CommentCount)
	assert.Equal(t, int64(5), out[0].Likes)
	assert.Equal(t, int64(0), out[0].Dislikes)
}

func TestCollectUnknownAuthorFallback(t *testing.T) {
	news := &fakeNews{items: []models.News{{ID: 2, Title: "orphan", AuthorID: 99}}}
	agg := New(testSources(news))

	out, err := agg.Collect(repository.NewsFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1)

	assert.Equal(t, UnknownAuthor, out[0].AuthorName)
	assert.NotNil(t, out[0].Categories)
	assert.Empty(t, out[0].Categories)
}

func TestCollectCategoryFailureDegradesToEmpty(t *testing.T) {
	news := &fakeNews{items: []models.News{{ID: 1, Title: "first", AuthorID: 10}}}
	src := testSources(news)
	src.Categories = &fakeCategories{err: errors.New("link table down")}
	agg := New(src)

	out, err := agg.Collect(repository.NewsFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Empty(t, out[0].Categories)
	assert.Equal(t, "ivan", out[0].AuthorName)
}

func TestCollectBaseErrorIsFatal(t *testing.T) {
	news := &fakeNews{err: errors.New("db down")}
	agg := New(testSources(news))

	out, err := agg.Collect(repository.NewsFilter{})
	require.Error(t, err)
	assert.Nil(t, out)
}

func TestCommentsResolveAuthors(t *testing.T) {
	news := &fakeNews{}
	src := testSources(news)
	src.Comments = &fakeComments{byNews: map[uint][]models.Comment{
		1: {
			{ID: 51, NewsID: 1, AuthorID: 20, Content: "newest"},
			{ID: 50, NewsID: 1, AuthorID: 99, Content: "oldest"},
		},
	}}
	agg := New(src)

	out, err := agg.Comments(1)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "newest", out[0].Content)
	assert.Equal(t, "olga", out[0].AuthorName)
	assert.Equal(t, UnknownAuthor, out[1].AuthorName)
}

func TestDetailResolvesSingleRow(t *testing.T) {
	agg := New(testSources(&fakeNews{}))

	detail := agg.Detail(models.News{ID: 1, Title: "first", AuthorID: 10})
	assert.Equal(t, "ivan", detail.AuthorName)
	assert.Equal(t, int64(5), detail.Likes)
}
