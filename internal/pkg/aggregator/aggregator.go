// Package aggregator builds the denormalized view models the feed and
// detail pages render: a news row joined with its author, category set and
// engagement counts. Per-row lookups fan out concurrently and are collected
// by index, so the base query's creation-time descending order is preserved
// no matter which row resolves first.
package aggregator

import (
	"sync"

	"github.com/vestniklab/Vestnik/app/models"
	"github.com/vestniklab/Vestnik/app/repository"
)

// UnknownAuthor substitutes for an author whose profile cannot be resolved.
const UnknownAuthor = "Unknown"

// NewsLister is the base query. A failure here is fatal for the whole call.
type NewsLister interface {
	List(filter repository.NewsFilter) ([]models.News, error)
}

// ProfileResolver resolves one author profile by id.
type ProfileResolver interface {
	GetByID(id uint) (*models.Profile, error)
}

// CategoryResolver resolves the category set linked to one news item.
type CategoryResolver interface {
	GetForNews(newsID uint) ([]models.Category, error)
}

// CommentSource lists and counts the comments of one news item.
type CommentSource interface {
	GetByNews(newsID uint) ([]models.Comment, error)
	CountByNews(newsID uint) (int64, error)
}

// ReactionCounter counts likes and dislikes of one news item.
type ReactionCounter interface {
	CountsByNews(newsID uint) (likes int64, dislikes int64, err error)
}

// Sources are the collaborators the aggregator reads from. All of them are
// satisfied by the app's repositories.
type Sources struct {
	News       NewsLister
	Profiles   ProfileResolver
	Categories CategoryResolver
	Comments   CommentSource
	Reactions  ReactionCounter
}

// NewsWithDetails is the aggregate the UI renders. It is rebuilt on every
// request and never cached across requests.
type NewsWithDetails struct {
	models.News
	AuthorName   string            `json:"author_name"`
	AuthorAvatar string            `json:"author_avatar,omitempty"`
	Categories   []models.Category `json:"categories"`
	CommentCount int64             `json:"comment_count"`
	Likes        int64             `json:"likes"`
	Dislikes     int64             `json:"dislikes"`
}

// HasCategory reports whether the resolved category set contains id.
func (n *NewsWithDetails) HasCategory(id uint) bool {
	for i := range n.Categories {
		if n.Categories[i].ID == id {
			return true
		}
	}
	return false
}

// CommentWithAuthor is a comment with its author resolved for display.
type CommentWithAuthor struct {
	models.Comment
	AuthorName   string `json:"author_name"`
	AuthorAvatar string `json:"author_avatar,omitempty"`
}

// Aggregator stitches base rows together with their per-row details.
type Aggregator struct {
	src Sources
}

// New creates an aggregator over the given sources.
func New(src Sources) *Aggregator {
	return &Aggregator{src: src}
}

// Collect runs the base query and resolves every row concurrently. The
// result keeps the base query's order; row i of the output always belongs
// to row i of the base result. A base-query error aborts the call with no
// partial results. Per-row resolution errors never abort: an unresolved
// profile degrades to the "Unknown" placeholder, an unresolved category set
// to an empty set and a failed count to zero.
func (a *Aggregator) Collect(filter repository.NewsFilter) ([]NewsWithDetails, error) {
	newsList, err := a.src.News.List(filter)
	if err != nil {
		return nil, err
	}

	out := make([]NewsWithDetails, len(newsList))
	var wg sync.WaitGroup
	for i := range newsList {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = a.resolve(newsList[i])
		}(i)
	}
	wg.Wait()

	return out, nil
}

// Comments lists a news item's comments newest first, each with its author
// resolved. The base fetch is fatal; a missing profile degrades to the
// "Unknown" placeholder just like in Collect.
func (a *Aggregator) Comments(newsID uint) ([]CommentWithAuthor, error) {
	comments, err := a.src.Comments.GetByNews(newsID)
	if err != nil {
		return nil, err
	}

	out := make([]CommentWithAuthor, len(comments))
	var wg sync.WaitGroup
	for i := range comments {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = CommentWithAuthor{Comment: comments[i], AuthorName: UnknownAuthor}
			if profile, err := a.src.Profiles.GetByID(comments[i].AuthorID); err == nil && profile != nil {
				out[i].AuthorName = profile.Username
				out[i].AuthorAvatar = profile.AvatarURL
			}
		}(i)
	}
	wg.Wait()

	return out, nil
}

// Detail resolves a single already-fetched news row, with the same
// graceful fallbacks as Collect.
func (a *Aggregator) Detail(news models.News) NewsWithDetails {
	return a.resolve(news)
}

// resolve assembles the view model of a single row with graceful fallbacks.
func (a *Aggregator) resolve(news models.News) NewsWithDetails {
	detail := NewsWithDetails{
		News:       news,
		AuthorName: UnknownAuthor,
		Categories: []models.Category{},
	}

	if profile, err := a.src.Profiles.GetByID(news.AuthorID); err == nil && profile != nil {
		detail.AuthorName = profile.Username
		detail.AuthorAvatar = profile.AvatarURL
	}

	if categories, err := a.src.Categories.GetForNews(news.ID); err == nil && categories != nil {
		detail.Categories = categories
	}

	if count, err := a.src.Comments.CountByNews(news.ID); err == nil {
		detail.CommentCount = count
	}

	if likes, dislikes, err := a.src.Reactions.CountsByNews(news.ID); err == nil {
		detail.Likes = likes
		detail.Dislikes = dislikes
	}

	return detail
}
