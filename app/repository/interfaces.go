package repository

import (
	"github.com/vestniklab/Vestnik/app/models"
	"gorm.io/gorm"
)

// NewsFilter narrows a news listing. Zero values mean "no constraint".
// TitleQuery matches the title by case-insensitive substring.
type NewsFilter struct {
	PublishedOnly bool
	AuthorID      uint
	TitleQuery    string
	Limit         int
}

// UserRepository defines the interface for auth-user database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	Count() (int64, error)
}

// ProfileRepository defines the interface for profile-related database operations
type ProfileRepository interface {
	Create(profile *models.Profile) error
	GetByID(id uint) (*models.Profile, error)
	GetByUsername(username string) (*models.Profile, error)
	List() ([]models.Profile, error)
	Update(profile *models.Profile) error
	Delete(id uint) error
	Count() (int64, error)
	UsernameExists(username string) (bool, error)
	UsernameExistsExceptID(username string, id uint) (bool, error)
}

// NewsRepository defines the interface for news-related database operations
type NewsRepository interface {
	Create(news *models.News) error
	GetByID(id uint) (*models.News, error)
	List(filter NewsFilter) ([]models.News, error)
	Update(news *models.News) error
	Delete(id uint) error
	Count() (int64, error)
}

// CategoryRepository defines the interface for category-related database operations.
// ReplaceForNews swaps the whole link set for one news item in a single
// transaction, so a failure can never leave the article with zero links.
type CategoryRepository interface {
	Create(category *models.Category) error
	GetByID(id uint) (*models.Category, error)
	List() ([]models.Category, error)
	ListNewest() ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
	Count() (int64, error)
	SlugExists(slug string) (bool, error)
	SlugExistsExceptID(slug string, id uint) (bool, error)
	GetForNews(newsID uint) ([]models.Category, error)
	ReplaceForNews(newsID uint, categoryIDs []uint) error
}

// CommentRepository defines the interface for comment-related database operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByNews(newsID uint) ([]models.Comment, error)
	ListAll() ([]models.Comment, error)
	Delete(id uint) error
	Count() (int64, error)
	CountByNews(newsID uint) (int64, error)
}

// ReactionRepository defines the interface for reaction-related database operations.
// GetByNewsAndUser returns (nil, nil) when no reaction exists for the pair.
type ReactionRepository interface {
	GetByNewsAndUser(newsID, userID uint) (*models.Reaction, error)
	Create(reaction *models.Reaction) error
	UpdateKind(id uint, kind string) error
	Delete(id uint) error
	ListAll() ([]models.Reaction, error)
	Count() (int64, error)
	CountsByNews(newsID uint) (likes int64, dislikes int64, err error)
}

// StatsRepository defines the interface for per-article view counters
type StatsRepository interface {
	IncrementViews(newsID uint) error
	GetViews(newsID uint) (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User     UserRepository
	Profile  ProfileRepository
	News     NewsRepository
	Category CategoryRepository
	Comment  CommentRepository
	Reaction ReactionRepository
	Stats    StatsRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Profile:  NewProfileRepository(db),
		News:     NewNewsRepository(db),
		Category: NewCategoryRepository(db),
		Comment:  NewCommentRepository(db),
		Reaction: NewReactionRepository(db),
		Stats:    NewStatsRepository(db),
	}
}
