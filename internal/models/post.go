package models

import (
	"time"
)

// Post represents a markdown content entry. Type distinguishes the content
// kind ("post", "page", ...) against the organization's enabled content types.
type Post struct {
	ID             string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	OrganizationID string     `json:"organization_id" gorm:"not null;index;type:uuid;uniqueIndex:idx_posts_org_slug"`
	AuthorID       string     `json:"author_id" gorm:"not null;index;type:uuid"`
	CategoryID     *string    `json:"category_id,omitempty" gorm:"index;type:uuid"`
	Title          string     `json:"title" gorm:"type:varchar(255);not null" example:"Hello World"`
	Slug           string     `json:"slug" gorm:"type:varchar(255);not null;uniqueIndex:idx_posts_org_slug" example:"hello-world"`
	Content        string     `json:"content" gorm:"type:text" example:"# Hello\n\nFirst post."`
	Excerpt        string     `json:"excerpt" gorm:"type:text" example:"First post."`
	Type           string     `json:"type" gorm:"type:varchar(50);default:'post';index" example:"post"`
	Published      bool       `json:"published" gorm:"default:false;index"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Relationships
	Author   *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID;references:ID"`
	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Tags     []Tag     `json:"tags,omitempty" gorm:"many2many:post_tags;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Post model
func (Post) TableName() string {
	return "posts"
}

// CreatePostRequest represents the request to create a new post
type CreatePostRequest struct {
	Title      string   `json:"title" binding:"required" example:"Hello World"`
	Slug       string   `json:"slug" example:"hello-world"`
	Content    string   `json:"content" example:"# Hello\n\nFirst post."`
	Excerpt    string   `json:"excerpt" example:"First post."`
	Type       string   `json:"type" example:"post"`
	Published  bool     `json:"published" example:"false"`
	CategoryID *string  `json:"category_id,omitempty"`
	TagIDs     []string `json:"tag_ids,omitempty"`
}

// UpdatePostRequest represents the request to update a post
type UpdatePostRequest struct {
	Title      *string   `json:"title,omitempty" example:"Hello World"`
	Slug       *string   `json:"slug,omitempty" example:"hello-world"`
	Content    *string   `json:"content,omitempty"`
	Excerpt    *string   `json:"excerpt,omitempty"`
	Type       *string   `json:"type,omitempty" example:"post"`
	Published  *bool     `json:"published,omitempty" example:"true"`
	CategoryID *string   `json:"category_id,omitempty"`
	TagIDs     *[]string `json:"tag_ids,omitempty"`
}
