package models

import (
	"time"
)

const (
	PostStatusDraft     = "draft"
	PostStatusPublished = "published"

	TestimonialStatusPending  = "pending"
	TestimonialStatusApproved = "approved"
)

type Author struct {
	AuthorID string `json:"authorId" db:"author_id"`
	Name     string `json:"name" db:"name"`
}

type Post struct {
	PostID        string     `json:"postId" db:"post_id"`
	Title         string     `json:"title" db:"title"`
	Slug          string     `json:"slug" db:"slug"`
	Excerpt       string     `json:"excerpt" db:"excerpt"`
	Content       string     `json:"content" db:"content"`
	Status        string     `json:"status" db:"status"`
	FeaturedImage *string    `json:"featuredImage" db:"featured_image"`
	PublishedAt   *time.Time `json:"publishedAt" db:"published_at"`
	AuthorID      *string    `json:"authorId" db:"author_id"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	Tags          []string   `json:"tags" db:"-"`
}

type Tag struct {
	TagID string `json:"tagId" db:"tag_id"`
	Name  string `json:"name" db:"name"`
	Slug  string `json:"slug" db:"slug"`
	// PostCount is filled by the admin listing query only.
	PostCount int `json:"postCount" db:"post_count"`
}

type Faq struct {
	FaqID       string    `json:"faqId" db:"faq_id"`
	Question    string    `json:"question" db:"question"`
	Answer      string    `json:"answer" db:"answer"`
	Category    string    `json:"category" db:"category"`
	SortOrder   int       `json:"order" db:"sort_order"`
	IsPublished bool      `json:"isPublished" db:"is_published"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

type Testimonial struct {
	TestimonialID string    `json:"testimonialId" db:"testimonial_id"`
	Name          string    `json:"name" db:"name"`
	Email         *string   `json:"email" db:"email"`
	Content       string    `json:"content" db:"content"`
	Rating        int       `json:"rating" db:"rating"`
	Location      *string   `json:"location" db:"location"`
	Status        string    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

type Admin struct {
	AdminID      string    `json:"adminId" db:"admin_id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Name         string    `json:"name" db:"name"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
