package service

import (
	"context"
	"fmt"
	"time"

	"noorcms/internal/models"
	"noorcms/internal/repository"
)

type CreatePostRequest struct {
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Excerpt       string   `json:"excerpt"`
	Content       string   `json:"content"`
	Status        string   `json:"status"`
	FeaturedImage *string  `json:"featuredImage"`
	AuthorID      *string  `json:"authorId"`
	Tags          []string `json:"tags"`
}

// UpdatePostRequest carries partial updates; nil fields keep the stored value.
type UpdatePostRequest struct {
	Title         *string   `json:"title"`
	Slug          *string   `json:"slug"`
	Excerpt       *string   `json:"excerpt"`
	Content       *string   `json:"content"`
	Status        *string   `json:"status"`
	FeaturedImage *string   `json:"featuredImage"`
	Tags          *[]string `json:"tags"`
}

type BlogListing struct {
	Posts   []models.Post `json:"posts"`
	AllTags []string      `json:"allTags"`
}

type BlogPostView struct {
	Post        *models.Post  `json:"post"`
	RecentPosts []models.Post `json:"recentPosts"`
	AllTags     []string      `json:"allTags"`
}

type PostService interface {
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	ListPosts(ctx context.Context, status string) (*BlogListing, error)
	UpdatePost(ctx context.Context, postID string, req UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, postID string) error
	PublicListing(ctx context.Context) (*BlogListing, error)
	PublicPostBySlug(ctx context.Context, slug string) (*BlogPostView, error)
}

type postService struct {
	postRepo repository.PostRepository
	tagRepo  repository.TagRepository
}

func NewPostService(postRepo repository.PostRepository, tagRepo repository.TagRepository) PostService {
	return &postService{
		postRepo: postRepo,
		tagRepo:  tagRepo,
	}
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}
	if slug == "" {
		return nil, fmt.Errorf("%w: slug cannot be derived from title", ErrValidation)
	}

	status := req.Status
	if status == "" {
		status = models.PostStatusDraft
	}
	if status != models.PostStatusDraft && status != models.PostStatusPublished {
		return nil, fmt.Errorf("%w: status must be draft or published", ErrValidation)
	}

	post := &models.Post{
		Title:         req.Title,
		Slug:          slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		Status:        status,
		FeaturedImage: req.FeaturedImage,
		AuthorID:      req.AuthorID,
	}

	if status == models.PostStatusPublished {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	if len(req.Tags) > 0 {
		if err := p.attachTags(ctx, post.PostID, req.Tags); err != nil {
			return nil, err
		}
	}

	return p.withTags(ctx, post)
}

func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	return p.withTags(ctx, post)
}

func (p *postService) ListPosts(ctx context.Context, status string) (*BlogListing, error) {
	posts, err := p.postRepo.ListAll(ctx, status)
	if err != nil {
		return nil, err
	}

	if err := p.fillTags(ctx, posts); err != nil {
		return nil, err
	}

	allTags, err := p.tagRepo.NamesInUse(ctx, false)
	if err != nil {
		return nil, err
	}

	return &BlogListing{Posts: posts, AllTags: allTags}, nil
}

func (p *postService) UpdatePost(ctx context.Context, postID string, req UpdatePostRequest) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.FeaturedImage != nil {
		post.FeaturedImage = req.FeaturedImage
	}
	if req.Status != nil {
		if *req.Status != models.PostStatusDraft && *req.Status != models.PostStatusPublished {
			return nil, fmt.Errorf("%w: status must be draft or published", ErrValidation)
		}
		if *req.Status == models.PostStatusPublished && post.Status != models.PostStatusPublished {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Status = *req.Status
	}

	// Resolve tags first so a tag failure leaves the post row untouched.
	if req.Tags != nil {
		if err := p.attachTags(ctx, post.PostID, *req.Tags); err != nil {
			return nil, err
		}
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return p.withTags(ctx, post)
}

func (p *postService) DeletePost(ctx context.Context, postID string) error {
	return p.postRepo.Delete(ctx, postID)
}

func (p *postService) PublicListing(ctx context.Context) (*BlogListing, error) {
	posts, err := p.postRepo.ListPublished(ctx, 0, "")
	if err != nil {
		return nil, err
	}

	if err := p.fillTags(ctx, posts); err != nil {
		return nil, err
	}

	allTags, err := p.tagRepo.NamesInUse(ctx, true)
	if err != nil {
		return nil, err
	}

	return &BlogListing{Posts: posts, AllTags: allTags}, nil
}

func (p *postService) PublicPostBySlug(ctx context.Context, slug string) (*BlogPostView, error) {
	post, err := p.postRepo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	post, err = p.withTags(ctx, post)
	if err != nil {
		return nil, err
	}

	recent, err := p.postRepo.ListPublished(ctx, 5, slug)
	if err != nil {
		return nil, err
	}

	allTags, err := p.tagRepo.NamesInUse(ctx, true)
	if err != nil {
		return nil, err
	}

	return &BlogPostView{Post: post, RecentPosts: recent, AllTags: allTags}, nil
}

// attachTags resolves tag names to ids, creating missing tags on demand,
// and replaces the post's tag set.
func (p *postService) attachTags(ctx context.Context, postID string, names []string) error {
	tagIDs := make([]string, 0, len(names))

	for _, name := range names {
		if name == "" {
			continue
		}

		slug := Slugify(name)
		tag, err := p.tagRepo.GetByNameOrSlug(ctx, name, slug)
		if err != nil {
			if err != repository.ErrNotFound {
				return err
			}
			tag = &models.Tag{Name: name, Slug: slug}
			if err := p.tagRepo.Create(ctx, tag); err != nil {
				return err
			}
		}
		tagIDs = append(tagIDs, tag.TagID)
	}

	return p.postRepo.SetTags(ctx, postID, tagIDs)
}

func (p *postService) withTags(ctx context.Context, post *models.Post) (*models.Post, error) {
	names, err := p.postRepo.TagNames(ctx, post.PostID)
	if err != nil {
		return nil, err
	}
	post.Tags = names
	return post, nil
}

func (p *postService) fillTags(ctx context.Context, posts []models.Post) error {
	for i := range posts {
		names, err := p.postRepo.TagNames(ctx, posts[i].PostID)
		if err != nil {
			return err
		}
		posts[i].Tags = names
	}
	return nil
}
