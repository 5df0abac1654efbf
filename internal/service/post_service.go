package service

import (
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"

	"blogicum/internal/api/dto"
	"blogicum/internal/model"
	"blogicum/internal/pkg/consts"
	"blogicum/internal/pkg/minio"
	"blogicum/internal/pkg/util"
	"blogicum/internal/repository"
)

type PostService interface {
	ListPublic(ctx context.Context, rawPage string) (*dto.PostListDTO, error)
	ListByCategory(ctx context.Context, slug, rawPage string) (*dto.CategoryFeedDTO, error)
	ListByAuthor(ctx context.Context, username, rawPage string, viewerID uint64) (*dto.ProfileFeedDTO, error)
	GetDetail(ctx context.Context, postID, viewerID uint64) (*dto.PostDetailDTO, error)
	GetFormChoices(ctx context.Context) (*dto.PostFormChoicesDTO, error)
	CreatePost(ctx context.Context, authorID uint64, formDTO *dto.PostFormDTO) error
	GetPostForEdit(ctx context.Context, postID, userID uint64) (*dto.PostFormDTO, error)
	UpdatePost(ctx context.Context, postID, userID uint64, formDTO *dto.PostFormDTO) error
	GetPostForDelete(ctx context.Context, postID, userID uint64) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, postID, userID uint64) error
}

type PostServiceImpl struct {
	postRepo     repository.PostRepo
	categoryRepo repository.CategoryRepo
	locationRepo repository.LocationRepo
	userRepo     repository.UserRepo
	commentRepo  repository.CommentRepo
	imageService ImageService
}

func NewPostService(
	postRepo repository.PostRepo,
	categoryRepo repository.CategoryRepo,
	locationRepo repository.LocationRepo,
	userRepo repository.UserRepo,
	commentRepo repository.CommentRepo,
	imageService ImageService,
) PostService {
	return &PostServiceImpl{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		commentRepo:  commentRepo,
		imageService: imageService,
	}
}

func (s *PostServiceImpl) ListPublic(ctx context.Context, rawPage string) (*dto.PostListDTO, error) {
	now := time.Now()

	total, err := s.postRepo.CountPublic(ctx, now)
	if err != nil {
		return nil, err
	}

	number := resolveFeedPage(rawPage, total)
	posts, err := s.postRepo.ListPublic(ctx, now, consts.PageSize, (number-1)*consts.PageSize)
	if err != nil {
		return nil, err
	}

	return &dto.PostListDTO{
		Posts: toPostDTOs(posts),
		Page:  buildPage(number, total),
	}, nil
}

func (s *PostServiceImpl) ListByCategory(ctx context.Context, slug, rawPage string) (*dto.CategoryFeedDTO, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if category == nil || !category.IsPublished {
		return nil, ErrCategoryNotFound
	}

	now := time.Now()
	total, err := s.postRepo.CountByCategory(ctx, category.ID, now)
	if err != nil {
		return nil, err
	}

	number := resolveCategoryPage(rawPage, total)
	posts, err := s.postRepo.ListByCategory(ctx, category.ID, now, consts.PageSize, (number-1)*consts.PageSize)
	if err != nil {
		return nil, err
	}

	categoryDTO := &dto.CategoryDTO{}
	if err = copier.Copy(categoryDTO, category); err != nil {
		return nil, err
	}
	if category.Description != nil {
		categoryDTO.Description = *category.Description
	}

	return &dto.CategoryFeedDTO{
		Category: categoryDTO,
		Posts:    toPostDTOs(posts),
		Page:     buildPage(number, total),
	}, nil
}

// ListByAuthor 个人主页：包含未发布与定时帖子，不做可见性过滤
func (s *PostServiceImpl) ListByAuthor(ctx context.Context, username, rawPage string, viewerID uint64) (*dto.ProfileFeedDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	total, err := s.postRepo.CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	number, err := resolveProfilePage(rawPage, total)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.ListByAuthor(ctx, user.ID, consts.PageSize, (number-1)*consts.PageSize)
	if err != nil {
		return nil, err
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}

	return &dto.ProfileFeedDTO{
		Profile: userDTO,
		IsSelf:  viewerID != 0 && viewerID == user.ID,
		Posts:   toPostDTOs(posts),
		Page:    buildPage(number, total),
	}, nil
}

func (s *PostServiceImpl) GetDetail(ctx context.Context, postID, viewerID uint64) (*dto.PostDetailDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.VisibleTo(viewerID, time.Now()) {
		return nil, ErrPostNotFound
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	commentDTOs := make([]*dto.CommentDTO, 0, len(comments))
	for _, comment := range comments {
		commentDTO := &dto.CommentDTO{}
		if err = copier.Copy(commentDTO, comment); err != nil {
			return nil, err
		}
		commentDTO.AuthorUsername = comment.Author.Username
		commentDTO.IsOwner = viewerID != 0 && viewerID == comment.AuthorID
		commentDTOs = append(commentDTOs, commentDTO)
	}

	postDTO := toPostDTO(post)
	postDTO.CommentCount = int64(len(commentDTOs))

	return &dto.PostDetailDTO{
		Post:     postDTO,
		Comments: commentDTOs,
		IsOwner:  viewerID != 0 && viewerID == post.AuthorID,
	}, nil
}

func (s *PostServiceImpl) GetFormChoices(ctx context.Context) (*dto.PostFormChoicesDTO, error) {
	categories, err := s.categoryRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}

	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	categoryDTOs := make([]*dto.CategoryDTO, 0, len(categories))
	for _, category := range categories {
		categoryDTO := &dto.CategoryDTO{}
		if err = copier.Copy(categoryDTO, category); err != nil {
			return nil, err
		}
		if category.Description != nil {
			categoryDTO.Description = *category.Description
		}
		categoryDTOs = append(categoryDTOs, categoryDTO)
	}

	locationDTOs := make([]*dto.LocationDTO, 0, len(locations))
	for _, location := range locations {
		locationDTO := &dto.LocationDTO{}
		if err = copier.Copy(locationDTO, location); err != nil {
			return nil, err
		}
		locationDTOs = append(locationDTOs, locationDTO)
	}

	return &dto.PostFormChoicesDTO{
		Categories: categoryDTOs,
		Locations:  locationDTOs,
	}, nil
}

// CreatePost 发布时间缺省为当前时间；未来时间表示定时发布
func (s *PostServiceImpl) CreatePost(ctx context.Context, authorID uint64, formDTO *dto.PostFormDTO) error {
	pubDate := formDTO.PubDate
	if pubDate.IsZero() {
		pubDate = time.Now()
	}

	post := &model.Post{
		AuthorID:    authorID,
		CategoryID:  util.PtrUint64(formDTO.CategoryID),
		LocationID:  util.PtrUint64(formDTO.LocationID),
		Title:       formDTO.Title,
		Text:        formDTO.Text,
		Image:       formDTO.Image,
		PubDate:     pubDate,
		IsPublished: true,
	}

	return s.postRepo.CreatePost(ctx, post)
}

func (s *PostServiceImpl) GetPostForEdit(ctx context.Context, postID, userID uint64) (*dto.PostFormDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if CheckOwner(post, userID) != Allowed {
		return nil, ErrPostNotOwner
	}

	formDTO := &dto.PostFormDTO{
		Title:   post.Title,
		Text:    post.Text,
		PubDate: post.PubDate,
		Image:   post.Image,
	}
	if post.CategoryID != nil {
		formDTO.CategoryID = *post.CategoryID
	}
	if post.LocationID != nil {
		formDTO.LocationID = *post.LocationID
	}
	return formDTO, nil
}

// UpdatePost 表单未携带新图片或发布时间时沿用原值
func (s *PostServiceImpl) UpdatePost(ctx context.Context, postID, userID uint64, formDTO *dto.PostFormDTO) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if CheckOwner(post, userID) != Allowed {
		return ErrPostNotOwner
	}

	oldImage := post.Image

	post.Title = formDTO.Title
	post.Text = formDTO.Text
	post.CategoryID = util.PtrUint64(formDTO.CategoryID)
	post.LocationID = util.PtrUint64(formDTO.LocationID)
	if !formDTO.PubDate.IsZero() {
		post.PubDate = formDTO.PubDate
	}
	if formDTO.Image != "" {
		post.Image = formDTO.Image
	}

	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return err
	}

	if formDTO.Image != "" && oldImage != "" && oldImage != formDTO.Image {
		s.deleteImageAsync(oldImage)
	}
	return nil
}

func (s *PostServiceImpl) GetPostForDelete(ctx context.Context, postID, userID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if CheckOwner(post, userID) != Allowed {
		return nil, ErrPostNotOwner
	}
	return toPostDTO(post), nil
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, postID, userID uint64) error {
	post, err := s.postRepo.GetPost(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if CheckOwner(post, userID) != Allowed {
		return ErrPostNotOwner
	}

	if err = s.postRepo.DeletePost(ctx, postID); err != nil {
		return err
	}

	if post.Image != "" {
		s.deleteImageAsync(post.Image)
	}
	return nil
}

// deleteImageAsync 对象存储清理不阻塞请求，失败留给周期任务兜底
func (s *PostServiceImpl) deleteImageAsync(objectName string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.imageService.Delete(ctx, objectName); err != nil {
			log.Warn("delete post image failed", "object", objectName, "err", err)
		}
	}()
}

func toPostDTO(post *model.Post) *dto.PostDTO {
	postDTO := &dto.PostDTO{
		ID:             post.ID,
		Title:          post.Title,
		Text:           post.Text,
		ImageURL:       minio.GetPublicURL(post.Image),
		PubDate:        post.PubDate,
		IsPublished:    post.IsPublished,
		AuthorID:       post.AuthorID,
		AuthorUsername: post.Author.Username,
		CommentCount:   post.CommentCount,
	}
	if post.Category != nil {
		postDTO.CategoryTitle = post.Category.Title
		postDTO.CategorySlug = post.Category.Slug
	}
	if post.Location != nil {
		postDTO.LocationName = post.Location.Name
	}
	return postDTO
}

func toPostDTOs(posts []*model.Post) []*dto.PostDTO {
	result := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		result = append(result, toPostDTO(post))
	}
	return result
}
