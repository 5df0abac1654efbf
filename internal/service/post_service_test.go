package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogicum/internal/api/dto"
	"blogicum/internal/model"
)

func newPostServiceForTest() (*PostServiceImpl, *MockPostRepo, *MockCategoryRepo, *MockLocationRepo, *MockUserRepo, *MockCommentRepo) {
	postRepo := &MockPostRepo{}
	categoryRepo := &MockCategoryRepo{}
	locationRepo := &MockLocationRepo{}
	userRepo := &MockUserRepo{}
	commentRepo := &MockCommentRepo{}
	svc := NewPostService(postRepo, categoryRepo, locationRepo, userRepo, commentRepo, &MockImageService{}).(*PostServiceImpl)
	return svc, postRepo, categoryRepo, locationRepo, userRepo, commentRepo
}

func publishedPost(authorID uint64) *model.Post {
	return &model.Post{
		ID:          5,
		AuthorID:    authorID,
		Title:       "标题",
		Text:        "正文",
		PubDate:     time.Now().Add(-time.Hour),
		IsPublished: true,
		Author:      model.User{ID: authorID, Username: "author"},
	}
}

func TestGetDetailVisibility(t *testing.T) {
	ctx := context.Background()

	t.Run("匿名访问已发布帖子", func(t *testing.T) {
		svc, postRepo, _, _, _, commentRepo := newPostServiceForTest()
		postRepo.On("GetPost", mock.Anything, uint64(5)).Return(publishedPost(7), nil)
		commentRepo.On("ListByPost", mock.Anything, uint64(5)).Return([]*model.Comment{}, nil)

		detail, err := svc.GetDetail(ctx, 5, 0)
		assert.NoError(t, err)
		assert.Equal(t, "标题", detail.Post.Title)
		assert.False(t, detail.IsOwner)
	})

	t.Run("匿名访问未发布帖子返回404", func(t *testing.T) {
		svc, postRepo, _, _, _, _ := newPostServiceForTest()
		post := publishedPost(7)
		post.IsPublished = false
		postRepo.On("GetPost", mock.Anything, uint64(5)).Return(post, nil)

		_, err := svc.GetDetail(ctx, 5, 0)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("作者可以看到自己未发布的帖子", func(t *testing.T) {
		svc, postRepo, _, _, _, commentRepo := newPostServiceForTest()
		post := publishedPost(7)
		post.IsPublished = false
		postRepo.On("GetPost", mock.Anything, uint64(5)).Return(post, nil)
		commentRepo.On("ListByPost", mock.Anything, uint64(5)).Return([]*model.Comment{}, nil)

		detail, err := svc.GetDetail(ctx, 5, 7)
		assert.NoError(t, err)
		assert.True(t, detail.IsOwner)
	})

	t.Run("定时发布的帖子对他人不可见", func(t *testing.T) {
		svc, postRepo, _, _, _, _ := newPostServiceForTest()
		post := publishedPost(7)
		post.PubDate = time.Now().Add(time.Hour)
		postRepo.On("GetPost", mock.Anything, uint64(5)).Return(post, nil)

		_, err := svc.GetDetail(ctx, 5, 8)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("隐藏分类下的帖子不可见", func(t *testing.T) {
		svc, postRepo, _, _, _, _ := newPostServiceForTest()
		post := publishedPost(7)
		post.Category = &model.Category{ID: 2, Title: "隐藏", IsPublished: false}
		postRepo.On("GetPost", mock.Anything, uint64(5)).Return(post, nil)

		_, err := svc.GetDetail(ctx, 5, 0)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("帖子不存在", func(t *testing.T) {
		svc, postRepo, _, _, _, _ := newPostServiceForTest()
		postRepo.On("GetPost", mock.Anything, uint64(5)).Return(nil, nil)

		_, err := svc.GetDetail(ctx, 5, 0)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestGetDetailMarksOwnComments(t *testing.T) {
	svc, postRepo, _, _, _, commentRepo := newPostServiceForTest()
	postRepo.On("GetPost", mock.Anything, uint64(5)).Return(publishedPost(7), nil)
	commentRepo.On("ListByPost", mock.Anything, uint64(5)).Return([]*model.Comment{
		{ID: 1, PostID: 5, AuthorID: 8, Text: "第一条", Author: model.User{ID: 8, Username: "other"}},
		{ID: 2, PostID: 5, AuthorID: 9, Text: "第二条", Author: model.User{ID: 9, Username: "viewer"}},
	}, nil)

	detail, err := svc.GetDetail(context.Background(), 5, 9)
	assert.NoError(t, err)
	assert.Len(t, detail.Comments, 2)
	assert.False(t, detail.Comments[0].IsOwner)
	assert.True(t, detail.Comments[1].IsOwner)
	assert.Equal(t, int64(2), detail.Post.CommentCount)
}

func TestListPublicOutOfRangeFallsToLastPage(t *testing.T) {
	svc, postRepo, _, _, _, _ := newPostServiceForTest()
	postRepo.On("CountPublic", mock.Anything, mock.Anything).Return(int64(25), nil)
	postRepo.On("ListPublic", mock.Anything, mock.Anything, 10, 20).Return([]*model.Post{}, nil)

	feed, err := svc.ListPublic(context.Background(), "99")
	assert.NoError(t, err)
	assert.Equal(t, 3, feed.Page.Number)
	postRepo.AssertExpectations(t)
}

func TestListByCategoryHidden(t *testing.T) {
	ctx := context.Background()

	t.Run("分类不存在", func(t *testing.T) {
		svc, _, categoryRepo, _, _, _ := newPostServiceForTest()
		categoryRepo.On("GetBySlug", mock.Anything, "nope").Return(nil, nil)

		_, err := svc.ListByCategory(ctx, "nope", "1")
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})

	t.Run("未发布分类视同不存在", func(t *testing.T) {
		svc, _, categoryRepo, _, _, _ := newPostServiceForTest()
		categoryRepo.On("GetBySlug", mock.Anything, "hidden").Return(&model.Category{ID: 2, Slug: "hidden", IsPublished: false}, nil)

		_, err := svc.ListByCategory(ctx, "hidden", "1")
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestListByCategoryBadPageFallsToFirst(t *testing.T) {
	svc, postRepo, categoryRepo, _, _, _ := newPostServiceForTest()
	categoryRepo.On("GetBySlug", mock.Anything, "go").Return(&model.Category{ID: 2, Title: "Go", Slug: "go", IsPublished: true}, nil)
	postRepo.On("CountByCategory", mock.Anything, uint64(2), mock.Anything).Return(int64(25), nil)
	postRepo.On("ListByCategory", mock.Anything, uint64(2), mock.Anything, 10, 0).Return([]*model.Post{}, nil)

	feed, err := svc.ListByCategory(context.Background(), "go", "99")
	assert.NoError(t, err)
	assert.Equal(t, 1, feed.Page.Number)
	postRepo.AssertExpectations(t)
}

func TestListByAuthor(t *testing.T) {
	ctx := context.Background()

	t.Run("用户不存在", func(t *testing.T) {
		svc, _, _, _, userRepo, _ := newPostServiceForTest()
		userRepo.On("GetUserByUsername", mock.Anything, "ghost").Return(nil, nil)

		_, err := svc.ListByAuthor(ctx, "ghost", "", 0)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("非法页码按404处理", func(t *testing.T) {
		svc, postRepo, _, _, userRepo, _ := newPostServiceForTest()
		userRepo.On("GetUserByUsername", mock.Anything, "author").Return(&model.User{ID: 7, Username: "author"}, nil)
		postRepo.On("CountByAuthor", mock.Anything, uint64(7)).Return(int64(25), nil)

		_, err := svc.ListByAuthor(ctx, "author", "99", 0)
		assert.ErrorIs(t, err, ErrPageNotFound)
	})

	t.Run("本人访问标记IsSelf", func(t *testing.T) {
		svc, postRepo, _, _, userRepo, _ := newPostServiceForTest()
		userRepo.On("GetUserByUsername", mock.Anything, "author").Return(&model.User{ID: 7, Username: "author"}, nil)
		postRepo.On("CountByAuthor", mock.Anything, uint64(7)).Return(int64(1), nil)
		postRepo.On("ListByAuthor", mock.Anything, uint64(7), 10, 0).Return([]*model.Post{publishedPost(7)}, nil)

		feed, err := svc.ListByAuthor(ctx, "author", "", 7)
		assert.NoError(t, err)
		assert.True(t, feed.IsSelf)
		assert.Len(t, feed.Posts, 1)
	})
}

func TestCreatePostDefaults(t *testing.T) {
	svc, postRepo, _, _, _, _ := newPostServiceForTest()

	var created *model.Post
	postRepo.On("CreatePost", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*model.Post)
	}).Return(nil)

	err := svc.CreatePost(context.Background(), 7, &dto.PostFormDTO{
		Title: "标题",
		Text:  "正文",
	})
	assert.NoError(t, err)
	assert.Equal(t, uint64(7), created.AuthorID)
	assert.True(t, created.IsPublished)
	assert.Nil(t, created.CategoryID)
	assert.Nil(t, created.LocationID)
	assert.WithinDuration(t, time.Now(), created.PubDate, time.Minute)
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("非作者返回归属错误", func(t *testing.T) {
		svc, postRepo, _, _, _, _ := newPostServiceForTest()
		postRepo.On("GetPost", mock.Anything, uint64(5)).Return(publishedPost(7), nil)

		err := svc.UpdatePost(ctx, 5, 8, &dto.PostFormDTO{Title: "新", Text: "新"})
		assert.ErrorIs(t, err, ErrPostNotOwner)
	})

	t.Run("空发布时间沿用原值", func(t *testing.T) {
		svc, postRepo, _, _, _, _ := newPostServiceForTest()
		post := publishedPost(7)
		origPubDate := post.PubDate
		postRepo.On("GetPost", mock.Anything, uint64(5)).Return(post, nil)

		var saved *model.Post
		postRepo.On("UpdatePost", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			saved = args.Get(1).(*model.Post)
		}).Return(nil)

		err := svc.UpdatePost(ctx, 5, 7, &dto.PostFormDTO{Title: "新标题", Text: "新正文", CategoryID: 3})
		assert.NoError(t, err)
		assert.Equal(t, "新标题", saved.Title)
		assert.Equal(t, origPubDate, saved.PubDate)
		assert.Equal(t, uint64(3), *saved.CategoryID)
	})
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("非作者返回归属错误", func(t *testing.T) {
		svc, postRepo, _, _, _, _ := newPostServiceForTest()
		postRepo.On("GetPost", mock.Anything, uint64(5)).Return(publishedPost(7), nil)

		err := svc.DeletePost(ctx, 5, 8)
		assert.ErrorIs(t, err, ErrPostNotOwner)
	})

	t.Run("帖子不存在", func(t *testing.T) {
		svc, postRepo, _, _, _, _ := newPostServiceForTest()
		postRepo.On("GetPost", mock.Anything, uint64(5)).Return(nil, nil)

		err := svc.DeletePost(ctx, 5, 7)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("作者删除成功", func(t *testing.T) {
		svc, postRepo, _, _, _, _ := newPostServiceForTest()
		postRepo.On("GetPost", mock.Anything, uint64(5)).Return(publishedPost(7), nil)
		postRepo.On("DeletePost", mock.Anything, uint64(5)).Return(nil)

		err := svc.DeletePost(ctx, 5, 7)
		assert.NoError(t, err)
		postRepo.AssertExpectations(t)
	})
}
