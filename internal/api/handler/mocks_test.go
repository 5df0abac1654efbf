package handler

import (
	"context"
	"mime/multipart"
	"sync"

	"github.com/stretchr/testify/mock"

	"blogicum/internal/api/dto"
	"blogicum/internal/pkg/flash"
)

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPublic(ctx context.Context, rawPage string) (*dto.PostListDTO, error) {
	args := m.Called(ctx, rawPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PostListDTO), args.Error(1)
}

func (m *MockPostService) ListByCategory(ctx context.Context, slug, rawPage string) (*dto.CategoryFeedDTO, error) {
	args := m.Called(ctx, slug, rawPage)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CategoryFeedDTO), args.Error(1)
}

func (m *MockPostService) ListByAuthor(ctx context.Context, username, rawPage string, viewerID uint64) (*dto.ProfileFeedDTO, error) {
	args := m.Called(ctx, username, rawPage, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ProfileFeedDTO), args.Error(1)
}

func (m *MockPostService) GetDetail(ctx context.Context, postID, viewerID uint64) (*dto.PostDetailDTO, error) {
	args := m.Called(ctx, postID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PostDetailDTO), args.Error(1)
}

func (m *MockPostService) GetFormChoices(ctx context.Context) (*dto.PostFormChoicesDTO, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PostFormChoicesDTO), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, authorID uint64, formDTO *dto.PostFormDTO) error {
	args := m.Called(ctx, authorID, formDTO)
	return args.Error(0)
}

func (m *MockPostService) GetPostForEdit(ctx context.Context, postID, userID uint64) (*dto.PostFormDTO, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PostFormDTO), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, postID, userID uint64, formDTO *dto.PostFormDTO) error {
	args := m.Called(ctx, postID, userID, formDTO)
	return args.Error(0)
}

func (m *MockPostService) GetPostForDelete(ctx context.Context, postID, userID uint64) (*dto.PostDTO, error) {
	args := m.Called(ctx, postID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PostDTO), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID, userID uint64) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) AddComment(ctx context.Context, postID, userID uint64, formDTO *dto.CommentFormDTO) error {
	args := m.Called(ctx, postID, userID, formDTO)
	return args.Error(0)
}

func (m *MockCommentService) GetCommentForEdit(ctx context.Context, postID, commentID, userID uint64) (*dto.CommentDTO, error) {
	args := m.Called(ctx, postID, commentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CommentDTO), args.Error(1)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, postID, commentID, userID uint64, formDTO *dto.CommentFormDTO) error {
	args := m.Called(ctx, postID, commentID, userID, formDTO)
	return args.Error(0)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, postID, commentID, userID uint64) error {
	args := m.Called(ctx, postID, commentID, userID)
	return args.Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	args := m.Called(ctx, regDTO)
	return args.Error(0)
}

func (m *MockUserService) Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, error) {
	args := m.Called(ctx, loginDTO)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockUserService) GetProfile(ctx context.Context, username string) (*dto.UserDTO, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserDTO), args.Error(1)
}

func (m *MockUserService) GetProfileForm(ctx context.Context, userID uint64) (*dto.UserFormDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserFormDTO), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID uint64, formDTO *dto.UserFormDTO) (string, error) {
	args := m.Called(ctx, userID, formDTO)
	return args.String(0), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) Store(ctx context.Context, file *multipart.FileHeader) (string, error) {
	args := m.Called(ctx, file)
	return args.String(0), args.Error(1)
}

func (m *MockImageService) Delete(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

// fakeFlashStore 内存实现，供断言提示消息是否写入
type fakeFlashStore struct {
	mu      sync.Mutex
	notices map[uint64][]flash.Notice
}

func newFakeFlashStore() *fakeFlashStore {
	return &fakeFlashStore{notices: make(map[uint64][]flash.Notice)}
}

func (s *fakeFlashStore) Add(ctx context.Context, userID uint64, notice flash.Notice) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices[userID] = append(s.notices[userID], notice)
	return nil
}

func (s *fakeFlashStore) Pop(ctx context.Context, userID uint64) ([]flash.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.notices[userID]
	delete(s.notices, userID)
	return out, nil
}
