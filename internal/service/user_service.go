package service

import (
	"context"
	"time"

	"github.com/jinzhu/copier"

	"blogicum/internal/api/dto"
	"blogicum/internal/model"
	"blogicum/internal/pkg/consts"
	"blogicum/internal/pkg/redis"
	"blogicum/internal/pkg/security"
	"blogicum/internal/repository"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, error)
	Logout(ctx context.Context, token string) error
	GetProfile(ctx context.Context, username string) (*dto.UserDTO, error)
	GetProfileForm(ctx context.Context, userID uint64) (*dto.UserFormDTO, error)
	UpdateProfile(ctx context.Context, userID uint64, formDTO *dto.UserFormDTO) (string, error)
}

type UserServiceImpl struct {
	userRepo repository.UserRepo
}

func NewUserService(userRepo repository.UserRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	findUser, err := s.userRepo.GetUserByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if findUser != nil {
		return ErrUserUsernameExist
	}

	user := &model.User{}
	if err = copier.Copy(user, regDTO); err != nil {
		return err
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}
	user.Password = passwordHash

	// 先查后插仍可能撞上并发注册，唯一键冲突兜底
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		if repository.IsDuplicateKeyError(err) {
			return ErrUserUsernameExist
		}
		return err
	}
	return nil
}

// Login 校验凭据并签发 Token。用户不存在与密码错误返回同一错误，避免泄露注册状态
func (s *UserServiceImpl) Login(ctx context.Context, loginDTO *dto.LoginDTO) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, loginDTO.Username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrPasswordIncorrect
	}

	if err = security.CheckPasswordHash(loginDTO.Password, user.Password); err != nil {
		return "", ErrPasswordIncorrect
	}

	return security.GenerateToken(user.ID, user.Username)
}

// Logout 将 Token 签名写入失效名单，有效期与 Token 本身一致
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	return redis.SetWithExpiration(ctx, consts.TokenDenyKey+signature, true, time.Hour*24)
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, username string) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	userDTO := &dto.UserDTO{}
	if err = copier.Copy(userDTO, user); err != nil {
		return nil, err
	}
	return userDTO, nil
}

func (s *UserServiceImpl) GetProfileForm(ctx context.Context, userID uint64) (*dto.UserFormDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	formDTO := &dto.UserFormDTO{}
	if err = copier.Copy(formDTO, user); err != nil {
		return nil, err
	}
	return formDTO, nil
}

// UpdateProfile 更新个人资料并重新签发 Token，保证用户名变更后凭据不失真
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID uint64, formDTO *dto.UserFormDTO) (string, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	if formDTO.Username != user.Username {
		existing, err := s.userRepo.GetUserByUsername(ctx, formDTO.Username)
		if err != nil {
			return "", err
		}
		if existing != nil {
			return "", ErrUserUsernameExist
		}
	}

	user.Username = formDTO.Username
	user.FirstName = formDTO.FirstName
	user.LastName = formDTO.LastName
	user.Email = formDTO.Email

	if err = s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}

	return security.GenerateToken(user.ID, user.Username)
}
