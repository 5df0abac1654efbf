package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("参数错误")
	ErrUserNotFound      = errors.New("用户不存在")
	ErrUserUsernameExist = errors.New("用户名已存在")
	ErrPasswordIncorrect = errors.New("用户名或密码错误")
	ErrPostNotFound      = errors.New("帖子不存在")
	ErrCategoryNotFound  = errors.New("分类不存在")
	ErrCommentNotFound   = errors.New("评论不存在")
	ErrCommentForbidden  = errors.New("无权操作他人评论")
	ErrPostNotOwner      = errors.New("无权操作他人帖子")
	ErrPageNotFound      = errors.New("页码超出范围")
	ErrFileNotSupported  = errors.New("不支持的文件类型")
	UnExpectedError      = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserUsernameExist: BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrPostNotFound:      NotFound,
	ErrCategoryNotFound:  NotFound,
	ErrCommentNotFound:   NotFound,
	ErrCommentForbidden:  Forbidden,
	ErrPageNotFound:      NotFound,
	ErrFileNotSupported:  BadRequest,
	UnExpectedError:      InternalServerError,
}
