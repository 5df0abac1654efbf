package service

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"blogicum/internal/pkg/consts"
	"blogicum/internal/pkg/minio"
)

var imageContentTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
}

type ImageService interface {
	Store(ctx context.Context, file *multipart.FileHeader) (string, error)
	Delete(ctx context.Context, objectName string) error
}

type ImageServiceImpl struct{}

func NewImageService() ImageService {
	return &ImageServiceImpl{}
}

// Store 压缩上传的图片并写入对象存储，返回对象键
func (s *ImageServiceImpl) Store(ctx context.Context, file *multipart.FileHeader) (string, error) {
	if file.Size > consts.MaxUploadSize {
		return "", ErrFileNotSupported
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	contentType, ok := imageContentTypes[ext]
	if !ok {
		return "", ErrFileNotSupported
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("打开上传文件失败: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrFileNotSupported
	}

	// 宽度超限时等比缩放，避免存储原始大图
	if img.Bounds().Dx() > consts.MaxImageWidth {
		img = imaging.Resize(img, consts.MaxImageWidth, 0, imaging.Lanczos)
	}

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return "", ErrFileNotSupported
	}

	buf := &bytes.Buffer{}
	if err = imaging.Encode(buf, img, format); err != nil {
		return "", fmt.Errorf("编码图片失败: %w", err)
	}

	objectName := time.Now().Format("2006/01/02/") + uuid.New().String() + ext
	if _, err = minio.UploadFile(ctx, objectName, buf, int64(buf.Len()), contentType); err != nil {
		return "", err
	}

	return objectName, nil
}

func (s *ImageServiceImpl) Delete(ctx context.Context, objectName string) error {
	if objectName == "" {
		return nil
	}
	return minio.DeleteFile(ctx, objectName)
}
