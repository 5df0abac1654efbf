package job

import (
	"context"
	log "log/slog"
	"time"

	"blogicum/internal/pkg/minio"
	"blogicum/internal/repository"
)

// ImageCleanupJob 清理对象存储中不再被任何帖子引用的图片
type ImageCleanupJob struct {
	postRepo repository.PostRepo
}

func NewImageCleanupJob(postRepo repository.PostRepo) *ImageCleanupJob {
	return &ImageCleanupJob{postRepo: postRepo}
}

func (s *ImageCleanupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	keys, err := s.postRepo.ListImageKeys(ctx)
	if err != nil {
		log.Error("image cleanup: list referenced keys failed", "err", err)
		return
	}

	referenced := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		referenced[key] = struct{}{}
	}

	// 只清理写入超过一天的对象，避免删掉尚未落库的新上传
	cutoff := time.Now().Add(-24 * time.Hour)
	count := 0

	for object := range minio.ListObjects(ctx) {
		if object.Err != nil {
			log.Error("image cleanup: list objects failed", "err", object.Err)
			return
		}
		if _, ok := referenced[object.Key]; ok {
			continue
		}
		if object.LastModified.After(cutoff) {
			continue
		}

		if err := minio.DeleteFile(ctx, object.Key); err != nil {
			log.Error("image cleanup: delete orphan failed", "object", object.Key, "err", err)
			continue
		}
		count++
	}

	if count > 0 {
		log.Info("image cleanup job finished", "cleaned_count", count)
	}
}
