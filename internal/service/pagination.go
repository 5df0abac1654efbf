package service

import (
	"strconv"

	"blogicum/internal/api/dto"
	"blogicum/internal/pkg/consts"
)

// totalPages 最少为 1 页，空列表也渲染第一页
func totalPages(total int64) int {
	pages := int((total + consts.PageSize - 1) / consts.PageSize)
	if pages < 1 {
		pages = 1
	}
	return pages
}

func buildPage(number int, total int64) *dto.PageDTO {
	pages := totalPages(total)
	return &dto.PageDTO{
		Number:     number,
		TotalPages: pages,
		Total:      total,
		HasNext:    number < pages,
		HasPrev:    number > 1,
		NextNumber: number + 1,
		PrevNumber: number - 1,
	}
}

// resolveFeedPage 首页：非数字页码回退到第一页，小于 1 或超界回退到最后一页
func resolveFeedPage(raw string, total int64) int {
	number, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	if pages := totalPages(total); number < 1 || number > pages {
		return pages
	}
	return number
}

// resolveCategoryPage 分类页：任何异常页码都回退到第一页
func resolveCategoryPage(raw string, total int64) int {
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 || number > totalPages(total) {
		return 1
	}
	return number
}

// resolveProfilePage 个人主页：异常页码按 404 处理
func resolveProfilePage(raw string, total int64) (int, error) {
	if raw == "" {
		return 1, nil
	}
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 || number > totalPages(total) {
		return 0, ErrPageNotFound
	}
	return number, nil
}
