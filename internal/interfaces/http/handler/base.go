// Package handler 提供 HTTP 请求处理器
package handler

import (
	"boss-brief-api/internal/domain/repository"
	"boss-brief-api/internal/interfaces/http/dto"
	"boss-brief-api/pkg/errors"
	"boss-brief-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// currentUserID 认证中间件写入的用户 ID
func currentUserID(c *gin.Context) string {
	return c.GetString("user_id")
}

// respondError 统一错误响应。AppError 按对应的 HTTP 状态码返回，
// 其余错误记录日志后归为 500。
func respondError(c *gin.Context, err error, fallbackMsg string) {
	if errors.IsAppError(err) {
		appErr := errors.AsAppError(err)
		c.JSON(appErr.HTTPStatus, dto.ErrorResponse{
			Code:    appErr.HTTPStatus,
			Message: appErr.Message,
			Error: &dto.ErrorDetail{
				ErrorCode: string(appErr.Code),
				Details:   appErr.Detail,
			},
			TraceID: c.GetString("trace_id"),
		})
		return
	}

	logger.Error(c.Request.Context(), fallbackMsg, err)
	dto.InternalError(c, fallbackMsg)
}

// parsePagination 解析分页查询参数
func parsePagination(page, pageSize int) repository.Pagination {
	return repository.NewPagination(page, pageSize)
}

// pageMeta 分页结果转换为响应元数据
func pageMeta[T any](result *repository.PagedResult[T]) *dto.PageMeta {
	return &dto.PageMeta{
		Page:       result.Page,
		PageSize:   result.PageSize,
		Total:      int(result.Total),
		TotalPages: result.TotalPages,
	}
}
