package handler

import (
	"boss-brief-api/internal/application/worker"
	"boss-brief-api/internal/domain/entity"
	"boss-brief-api/internal/domain/repository"
	"boss-brief-api/internal/interfaces/http/dto"
	"boss-brief-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// WorkerHandler 編集者ハンドラ
type WorkerHandler struct {
	workers *worker.Service
}

// NewWorkerHandler 編集者ハンドラを生成する
func NewWorkerHandler(workers *worker.Service) *WorkerHandler {
	return &WorkerHandler{workers: workers}
}

// Register 編集者の登録
// POST /v1/workers
func (h *WorkerHandler) Register(c *gin.Context) {
	var req dto.RegisterWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	w := req.ToEntity(currentUserID(c))
	if err := h.workers.Register(c.Request.Context(), w); err != nil {
		respondError(c, err, "failed to register worker")
		return
	}

	logger.Info(c.Request.Context(), "worker registered", "worker_id", w.ID)
	dto.Created(c, dto.ToWorkerResponse(w))
}

// Get 編集者の取得
// GET /v1/workers/:wid
func (h *WorkerHandler) Get(c *gin.Context) {
	w, err := h.workers.Get(c.Request.Context(), c.Param("wid"))
	if err != nil {
		respondError(c, err, "failed to get worker")
		return
	}
	dto.Success(c, dto.ToWorkerResponse(w))
}

// Me ログインユーザー自身の編集者レコード
// GET /v1/workers/me
func (h *WorkerHandler) Me(c *gin.Context) {
	w, err := h.workers.GetByOwner(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, err, "failed to get worker")
		return
	}
	dto.Success(c, dto.ToWorkerResponse(w))
}

// List 編集者一覧
// GET /v1/workers
func (h *WorkerHandler) List(c *gin.Context) {
	var query dto.ListWorkersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}

	filter := &repository.WorkerFilter{
		Status:   entity.WorkerStatus(query.Status),
		Platform: query.Platform,
	}
	result, err := h.workers.List(c.Request.Context(), filter, parsePagination(query.Page, query.PageSize))
	if err != nil {
		respondError(c, err, "failed to list workers")
		return
	}
	dto.SuccessWithPage(c, dto.ToWorkerResponseList(result.Items), pageMeta(result))
}

// Update 編集者の更新
// PUT /v1/workers/:wid
func (h *WorkerHandler) Update(c *gin.Context) {
	var req dto.UpdateWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	w, err := h.workers.Get(c.Request.Context(), c.Param("wid"))
	if err != nil {
		respondError(c, err, "failed to get worker")
		return
	}

	req.ApplyTo(w)
	if err := h.workers.Update(c.Request.Context(), w); err != nil {
		respondError(c, err, "failed to update worker")
		return
	}
	dto.Success(c, dto.ToWorkerResponse(w))
}

// Delete 編集者の削除
// DELETE /v1/workers/:wid
func (h *WorkerHandler) Delete(c *gin.Context) {
	if err := h.workers.Delete(c.Request.Context(), c.Param("wid")); err != nil {
		respondError(c, err, "failed to delete worker")
		return
	}
	dto.NoContent(c)
}

// Readiness プロフィールの充足状況
// GET /v1/workers/:wid/readiness
func (h *WorkerHandler) Readiness(c *gin.Context) {
	w, r, err := h.workers.Readiness(c.Request.Context(), c.Param("wid"))
	if err != nil {
		respondError(c, err, "failed to check worker readiness")
		return
	}
	dto.Success(c, dto.WorkerReadinessResponse{
		WorkerID: w.ID,
		Pct:      r.Pct,
		Missing:  r.Missing,
	})
}

// Profile 派生プロフィールの取得
// GET /v1/workers/:wid/profile
func (h *WorkerHandler) Profile(c *gin.Context) {
	p, err := h.workers.Profile(c.Request.Context(), c.Param("wid"))
	if err != nil {
		respondError(c, err, "failed to derive worker profile")
		return
	}
	dto.Success(c, p)
}
