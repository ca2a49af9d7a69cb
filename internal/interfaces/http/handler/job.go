package handler

import (
	"boss-brief-api/internal/application/brief"
	"boss-brief-api/internal/application/job"
	"boss-brief-api/internal/domain/entity"
	"boss-brief-api/internal/domain/repository"
	"boss-brief-api/internal/interfaces/http/dto"
	apperrors "boss-brief-api/pkg/errors"
	"boss-brief-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// JobHandler 案件ハンドラ
type JobHandler struct {
	jobs   *job.Service
	briefs *brief.Service
}

// NewJobHandler 案件ハンドラを生成する
func NewJobHandler(jobs *job.Service, briefs *brief.Service) *JobHandler {
	return &JobHandler{jobs: jobs, briefs: briefs}
}

// Create 会話で完成した Brief から案件を起こす。
// 会話が完了していなければ 422 を返す。
// POST /v1/jobs
func (h *JobHandler) Create(c *gin.Context) {
	userID := currentUserID(c)
	snap := h.briefs.Conversation(userID).Open(c.Request.Context())
	if !snap.Conversation.Done {
		respondError(c, apperrors.ErrBriefNotComplete, "failed to create job")
		return
	}

	j, err := h.jobs.CreateFromBrief(c.Request.Context(), userID, snap.Conversation.Brief)
	if err != nil {
		respondError(c, err, "failed to create job")
		return
	}

	logger.Info(c.Request.Context(), "job created", "job_id", j.ID, "status", string(j.Status))
	dto.Created(c, dto.ToJobResponse(j))
}

// Get 案件の取得
// GET /v1/jobs/:jid
func (h *JobHandler) Get(c *gin.Context) {
	j, err := h.jobs.Get(c.Request.Context(), currentUserID(c), c.Param("jid"))
	if err != nil {
		respondError(c, err, "failed to get job")
		return
	}
	dto.Success(c, dto.ToJobResponse(j))
}

// List 案件一覧（作成日時の降順）
// GET /v1/jobs
func (h *JobHandler) List(c *gin.Context) {
	var query dto.ListJobsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.BadRequest(c, "invalid query parameters: "+err.Error())
		return
	}

	filter := &repository.JobFilter{Status: entity.JobStatus(query.Status)}
	result, err := h.jobs.List(c.Request.Context(), currentUserID(c), filter, parsePagination(query.Page, query.PageSize))
	if err != nil {
		respondError(c, err, "failed to list jobs")
		return
	}
	dto.SuccessWithPage(c, dto.ToJobResponseList(result.Items), pageMeta(result))
}

// Update 案件の更新。Brief を含むと状態を再導出し、Status のみなら直接遷移。
// PATCH /v1/jobs/:jid
func (h *JobHandler) Update(c *gin.Context) {
	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.Brief == nil && req.Status == "" {
		dto.BadRequest(c, "nothing to update")
		return
	}

	userID := currentUserID(c)
	id := c.Param("jid")

	var (
		j   *entity.Job
		err error
	)
	if req.Brief != nil {
		j, err = h.jobs.UpdateBrief(c.Request.Context(), userID, id, req.Brief.ToBrief(), entity.JobStatus(req.Status))
	} else {
		j, err = h.jobs.UpdateStatus(c.Request.Context(), userID, id, entity.JobStatus(req.Status))
	}
	if err != nil {
		respondError(c, err, "failed to update job")
		return
	}
	dto.Success(c, dto.ToJobResponse(j))
}

// Delete 案件の削除
// DELETE /v1/jobs/:jid
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobs.Delete(c.Request.Context(), currentUserID(c), c.Param("jid")); err != nil {
		respondError(c, err, "failed to delete job")
		return
	}
	dto.NoContent(c)
}

// Readiness 案件 Brief の受注可否
// GET /v1/jobs/:jid/readiness
func (h *JobHandler) Readiness(c *gin.Context) {
	j, r, err := h.jobs.Readiness(c.Request.Context(), currentUserID(c), c.Param("jid"))
	if err != nil {
		respondError(c, err, "failed to check job readiness")
		return
	}
	dto.Success(c, dto.JobReadinessResponse{
		JobID:  j.ID,
		Status: string(j.Status),
		Readiness: dto.ReadinessResponse{
			Ready:   r.Ready,
			Filled:  r.Filled,
			Total:   r.Total,
			Missing: r.Missing,
		},
	})
}
