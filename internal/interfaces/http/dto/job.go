// Package dto HTTP 層のデータ転送オブジェクト
package dto

import (
	"encoding/json"
	"time"

	"boss-brief-api/internal/domain/entity"
)

// BriefPayload 案件更新リクエストに載せるブリーフ本体
type BriefPayload struct {
	Purpose   string   `json:"purpose"`
	Duration  string   `json:"duration"`
	Target    string   `json:"target"`
	Tones     []string `json:"tones"`
	Concept   string   `json:"concept"`
	Details   string   `json:"details"`
	AssetsURL string   `json:"assets_url"`
	BGMURL    string   `json:"bgm_url"`
	LogoURL   string   `json:"logo_url"`
	ThumbURL  string   `json:"thumb_url"`
	FontNote  string   `json:"font_note"`
}

// ToBrief ドメイン実体へ変換する
func (p *BriefPayload) ToBrief() entity.Brief {
	tones := make([]entity.Tone, len(p.Tones))
	for i, t := range p.Tones {
		tones[i] = entity.Tone(t)
	}
	return entity.Brief{
		Purpose:   entity.Platform(p.Purpose),
		Duration:  p.Duration,
		Target:    p.Target,
		Tones:     tones,
		Concept:   p.Concept,
		Details:   p.Details,
		AssetsURL: p.AssetsURL,
		BGMURL:    p.BGMURL,
		LogoURL:   p.LogoURL,
		ThumbURL:  p.ThumbURL,
		FontNote:  p.FontNote,
	}
}

// UpdateJobRequest 案件更新リクエスト。
// Brief を含むと状態が再導出され、Status のみなら直接遷移になる。
type UpdateJobRequest struct {
	Status string        `json:"status"`
	Brief  *BriefPayload `json:"brief"`
}

// ListJobsQuery 案件一覧のクエリパラメータ
type ListJobsQuery struct {
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// JobResponse 案件
type JobResponse struct {
	ID           string          `json:"id"`
	OwnerUserID  string          `json:"owner_user_id"`
	Status       string          `json:"status"`
	Brief        BriefResponse   `json:"brief"`
	Requirements json.RawMessage `json:"requirements"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// JobReadinessResponse 案件単位の受注可否
type JobReadinessResponse struct {
	JobID     string            `json:"job_id"`
	Status    string            `json:"status"`
	Readiness ReadinessResponse `json:"readiness"`
}

// ToJobResponse 案件実体を変換する。Brief のデコードに失敗した場合は空ブリーフを返す
func ToJobResponse(j *entity.Job) JobResponse {
	b, err := j.DecodeBrief()
	if err != nil {
		b = entity.EmptyBrief()
	}
	return JobResponse{
		ID:           j.ID,
		OwnerUserID:  j.OwnerUserID,
		Status:       string(j.Status),
		Brief:        ToBriefResponse(b),
		Requirements: j.Requirements,
		CreatedAt:    j.CreatedAt,
		UpdatedAt:    j.UpdatedAt,
	}
}

// ToJobResponseList 案件一覧を変換する
func ToJobResponseList(jobs []*entity.Job) []JobResponse {
	out := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		out[i] = ToJobResponse(j)
	}
	return out
}
