// Package dto HTTP 層のデータ転送オブジェクト
package dto

import (
	"time"

	"boss-brief-api/internal/domain/entity"
)

// CapabilityPayload 編集者の制作能力
type CapabilityPayload struct {
	Type          string   `json:"type"`
	Platforms     []string `json:"platforms"`
	Tools         []string `json:"tools"`
	Strengths     []string `json:"strengths"`
	PortfolioURLs []string `json:"portfolio_urls"`
}

// RegisterWorkerRequest 編集者登録リクエスト
type RegisterWorkerRequest struct {
	Name       string             `json:"name" binding:"required"`
	Timezone   string             `json:"timezone"`
	Status     string             `json:"status"`
	Headline   string             `json:"headline"`
	Capability *CapabilityPayload `json:"capability"`
}

// UpdateWorkerRequest 編集者更新リクエスト
type UpdateWorkerRequest struct {
	Name       string             `json:"name" binding:"required"`
	Timezone   string             `json:"timezone"`
	Status     string             `json:"status" binding:"required"`
	Headline   string             `json:"headline"`
	Capability *CapabilityPayload `json:"capability"`
}

// ListWorkersQuery 編集者一覧のクエリパラメータ
type ListWorkersQuery struct {
	Status   string `form:"status"`
	Platform string `form:"platform"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

// CapabilityResponse 制作能力
type CapabilityResponse struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Platforms     []string `json:"platforms"`
	Tools         []string `json:"tools"`
	Strengths     []string `json:"strengths"`
	PortfolioURLs []string `json:"portfolio_urls"`
}

// WorkerResponse 編集者
type WorkerResponse struct {
	ID           string               `json:"id"`
	Name         string               `json:"name"`
	Timezone     string               `json:"timezone"`
	Status       string               `json:"status"`
	Headline     string               `json:"headline"`
	Capabilities []CapabilityResponse `json:"capabilities"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// WorkerReadinessResponse プロフィール充足状況
type WorkerReadinessResponse struct {
	WorkerID string   `json:"worker_id"`
	Pct      int      `json:"pct"`
	Missing  []string `json:"missing"`
}

// ToEntity ドメイン実体へ変換する。ID 採番とオーナー紐付けはサービス側で行う
func (r *RegisterWorkerRequest) ToEntity(ownerUserID string) *entity.Worker {
	w := &entity.Worker{
		Name:        r.Name,
		Timezone:    r.Timezone,
		Status:      entity.WorkerStatus(r.Status),
		Headline:    r.Headline,
		OwnerUserID: ownerUserID,
	}
	if r.Capability != nil {
		w.Capabilities = []entity.Capability{toCapabilityEntity(r.Capability)}
	}
	return w
}

// ApplyTo 更新リクエストを既存実体に反映する
func (r *UpdateWorkerRequest) ApplyTo(w *entity.Worker) {
	w.Name = r.Name
	w.Timezone = r.Timezone
	w.Status = entity.WorkerStatus(r.Status)
	w.Headline = r.Headline
	if r.Capability != nil {
		c := toCapabilityEntity(r.Capability)
		c.WorkerID = w.ID
		if len(w.Capabilities) > 0 {
			c.ID = w.Capabilities[0].ID
		}
		w.Capabilities = []entity.Capability{c}
	}
}

func toCapabilityEntity(p *CapabilityPayload) entity.Capability {
	return entity.Capability{
		Type:          p.Type,
		Platforms:     p.Platforms,
		Tools:         p.Tools,
		Strengths:     p.Strengths,
		PortfolioURLs: p.PortfolioURLs,
	}
}

// ToWorkerResponse 編集者実体を変換する
func ToWorkerResponse(w *entity.Worker) WorkerResponse {
	caps := make([]CapabilityResponse, len(w.Capabilities))
	for i, c := range w.Capabilities {
		caps[i] = CapabilityResponse{
			ID:            c.ID,
			Type:          c.Type,
			Platforms:     c.Platforms,
			Tools:         c.Tools,
			Strengths:     c.Strengths,
			PortfolioURLs: c.PortfolioURLs,
		}
	}
	return WorkerResponse{
		ID:           w.ID,
		Name:         w.Name,
		Timezone:     w.Timezone,
		Status:       string(w.Status),
		Headline:     w.Headline,
		Capabilities: caps,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

// ToWorkerResponseList 編集者一覧を変換する
func ToWorkerResponseList(workers []*entity.Worker) []WorkerResponse {
	out := make([]WorkerResponse, len(workers))
	for i, w := range workers {
		out[i] = ToWorkerResponse(w)
	}
	return out
}
