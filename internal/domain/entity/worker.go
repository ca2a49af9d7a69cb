// Package entity ドメイン実体を定義する
package entity

import (
	"time"

	"github.com/lib/pq"
)

// WorkerStatus 編集者の稼働状態
type WorkerStatus string

const (
	WorkerStatusAvailable WorkerStatus = "available"
	WorkerStatusBusy      WorkerStatus = "busy"
	WorkerStatusOffline   WorkerStatus = "offline"
)

// ValidWorkerStatus 状態値の検証
func ValidWorkerStatus(s WorkerStatus) bool {
	switch s {
	case WorkerStatusAvailable, WorkerStatusBusy, WorkerStatusOffline:
		return true
	}
	return false
}

// 固定タグ語彙
var (
	WorkerPlatforms = []string{"TikTok", "Reels", "YouTube", "Ads"}
	WorkerTools     = []string{"Premiere", "CapCut", "DaVinci", "AfterEffects"}
	WorkerStrengths = []string{"Hook", "Captions", "Color", "BeatSync", "Thumbnail"}
	WorkerTimezones = []string{
		"Asia/Tokyo",
		"America/New_York",
		"America/Los_Angeles",
		"Europe/London",
		"Europe/Berlin",
		"Asia/Shanghai",
		"Asia/Singapore",
	}
)

// Capability 編集者の制作能力（現状は video_edit のみ）
type Capability struct {
	ID            string         `json:"id" gorm:"type:uuid;primaryKey"`
	WorkerID      string         `json:"worker_id" gorm:"type:uuid;index;not null"`
	Type          string         `json:"type" gorm:"type:varchar(32);not null;default:'video_edit'"`
	Platforms     pq.StringArray `json:"platforms" gorm:"type:text[]"`
	Tools         pq.StringArray `json:"tools" gorm:"type:text[]"`
	Strengths     pq.StringArray `json:"strengths" gorm:"type:text[]"`
	PortfolioURLs pq.StringArray `json:"portfolio_urls" gorm:"type:text[]"`
}

func (Capability) TableName() string {
	return "worker_capabilities"
}

// Worker フリーランス編集者
type Worker struct {
	ID           string       `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string       `json:"name" gorm:"type:varchar(128);not null"`
	Timezone     string       `json:"timezone" gorm:"type:varchar(64)"`
	Status       WorkerStatus `json:"status" gorm:"type:varchar(16);not null;default:'offline'"`
	Headline     string       `json:"headline" gorm:"type:text"`
	OwnerUserID  string       `json:"owner_user_id,omitempty" gorm:"type:varchar(64);index"`
	Capabilities []Capability `json:"capabilities" gorm:"foreignKey:WorkerID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Worker) TableName() string {
	return "workers"
}

// PrimaryCapability 最初の capability（未登録なら nil）
func (w *Worker) PrimaryCapability() *Capability {
	if len(w.Capabilities) == 0 {
		return nil
	}
	return &w.Capabilities[0]
}
