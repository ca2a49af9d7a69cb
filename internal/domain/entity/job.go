// Package entity ドメイン実体を定義する
package entity

import (
	"encoding/json"
	"time"
)

// JobStatus 案件の状態
type JobStatus string

const (
	JobStatusDraft      JobStatus = "draft"
	JobStatusReady      JobStatus = "ready"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusReview     JobStatus = "review"
	JobStatusDone       JobStatus = "done"
)

// ValidJobStatus 状態値の検証
func ValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusDraft, JobStatusReady, JobStatusInProgress, JobStatusReview, JobStatusDone:
		return true
	}
	return false
}

// Sticky 着手後の状態かどうか。これらは Brief の再計算で巻き戻さない。
func (s JobStatus) Sticky() bool {
	return s == JobStatusInProgress || s == JobStatusReview || s == JobStatusDone
}

// JobRequirements 案件の受注要件
type JobRequirements struct {
	AssetsRequired bool `json:"assets_required"`
}

// Job 完成した Brief から起こされる制作案件
type Job struct {
	ID           string          `json:"id" gorm:"type:uuid;primaryKey"`
	OwnerUserID  string          `json:"owner_user_id" gorm:"type:varchar(64);index;not null"`
	Status       JobStatus       `json:"status" gorm:"type:varchar(16);not null;default:'draft'"`
	Brief        json.RawMessage `json:"brief" gorm:"type:jsonb;not null"`
	Requirements json.RawMessage `json:"requirements" gorm:"type:jsonb;not null"`
	CreatedAt    time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Job) TableName() string {
	return "jobs"
}

// NewJob 完成した Brief から案件を起こす。初期状態は呼び出し側が受注判定から決める。
func NewJob(id, ownerUserID string, status JobStatus, brief Brief) (*Job, error) {
	briefJSON, err := json.Marshal(brief)
	if err != nil {
		return nil, err
	}
	reqJSON, err := json.Marshal(JobRequirements{AssetsRequired: true})
	if err != nil {
		return nil, err
	}
	now := time.Now()
	return &Job{
		ID:           id,
		OwnerUserID:  ownerUserID,
		Status:       status,
		Brief:        briefJSON,
		Requirements: reqJSON,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// DecodeBrief 埋め込まれた Brief をデコードする
func (j *Job) DecodeBrief() (Brief, error) {
	b := EmptyBrief()
	if len(j.Brief) == 0 {
		return b, nil
	}
	if err := json.Unmarshal(j.Brief, &b); err != nil {
		return EmptyBrief(), err
	}
	if b.Tones == nil {
		b.Tones = []Tone{}
	}
	return b, nil
}

// SetBrief Brief を再エンコードして書き込む
func (j *Job) SetBrief(b Brief) error {
	data, err := json.Marshal(b)
	if err != nil {
		return err
	}
	j.Brief = data
	return nil
}
