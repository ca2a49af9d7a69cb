package worker

import (
	"math"
	"strings"

	"boss-brief-api/internal/domain/entity"
)

// ReadinessResult 編集者プロフィールの充足状況
type ReadinessResult struct {
	Pct     int      `json:"pct"`
	Missing []string `json:"missing"`
}

// requiredField 受注に出られる最低限の項目
type requiredField struct {
	label string
	check func(w *entity.Worker) bool
}

var requiredFields = []requiredField{
	{label: "Name", check: func(w *entity.Worker) bool { return strings.TrimSpace(w.Name) != "" }},
	{label: "Status", check: func(w *entity.Worker) bool { return w.Status != "" }},
	{label: "Platforms", check: func(w *entity.Worker) bool {
		c := w.PrimaryCapability()
		return c != nil && len(c.Platforms) > 0
	}},
	{label: "Tools", check: func(w *entity.Worker) bool {
		c := w.PrimaryCapability()
		return c != nil && len(c.Tools) > 0
	}},
	{label: "Strengths", check: func(w *entity.Worker) bool {
		c := w.PrimaryCapability()
		return c != nil && len(c.Strengths) > 0
	}},
}

// CheckReadiness プロフィールの充足率と不足項目を返す
func CheckReadiness(w *entity.Worker) ReadinessResult {
	result := ReadinessResult{Missing: []string{}}
	for _, f := range requiredFields {
		if !f.check(w) {
			result.Missing = append(result.Missing, f.label)
		}
	}
	filled := len(requiredFields) - len(result.Missing)
	result.Pct = int(math.Round(float64(filled) / float64(len(requiredFields)) * 100))
	return result
}
