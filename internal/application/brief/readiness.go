package brief

import (
	"math"

	"boss-brief-api/internal/domain/entity"
)

// Completeness 会話パネルに出す進捗率。
// 追跡対象は purpose / duration / target / tones / concept / details の 6 項目。
// Brief は追記専用なので、この値は会話中に減少しない。
func Completeness(b entity.Brief) int {
	n := 0
	if b.Purpose != "" {
		n++
	}
	if b.Duration != "" {
		n++
	}
	if b.Target != "" {
		n++
	}
	if len(b.Tones) > 0 {
		n++
	}
	if b.Concept != "" {
		n++
	}
	if b.Details != "" {
		n++
	}
	return int(math.Round(float64(n) / 6 * 100))
}

// ReadinessResult 受注可否の判定結果
type ReadinessResult struct {
	Ready   bool     `json:"ready"`
	Filled  int      `json:"filled"`
	Total   int      `json:"total"`
	Missing []string `json:"missing"`
}

// requiredField 受注に必要な項目。details ではなく素材 URL が必須になる点が
// Completeness と異なる（発注には素材が要るが備考は任意）。
type requiredField struct {
	label string
	check func(b entity.Brief) bool
}

var requiredFields = []requiredField{
	{label: "用途", check: func(b entity.Brief) bool { return b.Purpose != "" }},
	{label: "尺", check: func(b entity.Brief) bool { return b.Duration != "" }},
	{label: "ターゲット", check: func(b entity.Brief) bool { return b.Target != "" }},
	{label: "トーン", check: func(b entity.Brief) bool { return len(b.Tones) > 0 }},
	{label: "コンセプト", check: func(b entity.Brief) bool { return b.Concept != "" }},
	{label: "素材URL", check: func(b entity.Brief) bool { return b.AssetsURL != "" }},
}

// CheckReadiness 案件化に必要な項目の充足状況を返す
func CheckReadiness(b entity.Brief) ReadinessResult {
	result := ReadinessResult{
		Total:   len(requiredFields),
		Missing: []string{},
	}
	for _, f := range requiredFields {
		if f.check(b) {
			result.Filled++
		} else {
			result.Missing = append(result.Missing, f.label)
		}
	}
	result.Ready = len(result.Missing) == 0
	return result
}

// ComputeStatus 案件状態の導出。着手後の状態は巻き戻さない。
func ComputeStatus(b entity.Brief, current entity.JobStatus) entity.JobStatus {
	if current.Sticky() {
		return current
	}
	if CheckReadiness(b).Ready {
		return entity.JobStatusReady
	}
	return entity.JobStatusDraft
}

// InitialStatus 新規案件の初期状態
func InitialStatus(b entity.Brief) entity.JobStatus {
	if CheckReadiness(b).Ready {
		return entity.JobStatusReady
	}
	return entity.JobStatusDraft
}
