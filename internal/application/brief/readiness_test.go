package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"boss-brief-api/internal/domain/entity"
)

func briefWith(mutate func(*entity.Brief)) entity.Brief {
	b := entity.EmptyBrief()
	mutate(&b)
	return b
}

func TestCompleteness(t *testing.T) {
	assert.Equal(t, 0, Completeness(entity.EmptyBrief()))

	one := briefWith(func(b *entity.Brief) { b.Purpose = entity.PlatformTikTok })
	assert.Equal(t, 17, Completeness(one))

	three := briefWith(func(b *entity.Brief) {
		b.Purpose = entity.PlatformTikTok
		b.Duration = "30秒"
		b.Tones = []entity.Tone{entity.ToneCalm}
	})
	assert.Equal(t, 50, Completeness(three))

	full := briefWith(func(b *entity.Brief) {
		b.Purpose = entity.PlatformTikTok
		b.Duration = "30秒"
		b.Target = "学生"
		b.Tones = []entity.Tone{entity.ToneCalm}
		b.Concept = "c"
		b.Details = "d"
	})
	assert.Equal(t, 100, Completeness(full))

	// アセット URL は進捗率に数えない
	assets := briefWith(func(b *entity.Brief) { b.AssetsURL = "https://example.com/a" })
	assert.Equal(t, 0, Completeness(assets))
}

func TestCheckReadiness(t *testing.T) {
	r := CheckReadiness(entity.EmptyBrief())
	assert.False(t, r.Ready)
	assert.Equal(t, 6, r.Total)
	assert.Equal(t, 0, r.Filled)
	assert.Equal(t, []string{"用途", "尺", "ターゲット", "トーン", "コンセプト", "素材URL"}, r.Missing)

	// 備考は不要、素材 URL は必須
	b := briefWith(func(b *entity.Brief) {
		b.Purpose = entity.PlatformReels
		b.Duration = "45秒"
		b.Target = "ビジネス層"
		b.Tones = []entity.Tone{entity.ToneLuxury}
		b.Concept = "高級感のある商品紹介"
	})
	r = CheckReadiness(b)
	assert.False(t, r.Ready)
	assert.Equal(t, []string{"素材URL"}, r.Missing)

	b.AssetsURL = "https://example.com/assets.zip"
	r = CheckReadiness(b)
	assert.True(t, r.Ready)
	assert.Equal(t, 6, r.Filled)
	assert.Empty(t, r.Missing)
}

func TestComputeStatus(t *testing.T) {
	empty := entity.EmptyBrief()
	ready := briefWith(func(b *entity.Brief) {
		b.Purpose = entity.PlatformYouTube
		b.Duration = "60秒"
		b.Target = "エンジニア"
		b.Tones = []entity.Tone{entity.ToneCasual}
		b.Concept = "c"
		b.AssetsURL = "https://example.com/a"
	})

	assert.Equal(t, entity.JobStatusDraft, InitialStatus(empty))
	assert.Equal(t, entity.JobStatusReady, InitialStatus(ready))

	// draft と ready の間は往復する
	assert.Equal(t, entity.JobStatusReady, ComputeStatus(ready, entity.JobStatusDraft))
	assert.Equal(t, entity.JobStatusDraft, ComputeStatus(empty, entity.JobStatusReady))

	// 着手後は巻き戻さない
	assert.Equal(t, entity.JobStatusInProgress, ComputeStatus(empty, entity.JobStatusInProgress))
	assert.Equal(t, entity.JobStatusReview, ComputeStatus(empty, entity.JobStatusReview))
	assert.Equal(t, entity.JobStatusDone, ComputeStatus(ready, entity.JobStatusDone))
}

func TestValidateAssets(t *testing.T) {
	// 空は許容（未入力のまま保存できる）
	assert.Empty(t, ValidateAssets(entity.AssetFields{}))

	errs := ValidateAssets(entity.AssetFields{
		AssetsURL: "https://example.com/a",
		BGMURL:    "example.com/bgm.mp3",
		LogoURL:   "ftp://example.com/logo.png",
		FontNote:  "任意の自由文",
	})
	assert.Len(t, errs, 2)
	assert.Contains(t, errs, "bgm_url")
	assert.Contains(t, errs, "logo_url")
}
