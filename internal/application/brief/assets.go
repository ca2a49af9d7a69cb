package brief

import (
	"regexp"
	"strings"

	"boss-brief-api/internal/domain/entity"
)

// urlRe モーダルで受け付ける URL の形式。スキーム必須。
var urlRe = regexp.MustCompile(`^https?://.+`)

const assetURLError = "http:// または https:// で始まるURLを入力してください"

// ValidateAssets アセット 4 URL を個別に検証し、フィールド名→エラー文の
// マップを返す。フォント指定は自由文なので検証しない。
// マップが空のときだけマージしてよい（全件一括、部分適用なし）。
func ValidateAssets(a entity.AssetFields) map[string]string {
	errs := map[string]string{}
	for field, value := range map[string]string{
		"assets_url": a.AssetsURL,
		"bgm_url":    a.BGMURL,
		"logo_url":   a.LogoURL,
		"thumb_url":  a.ThumbURL,
	} {
		v := strings.TrimSpace(value)
		if v != "" && !urlRe.MatchString(v) {
			errs[field] = assetURLError
		}
	}
	return errs
}

// normalizeAssets 前後空白を落とした正規化コピー
func normalizeAssets(a entity.AssetFields) entity.AssetFields {
	return entity.AssetFields{
		AssetsURL: strings.TrimSpace(a.AssetsURL),
		BGMURL:    strings.TrimSpace(a.BGMURL),
		LogoURL:   strings.TrimSpace(a.LogoURL),
		ThumbURL:  strings.TrimSpace(a.ThumbURL),
		FontNote:  strings.TrimSpace(a.FontNote),
	}
}
