// Package entity ドメイン実体を定義する
package entity

// Platform 動画の配信先プラットフォーム
type Platform string

const (
	PlatformTikTok  Platform = "TikTok"
	PlatformReels   Platform = "Reels"
	PlatformYouTube Platform = "YouTube"
	PlatformAd      Platform = "広告"
)

// Platforms 固定のプラットフォーム語彙
var Platforms = []Platform{PlatformTikTok, PlatformReels, PlatformYouTube, PlatformAd}

// Tone 動画のトーン（雰囲気）
type Tone string

const (
	ToneEnergetic Tone = "Energetic"
	ToneCalm      Tone = "Calm"
	ToneLuxury    Tone = "Luxury"
	ToneCasual    Tone = "Casual"
)

// Tones 固定のトーン語彙
var Tones = []Tone{ToneEnergetic, ToneCalm, ToneLuxury, ToneCasual}

// Brief 質問票への回答を集めた制作ブリーフ。
// 会話フローはフィールドを追加するだけで、途中で無効化することはない。
// アセット系 5 フィールドのみモーダル経由で随時上書きされる。
type Brief struct {
	Purpose  Platform `json:"purpose"`
	Duration string   `json:"duration"`
	Target   string   `json:"target"`
	Tones    []Tone   `json:"tones"`
	Concept  string   `json:"concept"`
	Details  string   `json:"details"`

	AssetsURL string `json:"assets_url"`
	BGMURL    string `json:"bgm_url"`
	LogoURL   string `json:"logo_url"`
	ThumbURL  string `json:"thumb_url"`
	FontNote  string `json:"font_note"`
}

// EmptyBrief 全フィールドが空の Brief を返す
func EmptyBrief() Brief {
	return Brief{Tones: []Tone{}}
}

// Clone 深いコピー（tones スライスは独立）
func (b Brief) Clone() Brief {
	out := b
	out.Tones = make([]Tone, len(b.Tones))
	copy(out.Tones, b.Tones)
	return out
}

// SetField ステップキーで単一値フィールドを書き込む。tones 以外のキーのみ対象。
func (b *Brief) SetField(key string, value string) bool {
	switch key {
	case "purpose":
		b.Purpose = Platform(value)
	case "duration":
		b.Duration = value
	case "target":
		b.Target = value
	case "concept":
		b.Concept = value
	case "details":
		b.Details = value
	default:
		return false
	}
	return true
}

// AssetFields アセットモーダルで編集される 5 フィールド
type AssetFields struct {
	AssetsURL string `json:"assets_url"`
	BGMURL    string `json:"bgm_url"`
	LogoURL   string `json:"logo_url"`
	ThumbURL  string `json:"thumb_url"`
	FontNote  string `json:"font_note"`
}

// ApplyAssets アセットフィールドを Brief にマージする（呼び出し側で検証済み）
func (b *Brief) ApplyAssets(a AssetFields) {
	b.AssetsURL = a.AssetsURL
	b.BGMURL = a.BGMURL
	b.LogoURL = a.LogoURL
	b.ThumbURL = a.ThumbURL
	b.FontNote = a.FontNote
}
