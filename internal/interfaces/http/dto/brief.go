// Package dto HTTP 層のデータ転送オブジェクト
package dto

import (
	"boss-brief-api/internal/application/brief"
	"boss-brief-api/internal/domain/entity"
)

// AnswerSingleRequest 単一選択ステップへの回答
type AnswerSingleRequest struct {
	MessageID string `json:"message_id" binding:"required"`
	Value     string `json:"value" binding:"required"`
}

// ToneToggleRequest トーン候補の選択／解除
type ToneToggleRequest struct {
	MessageID string `json:"message_id" binding:"required"`
	Value     string `json:"value" binding:"required"`
}

// ToneConfirmRequest 選択中トーンの確定
type ToneConfirmRequest struct {
	MessageID string `json:"message_id" binding:"required"`
}

// CustomDurationRequest 尺のカスタム入力（秒数）
type CustomDurationRequest struct {
	MessageID string `json:"message_id" binding:"required"`
	Seconds   int    `json:"seconds" binding:"required,gt=0"`
}

// CustomTargetRequest ターゲットのカスタム入力
type CustomTargetRequest struct {
	MessageID string `json:"message_id" binding:"required"`
	Text      string `json:"text" binding:"required"`
}

// AnswerTextRequest 自由入力ステップへの回答
type AnswerTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// AssetsRequest アセットモーダルの保存内容。空欄は未設定のまま保存される
type AssetsRequest struct {
	AssetsURL string `json:"assets_url"`
	BGMURL    string `json:"bgm_url"`
	LogoURL   string `json:"logo_url"`
	ThumbURL  string `json:"thumb_url"`
	FontNote  string `json:"font_note"`
}

// ToAssetFields ドメイン実体へ変換する
func (r *AssetsRequest) ToAssetFields() entity.AssetFields {
	return entity.AssetFields{
		AssetsURL: r.AssetsURL,
		BGMURL:    r.BGMURL,
		LogoURL:   r.LogoURL,
		ThumbURL:  r.ThumbURL,
		FontNote:  r.FontNote,
	}
}

// OptionResponse 選択肢
type OptionResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// MessageResponse 会話スレッドの 1 レコード
type MessageResponse struct {
	ID          string           `json:"id"`
	Role        string           `json:"role"`
	Type        string           `json:"type,omitempty"`
	Text        string           `json:"text"`
	Key         string           `json:"key,omitempty"`
	Multi       bool             `json:"multi,omitempty"`
	Answered    bool             `json:"answered,omitempty"`
	Options     []OptionResponse `json:"options,omitempty"`
	CustomInput string           `json:"custom_input,omitempty"`
	StepIndex   *int             `json:"step_index,omitempty"`
}

// BriefResponse 作成中のブリーフ
type BriefResponse struct {
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

// ReadinessResponse 受注可否の判定結果
type ReadinessResponse struct {
	Ready   bool     `json:"ready"`
	Filled  int      `json:"filled"`
	Total   int      `json:"total"`
	Missing []string `json:"missing"`
}

// ConversationResponse 会話の完全なスナップショット。
// Typing は常に false：打字演出の待機はリクエスト内で消化済み。
type ConversationResponse struct {
	Messages     []MessageResponse `json:"messages"`
	Brief        BriefResponse     `json:"brief"`
	Step         int               `json:"step"`
	Done         bool              `json:"done"`
	Typing       bool              `json:"typing"`
	Completeness int               `json:"completeness"`
	PendingTones []string          `json:"pending_tones"`
	Readiness    ReadinessResponse `json:"readiness"`
}

// ToBriefResponse Brief 実体を変換する
func ToBriefResponse(b entity.Brief) BriefResponse {
	tones := make([]string, len(b.Tones))
	for i, t := range b.Tones {
		tones[i] = string(t)
	}
	return BriefResponse{
		Purpose:   string(b.Purpose),
		Duration:  b.Duration,
		Target:    b.Target,
		Tones:     tones,
		Concept:   b.Concept,
		Details:   b.Details,
		AssetsURL: b.AssetsURL,
		BGMURL:    b.BGMURL,
		LogoURL:   b.LogoURL,
		ThumbURL:  b.ThumbURL,
		FontNote:  b.FontNote,
	}
}

// ToMessageResponse メッセージ実体を変換する
func ToMessageResponse(m entity.Message) MessageResponse {
	var options []OptionResponse
	if m.Options != nil {
		options = make([]OptionResponse, len(m.Options))
		for i, o := range m.Options {
			options[i] = OptionResponse{Label: o.Label, Value: o.Value}
		}
	}
	return MessageResponse{
		ID:          m.ID,
		Role:        string(m.Role),
		Type:        string(m.Type),
		Text:        m.Text,
		Key:         m.Key,
		Multi:       m.Multi,
		Answered:    m.Answered,
		Options:     options,
		CustomInput: string(m.CustomInput),
		StepIndex:   m.StepIndex,
	}
}

// ToConversationResponse 会話スナップショットを変換する
func ToConversationResponse(snap brief.Snapshot) ConversationResponse {
	messages := make([]MessageResponse, len(snap.Conversation.Messages))
	for i, m := range snap.Conversation.Messages {
		messages[i] = ToMessageResponse(m)
	}
	pending := make([]string, len(snap.PendingTones))
	for i, t := range snap.PendingTones {
		pending[i] = string(t)
	}
	readiness := brief.CheckReadiness(snap.Conversation.Brief)
	return ConversationResponse{
		Messages:     messages,
		Brief:        ToBriefResponse(snap.Conversation.Brief),
		Step:         snap.Conversation.Step,
		Done:         snap.Conversation.Done,
		Completeness: snap.Completeness,
		PendingTones: pending,
		Readiness: ReadinessResponse{
			Ready:   readiness.Ready,
			Filled:  readiness.Filled,
			Total:   readiness.Total,
			Missing: readiness.Missing,
		},
	}
}
