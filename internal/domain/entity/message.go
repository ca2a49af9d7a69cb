// Package entity ドメイン実体を定義する
package entity

// MessageRole メッセージの話者
type MessageRole string

const (
	MessageRoleAI   MessageRole = "ai"
	MessageRoleUser MessageRole = "user"
)

// MessageType AI メッセージの種別
type MessageType string

const (
	MessageTypeText    MessageType = "text"
	MessageTypeOptions MessageType = "options"
)

// CustomInput 選択肢メッセージに付くカスタム入力モード
type CustomInput string

const (
	CustomInputNone     CustomInput = ""
	CustomInputDuration CustomInput = "duration"
	CustomInputTarget   CustomInput = "target"
)

// Option 選択肢メッセージの候補 1 件
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Message 会話スレッドの 1 レコード（タグ付き合併型）。
// 変種は 3 つ。AI テキスト（role=ai,type=text）、AI 選択肢（role=ai,type=options）、
// ユーザー返信（role=user）。Answered フラグ以外は生成後に変更しない。
// 生成はコンストラクタ経由のみ。選択肢付きユーザーメッセージのような不正な組み合わせを防ぐ。
type Message struct {
	ID   string      `json:"id"`
	Role MessageRole `json:"role"`
	Type MessageType `json:"type,omitempty"`
	Text string      `json:"text"`

	// 以下は選択肢メッセージのみ使用
	Key         string      `json:"key,omitempty"`
	Multi       bool        `json:"multi,omitempty"`
	Answered    bool        `json:"answered,omitempty"`
	Options     []Option    `json:"options,omitempty"`
	CustomInput CustomInput `json:"custom_input,omitempty"`

	// StepIndex ステップ質問メッセージが持つステップ添字。再開時の補発判定に使う。
	// 挨拶・完了・リセット通知などステップ外のメッセージでは nil。
	StepIndex *int `json:"step_index,omitempty"`
}

// NewAITextMessage 入力を求めない AI のお知らせテキストを生成する
func NewAITextMessage(id, text string) Message {
	return Message{
		ID:   id,
		Role: MessageRoleAI,
		Type: MessageTypeText,
		Text: text,
	}
}

// NewStepTextMessage 特定ステップに紐付く AI テキスト質問を生成する（自由入力ステップ用）
func NewStepTextMessage(id, text string, stepIndex int) Message {
	idx := stepIndex
	return Message{
		ID:        id,
		Role:      MessageRoleAI,
		Type:      MessageTypeText,
		Text:      text,
		StepIndex: &idx,
	}
}

// NewOptionsMessage 選択肢付きの AI 質問メッセージを生成する
func NewOptionsMessage(id, text, key string, multi bool, options []Option, custom CustomInput, stepIndex int) Message {
	idx := stepIndex
	return Message{
		ID:          id,
		Role:        MessageRoleAI,
		Type:        MessageTypeOptions,
		Text:        text,
		Key:         key,
		Multi:       multi,
		Answered:    false,
		Options:     options,
		CustomInput: custom,
		StepIndex:   &idx,
	}
}

// NewUserMessage ユーザー返信メッセージを生成する
func NewUserMessage(id, text string) Message {
	return Message{
		ID:   id,
		Role: MessageRoleUser,
		Text: text,
	}
}

// IsOptionsPrompt 選択肢質問メッセージかどうか
func (m *Message) IsOptionsPrompt() bool {
	return m.Role == MessageRoleAI && m.Type == MessageTypeOptions
}

// ForStep 指定ステップの質問メッセージかどうか
func (m *Message) ForStep(stepIndex int) bool {
	return m.Role == MessageRoleAI && m.StepIndex != nil && *m.StepIndex == stepIndex
}
