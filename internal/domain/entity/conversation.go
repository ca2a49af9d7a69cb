// Package entity ドメイン実体を定義する
package entity

// BriefConversation ブリーフ作成会話の永続化集約。
// 1 ユーザーにつき 1 つだけ存在し、固定キーの JSON ブロブとして保存される。
// Messages は追記専用：エンジンは Answered フラグ以外を書き換えない。
type BriefConversation struct {
	Brief    Brief     `json:"brief"`
	Messages []Message `json:"messages"`
	// Step ステップカーソル。-1 は最初のステップの前、len(steps) は全ステップ通過後
	Step int  `json:"step"`
	Done bool `json:"done"`
}

// NewBriefConversation 空の会話を生成する（初回アクセス用）
func NewBriefConversation() *BriefConversation {
	return &BriefConversation{
		Brief:    EmptyBrief(),
		Messages: []Message{},
		Step:     -1,
		Done:     false,
	}
}

// Normalize 復元後に欠けうるゼロ値を補う（旧データ互換）
func (c *BriefConversation) Normalize() {
	if c.Brief.Tones == nil {
		c.Brief.Tones = []Tone{}
	}
	if c.Messages == nil {
		c.Messages = []Message{}
	}
}

// FindMessage ID でメッセージを探す。見つからなければ nil
func (c *BriefConversation) FindMessage(id string) *Message {
	for i := range c.Messages {
		if c.Messages[i].ID == id {
			return &c.Messages[i]
		}
	}
	return nil
}

// HasPromptForStep 指定ステップの質問メッセージが既にあるか（補発判定用）
func (c *BriefConversation) HasPromptForStep(stepIndex int) bool {
	for i := range c.Messages {
		if c.Messages[i].ForStep(stepIndex) {
			return true
		}
	}
	return false
}

// Append メッセージを 1 件追記する
func (c *BriefConversation) Append(msg Message) {
	c.Messages = append(c.Messages, msg)
}
