// Package brief ブリーフ作成会話のステートマシンを実装する。
// 固定のステップ表に沿って質問を出し、回答を Brief に蓄積し、
// KVStore 上の単一 JSON ブロブとして永続化・再開する。
package brief

import "boss-brief-api/internal/domain/entity"

// StepDef 質問票の 1 ステップ。実行時不変の静的設定。
type StepDef struct {
	// Key 回答を書き込む Brief フィールド
	Key string
	// Text AI の質問文
	Text string
	// Options 固定候補（nil なら自由入力ステップ）
	Options []entity.Option
	// Multi 複数選択（確定ボタンで回答）
	Multi bool
	// Input 自由テキスト入力ステップ
	Input bool
	// Custom 候補外の値を受け付けるモード（duration: 秒数 / target: 自由文）
	Custom entity.CustomInput
}

// 会話の定型文
const (
	greetingText = "こんにちは！boss.ai のブリーフ作成アシスタントです。\nいくつかの質問に答えるだけで、動画の制作ブリーフが完成します。"
	doneText     = "ブリーフが完成しました！\nこの内容をもとに、AIが最適な制作プランを設計します。"
	resetText    = "リセットしました。もう一度はじめましょう！"
)

// DefaultSteps 既定の質問スクリプト。
// エンジン側はステップ数や位置を決め打ちしない（先頭と末尾のみ前提）。
func DefaultSteps() []StepDef {
	return []StepDef{
		{
			Key:  "purpose",
			Text: "まず、動画の用途を教えてください。\nプラットフォームに合わせた構成を提案します。",
			Options: []entity.Option{
				{Label: "TikTok", Value: "TikTok"},
				{Label: "Reels", Value: "Reels"},
				{Label: "YouTube", Value: "YouTube"},
				{Label: "広告", Value: "広告"},
			},
		},
		{
			Key:    "duration",
			Custom: entity.CustomInputDuration,
			Text:   "動画の尺はどれくらいを想定していますか？",
			Options: []entity.Option{
				{Label: "30秒", Value: "30秒"},
				{Label: "45秒", Value: "45秒"},
				{Label: "60秒", Value: "60秒"},
			},
		},
		{
			Key:    "target",
			Custom: entity.CustomInputTarget,
			Text:   "ターゲットとなる視聴者を教えてください。\nコンテンツの方向性を決める大事な要素です。",
			Options: []entity.Option{
				{Label: "初心者", Value: "初心者"},
				{Label: "ビジネス層", Value: "ビジネス層"},
				{Label: "学生", Value: "学生"},
				{Label: "主婦", Value: "主婦"},
				{Label: "クリエイター", Value: "クリエイター"},
				{Label: "エンジニア", Value: "エンジニア"},
				{Label: "起業家", Value: "起業家"},
			},
		},
		{
			Key:   "tones",
			Multi: true,
			Text:  "動画のトーン（雰囲気）を選んでください。\n複数選択できます。選んだら「確定する」を押してください。",
			Options: []entity.Option{
				{Label: "Energetic", Value: "Energetic"},
				{Label: "Calm", Value: "Calm"},
				{Label: "Luxury", Value: "Luxury"},
				{Label: "Casual", Value: "Casual"},
			},
		},
		{
			Key:   "concept",
			Input: true,
			Text:  "動画のコンセプトやテーマを一言で教えてください。\n例：「忙しい人でも3分でわかるAI入門」",
		},
		{
			Key:   "details",
			Input: true,
			Text:  "最後に、参考URL・要望・注意点など伝えておきたいことがあれば教えてください。\n特になければ「なし」で大丈夫です。",
		},
	}
}
