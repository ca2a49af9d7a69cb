package brief

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"boss-brief-api/internal/domain/entity"
	"boss-brief-api/internal/domain/repository"
	apperrors "boss-brief-api/pkg/errors"
	"boss-brief-api/pkg/logger"
	"boss-brief-api/pkg/metrics"
)

// Snapshot 会話操作の結果としてハンドラへ返す読み取り専用ビュー。
// 内部状態のコピーなので呼び出し側で自由に使える。
type Snapshot struct {
	Conversation entity.BriefConversation
	PendingTones []entity.Tone
	Completeness int
}

// Conversation 1 ユーザー分の会話ランタイム。
// 永続状態（Brief・メッセージ・ステップカーソル・完了フラグ）は KVStore 上の
// 単一 JSON ブロブに保存し、確定前のトーン選択だけはメモリ上に持つ。
// 全操作は内部ミューテックスで直列化される。
type Conversation struct {
	mu     sync.Mutex
	key    string
	kv     repository.KVStore
	steps  []StepDef
	delay  Delayer
	typing TypingConfig
	newID  func() string

	// pending 確定前のトーン選択。永続化されない（再読込で消える）。
	pending []entity.Tone
	state   *entity.BriefConversation
	loaded  bool
}

// NewConversation 会話ランタイムを生成する。初回の Open で状態を読み込む。
func NewConversation(key string, kv repository.KVStore, steps []StepDef, delay Delayer, typing TypingConfig) *Conversation {
	return &Conversation{
		key:    key,
		kv:     kv,
		steps:  steps,
		delay:  delay,
		typing: typing,
		newID:  uuid.NewString,
	}
}

// Open 会話を開く。保存済み状態があれば再開（欠損プロンプトを補発）、
// なければ挨拶と最初の質問から新規に開始する。
func (c *Conversation) Open(ctx context.Context) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)
	return c.snapshot()
}

// PickSingle 単一選択プロンプトへの回答。value は候補の値。
func (c *Conversation) PickSingle(ctx context.Context, messageID, value string) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)

	msg, def, err := c.answerablePrompt(messageID)
	if err != nil {
		return c.snapshot(), err
	}
	if msg.Multi {
		return c.snapshot(), apperrors.New(apperrors.CodeInvalidParam, "multi-select prompt requires tone confirm")
	}
	opt := findOption(msg.Options, value)
	if opt == nil {
		return c.snapshot(), apperrors.New(apperrors.CodeInvalidParam, "unknown option value")
	}

	msg.Answered = true
	c.state.Append(entity.NewUserMessage(c.newID(), opt.Label))
	c.state.Brief.SetField(def.Key, opt.Value)
	c.persist(ctx)
	metrics.BriefAnswersTotal.WithLabelValues(def.Key).Inc()

	c.advance(ctx)
	return c.snapshot(), nil
}

// ToggleTone 確定前トーン選択の反転。永続化されず、状態遷移も起こさない。
func (c *Conversation) ToggleTone(ctx context.Context, messageID, value string) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)

	msg, _, err := c.answerablePrompt(messageID)
	if err != nil {
		return c.snapshot(), err
	}
	if !msg.Multi {
		return c.snapshot(), apperrors.New(apperrors.CodeInvalidParam, "not a multi-select prompt")
	}
	if findOption(msg.Options, value) == nil {
		return c.snapshot(), apperrors.New(apperrors.CodeInvalidParam, "unknown tone value")
	}

	tone := entity.Tone(value)
	for i, t := range c.pending {
		if t == tone {
			c.pending = append(c.pending[:i], c.pending[i+1:]...)
			return c.snapshot(), nil
		}
	}
	c.pending = append(c.pending, tone)
	return c.snapshot(), nil
}

// ConfirmTones 選択中トーンの確定。空選択はエラーで状態は変わらない。
func (c *Conversation) ConfirmTones(ctx context.Context, messageID string) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)

	msg, def, err := c.answerablePrompt(messageID)
	if err != nil {
		return c.snapshot(), err
	}
	if !msg.Multi {
		return c.snapshot(), apperrors.New(apperrors.CodeInvalidParam, "not a multi-select prompt")
	}
	if len(c.pending) == 0 {
		return c.snapshot(), apperrors.ErrEmptySelection
	}

	labels := make([]string, len(c.pending))
	tones := make([]entity.Tone, len(c.pending))
	for i, t := range c.pending {
		labels[i] = string(t)
		tones[i] = t
	}

	msg.Answered = true
	c.state.Append(entity.NewUserMessage(c.newID(), strings.Join(labels, " / ")))
	c.state.Brief.Tones = tones
	c.pending = nil
	c.persist(ctx)
	metrics.BriefAnswersTotal.WithLabelValues(def.Key).Inc()

	c.advance(ctx)
	return c.snapshot(), nil
}

// SubmitCustomDuration 秒数指定による尺の回答。「N秒」形式で記録する。
func (c *Conversation) SubmitCustomDuration(ctx context.Context, messageID string, seconds int) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)

	msg, def, err := c.answerablePrompt(messageID)
	if err != nil {
		return c.snapshot(), err
	}
	if msg.CustomInput != entity.CustomInputDuration {
		return c.snapshot(), apperrors.New(apperrors.CodeInvalidParam, "prompt does not accept a custom duration")
	}
	if seconds <= 0 {
		return c.snapshot(), apperrors.New(apperrors.CodeInvalidParam, "duration must be a positive number of seconds")
	}

	value := fmt.Sprintf("%d秒", seconds)
	msg.Answered = true
	c.state.Append(entity.NewUserMessage(c.newID(), value))
	c.state.Brief.SetField(def.Key, value)
	c.persist(ctx)
	metrics.BriefAnswersTotal.WithLabelValues(def.Key).Inc()

	c.advance(ctx)
	return c.snapshot(), nil
}

// SubmitCustomTarget 自由文によるターゲットの回答
func (c *Conversation) SubmitCustomTarget(ctx context.Context, messageID, text string) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)

	msg, def, err := c.answerablePrompt(messageID)
	if err != nil {
		return c.snapshot(), err
	}
	if msg.CustomInput != entity.CustomInputTarget {
		return c.snapshot(), apperrors.New(apperrors.CodeInvalidParam, "prompt does not accept a custom target")
	}
	v := strings.TrimSpace(text)
	if v == "" {
		return c.snapshot(), apperrors.New(apperrors.CodeInvalidParam, "target text is empty")
	}

	msg.Answered = true
	c.state.Append(entity.NewUserMessage(c.newID(), v))
	c.state.Brief.SetField(def.Key, v)
	c.persist(ctx)
	metrics.BriefAnswersTotal.WithLabelValues(def.Key).Inc()

	c.advance(ctx)
	return c.snapshot(), nil
}

// SubmitText 自由入力ステップ（concept / details）への回答
func (c *Conversation) SubmitText(ctx context.Context, text string) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)

	if c.state.Done || c.state.Step < 0 || c.state.Step >= len(c.steps) {
		return c.snapshot(), apperrors.ErrStepOutOfRange
	}
	def := &c.steps[c.state.Step]
	if !def.Input {
		return c.snapshot(), apperrors.New(apperrors.CodeInvalidParam, "current step is not a free-text step")
	}
	v := strings.TrimSpace(text)
	if v == "" {
		return c.snapshot(), apperrors.New(apperrors.CodeInvalidParam, "text is empty")
	}

	c.state.Append(entity.NewUserMessage(c.newID(), v))
	c.state.Brief.SetField(def.Key, v)
	c.persist(ctx)
	metrics.BriefAnswersTotal.WithLabelValues(def.Key).Inc()

	c.advance(ctx)
	return c.snapshot(), nil
}

// Reset 会話を初期化し、リセット通知と最初の質問から再スタートする
func (c *Conversation) Reset(ctx context.Context) Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)

	if err := c.kv.Remove(ctx, c.key); err != nil {
		logger.Warn(ctx, "ブリーフ会話の削除に失敗", "key", c.key, "error", err)
	}
	c.state = entity.NewBriefConversation()
	c.pending = nil
	c.state.Append(entity.NewAITextMessage(c.newID(), resetText))
	metrics.BriefConversationReset.Inc()

	c.advance(ctx)
	return c.snapshot()
}

// SaveAssets アセットフィールドの一括保存。全 URL が妥当なときだけ
// マージして永続化し、1 件でも不正ならフィールド別エラーを返して
// 何も変更しない。会話の進行状態には影響しない。
func (c *Conversation) SaveAssets(ctx context.Context, form entity.AssetFields) (Snapshot, map[string]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensureLoaded(ctx)

	form = normalizeAssets(form)
	if fieldErrs := ValidateAssets(form); len(fieldErrs) > 0 {
		return c.snapshot(), fieldErrs, apperrors.ErrAssetValidation
	}
	c.state.Brief.ApplyAssets(form)
	c.persist(ctx)
	return c.snapshot(), nil, nil
}

// ensureLoaded 初回アクセス時に保存済み状態を読み込む。呼び出し側がロック保持。
func (c *Conversation) ensureLoaded(ctx context.Context) {
	if c.loaded {
		return
	}
	c.loaded = true

	if raw, ok := c.kv.Load(ctx, c.key); ok {
		var st entity.BriefConversation
		if err := json.Unmarshal(raw, &st); err == nil {
			st.Normalize()
			c.state = &st
			c.repair(ctx)
			return
		}
		logger.Warn(ctx, "ブリーフ会話の復元に失敗、新規開始", "key", c.key)
	}

	c.state = entity.NewBriefConversation()
	c.state.Append(entity.NewAITextMessage(c.newID(), greetingText))
	metrics.BriefConversationStarted.Inc()
	c.advance(ctx)
}

// repair 再開時の修復。現在ステップの質問が保存前に落ちていれば補発し、
// 全ステップ回答済みなのに未完了なら完了処理をやり直す。冪等。
func (c *Conversation) repair(ctx context.Context) {
	if c.state.Done {
		return
	}
	if c.state.Step >= 0 && c.state.Step < len(c.steps) && !c.state.HasPromptForStep(c.state.Step) {
		c.state.Append(c.buildStepMessage(c.state.Step))
		c.persist(ctx)
		return
	}
	if c.state.Step >= len(c.steps) {
		c.complete(ctx)
	}
}

// advance 次のステップへ進む。打字演出の待機後に質問を追記して保存する。
// 最終ステップの先へ進むときは完了処理に入る。
func (c *Conversation) advance(ctx context.Context) {
	start := time.Now()
	next := c.state.Step + 1

	if next >= len(c.steps) {
		// 完了メッセージ追記前の状態を先に保存しておく。
		// 待機中に落ちても再開時の repair が完了処理をやり直せる。
		c.state.Step = next
		c.persist(ctx)
		c.complete(ctx)
		return
	}

	if err := c.delay.Wait(ctx, c.typing.stepDelay()); err != nil {
		logger.Debug(ctx, "打字演出の待機を中断", "key", c.key)
	}
	c.state.Append(c.buildStepMessage(next))
	c.state.Step = next
	c.persist(ctx)
	metrics.BriefStepDuration.WithLabelValues(c.steps[next].Key).Observe(time.Since(start).Seconds())
}

func (c *Conversation) complete(ctx context.Context) {
	if err := c.delay.Wait(ctx, c.typing.CompletionDelay); err != nil {
		logger.Debug(ctx, "打字演出の待機を中断", "key", c.key)
	}
	c.state.Append(entity.NewAITextMessage(c.newID(), doneText))
	c.state.Done = true
	c.persist(ctx)
	metrics.BriefConversationCompleted.Inc()
}

// buildStepMessage 指定ステップの質問メッセージを組み立てる
func (c *Conversation) buildStepMessage(stepIndex int) entity.Message {
	def := c.steps[stepIndex]
	if def.Options != nil {
		return entity.NewOptionsMessage(c.newID(), def.Text, def.Key, def.Multi, def.Options, def.Custom, stepIndex)
	}
	return entity.NewStepTextMessage(c.newID(), def.Text, stepIndex)
}

// answerablePrompt 回答対象プロンプトの取得と共通ガード。
// 現在ステップの未回答プロンプトでなければ状態を変えずエラーを返す。
func (c *Conversation) answerablePrompt(messageID string) (*entity.Message, *StepDef, error) {
	if c.state.Done || c.state.Step < 0 || c.state.Step >= len(c.steps) {
		return nil, nil, apperrors.ErrStepOutOfRange
	}
	msg := c.state.FindMessage(messageID)
	if msg == nil {
		return nil, nil, apperrors.ErrMessageNotFound
	}
	if !msg.IsOptionsPrompt() || !msg.ForStep(c.state.Step) {
		return nil, nil, apperrors.ErrStepOutOfRange
	}
	if msg.Answered {
		return nil, nil, apperrors.ErrAlreadyAnswered
	}
	return msg, &c.steps[c.state.Step], nil
}

// persist 現在状態を保存する。失敗してもフローは止めずログに残すだけ。
func (c *Conversation) persist(ctx context.Context) {
	if err := c.kv.Save(ctx, c.key, c.state); err != nil {
		logger.Warn(ctx, "ブリーフ会話の保存に失敗", "key", c.key, "error", err)
	}
}

// snapshot 内部状態の独立コピー。呼び出し側がロック保持。
func (c *Conversation) snapshot() Snapshot {
	st := *c.state
	st.Brief = c.state.Brief.Clone()
	st.Messages = make([]entity.Message, len(c.state.Messages))
	copy(st.Messages, c.state.Messages)

	pending := make([]entity.Tone, len(c.pending))
	copy(pending, c.pending)

	return Snapshot{
		Conversation: st,
		PendingTones: pending,
		Completeness: Completeness(st.Brief),
	}
}

func findOption(options []entity.Option, value string) *entity.Option {
	for i := range options {
		if options[i].Value == value {
			return &options[i]
		}
	}
	return nil
}
