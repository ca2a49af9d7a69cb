package brief

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boss-brief-api/internal/domain/entity"
	"boss-brief-api/internal/domain/repository"
	"boss-brief-api/internal/infrastructure/persistence/memory"
	apperrors "boss-brief-api/pkg/errors"
)

const testKey = "brief:u1"

func newTestConversation(kv repository.KVStore) *Conversation {
	return NewConversation(testKey, kv, DefaultSteps(), NopDelayer{}, DefaultTypingConfig())
}

// currentPrompt 現在ステップの質問メッセージを取り出す
func currentPrompt(t *testing.T, snap Snapshot) entity.Message {
	t.Helper()
	step := snap.Conversation.Step
	for _, m := range snap.Conversation.Messages {
		if m.ForStep(step) {
			return m
		}
	}
	t.Fatalf("no prompt for step %d", step)
	return entity.Message{}
}

func lastMessage(snap Snapshot) entity.Message {
	return snap.Conversation.Messages[len(snap.Conversation.Messages)-1]
}

func TestOpenFreshStart(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	c := newTestConversation(kv)

	snap := c.Open(ctx)

	require.Len(t, snap.Conversation.Messages, 2)
	assert.Equal(t, greetingText, snap.Conversation.Messages[0].Text)
	assert.Equal(t, 0, snap.Conversation.Step)
	assert.False(t, snap.Conversation.Done)
	assert.Equal(t, 0, snap.Completeness)

	prompt := currentPrompt(t, snap)
	assert.Equal(t, "purpose", prompt.Key)
	assert.Len(t, prompt.Options, 4)

	// 初回 Open の時点で保存済み
	_, ok := kv.Load(ctx, testKey)
	assert.True(t, ok)
}

func TestFullScenario(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	c := newTestConversation(kv)

	snap := c.Open(ctx)

	// 用途
	snap, err := c.PickSingle(ctx, currentPrompt(t, snap).ID, "TikTok")
	require.NoError(t, err)
	assert.Equal(t, 1, snap.Conversation.Step)

	// 尺
	snap, err = c.PickSingle(ctx, currentPrompt(t, snap).ID, "30秒")
	require.NoError(t, err)

	// ターゲット
	snap, err = c.PickSingle(ctx, currentPrompt(t, snap).ID, "学生")
	require.NoError(t, err)

	// トーン（複数選択）
	tonePrompt := currentPrompt(t, snap)
	snap, err = c.ToggleTone(ctx, tonePrompt.ID, "Energetic")
	require.NoError(t, err)
	snap, err = c.ToggleTone(ctx, tonePrompt.ID, "Casual")
	require.NoError(t, err)
	assert.Equal(t, []entity.Tone{entity.ToneEnergetic, entity.ToneCasual}, snap.PendingTones)

	snap, err = c.ConfirmTones(ctx, tonePrompt.ID)
	require.NoError(t, err)
	assert.Empty(t, snap.PendingTones)

	// コンセプト・備考
	snap, err = c.SubmitText(ctx, "テスト概要")
	require.NoError(t, err)
	snap, err = c.SubmitText(ctx, "なし")
	require.NoError(t, err)

	assert.True(t, snap.Conversation.Done)
	assert.Equal(t, len(DefaultSteps()), snap.Conversation.Step)
	assert.Equal(t, 100, snap.Completeness)
	assert.Equal(t, doneText, lastMessage(snap).Text)

	b := snap.Conversation.Brief
	assert.Equal(t, entity.PlatformTikTok, b.Purpose)
	assert.Equal(t, "30秒", b.Duration)
	assert.Equal(t, "学生", b.Target)
	assert.Equal(t, []entity.Tone{entity.ToneEnergetic, entity.ToneCasual}, b.Tones)
	assert.Equal(t, "テスト概要", b.Concept)
	assert.Equal(t, "なし", b.Details)

	// トーン確定のエコーは " / " 区切り
	var echo string
	for _, m := range snap.Conversation.Messages {
		if m.Role == entity.MessageRoleUser && m.Text == "Energetic / Casual" {
			echo = m.Text
		}
	}
	assert.Equal(t, "Energetic / Casual", echo)

	// 素材 URL が未入力なので受注判定はまだ揃わない
	readiness := CheckReadiness(b)
	assert.False(t, readiness.Ready)
	assert.Equal(t, []string{"素材URL"}, readiness.Missing)
}

func TestResumeRoundTripStable(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	c := newTestConversation(kv)

	snap := c.Open(ctx)
	snap, err := c.PickSingle(ctx, currentPrompt(t, snap).ID, "TikTok")
	require.NoError(t, err)
	snap, err = c.PickSingle(ctx, currentPrompt(t, snap).ID, "30秒")
	require.NoError(t, err)

	// 保存済み状態を別ランタイムで読み直す
	first := newTestConversation(kv).Open(ctx).Conversation

	// 手を加えず保存し直しても、次の読み込み結果は完全に一致する
	require.NoError(t, kv.Save(ctx, testKey, first))
	second := newTestConversation(kv).Open(ctx).Conversation

	require.Equal(t, first, second)
	assert.Equal(t, 2, second.Step)
	assert.False(t, second.Done)
}

func TestResumeRepairsMissingPrompt(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()

	// step 2 まで進んだが step 2 の質問が保存前に失われた状態
	st := entity.NewBriefConversation()
	st.Brief.Purpose = entity.PlatformReels
	st.Brief.Duration = "30秒"
	st.Append(entity.NewAITextMessage("m1", greetingText))
	st.Step = 2
	require.NoError(t, kv.Save(ctx, testKey, st))

	snap := newTestConversation(kv).Open(ctx)
	prompt := currentPrompt(t, snap)
	assert.Equal(t, "target", prompt.Key)

	// 冪等：別のランタイムで再度開いても補発は増えない
	snap = newTestConversation(kv).Open(ctx)
	count := 0
	for _, m := range snap.Conversation.Messages {
		if m.ForStep(2) {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestResumeFinishesInterruptedCompletion(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()

	// 完了メッセージ追記前に切れた状態（step は末尾超え、done は false）
	st := entity.NewBriefConversation()
	st.Step = len(DefaultSteps())
	require.NoError(t, kv.Save(ctx, testKey, st))

	snap := newTestConversation(kv).Open(ctx)
	assert.True(t, snap.Conversation.Done)
	assert.Equal(t, doneText, lastMessage(snap).Text)

	// 再読込しても完了メッセージは増えない
	snap = newTestConversation(kv).Open(ctx)
	count := 0
	for _, m := range snap.Conversation.Messages {
		if m.Text == doneText {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCorruptStoredStateStartsFresh(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	kv.PutRaw(testKey, []byte(`{"brief": [broken`))

	snap := newTestConversation(kv).Open(ctx)
	assert.Equal(t, 0, snap.Conversation.Step)
	assert.Equal(t, greetingText, snap.Conversation.Messages[0].Text)
}

func TestDoubleAnswerRejected(t *testing.T) {
	ctx := context.Background()
	c := newTestConversation(memory.NewKV())

	snap := c.Open(ctx)
	promptID := currentPrompt(t, snap).ID

	snap, err := c.PickSingle(ctx, promptID, "TikTok")
	require.NoError(t, err)
	before := len(snap.Conversation.Messages)

	snap, err = c.PickSingle(ctx, promptID, "Reels")
	require.ErrorIs(t, err, apperrors.ErrAlreadyAnswered)
	assert.Len(t, snap.Conversation.Messages, before)
	assert.Equal(t, entity.PlatformTikTok, snap.Conversation.Brief.Purpose)
}

func TestUnknownMessageAndOptionRejected(t *testing.T) {
	ctx := context.Background()
	c := newTestConversation(memory.NewKV())
	snap := c.Open(ctx)

	_, err := c.PickSingle(ctx, "no-such-id", "TikTok")
	require.ErrorIs(t, err, apperrors.ErrMessageNotFound)

	snap, err = c.PickSingle(ctx, currentPrompt(t, snap).ID, "Instagram")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidParam, appErr.Code)
	assert.Equal(t, 0, snap.Conversation.Step)
}

func TestConfirmRequiresSelection(t *testing.T) {
	ctx := context.Background()
	c := newTestConversation(memory.NewKV())
	snap := c.Open(ctx)

	snap, err := c.PickSingle(ctx, currentPrompt(t, snap).ID, "TikTok")
	require.NoError(t, err)
	snap, err = c.PickSingle(ctx, currentPrompt(t, snap).ID, "60秒")
	require.NoError(t, err)
	snap, err = c.PickSingle(ctx, currentPrompt(t, snap).ID, "初心者")
	require.NoError(t, err)

	tonePrompt := currentPrompt(t, snap)
	before := len(snap.Conversation.Messages)
	snap, err = c.ConfirmTones(ctx, tonePrompt.ID)
	require.ErrorIs(t, err, apperrors.ErrEmptySelection)
	assert.Equal(t, 3, snap.Conversation.Step)
	assert.Len(t, snap.Conversation.Messages, before)

	// 同じトーンを二度押すと選択が外れる
	snap, err = c.ToggleTone(ctx, tonePrompt.ID, "Calm")
	require.NoError(t, err)
	snap, err = c.ToggleTone(ctx, tonePrompt.ID, "Calm")
	require.NoError(t, err)
	assert.Empty(t, snap.PendingTones)

	snap, err = c.ToggleTone(ctx, tonePrompt.ID, "Luxury")
	require.NoError(t, err)
	snap, err = c.ConfirmTones(ctx, tonePrompt.ID)
	require.NoError(t, err)
	assert.Equal(t, []entity.Tone{entity.ToneLuxury}, snap.Conversation.Brief.Tones)
	assert.Equal(t, 4, snap.Conversation.Step)
}

func TestPendingTonesNotPersisted(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	c := newTestConversation(kv)

	snap := c.Open(ctx)
	snap, err := c.PickSingle(ctx, currentPrompt(t, snap).ID, "広告")
	require.NoError(t, err)
	snap, err = c.PickSingle(ctx, currentPrompt(t, snap).ID, "45秒")
	require.NoError(t, err)
	snap, err = c.PickSingle(ctx, currentPrompt(t, snap).ID, "主婦")
	require.NoError(t, err)

	snap, err = c.ToggleTone(ctx, currentPrompt(t, snap).ID, "Calm")
	require.NoError(t, err)
	require.NotEmpty(t, snap.PendingTones)

	// 別ランタイムで再開すると選択中トーンは消えている
	snap = newTestConversation(kv).Open(ctx)
	assert.Empty(t, snap.PendingTones)
	assert.Empty(t, snap.Conversation.Brief.Tones)
	assert.Equal(t, 3, snap.Conversation.Step)
}

func TestCustomDuration(t *testing.T) {
	ctx := context.Background()
	c := newTestConversation(memory.NewKV())
	snap := c.Open(ctx)

	snap, err := c.PickSingle(ctx, currentPrompt(t, snap).ID, "YouTube")
	require.NoError(t, err)

	durationPrompt := currentPrompt(t, snap)
	assert.Equal(t, entity.CustomInputDuration, durationPrompt.CustomInput)

	_, err = c.SubmitCustomDuration(ctx, durationPrompt.ID, 0)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidParam, appErr.Code)

	snap, err = c.SubmitCustomDuration(ctx, durationPrompt.ID, 90)
	require.NoError(t, err)
	assert.Equal(t, "90秒", snap.Conversation.Brief.Duration)
	assert.Equal(t, 2, snap.Conversation.Step)

	// エコーは「N秒」形式のユーザー発言として積まれる（直後に次の質問が続く）
	msgs := snap.Conversation.Messages
	echo := msgs[len(msgs)-2]
	assert.Equal(t, entity.MessageRoleUser, echo.Role)
	assert.Equal(t, "90秒", echo.Text)
}

func TestCustomTarget(t *testing.T) {
	ctx := context.Background()
	c := newTestConversation(memory.NewKV())
	snap := c.Open(ctx)

	snap, err := c.PickSingle(ctx, currentPrompt(t, snap).ID, "TikTok")
	require.NoError(t, err)

	// 尺プロンプトは自由文ターゲットを受け付けない
	_, err = c.SubmitCustomTarget(ctx, currentPrompt(t, snap).ID, "シニア層")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidParam, appErr.Code)

	snap, err = c.PickSingle(ctx, currentPrompt(t, snap).ID, "30秒")
	require.NoError(t, err)

	targetPrompt := currentPrompt(t, snap)
	_, err = c.SubmitCustomTarget(ctx, targetPrompt.ID, "   ")
	require.Error(t, err)

	snap, err = c.SubmitCustomTarget(ctx, targetPrompt.ID, "シニア層")
	require.NoError(t, err)
	assert.Equal(t, "シニア層", snap.Conversation.Brief.Target)
}

func TestSubmitTextOnlyOnInputSteps(t *testing.T) {
	ctx := context.Background()
	c := newTestConversation(memory.NewKV())
	c.Open(ctx)

	// 先頭は選択ステップ
	_, err := c.SubmitText(ctx, "自由入力")
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.CodeInvalidParam, appErr.Code)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	c := newTestConversation(kv)

	snap := c.Open(ctx)
	snap, err := c.PickSingle(ctx, currentPrompt(t, snap).ID, "TikTok")
	require.NoError(t, err)

	snap = c.Reset(ctx)
	assert.Equal(t, 0, snap.Conversation.Step)
	assert.False(t, snap.Conversation.Done)
	assert.Equal(t, resetText, snap.Conversation.Messages[0].Text)
	require.Len(t, snap.Conversation.Messages, 2)
	assert.Equal(t, entity.Brief{Tones: []entity.Tone{}}, snap.Conversation.Brief)

	// 保存側もリセット後の状態に置き換わる
	snap = newTestConversation(kv).Open(ctx)
	assert.Equal(t, resetText, snap.Conversation.Messages[0].Text)
	assert.Empty(t, snap.Conversation.Brief.Purpose)
}

func TestSaveAssets(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKV()
	c := newTestConversation(kv)
	c.Open(ctx)

	// 1 件でも不正なら何も反映されない
	snap, fieldErrs, err := c.SaveAssets(ctx, entity.AssetFields{
		AssetsURL: "https://example.com/assets.zip",
		BGMURL:    "ftp://example.com/bgm.mp3",
	})
	require.ErrorIs(t, err, apperrors.ErrAssetValidation)
	require.Contains(t, fieldErrs, "bgm_url")
	assert.Empty(t, snap.Conversation.Brief.AssetsURL)

	snap, fieldErrs, err = c.SaveAssets(ctx, entity.AssetFields{
		AssetsURL: "  https://example.com/assets.zip  ",
		FontNote:  "Noto Sans JP",
	})
	require.NoError(t, err)
	assert.Nil(t, fieldErrs)
	assert.Equal(t, "https://example.com/assets.zip", snap.Conversation.Brief.AssetsURL)
	assert.Equal(t, "Noto Sans JP", snap.Conversation.Brief.FontNote)

	// 進行状態はアセット保存の影響を受けない
	assert.Equal(t, 0, snap.Conversation.Step)

	// 別ランタイムでも読める
	snap = newTestConversation(kv).Open(ctx)
	assert.Equal(t, "https://example.com/assets.zip", snap.Conversation.Brief.AssetsURL)
}

func TestServiceReusesRuntimePerUser(t *testing.T) {
	kv := memory.NewKV()
	svc := NewService(kv, "brief:", DefaultTypingConfig(), NopDelayer{})

	c1 := svc.Conversation("u1")
	assert.Same(t, c1, svc.Conversation("u1"))
	assert.NotSame(t, c1, svc.Conversation("u2"))
}
