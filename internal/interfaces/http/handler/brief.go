package handler

import (
	"boss-brief-api/internal/application/brief"
	"boss-brief-api/internal/interfaces/http/dto"
	"boss-brief-api/pkg/errors"

	"github.com/gin-gonic/gin"
)

// BriefHandler ブリーフ作成会話の処理器。
// 会話はログインユーザーごとに 1 つで、URL にリソース ID を持たない。
type BriefHandler struct {
	briefs *brief.Service
}

// NewBriefHandler ブリーフハンドラを生成する
func NewBriefHandler(briefs *brief.Service) *BriefHandler {
	return &BriefHandler{briefs: briefs}
}

// conversation ログインユーザーの会話ランタイム
func (h *BriefHandler) conversation(c *gin.Context) *brief.Conversation {
	return h.briefs.Conversation(currentUserID(c))
}

// Open 会話を開く。保存済み状態があれば復元と補修、なければ新規開始。
// GET /v1/brief/conversation
func (h *BriefHandler) Open(c *gin.Context) {
	snap := h.conversation(c).Open(c.Request.Context())
	dto.Success(c, dto.ToConversationResponse(snap))
}

// AnswerSingle 単一選択ステップへの回答
// POST /v1/brief/conversation/answers/single
func (h *BriefHandler) AnswerSingle(c *gin.Context) {
	var req dto.AnswerSingleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	snap, err := h.conversation(c).PickSingle(c.Request.Context(), req.MessageID, req.Value)
	if err != nil {
		respondError(c, err, "failed to answer")
		return
	}
	dto.Success(c, dto.ToConversationResponse(snap))
}

// ToggleTone トーン候補の選択／解除。確定までは保存されない。
// POST /v1/brief/conversation/tones/toggle
func (h *BriefHandler) ToggleTone(c *gin.Context) {
	var req dto.ToneToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	snap, err := h.conversation(c).ToggleTone(c.Request.Context(), req.MessageID, req.Value)
	if err != nil {
		respondError(c, err, "failed to toggle tone")
		return
	}
	dto.Success(c, dto.ToConversationResponse(snap))
}

// ConfirmTones 選択中トーンの確定
// POST /v1/brief/conversation/tones/confirm
func (h *BriefHandler) ConfirmTones(c *gin.Context) {
	var req dto.ToneConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	snap, err := h.conversation(c).ConfirmTones(c.Request.Context(), req.MessageID)
	if err != nil {
		respondError(c, err, "failed to confirm tones")
		return
	}
	dto.Success(c, dto.ToConversationResponse(snap))
}

// AnswerDuration 尺のカスタム入力（秒数）
// POST /v1/brief/conversation/answers/duration
func (h *BriefHandler) AnswerDuration(c *gin.Context) {
	var req dto.CustomDurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	snap, err := h.conversation(c).SubmitCustomDuration(c.Request.Context(), req.MessageID, req.Seconds)
	if err != nil {
		respondError(c, err, "failed to answer duration")
		return
	}
	dto.Success(c, dto.ToConversationResponse(snap))
}

// AnswerTarget ターゲットのカスタム入力
// POST /v1/brief/conversation/answers/target
func (h *BriefHandler) AnswerTarget(c *gin.Context) {
	var req dto.CustomTargetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	snap, err := h.conversation(c).SubmitCustomTarget(c.Request.Context(), req.MessageID, req.Text)
	if err != nil {
		respondError(c, err, "failed to answer target")
		return
	}
	dto.Success(c, dto.ToConversationResponse(snap))
}

// AnswerText 自由入力ステップへの回答
// POST /v1/brief/conversation/answers/text
func (h *BriefHandler) AnswerText(c *gin.Context) {
	var req dto.AnswerTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	snap, err := h.conversation(c).SubmitText(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err, "failed to answer")
		return
	}
	dto.Success(c, dto.ToConversationResponse(snap))
}

// Reset 会話を破棄して最初からやり直す
// POST /v1/brief/conversation/reset
func (h *BriefHandler) Reset(c *gin.Context) {
	snap := h.conversation(c).Reset(c.Request.Context())
	dto.Success(c, dto.ToConversationResponse(snap))
}

// SaveAssets アセットモーダルの保存。URL 形式エラーがあれば一切保存しない。
// PUT /v1/brief/conversation/assets
func (h *BriefHandler) SaveAssets(c *gin.Context) {
	var req dto.AssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	snap, fieldErrs, err := h.conversation(c).SaveAssets(c.Request.Context(), req.ToAssetFields())
	if err != nil {
		if len(fieldErrs) > 0 {
			appErr := errors.AsAppError(err)
			dto.UnprocessableEntity(c, appErr.Message, &dto.ErrorDetail{
				ErrorCode:   string(appErr.Code),
				FieldErrors: fieldErrs,
			})
			return
		}
		respondError(c, err, "failed to save assets")
		return
	}
	dto.Success(c, dto.ToConversationResponse(snap))
}
