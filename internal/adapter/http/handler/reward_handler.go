package handler

import (
	"errors"
	"net/http"
	"strings"

	"cashback-rewards/internal/adapter/http/dto"
	"cashback-rewards/internal/adapter/http/middleware"
	"cashback-rewards/internal/core/ports"
	"cashback-rewards/pkg/apperror"
	"cashback-rewards/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	msgVerified = "Reward verification successful"
	msgIssued   = "Reward processed"
	msgNoReward = "No reward for this transaction"
)

// RewardHandler handles the merchant-facing reward endpoints.
type RewardHandler struct {
	verificationSvc ports.VerificationService
}

// NewRewardHandler creates a new RewardHandler.
func NewRewardHandler(verificationSvc ports.VerificationService) *RewardHandler {
	return &RewardHandler{verificationSvc: verificationSvc}
}

// Verify handles GET /api/v1/rewards/verify?transactionId=...
func (h *RewardHandler) Verify(c *gin.Context) {
	merchant, ok := middleware.MerchantFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrAPIKeyRequired())
		return
	}

	transactionID := strings.TrimSpace(c.Query("transactionId"))
	if transactionID == "" {
		response.Error(c, apperror.ErrTransactionIDRequired())
		return
	}

	reward, err := h.verificationSvc.VerifyReward(c.Request.Context(), merchant, transactionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.RewardResponse{
		Message: msgVerified,
		Reward:  dto.NewRewardView(reward),
	})
}

// Process handles POST /api/v1/rewards/process.
func (h *RewardHandler) Process(c *gin.Context) {
	merchant, ok := middleware.MerchantFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrAPIKeyRequired())
		return
	}

	var req dto.ProcessRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, apperror.ErrPayloadTooLarge())
			return
		}
		response.Error(c, apperror.Validation(dto.ValidationMessage(err)))
		return
	}

	reward, err := h.verificationSvc.ProcessForMerchant(c.Request.Context(), merchant, req.TransactionID)
	if err != nil {
		response.Error(c, err)
		return
	}

	msg := msgIssued
	if reward == nil {
		msg = msgNoReward
	}
	response.OK(c, dto.RewardResponse{
		Message: msg,
		Reward:  dto.NewRewardView(reward),
	})
}

// ListUserRewards handles GET /api/v1/users/:userId/rewards.
func (h *RewardHandler) ListUserRewards(c *gin.Context) {
	merchant, ok := middleware.MerchantFromContext(c)
	if !ok {
		response.Error(c, apperror.ErrAPIKeyRequired())
		return
	}

	userID := c.Param("userId")
	if !dto.IsSafeID(userID) {
		response.Error(c, apperror.Validation("Invalid user ID"))
		return
	}

	rewards, err := h.verificationSvc.ListUserRewards(c.Request.Context(), merchant, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.UserRewardsResponse{
		UserID:  userID,
		Rewards: dto.NewRewardViews(rewards),
	})
}
