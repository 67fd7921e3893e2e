package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Sifundo-B/BankApi/common"
	"github.com/Sifundo-B/BankApi/model"
	"github.com/Sifundo-B/BankApi/service"
)

type WithdrawalHandler struct {
	service *service.WithdrawalService
}

func NewWithdrawalHandler(s *service.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{service: s}
}

// CreateWithdrawal godoc
// @Summary      Create a withdrawal
// @Description  Withdraws the given amount from an account. Fixed deposit accounts only allow a single full withdrawal, which closes the account.
// @Tags         withdrawals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        withdrawal body model.CreateWithdrawalRequest true "Withdrawal details"
// @Success      201  {object}  model.WithdrawalDTO
// @Failure      400  {object}  common.AppError "Business rule violated"
// @Failure      404  {object}  common.AppError "Account not found"
// @Failure      409  {object}  common.AppError "Concurrent modification, resubmit"
// @Failure      500  {object}  common.AppError
// @Router       /api/withdrawals [post]
func (h *WithdrawalHandler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateWithdrawalRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	userID, ok := r.Context().Value(UserIDKey).(int)
	if !ok {
		return common.NewAppError(http.StatusUnauthorized, "Invalid user ID in token", nil)
	}

	withdrawal, err := h.service.CreateWithdrawal(r.Context(), strconv.Itoa(userID), req)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return common.NewAppError(http.StatusBadRequest, validationErr.Reason, nil)
		case errors.Is(err, service.ErrAccountNotFound):
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		case errors.Is(err, service.ErrConcurrentUpdate):
			return common.NewAppError(http.StatusConflict, "Account was modified concurrently, please retry", err)
		default:
			return common.NewAppError(http.StatusInternalServerError, "An error occurred while processing your request", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(withdrawal)
	return nil
}

// GetWithdrawalHistory godoc
// @Summary      Withdrawal history for an account
// @Description  Retrieves the withdrawal history for an account, most recent first. Admin and Banker only.
// @Tags         withdrawals
// @Produce      json
// @Security     BearerAuth
// @Param        accountNumber path string true "The account number"
// @Success      200  {array}   model.WithdrawalDTO
// @Failure      404  {object}  common.AppError "No withdrawals found for this account"
// @Router       /api/withdrawals/history/{accountNumber} [get]
func (h *WithdrawalHandler) GetWithdrawalHistory(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountNumber := r.PathValue("accountNumber")

	withdrawals, err := h.service.ListWithdrawalHistory(r.Context(), accountNumber)
	if err != nil {
		if errors.Is(err, service.ErrNoWithdrawalsFound) {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve withdrawals", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(withdrawals)
	return nil
}
