package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Sifundo-B/BankApi/common"
	"github.com/Sifundo-B/BankApi/logger"
	"github.com/Sifundo-B/BankApi/service"
)

type AccountHandler struct {
	service *service.AccountService
}

func NewAccountHandler(service *service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// GetAccountsByHolder godoc
// @Summary      List accounts for an account holder
// @Description  Retrieves all accounts whose holder's full name ("FirstName LastName") matches exactly.
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "The holder's full name"
// @Success      200  {array}   model.AccountDTO
// @Failure      404  {object}  common.AppError "No accounts found for this holder"
// @Router       /api/accounts/holder/{name} [get]
func (h *AccountHandler) GetAccountsByHolder(w http.ResponseWriter, r *http.Request) *common.AppError {
	name := r.PathValue("name")
	logger.Log.WithField("holder_name", name).Info("Get accounts by holder request received")

	accounts, err := h.service.GetAccountsByHolder(r.Context(), name)
	if err != nil {
		if err == service.ErrNoAccountsForHolder {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve accounts", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(accounts)
	return nil
}

// GetAllAccounts lists every account. Admin and Banker only.
func (h *AccountHandler) GetAllAccounts(w http.ResponseWriter, r *http.Request) *common.AppError {
	accounts, err := h.service.GetAllAccounts(r.Context())
	if err != nil {
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve accounts", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(accounts)
	return nil
}

// GetAccount godoc
// @Summary      Get one account
// @Description  Retrieves a specific bank account by account number.
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Param        accountNumber path string true "The account number"
// @Success      200  {object}  model.AccountDTO
// @Failure      404  {object}  common.AppError "Account not found"
// @Router       /api/accounts/{accountNumber} [get]
func (h *AccountHandler) GetAccount(w http.ResponseWriter, r *http.Request) *common.AppError {
	accountNumber := r.PathValue("accountNumber")

	account, err := h.service.GetAccountByNumber(r.Context(), accountNumber)
	if err != nil {
		if err == service.ErrAccountNotFound {
			return common.NewAppError(http.StatusNotFound, err.Error(), nil)
		}
		return common.NewAppError(http.StatusInternalServerError, "Could not retrieve account", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(account)
	return nil
}
