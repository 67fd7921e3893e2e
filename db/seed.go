package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Sifundo-B/BankApi/audit"
	"github.com/Sifundo-B/BankApi/logger"
	"github.com/Sifundo-B/BankApi/model"
	"github.com/Sifundo-B/BankApi/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type seedAccount struct {
	number  string
	accType model.AccountType
	balance string
}

type seedHolder struct {
	username  string
	password  string
	firstName string
	lastName  string
	birth     time.Time
	idNumber  string
	address   string
	mobile    string
	email     string
	accounts  []seedAccount
}

// Seed provisions the well-known staff users and, when the database holds
// no account holders yet, the demo holders with their accounts. Every
// seeded row is audited with the System actor.
func Seed(database *sql.DB, accountRepo repository.IAccountRepository, userRepo repository.IUserRepository, auditRepo repository.IAuditRepository) error {
	ctx := context.Background()

	staff := []struct {
		username string
		password string
		role     model.Role
	}{
		{"admin@bank.com", "Admin@123", model.RoleAdmin},
		{"banker@bank.com", "Banker@123", model.RoleBanker},
		{"auditor@bank.com", "Auditor@123", model.RoleAuditor},
	}
	for _, s := range staff {
		if _, err := ensureUser(ctx, database, userRepo, auditRepo, s.username, s.password, s.role); err != nil {
			return err
		}
	}

	count, err := accountRepo.CountAccountHolders()
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Log.Info("Account holders already present, skipping seed data")
		return nil
	}

	holders := []seedHolder{
		{
			username: "john.doe@example.com", password: "Customer@123",
			firstName: "John", lastName: "Doe",
			birth:    time.Date(1985, 5, 15, 0, 0, 0, 0, time.UTC),
			idNumber: "8505151234088",
			address:  "123 Main Street, Johannesburg, 2000",
			mobile:   "0825551234",
			email:    "john.doe@example.com",
			accounts: []seedAccount{
				{"1000000001", model.AccountTypeSavings, "15000.00"},
				{"1000000002", model.AccountTypeCheque, "5000.00"},
			},
		},
		{
			username: "jane.smith@example.com", password: "Customer@123",
			firstName: "Jane", lastName: "Smith",
			birth:    time.Date(1990, 8, 22, 0, 0, 0, 0, time.UTC),
			idNumber: "9008220987654",
			address:  "456 Oak Avenue, Cape Town, 8000",
			mobile:   "0835555678",
			email:    "jane.smith@example.com",
			accounts: []seedAccount{
				{"1000000003", model.AccountTypeSavings, "25000.00"},
				{"1000000004", model.AccountTypeFixedDeposit, "100000.00"},
			},
		},
	}

	for _, h := range holders {
		if err := seedOneHolder(ctx, database, accountRepo, userRepo, auditRepo, h); err != nil {
			return fmt.Errorf("could not seed holder %s %s: %w", h.firstName, h.lastName, err)
		}
	}

	logger.Log.Info("Seed data created successfully")
	return nil
}

func ensureUser(ctx context.Context, database *sql.DB, userRepo repository.IUserRepository, auditRepo repository.IAuditRepository, username, password string, role model.Role) (*model.User, error) {
	user, err := userRepo.GetUserByUsername(username)
	if err == nil {
		return user, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, err
	}
	user = &model.User{
		Username: username,
		Password: string(hash),
		Role:     role,
	}

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := userRepo.CreateUser(tx, user); err != nil {
		return nil, err
	}

	rec := audit.NewRecorder(auditRepo)
	rec.Add(audit.UserCreated(user, audit.ActorSystem))
	if err := rec.BeforeSave(ctx, tx); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return user, nil
}

func seedOneHolder(ctx context.Context, database *sql.DB, accountRepo repository.IAccountRepository, userRepo repository.IUserRepository, auditRepo repository.IAuditRepository, h seedHolder) error {
	user, err := ensureUser(ctx, database, userRepo, auditRepo, h.username, h.password, model.RoleCustomer)
	if err != nil {
		return err
	}

	tx, err := database.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rec := audit.NewRecorder(auditRepo)

	holder := &model.AccountHolder{
		UserID:             user.ID,
		FirstName:          h.firstName,
		LastName:           h.lastName,
		DateOfBirth:        h.birth,
		IDNumber:           h.idNumber,
		ResidentialAddress: h.address,
		MobileNumber:       h.mobile,
		Email:              h.email,
	}
	if err := accountRepo.CreateAccountHolder(tx, holder); err != nil {
		return err
	}
	rec.Add(audit.AccountHolderCreated(holder, audit.ActorSystem))

	for _, a := range h.accounts {
		balance, err := decimal.NewFromString(a.balance)
		if err != nil {
			return err
		}
		account := &model.Account{
			AccountNumber:    a.number,
			AccountHolderID:  holder.ID,
			Type:             a.accType,
			Status:           model.AccountStatusActive,
			AvailableBalance: balance,
		}
		if err := accountRepo.CreateAccount(tx, account); err != nil {
			return err
		}
		rec.Add(audit.AccountCreated(account, audit.ActorSystem))
	}

	if err := rec.BeforeSave(ctx, tx); err != nil {
		return err
	}
	return tx.Commit()
}
