package audit

import "github.com/Sifundo-B/BankApi/model"

// ActorSystem attributes changes made outside a request context, such as
// database seeding.
const ActorSystem = "System"

// Table names match the entity type names so that audit queries can filter
// on them.
const (
	tableAccount       = "Account"
	tableAccountHolder = "AccountHolder"
	tableWithdrawal    = "Withdrawal"
	tableUser          = "User"
)

// AccountCreated captures a new account. The account number is supplied by
// the caller, so the entry is never deferred.
func AccountCreated(account *model.Account, actor string) *Entry {
	e := newEntry(tableAccount, model.AuditTypeCreate, actor)
	e.KeyValues["AccountNumber"] = account.AccountNumber
	e.NewValues["AccountHolderId"] = account.AccountHolderID
	e.NewValues["Type"] = account.Type
	e.NewValues["Status"] = account.Status
	e.NewValues["AvailableBalance"] = account.AvailableBalance
	return e
}

// AccountChanged diffs two snapshots of the same account and records only
// the properties that actually changed. It returns nil when nothing did,
// matching the rule that unchanged entities produce no audit row.
func AccountChanged(old, updated *model.Account, actor string) *Entry {
	e := newEntry(tableAccount, model.AuditTypeUpdate, actor)
	e.KeyValues["AccountNumber"] = updated.AccountNumber

	if old.AccountHolderID != updated.AccountHolderID {
		e.OldValues["AccountHolderId"] = old.AccountHolderID
		e.NewValues["AccountHolderId"] = updated.AccountHolderID
	}
	if old.Type != updated.Type {
		e.OldValues["Type"] = old.Type
		e.NewValues["Type"] = updated.Type
	}
	if old.Status != updated.Status {
		e.OldValues["Status"] = old.Status
		e.NewValues["Status"] = updated.Status
	}
	if !old.AvailableBalance.Equal(updated.AvailableBalance) {
		e.OldValues["AvailableBalance"] = old.AvailableBalance
		e.NewValues["AvailableBalance"] = updated.AvailableBalance
	}

	if len(e.OldValues) == 0 && len(e.NewValues) == 0 {
		return nil
	}
	return e
}

// AccountDeleted captures a hard delete. Accounts are soft-closed in
// practice, but the capture path supports deletes for completeness.
func AccountDeleted(account *model.Account, actor string) *Entry {
	e := newEntry(tableAccount, model.AuditTypeDelete, actor)
	e.KeyValues["AccountNumber"] = account.AccountNumber
	e.OldValues["AccountHolderId"] = account.AccountHolderID
	e.OldValues["Type"] = account.Type
	e.OldValues["Status"] = account.Status
	e.OldValues["AvailableBalance"] = account.AvailableBalance
	return e
}

// WithdrawalCreated captures a new withdrawal. The id is generated on
// insert, so the entry stays deferred until ResolveKey("Id", ...) is
// called with the generated value.
func WithdrawalCreated(w *model.Withdrawal, actor string) *Entry {
	e := newEntry(tableWithdrawal, model.AuditTypeCreate, actor)
	if w.ID == 0 {
		e.deferKey("Id")
	} else {
		e.KeyValues["Id"] = w.ID
	}
	e.NewValues["AccountNumber"] = w.AccountNumber
	e.NewValues["Amount"] = w.Amount
	e.NewValues["TransactionDate"] = w.TransactionDate
	return e
}

// AccountHolderCreated captures a new account holder.
func AccountHolderCreated(h *model.AccountHolder, actor string) *Entry {
	e := newEntry(tableAccountHolder, model.AuditTypeCreate, actor)
	if h.ID == 0 {
		e.deferKey("Id")
	} else {
		e.KeyValues["Id"] = h.ID
	}
	e.NewValues["UserId"] = h.UserID
	e.NewValues["FirstName"] = h.FirstName
	e.NewValues["LastName"] = h.LastName
	e.NewValues["DateOfBirth"] = h.DateOfBirth
	e.NewValues["IdNumber"] = h.IDNumber
	e.NewValues["ResidentialAddress"] = h.ResidentialAddress
	e.NewValues["MobileNumber"] = h.MobileNumber
	e.NewValues["Email"] = h.Email
	return e
}

// UserCreated captures a new user. The password hash is deliberately not a
// tracked property.
func UserCreated(u *model.User, actor string) *Entry {
	e := newEntry(tableUser, model.AuditTypeCreate, actor)
	if u.ID == 0 {
		e.deferKey("Id")
	} else {
		e.KeyValues["Id"] = u.ID
	}
	e.NewValues["Username"] = u.Username
	e.NewValues["Role"] = u.Role
	return e
}
