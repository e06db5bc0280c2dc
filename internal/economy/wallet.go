package economy

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidAmount occurs when a mutation is requested with a zero or
	// negative amount, or against an unknown currency.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientFunds occurs when a debit or conversion exceeds the
	// available balance. Balances never go negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrUnsupportedConversion occurs for currency pairs without a defined
	// rate. Crowns are non-convertible by design.
	ErrUnsupportedConversion = errors.New("unsupported conversion")
)

// Transaction kinds. The amount is always a positive magnitude; the kind
// determines direction.
const (
	KindEarn    = "earn"
	KindSpend   = "spend"
	KindConvert = "convert"
)

// Wallet is an immutable multi-currency balance snapshot. Mutating
// operations return a new snapshot; callers persist it under their own
// per-user serialization discipline.
type Wallet struct {
	Grit        int64 `json:"grit"`
	TaskCredits int64 `json:"task_credits"`
	Crowns      int64 `json:"crowns"`
}

// Balance returns the amount held in the named currency.
func (w Wallet) Balance(c Currency) (int64, error) {
	switch c {
	case CurrencyGrit:
		return w.Grit, nil
	case CurrencyTaskCredits:
		return w.TaskCredits, nil
	case CurrencyCrowns:
		return w.Crowns, nil
	}
	return 0, ErrInvalidAmount
}

func (w Wallet) with(c Currency, amount int64) Wallet {
	switch c {
	case CurrencyGrit:
		w.Grit = amount
	case CurrencyTaskCredits:
		w.TaskCredits = amount
	case CurrencyCrowns:
		w.Crowns = amount
	}
	return w
}

// Transaction is the append-only audit record produced by every balance
// mutation. Records are never edited after creation.
type Transaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Kind        string    `json:"kind"`
	Currency    Currency  `json:"currency"`
	Amount      int64     `json:"amount"`
	Source      string    `json:"source"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTransaction builds an audit record for a balance mutation. Most
// callers go through Credit/Debit/Convert; composite transitions such as
// the prestige reset record their currency movement directly.
func NewTransaction(userID, kind string, c Currency, amount int64, source, description string) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		UserID:      userID,
		Kind:        kind,
		Currency:    c,
		Amount:      amount,
		Source:      source,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// Credit increases the named currency and emits an earn transaction.
// Amount must be strictly positive.
func Credit(w Wallet, userID string, c Currency, amount int64, source, description string) (Wallet, Transaction, error) {
	if amount <= 0 || !ValidCurrency(c) {
		return w, Transaction{}, ErrInvalidAmount
	}
	balance, _ := w.Balance(c)
	return w.with(c, balance+amount), NewTransaction(userID, KindEarn, c, amount, source, description), nil
}

// Debit decreases the named currency and emits a spend transaction. Fails
// with ErrInsufficientFunds when the balance cannot cover the amount; the
// wallet is returned unchanged and no transaction is recorded.
func Debit(w Wallet, userID string, c Currency, amount int64, source, description string) (Wallet, Transaction, error) {
	if amount <= 0 || !ValidCurrency(c) {
		return w, Transaction{}, ErrInvalidAmount
	}
	balance, _ := w.Balance(c)
	if amount > balance {
		return w, Transaction{}, ErrInsufficientFunds
	}
	return w.with(c, balance-amount), NewTransaction(userID, KindSpend, c, amount, source, description), nil
}

// Convert exchanges between two currencies at the fixed rate table. The
// only defined pair is grit into task credits at GritPerTaskCredit:1, and
// the amount must be a whole multiple of the rate so no value is lost.
// One convert transaction is emitted for the whole exchange.
func Convert(w Wallet, userID string, from, to Currency, amount int64) (Wallet, Transaction, error) {
	if amount <= 0 || !ValidCurrency(from) || !ValidCurrency(to) {
		return w, Transaction{}, ErrInvalidAmount
	}
	if from != CurrencyGrit || to != CurrencyTaskCredits {
		return w, Transaction{}, ErrUnsupportedConversion
	}
	if amount%GritPerTaskCredit != 0 {
		return w, Transaction{}, ErrInvalidAmount
	}

	balance, _ := w.Balance(from)
	if amount > balance {
		return w, Transaction{}, ErrInsufficientFunds
	}

	converted := amount / GritPerTaskCredit
	w = w.with(from, balance-amount)
	credits, _ := w.Balance(to)
	w = w.with(to, credits+converted)

	tx := NewTransaction(userID, KindConvert, from, amount, "convert",
		fmt.Sprintf("converted %d grit into %d task credits", amount, converted))
	return w, tx, nil
}
