package economy

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestCreditDebitRoundTrip(t *testing.T) {
	userID := uuid.NewString()
	w := Wallet{Grit: 200}

	credited, earnTx, err := Credit(w, userID, CurrencyGrit, 150, "task", "task payout")
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if credited.Grit != 350 {
		t.Fatalf("expected 350 grit, got %d", credited.Grit)
	}
	if earnTx.Kind != KindEarn || earnTx.Amount != 150 || earnTx.Currency != CurrencyGrit {
		t.Fatalf("unexpected earn transaction: %+v", earnTx)
	}

	debited, spendTx, err := Debit(credited, userID, CurrencyGrit, 150, "shop", "cosmetic purchase")
	if err != nil {
		t.Fatalf("debit: %v", err)
	}
	if debited != w {
		t.Fatalf("round trip should restore original wallet, got %+v", debited)
	}
	if spendTx.Kind != KindSpend {
		t.Fatalf("expected spend kind, got %s", spendTx.Kind)
	}
}

func TestDebitInsufficientFundsLeavesWalletUntouched(t *testing.T) {
	w := Wallet{Grit: 10}

	after, _, err := Debit(w, uuid.NewString(), CurrencyGrit, 20, "shop", "too expensive")
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
	if after != w {
		t.Fatalf("wallet must be unchanged on failure, got %+v", after)
	}
}

func TestCreditRejectsBadInput(t *testing.T) {
	w := Wallet{}
	if _, _, err := Credit(w, "u", CurrencyGrit, 0, "task", ""); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected invalid amount for zero credit, got %v", err)
	}
	if _, _, err := Credit(w, "u", CurrencyGrit, -5, "task", ""); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected invalid amount for negative credit, got %v", err)
	}
	if _, _, err := Credit(w, "u", Currency("gems"), 5, "task", ""); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected invalid amount for unknown currency, got %v", err)
	}
}

func TestConvertGritToTaskCredits(t *testing.T) {
	w := Wallet{Grit: 250}

	after, tx, err := Convert(w, uuid.NewString(), CurrencyGrit, CurrencyTaskCredits, 100)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if after.Grit != 150 || after.TaskCredits != 1 {
		t.Fatalf("expected 150 grit / 1 credit, got %+v", after)
	}
	if tx.Kind != KindConvert || tx.Amount != 100 || tx.Currency != CurrencyGrit {
		t.Fatalf("unexpected convert transaction: %+v", tx)
	}
}

func TestConvertUnsupportedPairs(t *testing.T) {
	w := Wallet{Grit: 1_000, TaskCredits: 10, Crowns: 5}

	pairs := []struct{ from, to Currency }{
		{CurrencyTaskCredits, CurrencyGrit},
		{CurrencyCrowns, CurrencyTaskCredits},
		{CurrencyGrit, CurrencyCrowns},
		{CurrencyCrowns, CurrencyGrit},
	}
	for _, p := range pairs {
		if _, _, err := Convert(w, "u", p.from, p.to, 100); !errors.Is(err, ErrUnsupportedConversion) {
			t.Fatalf("expected unsupported conversion for %s->%s, got %v", p.from, p.to, err)
		}
	}
}

func TestConvertRequiresWholeMultiplesOfRate(t *testing.T) {
	w := Wallet{Grit: 1_000}
	if _, _, err := Convert(w, "u", CurrencyGrit, CurrencyTaskCredits, 150); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected invalid amount for partial-unit conversion, got %v", err)
	}
}

func TestConvertInsufficientFunds(t *testing.T) {
	w := Wallet{Grit: 50}
	after, _, err := Convert(w, "u", CurrencyGrit, CurrencyTaskCredits, 100)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected insufficient funds, got %v", err)
	}
	if after != w {
		t.Fatalf("wallet must be unchanged on failure, got %+v", after)
	}
}

func TestMemoryStoreListsNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	userID := uuid.NewString()

	w := Wallet{}
	for i := 0; i < 3; i++ {
		var tx Transaction
		var err error
		w, tx, err = Credit(w, userID, CurrencyGrit, int64(10*(i+1)), "task", "payout")
		if err != nil {
			t.Fatalf("credit: %v", err)
		}
		if err := store.Append(ctx, tx); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	history, err := store.ListByUser(ctx, userID, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 records, got %d", len(history))
	}
	if history[0].Amount != 30 || history[1].Amount != 20 {
		t.Fatalf("expected newest first ordering, got %+v", history)
	}
}
