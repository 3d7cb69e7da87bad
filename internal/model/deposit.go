// Package model defines the domain types shared across the deposit workflow.
package model

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// FeeTier is the user-selected priority mapped by the wallet service to a fee amount.
type FeeTier string

const (
	FeeTierLow    FeeTier = "low"
	FeeTierMedium FeeTier = "medium"
	FeeTierHigh   FeeTier = "high"
)

// ParseFeeTier parses a fee tier string.
func ParseFeeTier(s string) (FeeTier, error) {
	tier := FeeTier(s)
	if !tier.Valid() {
		return "", fmt.Errorf("unknown fee tier %q", s)
	}
	return tier, nil
}

// Valid reports whether the tier is one of the known priorities.
func (t FeeTier) Valid() bool {
	switch t {
	case FeeTierLow, FeeTierMedium, FeeTierHigh:
		return true
	}
	return false
}

// DepositForm holds the user-entered deposit inputs. The password lives here
// only while a build call is being issued; it is never persisted.
type DepositForm struct {
	Address  string
	Amount   string
	FeeTier  FeeTier
	Password string
}

// WalletSnapshot is the balance state owned by the balance monitor.
// Total is confirmed plus unconfirmed, in satoshis.
type WalletSnapshot struct {
	Confirmed   btcutil.Amount
	Unconfirmed btcutil.Amount
	Total       btcutil.Amount
	FetchedAt   time.Time
}

// BuiltTransaction is a server-built transaction awaiting broadcast, together
// with the request parameters that produced it. It lives for a single deposit
// attempt and is discarded after the send succeeds or the attempt is aborted.
type BuiltTransaction struct {
	Hex       string
	Fee       btcutil.Amount
	Wallet    string
	Account   string
	Recipient string
	Amount    btcutil.Amount
	FeeTier   FeeTier
}

// TxID derives the transaction id from the built hex.
func (t BuiltTransaction) TxID() (string, error) {
	raw, err := hex.DecodeString(t.Hex)
	if err != nil {
		return "", fmt.Errorf("decode transaction hex: %w", err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("empty transaction hex")
	}
	return chainhash.DoubleHashH(raw).String(), nil
}
