package walletapi

import "github.com/btcsuite/btcd/btcutil"

// Recipient is a single destination of a transaction.
type Recipient struct {
	DestinationAddress string `json:"destinationAddress"`
	Amount             string `json:"amount"`
}

// EstimateFeeRequest asks the wallet service to price a candidate transaction.
type EstimateFeeRequest struct {
	WalletName          string      `json:"walletName"`
	AccountName         string      `json:"accountName"`
	Recipients          []Recipient `json:"recipients"`
	FeeType             string      `json:"feeType"`
	AllowUnconfirmed    bool        `json:"allowUnconfirmed"`
	SegwitChangeAddress bool        `json:"segwitChangeAddress"`
}

// BuildTransactionRequest asks the wallet service to construct and sign a
// transaction without broadcasting it. FeeAmount is in decimal units.
type BuildTransactionRequest struct {
	WalletName          string      `json:"walletName"`
	AccountName         string      `json:"accountName"`
	Password            string      `json:"password"`
	Recipients          []Recipient `json:"recipients"`
	FeeType             string      `json:"feeType"`
	FeeAmount           string      `json:"feeAmount"`
	AllowUnconfirmed    bool        `json:"allowUnconfirmed"`
	SegwitChangeAddress bool        `json:"segwitChangeAddress"`
	ShuffleOutputs      bool        `json:"shuffleOutputs"`
}

// BuildResult is the server-built transaction. Fee is in satoshis.
type BuildResult struct {
	Hex string         `json:"hex"`
	Fee btcutil.Amount `json:"fee"`
}

// MaxBalanceResult is the maximum spendable amount for a fee tier, in satoshis.
type MaxBalanceResult struct {
	MaxSpendableAmount btcutil.Amount `json:"maxSpendableAmount"`
	Fee                btcutil.Amount `json:"fee"`
}

type accountBalance struct {
	AmountConfirmed   btcutil.Amount `json:"amountConfirmed"`
	AmountUnconfirmed btcutil.Amount `json:"amountUnconfirmed"`
}

type balanceResponse struct {
	Balances []accountBalance `json:"balances"`
}

type sendTransactionRequest struct {
	Hex string `json:"hex"`
}
