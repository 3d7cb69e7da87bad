// Package validate evaluates the deposit form rules. Evaluation is pure and
// synchronous; the amount upper bound is recomputed from the live balance and
// fee on every call, so callers re-run it whenever either changes.
package validate

import (
	"fmt"
	"regexp"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/goodnatureofminers/walletflow/internal/model"
	"github.com/goodnatureofminers/walletflow/pkg/safe"
)

// Rule identifies one entry of the fixed rule catalog.
type Rule string

const (
	RuleRequired  Rule = "required"
	RuleMinLength Rule = "minLength"
	RulePattern   Rule = "pattern"
	RuleMinValue  Rule = "min"
	RuleMaxValue  Rule = "max"
)

// MinAddressLength is the shortest accepted destination address.
const MinAddressLength = 26

// MinAmount is the smallest accepted deposit, 0.00001 in decimal units.
const MinAmount = btcutil.Amount(1000)

var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,8})?$`)

// Snapshot is the full input to one evaluation: the field values plus the
// live balance/fee pair the dynamic max-amount bound derives from.
type Snapshot struct {
	Address      string
	Amount       string
	FeeTier      model.FeeTier
	Password     string
	TotalBalance btcutil.Amount
	EstimatedFee btcutil.Amount
}

// FieldResult is the outcome for a single field.
type FieldResult struct {
	Valid      bool
	Violations []Rule
	Messages   []string
}

func (f *FieldResult) violate(rule Rule, message string) {
	f.Valid = false
	f.Violations = append(f.Violations, rule)
	f.Messages = append(f.Messages, message)
}

// Result is the outcome of one evaluation.
type Result struct {
	Address  FieldResult
	Amount   FieldResult
	FeeTier  FieldResult
	Password FieldResult
}

// Valid reports whether every field passed.
func (r Result) Valid() bool {
	return r.Address.Valid && r.Amount.Valid && r.FeeTier.Valid && r.Password.Valid
}

// Messages flattens the active violation messages for display.
func (r Result) Messages() []string {
	var out []string
	for _, f := range []FieldResult{r.Address, r.Amount, r.FeeTier, r.Password} {
		out = append(out, f.Messages...)
	}
	return out
}

// MaxAmount returns the dynamic amount bound in satoshis: the balance minus
// the current fee estimate, clamped at zero when the fee exceeds the balance.
func MaxAmount(balance, fee btcutil.Amount) btcutil.Amount {
	return safe.SubSaturating(balance, fee)
}

// Evaluate runs the rule catalog against a snapshot. It never mutates the
// snapshot and has no side effects.
func Evaluate(s Snapshot) Result {
	r := Result{
		Address:  FieldResult{Valid: true},
		Amount:   FieldResult{Valid: true},
		FeeTier:  FieldResult{Valid: true},
		Password: FieldResult{Valid: true},
	}

	switch {
	case s.Address == "":
		r.Address.violate(RuleRequired, "address is required")
	case len(s.Address) < MinAddressLength:
		r.Address.violate(RuleMinLength,
			fmt.Sprintf("address must be at least %d characters", MinAddressLength))
	}

	evaluateAmount(&r.Amount, s)

	switch {
	case s.FeeTier == "":
		r.FeeTier.violate(RuleRequired, "fee tier is required")
	case !s.FeeTier.Valid():
		r.FeeTier.violate(RulePattern, fmt.Sprintf("unknown fee tier %q", s.FeeTier))
	}

	if s.Password == "" {
		r.Password.violate(RuleRequired, "password is required")
	}

	return r
}

func evaluateAmount(f *FieldResult, s Snapshot) {
	if s.Amount == "" {
		f.violate(RuleRequired, "amount is required")
		return
	}
	if !amountPattern.MatchString(s.Amount) {
		f.violate(RulePattern, "amount must be a non-negative number with up to 8 decimal places")
		return
	}
	sats, err := model.ParseAmount(s.Amount)
	if err != nil {
		f.violate(RulePattern, "amount must be a non-negative number with up to 8 decimal places")
		return
	}
	if sats < MinAmount {
		f.violate(RuleMinValue, fmt.Sprintf("amount must be at least %s", model.FormatAmount(MinAmount)))
	}
	if bound := MaxAmount(s.TotalBalance, s.EstimatedFee); sats > bound {
		f.violate(RuleMaxValue,
			fmt.Sprintf("amount exceeds the spendable balance of %s", model.FormatAmount(bound)))
	}
}
