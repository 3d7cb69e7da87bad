// Package classify maps wallet API failures onto the fixed set of user-facing
// outcomes. Every network call site routes its errors through here; the
// consumer of each classification differs per component.
package classify

import (
	"errors"

	"github.com/goodnatureofminers/walletflow/internal/walletapi"
)

// Kind is the outcome of classifying a failure.
type Kind int

const (
	// Connectivity is a transport failure with no HTTP status. Always user-visible.
	Connectivity Kind = iota
	// DomainMessage is a 4xx with a parseable first error entry.
	DomainMessage
	// Silent covers everything else, including malformed error bodies. Log only.
	Silent
)

func (k Kind) String() string {
	switch k {
	case Connectivity:
		return "connectivity"
	case DomainMessage:
		return "domain_message"
	case Silent:
		return "silent"
	default:
		return "unknown"
	}
}

// Classification is the decoded outcome. DescriptionBearing distinguishes
// domain errors that carry an explanatory description from transient ones.
type Classification struct {
	Kind               Kind
	Message            string
	DescriptionBearing bool
}

// Classify decodes a wallet API failure. Errors that never reached the
// service, or reached it without getting an HTTP status back, count as
// connectivity failures.
func Classify(err error) Classification {
	var se *walletapi.StatusError
	if !errors.As(err, &se) || se.Status == 0 {
		return Classification{Kind: Connectivity}
	}
	if se.Status >= 400 && se.Status < 500 && len(se.Entries) > 0 && se.Entries[0].Message != "" {
		return Classification{
			Kind:               DomainMessage,
			Message:            se.Entries[0].Message,
			DescriptionBearing: se.Entries[0].Description != "",
		}
	}
	return Classification{Kind: Silent}
}
