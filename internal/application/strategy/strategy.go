// Package strategy selects the canned execution text for an intent.
package strategy

import (
	"fmt"

	"github.com/hilthontt/sovereign/internal/domain"
)

const (
	securityTemplate  = "SECURITY PROTOCOL EXECUTED for '%s'. All systems hardened."
	executionTemplate = "STRATEGIC EXECUTION COMPLETE for '%s'.\nSovereign is now acting on your command."
)

// Select returns the security block when the intent names a security
// keyword and the generic execution block otherwise.
func Select(intent domain.Intent) string {
	if intent.WantsSecurity() {
		return fmt.Sprintf(securityTemplate, intent)
	}
	return fmt.Sprintf(executionTemplate, intent)
}
