package service

import (
	"fmt"
	"unicode"
)

// minReferenceLength is the gateway's minimum order_id length
const minReferenceLength = 4

// ValidateAmount checks that an amount in minor units is positive
func ValidateAmount(amount int64) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", amount)
	}
	return nil
}

// ValidateCurrency checks for a three-letter ISO 4217 code
func ValidateCurrency(currency string) error {
	if len(currency) != 3 {
		return fmt.Errorf("currency must be a three-letter code, got %q", currency)
	}
	for _, r := range currency {
		if !unicode.IsUpper(r) {
			return fmt.Errorf("currency must be upper case, got %q", currency)
		}
	}
	return nil
}

// ValidateReference checks an order reference against the gateway's minimum
// length. In test mode the client suffixes references, which also lifts short
// ones over the minimum, so this applies to live references only.
func ValidateReference(reference string, testmode bool) error {
	if reference == "" {
		return fmt.Errorf("order reference cannot be empty")
	}
	if !testmode && len(reference) < minReferenceLength {
		return fmt.Errorf("order reference must be at least %d characters, got %q", minReferenceLength, reference)
	}
	return nil
}
