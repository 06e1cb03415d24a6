package utils

import (
	"errors"
	"fmt"

	"inmogestion-backend/internal/domain"
)

var (
	ErrUnknownPricingMode = errors.New("unknown pricing mode")
	ErrUnknownCurrency    = errors.New("unknown currency")
	ErrNegativeAmount     = errors.New("monetary amounts must be non-negative")
	ErrCommissionRange    = errors.New("commission percent must be between 0 and 100")
)

// ValidatePricingInput rejects inputs the calculator must never see: an
// unknown mode or currency, any negative monetary field, or a commission
// percent outside [0, 100]. Out-of-range percent is rejected rather than
// allowed to drive the owner's payout negative.
func ValidatePricingInput(in domain.PricingInput) error {
	if !in.Currency.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, in.Currency)
	}

	switch in.Mode {
	case domain.PricingModePercentage:
		if in.TotalPrice < 0 {
			return fmt.Errorf("%w: total price %.2f", ErrNegativeAmount, in.TotalPrice)
		}
		if in.CommissionPercent < 0 || in.CommissionPercent > 100 {
			return fmt.Errorf("%w: got %.2f", ErrCommissionRange, in.CommissionPercent)
		}
	case domain.PricingModeMarkup:
		if in.OwnerNet < 0 {
			return fmt.Errorf("%w: owner net %.2f", ErrNegativeAmount, in.OwnerNet)
		}
		if in.AskPrice < 0 {
			return fmt.Errorf("%w: ask price %.2f", ErrNegativeAmount, in.AskPrice)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPricingMode, in.Mode)
	}

	return nil
}

// ComputePricing derives the final listed price, the agent's commission and
// the owner's net payout from raw financial input. Pure; no side effects.
//
// Percentage mode: the commission is a cut of the total sale price and the
// owner receives the rest, so SaleEvent == AgentCommission + OwnerNet always
// holds.
//
// Markup mode ("Pase"): the owner states the net amount they want and the
// agent lists above it, keeping the excess. When the ask falls below the
// owner's net the commission is floored at zero — an agent never pays the
// owner — and MarginWarning is set because the listing would close at a loss
// (SaleEvent < OwnerNet).
func ComputePricing(in domain.PricingInput) (domain.PricingResult, error) {
	if err := ValidatePricingInput(in); err != nil {
		return domain.PricingResult{}, err
	}

	switch in.Mode {
	case domain.PricingModePercentage:
		commission := in.TotalPrice * (in.CommissionPercent / 100)
		return domain.PricingResult{
			SaleEvent:       in.TotalPrice,
			AgentCommission: commission,
			OwnerNet:        in.TotalPrice - commission,
		}, nil

	default: // Markup, validated above
		result := domain.PricingResult{
			SaleEvent: in.AskPrice,
			OwnerNet:  in.OwnerNet,
		}
		if in.AskPrice >= in.OwnerNet {
			result.AgentCommission = in.AskPrice - in.OwnerNet
		} else {
			result.MarginWarning = true
		}
		return result, nil
	}
}
