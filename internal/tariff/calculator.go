// Package tariff prices metered consumption against progressive slab tariffs.
// Everything here is pure: no I/O, no clock, decimal arithmetic only.
package tariff

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gridbill/internal/domain"
)

const moneyPlaces = 2

var hundred = decimal.NewFromInt(100)

type SlabCharge struct {
	From   decimal.Decimal  `json:"from"`
	UpTo   *decimal.Decimal `json:"upTo,omitempty"`
	Units  decimal.Decimal  `json:"units"`
	Rate   decimal.Decimal  `json:"rate"`
	Amount decimal.Decimal  `json:"amount"`
}

type Breakdown struct {
	Units           decimal.Decimal `json:"units"`
	BaseAmount      decimal.Decimal `json:"baseAmount"`
	FixedCharges    decimal.Decimal `json:"fixedCharges"`
	ElectricityDuty decimal.Decimal `json:"electricityDuty"`
	GSTAmount       decimal.Decimal `json:"gstAmount"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Slabs           []SlabCharge    `json:"slabs"`
}

// Calculate walks the slabs in ascending order charging each band only for the
// units that fall inside it; the last band absorbs whatever remains.
// Duty and GST are percentages of the base amount.
func Calculate(units decimal.Decimal, t *domain.Tariff) (Breakdown, error) {
	if t == nil {
		return Breakdown{}, domain.ErrNoApplicableTariff
	}
	if units.IsNegative() {
		return Breakdown{}, domain.NewValidationError("units", "consumption cannot be negative")
	}
	if err := ValidateSlabs(t.Slabs); err != nil {
		return Breakdown{}, err
	}

	var (
		base      = decimal.Zero
		lower     = decimal.Zero
		remaining = units
		charges   = make([]SlabCharge, 0, len(t.Slabs))
	)
	for _, s := range t.Slabs {
		if !remaining.IsPositive() {
			break
		}
		take := remaining
		if s.UpTo != nil {
			take = decimal.Min(remaining, s.UpTo.Sub(lower))
		}
		amount := take.Mul(s.Rate)
		charges = append(charges, SlabCharge{From: lower, UpTo: s.UpTo, Units: take, Rate: s.Rate, Amount: amount.Round(moneyPlaces)})
		base = base.Add(amount)
		remaining = remaining.Sub(take)
		if s.UpTo != nil {
			lower = *s.UpTo
		}
	}

	base = base.Round(moneyPlaces)
	fixed := t.FixedCharge.Round(moneyPlaces)
	duty := base.Mul(t.DutyPercent).Div(hundred).Round(moneyPlaces)
	gst := base.Mul(t.GSTPercent).Div(hundred).Round(moneyPlaces)

	return Breakdown{
		Units:           units,
		BaseAmount:      base,
		FixedCharges:    fixed,
		ElectricityDuty: duty,
		GSTAmount:       gst,
		TotalAmount:     base.Add(fixed).Add(duty).Add(gst),
		Slabs:           charges,
	}, nil
}

// ValidateSlabs requires strictly ascending positive bounds, non-negative rates
// and an unbounded final slab.
func ValidateSlabs(slabs []domain.Slab) error {
	if len(slabs) == 0 {
		return domain.NewValidationError("slabs", "tariff has no slabs")
	}
	lower := decimal.Zero
	for i, s := range slabs {
		if s.Rate.IsNegative() {
			return domain.NewValidationError("slabs", fmt.Sprintf("slab %d has a negative rate", i+1))
		}
		last := i == len(slabs)-1
		if s.UpTo == nil {
			if !last {
				return domain.NewValidationError("slabs", fmt.Sprintf("slab %d is unbounded but not last", i+1))
			}
			continue
		}
		if last {
			return domain.NewValidationError("slabs", "final slab must be unbounded")
		}
		if !s.UpTo.GreaterThan(lower) {
			return domain.NewValidationError("slabs", fmt.Sprintf("slab %d bound must exceed %s", i+1, lower))
		}
		lower = *s.UpTo
	}
	return nil
}

// Select picks the tariff in force for category during month: effective on or
// before it and not expired before it. The latest effective date wins.
func Select(tariffs []domain.Tariff, category string, month time.Time) (*domain.Tariff, error) {
	var candidates []domain.Tariff
	for _, t := range tariffs {
		if t.Category != category || (t.Status != "" && t.Status != "active") {
			continue
		}
		if t.EffectiveDate.After(month) {
			continue
		}
		if t.ValidUntil != nil && t.ValidUntil.Before(month) {
			continue
		}
		candidates = append(candidates, t)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: category %s for %s", domain.ErrNoApplicableTariff, category, month.Format("2006-01"))
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].EffectiveDate.After(candidates[j].EffectiveDate)
	})
	return &candidates[0], nil
}
