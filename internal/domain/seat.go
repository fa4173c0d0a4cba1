package domain

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// SeatKind is the seat-type variant. Display metadata and pairing rules hang off
// the kind instead of being re-derived from the type name at every call site.
type SeatKind int

const (
	Standard SeatKind = iota
	Vip
	Couple
)

var seatKindNames = map[string]SeatKind{
	"standard": Standard,
	"vip":      Vip,
	"couple":   Couple,
}

// SeatKindFromName maps an inventory type name to a kind. Unknown names fall
// back to Standard so that a new type introduced upstream degrades to base
// pricing instead of breaking the seat map.
func SeatKindFromName(name string) SeatKind {
	kind, ok := seatKindNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Standard
	}

	return kind
}

func (k SeatKind) String() string {
	switch k {
	case Vip:
		return "vip"
	case Couple:
		return "couple"
	default:
		return "standard"
	}
}

// Label is the human-readable name shown on the seat map legend.
func (k SeatKind) Label() string {
	switch k {
	case Vip:
		return "VIP"
	case Couple:
		return "Couple"
	default:
		return "Standard"
	}
}

func (k SeatKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SeatKind) UnmarshalText(text []byte) error {
	*k = SeatKindFromName(string(text))
	return nil
}

// SeatType is the pricing record attached to a seat. The zero value stands for
// a missing type record and prices as standard.
type SeatType struct {
	ID         int
	Kind       SeatKind
	Multiplier decimal.Decimal
	Active     bool
}

// EffectiveMultiplier returns the price multiplier to apply for this type.
// Missing, inactive, or non-positive multipliers default to 1.
func (t SeatType) EffectiveMultiplier() decimal.Decimal {
	if !t.Active || !t.Multiplier.IsPositive() {
		return decimal.NewFromInt(1)
	}

	return t.Multiplier
}

type Seat struct {
	ID        int
	Code      string
	Row       string
	Col       int
	Active    bool
	Available bool
	Type      SeatType
}

var seatCodeRgx = regexp.MustCompile(`^([A-Za-z]+)([0-9]+)$`)

// ParseSeatCode splits a seat code such as "A12" into its row letters and
// column number. Codes that don't match the row+column pattern report ok=false
// and must be treated as a data defect by the caller.
func ParseSeatCode(code string) (row string, col int, ok bool) {
	matches := seatCodeRgx.FindStringSubmatch(strings.TrimSpace(code))
	if matches == nil {
		return "", 0, false
	}

	col, err := strconv.Atoi(matches[2])
	if err != nil {
		return "", 0, false
	}

	return strings.ToUpper(matches[1]), col, true
}

// SeatPrice derives a seat's price in integer currency units from the
// showtime's base price and the seat's type multiplier, rounding half up.
func SeatPrice(basePrice decimal.Decimal, seatType SeatType) int64 {
	return basePrice.Mul(seatType.EffectiveMultiplier()).Round(0).IntPart()
}

// ParseBasePrice parses a base ticket price received from the caller as an
// opaque scalar. Non-numeric input prices as zero rather than failing; the
// real booking submission is validated server-side by the booking backend.
func ParseBasePrice(raw string) decimal.Decimal {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || price.IsNegative() {
		return decimal.Zero
	}

	return price
}

// SeatInventory is the external seat-inventory collaborator. The backend owns
// availability; this client only observes it at load time.
type SeatInventory interface {
	SeatsByScreen(ctx context.Context, screenID int) ([]Seat, error)
}
