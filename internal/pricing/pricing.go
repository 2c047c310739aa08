// Package pricing computes the nightly price estimate shown in the
// booking wizard. The server recomputes the authoritative total on
// booking creation; quotes here are display values.
package pricing

import (
	"math"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// RoomRate is the slice of room fields the calculator needs.
type RoomRate struct {
	RoomID   int64
	Price    string // decimal as string
	RoomName string
	RoomType string
}

// OfferRate mirrors an offer row. A nil StartDate or EndDate makes the
// offer open-ended: it applies to any stay.
type OfferRate struct {
	RoomID     int64
	OfferPrice *string
	StartDate  *string
	EndDate    *string
	IsActive   bool
}

type PriceQuote struct {
	OriginalPricePerNight float64  `json:"original_price_per_night"`
	OfferPricePerNight    *float64 `json:"offer_price_per_night"`
	PricePerNight         float64  `json:"price_per_night"`
	Nights                int      `json:"nights"`
	Total                 float64  `json:"total"`
	IsOffer               bool     `json:"is_offer"`
	// Conflict reports that more than one active offer matched the stay.
	// The first in slice order still wins; well-formed data never has two.
	Conflict bool `json:"conflict,omitempty"`
}

// Quote resolves the room, picks the first matching active offer and
// returns the per-night breakdown. Unknown rooms and missing or
// malformed dates yield a zero quote rather than an error: the wizard
// calls this on every field change, before validation has run.
func Quote(roomID int64, checkIn, checkOut string, rooms []RoomRate, offers []OfferRate) PriceQuote {
	var room *RoomRate
	for i := range rooms {
		if rooms[i].RoomID == roomID {
			room = &rooms[i]
			break
		}
	}
	if room == nil || checkIn == "" || checkOut == "" {
		return PriceQuote{}
	}

	ci, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return PriceQuote{}
	}
	co, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return PriceQuote{}
	}

	nights := int(co.Sub(ci).Hours() / 24)
	if nights < 1 {
		// floor, not validation: the step schema rejects inverted ranges
		nights = 1
	}

	basePrice, _ := strconv.ParseFloat(room.Price, 64)

	var matched *OfferRate
	matches := 0
	for i := range offers {
		o := &offers[i]
		if o.RoomID != roomID || !o.IsActive {
			continue
		}
		if !offerCovers(o, ci, co) {
			continue
		}
		matches++
		if matched == nil {
			matched = o
		}
	}

	var offerPrice *float64
	if matched != nil && matched.OfferPrice != nil && *matched.OfferPrice != "" {
		if p, err := strconv.ParseFloat(*matched.OfferPrice, 64); err == nil {
			offerPrice = &p
		}
	}

	perNight := basePrice
	if offerPrice != nil {
		perNight = *offerPrice
	}

	total := perNight * float64(nights)
	total = math.Round(total*100) / 100

	return PriceQuote{
		OriginalPricePerNight: basePrice,
		OfferPricePerNight:    offerPrice,
		PricePerNight:         perNight,
		Nights:                nights,
		Total:                 total,
		IsOffer:               matched != nil,
		Conflict:              matches > 1,
	}
}

// offerCovers reports whether the stay falls inside the offer window.
// Both check-in and check-out must be within [start, end] inclusive.
func offerCovers(o *OfferRate, ci, co time.Time) bool {
	if o.StartDate == nil || o.EndDate == nil {
		return true
	}
	start, err := time.Parse(dateLayout, *o.StartDate)
	if err != nil {
		return false
	}
	end, err := time.Parse(dateLayout, *o.EndDate)
	if err != nil {
		return false
	}
	return within(ci, start, end) && within(co, start, end)
}

func within(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}
