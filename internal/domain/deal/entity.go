package deal

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Deal is a time-boxed promotional offer attached to one venue.
type Deal struct {
	id              uuid.UUID
	venueID         uuid.UUID
	title           string
	description     string
	originalPrice   *decimal.Decimal
	discountedPrice *decimal.Decimal
	mediaRefs       []string
	active          bool
	schedule        Schedule
	createdAt       time.Time
	updatedAt       time.Time
}

type Content struct {
	Title           string
	Description     string
	OriginalPrice   *decimal.Decimal
	DiscountedPrice *decimal.Decimal
	MediaRefs       []string
}

func NewDeal(id, venueID uuid.UUID, content Content, active bool, schedule Schedule, now time.Time) (*Deal, error) {
	if venueID == uuid.Nil {
		return nil, ErrMissingVenue
	}

	title, err := validateTitle(content.Title)
	if err != nil {
		return nil, err
	}

	description := strings.TrimSpace(content.Description)
	if len(description) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	if err := validatePrices(content.OriginalPrice, content.DiscountedPrice); err != nil {
		return nil, err
	}

	media, err := validateMediaRefs(content.MediaRefs)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Deal{
		id:              id,
		venueID:         venueID,
		title:           title,
		description:     description,
		originalPrice:   content.OriginalPrice,
		discountedPrice: content.DiscountedPrice,
		mediaRefs:       media,
		active:          active,
		schedule:        schedule,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructDeal rebuilds a persisted deal as-is.
func ReconstructDeal(id, venueID uuid.UUID, content Content, active bool, schedule Schedule, createdAt, updatedAt time.Time) *Deal {
	return &Deal{
		id:              id,
		venueID:         venueID,
		title:           content.Title,
		description:     content.Description,
		originalPrice:   content.OriginalPrice,
		discountedPrice: content.DiscountedPrice,
		mediaRefs:       content.MediaRefs,
		active:          active,
		schedule:        schedule,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func validateTitle(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrEmptyTitle
	}
	if len([]rune(t)) > MaxTitleLength {
		return "", ErrTitleTooLong
	}
	return t, nil
}

func validatePrices(original, discounted *decimal.Decimal) error {
	if original != nil && original.IsNegative() {
		return ErrNegativePrice
	}
	if discounted != nil && discounted.IsNegative() {
		return ErrNegativePrice
	}
	if original != nil && discounted != nil && discounted.GreaterThan(*original) {
		return ErrDiscountAboveOrigin
	}
	return nil
}

func validateMediaRefs(refs []string) ([]string, error) {
	if len(refs) > MaxMediaRefs {
		return nil, ErrTooManyMediaRefs
	}
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		r = strings.TrimSpace(r)
		if r == "" {
			return nil, ErrEmptyMediaRef
		}
		out = append(out, r)
	}
	return out, nil
}

func (d *Deal) ID() uuid.UUID                     { return d.id }
func (d *Deal) VenueID() uuid.UUID                { return d.venueID }
func (d *Deal) Title() string                     { return d.title }
func (d *Deal) Description() string               { return d.description }
func (d *Deal) OriginalPrice() *decimal.Decimal   { return d.originalPrice }
func (d *Deal) DiscountedPrice() *decimal.Decimal { return d.discountedPrice }
func (d *Deal) MediaRefs() []string               { return d.mediaRefs }
func (d *Deal) Active() bool                      { return d.active }
func (d *Deal) Schedule() Schedule                { return d.schedule }
func (d *Deal) CreatedAt() time.Time              { return d.createdAt }
func (d *Deal) UpdatedAt() time.Time              { return d.updatedAt }
