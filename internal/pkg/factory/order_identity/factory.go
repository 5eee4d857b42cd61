package order_identity

import (
	"errors"
	"strconv"
	"strings"

	"fulfillment/internal/entities"

	"github.com/cespare/xxhash/v2"
)

var (
	ErrMissingOrderReference = errors.New("order id and order number are both empty")
	ErrMissingAddress        = errors.New("no shipping address on order")
	ErrUnknownOrderType      = errors.New("unknown order type")
)

const (
	customOrderPrefix = "custom-order-"

	// surrogate ids live above every realistic sequence value
	surrogateBase = int64(1) << 61
	surrogateMask = uint64(1)<<61 - 1

	highPriorityThreshold = 50
)

type Defaults struct {
	City       string
	PostalCode string
	Province   string
}

type Factory struct {
	defaults Defaults
}

func New(defaults Defaults) *Factory {
	return &Factory{defaults: defaults}
}

// Normalize maps a RawOrder onto its canonical identity and shipping profile.
//
// Precedence, first non-empty wins:
//   - reference: ID, OrderNumber
//   - customer:  UserID, CustomerID
//   - address:   ShippingAddress, Address, CustomerAddress (required)
//   - city:      City, ShippingCity, default
//   - postal:    PostalCode, ShippingPostal, default
//   - province:  Province, ShippingProvince, default
//   - phone:     ContactPhone, CustomerPhone, Phone
//
// The numeric order id is the reference itself, or the number after the
// custom order prefix. Any other reference, "ORD-42" included, gets a stable
// xxhash surrogate of the whole reference, so retries converge on one
// identity and "42", "ORD-42" and "INV-2025-42" stay three orders.
func (f *Factory) Normalize(raw entities.RawOrder) (entities.NormalizedOrder, error) {
	ref := firstNonEmpty(raw.ID, raw.OrderNumber)
	if ref == "" {
		return entities.NormalizedOrder{}, ErrMissingOrderReference
	}

	identity, err := f.Identify(ref, raw.OrderType)
	if err != nil {
		return entities.NormalizedOrder{}, err
	}

	address := firstNonEmpty(raw.ShippingAddress, raw.Address, raw.CustomerAddress)
	if address == "" {
		return entities.NormalizedOrder{}, ErrMissingAddress
	}

	customerID := raw.UserID
	if customerID == nil {
		customerID = raw.CustomerID
	}

	priority := entities.PriorityNormal
	if raw.Priority > highPriorityThreshold {
		priority = entities.PriorityHigh
	}

	return entities.NormalizedOrder{
		Ref:         ref,
		Identity:    identity,
		OrderNumber: firstNonEmpty(raw.OrderNumber, ref),
		CustomerID:  customerID,
		CreatedAt:   raw.CreatedAt,
		Shipping: entities.ShippingProfile{
			Address:      address,
			City:         firstNonEmpty(raw.City, raw.ShippingCity, f.defaults.City),
			PostalCode:   firstNonEmpty(raw.PostalCode, raw.ShippingPostal, f.defaults.PostalCode),
			Province:     firstNonEmpty(raw.Province, raw.ShippingProvince, f.defaults.Province),
			ContactPhone: firstNonEmpty(raw.ContactPhone, raw.CustomerPhone, raw.Phone),
			Email:        strings.TrimSpace(raw.Email),
			CustomerName: strings.TrimSpace(raw.CustomerName),
		},
		Priority:         priority,
		ProductionStatus: strings.TrimSpace(raw.ProductionStatus),
		SyncTarget:       syncTarget(raw, ref),
	}, nil
}

// Identify resolves an order reference and its declared type to the identity
// schedules are keyed by.
func (f *Factory) Identify(ref, orderType string) (entities.OrderIdentity, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return entities.OrderIdentity{}, ErrMissingOrderReference
	}

	normalizedType, err := normalizeType(orderType, ref)
	if err != nil {
		return entities.OrderIdentity{}, err
	}

	orderID, surrogate := parseOrderID(ref)
	return entities.OrderIdentity{
		OrderID:   orderID,
		OrderType: normalizedType,
		Surrogate: surrogate,
	}, nil
}

func normalizeType(rawType, ref string) (entities.OrderType, error) {
	switch strings.ToLower(strings.TrimSpace(rawType)) {
	case "", "regular":
		if strings.HasPrefix(ref, customOrderPrefix) {
			return entities.OrderCustom, nil
		}
		return entities.OrderRegular, nil
	case "custom", "custom_order", "custom_design":
		return entities.OrderCustom, nil
	default:
		return "", ErrUnknownOrderType
	}
}

func parseOrderID(ref string) (int64, bool) {
	candidate := strings.TrimPrefix(ref, customOrderPrefix)

	id, err := strconv.ParseInt(candidate, 10, 64)
	if err == nil && id > 0 && id < surrogateBase {
		return id, false
	}

	return SurrogateID(ref), true
}

// SurrogateID derives a deterministic positive id for an unparseable reference.
func SurrogateID(ref string) int64 {
	return surrogateBase | int64(xxhash.Sum64String(ref)&surrogateMask)
}

func syncTarget(raw entities.RawOrder, ref string) *entities.AggregateRef {
	rawType := strings.ToLower(strings.TrimSpace(raw.OrderType))

	if rawType == "custom_design" {
		designID := strings.TrimSpace(raw.CustomDesignID)
		if designID == "" {
			return nil
		}
		return &entities.AggregateRef{Kind: entities.AggregateCustomDesign, ID: designID}
	}

	if strings.HasPrefix(ref, customOrderPrefix) {
		customOrderID := strings.TrimPrefix(ref, customOrderPrefix)
		if customOrderID == "" {
			return nil
		}
		return &entities.AggregateRef{Kind: entities.AggregateCustomOrder, ID: customOrderID}
	}

	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
