package availability

import (
	"strconv"
	"strings"
	"time"

	"fulfillment/internal/entities"
)

type ConflictReason string

const (
	ReasonDateUnavailable       ConflictReason = "DATE_UNAVAILABLE"
	ReasonCapacityExceeded      ConflictReason = "CAPACITY_EXCEEDED"
	ReasonSlotUnavailable       ConflictReason = "SLOT_UNAVAILABLE"
	ReasonDuplicateCustomerSlot ConflictReason = "DUPLICATE_CUSTOMER_SLOT"
)

func (r ConflictReason) String() string {
	return string(r)
}

type Request struct {
	Date     time.Time
	TimeSlot string

	// Identity excludes the order's own schedule from capacity counts so a
	// reschedule onto the same day is not rejected by itself.
	Identity   entities.OrderIdentity
	CustomerID *int64
}

type Detector struct {
	policies []Policy
}

func NewDetector(policies ...Policy) *Detector {
	return &Detector{policies: policies}
}

// Detect collects every applicable reason; it does not short-circuit.
// An empty result means the date is clear.
func (d *Detector) Detect(req Request, existing []entities.DeliverySchedule, day entities.CalendarDay, capacityLimit int) []ConflictReason {
	var reasons []ConflictReason

	if !day.IsBookable() {
		reasons = append(reasons, ReasonDateUnavailable)
	}

	if ActiveOn(req, existing) >= EffectiveCapacity(day, capacityLimit) {
		reasons = append(reasons, ReasonCapacityExceeded)
	}

	for _, policy := range d.policies {
		reasons = append(reasons, policy.Check(req, existing, day)...)
	}

	return reasons
}

// EffectiveCapacity is the lower of the global limit and the day's own cap.
func EffectiveCapacity(day entities.CalendarDay, capacityLimit int) int {
	if day.MaxDeliveries < capacityLimit {
		return day.MaxDeliveries
	}
	return capacityLimit
}

// ActiveOn counts non-cancelled schedules on the requested day, not counting
// the requesting order's own schedule.
func ActiveOn(req Request, existing []entities.DeliverySchedule) int {
	count := 0
	for _, schedule := range existing {
		if !schedule.Status.IsActive() || !entities.SameDay(schedule.DeliveryDate, req.Date) {
			continue
		}
		if !req.Identity.IsZero() && schedule.Identity == req.Identity {
			continue
		}
		count++
	}
	return count
}

// SlotPolicy rejects a slot whose period is closed on the calendar day.
type SlotPolicy struct{}

func (SlotPolicy) Check(req Request, _ []entities.DeliverySchedule, day entities.CalendarDay) []ConflictReason {
	period, ok := SlotPeriodOf(req.TimeSlot)
	if !ok || day.SlotAvailable(period) {
		return nil
	}
	return []ConflictReason{ReasonSlotUnavailable}
}

// DuplicateCustomerPolicy rejects a second active delivery for the same
// customer in the same slot on the same day.
type DuplicateCustomerPolicy struct{}

func (DuplicateCustomerPolicy) Check(req Request, existing []entities.DeliverySchedule, _ entities.CalendarDay) []ConflictReason {
	if req.CustomerID == nil {
		return nil
	}

	for _, schedule := range existing {
		if !schedule.Status.IsActive() || schedule.CustomerID == nil || *schedule.CustomerID != *req.CustomerID {
			continue
		}
		if schedule.Identity == req.Identity {
			continue
		}
		if entities.SameDay(schedule.DeliveryDate, req.Date) && schedule.TimeSlot == req.TimeSlot {
			return []ConflictReason{ReasonDuplicateCustomerSlot}
		}
	}
	return nil
}

// SlotPeriodOf maps a slot such as "9:00-12:00" to the period of its start
// hour. Unparseable slots report false.
func SlotPeriodOf(timeSlot string) (entities.SlotPeriod, bool) {
	start, _, _ := strings.Cut(strings.TrimSpace(timeSlot), "-")
	hourText, _, _ := strings.Cut(strings.TrimSpace(start), ":")

	hour, err := strconv.Atoi(hourText)
	if err != nil || hour < 0 || hour > 23 {
		return "", false
	}

	switch {
	case hour < 12:
		return entities.SlotMorning, true
	case hour < 17:
		return entities.SlotAfternoon, true
	default:
		return entities.SlotEvening, true
	}
}
