package slot

import (
	"time"

	"github.com/google/uuid"
)

var newSlotID = uuid.NewString

// GenerateDaySlots returns the free slots of a single calendar day.
//
// The day runs from the configured start to the configured end of its ISO
// weekday. On the first day of a window the start moves up to the window
// start, rounded up to the next slot bucket of its hour; on the last day the
// end moves down to the window end, rounded down to the previous bucket.
// Slots that overlap an exclusion are dropped. Degenerate input yields an
// empty result, never an error.
func GenerateDaySlots(req DayRequest) []AvailableSlot {
	if req.SlotMinutes <= 0 {
		return nil
	}
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}

	day := req.Day.In(loc)
	hours := req.Preference.ForISOWeekday(ISOWeekday(day))
	effectiveStart := atClock(day, hours.Start, loc)
	effectiveEnd := atClock(day, hours.End, loc)

	if req.IsFirstDay {
		if day.After(effectiveEnd) {
			return nil
		}
		if rounded := roundUpToBucket(day, req.SlotMinutes); rounded.After(effectiveStart) {
			effectiveStart = rounded
		}
	}

	if req.IsLastDay && req.Boundary != nil {
		if rounded := roundDownToBucket(req.Boundary.In(loc), req.SlotMinutes); rounded.Before(effectiveEnd) {
			effectiveEnd = rounded
		}
	}

	totalMinutes := int(effectiveEnd.Sub(effectiveStart) / time.Minute)
	if totalMinutes <= 0 {
		return nil
	}

	step := time.Duration(req.SlotMinutes) * time.Minute
	slots := make([]AvailableSlot, 0, totalMinutes/req.SlotMinutes)
	for i := 0; i+req.SlotMinutes <= totalMinutes; i += req.SlotMinutes {
		start := effectiveStart.Add(time.Duration(i) * time.Minute)
		end := start.Add(step)
		if isExcluded(start, end, req.Exclusions) {
			continue
		}
		slots = append(slots, AvailableSlot{
			ID:    newSlotID(),
			Start: start,
			End:   end,
		})
	}
	return slots
}

// GenerateWindowSlots drives GenerateDaySlots across every calendar day the
// window touches in the target location and concatenates the results in
// chronological order.
func GenerateWindowSlots(req WindowRequest) []AvailableSlot {
	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}
	start := req.Start.In(loc)
	end := req.End.In(loc)
	if !end.After(start) {
		return nil
	}

	lastDay := calendarDaysBetween(start, end, loc)
	if lastDay == 0 {
		return GenerateDaySlots(DayRequest{
			SlotMinutes: req.SlotMinutes,
			Day:         start,
			Location:    loc,
			Preference:  req.Preference,
			Exclusions:  req.Exclusions,
			IsFirstDay:  true,
			IsLastDay:   true,
			Boundary:    &end,
		})
	}

	var slots []AvailableSlot
	y, mo, d := start.Date()
	for i := 0; i <= lastDay; i++ {
		anchor := time.Date(y, mo, d+i, 0, 0, 0, 0, loc)
		if i == 0 {
			anchor = start
		}
		dayReq := DayRequest{
			SlotMinutes: req.SlotMinutes,
			Day:         anchor,
			Location:    loc,
			Preference:  req.Preference,
			Exclusions:  exclusionsForDay(req.Exclusions, anchor, loc),
			IsFirstDay:  i == 0,
			IsLastDay:   i == lastDay,
		}
		if dayReq.IsLastDay {
			dayReq.Boundary = &end
		}
		slots = append(slots, GenerateDaySlots(dayReq)...)
	}
	return slots
}
