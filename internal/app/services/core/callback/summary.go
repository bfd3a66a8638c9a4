package callback

import (
	"fmt"
	"meeting-scheduler-service/internal/pkg/constvars"
	"meeting-scheduler-service/internal/pkg/dto/requests"
	"strings"
)

type labelAccessor func(part *requests.CallbackEventPart) string

// eventPartLabelAccessors are tried in order; the first non-blank label wins.
var eventPartLabelAccessors = []labelAccessor{
	func(part *requests.CallbackEventPart) string {
		if part.Event == nil {
			return ""
		}
		return part.Event.Summary
	},
	func(part *requests.CallbackEventPart) string {
		if part.Event == nil {
			return ""
		}
		return part.Event.Title
	},
	func(part *requests.CallbackEventPart) string {
		if part.Event == nil {
			return ""
		}
		return part.Event.ID
	},
	func(part *requests.CallbackEventPart) string {
		return part.ID
	},
}

func eventPartLabel(part *requests.CallbackEventPart) string {
	for _, accessor := range eventPartLabelAccessors {
		if label := strings.TrimSpace(accessor(part)); label != "" {
			return label
		}
	}
	return constvars.SummaryUnnamedEventPartLabel
}

// scheduledTimeInfo renders "from HH:MM to HH:MM on --MM-DD (DAY)", dropping
// the day hint parts the solver left out.
func scheduledTimeInfo(timeslot *requests.CallbackTimeslot) string {
	if timeslot.StartTime == "" || timeslot.EndTime == "" {
		return constvars.SummaryUnspecifiedTime
	}

	dayInfo := timeslot.DayOfWeek
	if timeslot.MonthDay != "" {
		dateHint := "on " + timeslot.MonthDay
		if dayInfo != "" {
			dayInfo = fmt.Sprintf("%s (%s)", dateHint, dayInfo)
		} else {
			dayInfo = dateHint
		}
	}

	info := fmt.Sprintf("from %s to %s", timeslot.StartTime, timeslot.EndTime)
	if dayInfo != "" {
		info += " " + dayInfo
	}
	return info
}

// composeSummary builds the user notification for a solved request:
// scheduled items, then unscheduled items, then the score line.
func composeSummary(originalQuery string, solution *requests.SchedulerCallback) string {
	var scheduled, unscheduled []string
	for _, part := range solution.EventPartList {
		if part == nil {
			continue
		}
		label := eventPartLabel(part)
		if part.Timeslot != nil {
			scheduled = append(scheduled, fmt.Sprintf(constvars.SummaryScheduledBullet, label, scheduledTimeInfo(part.Timeslot)))
		} else {
			unscheduled = append(unscheduled, fmt.Sprintf(constvars.SummaryUnscheduledBullet, label))
		}
	}

	queryHint := ""
	if originalQuery != "" {
		queryHint = fmt.Sprintf(` ("%s")`, originalQuery)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf(constvars.SummaryHeaderFormat, queryHint))
	b.WriteString("\n")
	if len(scheduled) > 0 {
		b.WriteString("\n" + constvars.SummaryScheduledSection + "\n")
		b.WriteString(strings.Join(scheduled, "\n") + "\n")
	}
	if len(unscheduled) > 0 {
		b.WriteString("\n" + constvars.SummaryUnscheduledSection + "\n")
		b.WriteString(strings.Join(unscheduled, "\n") + "\n")
	}

	switch {
	case len(solution.EventPartList) == 0:
		b.WriteString(constvars.SummaryNoEventsProcessed + "\n")
	case len(scheduled) == 0 && len(unscheduled) == 0:
		b.WriteString(constvars.SummaryOutcomesUnclear + "\n")
	}

	if solution.Score != "" {
		b.WriteString("\n" + fmt.Sprintf(constvars.SummaryScoreFormat, string(solution.Score)))
	}

	return strings.TrimSpace(b.String())
}
