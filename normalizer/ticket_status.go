package normalizer

import (
	"strings"

	"events-server/models"
)

// TicketStatus is a display label plus the key the client styles by.
type TicketStatus struct {
	Label string
	Key   string
}

var ticketStatuses = map[string]TicketStatus{
	"onsale":      {Label: "On Sale", Key: "onsale"},
	"offsale":     {Label: "Off Sale", Key: "offsale"},
	"cancelled":   {Label: "Canceled", Key: "canceled"},
	"postponed":   {Label: "Postponed", Key: "postponed"},
	"rescheduled": {Label: "Rescheduled", Key: "rescheduled"},
}

// LookupTicketStatus maps an upstream status code; ok is false for a missing
// or unrecognized code.
func LookupTicketStatus(code string) (TicketStatus, bool) {
	s, ok := ticketStatuses[strings.ToLower(code)]
	return s, ok
}

func eventTicketStatus(dates *models.EventDates) (label, key *string) {
	if dates == nil || dates.Status == nil || dates.Status.Code == nil {
		return nil, nil
	}
	s, ok := LookupTicketStatus(*dates.Status.Code)
	if !ok {
		return nil, nil
	}
	return strPtr(s.Label), strPtr(s.Key)
}
