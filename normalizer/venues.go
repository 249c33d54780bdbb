package normalizer

import (
	"events-server/models"
	"events-server/models/view"
)

func VenueRecords(venues []models.Venue) []view.VenueRecord {
	records := make([]view.VenueRecord, 0, len(venues))
	for i := range venues {
		records = append(records, VenueRecord(&venues[i]))
	}
	return records
}

// VenueRecord defaults each field to "N/A" on its own.
func VenueRecord(v *models.Venue) view.VenueRecord {
	na := view.NOT_AVAILABLE
	record := view.VenueRecord{
		Name:          stringOr(v.Name, na),
		Address:       na,
		City:          na,
		State:         na,
		PostalCode:    stringOr(v.PostalCode, na),
		URL:           stringOr(v.URL, na),
		PhoneNumber:   stringOr(v.PhoneNumber, na),
		BoxOfficeInfo: na,
		GeneralRule:   na,
		ChildRule:     na,
		LogoURL:       Logo(v.Images),
	}
	if v.Address != nil {
		record.Address = stringOr(v.Address.Line1, na)
	}
	if v.City != nil {
		record.City = stringOr(v.City.Name, na)
	}
	if v.State != nil {
		record.State = stringOr(v.State.Name, na)
	}
	if v.BoxOfficeInfo != nil {
		record.BoxOfficeInfo = stringOr(v.BoxOfficeInfo.PhoneNumberDetail, na)
	}
	if v.GeneralInfo != nil {
		record.GeneralRule = stringOr(v.GeneralInfo.GeneralRule, na)
		record.ChildRule = stringOr(v.GeneralInfo.ChildRule, na)
	}
	return record
}
