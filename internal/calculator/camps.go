package calculator

import (
	"errors"
	"fmt"
)

var (
	ErrEndBeforeStart  = errors.New("end date is before start date")
	ErrInvalidDuration = errors.New("camp dates do not match camp type")
	ErrUnknownCampType = errors.New("unknown camp type")
)

// ValidateCampDates checks the date rules for each camp type:
// a day camp is one date, an overnight camp is two consecutive dates and
// an expedition covers at least three dates.
func ValidateCampDates(campType, startDate, endDate string) error {
	start, err := ParseDate(startDate)
	if err != nil {
		return err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return err
	}
	if end.Before(start) {
		return ErrEndBeforeStart
	}

	nights := daysBetween(start, end)
	switch campType {
	case "day":
		if nights != 0 {
			return fmt.Errorf("%w: day camp must start and end on the same date", ErrInvalidDuration)
		}
	case "overnight":
		if nights != 1 {
			return fmt.Errorf("%w: overnight camp must span two consecutive dates", ErrInvalidDuration)
		}
	case "expedition":
		if nights < 2 {
			return fmt.Errorf("%w: expedition must span at least three dates", ErrInvalidDuration)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCampType, campType)
	}
	return nil
}

// DateWithin reports whether date falls inside the inclusive camp range.
func DateWithin(date, startDate, endDate string) (bool, error) {
	d, err := ParseDate(date)
	if err != nil {
		return false, err
	}
	span, err := ParseSpan(startDate, endDate)
	if err != nil {
		return false, err
	}
	return !d.Before(span.Start) && !d.After(span.End), nil
}
