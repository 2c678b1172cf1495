package enums

import "fmt"

// ReportPeriod selects the date granularity of a sales summary.
type ReportPeriod string

const (
	ReportPeriodDay   ReportPeriod = "day"
	ReportPeriodMonth ReportPeriod = "month"
	ReportPeriodYear  ReportPeriod = "year"
)

var validReportPeriods = []ReportPeriod{
	ReportPeriodDay,
	ReportPeriodMonth,
	ReportPeriodYear,
}

// IsValid reports whether the period is recognized.
func (p ReportPeriod) IsValid() bool {
	for _, candidate := range validReportPeriods {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseReportPeriod converts raw input into ReportPeriod.
func ParseReportPeriod(value string) (ReportPeriod, error) {
	for _, candidate := range validReportPeriods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid report period %q", value)
}
