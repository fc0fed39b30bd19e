package dto

// StaffReportRow is one line of the staff report: daily booking activity and
// revenue attributed to one staff member.
type StaffReportRow struct {
	StaffID        uint    `json:"staffId"`
	StaffName      string  `json:"staffName"`
	Date           string  `json:"date"`
	BookingCount   int     `json:"bookingCount"`
	ConfirmedCount int     `json:"confirmedCount"`
	Revenue        float64 `json:"revenue"`
}
