package domain

import "time"

const (
	calendarDateLayout           = "2006-01-02"
	naiveDateTimeLayout          = "2006-01-02T15:04:05"
	naiveDateTimeNoSecondsLayout = "2006-01-02T15:04"
)

// ParseCalendarDate validates a YYYY-MM-DD calendar date (no time component)
func ParseCalendarDate(s string) (string, error) {
	if _, err := time.Parse(calendarDateLayout, s); err != nil {
		return "", NewValidationError("note_start_date", "note_start_date must be ISO date (YYYY-MM-DD)")
	}
	return s, nil
}

// ParseTimestamp validates an ISO 8601 datetime. A trailing Z is accepted as
// the +00:00 offset; a datetime without any offset is interpreted as UTC.
func ParseTimestamp(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts.UTC(), nil
	}
	if ts, err := time.ParseInLocation(naiveDateTimeLayout, s, time.UTC); err == nil {
		return ts, nil
	}
	if ts, err := time.ParseInLocation(naiveDateTimeNoSecondsLayout, s, time.UTC); err == nil {
		return ts, nil
	}
	return time.Time{}, NewValidationError("interaction_at", "interaction_at must be ISO datetime")
}

// ProgressNoteInput raw progress note as received from the transport
type ProgressNoteInput struct {
	EmployeeID       string
	CaseID           string
	NoteType         string
	NoteStartDate    string
	InteractionAt    string
	MeetingLocation  string
	AreasOfNeedCodes []string
	SummaryOfMeeting string
	Status           string
}

// ValidatedNote note fields after format and vocabulary validation
type ValidatedNote struct {
	EmployeeID       string
	CaseID           string
	NoteType         NoteType
	NoteStartDate    string
	InteractionAt    time.Time
	Location         MeetingLocation
	AreasOfNeedCodes []string
	SummaryOfMeeting string
	Status           NoteStatus
}

// ValidateProgressNoteInput gates note recording. Pure function: required
// fields, vocabularies, date/datetime formats. Case resolution and the
// case/employee consistency check are the note service's job.
func ValidateProgressNoteInput(in ProgressNoteInput) (*ValidatedNote, error) {
	// areas_of_need_codes must be present (nil = absent from the body) but
	// may be empty: not every interaction surfaces a need.
	if in.EmployeeID == "" || in.CaseID == "" || in.NoteType == "" ||
		in.NoteStartDate == "" || in.InteractionAt == "" ||
		in.MeetingLocation == "" || in.AreasOfNeedCodes == nil {
		return nil, NewValidationError("", "Missing required fields")
	}

	noteType, err := ParseNoteType(in.NoteType)
	if err != nil {
		return nil, err
	}
	startDate, err := ParseCalendarDate(in.NoteStartDate)
	if err != nil {
		return nil, err
	}
	interactionAt, err := ParseTimestamp(in.InteractionAt)
	if err != nil {
		return nil, err
	}
	location, err := ParseMeetingLocation(in.MeetingLocation)
	if err != nil {
		return nil, err
	}
	status, err := ParseNoteStatus(in.Status)
	if err != nil {
		return nil, err
	}

	return &ValidatedNote{
		EmployeeID:       in.EmployeeID,
		CaseID:           in.CaseID,
		NoteType:         noteType,
		NoteStartDate:    startDate,
		InteractionAt:    interactionAt,
		Location:         location,
		AreasOfNeedCodes: in.AreasOfNeedCodes,
		SummaryOfMeeting: in.SummaryOfMeeting,
		Status:           status,
	}, nil
}
