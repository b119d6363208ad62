package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validNoteInput() ProgressNoteInput {
	return ProgressNoteInput{
		EmployeeID:       "e-1",
		CaseID:           "case-1",
		NoteType:         "coaching_session",
		NoteStartDate:    "2026-02-01",
		InteractionAt:    "2026-02-01T15:00:00Z",
		MeetingLocation:  "office",
		AreasOfNeedCodes: []string{"housing"},
		Status:           "final",
	}
}

func TestValidateProgressNoteInput_Success(t *testing.T) {
	out, err := ValidateProgressNoteInput(validNoteInput())
	require.NoError(t, err)

	assert.Equal(t, NoteCoachingSession, out.NoteType)
	assert.Equal(t, "2026-02-01", out.NoteStartDate)
	assert.Equal(t, LocationOffice, out.Location)
	assert.Equal(t, NoteFinal, out.Status)
	assert.Equal(t, time.Date(2026, 2, 1, 15, 0, 0, 0, time.UTC), out.InteractionAt)
}

func TestValidateProgressNoteInput_StatusDefaultsToDraft(t *testing.T) {
	in := validNoteInput()
	in.Status = ""

	out, err := ValidateProgressNoteInput(in)
	require.NoError(t, err)
	assert.Equal(t, NoteDraft, out.Status)
}

func TestValidateProgressNoteInput_WrongDateFormat(t *testing.T) {
	in := validNoteInput()
	in.NoteStartDate = "02-01-2026"

	_, err := ValidateProgressNoteInput(in)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Contains(t, err.Error(), "note_start_date")
}

func TestValidateProgressNoteInput_BadTimestamp(t *testing.T) {
	in := validNoteInput()
	in.InteractionAt = "yesterday afternoon"

	_, err := ValidateProgressNoteInput(in)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Contains(t, err.Error(), "interaction_at")
}

func TestValidateProgressNoteInput_NaiveDatetimeTreatedAsUTC(t *testing.T) {
	in := validNoteInput()
	in.InteractionAt = "2026-02-01T15:00:00"

	out, err := ValidateProgressNoteInput(in)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 15, 0, 0, 0, time.UTC), out.InteractionAt)
}

func TestValidateProgressNoteInput_OffsetTimestampNormalizedToUTC(t *testing.T) {
	in := validNoteInput()
	in.InteractionAt = "2026-02-01T10:00:00-05:00"

	out, err := ValidateProgressNoteInput(in)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 15, 0, 0, 0, time.UTC), out.InteractionAt)
}

func TestValidateProgressNoteInput_InvalidVocabulary(t *testing.T) {
	cases := map[string]func(*ProgressNoteInput){
		"note_type":        func(in *ProgressNoteInput) { in.NoteType = "chat" },
		"meeting_location": func(in *ProgressNoteInput) { in.MeetingLocation = "rooftop" },
		"status":           func(in *ProgressNoteInput) { in.Status = "archived" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validNoteInput()
			mutate(&in)

			_, err := ValidateProgressNoteInput(in)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
}

func TestValidateProgressNoteInput_MissingRequiredFields(t *testing.T) {
	cases := map[string]func(*ProgressNoteInput){
		"case_id":             func(in *ProgressNoteInput) { in.CaseID = "" },
		"areas_of_need_codes": func(in *ProgressNoteInput) { in.AreasOfNeedCodes = nil },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validNoteInput()
			mutate(&in)

			_, err := ValidateProgressNoteInput(in)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Contains(t, err.Error(), "Missing required fields")
		})
	}
}

func TestValidateProgressNoteInput_EmptyAreasOfNeedCodesAllowed(t *testing.T) {
	in := validNoteInput()
	in.AreasOfNeedCodes = []string{}

	out, err := ValidateProgressNoteInput(in)
	require.NoError(t, err)
	assert.Empty(t, out.AreasOfNeedCodes)
}

func TestValidateProgressNoteInput_NoSecondsTimestamp(t *testing.T) {
	in := validNoteInput()
	in.InteractionAt = "2026-02-01T15:00"

	out, err := ValidateProgressNoteInput(in)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 15, 0, 0, 0, time.UTC), out.InteractionAt)
}
