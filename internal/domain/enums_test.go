package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseStatus_OpenLike(t *testing.T) {
	assert.True(t, CaseOpen.OpenLike())
	assert.True(t, CaseActiveSupport.OpenLike())
	assert.False(t, CaseClosed.OpenLike())
	// case_status is an open set; unknown values simply don't count as open
	assert.False(t, CaseStatus("paused").OpenLike())
}

func TestParseNoteStatus_EmptyDefaultsToDraft(t *testing.T) {
	status, err := ParseNoteStatus("")
	require.NoError(t, err)
	assert.Equal(t, NoteDraft, status)
}

func TestParseEnums_RejectUnknownValues(t *testing.T) {
	_, err := ParseIntakePath("osmosis")
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = ParseSourceType("psychic")
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = ParseRiskLevel("mild")
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = ParseNoteType("gossip")
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = ParseMeetingLocation("moon")
	assert.Equal(t, KindValidation, KindOf(err))

	_, err = ParseNoteStatus("pending")
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestKindOf_NonDomainError(t *testing.T) {
	assert.Equal(t, ErrorKind(""), KindOf(assert.AnError))
}
