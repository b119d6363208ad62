package domain

// Closed vocabularies for referral intake and progress notes. Raw strings are
// parsed at the boundary via the Parse* constructors; inside the services only
// the typed values circulate.

// IntakePath how the support need entered the system
type IntakePath string

const (
	IntakePathReferral         IntakePath = "referral"
	IntakePathDirectEngagement IntakePath = "direct_engagement"
)

// ParseIntakePath validates a raw intake_path value
func ParseIntakePath(s string) (IntakePath, error) {
	switch IntakePath(s) {
	case IntakePathReferral, IntakePathDirectEngagement:
		return IntakePath(s), nil
	}
	return "", NewValidationError("intake_path", "Invalid intake/source/risk enum")
}

// SourceType who raised the referral
type SourceType string

const (
	SourceEmployeeSelf   SourceType = "employee_self"
	SourceManager        SourceType = "manager"
	SourceCoordinator    SourceType = "coordinator"
	SourceHR             SourceType = "hr"
	SourceAnonymousOther SourceType = "anonymous_other"
)

// ParseSourceType validates a raw source_type value
func ParseSourceType(s string) (SourceType, error) {
	switch SourceType(s) {
	case SourceEmployeeSelf, SourceManager, SourceCoordinator, SourceHR, SourceAnonymousOther:
		return SourceType(s), nil
	}
	return "", NewValidationError("source_type", "Invalid intake/source/risk enum")
}

// RiskLevel triage level assigned at intake
type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// ParseRiskLevel validates a raw risk_level value
func ParseRiskLevel(s string) (RiskLevel, error) {
	switch RiskLevel(s) {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return RiskLevel(s), nil
	}
	return "", NewValidationError("risk_level", "Invalid intake/source/risk enum")
}

// ReferralStatus referral lifecycle state.
// Single permitted transition: submitted -> converted_to_case.
type ReferralStatus string

const (
	ReferralSubmitted       ReferralStatus = "submitted"
	ReferralConvertedToCase ReferralStatus = "converted_to_case"
)

// CaseStatus case lifecycle state. Open extensible set pending product
// definition; the engine only relies on the OpenLike predicate for KPIs.
type CaseStatus string

const (
	CaseOpen          CaseStatus = "open"
	CaseActiveSupport CaseStatus = "active_support"
	CaseClosed        CaseStatus = "closed"
)

// OpenLike reports whether the status counts toward the open-case KPI
func (s CaseStatus) OpenLike() bool {
	return s == CaseOpen || s == CaseActiveSupport
}

// NoteType kind of coordinator-employee interaction
type NoteType string

const (
	NoteIntake           NoteType = "intake"
	NoteCoachingSession  NoteType = "coaching_session"
	NoteResourceReferral NoteType = "resource_referral"
	NoteCrisis           NoteType = "crisis"
	NoteFollowUp         NoteType = "follow_up"
)

// ParseNoteType validates a raw note_type value
func ParseNoteType(s string) (NoteType, error) {
	switch NoteType(s) {
	case NoteIntake, NoteCoachingSession, NoteResourceReferral, NoteCrisis, NoteFollowUp:
		return NoteType(s), nil
	}
	return "", NewValidationError("note_type", "Invalid note_type")
}

// MeetingLocation where the interaction happened
type MeetingLocation string

const (
	LocationOffice    MeetingLocation = "office"
	LocationGarage    MeetingLocation = "garage"
	LocationNewberry  MeetingLocation = "newberry"
	LocationCommunity MeetingLocation = "community"
	LocationPhone     MeetingLocation = "phone"
	LocationVideo     MeetingLocation = "video"
	LocationText      MeetingLocation = "text"
	LocationEmail     MeetingLocation = "email"
)

// ParseMeetingLocation validates a raw meeting_location value
func ParseMeetingLocation(s string) (MeetingLocation, error) {
	switch MeetingLocation(s) {
	case LocationOffice, LocationGarage, LocationNewberry, LocationCommunity,
		LocationPhone, LocationVideo, LocationText, LocationEmail:
		return MeetingLocation(s), nil
	}
	return "", NewValidationError("meeting_location", "Invalid meeting_location")
}

// NoteStatus draft/final state of a progress note
type NoteStatus string

const (
	NoteDraft NoteStatus = "draft"
	NoteFinal NoteStatus = "final"
)

// ParseNoteStatus validates a raw note status; empty defaults to draft
func ParseNoteStatus(s string) (NoteStatus, error) {
	if s == "" {
		return NoteDraft, nil
	}
	switch NoteStatus(s) {
	case NoteDraft, NoteFinal:
		return NoteStatus(s), nil
	}
	return "", NewValidationError("status", "Invalid status")
}
