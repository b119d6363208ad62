package domain

// ReferralIntake raw referral submission as received from the transport
type ReferralIntake struct {
	IntakePath            string
	SourceType            string
	EmployeeID            string
	RiskLevel             string
	SupportCategoryCodes  []string
	AssignedCoordinatorID string
}

// ValidatedIntake intake fields after vocabulary validation
type ValidatedIntake struct {
	IntakePath            IntakePath
	SourceType            SourceType
	EmployeeID            string
	RiskLevel             RiskLevel
	SupportCategoryCodes  []string
	AssignedCoordinatorID string
}

// ValidateReferralIntake gates referral submission. Pure function: checks
// required fields, enum membership and the non-empty code list, nothing else.
// Employee resolution is the referral service's job.
func ValidateReferralIntake(in ReferralIntake) (*ValidatedIntake, error) {
	if in.IntakePath == "" || in.SourceType == "" || in.EmployeeID == "" || in.RiskLevel == "" {
		return nil, NewValidationError("", "Missing required fields")
	}

	intakePath, err := ParseIntakePath(in.IntakePath)
	if err != nil {
		return nil, err
	}
	sourceType, err := ParseSourceType(in.SourceType)
	if err != nil {
		return nil, err
	}
	riskLevel, err := ParseRiskLevel(in.RiskLevel)
	if err != nil {
		return nil, err
	}
	if len(in.SupportCategoryCodes) == 0 {
		return nil, NewValidationError("support_category_codes", "support_category_codes must be a non-empty array")
	}

	return &ValidatedIntake{
		IntakePath:            intakePath,
		SourceType:            sourceType,
		EmployeeID:            in.EmployeeID,
		RiskLevel:             riskLevel,
		SupportCategoryCodes:  in.SupportCategoryCodes,
		AssignedCoordinatorID: in.AssignedCoordinatorID,
	}, nil
}
