package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIntake() ReferralIntake {
	return ReferralIntake{
		IntakePath:            "referral",
		SourceType:            "manager",
		EmployeeID:            "e-1",
		RiskLevel:             "medium",
		SupportCategoryCodes:  []string{"housing", "transportation"},
		AssignedCoordinatorID: "u-coord",
	}
}

func TestValidateReferralIntake_Success(t *testing.T) {
	out, err := ValidateReferralIntake(validIntake())
	require.NoError(t, err)

	assert.Equal(t, IntakePathReferral, out.IntakePath)
	assert.Equal(t, SourceManager, out.SourceType)
	assert.Equal(t, RiskMedium, out.RiskLevel)
	assert.Equal(t, "e-1", out.EmployeeID)
	assert.Equal(t, []string{"housing", "transportation"}, out.SupportCategoryCodes)
}

func TestValidateReferralIntake_MissingRequiredFields(t *testing.T) {
	cases := map[string]func(*ReferralIntake){
		"intake_path": func(in *ReferralIntake) { in.IntakePath = "" },
		"source_type": func(in *ReferralIntake) { in.SourceType = "" },
		"employee_id": func(in *ReferralIntake) { in.EmployeeID = "" },
		"risk_level":  func(in *ReferralIntake) { in.RiskLevel = "" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validIntake()
			mutate(&in)

			out, err := ValidateReferralIntake(in)
			assert.Nil(t, out)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
			assert.Contains(t, err.Error(), "Missing required fields")
		})
	}
}

func TestValidateReferralIntake_InvalidEnums(t *testing.T) {
	cases := map[string]func(*ReferralIntake){
		"intake_path": func(in *ReferralIntake) { in.IntakePath = "walk_in" },
		"source_type": func(in *ReferralIntake) { in.SourceType = "stranger" },
		"risk_level":  func(in *ReferralIntake) { in.RiskLevel = "extreme" },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validIntake()
			mutate(&in)

			_, err := ValidateReferralIntake(in)
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
}

func TestValidateReferralIntake_EmptyCategoryCodes(t *testing.T) {
	in := validIntake()
	in.SupportCategoryCodes = []string{}

	_, err := ValidateReferralIntake(in)
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.Contains(t, err.Error(), "support_category_codes")
}
