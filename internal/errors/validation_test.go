package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/npc-generator/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationError() {
	ve := errors.NewValidationError()
	ve.AddFieldError("Groups", "is required")
	ve.AddFieldError("Roller", "is required")
	ve.AddFieldErrorf("Weight", "must be between %d and %d", 0, 100)

	s.Assert().True(ve.HasErrors())
	s.Assert().Equal(
		"validation failed: Groups: is required; Roller: is required; Weight: must be between 0 and 100",
		ve.Error(),
	)

	err := ve.ToError()
	s.Assert().Equal(errors.CodeInvalidArgument, err.Code)
	s.Assert().NotNil(err.Meta["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("Groups", "is required").
		Fieldf("Max", "must be at least %d", 1).
		RequiredField("Settings").
		InvalidField("Delimiter", "must not be empty")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Delimiter: is invalid: must not be empty")
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "Race", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  Race  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("group", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateRange() {
	testCases := []struct {
		name      string
		value     int
		shouldErr bool
	}{
		{"lower bound", 0, false},
		{"upper bound", 100, false},
		{"below", -1, true},
		{"above", 101, true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRange("weight", tc.value, 0, 100, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
				s.Assert().Contains(err.Error(), "must be between 0 and 100")
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}
