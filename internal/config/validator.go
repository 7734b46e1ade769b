package config

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/types"
)

// weightTolerance bounds floating-point drift when checking that rubric
// weight overrides sum to 1.0.
const weightTolerance = 1e-9

// Validator validates configuration values.
type Validator interface {
	Validate(cfg *Config) error
}

// validatorImpl implements Validator using go-playground/validator.
type validatorImpl struct {
	validate *validator.Validate
}

// NewValidator creates a Validator instance.
func NewValidator() Validator {
	return &validatorImpl{validate: validator.New()}
}

// Validate checks struct tags first, then the cross-field rules: live
// research needs a model name, and rubric weight overrides must be a
// valid probability-style weighting summing to 1.0.
func (v *validatorImpl) Validate(cfg *Config) error {
	if cfg == nil {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "configuration is nil")
	}

	if err := v.validate.Struct(cfg); err != nil {
		validationErrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return types.WrapError(types.CONFIG_VALIDATION_FAILED, "validating config", err)
		}
		messages := make([]string, 0, len(validationErrs))
		for _, e := range validationErrs {
			messages = append(messages, formatValidationError(e))
		}
		return types.NewErrorf(types.CONFIG_VALIDATION_FAILED,
			"configuration validation failed: %s", strings.Join(messages, "; "))
	}

	if cfg.Research.Provider == "live" && cfg.Research.Model == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED,
			"research.model is required when research.provider is \"live\"")
	}

	if len(cfg.Judge.RubricWeights) > 0 {
		if err := validateRubricWeights(cfg.Judge.RubricWeights); err != nil {
			return err
		}
	}

	return nil
}

// validateRubricWeights enforces the rubric weight invariant at load time
// so a bad rubric never reaches pipeline construction.
func validateRubricWeights(weights map[string]float64) error {
	sum := 0.0
	for category, weight := range weights {
		if weight < 0 || weight > 1 {
			return types.NewErrorf(types.RUBRIC_WEIGHT_INVALID,
				"judge.rubric_weights[%q] = %v outside [0,1]", category, weight)
		}
		sum += weight
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return types.NewErrorf(types.RUBRIC_WEIGHT_INVALID,
			"judge.rubric_weights sum to %v, want 1.0", sum)
	}
	return nil
}

// formatValidationError renders a single struct-tag violation.
func formatValidationError(e validator.FieldError) string {
	field := strings.ToLower(strings.TrimPrefix(e.Namespace(), "Config."))
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got: %v)", field, e.Param(), e.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s (got: %v)", field, e.Param(), e.Value())
	default:
		return fmt.Sprintf("%s failed %s validation", field, e.Tag())
	}
}
