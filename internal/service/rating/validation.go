package rating

import (
	"fmt"
	"math"

	"github.com/mreiner/compquote/internal/domain"
)

// Validation holds the outcome of the pre-rating input check. Errors block
// the rating run; warnings are advisory and travel with the result.
type Validation struct {
	Errors   []string
	Warnings []string
}

func (v Validation) Valid() bool {
	return len(v.Errors) == 0
}

// ValidateRatingData runs the field-level validation pass. Rating must not
// be attempted when the result carries errors.
func ValidateRatingData(data *domain.BusinessInfo) Validation {
	var result Validation

	validatePayroll(data.PayrollLines, &result)
	validateLossHistory(data.LossHistory, &result)

	if data.Modifiers.ExperienceMod != 0 &&
		(data.Modifiers.ExperienceMod < MinExperienceMod || data.Modifiers.ExperienceMod > MaxExperienceMod) {
		result.Errors = append(result.Errors,
			fmt.Sprintf("experience mod must be between %.2f and %.2f", MinExperienceMod, MaxExperienceMod))
	}

	if math.Abs(data.Modifiers.ScheduleCredit) > MaxScheduleCredit {
		result.Errors = append(result.Errors, "schedule credit/debit cannot exceed 25%")
	}

	return result
}

func validatePayroll(lines []domain.PayrollLine, result *Validation) {
	if len(lines) == 0 {
		result.Errors = append(result.Errors, "at least one payroll classification is required")
		return
	}

	for i, line := range lines {
		n := i + 1

		if line.StateCode == "" || line.ClassCode == "" {
			result.Errors = append(result.Errors,
				fmt.Sprintf("payroll classification %d is missing required information", n))
		}

		if line.AnnualPayroll <= 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("invalid payroll amount for classification %d", n))
		}

		if line.EmployeeCount <= 0 {
			result.Errors = append(result.Errors,
				fmt.Sprintf("invalid employee count for classification %d", n))
			continue
		}

		avgPayroll := line.AnnualPayroll / float64(line.EmployeeCount)
		if avgPayroll < 20_000 || avgPayroll > 200_000 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("average payroll of %.2f for class %s seems unusual", avgPayroll, line.ClassCode))
		}

		if line.EmployeeCount < 3 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("consider standard exception codes for small employee counts in class %s", line.ClassCode))
		}
	}
}

func validateLossHistory(losses []domain.LossRecord, result *Validation) {
	if len(losses) == 0 {
		result.Warnings = append(result.Warnings, "no loss history provided")
		return
	}

	for i, loss := range losses {
		n := i + 1

		if loss.Date.IsZero() {
			result.Errors = append(result.Errors, fmt.Sprintf("invalid date for loss %d", n))
		}

		if loss.Amount <= 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("invalid amount for loss %d", n))
		}

		if loss.ClaimNumber == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("missing claim number for loss %d", n))
		}

		if loss.Status != domain.LossStatusOpen && loss.Status != domain.LossStatusClosed {
			result.Errors = append(result.Errors, fmt.Sprintf("invalid status for loss %d", n))
		}
	}
}
