package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.Provider == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "provider",
			Message:   "configuration must contain 'provider' section",
		})
	} else if err := validate.Struct(c.Provider); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "provider", "")...)
	}

	if c.Resolver == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "resolver",
			Message:   "configuration must contain 'resolver' section",
		})
	} else if err := validate.Struct(c.Resolver); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "resolver", "")...)
	}

	validationErrors = append(validationErrors, c.validateSelector()...)

	if c.Output == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "output",
			Message:   "configuration must contain 'output' section",
		})
	} else if err := validate.Struct(c.Output); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "output", "")...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validateSelector() ValidationErrors {
	var validationErrors ValidationErrors

	if len(c.Selector) == 0 {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "selector",
			Message:   "configuration must select at least one service",
		})
		return validationErrors
	}

	for _, service := range c.ServiceSelector().Services() {
		regions := c.Selector[service]
		if service == "" {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: "selector",
				Message:   "service name cannot be empty",
			})
		}
		if len(regions) == 0 {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  service,
				FieldPath: "selector." + service,
				Message:   "must list at least one region",
			})
		}

		seen := make(map[string]bool)
		for j, region := range regions {
			if region == "" {
				validationErrors = append(validationErrors, ValidationError{
					ItemName:  service,
					FieldPath: fmt.Sprintf("selector.%s[%d]", service, j),
					Message:   "region cannot be empty",
				})
			}
			if seen[region] {
				validationErrors = append(validationErrors, ValidationError{
					ItemName:  service,
					FieldPath: fmt.Sprintf("selector.%s[%d]", service, j),
					Message:   fmt.Sprintf("duplicate region: %s", region),
				})
			}
			seen[region] = true
		}
	}

	return validationErrors
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				fieldName := e.Field()

				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + fieldName
				} else {
					fieldPath = fieldName
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
