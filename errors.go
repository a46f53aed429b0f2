package bayesglm

import "fmt"

// ConfigError indicates an invalid family or link configuration.  It is
// detected when the model is constructed and is fatal to the fit.
type ConfigError struct {
	msg string
}

func (e *ConfigError) Error() string { return e.msg }

func configErrorf(format string, args ...interface{}) *ConfigError {
	return &ConfigError{msg: fmt.Sprintf(format, args...)}
}

// DomainError indicates a parameter or outcome value outside the domain
// required by the family: a non-positive dispersion or precision at
// evaluation time, or outcome data outside the family's support at setup.
// The caller decides whether to reject the step or abort the fit.
type DomainError struct {
	msg string
}

func (e *DomainError) Error() string { return e.msg }

func domainErrorf(format string, args ...interface{}) *DomainError {
	return &DomainError{msg: fmt.Sprintf(format, args...)}
}

// NumericError indicates a non-finite result, usually from an extreme
// linear predictor.  It is propagated so the sampler can reject the
// proposal; no value is ever substituted.
type NumericError struct {
	msg string
}

func (e *NumericError) Error() string { return e.msg }

func numericErrorf(format string, args ...interface{}) *NumericError {
	return &NumericError{msg: fmt.Sprintf(format, args...)}
}
