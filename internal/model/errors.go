package model

import "fmt"

// InvalidParameterError reports an input value the cost formulas cannot accept.
type InvalidParameterError struct {
	Name   string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Name, e.Reason)
}

// UnsupportedMethodError reports an unrecognized depreciation method name.
type UnsupportedMethodError struct {
	Method string
}

func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("unsupported depreciation method %q", e.Method)
}

// UnsupportedPaymentTypeError reports an unrecognized debt payment type.
type UnsupportedPaymentTypeError struct {
	PaymentType string
}

func (e *UnsupportedPaymentTypeError) Error() string {
	return fmt.Sprintf("unsupported payment type %q", e.PaymentType)
}
