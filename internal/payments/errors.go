package payments

// ProviderError wraps a failure reported by Stripe. Checkout is
// user-initiated, so callers surface it and never retry automatically.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return "payment provider: " + e.Err.Error()
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
