package providers

import "errors"

// ErrProviderUnavailable indicates a decorator was constructed without a
// usable inner provider.
var ErrProviderUnavailable = errors.New("provider unavailable")
