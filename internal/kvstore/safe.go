package kvstore

import "log/slog"

// Safe wraps a Store so that every failure degrades to a no-op or an
// empty read instead of surfacing an error. The backing store may become
// unavailable at any time; callers above this layer must keep working
// (state simply stops persisting) rather than crash. Failures are logged
// as warnings for diagnostics only.
type Safe struct {
	inner  Store
	logger *slog.Logger
}

// NewSafe wraps inner with the degrade-on-failure policy.
func NewSafe(inner Store, logger *slog.Logger) *Safe {
	return &Safe{inner: inner, logger: logger}
}

// GetItem returns the stored value, or "" if the key is absent or the
// store is unavailable. Missing keys are not logged.
func (s *Safe) GetItem(key string) (string, error) {
	value, err := s.inner.GetItem(key)
	if err != nil {
		if err != ErrNotFound {
			s.logger.Warn("storage access failed for get", slog.String("key", key), slog.Any("error", err))
		}
		return "", nil
	}
	return value, nil
}

func (s *Safe) SetItem(key, value string) error {
	if err := s.inner.SetItem(key, value); err != nil {
		s.logger.Warn("storage access failed for set", slog.String("key", key), slog.Any("error", err))
	}
	return nil
}

func (s *Safe) RemoveItem(key string) error {
	if err := s.inner.RemoveItem(key); err != nil {
		s.logger.Warn("storage access failed for remove", slog.String("key", key), slog.Any("error", err))
	}
	return nil
}

func (s *Safe) Clear() error {
	if err := s.inner.Clear(); err != nil {
		s.logger.Warn("storage access failed for clear", slog.Any("error", err))
	}
	return nil
}
