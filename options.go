/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package modelstore

import "go.uber.org/zap"

// Option configures a ModelInfo before the initialization pass runs.
type Option func(*ModelInfo)

// WithLogger sets the logger used for discovery diagnostics. The
// default is a no-op logger: an incomplete registry is the expected
// degraded outcome of recoverable errors, and callers opt in to
// seeing the skips.
func WithLogger(log *zap.Logger) Option {
	return func(m *ModelInfo) {
		if log != nil {
			m.log = log
		}
	}
}
