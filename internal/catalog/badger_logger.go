// StreamRush - Video Discovery Services
// Copyright 2026 StreamRush contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sudanva21/StreamRush2.0

package catalog

import (
	"fmt"

	"github.com/rs/zerolog"
)

// badgerLogger adapts zerolog to badger.Logger. Badger's info output is
// chatty, so it is logged at debug.
type badgerLogger struct {
	logger zerolog.Logger
}

//nolint:gocritic // zerolog.Logger is designed to be passed by value
func newBadgerLogger(l zerolog.Logger) *badgerLogger {
	return &badgerLogger{logger: l}
}

func (b *badgerLogger) Errorf(format string, args ...interface{}) {
	b.logger.Error().Msg(trimNewline(fmt.Sprintf(format, args...)))
}

func (b *badgerLogger) Warningf(format string, args ...interface{}) {
	b.logger.Warn().Msg(trimNewline(fmt.Sprintf(format, args...)))
}

func (b *badgerLogger) Infof(format string, args ...interface{}) {
	b.logger.Debug().Msg(trimNewline(fmt.Sprintf(format, args...)))
}

func (b *badgerLogger) Debugf(format string, args ...interface{}) {
	b.logger.Trace().Msg(trimNewline(fmt.Sprintf(format, args...)))
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
