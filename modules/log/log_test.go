// Copyright 2026 The validate-i18n Authors. All rights reserved.
// SPDX-License-Identifier: MIT

package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoggerIsUsableBeforeInit(t *testing.T) {
	require.NotNil(t, L())
	// must not panic
	L().Debug("noop")
}

func TestInitRejectsBadLevel(t *testing.T) {
	err := Init("chatty", "console")
	assert.ErrorContains(t, err, "parse log level")
}

func TestInit(t *testing.T) {
	require.NoError(t, Init("debug", "json"))
	require.NotNil(t, L())
	assert.True(t, L().Core().Enabled(zapcore.DebugLevel))
}
