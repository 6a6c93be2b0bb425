//
// Tencent is pleased to support the open source community by making trpc-arcade-go available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-arcade-go is licensed under the Apache License Version 2.0.
//
//

package tool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuccess(t *testing.T) {
	out := Success(map[string]any{"count": 3})
	assert.Nil(t, out.Error)
	assert.Equal(t, map[string]any{"count": 3}, out.Value)
}

func TestSuccessNilValue(t *testing.T) {
	// A tool returning nothing still yields a serializable value.
	out := Success(nil)
	assert.Nil(t, out.Error)
	assert.Equal(t, "", out.Value)
}

func TestFail(t *testing.T) {
	out := Fail("it broke", "stack overflowed", "goroutine 1 [running]")
	assert.Nil(t, out.Value)
	require.NotNil(t, out.Error)
	assert.Equal(t, "it broke", out.Error.Message)
	assert.Equal(t, "stack overflowed", out.Error.DeveloperMessage)
	assert.Equal(t, "goroutine 1 [running]", out.Error.Traceback)
	assert.False(t, out.Error.CanRetry)
}

func TestFailRetry(t *testing.T) {
	out := FailRetry("rate limited", "429 from upstream", "wait before retrying", 1000)
	require.NotNil(t, out.Error)
	assert.True(t, out.Error.CanRetry)
	assert.Equal(t, "wait before retrying", out.Error.AdditionalPromptContent)
	assert.Equal(t, int64(1000), out.Error.RetryAfterMS)
}

func TestEnvelopeSerialization(t *testing.T) {
	// The failure envelope omits the value, the success envelope omits
	// the error.
	data, err := json.Marshal(Fail("nope", "", ""))
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"value"`)

	data, err = json.Marshal(Success(42))
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"error"`)
}
