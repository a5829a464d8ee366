// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/whatmanga/pkg/uuid"
)

func TestNew_IsVersion7(t *testing.T) {
	id := uuid.New()
	require.True(t, uuid.IsValid(id))

	parsed, err := googleuuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, googleuuid.Version(7), parsed.Version())
}

func TestNew_Unique(t *testing.T) {
	assert.NotEqual(t, uuid.New(), uuid.New())
	assert.False(t, uuid.IsValid("not-a-uuid"))
}
