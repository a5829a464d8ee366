// Copyright (c) 2026 WhatManga. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRules_Order(t *testing.T) {
	names := make([]string, 0, len(statusRules))
	for _, rule := range statusRules {
		names = append(names, rule.name)
	}

	assert.Equal(t, []string{
		"dropped",
		"completed",
		"incomplete",
		"in_progress_uncertain",
		"in_progress",
		"uncertain",
	}, names)
}

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		segment   string
		status    Status
		uncertain bool
	}{
		{"(*72 vol. do mangá)", StatusCompleted, false},
		{"(~78º chap. do mangá)", StatusInProgress, false},
		{"(~317º? chap. do mangá)", StatusUncertain, true},
		{"(∆55º chap. do mangá)", StatusIncomplete, false},
		{"(r.π71.1º chap. do mangá)", StatusDroppedHiatus, false},
		{"(r.π~3? chap. do mangá)", StatusDroppedHiatus, true},
		{"(*~12º chap. do mangá)", StatusCompleted, false},
		{"(∆~9º chap. do mangá)", StatusIncomplete, false},
		{"(30 ? chap. do mangá)", StatusUncertain, true},
		{"(chap. do mangá)", StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			status, uncertain := classifyStatus(tt.segment)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.uncertain, uncertain)
		})
	}
}

func TestExtractNumber(t *testing.T) {
	tests := []struct {
		name    string
		segment string
		want    float64
		unit    Unit
	}{
		{"combo_reports_chapter", "(~13º vol. 57º chap. do mangá)", 57, UnitMixed},
		{"combo_with_cap", "(13 vol 57 cap do mangá)", 57, UnitMixed},
		{"highest_season", "(*Season 1 + *Season 3 + ~Season 2 do mangá)", 3, UnitSeason},
		{"first_number", "(~78º chap. do mangá)", 78, ""},
		{"decimal", "(~65.1º chap. do mangá)", 65.1, ""},
		{"first_of_many", "(~5 chap. 10 extras do mangá)", 5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, unit := extractNumber(tt.segment)
			require.NotNil(t, value)
			assert.Equal(t, tt.want, *value)
			assert.Equal(t, tt.unit, unit)
		})
	}

	t.Run("no_number", func(t *testing.T) {
		value, unit := extractNumber("(~chap. do mangá)")
		assert.Nil(t, value)
		assert.Empty(t, unit)
	})
}

func TestDetectUnit(t *testing.T) {
	tests := []struct {
		segment string
		want    Unit
	}{
		{"(~13º vol. 57º chap. do mangá)", UnitMixed},
		{"(*Season 2 do mangá)", UnitSeason},
		{"(*72 vol. do mangá)", UnitVolume},
		{"(*72 Volumes do mangá)", UnitVolume},
		{"(~78º chap. do mangá)", UnitChapter},
		{"(~78º cap. do mangá)", UnitChapter},
		{"(~78 do mangá)", UnitUnknown},
		// Volume beats chapter outside a combo.
		{"(chap. 3 vol. do mangá)", UnitVolume},
		{"(~12 da light novel)", UnitUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			assert.Equal(t, tt.want, detectUnit(tt.segment))
		})
	}
}

func TestReadTrack_OverrideWinsOverKeywords(t *testing.T) {
	result := readTrack(" (*Season 1 vol. do mangá) ")

	require.NotNil(t, result.progress)
	assert.Equal(t, UnitSeason, result.progress.Unit)
	assert.Equal(t, "(*Season 1 vol. do mangá)", result.progress.Raw)
	assert.Equal(t, StatusCompleted, result.status)
}

func TestExtractNovel_BracketFirst(t *testing.T) {
	text := "5- X\n(~3 chap. da novel).\n[*9 chap. da LN]."

	result, extra, ok := extractNovel(text)

	require.True(t, ok)
	assert.Equal(t, "[*9 chap. da LN]", result.progress.Raw)
	assert.Equal(t, 9.0, *result.progress.Current)
	assert.Nil(t, extra)
}
