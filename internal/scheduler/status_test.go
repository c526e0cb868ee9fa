package scheduler

import (
	"testing"

	"github.com/alexanderramin/prodplan/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStatus(t *testing.T) {
	cases := []struct {
		days      int
		bucket    domain.StatusBucket
		magnitude int
	}{
		{-5, domain.StatusLate, 5},
		{-1, domain.StatusLate, 1},
		{0, domain.StatusDueToday, 0},
		{1, domain.StatusDueSoon, 1},
		{2, domain.StatusDueSoon, 2},
		{3, domain.StatusOnTrack, 3},
		{120, domain.StatusOnTrack, 120},
	}
	for _, tc := range cases {
		got := ClassifyStatus(tc.days)
		assert.Equal(t, tc.bucket, got.Bucket, "days=%d", tc.days)
		assert.Equal(t, tc.magnitude, got.Magnitude, "days=%d", tc.days)
	}
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "late by 5d", ClassifyStatus(-5).Label())
	assert.Equal(t, "due today", ClassifyStatus(0).Label())
	assert.Equal(t, "due in 2d", ClassifyStatus(2).Label())
	assert.Equal(t, "on track (3d)", ClassifyStatus(3).Label())
}
