package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus_AdvancesOneStepForward(t *testing.T) {
	next, ok := NextStatus(StatusNew)
	assert.True(t, ok)
	assert.Equal(t, StatusEnroute, next)

	next, ok = NextStatus(StatusExtinguished)
	assert.True(t, ok)
	assert.Equal(t, StatusClosed, next)
}

func TestNextStatus_TerminalAndUnknownHaveNoNext(t *testing.T) {
	_, ok := NextStatus(StatusClosed)
	assert.False(t, ok)

	_, ok = NextStatus("burning")
	assert.False(t, ok)
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range StatusOrder {
		assert.True(t, IsValidStatus(status))
	}
	assert.False(t, IsValidStatus("burning"))
}

func TestComputeDashboardStats_GroupsPipelineStages(t *testing.T) {
	incidents := []Incident{
		{Status: StatusNew},
		{Status: StatusNew},
		{Status: StatusEnroute},
		{Status: StatusArrived},
		{Status: StatusFighting},
		{Status: StatusExtinguished},
		{Status: StatusClosed},
	}

	stats := ComputeDashboardStats(incidents)

	assert.Equal(t, 2, stats.New)
	assert.Equal(t, 3, stats.Active)
	assert.Equal(t, 2, stats.Resolved)
	assert.Equal(t, 7, stats.Total)
}

func TestComputeDashboardStats_EmptyList(t *testing.T) {
	stats := ComputeDashboardStats(nil)
	assert.Equal(t, DashboardStats{}, stats)
}
