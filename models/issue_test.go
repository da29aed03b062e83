package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    IssueStatus
		to      IssueStatus
		allowed bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusPending, StatusPending, true},
		{StatusPending, StatusResolved, false},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusPending, true},
		{StatusInProgress, StatusInProgress, false},
		{StatusResolved, StatusPending, true},
		{StatusResolved, StatusInProgress, false},
		{StatusResolved, StatusResolved, false},
	}

	for _, tc := range cases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestStatusAndPriorityValidation(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusInProgress.IsValid())
	assert.True(t, StatusResolved.IsValid())
	assert.False(t, IssueStatus("closed").IsValid())
	assert.False(t, IssueStatus("").IsValid())

	assert.True(t, PriorityMedium.IsValid())
	assert.True(t, PriorityCritical.IsValid())
	assert.False(t, IssuePriority("urgent").IsValid())
}

func TestCountByStatus(t *testing.T) {
	issues := []Issue{
		{Status: StatusPending},
		{Status: StatusPending},
		{Status: StatusInProgress},
		{Status: StatusResolved},
		{Status: StatusResolved},
		{Status: StatusResolved},
	}

	counts := CountByStatus(issues)
	assert.Equal(t, 2, counts.Pending)
	assert.Equal(t, 1, counts.InProgress)
	assert.Equal(t, 3, counts.Resolved)
	assert.Equal(t, len(issues), counts.Total)
	assert.Equal(t, counts.Total, counts.Pending+counts.InProgress+counts.Resolved)
}

func TestCountByStatusEmpty(t *testing.T) {
	counts := CountByStatus(nil)
	assert.Equal(t, StatusCounts{}, counts)
}
