package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IssueStatus enum
type IssueStatus string

const (
	StatusPending    IssueStatus = "pending"
	StatusInProgress IssueStatus = "in_progress"
	StatusResolved   IssueStatus = "resolved"
)

// IssuePriority enum
type IssuePriority string

const (
	PriorityLow      IssuePriority = "low"
	PriorityMedium   IssuePriority = "medium"
	PriorityHigh     IssuePriority = "high"
	PriorityCritical IssuePriority = "critical"
)

// IsValid reports whether s is one of the known statuses.
func (s IssueStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

// IsValid reports whether p is one of the known priorities.
func (p IssuePriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// allowedTransitions is the issue lifecycle: an issue is picked up
// (pending -> in_progress), resolved (in_progress -> resolved), reopened
// (resolved -> pending), or sent back to the queue (in_progress -> pending,
// pending -> pending).
var allowedTransitions = map[IssueStatus][]IssueStatus{
	StatusPending:    {StatusPending, StatusInProgress},
	StatusInProgress: {StatusPending, StatusResolved},
	StatusResolved:   {StatusPending},
}

// CanTransitionTo reports whether the lifecycle permits moving from s to next.
func (s IssueStatus) CanTransitionTo(next IssueStatus) bool {
	for _, t := range allowedTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Issue represents a civic issue reported by a citizen
type Issue struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	Status          IssueStatus        `bson:"status" json:"status"`
	Priority        IssuePriority      `bson:"priority" json:"priority"`
	ImageURL        *string            `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ReporterID      string             `bson:"reporterId" json:"reporterId"`
	State           string             `bson:"state" json:"state"`
	City            string             `bson:"city" json:"city"`
	Latitude        *float64           `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude       *float64           `bson:"longitude,omitempty" json:"longitude,omitempty"`
	ExactLocation   string             `bson:"exactLocation,omitempty" json:"exactLocation,omitempty"`
	UserLatitude    *float64           `bson:"userLatitude,omitempty" json:"userLatitude,omitempty"`
	UserLongitude   *float64           `bson:"userLongitude,omitempty" json:"userLongitude,omitempty"`
	AssignedTeamID  *string            `bson:"assignedTeamId,omitempty" json:"assignedTeamId,omitempty"`
	ContactPhone    string             `bson:"contactPhone,omitempty" json:"contactPhone,omitempty"`
	ContactEmail    string             `bson:"contactEmail,omitempty" json:"contactEmail,omitempty"`
	ResolutionNotes *string            `bson:"resolutionNotes,omitempty" json:"resolutionNotes,omitempty"`
	ResolvedAt      *time.Time         `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// StatusCounts aggregates a listed set of issues by status.
type StatusCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Resolved   int `json:"resolved"`
	Total      int `json:"total"`
}

// CountByStatus tallies issues per status. The per-status counts always sum
// to Total for any input.
func CountByStatus(issues []Issue) StatusCounts {
	counts := StatusCounts{Total: len(issues)}
	for _, issue := range issues {
		switch issue.Status {
		case StatusPending:
			counts.Pending++
		case StatusInProgress:
			counts.InProgress++
		case StatusResolved:
			counts.Resolved++
		}
	}
	return counts
}
