// Package services holds the issue lifecycle core: creation, filtered
// listing, the status state machine with actor authorization, and the
// dashboard aggregation.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"nagarsetu-be/directory"
	"nagarsetu-be/errs"
	"nagarsetu-be/models"
	"nagarsetu-be/notify"
	"nagarsetu-be/repositories"
)

// ActorKind separates the two disjoint authentication contexts.
type ActorKind string

const (
	ActorCitizen   ActorKind = "citizen"
	ActorMunicipal ActorKind = "municipal"
)

// Actor is a typed credential produced by one of the auth middlewares. ID is
// the profile id for citizens and the team id for municipal actors.
type Actor struct {
	Kind ActorKind
	ID   string
}

// IssueDraft is a citizen submission before validation and coordinate
// resolution.
type IssueDraft struct {
	Title          string
	Description    string
	Priority       models.IssuePriority
	ImageURL       *string
	State          string
	City           string
	ExactLocation  string
	UserLatitude   *float64
	UserLongitude  *float64
	AssignedTeamID *string
	ContactPhone   string
	ContactEmail   string
}

// IssueService owns the create/list/transition operations on issues.
type IssueService struct {
	issues   repositories.IssueRepository
	teams    repositories.TeamRepository
	dir      *directory.LocationDirectory
	notifier notify.Notifier
}

func NewIssueService(issues repositories.IssueRepository, teams repositories.TeamRepository, dir *directory.LocationDirectory, notifier notify.Notifier) *IssueService {
	return &IssueService{issues: issues, teams: teams, dir: dir, notifier: notifier}
}

// CreateIssue validates the draft, resolves coordinates from the location
// directory, and persists the issue as pending. An unresolvable city is not
// an error; the issue is created without coordinates.
func (s *IssueService) CreateIssue(ctx context.Context, draft IssueDraft, reporterID string) (*models.Issue, error) {
	title := strings.TrimSpace(draft.Title)
	description := strings.TrimSpace(draft.Description)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", errs.ErrInvalidInput)
	}
	if description == "" {
		return nil, fmt.Errorf("%w: description is required", errs.ErrInvalidInput)
	}

	priority := draft.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("%w: unknown priority %q", errs.ErrInvalidInput, draft.Priority)
	}

	now := time.Now()
	issue := &models.Issue{
		Title:         title,
		Description:   description,
		Status:        models.StatusPending,
		Priority:      priority,
		ImageURL:      draft.ImageURL,
		ReporterID:    reporterID,
		State:         draft.State,
		City:          draft.City,
		ExactLocation: strings.TrimSpace(draft.ExactLocation),
		UserLatitude:  draft.UserLatitude,
		UserLongitude: draft.UserLongitude,
		ContactPhone:  strings.TrimSpace(draft.ContactPhone),
		ContactEmail:  strings.TrimSpace(draft.ContactEmail),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Coordinates are always derived from the directory, never taken from
	// the draft. City names repeat across states, so the (state, city) pair
	// is preferred when the draft carries both.
	if draft.City != "" {
		var loc models.Location
		var ok bool
		if draft.State != "" {
			loc, ok = s.dir.Resolve(draft.State, draft.City)
		} else {
			loc, ok = s.dir.ResolveCity(draft.City)
		}
		if ok {
			lat, lng := loc.Latitude, loc.Longitude
			issue.Latitude = &lat
			issue.Longitude = &lng
		}
	}

	if draft.AssignedTeamID != nil && *draft.AssignedTeamID != "" {
		if err := s.checkTeamServesCity(ctx, *draft.AssignedTeamID, draft.City); err != nil {
			return nil, err
		}
		issue.AssignedTeamID = draft.AssignedTeamID
	}

	if err := s.issues.Insert(ctx, issue); err != nil {
		return nil, err
	}
	return issue, nil
}

// checkTeamServesCity verifies a caller-chosen team is active and serves the
// draft's city.
func (s *IssueService) checkTeamServesCity(ctx context.Context, teamID, city string) error {
	teams, err := s.teams.TeamsForCity(ctx, city)
	if err != nil {
		return err
	}
	for _, team := range teams {
		if team.ID.Hex() == teamID {
			return nil
		}
	}
	return fmt.Errorf("%w: team %s does not serve city %q", errs.ErrInvalidInput, teamID, city)
}

// ListIssues returns issues matching the filter, newest first.
func (s *IssueService) ListIssues(ctx context.Context, filter repositories.IssueFilter) ([]models.Issue, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", errs.ErrInvalidInput, filter.Status)
	}
	return s.issues.Find(ctx, filter)
}

// GetIssue returns one issue by id.
func (s *IssueService) GetIssue(ctx context.Context, id string) (*models.Issue, error) {
	return s.issues.FindByID(ctx, id)
}

// StatusCounts lists the filtered set and aggregates it for dashboards.
func (s *IssueService) StatusCounts(ctx context.Context, filter repositories.IssueFilter) (models.StatusCounts, error) {
	issues, err := s.ListIssues(ctx, filter)
	if err != nil {
		return models.StatusCounts{}, err
	}
	return models.CountByStatus(issues), nil
}

// TeamsForCity exposes the assignment lookup for the submission form.
func (s *IssueService) TeamsForCity(ctx context.Context, city string) ([]models.MunicipalTeam, error) {
	return s.teams.TeamsForCity(ctx, city)
}

// UpdateStatus moves an issue through the lifecycle. Only municipal actors
// may transition, and only the assigned team when the issue has one.
// Entering resolved requires notes and stamps resolvedAt; leaving resolved
// clears both. The notification is dispatched after the write lands and its
// outcome never affects the transition.
func (s *IssueService) UpdateStatus(ctx context.Context, issueID string, newStatus models.IssueStatus, actor Actor, notes string) (*models.Issue, error) {
	if actor.Kind != ActorMunicipal || actor.ID == "" {
		return nil, fmt.Errorf("%w: only municipal team actors may update issue status", errs.ErrPermissionDenied)
	}
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", errs.ErrInvalidInput, newStatus)
	}

	issue, err := s.issues.FindByID(ctx, issueID)
	if err != nil {
		return nil, err
	}

	if issue.AssignedTeamID != nil && *issue.AssignedTeamID != actor.ID {
		return nil, fmt.Errorf("%w: issue is assigned to another team", errs.ErrPermissionDenied)
	}

	if !issue.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w: cannot transition issue from %s to %s", errs.ErrInvalidInput, issue.Status, newStatus)
	}

	notes = strings.TrimSpace(notes)
	if newStatus == models.StatusResolved && notes == "" {
		return nil, fmt.Errorf("%w: resolution notes are required to resolve an issue", errs.ErrInvalidInput)
	}

	now := time.Now()
	issue.Status = newStatus
	issue.UpdatedAt = now
	if newStatus == models.StatusResolved {
		issue.ResolvedAt = &now
		issue.ResolutionNotes = &notes
	} else {
		issue.ResolvedAt = nil
		issue.ResolutionNotes = nil
	}

	if err := s.issues.Update(ctx, issue); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Notify(*issue, newStatus)
	}
	return issue, nil
}
