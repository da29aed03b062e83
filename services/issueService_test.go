package services

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nagarsetu-be/directory"
	"nagarsetu-be/errs"
	"nagarsetu-be/models"
	"nagarsetu-be/repositories"
)

// fakeIssueRepo mimics the Mongo repository contract in memory: exact-match
// filtering and createdAt-descending order.
type fakeIssueRepo struct {
	issues []models.Issue
}

func (f *fakeIssueRepo) Insert(ctx context.Context, issue *models.Issue) error {
	if issue.ID.IsZero() {
		issue.ID = primitive.NewObjectID()
	}
	f.issues = append(f.issues, *issue)
	return nil
}

func (f *fakeIssueRepo) Find(ctx context.Context, filter repositories.IssueFilter) ([]models.Issue, error) {
	var out []models.Issue
	for _, issue := range f.issues {
		if filter.Status != "" && issue.Status != filter.Status {
			continue
		}
		if filter.State != "" && issue.State != filter.State {
			continue
		}
		if filter.City != "" && issue.City != filter.City {
			continue
		}
		if filter.AssignedTeamID != "" && (issue.AssignedTeamID == nil || *issue.AssignedTeamID != filter.AssignedTeamID) {
			continue
		}
		if filter.ReporterID != "" && issue.ReporterID != filter.ReporterID {
			continue
		}
		if filter.WithCoords && (issue.Latitude == nil || issue.Longitude == nil) {
			continue
		}
		out = append(out, issue)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if filter.Limit > 0 && int64(len(out)) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (f *fakeIssueRepo) FindByID(ctx context.Context, id string) (*models.Issue, error) {
	for _, issue := range f.issues {
		if issue.ID.Hex() == id {
			copied := issue
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: issue %s", errs.ErrNotFound, id)
}

func (f *fakeIssueRepo) Update(ctx context.Context, issue *models.Issue) error {
	for i := range f.issues {
		if f.issues[i].ID == issue.ID {
			f.issues[i] = *issue
			return nil
		}
	}
	return fmt.Errorf("%w: issue %s", errs.ErrNotFound, issue.ID.Hex())
}

type fakeTeamRepo struct {
	teams []models.MunicipalTeam
}

func (f *fakeTeamRepo) TeamsForCity(ctx context.Context, city string) ([]models.MunicipalTeam, error) {
	var out []models.MunicipalTeam
	for _, team := range f.teams {
		if team.CityName == city && team.IsActive {
			out = append(out, team)
		}
	}
	return out, nil
}

func (f *fakeTeamRepo) FindByEmail(ctx context.Context, email string) (*models.MunicipalTeam, error) {
	for _, team := range f.teams {
		if team.Email == email {
			copied := team
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: team %s", errs.ErrNotFound, email)
}

func (f *fakeTeamRepo) FindByID(ctx context.Context, id string) (*models.MunicipalTeam, error) {
	for _, team := range f.teams {
		if team.ID.Hex() == id {
			copied := team
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("%w: team %s", errs.ErrNotFound, id)
}

type dispatch struct {
	issue  models.Issue
	status models.IssueStatus
}

type fakeNotifier struct {
	dispatches []dispatch
}

func (f *fakeNotifier) Notify(issue models.Issue, newStatus models.IssueStatus) {
	f.dispatches = append(f.dispatches, dispatch{issue: issue, status: newStatus})
}

func newTestService() (*IssueService, *fakeIssueRepo, *fakeTeamRepo, *fakeNotifier) {
	repo := &fakeIssueRepo{}
	teams := &fakeTeamRepo{}
	notifier := &fakeNotifier{}
	dir := directory.New([]models.Location{
		{StateName: "Maharashtra", CityName: "Pune", Latitude: 18.52, Longitude: 73.85},
		{StateName: "Maharashtra", CityName: "Mumbai", Latitude: 19.07, Longitude: 72.87},
		{StateName: "Karnataka", CityName: "Bengaluru", Latitude: 12.97, Longitude: 77.59},
	})
	return NewIssueService(repo, teams, dir, notifier), repo, teams, notifier
}

func TestCreateIssueResolvesCoordinates(t *testing.T) {
	svc, _, _, _ := newTestService()

	issue, err := svc.CreateIssue(context.Background(), IssueDraft{
		Title:       "Pothole",
		Description: "Deep hole on Main St",
		City:        "Pune",
		State:       "Maharashtra",
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, models.StatusPending, issue.Status)
	assert.Equal(t, models.PriorityMedium, issue.Priority)
	require.NotNil(t, issue.Latitude)
	require.NotNil(t, issue.Longitude)
	assert.Equal(t, 18.52, *issue.Latitude)
	assert.Equal(t, 73.85, *issue.Longitude)
	assert.Equal(t, "user-1", issue.ReporterID)
	assert.True(t, issue.CreatedAt.Equal(issue.UpdatedAt))
	assert.False(t, issue.ID.IsZero())
}

func TestCreateIssueUnresolvedCityIsSoft(t *testing.T) {
	svc, repo, _, _ := newTestService()

	issue, err := svc.CreateIssue(context.Background(), IssueDraft{
		Title:       "Broken streetlight",
		Description: "Dark corner near the market",
		City:        "Nashik",
		State:       "Maharashtra",
	}, "user-1")
	require.NoError(t, err)

	assert.Nil(t, issue.Latitude)
	assert.Nil(t, issue.Longitude)
	assert.Len(t, repo.issues, 1)
}

func TestCreateIssueValidation(t *testing.T) {
	svc, repo, _, _ := newTestService()

	_, err := svc.CreateIssue(context.Background(), IssueDraft{Title: "  ", Description: "something"}, "user-1")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = svc.CreateIssue(context.Background(), IssueDraft{Title: "Pothole", Description: ""}, "user-1")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = svc.CreateIssue(context.Background(), IssueDraft{
		Title: "Pothole", Description: "hole", Priority: models.IssuePriority("urgent"),
	}, "user-1")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	// Nothing was persisted.
	assert.Empty(t, repo.issues)
}

func TestCreateIssueTeamMustServeCity(t *testing.T) {
	svc, _, teams, _ := newTestService()

	puneTeam := models.MunicipalTeam{ID: primitive.NewObjectID(), CityName: "Pune", IsActive: true}
	mumbaiTeam := models.MunicipalTeam{ID: primitive.NewObjectID(), CityName: "Mumbai", IsActive: true}
	inactive := models.MunicipalTeam{ID: primitive.NewObjectID(), CityName: "Pune", IsActive: false}
	teams.teams = []models.MunicipalTeam{puneTeam, mumbaiTeam, inactive}

	puneID := puneTeam.ID.Hex()
	issue, err := svc.CreateIssue(context.Background(), IssueDraft{
		Title: "Pothole", Description: "hole", City: "Pune", State: "Maharashtra",
		AssignedTeamID: &puneID,
	}, "user-1")
	require.NoError(t, err)
	require.NotNil(t, issue.AssignedTeamID)
	assert.Equal(t, puneID, *issue.AssignedTeamID)

	mumbaiID := mumbaiTeam.ID.Hex()
	_, err = svc.CreateIssue(context.Background(), IssueDraft{
		Title: "Pothole", Description: "hole", City: "Pune", State: "Maharashtra",
		AssignedTeamID: &mumbaiID,
	}, "user-1")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	inactiveID := inactive.ID.Hex()
	_, err = svc.CreateIssue(context.Background(), IssueDraft{
		Title: "Pothole", Description: "hole", City: "Pune", State: "Maharashtra",
		AssignedTeamID: &inactiveID,
	}, "user-1")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestListIssuesFiltersAndOrder(t *testing.T) {
	svc, repo, _, _ := newTestService()

	base := time.Now()
	repo.issues = []models.Issue{
		{ID: primitive.NewObjectID(), Status: models.StatusPending, State: "Maharashtra", City: "Pune", CreatedAt: base.Add(-3 * time.Hour)},
		{ID: primitive.NewObjectID(), Status: models.StatusResolved, State: "Maharashtra", City: "Pune", CreatedAt: base.Add(-2 * time.Hour)},
		{ID: primitive.NewObjectID(), Status: models.StatusPending, State: "Maharashtra", City: "Mumbai", CreatedAt: base.Add(-1 * time.Hour)},
		{ID: primitive.NewObjectID(), Status: models.StatusPending, State: "Karnataka", City: "Bengaluru", CreatedAt: base},
	}

	all, err := svc.ListIssues(context.Background(), repositories.IssueFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	for i := 1; i < len(all); i++ {
		assert.False(t, all[i].CreatedAt.After(all[i-1].CreatedAt), "issues must be newest first")
	}

	pending, err := svc.ListIssues(context.Background(), repositories.IssueFilter{Status: models.StatusPending})
	require.NoError(t, err)
	require.Len(t, pending, 3)
	for _, issue := range pending {
		assert.Equal(t, models.StatusPending, issue.Status)
	}

	pune, err := svc.ListIssues(context.Background(), repositories.IssueFilter{State: "Maharashtra", City: "Pune"})
	require.NoError(t, err)
	require.Len(t, pune, 2)
	assert.True(t, pune[0].CreatedAt.After(pune[1].CreatedAt))
	for _, issue := range pune {
		assert.Equal(t, "Maharashtra", issue.State)
		assert.Equal(t, "Pune", issue.City)
	}

	_, err = svc.ListIssues(context.Background(), repositories.IssueFilter{Status: models.IssueStatus("closed")})
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestStatusCountsMatchesListing(t *testing.T) {
	svc, repo, _, _ := newTestService()

	repo.issues = []models.Issue{
		{ID: primitive.NewObjectID(), Status: models.StatusPending},
		{ID: primitive.NewObjectID(), Status: models.StatusInProgress},
		{ID: primitive.NewObjectID(), Status: models.StatusResolved},
		{ID: primitive.NewObjectID(), Status: models.StatusPending},
	}

	counts, err := svc.StatusCounts(context.Background(), repositories.IssueFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Pending)
	assert.Equal(t, 1, counts.InProgress)
	assert.Equal(t, 1, counts.Resolved)
	assert.Equal(t, len(repo.issues), counts.Total)
}

func TestUpdateStatusAuthorization(t *testing.T) {
	svc, repo, _, _ := newTestService()

	issue, err := svc.CreateIssue(context.Background(), IssueDraft{
		Title: "Pothole", Description: "hole", City: "Pune", State: "Maharashtra",
	}, "user-1")
	require.NoError(t, err)
	id := issue.ID.Hex()

	// Citizens are always denied, whatever the target status.
	for _, status := range []models.IssueStatus{models.StatusPending, models.StatusInProgress, models.StatusResolved} {
		_, err := svc.UpdateStatus(context.Background(), id, status, Actor{Kind: ActorCitizen, ID: "user-1"}, "")
		assert.ErrorIs(t, err, errs.ErrPermissionDenied)
	}

	// So are unauthenticated callers.
	_, err = svc.UpdateStatus(context.Background(), id, models.StatusInProgress, Actor{}, "")
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)

	// An assigned issue rejects other teams.
	assigned := "team-pune"
	repo.issues[0].AssignedTeamID = &assigned
	_, err = svc.UpdateStatus(context.Background(), id, models.StatusInProgress, Actor{Kind: ActorMunicipal, ID: "team-mumbai"}, "")
	assert.ErrorIs(t, err, errs.ErrPermissionDenied)

	got, err := svc.UpdateStatus(context.Background(), id, models.StatusInProgress, Actor{Kind: ActorMunicipal, ID: "team-pune"}, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, got.Status)
}

func TestUpdateStatusLifecycle(t *testing.T) {
	svc, _, _, notifier := newTestService()

	issue, err := svc.CreateIssue(context.Background(), IssueDraft{
		Title:        "Pothole",
		Description:  "Deep hole on Main St",
		City:         "Pune",
		State:        "Maharashtra",
		ContactEmail: "reporter@example.com",
	}, "user-1")
	require.NoError(t, err)
	id := issue.ID.Hex()
	actor := Actor{Kind: ActorMunicipal, ID: "team-pune"}

	// Creation never notifies.
	assert.Empty(t, notifier.dispatches)

	// pending -> resolved skips a state and is rejected.
	_, err = svc.UpdateStatus(context.Background(), id, models.StatusResolved, actor, "done")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	got, err := svc.UpdateStatus(context.Background(), id, models.StatusInProgress, actor, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusInProgress, got.Status)
	assert.Nil(t, got.ResolvedAt)

	// Resolving without notes is rejected.
	_, err = svc.UpdateStatus(context.Background(), id, models.StatusResolved, actor, "  ")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	got, err = svc.UpdateStatus(context.Background(), id, models.StatusResolved, actor, "Filled pothole")
	require.NoError(t, err)
	assert.Equal(t, models.StatusResolved, got.Status)
	require.NotNil(t, got.ResolvedAt)
	require.NotNil(t, got.ResolutionNotes)
	assert.Equal(t, "Filled pothole", *got.ResolutionNotes)

	// Exactly one dispatch per successful transition; the resolution one
	// carries the resolved status.
	require.Len(t, notifier.dispatches, 2)
	assert.Equal(t, models.StatusInProgress, notifier.dispatches[0].status)
	assert.Equal(t, models.StatusResolved, notifier.dispatches[1].status)

	resolutions := 0
	for _, d := range notifier.dispatches {
		if d.status == models.StatusResolved {
			resolutions++
		}
	}
	assert.Equal(t, 1, resolutions)

	// Reopening clears the resolution fields.
	got, err = svc.UpdateStatus(context.Background(), id, models.StatusPending, actor, "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.Nil(t, got.ResolvedAt)
	assert.Nil(t, got.ResolutionNotes)
}

func TestUpdateStatusUnknownIssue(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.UpdateStatus(context.Background(), primitive.NewObjectID().Hex(), models.StatusInProgress, Actor{Kind: ActorMunicipal, ID: "team-1"}, "")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
