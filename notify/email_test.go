package notify

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"nagarsetu-be/models"
)

func TestDispatchStatusUpdate(t *testing.T) {
	var received emailPayload
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewEmailNotifier(server.URL, "test-key", nil)
	issue := models.Issue{
		ID:           primitive.NewObjectID(),
		Title:        "Pothole",
		ContactEmail: "reporter@example.com",
	}

	notifier.dispatch(issue, models.StatusInProgress)

	assert.Equal(t, "Bearer test-key", auth)
	assert.Equal(t, "reporter@example.com", received.To)
	assert.Equal(t, string(models.NotificationStatusUpdate), received.Type)
	assert.Equal(t, "Pothole", received.IssueTitle)
	assert.Equal(t, string(models.StatusInProgress), received.Status)
}

func TestDispatchResolutionRequest(t *testing.T) {
	var received emailPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := NewEmailNotifier(server.URL, "", nil)
	issue := models.Issue{ID: primitive.NewObjectID(), Title: "Pothole", ContactEmail: "reporter@example.com"}

	notifier.dispatch(issue, models.StatusResolved)

	assert.Equal(t, string(models.NotificationResolutionRequest), received.Type)
	assert.Equal(t, string(models.StatusResolved), received.Status)
}

func TestSendProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	notifier := NewEmailNotifier(server.URL, "", nil)
	err := notifier.send(emailPayload{To: "reporter@example.com"})
	assert.Error(t, err)
}

func TestNotifySkipsIssuesWithoutContactEmail(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer server.Close()

	notifier := NewEmailNotifier(server.URL, "", nil)
	notifier.Notify(models.Issue{Title: "Pothole"}, models.StatusResolved)

	// No contact email means no goroutine is ever started.
	assert.Equal(t, 0, hits)
}
