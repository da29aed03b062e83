// Package notify delivers best-effort status emails to issue reporters.
// Dispatch never blocks or fails the status transition that triggered it:
// failures are logged and recorded, not surfaced, and not retried.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"nagarsetu-be/models"
)

// Notifier is the dispatch contract consumed by the issue service. Notify
// must return promptly; implementations own their asynchrony.
type Notifier interface {
	Notify(issue models.Issue, newStatus models.IssueStatus)
}

// emailPayload is the single outbound call shape. The provider templates the
// email body from Type.
type emailPayload struct {
	To         string `json:"to"`
	Subject    string `json:"subject"`
	Type       string `json:"type"`
	IssueTitle string `json:"issueTitle"`
	Status     string `json:"status"`
}

// EmailNotifier posts to the transactional-email endpoint and records each
// attempt in the notifications collection when one is configured.
type EmailNotifier struct {
	endpoint string
	apiKey   string
	client   *http.Client
	audit    *mongo.Collection // optional
}

func NewEmailNotifier(endpoint, apiKey string, audit *mongo.Collection) *EmailNotifier {
	return &EmailNotifier{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: 10 * time.Second},
		audit:    audit,
	}
}

// Notify fires the dispatch in the background. Issues without a contact
// email are skipped entirely.
func (n *EmailNotifier) Notify(issue models.Issue, newStatus models.IssueStatus) {
	if issue.ContactEmail == "" {
		return
	}
	go n.dispatch(issue, newStatus)
}

func (n *EmailNotifier) dispatch(issue models.Issue, newStatus models.IssueStatus) {
	msgType := models.NotificationStatusUpdate
	subject := fmt.Sprintf("Issue status update: %s", issue.Title)
	if newStatus == models.StatusResolved {
		msgType = models.NotificationResolutionRequest
		subject = fmt.Sprintf("Issue resolved - please confirm: %s", issue.Title)
	}

	err := n.send(emailPayload{
		To:         issue.ContactEmail,
		Subject:    subject,
		Type:       string(msgType),
		IssueTitle: issue.Title,
		Status:     string(newStatus),
	})
	if err != nil {
		log.Printf("Failed to send %s email for issue %s: %v", msgType, issue.ID.Hex(), err)
	}

	n.record(issue, msgType, subject, err)
}

func (n *EmailNotifier) send(payload emailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.apiKey)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned %d", resp.StatusCode)
	}
	return nil
}

// record writes the audit row. A failure here is logged and dropped like any
// other dispatch failure.
func (n *EmailNotifier) record(issue models.Issue, msgType models.NotificationType, message string, sendErr error) {
	if n.audit == nil {
		return
	}

	now := time.Now()
	notification := models.Notification{
		IssueID:   issue.ID,
		UserID:    issue.ReporterID,
		Type:      msgType,
		Message:   message,
		Status:    models.NotificationSent,
		SentAt:    &now,
		CreatedAt: now,
	}
	if sendErr != nil {
		notification.Status = models.NotificationFailed
		notification.SentAt = nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := n.audit.InsertOne(ctx, notification); err != nil {
		log.Printf("Failed to record notification for issue %s: %v", issue.ID.Hex(), err)
	}
}
