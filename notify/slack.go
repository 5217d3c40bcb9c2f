// Package notify sends health-check results to Slack via an incoming
// webhook. Without a webhook URL, notifications fall back to the log.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
)

// Field is one title/value pair in a Slack attachment.
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

type attachment struct {
	Color     string  `json:"color"`
	Title     string  `json:"title"`
	Text      string  `json:"text"`
	Fields    []Field `json:"fields,omitempty"`
	Timestamp int64   `json:"ts"`
}

type payload struct {
	Attachments []attachment `json:"attachments"`
}

// Notifier posts attachments to a Slack incoming webhook.
type Notifier struct {
	webhookURL string
	client     *http.Client
}

// New returns a notifier for the given webhook URL. An empty URL is
// allowed: notifications are then logged instead of sent.
func New(webhookURL string) *Notifier {
	if webhookURL == "" {
		log.Println("ℹ️  No Slack webhook URL configured, notifications will be logged only")
	}
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Send posts one attachment. color follows Slack's convention ("good",
// "warning", "danger" or a hex value).
func (n *Notifier) Send(ctx context.Context, title, message, color string, fields []Field) error {
	if n.webhookURL == "" {
		log.Printf("[slack] %s: %s", title, message)
		for _, f := range fields {
			log.Printf("[slack]   %s: %s", f.Title, f.Value)
		}
		return nil
	}

	body, err := json.Marshal(payload{Attachments: []attachment{{
		Color:     color,
		Title:     title,
		Text:      message,
		Fields:    fields,
		Timestamp: time.Now().Unix(),
	}}})
	if err != nil {
		return fmt.Errorf("marshalling slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting to slack: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack webhook returned %s", resp.Status)
	}
	return nil
}

// HealthCheckPassed reports a successful daily data check.
func (n *Notifier) HealthCheckPassed(ctx context.Context, checkDate string, records int, symbols []string, totalRecords, totalSymbols int64, latestDate string) error {
	fields := []Field{
		{Title: "Check Date", Value: checkDate, Short: true},
		{Title: "Records", Value: fmt.Sprintf("%d", records), Short: true},
		{Title: "Symbols", Value: strings.Join(symbols, ", ")},
		{Title: "Total Records", Value: fmt.Sprintf("%d", totalRecords), Short: true},
		{Title: "Active Symbols", Value: fmt.Sprintf("%d", totalSymbols), Short: true},
		{Title: "Latest Data", Value: latestDate, Short: true},
	}
	msg := fmt.Sprintf("Daily data check passed for %s", checkDate)
	return n.Send(ctx, "✅ Health Check Passed", msg, "good", fields)
}

// HealthCheckFailed reports a failed daily data check.
func (n *Notifier) HealthCheckFailed(ctx context.Context, checkDate, errMessage string, dbConnected bool) error {
	fields := []Field{
		{Title: "Check Date", Value: checkDate, Short: true},
		{Title: "Database Connected", Value: fmt.Sprintf("%t", dbConnected), Short: true},
		{Title: "Error", Value: errMessage},
	}
	msg := fmt.Sprintf("Daily data check failed for %s", checkDate)
	return n.Send(ctx, "❌ Health Check Failed", msg, "danger", fields)
}
