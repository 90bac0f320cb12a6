package bullhorn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"skillstage/domain/staging"
	"skillstage/ports"

	"golang.org/x/sync/errgroup"
)

// The literal an empty spreadsheet cell renders to; used for the skip
// rules below.
const noneValue = "None"

// Client pushes staged records into Bullhorn candidate profiles. It
// implements ports.CandidateUploader.
type Client struct {
	auth        *Authenticator
	session     *Session
	httpClient  *http.Client
	concurrency int
}

// NewClient creates a client that logs in on first upload.
func NewClient(auth *Authenticator, concurrency int) *Client {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Client{
		auth:        auth,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		concurrency: concurrency,
	}
}

// NewClientWithSession creates a client bound to an existing session.
func NewClientWithSession(session *Session, concurrency int) *Client {
	c := NewClient(nil, concurrency)
	c.session = session
	return c
}

// Upload updates one candidate profile per staged record. Records where
// both the name and supervisor fields are the empty-cell literal are
// ignored; a record with a name but no Bullhorn ID is flagged for manual
// ID entry; individual rejections are collected, not fatal.
func (c *Client) Upload(ctx context.Context, records []*staging.StagedRecord) (*ports.UploadSummary, error) {
	session := c.session
	if session == nil {
		if c.auth == nil {
			return nil, fmt.Errorf("bullhorn client has neither a session nor an authenticator")
		}
		var err error
		session, err = c.auth.Login(ctx)
		if err != nil {
			return nil, fmt.Errorf("bullhorn login failed: %w", err)
		}
		c.session = session
	}

	summary := &ports.UploadSummary{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for _, record := range records {
		if record.Name() == noneValue && record.Supervisor() == noneValue {
			summary.Ignored++
			continue
		}
		if record.BullhornID() == noneValue && record.Name() != noneValue {
			log.Printf("[Bullhorn] Employee: %s (NEEDS BULLHORN ID ENTERED)", record.Name())
			summary.Flagged++
			continue
		}

		record := record
		mu.Lock()
		summary.Attempted++
		mu.Unlock()

		g.Go(func() error {
			err := c.updateCandidate(ctx, session, record)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failures = append(summary.Failures, ports.UploadFailure{
					BullhornID: record.BullhornID(),
					Name:       record.Name(),
					Reason:     err.Error(),
				})
				log.Printf("[Bullhorn] Failed to modify %s's profile: %v", record.Name(), err)
				return nil // per-record failures do not abort the batch
			}
			summary.Succeeded++
			log.Printf("[Bullhorn] Successfully accessed & modified %s's profile", record.Name())
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary, err
	}
	return summary, nil
}

// updateCandidate posts the category fields of one record to the
// candidate entity endpoint.
func (c *Client) updateCandidate(ctx context.Context, session *Session, record *staging.StagedRecord) error {
	if !record.Flattened() {
		return fmt.Errorf("record for %q has not been flattened", record.Name())
	}

	payload := map[string]interface{}{
		"customText3":       record.ProjectRole(),
		"customText31":      record.OEMExperience(),
		"customText21":      record.Display[staging.BucketIndustryExperience],
		"customTextBlock5":  record.Display[staging.BucketDomains],
		"customTextBlock10": record.Display[staging.BucketStandards],
		"customTextBlock2":  record.Display[staging.BucketSkills],
		"customTextBlock6":  record.Display[staging.BucketLanguages],
		"customTextBlock7":  record.Display[staging.BucketTools],
	}
	if record.Experience.Mapped {
		payload["customFloat3"] = record.Experience.Ordinal
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	endpoint := strings.TrimSuffix(session.RestURL, "/") + "/entity/Candidate/" + record.BullhornID() +
		"?" + url.Values{"BhRestToken": {session.BhRestToken}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("candidate update returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
