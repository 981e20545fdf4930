package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"regexp"

	"noorcms/internal/config"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type NewsletterService interface {
	Subscribe(ctx context.Context, email, name string) error
}

type newsletterService struct {
	cfg    *config.Config
	client *http.Client
}

func NewNewsletterService(cfg *config.Config, client *http.Client) NewsletterService {
	return &newsletterService{cfg: cfg, client: client}
}

// Subscribe forwards the address to the mailing-list provider. A missing
// provider configuration is treated as success so environments without the
// integration keep working.
func (n *newsletterService) Subscribe(ctx context.Context, email, name string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: a valid email address is required", ErrValidation)
	}

	if n.cfg.Newsletter.APIKey == "" || n.cfg.Newsletter.ListID == "" || n.cfg.Newsletter.BaseURL == "" {
		log.Println("newsletter provider not configured, skipping subscribe")
		return nil
	}

	payload := map[string]interface{}{
		"email_address": email,
		"status":        "subscribed",
	}
	if name != "" {
		payload["merge_fields"] = map[string]string{"FNAME": name}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode subscribe payload: %w", err)
	}

	url := fmt.Sprintf("%s/lists/%s/members", n.cfg.Newsletter.BaseURL, n.cfg.Newsletter.ListID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build subscribe request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth("anystring", n.cfg.Newsletter.APIKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("newsletter provider call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("newsletter provider returned status %d", resp.StatusCode)
	}

	return nil
}
