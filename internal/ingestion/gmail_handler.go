package ingestion

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// GmailHandler fetches PDF resume attachments from a Gmail inbox.
type GmailHandler struct {
	service    *gmail.Service
	uploadsDir string
}

// NewGmailHandler creates a Gmail handler using OAuth credentials at
// credentialsPath and a cached token at tokenPath.
func NewGmailHandler(ctx context.Context, credentialsPath, tokenPath, uploadsDir string) (*GmailHandler, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %w", err)
	}

	config, err := google.ConfigFromJSON(b, gmail.GmailReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}

	client, err := getClient(ctx, config, tokenPath)
	if err != nil {
		return nil, err
	}

	srv, err := gmail.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create Gmail client: %w", err)
	}

	return &GmailHandler{
		service:    srv,
		uploadsDir: uploadsDir,
	}, nil
}

// getClient builds an HTTP client from a cached token, falling back to the
// interactive authorization-code flow.
func getClient(ctx context.Context, config *oauth2.Config, tokenPath string) (*http.Client, error) {
	tok, err := tokenFromFile(tokenPath)
	if err != nil {
		tok, err = getTokenFromWeb(ctx, config)
		if err != nil {
			return nil, err
		}
		if err := saveToken(tokenPath, tok); err != nil {
			log.Printf("Unable to cache oauth token: %v", err)
		}
	}
	return config.Client(ctx, tok), nil
}

// getTokenFromWeb requests a token via the authorization code printed by the user.
func getTokenFromWeb(ctx context.Context, config *oauth2.Config) (*oauth2.Token, error) {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Go to the following link in your browser then type the authorization code: \n%v\n", authURL)

	var authCode string
	if _, err := fmt.Scan(&authCode); err != nil {
		return nil, fmt.Errorf("unable to read authorization code: %w", err)
	}

	tok, err := config.Exchange(ctx, authCode)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}
	return tok, nil
}

// tokenFromFile retrieves a token from a local file.
func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tok := &oauth2.Token{}
	err = json.NewDecoder(f).Decode(tok)
	return tok, err
}

// saveToken saves a token to a file path.
func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(token)
}

// FetchResumes downloads PDF attachments of messages matching the subject
// filter into the uploads directory and returns the saved paths. Failures on
// individual messages or attachments are logged and skipped.
func (gh *GmailHandler) FetchResumes(ctx context.Context, subject string) ([]string, error) {
	if err := os.MkdirAll(gh.uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	user := "me"
	query := fmt.Sprintf("subject:%s has:attachment filename:pdf", subject)

	r, err := gh.service.Users.Messages.List(user).Q(query).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve messages: %w", err)
	}

	if len(r.Messages) == 0 {
		return nil, fmt.Errorf("no messages found with subject: %s", subject)
	}

	var saved []string
	for _, msg := range r.Messages {
		message, err := gh.service.Users.Messages.Get(user, msg.Id).Context(ctx).Do()
		if err != nil {
			log.Printf("Unable to retrieve message %s: %v", msg.Id, err)
			continue
		}

		senderName := extractSenderName(message)

		for _, part := range message.Payload.Parts {
			if part.Filename == "" || part.Body.AttachmentId == "" {
				continue
			}
			if strings.ToLower(filepath.Ext(part.Filename)) != ".pdf" {
				continue
			}

			attachment, err := gh.service.Users.Messages.Attachments.Get(user, msg.Id, part.Body.AttachmentId).Context(ctx).Do()
			if err != nil {
				log.Printf("Unable to retrieve attachment: %v", err)
				continue
			}

			data, err := base64.URLEncoding.DecodeString(attachment.Data)
			if err != nil {
				log.Printf("Unable to decode attachment: %v", err)
				continue
			}

			filename := fmt.Sprintf("%s_%s", senderName, filepath.Base(part.Filename))
			filePath := filepath.Join(gh.uploadsDir, filename)
			if err := os.WriteFile(filePath, data, 0644); err != nil {
				log.Printf("Unable to write file %s: %v", filePath, err)
				continue
			}

			log.Printf("Downloaded: %s", filename)
			saved = append(saved, filePath)
		}
	}

	if len(saved) == 0 {
		return nil, fmt.Errorf("no PDF resumes found with subject: %s", subject)
	}

	return saved, nil
}

// extractSenderName extracts the sender's name from email headers.
func extractSenderName(message *gmail.Message) string {
	for _, header := range message.Payload.Headers {
		if header.Name == "From" {
			from := header.Value
			if idx := strings.Index(from, "<"); idx > 0 {
				name := strings.TrimSpace(from[:idx])
				name = strings.ReplaceAll(name, " ", "")
				if name != "" {
					return name
				}
			}
			if idx := strings.Index(from, "@"); idx > 0 {
				return from[:idx]
			}
			return "Unknown"
		}
	}
	return "Unknown"
}
