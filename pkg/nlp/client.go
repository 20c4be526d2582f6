package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/piiscope/piiscope/config"
	"github.com/piiscope/piiscope/internal"
	"github.com/piiscope/piiscope/pkg/models"
)

var log = internal.GetLogger()

var _ models.Annotator = &Client{}

// Client calls the external NLP annotation service over HTTP. The service
// tokenizes the text and returns named entities with character offsets.
type Client struct {
	serverURL  string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.NLP.TimeoutSeconds) * time.Second
	return &Client{
		serverURL:  cfg.NLP.ServerURL,
		httpClient: NewRetryableHTTPClient(cfg.NLP.RetryMax, timeout),
	}
}

// Annotate runs the NLP service over the text and flattens the entity
// matches into (label, start, end) spans.
func (c *Client) Annotate(ctx context.Context, text string) ([]models.ModelEntity, error) {
	if text == "" {
		return nil, nil
	}

	response, err := c.callEntityService(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("entity service call failed: %w", err)
	}

	var entities []models.ModelEntity
	for _, record := range response.Texts {
		for _, ent := range record.Entities {
			for _, match := range ent.Matches {
				entities = append(entities, models.ModelEntity{
					Label: ent.Label,
					Start: match.Start,
					End:   match.End,
					Text:  match.Text,
				})
			}
		}
	}

	log.Debugf("annotator returned %d entities", len(entities))
	return entities, nil
}

func (c *Client) callEntityService(
	ctx context.Context,
	text string,
) (models.EntityResponse, error) {
	url := c.serverURL + "/entities"

	requestBody := models.EntityRequest{
		Texts: []models.EntityRequestRecord{
			{
				UUID:     uuid.New().String(),
				Text:     text,
				Language: "en",
			},
		},
	}
	jsonBody, err := json.Marshal(requestBody)
	if err != nil {
		return models.EntityResponse{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		url,
		bytes.NewBuffer(jsonBody),
	)
	if err != nil {
		return models.EntityResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.EntityResponse{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.EntityResponse{}, fmt.Errorf(
			"entity service returned status %d",
			resp.StatusCode,
		)
	}

	var response models.EntityResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return models.EntityResponse{}, err
	}

	return response, nil
}

var _ models.Annotator = &NoopAnnotator{}

// NoopAnnotator always returns no entities. Used when no NLP server is
// configured; model-entity recognizers then simply produce no spans.
type NoopAnnotator struct{}

func (NoopAnnotator) Annotate(_ context.Context, _ string) ([]models.ModelEntity, error) {
	return nil, nil
}
