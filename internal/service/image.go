package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/HyperionMedia/Plated-Free-sub001/config"
)

// ImageGenerationRequest represents a request to the DALL-E API
type ImageGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	Quality        string `json:"quality"`
	ResponseFormat string `json:"response_format"`
}

// ImageGenerationResponse represents the response from DALL-E API
type ImageGenerationResponse struct {
	Created int64 `json:"created"`
	Data    []struct {
		URL     string `json:"url,omitempty"`
		B64JSON string `json:"b64_json,omitempty"`
	} `json:"data"`
}

// ImageService generates a picture for a recipe name. The result is
// either an absolute URL or a base64 data URI; the store writes
// whichever form comes back, untransformed. With S3 configured the
// image is re-hosted there first.
type ImageService struct {
	apiKey   string
	apiURL   string
	s3Config *config.S3Config
	client   *http.Client
}

// NewImageService reads the API key from OPENAI_API_KEY or the file
// named by OPENAI_API_KEY_FILE. s3Config may be nil; uploads are then
// skipped and the provider's URL or inline data is returned directly.
func NewImageService(s3Config *config.S3Config) (*ImageService, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		apiKeyFile := os.Getenv("OPENAI_API_KEY_FILE")
		if apiKeyFile == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY or OPENAI_API_KEY_FILE must be set")
		}
		apiKeyBytes, err := os.ReadFile(apiKeyFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read API key file: %w", err)
		}
		apiKey = strings.TrimSpace(string(apiKeyBytes))
		if apiKey == "" {
			return nil, fmt.Errorf("API key file is empty")
		}
	}

	apiURL := os.Getenv("OPENAI_IMAGES_API_URL")
	if apiURL == "" {
		apiURL = "https://api.openai.com/v1/images/generations"
	}

	return &ImageService{
		apiKey:   apiKey,
		apiURL:   apiURL,
		s3Config: s3Config,
		client:   &http.Client{Timeout: 60 * time.Second},
	}, nil
}

// GenerateRecipeImage generates an image for the named recipe, retrying
// transient provider failures a bounded number of times.
func (s *ImageService) GenerateRecipeImage(ctx context.Context, recipeName string) (string, error) {
	prompt := fmt.Sprintf("A professional food photography shot of %s, natural lighting, shallow depth of field, restaurant quality presentation", strings.ToLower(recipeName))

	const maxRetries = 3
	for attempt := 1; attempt <= maxRetries; attempt++ {
		imageURI, err := s.generateImageAttempt(ctx, prompt)
		if err != nil {
			log.Printf("[ImageService] attempt %d/%d failed: %v", attempt, maxRetries, err)
			if attempt == maxRetries {
				return "", fmt.Errorf("failed to generate image after %d attempts: %w", maxRetries, err)
			}
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}
		return imageURI, nil
	}
	return "", fmt.Errorf("failed to generate image after %d attempts", maxRetries)
}

func (s *ImageService) generateImageAttempt(ctx context.Context, prompt string) (string, error) {
	reqBody := ImageGenerationRequest{
		Model:          "dall-e-3",
		Prompt:         prompt,
		N:              1,
		Size:           "1024x1024",
		Quality:        "standard",
		ResponseFormat: "url",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var result ImageGenerationResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(result.Data) == 0 {
		return "", fmt.Errorf("no image data in API response")
	}

	// The provider returns either a hosted URL or inline base64 data.
	if b64 := result.Data[0].B64JSON; b64 != "" {
		if s.s3Config != nil {
			imageData, err := base64.StdEncoding.DecodeString(b64)
			if err == nil {
				if s3URL, err := s.uploadToS3(ctx, imageData); err == nil {
					return s3URL, nil
				}
			}
		}
		return "data:image/png;base64," + b64, nil
	}

	imageURL := result.Data[0].URL
	if imageURL == "" {
		return "", fmt.Errorf("empty image URL in API response")
	}
	if s.s3Config != nil {
		if s3URL, err := s.downloadAndUploadToS3(ctx, imageURL); err == nil {
			return s3URL, nil
		} else {
			log.Printf("[ImageService] S3 upload failed, returning provider URL: %v", err)
		}
	}
	return imageURL, nil
}

func (s *ImageService) downloadAndUploadToS3(ctx context.Context, imageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", imageURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create download request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download image: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to download image, status: %d", resp.StatusCode)
	}
	imageData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read image data: %w", err)
	}
	return s.uploadToS3(ctx, imageData)
}

func (s *ImageService) uploadToS3(ctx context.Context, imageData []byte) (string, error) {
	fileName := fmt.Sprintf("recipe-images/%s.png", uuid.New().String())
	_, err := s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(fileName),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String("image/png"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to S3: %w", err)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.s3Config.BucketName, fileName), nil
}
