package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
)

// Client faz upload não assinado (upload preset) na API do Cloudinary e
// devolve a URL pública do arquivo.
type Client struct {
	cloudName    string
	uploadPreset string
	baseURL      string
	httpClient   *http.Client
}

func NewClient(cloudName, uploadPreset string) *Client {
	return &Client{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		baseURL:      "https://api.cloudinary.com/v1_1",
		httpClient:   http.DefaultClient,
	}
}

func (c *Client) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	if c.cloudName == "" || c.uploadPreset == "" {
		log.Println("⚠️ Cloudinary: CLOUD_NAME ou UPLOAD_PRESET não configurados")
		return "", fmt.Errorf("cloudinary não configurado")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", err
	}
	if err := writer.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	// "auto" deixa o Cloudinary decidir entre image/video/raw.
	url := fmt.Sprintf("%s/%s/auto/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, "POST", url, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("❌ Cloudinary: erro na requisição: %v", err)
		return "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		log.Printf("❌ Cloudinary: API retornou status %d: %s", resp.StatusCode, string(respBody))
		return "", fmt.Errorf("cloudinary api error: %d", resp.StatusCode)
	}

	var result UploadResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}

	if result.SecureURL == "" {
		return "", fmt.Errorf("cloudinary: resposta sem secure_url")
	}

	return result.SecureURL, nil
}
