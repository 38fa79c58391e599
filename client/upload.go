package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
)

// UploadError carries the HTTP status code and response body of a failed
// upload.
type UploadError struct {
	StatusCode int
	Body       string
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload failed: %d - %s", e.StatusCode, e.Body)
}

// UploadVideoFromReader sends the file to the upload endpoint as multipart
// form data (form field "file") and returns the server-assigned filename.
// The assigned name may differ from the filename we provided; the server
// picks the actual name.
func (c *Client) UploadVideoFromReader(r io.Reader, filename string) (string, error) {
	// Create a buffer to store the request body
	var requestBody bytes.Buffer

	// Create a multipart writer to wrap the file (like FormData)
	writer := multipart.NewWriter(&requestBody)

	// Create a form-file for the video and copy the file data into it
	formFile, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	_, err = io.Copy(formFile, r)
	if err != nil {
		return "", err
	}

	// Close the writer to finalize the body content
	writer.Close()

	req, err := http.NewRequest("POST", fmt.Sprintf("http://%s%s", c.serverBaseAddress, uploadRoute), &requestBody)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", &UploadError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	// Decode the JSON response
	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}

	// Get the assigned name from the response
	name, ok := data["name"].(string)
	if !ok {
		return "", fmt.Errorf("missing name in upload response")
	}
	return name, nil
}

// UploadVideoFromPath uploads the file at the given path.
func (c *Client) UploadVideoFromPath(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	return c.UploadVideoFromReader(file, filepath.Base(filePath))
}
