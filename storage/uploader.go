// Package storage hosts product images on S3-compatible object storage.
package storage

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
)

// Uploader accepts a base64 or data-URL image payload and returns the URL it
// is hosted at.
type Uploader interface {
	Upload(ctx context.Context, folder, payload string) (string, error)
}

var ErrBadPayload = errors.New("malformed image payload")

// decodePayload turns a data URL ("data:image/png;base64,....") or a bare
// base64 string into raw bytes and a content type.
func decodePayload(payload string) ([]byte, string, error) {
	contentType := "application/octet-stream"
	data := payload
	if strings.HasPrefix(payload, "data:") {
		meta, rest, ok := strings.Cut(payload[len("data:"):], ",")
		if !ok {
			return nil, "", ErrBadPayload
		}
		if ct, _, _ := strings.Cut(meta, ";"); ct != "" {
			contentType = ct
		}
		data = rest
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, "", ErrBadPayload
	}
	return raw, contentType, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	}
	return ""
}
