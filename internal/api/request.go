package api

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/spigell/smart-recruit/internal/logger"
	"github.com/spigell/smart-recruit/internal/utils"
)

const (
	contentType     = "application/json"
	contentEncoding = "gzip"
	requestIDHeader = "X-Request-Id"
	previewLength   = 200
)

// do sends the request and returns the decoded JSON envelope.
// The body is parsed whatever the status code is; success requires a 2xx
// status and "success": true in the body.
func (c *Client) do(ctx context.Context, op, method, path string, payload any) (map[string]any, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: marshal payload: %w", op, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.APIURL+path, body)
	if err != nil {
		return nil, &ConnectivityError{Op: op, Err: err}
	}

	req = c.setHeaders(req)
	if payload != nil {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.request(req)
	if err != nil {
		return nil, &ConnectivityError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := readBody(resp)
	if err != nil {
		return nil, &ConnectivityError{Op: op, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.Debug("got response from the API",
		logger.RequestFields(op, req.Header.Get(requestIDHeader),
			zap.Int("status", resp.StatusCode),
			zap.String("body_preview", utils.TruncateForLog(string(data), previewLength)),
		)...,
	)

	var envelope map[string]any
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, &ConnectivityError{Op: op, Err: fmt.Errorf("parse body: %w", err)}
	}
	if envelope == nil {
		envelope = make(map[string]any)
	}

	if !successful(resp.StatusCode, envelope) {
		return envelope, newBusinessError(op, resp.StatusCode, envelope)
	}

	return envelope, nil
}

func successful(status int, envelope map[string]any) bool {
	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return false
	}
	ok, _ := envelope["success"].(bool)
	return ok
}

func (c *Client) request(req *http.Request) (*http.Response, error) {
	c.logger.Debug("make request",
		logger.RequestFields(req.Method, req.Header.Get(requestIDHeader),
			zap.String("url", req.URL.String()),
		)...,
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (c *Client) setHeaders(req *http.Request) *http.Request {
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", contentType)
	req.Header.Set("Accept-Encoding", contentEncoding)
	req.Header.Set(requestIDHeader, uuid.NewString())

	return req
}

func readBody(resp *http.Response) ([]byte, error) {
	var reader io.Reader = resp.Body
	if resp.Header.Get("Content-Encoding") == "gzip" {
		gzipReader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer gzipReader.Close()
		reader = gzipReader
	}

	return io.ReadAll(reader)
}

// decode copies a field of the envelope into target using the json tags.
func decode(op string, envelope map[string]any, key string, target any) error {
	cfg := &mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := decoder.Decode(envelope[key]); err != nil {
		return &ConnectivityError{Op: op, Err: fmt.Errorf("decode %s: %w", key, err)}
	}

	return nil
}
