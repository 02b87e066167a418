package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"strconv"

	"rewardsadmin/utils"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

// upstreamMessagePaths are tried in order to find a readable message in an upstream error body.
var upstreamMessagePaths = []string{"message", "error.message", "error", "detail"}

// NewBackendProxy returns a handler forwarding /api/backend/*path to backendURL/*path.
// Upstream error responses are rewritten to {error} with the upstream status kept.
// Requests are not retried.
func NewBackendProxy(backendURL string) (gin.HandlerFunc, error) {
	target, err := url.Parse(backendURL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend URL '%s': %w", backendURL, err)
	}

	proxy := &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
		},
		ModifyResponse: normalizeUpstreamError,
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Printf("ERROR: Upstream request %s %s failed: %v", r.Method, r.URL.Path, err)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusBadGateway)
			_ = json.NewEncoder(w).Encode(utils.APIError{Error: "Upstream request failed"})
		},
	}

	return func(c *gin.Context) {
		c.Request.URL.Path = c.Param("path")
		c.Request.URL.RawPath = ""
		proxy.ServeHTTP(c.Writer, c.Request)
	}, nil
}

// normalizeUpstreamError replaces the body of a 4xx/5xx upstream response with {error}.
func normalizeUpstreamError(resp *http.Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		body = nil
	}

	msg := upstreamMessage(body, resp.Status)
	log.Printf("WARN: Upstream %s %s answered %s: %s", resp.Request.Method, resp.Request.URL.Path, resp.Status, msg)

	payload, err := json.Marshal(utils.APIError{Error: msg})
	if err != nil {
		return err
	}
	resp.Body = io.NopCloser(bytes.NewReader(payload))
	resp.ContentLength = int64(len(payload))
	resp.Header.Set("Content-Length", strconv.Itoa(len(payload)))
	resp.Header.Set("Content-Type", "application/json; charset=utf-8")
	resp.Header.Del("Content-Encoding")
	return nil
}

// upstreamMessage extracts the error message from an upstream body, falling back to the status line.
func upstreamMessage(body []byte, status string) string {
	if len(body) > 0 && gjson.ValidBytes(body) {
		for _, p := range upstreamMessagePaths {
			if v := gjson.GetBytes(body, p); v.Type == gjson.String && v.String() != "" {
				return v.String()
			}
		}
	}
	return fmt.Sprintf("Request failed: %s", status)
}
