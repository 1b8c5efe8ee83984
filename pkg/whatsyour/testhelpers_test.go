package whatsyour

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/whatsyour-info/whatsyour-go/pkg/httpclient"
)

const profileJSON = `{
  "username": "alice",
  "firstName": "Alice",
  "lastName": "Liddell",
  "bio": "Curiouser and curiouser",
  "avatar": "https://whatsyour.info/api/avatars/alice",
  "isProUser": true,
  "profileUrl": "https://whatsyour.info/alice",
  "subdomainUrl": "https://alice.whatsyour.info",
  "createdAt": "2024-05-01T10:00:00.000Z",
  "customDomain": "alice.dev",
  "socialLinks": {"twitter": "https://x.com/alice", "github": "https://github.com/alice"},
  "spotlightButton": {"text": "Hire me", "url": "https://alice.dev/hire", "color": "#ff0000"}
}`

const userJSON = `{"_id":"u1","email":"alice@example.com","username":"alice","firstName":"Alice","lastName":"Liddell","isProUser":false}`

func newTestServer(t *testing.T, apiKey string, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(Config{APIKey: apiKey, BaseURL: srv.URL, Timeout: 2 * time.Second})
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// fakeTransport returns a canned response or error and records the request.
type fakeTransport struct {
	status int
	body   string
	err    error
	calls  int
	last   httpclient.Request
}

type fakeResponse struct {
	body       []byte
	statusCode int
}

func (r fakeResponse) Body() []byte    { return r.body }
func (r fakeResponse) StatusCode() int { return r.statusCode }

func (f *fakeTransport) Do(_ context.Context, req httpclient.Request) (httpclient.Response, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	status := f.status
	if status == 0 {
		status = http.StatusOK
	}
	return fakeResponse{body: []byte(f.body), statusCode: status}, nil
}

func strPtr(s string) *string { return &s }
