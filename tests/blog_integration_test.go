package integration_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Test Configuration
// ============================================================================

var baseURL = getEnv("TEST_BASE_URL", "http://localhost:8080")

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ============================================================================
// Browser-Style Client
// ============================================================================

// browser is an HTTP client with a cookie jar, so scs sessions and flash
// messages behave the way they do for a real visitor. Redirects are not
// followed automatically; the tests assert on them.
type browser struct {
	client *http.Client
}

func newBrowser(t *testing.T) *browser {
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &browser{
		client: &http.Client{
			Timeout: 10 * time.Second,
			Jar:     jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

func (b *browser) get(t *testing.T, path string) (*http.Response, string) {
	resp, err := b.client.Get(baseURL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	return resp, string(body)
}

func (b *browser) postForm(t *testing.T, path string, form url.Values) *http.Response {
	resp, err := b.client.PostForm(baseURL+path, form)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return resp
}

var csrfPattern = regexp.MustCompile(`name="csrf_token" value="([^"]+)"`)

// csrfToken fetches a page and pulls the hidden CSRF field out of it. Every
// form POST needs one or the middleware answers 403.
func (b *browser) csrfToken(t *testing.T, path string) string {
	_, body := b.get(t, path)
	m := csrfPattern.FindStringSubmatch(body)
	if m == nil {
		t.Fatalf("no csrf_token field on %s", path)
	}
	return m[1]
}

func requireServer(t *testing.T) {
	t.Helper()
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(baseURL + "/health")
	if err != nil {
		t.Skipf("server not reachable at %s: %v", baseURL, err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Skipf("server at %s unhealthy: %d", baseURL, resp.StatusCode)
	}
}

// ============================================================================
// Flow Helpers
// ============================================================================

func registerAndLogin(t *testing.T, b *browser, username, password string) {
	t.Helper()

	token := b.csrfToken(t, "/register")
	resp := b.postForm(t, "/register", url.Values{
		"csrf_token":       {token},
		"username":         {username},
		"password":         {password},
		"confirm_password": {password},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("register: status %d, want 303", resp.StatusCode)
	}

	token = b.csrfToken(t, "/login")
	resp = b.postForm(t, "/login", url.Values{
		"csrf_token": {token},
		"username":   {username},
		"password":   {password},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("login: status %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Fatalf("login redirect = %q, want /", loc)
	}
}

func createPost(t *testing.T, b *browser, title, summary, content string) string {
	t.Helper()

	token := b.csrfToken(t, "/add")
	resp := b.postForm(t, "/add", url.Values{
		"csrf_token": {token},
		"title":      {title},
		"summary":    {summary},
		"content":    {content},
		"category":   {"Integration"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("create post: status %d, want 303", resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	if !strings.HasPrefix(loc, "/post/") {
		t.Fatalf("create post redirect = %q, want /post/{id}", loc)
	}
	return loc
}

func uniqueName(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestPublishEngageDeleteFlow(t *testing.T) {
	requireServer(t)

	author := newBrowser(t)
	registerAndLogin(t, author, uniqueName("it_author"), "password123")

	postPath := createPost(t, author, "Integration finals recap", "Scripted run", "Full body of the recap.")

	// The post page renders the new title.
	resp, body := author.get(t, postPath)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("post page: status %d", resp.StatusCode)
	}
	if !strings.Contains(body, "Integration finals recap") {
		t.Error("post page missing the published title")
	}

	// A second user comments and votes.
	reader := newBrowser(t)
	registerAndLogin(t, reader, uniqueName("it_reader"), "password123")

	token := reader.csrfToken(t, postPath)
	resp = reader.postForm(t, postPath, url.Values{
		"csrf_token": {token},
		"body":       {"Great breakdown of the veto."},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("comment: status %d, want 303", resp.StatusCode)
	}

	resp = reader.postForm(t, postPath+"/feedback", url.Values{
		"csrf_token": {token},
		"action":     {"helpful"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("feedback: status %d, want 303", resp.StatusCode)
	}

	_, body = reader.get(t, postPath)
	if !strings.Contains(body, "Great breakdown of the veto.") {
		t.Error("post page missing the new comment")
	}

	// Only the author may delete; the reader gets bounced.
	postID := strings.TrimPrefix(postPath, "/post/")
	resp = reader.postForm(t, "/delete/"+postID, url.Values{"csrf_token": {token}})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("foreign delete: status %d, want redirect", resp.StatusCode)
	}
	if _, body = reader.get(t, postPath); !strings.Contains(body, "Integration finals recap") {
		t.Fatal("post should survive a non-owner delete attempt")
	}

	authorToken := author.csrfToken(t, postPath)
	resp = author.postForm(t, "/delete/"+postID, url.Values{"csrf_token": {authorToken}})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("delete: status %d, want 303", resp.StatusCode)
	}

	// Gone, along with everything hanging off it.
	resp, _ = author.get(t, postPath)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("deleted post page: status %d, want 404", resp.StatusCode)
	}
}

func TestAnonymousIsRedirectedToLogin(t *testing.T) {
	requireServer(t)

	b := newBrowser(t)
	resp, _ := b.get(t, "/add")
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("status %d, want 303", resp.StatusCode)
	}
	loc := resp.Header.Get("Location")
	if !strings.HasPrefix(loc, "/login?next=") {
		t.Errorf("redirect = %q, want /login?next=...", loc)
	}
}

func TestPostWithoutCSRFIsRejected(t *testing.T) {
	requireServer(t)

	b := newBrowser(t)
	// Prime a session so the failure is the missing token, not a missing session.
	b.get(t, "/login")

	resp := b.postForm(t, "/login", url.Values{
		"username": {"whoever"},
		"password": {"whatever"},
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status %d, want 403", resp.StatusCode)
	}
}

func TestDuplicateUsernameIsRejected(t *testing.T) {
	requireServer(t)

	name := uniqueName("it_dupe")

	first := newBrowser(t)
	registerAndLogin(t, first, name, "password123")

	// Same handle in a different case must collide.
	second := newBrowser(t)
	token := second.csrfToken(t, "/register")
	resp := second.postForm(t, "/register", url.Values{
		"csrf_token":       {token},
		"username":         {strings.ToUpper(name)},
		"password":         {"password123"},
		"confirm_password": {"password123"},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("register: status %d, want 303", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/register" {
		t.Errorf("redirect = %q, want back to /register", loc)
	}
}

func TestSearchAndCategoryFilter(t *testing.T) {
	requireServer(t)

	b := newBrowser(t)
	registerAndLogin(t, b, uniqueName("it_search"), "password123")

	marker := uniqueName("xmarker")
	postPath := createPost(t, b, "Filter target "+marker, "summary", "content")
	defer func() {
		token := b.csrfToken(t, postPath)
		b.postForm(t, "/delete/"+strings.TrimPrefix(postPath, "/post/"), url.Values{"csrf_token": {token}})
	}()

	// Substring search is case-insensitive.
	_, body := b.get(t, "/?q="+url.QueryEscape(strings.ToUpper(marker)))
	if !strings.Contains(body, marker) {
		t.Error("search did not find the post by title substring")
	}

	// Category filter is exact but case-insensitive.
	_, body = b.get(t, "/?category=integration")
	if !strings.Contains(body, marker) {
		t.Error("category filter did not find the post")
	}

	// A non-matching search hides it.
	_, body = b.get(t, "/?q="+url.QueryEscape(marker+"zzz"))
	if strings.Contains(body, marker) {
		t.Error("non-matching search should not list the post")
	}
}
