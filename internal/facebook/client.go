package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	defaultBaseURL    = "https://graph.facebook.com"
	defaultAPIVersion = "v18.0"
)

// defaultPermissions is requested for newly created test users.
var defaultPermissions = []string{
	// Page permissions
	"pages_show_list",
	"pages_read_engagement",
	"pages_manage_posts",
	"pages_manage_metadata",

	// Basic permissions
	"public_profile",
	"email",

	// Content permissions
	"user_posts",
	"user_photos",

	// Social permissions
	"user_friends",
	"user_likes",

	// Events and groups
	"user_events",
	"groups_access_member_info",
}

// Client is a thin wrapper over the Facebook Graph API. It forwards
// parameters; there is no business logic here.
type Client struct {
	baseURL     string
	apiVersion  string
	accessToken string
	appID       string
	appSecret   string
	httpClient  *http.Client
}

// Credentials holds the Graph API credentials, usually read from the
// FACEBOOK_* environment variables.
type Credentials struct {
	AccessToken string
	AppID       string
	AppSecret   string
}

// NewClient creates a Graph API client. apiVersion may be empty for the
// default.
func NewClient(creds Credentials, apiVersion string) *Client {
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}
	return &Client{
		baseURL:     defaultBaseURL,
		apiVersion:  apiVersion,
		accessToken: creds.AccessToken,
		appID:       creds.AppID,
		appSecret:   creds.AppSecret,
		httpClient:  &http.Client{},
	}
}

// SetBaseURL overrides the API host, for tests.
func (c *Client) SetBaseURL(base string) { c.baseURL = base }

// appToken is the app id|secret form accepted for app-level endpoints.
func (c *Client) appToken() string {
	return c.appID + "|" + c.appSecret
}

func (c *Client) apiURL(endpoint string, params url.Values) string {
	return fmt.Sprintf("%s/%s/%s?%s", c.baseURL, c.apiVersion, endpoint, params.Encode())
}

// do issues the request and decodes the JSON body into out, surfacing the
// Graph API's error envelope as a Go error.
func (c *Client) do(ctx context.Context, method, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graph API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading graph API response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var ge graphError
		if json.Unmarshal(body, &ge) == nil && ge.Error.Message != "" {
			return fmt.Errorf("graph API error (%s, code %d): %s", ge.Error.Type, ge.Error.Code, ge.Error.Message)
		}
		return fmt.Errorf("graph API returned status %d: %s", resp.StatusCode, string(body))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshalling graph API response: %w", err)
	}
	return nil
}

// AppToken exchanges the app id and secret for an app access token.
func (c *Client) AppToken(ctx context.Context) (string, error) {
	params := url.Values{}
	params.Set("client_id", c.appID)
	params.Set("client_secret", c.appSecret)
	params.Set("grant_type", "client_credentials")

	var resp appTokenResponse
	if err := c.do(ctx, http.MethodGet, c.apiURL("oauth/access_token", params), &resp); err != nil {
		return "", err
	}
	return resp.AccessToken, nil
}

// TestConnection probes the /me endpoint with the configured access token.
func (c *Client) TestConnection(ctx context.Context) (*ConnectionTest, error) {
	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("fields", "id,name")

	var user User
	if err := c.do(ctx, http.MethodGet, c.apiURL("me", params), &user); err != nil {
		return nil, err
	}
	return &ConnectionTest{Status: "success", User: user}, nil
}

// CreateTestUser creates an app-scoped test user with the default
// permission set.
func (c *Client) CreateTestUser(ctx context.Context, installed bool) (*TestUser, error) {
	params := url.Values{}
	params.Set("access_token", c.appToken())
	params.Set("installed", strconv.FormatBool(installed))
	params.Set("permissions", strings.Join(defaultPermissions, ","))

	endpoint := fmt.Sprintf("%s/accounts/test-users", c.appID)
	var user TestUser
	if err := c.do(ctx, http.MethodPost, c.apiURL(endpoint, params), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// TestUsers lists the app's test users.
func (c *Client) TestUsers(ctx context.Context) ([]TestUser, error) {
	params := url.Values{}
	params.Set("access_token", c.appToken())

	endpoint := fmt.Sprintf("%s/accounts/test-users", c.appID)
	var resp listEnvelope[TestUser]
	if err := c.do(ctx, http.MethodGet, c.apiURL(endpoint, params), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// DeleteTestUser removes a test user by id.
func (c *Client) DeleteTestUser(ctx context.Context, userID string) error {
	params := url.Values{}
	params.Set("access_token", c.appToken())

	return c.do(ctx, http.MethodDelete, c.apiURL(userID, params), nil)
}

// PageInfo fetches basic page metadata.
func (c *Client) PageInfo(ctx context.Context, pageID string) (*Page, error) {
	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("fields", "id,name,fan_count,category,picture")

	var page Page
	if err := c.do(ctx, http.MethodGet, c.apiURL(pageID, params), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// PagePosts fetches up to limit posts from a page's feed.
func (c *Client) PagePosts(ctx context.Context, pageID string, limit int) ([]Post, error) {
	if limit <= 0 {
		limit = 10
	}
	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("fields", "id,message,created_time,attachments")
	params.Set("limit", strconv.Itoa(limit))

	var resp listEnvelope[Post]
	if err := c.do(ctx, http.MethodGet, c.apiURL(pageID+"/posts", params), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// PageInsights fetches daily values for the given metrics.
func (c *Client) PageInsights(ctx context.Context, pageID string, metrics []string) ([]Insight, error) {
	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("metric", strings.Join(metrics, ","))
	params.Set("period", "day")

	var resp listEnvelope[Insight]
	if err := c.do(ctx, http.MethodGet, c.apiURL(pageID+"/insights", params), &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
