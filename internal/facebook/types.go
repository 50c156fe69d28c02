package facebook

// User is a minimal Graph API user node.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ConnectionTest reports the result of probing the API with the
// configured access token.
type ConnectionTest struct {
	Status string `json:"status"`
	User   User   `json:"user"`
}

// TestUser is an app-scoped test account.
type TestUser struct {
	ID          string `json:"id"`
	AccessToken string `json:"access_token,omitempty"`
	LoginURL    string `json:"login_url,omitempty"`
	Email       string `json:"email,omitempty"`
	Password    string `json:"password,omitempty"`
}

// Page holds the fields the page-info endpoint requests.
type Page struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	FanCount int    `json:"fan_count"`
	Category string `json:"category"`
	Picture  any    `json:"picture,omitempty"`
}

// Post is a single entry from a page feed.
type Post struct {
	ID          string `json:"id"`
	Message     string `json:"message,omitempty"`
	CreatedTime string `json:"created_time"`
	Attachments any    `json:"attachments,omitempty"`
}

// Insight is one metric series from the insights endpoint.
type Insight struct {
	Name   string         `json:"name"`
	Period string         `json:"period"`
	Values []InsightValue `json:"values"`
}

// InsightValue is a single data point of a metric.
type InsightValue struct {
	Value   any    `json:"value"`
	EndTime string `json:"end_time"`
}

// listEnvelope is the Graph API's standard paged collection wrapper.
type listEnvelope[T any] struct {
	Data []T `json:"data"`
}

// appTokenResponse is the OAuth client-credentials grant response.
type appTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// graphError is the error envelope the Graph API returns on failures.
type graphError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}
