package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yash-070702/Codash-next/internal/analytics"
	"github.com/yash-070702/Codash-next/internal/errvalues"
	"github.com/yash-070702/Codash-next/pkg/cleanup"
)

const defaultCodeChefURL = "https://codechef-api.vercel.app/handle"

// CodeChef fetches activity from the community profile API. Mirrors disagree
// on the calendar field name and shape, so the response is probed for the
// known containers and handed to the normalizer as-is.
type CodeChef struct {
	url    string
	client *http.Client
}

func NewCodeChef(baseURL string, client *http.Client) *CodeChef {
	if baseURL == "" {
		baseURL = defaultCodeChefURL
	}
	if client == nil {
		client = defaultClient()
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing codechef idle connections",
		F: func() error {
			client.CloseIdleConnections()
			return nil
		},
	})
	return &CodeChef{url: baseURL, client: client}
}

func (cc *CodeChef) Source() analytics.Source { return analytics.SourceCodeChef }

func (cc *CodeChef) Fetch(ctx context.Context, handle string) (*RawActivity, error) {
	endpoint := fmt.Sprintf("%s/%s", cc.url, url.PathEscape(handle))

	var resp map[string]any
	if err := getJSON(ctx, cc.client, endpoint, &resp); err != nil {
		return nil, err
	}
	if success, ok := resp["success"].(bool); ok && !success {
		return nil, errvalues.ErrHandleNotFound
	}

	return &RawActivity{Records: calendarContainer(resp)}, nil
}

// calendarContainer probes the response for the calendar payload, trying the
// field names the known mirrors use, in order.
func calendarContainer(resp map[string]any) any {
	candidates := []map[string]any{resp}
	if nested, ok := resp["data"].(map[string]any); ok {
		candidates = append(candidates, nested)
	}
	for _, container := range candidates {
		for _, field := range []string{"heatMap", "submissionCalendar", "calendar", "submissions"} {
			switch v := container[field].(type) {
			case map[string]any:
				return v
			case []any:
				return v
			}
		}
	}
	return map[string]any{}
}
