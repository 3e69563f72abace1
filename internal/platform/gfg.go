package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yash-070702/Codash-next/internal/analytics"
	"github.com/yash-070702/Codash-next/internal/errvalues"
	"github.com/yash-070702/Codash-next/pkg/cleanup"
	"github.com/yash-070702/Codash-next/pkg/entity"
)

const defaultGFGURL = "https://geeks-for-geeks-api.vercel.app"

// GFG fetches activity from the community profile API: a per-day object
// calendar plus solved counts keyed by difficulty, including the
// GFG-specific basic tier.
type GFG struct {
	url    string
	client *http.Client
}

func NewGFG(baseURL string, client *http.Client) *GFG {
	if baseURL == "" {
		baseURL = defaultGFGURL
	}
	if client == nil {
		client = defaultClient()
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing gfg idle connections",
		F: func() error {
			client.CloseIdleConnections()
			return nil
		},
	})
	return &GFG{url: baseURL, client: client}
}

func (g *GFG) Source() analytics.Source { return analytics.SourceGFG }

type gfgResponse struct {
	Info *struct {
		UserName string `json:"userName"`
	} `json:"info"`
	SolvedStats map[string]any `json:"solvedStats"`
	Calendar    map[string]any `json:"calendar"`
}

func (g *GFG) Fetch(ctx context.Context, handle string) (*RawActivity, error) {
	endpoint := fmt.Sprintf("%s/%s", g.url, url.PathEscape(handle))

	var resp gfgResponse
	if err := getJSON(ctx, g.client, endpoint, &resp); err != nil {
		return nil, err
	}
	if resp.Info == nil || resp.Info.UserName == "" {
		return nil, errvalues.ErrHandleNotFound
	}

	records := any(resp.Calendar)
	if resp.Calendar == nil {
		records = map[string]any{}
	}
	return &RawActivity{
		Records:    records,
		Difficulty: solvedCounts(resp.SolvedStats),
	}, nil
}

// solvedCounts reads per-difficulty solved totals, accepting either a bare
// number or an object with a count field per tier.
func solvedCounts(stats map[string]any) entity.DifficultyCounts {
	count := func(tier string) int {
		switch v := stats[tier].(type) {
		case float64:
			return int(v)
		case map[string]any:
			if c, ok := v["count"].(float64); ok {
				return int(c)
			}
		}
		return 0
	}
	return entity.DifficultyCounts{
		Easy:   count("easy"),
		Medium: count("medium"),
		Hard:   count("hard"),
		Basic:  count("basic"),
	}
}
