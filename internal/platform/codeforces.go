package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/yash-070702/Codash-next/internal/analytics"
	"github.com/yash-070702/Codash-next/internal/errvalues"
	"github.com/yash-070702/Codash-next/pkg/cleanup"
	"github.com/yash-070702/Codash-next/pkg/entity"
)

const defaultCodeforcesURL = "https://codeforces.com/api"

// Codeforces fetches the raw submission log via user.status. Every submission
// counts toward the activity calendar; difficulty counts consider only
// accepted verdicts on distinct problems, bucketed by problem rating.
type Codeforces struct {
	url    string
	client *http.Client
}

func NewCodeforces(baseURL string, client *http.Client) *Codeforces {
	if baseURL == "" {
		baseURL = defaultCodeforcesURL
	}
	if client == nil {
		client = defaultClient()
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing codeforces idle connections",
		F: func() error {
			client.CloseIdleConnections()
			return nil
		},
	})
	return &Codeforces{url: baseURL, client: client}
}

func (cf *Codeforces) Source() analytics.Source { return analytics.SourceCodeforces }

type cfStatusResponse struct {
	Status  string `json:"status"`
	Comment string `json:"comment"`
	Result  []struct {
		CreationTimeSeconds int64  `json:"creationTimeSeconds"`
		Verdict             string `json:"verdict"`
		Problem             struct {
			ContestID int    `json:"contestId"`
			Index     string `json:"index"`
			Rating    int    `json:"rating"`
		} `json:"problem"`
	} `json:"result"`
}

func (cf *Codeforces) Fetch(ctx context.Context, handle string) (*RawActivity, error) {
	endpoint := fmt.Sprintf("%s/user.status?handle=%s", cf.url, url.QueryEscape(handle))

	var resp cfStatusResponse
	if err := getJSON(ctx, cf.client, endpoint, &resp); err != nil {
		return nil, err
	}
	if resp.Status != "OK" {
		if strings.Contains(strings.ToLower(resp.Comment), "not found") {
			return nil, errvalues.ErrHandleNotFound
		}
		return nil, fmt.Errorf("%w: %s", errvalues.ErrUpstreamUnavailable, resp.Comment)
	}

	events := make([]any, 0, len(resp.Result))
	var diff entity.DifficultyCounts
	solved := make(map[string]bool)
	for _, sub := range resp.Result {
		events = append(events, map[string]any{"timestamp": sub.CreationTimeSeconds})

		if sub.Verdict != "OK" {
			continue
		}
		problemID := fmt.Sprintf("%d-%s", sub.Problem.ContestID, sub.Problem.Index)
		if solved[problemID] {
			continue
		}
		solved[problemID] = true
		switch {
		case sub.Problem.Rating == 0:
			diff.Basic++
		case sub.Problem.Rating <= 1200:
			diff.Easy++
		case sub.Problem.Rating <= 1800:
			diff.Medium++
		default:
			diff.Hard++
		}
	}

	return &RawActivity{Records: events, Difficulty: diff}, nil
}
