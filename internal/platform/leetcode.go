package platform

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/yash-070702/Codash-next/internal/analytics"
	"github.com/yash-070702/Codash-next/internal/errvalues"
	"github.com/yash-070702/Codash-next/pkg/cleanup"
	"github.com/yash-070702/Codash-next/pkg/entity"
)

const defaultLeetCodeURL = "https://leetcode.com/graphql"

const lcCalendarQuery = `
query userCalendar($username: String!) {
  allQuestionsCount {
    difficulty
    count
  }
  matchedUser(username: $username) {
    userCalendar {
      activeYears
      submissionCalendar
    }
    submitStatsGlobal {
      acSubmissionNum {
        difficulty
        count
      }
    }
  }
}`

const lcYearCalendarQuery = `
query userCalendarYear($username: String!, $year: Int!) {
  matchedUser(username: $username) {
    userCalendar {
      submissionCalendar
    }
  }
}`

// LeetCode fetches activity through the public GraphQL endpoint. The
// submission calendar arrives as a JSON string of epoch-second keyed counts.
type LeetCode struct {
	url    string
	client *http.Client
}

func NewLeetCode(baseURL string, client *http.Client) *LeetCode {
	if baseURL == "" {
		baseURL = defaultLeetCodeURL
	}
	if client == nil {
		client = defaultClient()
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing leetcode idle connections",
		F: func() error {
			client.CloseIdleConnections()
			return nil
		},
	})
	return &LeetCode{url: baseURL, client: client}
}

func (lc *LeetCode) Source() analytics.Source { return analytics.SourceLeetCode }

type lcGraphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type lcCalendarResponse struct {
	Data struct {
		AllQuestionsCount []struct {
			Difficulty string `json:"difficulty"`
			Count      int    `json:"count"`
		} `json:"allQuestionsCount"`
		MatchedUser *struct {
			UserCalendar struct {
				ActiveYears        []int  `json:"activeYears"`
				SubmissionCalendar string `json:"submissionCalendar"`
			} `json:"userCalendar"`
			SubmitStatsGlobal struct {
				AcSubmissionNum []struct {
					Difficulty string `json:"difficulty"`
					Count      int    `json:"count"`
				} `json:"acSubmissionNum"`
			} `json:"submitStatsGlobal"`
		} `json:"matchedUser"`
	} `json:"data"`
}

func (lc *LeetCode) Fetch(ctx context.Context, handle string) (*RawActivity, error) {
	var resp lcCalendarResponse
	err := postJSON(ctx, lc.client, lc.url, lcGraphqlRequest{
		Query:     lcCalendarQuery,
		Variables: map[string]any{"username": handle},
	}, &resp)
	if err != nil {
		return nil, err
	}
	user := resp.Data.MatchedUser
	if user == nil {
		return nil, errvalues.ErrHandleNotFound
	}

	var diff entity.DifficultyCounts
	for _, num := range user.SubmitStatsGlobal.AcSubmissionNum {
		switch num.Difficulty {
		case "Easy":
			diff.Easy = num.Count
		case "Medium":
			diff.Medium = num.Count
		case "Hard":
			diff.Hard = num.Count
		}
	}

	return &RawActivity{
		Records:        decodeCalendarString(user.UserCalendar.SubmissionCalendar, 0),
		Difficulty:     diff,
		ActiveYears:    user.UserCalendar.ActiveYears,
		QuestionTotals: questionTotals(resp),
	}, nil
}

// questionTotals reads the site-wide problem counts that ride along with the
// calendar query. Nil when the upstream omits the block.
func questionTotals(resp lcCalendarResponse) *entity.QuestionTotals {
	if len(resp.Data.AllQuestionsCount) == 0 {
		return nil
	}
	var totals entity.QuestionTotals
	for _, num := range resp.Data.AllQuestionsCount {
		switch num.Difficulty {
		case "Easy":
			totals.Easy = num.Count
		case "Medium":
			totals.Medium = num.Count
		case "Hard":
			totals.Hard = num.Count
		}
	}
	return &totals
}

func (lc *LeetCode) FetchYear(ctx context.Context, handle string, year int) (*RawActivity, error) {
	var resp lcCalendarResponse
	err := postJSON(ctx, lc.client, lc.url, lcGraphqlRequest{
		Query:     lcYearCalendarQuery,
		Variables: map[string]any{"username": handle, "year": year},
	}, &resp)
	if err != nil {
		return nil, err
	}
	user := resp.Data.MatchedUser
	if user == nil {
		return nil, errvalues.ErrHandleNotFound
	}
	return &RawActivity{
		Records: decodeCalendarString(user.UserCalendar.SubmissionCalendar, year),
	}, nil
}

// decodeCalendarString parses the nested calendar JSON string. When year is
// non-zero, entries outside that UTC year are dropped, guarding against
// upstreams that echo the current calendar for historical queries.
func decodeCalendarString(calendar string, year int) map[string]any {
	out := make(map[string]any)
	if calendar == "" {
		return out
	}
	var decoded map[string]any
	if err := sonic.ConfigDefault.Unmarshal([]byte(calendar), &decoded); err != nil {
		return out
	}
	if year == 0 {
		return decoded
	}
	for key, val := range decoded {
		sec, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		if time.Unix(sec, 0).UTC().Year() == year {
			out[key] = val
		}
	}
	return out
}
