// Package leetcode is a minimal client for the two public LeetCode GraphQL
// queries the daily assigner needs: a user's recent accepted submissions and
// the free problem catalog.
package leetcode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const DefaultEndpoint = "https://leetcode.com/graphql"

// CatalogProblem is one entry of the public problem catalog.
type CatalogProblem struct {
	Slug       string
	Title      string
	Difficulty string
}

type Client struct {
	endpoint string
	client   *http.Client
}

// NewClient creates a client for the given GraphQL endpoint. An empty
// endpoint uses the public LeetCode API.
func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 20 * time.Second},
	}
}

const recentAcceptedQuery = `
query recentAc($username: String!) {
  recentAcSubmissionList(username: $username, limit: 1000) {
    titleSlug
    timestamp
  }
}`

// RecentAcceptedSlugs returns the set of problem slugs the user solved at or
// after the given cutoff.
func (c *Client) RecentAcceptedSlugs(username string, since time.Time) (map[string]bool, error) {
	var data struct {
		RecentAcSubmissionList []struct {
			TitleSlug string `json:"titleSlug"`
			Timestamp string `json:"timestamp"`
		} `json:"recentAcSubmissionList"`
	}
	if err := c.query(recentAcceptedQuery, map[string]any{"username": username}, &data); err != nil {
		return nil, fmt.Errorf("failed to fetch recent submissions: %w", err)
	}

	solved := make(map[string]bool)
	for _, s := range data.RecentAcSubmissionList {
		ts, err := strconv.ParseInt(s.Timestamp, 10, 64)
		if err != nil {
			continue
		}
		if !time.Unix(ts, 0).Before(since) {
			solved[s.TitleSlug] = true
		}
	}
	return solved, nil
}

const questionListQuery = `
query getQuestions($skip: Int!, $limit: Int!) {
  questionList(categorySlug: "", skip: $skip, limit: $limit, filters: {}) {
    data {
      title
      titleSlug
      difficulty
      isPaidOnly
    }
  }
}`

// FreeProblems pages through the catalog and returns every problem that is
// not paywalled, in catalog order.
func (c *Client) FreeProblems() ([]CatalogProblem, error) {
	const limit = 100
	var free []CatalogProblem

	for skip := 0; ; skip += limit {
		var data struct {
			QuestionList struct {
				Data []struct {
					Title      string `json:"title"`
					TitleSlug  string `json:"titleSlug"`
					Difficulty string `json:"difficulty"`
					IsPaidOnly bool   `json:"isPaidOnly"`
				} `json:"data"`
			} `json:"questionList"`
		}
		if err := c.query(questionListQuery, map[string]any{"skip": skip, "limit": limit}, &data); err != nil {
			return nil, fmt.Errorf("failed to fetch problem catalog: %w", err)
		}
		if len(data.QuestionList.Data) == 0 {
			break
		}
		for _, q := range data.QuestionList.Data {
			if q.IsPaidOnly {
				continue
			}
			free = append(free, CatalogProblem{
				Slug:       q.TitleSlug,
				Title:      q.Title,
				Difficulty: q.Difficulty,
			})
		}
	}
	return free, nil
}

func (c *Client) query(query string, variables map[string]any, out any) error {
	body, err := json.Marshal(map[string]any{"query": query, "variables": variables})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0")

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(res.Body)
		return fmt.Errorf("graphql request failed with status %d: %s", res.StatusCode, msg)
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return json.Unmarshal(envelope.Data, out)
}
