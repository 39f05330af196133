// Package quotes implements the Wikiquote client behind the quote provider
// contract consumed by the literary corpus source.
package quotes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	gocache "github.com/patrickmn/go-cache"

	"book-duets-be/pkg/corpus"
)

const (
	defaultBaseURL  = "https://en.wikiquote.org/w/api.php"
	sectionsMemoTTL = time.Minute
)

type Config struct {
	BaseURL string // defaults to the English Wikiquote API
	Timeout time.Duration
}

// Client talks to the Wikiquote parse API. Author pages are addressed by
// exact title, so a name missing its special characters resolves to no page
// and is reported as corpus.ErrSubjectNotFound.
type Client struct {
	cfg  Config
	http *http.Client
	memo *gocache.Cache
}

var _ corpus.QuoteProvider = (*Client)(nil)

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	r := retryablehttp.NewClient()
	r.RetryMax = 2
	r.Logger = nil
	r.HTTPClient.Timeout = cfg.Timeout

	return &Client{
		cfg:  cfg,
		http: r.StandardClient(),
		memo: gocache.New(sectionsMemoTTL, 2*sectionsMemoTTL),
	}
}

type sectionsResponse struct {
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
	Parse struct {
		Sections []struct {
			Index  string `json:"index"`
			Number string `json:"number"`
		} `json:"sections"`
	} `json:"parse"`
}

type sectionTextResponse struct {
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
	Parse struct {
		Text struct {
			Content string `json:"*"`
		} `json:"text"`
	} `json:"parse"`
}

// SearchSections lists the section indexes under the page's quote section
// (the 1.x subsections). A missing page reports corpus.ErrSubjectNotFound.
func (c *Client) SearchSections(ctx context.Context, author string) ([]string, error) {
	memoKey := "sections:" + author
	if val, ok := c.memo.Get(memoKey); ok {
		return val.([]string), nil
	}

	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", author)
	params.Set("prop", "sections")
	params.Set("format", "json")

	var result sectionsResponse
	if err := c.getJSON(ctx, params, &result); err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, corpus.ErrSubjectNotFound
	}

	sections := make([]string, 0, len(result.Parse.Sections))
	for _, s := range result.Parse.Sections {
		if strings.HasPrefix(s.Number, "1.") {
			sections = append(sections, s.Index)
		}
	}
	if len(sections) == 0 {
		return nil, corpus.ErrSubjectNotFound
	}

	c.memo.SetDefault(memoKey, sections)
	return sections, nil
}

// SectionQuotes retrieves one section rendered as HTML. The corpus cleaner
// strips the list markup downstream. An empty section reports
// corpus.ErrContentNotFound.
func (c *Client) SectionQuotes(ctx context.Context, author, section string) (string, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", author)
	params.Set("section", section)
	params.Set("prop", "text")
	params.Set("format", "json")

	var result sectionTextResponse
	if err := c.getJSON(ctx, params, &result); err != nil {
		return "", err
	}
	if result.Error != nil {
		return "", corpus.ErrContentNotFound
	}

	text := result.Parse.Text.Content
	if text == "" {
		return "", corpus.ErrContentNotFound
	}
	return text, nil
}

func (c *Client) getJSON(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}
