// Package lyrics implements the Musixmatch client behind the lyrics provider
// contract consumed by the lyrical corpus source.
package lyrics

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	gocache "github.com/patrickmn/go-cache"

	"book-duets-be/pkg/corpus"
)

const (
	defaultBaseURL = "http://api.musixmatch.com/ws/1.1/"
	searchMemoTTL  = time.Minute
)

type Config struct {
	APIKey  string
	BaseURL string // defaults to the public Musixmatch endpoint
	Timeout time.Duration
}

// Client talks to the Musixmatch track.search and track.lyrics.get endpoints.
// Transport-level failures are retried by the underlying client; search
// results are memoized briefly so a rebuild within the memo window does not
// repeat the search call.
type Client struct {
	cfg  Config
	http *http.Client
	memo *gocache.Cache
}

var _ corpus.LyricsProvider = (*Client)(nil)

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
		memo: gocache.New(searchMemoTTL, 2*searchMemoTTL),
	}
}

type trackSearchResponse struct {
	Message struct {
		Header struct {
			StatusCode int `json:"status_code"`
		} `json:"header"`
		Body struct {
			TrackList []struct {
				Track struct {
					TrackID int64 `json:"track_id"`
				} `json:"track"`
			} `json:"track_list"`
		} `json:"body"`
	} `json:"message"`
}

type trackLyricsResponse struct {
	Message struct {
		Header struct {
			StatusCode int `json:"status_code"`
		} `json:"header"`
		Body struct {
			Lyrics struct {
				LyricsBody string `json:"lyrics_body"`
			} `json:"lyrics"`
		} `json:"body"`
	} `json:"message"`
}

// SearchTracks resolves up to limit track ids with lyrics for the artist.
// An unknown artist or an empty track list reports corpus.ErrSubjectNotFound.
func (c *Client) SearchTracks(ctx context.Context, artist string, limit int) ([]int64, error) {
	memoKey := fmt.Sprintf("search:%s:%d", artist, limit)
	if val, ok := c.memo.Get(memoKey); ok {
		return val.([]int64), nil
	}

	params := url.Values{}
	params.Set("q_artist", artist)
	params.Set("f_has_lyrics", "1")
	params.Set("page_size", fmt.Sprint(limit))
	params.Set("format", "json")
	params.Set("apikey", c.cfg.APIKey)

	var result trackSearchResponse
	if err := c.getJSON(ctx, "track.search", params, &result); err != nil {
		return nil, err
	}
	if result.Message.Header.StatusCode == http.StatusNotFound {
		return nil, corpus.ErrSubjectNotFound
	}

	ids := make([]int64, 0, len(result.Message.Body.TrackList))
	for _, t := range result.Message.Body.TrackList {
		ids = append(ids, t.Track.TrackID)
	}
	if len(ids) == 0 {
		return nil, corpus.ErrSubjectNotFound
	}

	c.memo.SetDefault(memoKey, ids)
	return ids, nil
}

// TrackLyrics retrieves the lyric body for one track. An empty body reports
// corpus.ErrContentNotFound; the caller decides whether that is fatal.
func (c *Client) TrackLyrics(ctx context.Context, trackID int64) (string, error) {
	params := url.Values{}
	params.Set("track_id", fmt.Sprint(trackID))
	params.Set("format", "json")
	params.Set("apikey", c.cfg.APIKey)

	var result trackLyricsResponse
	if err := c.getJSON(ctx, "track.lyrics.get", params, &result); err != nil {
		return "", err
	}

	body := result.Message.Body.Lyrics.LyricsBody
	if body == "" {
		return "", corpus.ErrContentNotFound
	}
	return body, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+endpoint+"?"+params.Encode(), nil)
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
