// Package printerclient polls a Moonraker-compatible 3D-printer HTTP
// API for print progress and the current job's thumbnail.
package printerclient

import (
	"context"
	"encoding/json"
	"fmt"
	"image"
	_ "image/png"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/photonicat/lcddash/internal/bus"
	"github.com/photonicat/lcddash/internal/logging"
)

// Metrics is the latest published snapshot of print state, per
// the printer metrics snapshot.
type Metrics struct {
	State         string
	Filename      string
	Progress01    float64
	ElapsedSec    int
	ETASec        int
	Active        bool
	HadJob        bool
	LastActiveAt  time.Time
	ThumbRelPath  string
	Thumb         image.Image
}

// Client polls a Moonraker base URL on a fixed interval and exposes the
// latest metrics via GetSnapshot, mirroring the reference client's
// worker-thread/mutex-guarded-struct shape with a bus.Snapshot.
type Client struct {
	baseURL  string
	pollEvery time.Duration
	httpc    *http.Client

	snapshot *bus.Snapshot[Metrics]

	lastFilename string
	lastThumbRel string
}

// New returns a Client that will poll baseURL every pollEvery once Run
// is called.
func New(baseURL string, pollEvery time.Duration) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		pollEvery: pollEvery,
		httpc:     &http.Client{Timeout: 5 * time.Second},
		snapshot:  &bus.Snapshot[Metrics]{},
	}
}

// GetSnapshot returns the most recently published Metrics. Zero value
// before the first successful poll.
func (c *Client) GetSnapshot() Metrics {
	return c.snapshot.Get()
}

// Run polls until ctx is cancelled.
func (c *Client) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.pollEvery)
	defer ticker.Stop()

	for {
		c.pollOnce(ctx)

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

type printStatsResponse struct {
	Result struct {
		Status struct {
			PrintStats struct {
				State         string  `json:"state"`
				Filename      string  `json:"filename"`
				PrintDuration float64 `json:"print_duration"`
			} `json:"print_stats"`
			VirtualSDCard struct {
				Progress float64 `json:"progress"`
			} `json:"virtual_sdcard"`
		} `json:"status"`
	} `json:"result"`
}

type metadataResponse struct {
	Result struct {
		Thumbnails []struct {
			Width        int    `json:"width"`
			Height       int    `json:"height"`
			RelativePath string `json:"relative_path"`
		} `json:"thumbnails"`
	} `json:"result"`
}

func (c *Client) pollOnce(ctx context.Context) {
	var resp printStatsResponse
	if err := c.getJSON(ctx, c.baseURL+"/printer/objects/query?print_stats&virtual_sdcard", &resp); err != nil {
		return
	}

	ps := resp.Result.Status.PrintStats
	vsd := resp.Result.Status.VirtualSDCard
	active := ps.State == "printing" || ps.State == "paused"

	eta := -1
	if vsd.Progress > 0.03 && ps.PrintDuration > 5.0 {
		total := ps.PrintDuration / vsd.Progress
		rem := total - ps.PrintDuration
		if rem > 0 {
			eta = int(rem)
		}
	}

	m := c.snapshot.Get()
	m.State = ps.State
	m.Filename = ps.Filename
	m.Progress01 = vsd.Progress
	m.ElapsedSec = int(ps.PrintDuration)
	m.ETASec = eta
	m.Active = active
	if active {
		m.HadJob = true
		m.LastActiveAt = time.Now()
	}
	c.snapshot.Set(m)

	if ps.Filename != "" && ps.Filename != c.lastFilename {
		c.lastFilename = ps.Filename
		c.pollThumbnail(ctx, ps.Filename)
	}
}

func (c *Client) pollThumbnail(ctx context.Context, filename string) {
	var meta metadataResponse
	metaURL := c.baseURL + "/server/files/metadata?filename=" + url.QueryEscape(filename)
	if err := c.getJSON(ctx, metaURL, &meta); err != nil {
		return
	}

	bestArea := -1
	bestRel := ""
	for _, th := range meta.Result.Thumbnails {
		area := th.Width * th.Height
		if area > bestArea {
			bestArea = area
			bestRel = th.RelativePath
		}
	}
	if bestRel == "" || bestRel == c.lastThumbRel {
		return
	}

	img, err := c.getImage(ctx, c.baseURL+"/server/files/gcodes/"+encodePath(bestRel))
	if err != nil {
		logging.Printer.Printf("thumbnail decode failed: %v", err)
		return
	}
	c.lastThumbRel = bestRel

	// Only swap in the fully-decoded image, never a partial one.
	m := c.snapshot.Get()
	m.Thumb = img
	m.ThumbRelPath = bestRel
	c.snapshot.Set(m)
}

func (c *Client) getJSON(ctx context.Context, u string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("printer: %s returned %d", u, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) getImage(ctx context.Context, u string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("printer: %s returned %d", u, resp.StatusCode)
	}
	img, _, err := image.Decode(resp.Body)
	return img, err
}

func encodePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.QueryEscape(part)
	}
	return strings.Join(parts, "/")
}
