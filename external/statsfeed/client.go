package statsfeed

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/sirbenjaminG88/playoff-picks/internal/domain/player"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/projection"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/scoring"
	"github.com/sirbenjaminG88/playoff-picks/internal/domain/stats"
	"github.com/sirbenjaminG88/playoff-picks/internal/platform/logging"
	"github.com/sirbenjaminG88/playoff-picks/internal/platform/resilience"
	"github.com/sirbenjaminG88/playoff-picks/internal/usecase"
)

const defaultBaseURL = "https://api.gridironstats.example.com/v1"

var apiTokenParamRegex = regexp.MustCompile(`api_token=[^&\s"']+`)
var errStatsFeedTransient = crerr.New("stats feed transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client pulls playoff projections, elimination status and realized stat
// lines from the upstream feed. It satisfies usecase.ProjectionProvider.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

var _ usecase.ProjectionProvider = (*Client)(nil)

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	maxRetries := cfg.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient:     httpClient,
		baseURL:        baseURL,
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxRetries,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

type projectionItem struct {
	PlayerID        string  `json:"playerId"`
	Name            string  `json:"name"`
	Team            string  `json:"team"`
	Position        string  `json:"position"`
	ProjectedPoints float64 `json:"projectedPoints"`
}

type projectionsEnvelope struct {
	Data []projectionItem `json:"data"`
}

type eliminatedEnvelope struct {
	Data []string `json:"data"`
}

type statLineItem struct {
	PlayerID            string `json:"playerId"`
	Week                int    `json:"week"`
	PassYards           int    `json:"passYards"`
	PassTDs             int    `json:"passTds"`
	RushYards           int    `json:"rushYards"`
	RushTDs             int    `json:"rushTds"`
	RecYards            int    `json:"recYards"`
	RecTDs              int    `json:"recTds"`
	Interceptions       int    `json:"interceptions"`
	FumblesLost         int    `json:"fumblesLost"`
	TwoPointConversions int    `json:"twoPointConversions"`
}

type statLinesEnvelope struct {
	Data []statLineItem `json:"data"`
}

func (c *Client) FetchProjections(ctx context.Context) ([]projection.Projection, error) {
	var envelope projectionsEnvelope
	if err := c.doJSON(ctx, "/playoffs/projections", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch projections: %w", err)
	}

	out := make([]projection.Projection, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		position, ok := normalizePosition(item.Position)
		if !ok {
			c.logger.WarnContext(ctx, "skip projection with unknown position",
				"player_id", item.PlayerID,
				"position", item.Position,
			)
			continue
		}
		out = append(out, projection.Projection{
			PlayerID:        strings.TrimSpace(item.PlayerID),
			Name:            strings.TrimSpace(item.Name),
			TeamID:          strings.ToUpper(strings.TrimSpace(item.Team)),
			Position:        position,
			ProjectedPoints: item.ProjectedPoints,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (c *Client) FetchEliminatedTeams(ctx context.Context) ([]string, error) {
	var envelope eliminatedEnvelope
	if err := c.doJSON(ctx, "/playoffs/teams/eliminated", nil, &envelope); err != nil {
		return nil, fmt.Errorf("fetch eliminated teams: %w", err)
	}

	out := make([]string, 0, len(envelope.Data))
	seen := make(map[string]struct{}, len(envelope.Data))
	for _, teamID := range envelope.Data {
		teamID = strings.ToUpper(strings.TrimSpace(teamID))
		if teamID == "" {
			continue
		}
		if _, dup := seen[teamID]; dup {
			continue
		}
		seen[teamID] = struct{}{}
		out = append(out, teamID)
	}

	sort.Strings(out)
	return out, nil
}

func (c *Client) FetchStatLines(ctx context.Context, week int) ([]stats.Line, error) {
	if week <= 0 {
		return nil, fmt.Errorf("week must be greater than zero")
	}

	query := map[string]string{"week": strconv.Itoa(week)}
	var envelope statLinesEnvelope
	if err := c.doJSON(ctx, "/playoffs/stats", query, &envelope); err != nil {
		return nil, fmt.Errorf("fetch stat lines week=%d: %w", week, err)
	}

	out := make([]stats.Line, 0, len(envelope.Data))
	for _, item := range envelope.Data {
		lineWeek := item.Week
		if lineWeek <= 0 {
			lineWeek = week
		}
		out = append(out, stats.Line{
			PlayerID: strings.TrimSpace(item.PlayerID),
			Week:     lineWeek,
			Line: scoring.StatLine{
				PassYards:           item.PassYards,
				PassTDs:             item.PassTDs,
				RushYards:           item.RushYards,
				RushTDs:             item.RushTDs,
				RecYards:            item.RecYards,
				RecTDs:              item.RecTDs,
				Interceptions:       item.Interceptions,
				FumblesLost:         item.FumblesLost,
				TwoPointConversions: item.TwoPointConversions,
			},
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, query map[string]string, target any) error {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "stats feed circuit breaker rejected request", "state", c.breaker.State())
			return fmt.Errorf("%w: stats feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	values := url.Values{}
	for key, value := range query {
		values.Set(key, value)
	}
	if c.token != "" {
		values.Set("api_token", c.token)
	}

	fullURL := c.baseURL + path
	if encoded := values.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	key := path + "?" + values.Encode()
	out, err, _ := c.flight.Do(key, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && isStatsFeedCircuitFailure(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode feed payload: %w", err)
	}

	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errStatsFeedTransient, sanitizeSensitiveText(err.Error(), c.token))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, 6<<20))
			_ = resp.Body.Close()
			if readErr != nil {
				lastErr = fmt.Errorf("%w: read response body: %v", errStatsFeedTransient, readErr)
			} else if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return raw, nil
			} else if isRetryableStatus(resp.StatusCode) {
				lastErr = fmt.Errorf("%w: feed status=%d body=%s", errStatsFeedTransient, resp.StatusCode, abbreviateBody(raw))
			} else {
				return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "stats feed request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func normalizePosition(raw string) (player.Position, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "QB", "QUARTERBACK":
		return player.PositionQuarterback, true
	case "RB", "RUNNING BACK", "RUNNINGBACK":
		return player.PositionRunningBack, true
	case "WR", "WIDE RECEIVER", "WIDERECEIVER":
		return player.PositionWideReceiver, true
	case "TE", "TIGHT END", "TIGHTEND":
		return player.PositionTightEnd, true
	default:
		return "", false
	}
}

func isStatsFeedCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errStatsFeedTransient)
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusRequestTimeout ||
		statusCode == http.StatusTooManyRequests ||
		statusCode >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, token string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if token != "" {
		value = strings.ReplaceAll(value, token, "REDACTED")
	}
	return apiTokenParamRegex.ReplaceAllString(value, "api_token=REDACTED")
}

func redactAPIURL(fullURL string) string {
	return apiTokenParamRegex.ReplaceAllString(fullURL, "api_token=REDACTED")
}

func abbreviateBody(raw []byte) string {
	body := strings.TrimSpace(string(raw))
	if len(body) > 512 {
		return body[:512] + "...(truncated)"
	}
	return body
}
