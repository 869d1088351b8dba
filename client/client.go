package client

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mailru/easyjson"
	"github.com/rs/zerolog"
	uuid "github.com/satori/go.uuid"
	"github.com/soulgarden/futures-bot/conf"
	"github.com/soulgarden/futures-bot/dictionary"
	"github.com/soulgarden/futures-bot/request"
	"github.com/soulgarden/futures-bot/response"
	"github.com/soulgarden/futures-bot/signer"
	"go.uber.org/atomic"
)

const defaultTimeout = 10 * time.Second

const maxBodySize = 4 << 20

type Client struct {
	id         *atomic.Int64
	cfg        *conf.Bot
	httpClient *http.Client
	logger     *zerolog.Logger
	now        func() time.Time
}

func New(cfg *conf.Bot, logger *zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		id:         atomic.NewInt64(0),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
	}
}

// Requests returns how many http requests the client has sent.
func (c *Client) Requests() int64 {
	return c.id.Load()
}

// Request sends a single call to endpoint. For signed calls timestamp and then signature are
// appended to a copy of params, signature last, so the digest covers exactly what is sent.
func (c *Client) Request(
	ctx context.Context,
	method, endpoint string,
	params *request.Params,
	signed bool,
) ([]byte, error) {
	if params == nil {
		params = request.NewParams()
	} else {
		params = params.Clone()
	}

	if signed {
		if c.cfg.RecvWindow > 0 {
			params.Set(dictionary.RecvWindowParam, strconv.FormatInt(c.cfg.RecvWindow, dictionary.DefaultIntBase))
		}

		params.Set(dictionary.TimestampParam, strconv.FormatInt(c.now().UnixMilli(), dictionary.DefaultIntBase))
		params.Set(dictionary.SignatureParam, signer.SignParams(params, c.cfg.APISecret))
	}

	req, err := c.newRequest(ctx, method, endpoint, params.Encode())
	if err != nil {
		return nil, err
	}

	id := c.id.Inc()

	c.logger.Info().
		Int64("rid", id).
		Str("method", method).
		Str("endpoint", endpoint).
		Bool("signed", signed).
		Msg("send request")

	start := c.now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Err(err).Int64("rid", id).Str("endpoint", endpoint).Msg("request failed")

		return nil, &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		c.logger.Err(err).Int64("rid", id).Str("endpoint", endpoint).Msg("read body")

		return nil, &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}

	c.logger.Debug().
		Int64("rid", id).
		Int("status", resp.StatusCode).
		Dur("took", c.now().Sub(start)).
		Bytes("body", body).
		Msg("got response")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := newAPIError(resp.StatusCode, body)

		c.logger.Err(apiErr).
			Int64("rid", id).
			Int("status", resp.StatusCode).
			Int("code", apiErr.Code).
			Str("body", apiErr.Body).
			Str("hint", apiErr.Hint()).
			Msg("received error")

		return nil, apiErr
	}

	return body, nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint, query string) (*http.Request, error) {
	url := strings.TrimRight(c.cfg.BaseURL, "/") + endpoint

	var (
		req *http.Request
		err error
	)

	switch method {
	case http.MethodGet, http.MethodDelete:
		if query != "" {
			url += "?" + query
		}

		req, err = http.NewRequestWithContext(ctx, method, url, nil)
	case http.MethodPost, http.MethodPut:
		req, err = http.NewRequestWithContext(ctx, method, url, strings.NewReader(query))
		if err == nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	default:
		return nil, dictionary.ErrUnsupportedMethod
	}

	if err != nil {
		return nil, err
	}

	req.Header.Set(dictionary.APIKeyHeader, c.cfg.APIKey)

	return req, nil
}

func newAPIError(status int, body []byte) *APIError {
	e := &APIError{StatusCode: status, Body: string(body)}

	er := &response.Error{}
	if err := easyjson.Unmarshal(body, er); err == nil {
		e.Code = er.Code
		e.Msg = er.Msg
	}

	return e
}

func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Request(ctx, http.MethodGet, dictionary.PingEndpoint, nil, false)

	return err
}

func (c *Client) GetAccountInfo(ctx context.Context) (*response.Account, error) {
	body, err := c.Request(ctx, http.MethodGet, dictionary.AccountEndpoint, nil, true)
	if err != nil {
		return nil, err
	}

	r := &response.Account{}

	if err := easyjson.Unmarshal(body, r); err != nil {
		c.logger.Err(err).Bytes("msg", body).Msg("unmarshall")

		return nil, err
	}

	return r, nil
}

// GetSymbolInfo returns nil without error when the exchange does not list symbol.
func (c *Client) GetSymbolInfo(ctx context.Context, symbol string) (*response.Symbol, error) {
	body, err := c.Request(ctx, http.MethodGet, dictionary.ExchangeInfoEndpoint, nil, false)
	if err != nil {
		return nil, err
	}

	r := &response.ExchangeInfo{}

	if err := easyjson.Unmarshal(body, r); err != nil {
		c.logger.Err(err).Msg("unmarshall")

		return nil, err
	}

	for _, s := range r.Symbols {
		if s != nil && strings.EqualFold(s.Symbol, symbol) {
			return s, nil
		}
	}

	return nil, nil
}

func (c *Client) PlaceOrder(ctx context.Context, o *request.Order) (*response.Order, error) {
	params, err := o.Params()
	if err != nil {
		c.logger.Err(err).Str("symbol", o.Symbol).Msg("build order params")

		return nil, err
	}

	params.Set(dictionary.NewClientOrderIDParam, uuid.NewV4().String())

	body, err := c.Request(ctx, http.MethodPost, dictionary.OrderEndpoint, params, true)
	if err != nil {
		return nil, err
	}

	r := &response.Order{}

	if err := easyjson.Unmarshal(body, r); err != nil {
		c.logger.Err(err).Bytes("msg", body).Msg("unmarshall")

		return nil, err
	}

	return r, nil
}
