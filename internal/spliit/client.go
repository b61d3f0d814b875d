// Package spliit is a thin client for the Spliit expense-splitting service.
//
// A Client is bound to one group and performs synchronous, sequential
// requests. It keeps no state between calls; every call reaches the server.
//
//	c, err := spliit.New(spliit.Options{GroupID: "zwi1rHAQ-G9PWSHb4Zy7I"})
//	participants, err := c.Participants(ctx)
//	_, err = c.AddExpense(ctx, spliit.AddExpenseParams{
//	    Title:    "Dinner",
//	    PaidBy:   participants["John"],
//	    PaidFor:  []model.Share{{ParticipantID: participants["John"], Shares: 50}, {ParticipantID: participants["Jane"], Shares: 50}},
//	    Amount:   5000,
//	    Category: 8,
//	})
package spliit

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/cleared-dev/spliit/internal/trpc"
)

// DefaultBaseURL is the public Spliit tRPC endpoint.
const DefaultBaseURL = "https://spliit.app/api/trpc"

// DefaultMaxPages bounds the expense pagination loop when Options.MaxPages is unset.
const DefaultMaxPages = 1000

// Options configures a Client. Only GroupID is required.
type Options struct {
	GroupID string
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string
	// HTTPClient carries the caller's timeout policy; nil uses http.DefaultClient.
	HTTPClient *http.Client
	// MaxPages caps the number of pages Expenses fetches; <= 0 uses DefaultMaxPages.
	MaxPages int
	Logger   *slog.Logger
	// Now is the clock used to stamp new expenses; nil uses time.Now.
	Now func() time.Time
}

// Client talks to one Spliit group.
type Client struct {
	groupID  string
	maxPages int
	rpc      *trpc.Client
	logger   *slog.Logger
	now      func() time.Time
}

// ErrMissingGroupID is returned by New when Options.GroupID is empty.
var ErrMissingGroupID = errors.New("spliit: group ID is required")

// New creates a Client from opts.
func New(opts Options) (*Client, error) {
	if opts.GroupID == "" {
		return nil, ErrMissingGroupID
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultMaxPages
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	logger := opts.Logger.With("group_id", opts.GroupID)
	return &Client{
		groupID:  opts.GroupID,
		maxPages: opts.MaxPages,
		rpc:      trpc.NewClient(opts.BaseURL, opts.HTTPClient, logger),
		logger:   logger,
		now:      opts.Now,
	}, nil
}

// GroupID returns the group this client is bound to.
func (c *Client) GroupID() string {
	return c.groupID
}
