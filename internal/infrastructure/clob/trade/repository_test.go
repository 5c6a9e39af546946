package trade

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vikions/opipolix-builder-dashboard/internal/infrastructure/clob"
	clobMock "github.com/vikions/opipolix-builder-dashboard/internal/infrastructure/clob/mock"
	"github.com/vikions/opipolix-builder-dashboard/pkg/errors"
)

func testClobConfig() clob.Config {
	return clob.Config{PageSize: 100, MaxPages: 3}
}

// respondWith makes the mocked client write body into the out argument.
func respondWith(body string) func(ctx context.Context, path string, query url.Values, out any) error {
	return func(ctx context.Context, path string, query url.Values, out any) error {
		raw := out.(*json.RawMessage)
		*raw = json.RawMessage(body)
		return nil
	}
}

func TestRepository_List(t *testing.T) {
	testCases := []struct {
		name     string
		filter   Filter
		mockFn   func(t *testing.T, client *clobMock.MockClobClient)
		assertFn func(t *testing.T, page *Page, err error)
	}{
		{
			name:   "bare array envelope",
			filter: Filter{},
			mockFn: func(t *testing.T, client *clobMock.MockClobClient) {
				client.EXPECT().Get(gomock.Any(), "/builder/trades", gomock.Any(), gomock.Any()).
					DoAndReturn(respondWith(`[
						{"owner":"0xABC","transactionHash":"0x1","sizeUsdc":"10.5","matchTime":"2026-08-21T10:00:00Z"}
					]`))
			},
			assertFn: func(t *testing.T, page *Page, err error) {
				assert.NoError(t, err)
				assert.Len(t, page.Trades, 1)
				assert.Empty(t, page.NextCursor)
				assert.Equal(t, "0xabc", page.Trades[0].Owner)
				assert.True(t, page.Trades[0].SizeUSDC.Equal(decimal.RequireFromString("10.5")))
				assert.Equal(t, time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC), page.Trades[0].MatchTime)
			},
		},
		{
			name:   "trades envelope with snake cursor",
			filter: Filter{},
			mockFn: func(t *testing.T, client *clobMock.MockClobClient) {
				client.EXPECT().Get(gomock.Any(), "/builder/trades", gomock.Any(), gomock.Any()).
					DoAndReturn(respondWith(`{"trades":[{"sizeUsdc":5,"matchTime":1755770400}],"next_cursor":"c2"}`))
			},
			assertFn: func(t *testing.T, page *Page, err error) {
				assert.NoError(t, err)
				assert.Len(t, page.Trades, 1)
				assert.Equal(t, "c2", page.NextCursor)
				// numeric sizeUsdc and unix-seconds matchTime both accepted
				assert.True(t, page.Trades[0].SizeUSDC.Equal(decimal.NewFromInt(5)))
				assert.Equal(t, int64(1755770400), page.Trades[0].MatchTime.Unix())
			},
		},
		{
			name:   "data envelope with camel cursor",
			filter: Filter{},
			mockFn: func(t *testing.T, client *clobMock.MockClobClient) {
				client.EXPECT().Get(gomock.Any(), "/builder/trades", gomock.Any(), gomock.Any()).
					DoAndReturn(respondWith(`{"data":[{"size_usdc":"1.00","match_time":"2026-08-21T10:00:00+02:00","transaction_hash":"0x9"}],"nextCursor":"c3"}`))
			},
			assertFn: func(t *testing.T, page *Page, err error) {
				assert.NoError(t, err)
				assert.Len(t, page.Trades, 1)
				assert.Equal(t, "c3", page.NextCursor)
				assert.Equal(t, "0x9", page.Trades[0].TxHash)
				// offset timestamps normalize to UTC
				assert.Equal(t, time.Date(2026, 8, 21, 8, 0, 0, 0, time.UTC), page.Trades[0].MatchTime)
			},
		},
		{
			name:   "cursor and bounds forwarded as query parameters",
			filter: Filter{Cursor: "abc", After: "100", Before: "200", Limit: 50},
			mockFn: func(t *testing.T, client *clobMock.MockClobClient) {
				client.EXPECT().Get(gomock.Any(), "/builder/trades", gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, path string, query url.Values, out any) error {
						assert.Equal(t, "abc", query.Get("id"))
						assert.Equal(t, "100", query.Get("after"))
						assert.Equal(t, "200", query.Get("before"))
						assert.Equal(t, "50", query.Get("limit"))
						return respondWith(`[]`)(ctx, path, query, out)
					})
			},
			assertFn: func(t *testing.T, page *Page, err error) {
				assert.NoError(t, err)
				assert.Empty(t, page.Trades)
			},
		},
		{
			name:   "missing sizeUsdc is a parse error",
			filter: Filter{},
			mockFn: func(t *testing.T, client *clobMock.MockClobClient) {
				client.EXPECT().Get(gomock.Any(), "/builder/trades", gomock.Any(), gomock.Any()).
					DoAndReturn(respondWith(`[{"matchTime":"2026-08-21T10:00:00Z"}]`))
			},
			assertFn: func(t *testing.T, page *Page, err error) {
				assert.Error(t, err)
				assert.Equal(t, errors.UpstreamParseError, errors.CodeOf(err))
			},
		},
		{
			name:   "missing matchTime is a parse error",
			filter: Filter{},
			mockFn: func(t *testing.T, client *clobMock.MockClobClient) {
				client.EXPECT().Get(gomock.Any(), "/builder/trades", gomock.Any(), gomock.Any()).
					DoAndReturn(respondWith(`[{"sizeUsdc":"1.00"}]`))
			},
			assertFn: func(t *testing.T, page *Page, err error) {
				assert.Error(t, err)
				assert.Equal(t, errors.UpstreamParseError, errors.CodeOf(err))
			},
		},
		{
			name:   "unparseable matchTime is a parse error",
			filter: Filter{},
			mockFn: func(t *testing.T, client *clobMock.MockClobClient) {
				client.EXPECT().Get(gomock.Any(), "/builder/trades", gomock.Any(), gomock.Any()).
					DoAndReturn(respondWith(`[{"sizeUsdc":"1.00","matchTime":"yesterday"}]`))
			},
			assertFn: func(t *testing.T, page *Page, err error) {
				assert.Error(t, err)
				assert.Equal(t, errors.UpstreamParseError, errors.CodeOf(err))
			},
		},
		{
			name:   "scalar response is a parse error",
			filter: Filter{},
			mockFn: func(t *testing.T, client *clobMock.MockClobClient) {
				client.EXPECT().Get(gomock.Any(), "/builder/trades", gomock.Any(), gomock.Any()).
					DoAndReturn(respondWith(`"nope"`))
			},
			assertFn: func(t *testing.T, page *Page, err error) {
				assert.Error(t, err)
				assert.Equal(t, errors.UpstreamParseError, errors.CodeOf(err))
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := clobMock.NewMockClobClient(ctrl)
			testCase.mockFn(t, client)

			page, err := NewRepository(client, testClobConfig()).List(context.Background(), testCase.filter)
			testCase.assertFn(t, page, err)
		})
	}
}

func TestRepository_ListAll(t *testing.T) {
	testCases := []struct {
		name     string
		mockFn   func(t *testing.T, client *clobMock.MockClobClient)
		assertFn func(t *testing.T, trades []*Trade, pages int, err error)
	}{
		{
			name: "multi page cursor walk",
			mockFn: func(t *testing.T, client *clobMock.MockClobClient) {
				gomock.InOrder(
					client.EXPECT().Get(gomock.Any(), "/builder/trades", gomock.Any(), gomock.Any()).
						DoAndReturn(func(ctx context.Context, path string, query url.Values, out any) error {
							assert.Empty(t, query.Get("id"))
							return respondWith(`{"trades":[{"sizeUsdc":"1","matchTime":"2026-08-21T10:00:00Z"}],"next_cursor":"p2"}`)(ctx, path, query, out)
						}),
					client.EXPECT().Get(gomock.Any(), "/builder/trades", gomock.Any(), gomock.Any()).
						DoAndReturn(func(ctx context.Context, path string, query url.Values, out any) error {
							assert.Equal(t, "p2", query.Get("id"))
							return respondWith(`{"trades":[{"sizeUsdc":"2","matchTime":"2026-08-21T11:00:00Z"}],"next_cursor":""}`)(ctx, path, query, out)
						}),
				)
			},
			assertFn: func(t *testing.T, trades []*Trade, pages int, err error) {
				assert.NoError(t, err)
				assert.Len(t, trades, 2)
				assert.Equal(t, 2, pages)
			},
		},
		{
			name: "sentinel cursor terminates",
			mockFn: func(t *testing.T, client *clobMock.MockClobClient) {
				client.EXPECT().Get(gomock.Any(), "/builder/trades", gomock.Any(), gomock.Any()).
					DoAndReturn(respondWith(`{"trades":[{"sizeUsdc":"1","matchTime":"2026-08-21T10:00:00Z"}],"next_cursor":"LTE="}`))
			},
			assertFn: func(t *testing.T, trades []*Trade, pages int, err error) {
				assert.NoError(t, err)
				assert.Len(t, trades, 1)
				assert.Equal(t, 1, pages)
			},
		},
		{
			name: "empty page terminates",
			mockFn: func(t *testing.T, client *clobMock.MockClobClient) {
				client.EXPECT().Get(gomock.Any(), "/builder/trades", gomock.Any(), gomock.Any()).
					DoAndReturn(respondWith(`{"trades":[],"next_cursor":"p2"}`))
			},
			assertFn: func(t *testing.T, trades []*Trade, pages int, err error) {
				assert.NoError(t, err)
				assert.Empty(t, trades)
				assert.Equal(t, 1, pages)
			},
		},
		{
			name: "page budget bounds the walk",
			mockFn: func(t *testing.T, client *clobMock.MockClobClient) {
				// always hands back another cursor; MaxPages is 3
				client.EXPECT().Get(gomock.Any(), "/builder/trades", gomock.Any(), gomock.Any()).
					DoAndReturn(respondWith(`{"trades":[{"sizeUsdc":"1","matchTime":"2026-08-21T10:00:00Z"}],"next_cursor":"again"}`)).
					Times(3)
			},
			assertFn: func(t *testing.T, trades []*Trade, pages int, err error) {
				assert.NoError(t, err)
				assert.Len(t, trades, 3)
				assert.Equal(t, 3, pages)
			},
		},
		{
			name: "client error is surfaced",
			mockFn: func(t *testing.T, client *clobMock.MockClobClient) {
				client.EXPECT().Get(gomock.Any(), "/builder/trades", gomock.Any(), gomock.Any()).
					Return(errors.NewErrorDetails("clob api responded with status 503", errors.UpstreamStatusError, ""))
			},
			assertFn: func(t *testing.T, trades []*Trade, pages int, err error) {
				assert.Error(t, err)
				assert.Equal(t, errors.UpstreamStatusError, errors.CodeOf(err))
				assert.Nil(t, trades)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := clobMock.NewMockClobClient(ctrl)
			testCase.mockFn(t, client)

			trades, pages, err := NewRepository(client, testClobConfig()).ListAll(context.Background(), Filter{})
			testCase.assertFn(t, trades, pages, err)
		})
	}
}
