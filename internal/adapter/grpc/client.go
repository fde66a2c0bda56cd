package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Client is a typed FinanceService client
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient creates a FinanceService client over an existing connection
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) AddTransaction(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, MethodAddTransaction, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteTransaction(ctx context.Context, id string, opts ...grpc.CallOption) error {
	return c.cc.Invoke(ctx, MethodDeleteTransaction, wrapperspb.String(id), new(emptypb.Empty), opts...)
}

func (c *Client) ListTransactions(ctx context.Context, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return c.list(ctx, MethodListTransactions, opts...)
}

func (c *Client) GetSummary(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.object(ctx, MethodGetSummary, opts...)
}

func (c *Client) GetMonthlySummary(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.object(ctx, MethodGetMonthlySummary, opts...)
}

func (c *Client) GetCategoryBreakdown(ctx context.Context, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return c.list(ctx, MethodGetCategoryBreakdown, opts...)
}

func (c *Client) GetMonthlyTrend(ctx context.Context, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return c.list(ctx, MethodGetMonthlyTrend, opts...)
}

func (c *Client) GetRecentTransactions(ctx context.Context, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	return c.list(ctx, MethodGetRecentTransactions, opts...)
}

func (c *Client) object(ctx context.Context, method string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, new(emptypb.Empty), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) list(ctx context.Context, method string, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, method, new(emptypb.Empty), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
