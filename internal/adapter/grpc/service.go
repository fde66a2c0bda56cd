package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "finance.v1.FinanceService"

// Full method names, as seen by interceptors and clients
const (
	MethodAddTransaction        = "/" + ServiceName + "/AddTransaction"
	MethodDeleteTransaction     = "/" + ServiceName + "/DeleteTransaction"
	MethodListTransactions      = "/" + ServiceName + "/ListTransactions"
	MethodGetSummary            = "/" + ServiceName + "/GetSummary"
	MethodGetMonthlySummary     = "/" + ServiceName + "/GetMonthlySummary"
	MethodGetCategoryBreakdown  = "/" + ServiceName + "/GetCategoryBreakdown"
	MethodGetMonthlyTrend       = "/" + ServiceName + "/GetMonthlyTrend"
	MethodGetRecentTransactions = "/" + ServiceName + "/GetRecentTransactions"
)

// FinanceServiceServer is the server API for the FinanceService.
// Messages are protobuf well-known types so no generated code is needed.
type FinanceServiceServer interface {
	AddTransaction(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DeleteTransaction(context.Context, *wrapperspb.StringValue) (*emptypb.Empty, error)
	ListTransactions(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetSummary(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetMonthlySummary(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetCategoryBreakdown(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetMonthlyTrend(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetRecentTransactions(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
}

// FinanceServiceDesc describes the FinanceService for grpc.ServiceRegistrar
var FinanceServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FinanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddTransaction",
			Handler: unaryHandler(MethodAddTransaction, newStruct,
				func(s FinanceServiceServer, ctx context.Context, in *structpb.Struct) (proto.Message, error) {
					return s.AddTransaction(ctx, in)
				}),
		},
		{
			MethodName: "DeleteTransaction",
			Handler: unaryHandler(MethodDeleteTransaction, newStringValue,
				func(s FinanceServiceServer, ctx context.Context, in *wrapperspb.StringValue) (proto.Message, error) {
					return s.DeleteTransaction(ctx, in)
				}),
		},
		{
			MethodName: "ListTransactions",
			Handler: unaryHandler(MethodListTransactions, newEmpty,
				func(s FinanceServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
					return s.ListTransactions(ctx, in)
				}),
		},
		{
			MethodName: "GetSummary",
			Handler: unaryHandler(MethodGetSummary, newEmpty,
				func(s FinanceServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
					return s.GetSummary(ctx, in)
				}),
		},
		{
			MethodName: "GetMonthlySummary",
			Handler: unaryHandler(MethodGetMonthlySummary, newEmpty,
				func(s FinanceServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
					return s.GetMonthlySummary(ctx, in)
				}),
		},
		{
			MethodName: "GetCategoryBreakdown",
			Handler: unaryHandler(MethodGetCategoryBreakdown, newEmpty,
				func(s FinanceServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
					return s.GetCategoryBreakdown(ctx, in)
				}),
		},
		{
			MethodName: "GetMonthlyTrend",
			Handler: unaryHandler(MethodGetMonthlyTrend, newEmpty,
				func(s FinanceServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
					return s.GetMonthlyTrend(ctx, in)
				}),
		},
		{
			MethodName: "GetRecentTransactions",
			Handler: unaryHandler(MethodGetRecentTransactions, newEmpty,
				func(s FinanceServiceServer, ctx context.Context, in *emptypb.Empty) (proto.Message, error) {
					return s.GetRecentTransactions(ctx, in)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "finance/v1/finance.proto",
}

// RegisterFinanceServiceServer registers the FinanceService implementation with a gRPC server
func RegisterFinanceServiceServer(s grpc.ServiceRegistrar, srv FinanceServiceServer) {
	s.RegisterService(&FinanceServiceDesc, srv)
}

func newStruct() *structpb.Struct { return new(structpb.Struct) }
func newStringValue() *wrapperspb.StringValue { return new(wrapperspb.StringValue) }
func newEmpty() *emptypb.Empty { return new(emptypb.Empty) }

// unaryHandler adapts a typed service method to grpc.MethodHandler, running the interceptor chain if present
func unaryHandler[Req proto.Message](
	fullMethod string,
	newReq func() Req,
	call func(FinanceServiceServer, context.Context, Req) (proto.Message, error),
) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := newReq()
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return call(srv.(FinanceServiceServer), ctx, in)
		}

		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(FinanceServiceServer), ctx, req.(Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
