package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/simaogato/wealthflow-dashboard/internal/domain"
	"github.com/simaogato/wealthflow-dashboard/internal/usecase/dashboard"
)

// Server implements the FinanceService gRPC server
type Server struct {
	DashboardService *dashboard.DashboardService

	validate *validator.Validate
	logger   *slog.Logger
}

// NewServer creates a new gRPC server instance
func NewServer(dashboardService *dashboard.DashboardService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		DashboardService: dashboardService,
		validate:         validator.New(),
		logger:           logger,
	}
}

// AddTransaction handles the AddTransaction RPC
func (s *Server) AddTransaction(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	// Form-level checks live here; the aggregator stores whatever it is given
	input, err := formFromStruct(req).toNewTransaction(s.validate, s.DashboardService.Now())
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	tx, err := s.DashboardService.AddTransaction(ctx, input)
	if err != nil {
		return nil, mapError(err)
	}

	return transactionToProto(tx), nil
}

// DeleteTransaction handles the DeleteTransaction RPC
// An id that does not parse cannot match any transaction, so it is a no-op like any unknown id.
func (s *Server) DeleteTransaction(ctx context.Context, req *wrapperspb.StringValue) (*emptypb.Empty, error) {
	id, err := uuid.Parse(strings.TrimSpace(req.GetValue()))
	if err != nil {
		s.logger.DebugContext(ctx, "delete ignored, malformed transaction id", slog.String("transaction_id", req.GetValue()))
		return &emptypb.Empty{}, nil
	}

	if err := s.DashboardService.DeleteTransaction(ctx, id); err != nil {
		return nil, mapError(err)
	}

	return &emptypb.Empty{}, nil
}

// ListTransactions handles the ListTransactions RPC
func (s *Server) ListTransactions(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	txs, err := s.DashboardService.ListTransactions(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return transactionsToProto(txs), nil
}

// GetSummary handles the GetSummary RPC
func (s *Server) GetSummary(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	summary, err := s.DashboardService.GetSummary(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return summaryToProto(summary), nil
}

// GetMonthlySummary handles the GetMonthlySummary RPC
func (s *Server) GetMonthlySummary(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	summary, err := s.DashboardService.GetMonthlySummary(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return summaryToProto(summary), nil
}

// GetCategoryBreakdown handles the GetCategoryBreakdown RPC
func (s *Server) GetCategoryBreakdown(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	breakdown, err := s.DashboardService.GetCategoryBreakdown(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return breakdownToProto(breakdown), nil
}

// GetMonthlyTrend handles the GetMonthlyTrend RPC
func (s *Server) GetMonthlyTrend(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	months, err := s.DashboardService.GetMonthlyTrend(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return trendToProto(months), nil
}

// GetRecentTransactions handles the GetRecentTransactions RPC
func (s *Server) GetRecentTransactions(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	txs, err := s.DashboardService.GetRecentTransactions(ctx)
	if err != nil {
		return nil, mapError(err)
	}

	return transactionsToProto(txs), nil
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, domain.ErrInvalidType),
		errors.Is(err, domain.ErrInvalidCategory),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrEmptyDescription),
		errors.Is(err, domain.ErrMissingDate),
		errors.Is(err, domain.ErrInvalidDateFormat):
		return status.Errorf(codes.InvalidArgument, "%s", err.Error())
	case errors.Is(err, context.Canceled):
		return status.Errorf(codes.Canceled, "%s", err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Errorf(codes.DeadlineExceeded, "%s", err.Error())
	}

	// Default to Internal error for unknown errors
	return status.Errorf(codes.Internal, "%s", err.Error())
}
