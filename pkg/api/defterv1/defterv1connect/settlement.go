package defterv1connect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	v1 "github.com/mmynk/defter/pkg/api/defterv1"
)

// SettlementServiceName is the fully-qualified name of the SettlementService.
const SettlementServiceName = "defter.v1.SettlementService"

// Procedure names, used for routing and in interceptors.
const (
	SettlementServiceGetBalancesProcedure       = "/defter.v1.SettlementService/GetBalances"
	SettlementServiceGetTransfersProcedure      = "/defter.v1.SettlementService/GetTransfers"
	SettlementServiceGetSettlementPlanProcedure = "/defter.v1.SettlementService/GetSettlementPlan"
	SettlementServiceGetMySummaryProcedure      = "/defter.v1.SettlementService/GetMySummary"
)

// SettlementServiceHandler is implemented by the server side of SettlementService.
type SettlementServiceHandler interface {
	GetBalances(context.Context, *connect.Request[v1.GetBalancesRequest]) (*connect.Response[v1.GetBalancesResponse], error)
	GetTransfers(context.Context, *connect.Request[v1.GetTransfersRequest]) (*connect.Response[v1.GetTransfersResponse], error)
	GetSettlementPlan(context.Context, *connect.Request[v1.GetSettlementPlanRequest]) (*connect.Response[v1.GetSettlementPlanResponse], error)
	GetMySummary(context.Context, *connect.Request[v1.GetMySummaryRequest]) (*connect.Response[v1.GetMySummaryResponse], error)
}

// NewSettlementServiceHandler builds an HTTP handler for svc. It returns the path to
// mount the handler on.
func NewSettlementServiceHandler(svc SettlementServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	return "/" + SettlementServiceName + "/", routes{
		SettlementServiceGetBalancesProcedure:       connect.NewUnaryHandler(SettlementServiceGetBalancesProcedure, svc.GetBalances, opt),
		SettlementServiceGetTransfersProcedure:      connect.NewUnaryHandler(SettlementServiceGetTransfersProcedure, svc.GetTransfers, opt),
		SettlementServiceGetSettlementPlanProcedure: connect.NewUnaryHandler(SettlementServiceGetSettlementPlanProcedure, svc.GetSettlementPlan, opt),
		SettlementServiceGetMySummaryProcedure:      connect.NewUnaryHandler(SettlementServiceGetMySummaryProcedure, svc.GetMySummary, opt),
	}
}

// SettlementServiceClient is a client for SettlementService.
type SettlementServiceClient interface {
	GetBalances(context.Context, *connect.Request[v1.GetBalancesRequest]) (*connect.Response[v1.GetBalancesResponse], error)
	GetTransfers(context.Context, *connect.Request[v1.GetTransfersRequest]) (*connect.Response[v1.GetTransfersResponse], error)
	GetSettlementPlan(context.Context, *connect.Request[v1.GetSettlementPlanRequest]) (*connect.Response[v1.GetSettlementPlanResponse], error)
	GetMySummary(context.Context, *connect.Request[v1.GetMySummaryRequest]) (*connect.Response[v1.GetMySummaryResponse], error)
}

// NewSettlementServiceClient returns a client for the SettlementService served at baseURL.
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettlementServiceClient {
	opt := clientOptions(opts)
	return &settlementServiceClient{
		getBalances:       connect.NewClient[v1.GetBalancesRequest, v1.GetBalancesResponse](httpClient, baseURL+SettlementServiceGetBalancesProcedure, opt),
		getTransfers:      connect.NewClient[v1.GetTransfersRequest, v1.GetTransfersResponse](httpClient, baseURL+SettlementServiceGetTransfersProcedure, opt),
		getSettlementPlan: connect.NewClient[v1.GetSettlementPlanRequest, v1.GetSettlementPlanResponse](httpClient, baseURL+SettlementServiceGetSettlementPlanProcedure, opt),
		getMySummary:      connect.NewClient[v1.GetMySummaryRequest, v1.GetMySummaryResponse](httpClient, baseURL+SettlementServiceGetMySummaryProcedure, opt),
	}
}

type settlementServiceClient struct {
	getBalances       *connect.Client[v1.GetBalancesRequest, v1.GetBalancesResponse]
	getTransfers      *connect.Client[v1.GetTransfersRequest, v1.GetTransfersResponse]
	getSettlementPlan *connect.Client[v1.GetSettlementPlanRequest, v1.GetSettlementPlanResponse]
	getMySummary      *connect.Client[v1.GetMySummaryRequest, v1.GetMySummaryResponse]
}

func (c *settlementServiceClient) GetBalances(ctx context.Context, req *connect.Request[v1.GetBalancesRequest]) (*connect.Response[v1.GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *settlementServiceClient) GetTransfers(ctx context.Context, req *connect.Request[v1.GetTransfersRequest]) (*connect.Response[v1.GetTransfersResponse], error) {
	return c.getTransfers.CallUnary(ctx, req)
}

func (c *settlementServiceClient) GetSettlementPlan(ctx context.Context, req *connect.Request[v1.GetSettlementPlanRequest]) (*connect.Response[v1.GetSettlementPlanResponse], error) {
	return c.getSettlementPlan.CallUnary(ctx, req)
}

func (c *settlementServiceClient) GetMySummary(ctx context.Context, req *connect.Request[v1.GetMySummaryRequest]) (*connect.Response[v1.GetMySummaryResponse], error) {
	return c.getMySummary.CallUnary(ctx, req)
}

// UnimplementedSettlementServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSettlementServiceHandler struct{}

func (UnimplementedSettlementServiceHandler) GetBalances(context.Context, *connect.Request[v1.GetBalancesRequest]) (*connect.Response[v1.GetBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.SettlementService.GetBalances is not implemented"))
}

func (UnimplementedSettlementServiceHandler) GetTransfers(context.Context, *connect.Request[v1.GetTransfersRequest]) (*connect.Response[v1.GetTransfersResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.SettlementService.GetTransfers is not implemented"))
}

func (UnimplementedSettlementServiceHandler) GetSettlementPlan(context.Context, *connect.Request[v1.GetSettlementPlanRequest]) (*connect.Response[v1.GetSettlementPlanResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.SettlementService.GetSettlementPlan is not implemented"))
}

func (UnimplementedSettlementServiceHandler) GetMySummary(context.Context, *connect.Request[v1.GetMySummaryRequest]) (*connect.Response[v1.GetMySummaryResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.SettlementService.GetMySummary is not implemented"))
}
