package defterv1connect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	v1 "github.com/mmynk/defter/pkg/api/defterv1"
)

// PurchaseServiceName is the fully-qualified name of the PurchaseService.
const PurchaseServiceName = "defter.v1.PurchaseService"

// Procedure names, used for routing and in interceptors.
const (
	PurchaseServiceCreatePurchaseProcedure = "/defter.v1.PurchaseService/CreatePurchase"
	PurchaseServiceGetPurchaseProcedure    = "/defter.v1.PurchaseService/GetPurchase"
	PurchaseServiceListPurchasesProcedure  = "/defter.v1.PurchaseService/ListPurchases"
	PurchaseServiceUpdatePurchaseProcedure = "/defter.v1.PurchaseService/UpdatePurchase"
	PurchaseServiceDeletePurchaseProcedure = "/defter.v1.PurchaseService/DeletePurchase"
)

// PurchaseServiceHandler is implemented by the server side of PurchaseService.
type PurchaseServiceHandler interface {
	CreatePurchase(context.Context, *connect.Request[v1.CreatePurchaseRequest]) (*connect.Response[v1.CreatePurchaseResponse], error)
	GetPurchase(context.Context, *connect.Request[v1.GetPurchaseRequest]) (*connect.Response[v1.GetPurchaseResponse], error)
	ListPurchases(context.Context, *connect.Request[v1.ListPurchasesRequest]) (*connect.Response[v1.ListPurchasesResponse], error)
	UpdatePurchase(context.Context, *connect.Request[v1.UpdatePurchaseRequest]) (*connect.Response[v1.UpdatePurchaseResponse], error)
	DeletePurchase(context.Context, *connect.Request[v1.DeletePurchaseRequest]) (*connect.Response[v1.DeletePurchaseResponse], error)
}

// NewPurchaseServiceHandler builds an HTTP handler for svc. It returns the path to
// mount the handler on.
func NewPurchaseServiceHandler(svc PurchaseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	return "/" + PurchaseServiceName + "/", routes{
		PurchaseServiceCreatePurchaseProcedure: connect.NewUnaryHandler(PurchaseServiceCreatePurchaseProcedure, svc.CreatePurchase, opt),
		PurchaseServiceGetPurchaseProcedure:    connect.NewUnaryHandler(PurchaseServiceGetPurchaseProcedure, svc.GetPurchase, opt),
		PurchaseServiceListPurchasesProcedure:  connect.NewUnaryHandler(PurchaseServiceListPurchasesProcedure, svc.ListPurchases, opt),
		PurchaseServiceUpdatePurchaseProcedure: connect.NewUnaryHandler(PurchaseServiceUpdatePurchaseProcedure, svc.UpdatePurchase, opt),
		PurchaseServiceDeletePurchaseProcedure: connect.NewUnaryHandler(PurchaseServiceDeletePurchaseProcedure, svc.DeletePurchase, opt),
	}
}

// PurchaseServiceClient is a client for PurchaseService.
type PurchaseServiceClient interface {
	CreatePurchase(context.Context, *connect.Request[v1.CreatePurchaseRequest]) (*connect.Response[v1.CreatePurchaseResponse], error)
	GetPurchase(context.Context, *connect.Request[v1.GetPurchaseRequest]) (*connect.Response[v1.GetPurchaseResponse], error)
	ListPurchases(context.Context, *connect.Request[v1.ListPurchasesRequest]) (*connect.Response[v1.ListPurchasesResponse], error)
	UpdatePurchase(context.Context, *connect.Request[v1.UpdatePurchaseRequest]) (*connect.Response[v1.UpdatePurchaseResponse], error)
	DeletePurchase(context.Context, *connect.Request[v1.DeletePurchaseRequest]) (*connect.Response[v1.DeletePurchaseResponse], error)
}

// NewPurchaseServiceClient returns a client for the PurchaseService served at baseURL.
func NewPurchaseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PurchaseServiceClient {
	opt := clientOptions(opts)
	return &purchaseServiceClient{
		createPurchase: connect.NewClient[v1.CreatePurchaseRequest, v1.CreatePurchaseResponse](httpClient, baseURL+PurchaseServiceCreatePurchaseProcedure, opt),
		getPurchase:    connect.NewClient[v1.GetPurchaseRequest, v1.GetPurchaseResponse](httpClient, baseURL+PurchaseServiceGetPurchaseProcedure, opt),
		listPurchases:  connect.NewClient[v1.ListPurchasesRequest, v1.ListPurchasesResponse](httpClient, baseURL+PurchaseServiceListPurchasesProcedure, opt),
		updatePurchase: connect.NewClient[v1.UpdatePurchaseRequest, v1.UpdatePurchaseResponse](httpClient, baseURL+PurchaseServiceUpdatePurchaseProcedure, opt),
		deletePurchase: connect.NewClient[v1.DeletePurchaseRequest, v1.DeletePurchaseResponse](httpClient, baseURL+PurchaseServiceDeletePurchaseProcedure, opt),
	}
}

type purchaseServiceClient struct {
	createPurchase *connect.Client[v1.CreatePurchaseRequest, v1.CreatePurchaseResponse]
	getPurchase    *connect.Client[v1.GetPurchaseRequest, v1.GetPurchaseResponse]
	listPurchases  *connect.Client[v1.ListPurchasesRequest, v1.ListPurchasesResponse]
	updatePurchase *connect.Client[v1.UpdatePurchaseRequest, v1.UpdatePurchaseResponse]
	deletePurchase *connect.Client[v1.DeletePurchaseRequest, v1.DeletePurchaseResponse]
}

func (c *purchaseServiceClient) CreatePurchase(ctx context.Context, req *connect.Request[v1.CreatePurchaseRequest]) (*connect.Response[v1.CreatePurchaseResponse], error) {
	return c.createPurchase.CallUnary(ctx, req)
}

func (c *purchaseServiceClient) GetPurchase(ctx context.Context, req *connect.Request[v1.GetPurchaseRequest]) (*connect.Response[v1.GetPurchaseResponse], error) {
	return c.getPurchase.CallUnary(ctx, req)
}

func (c *purchaseServiceClient) ListPurchases(ctx context.Context, req *connect.Request[v1.ListPurchasesRequest]) (*connect.Response[v1.ListPurchasesResponse], error) {
	return c.listPurchases.CallUnary(ctx, req)
}

func (c *purchaseServiceClient) UpdatePurchase(ctx context.Context, req *connect.Request[v1.UpdatePurchaseRequest]) (*connect.Response[v1.UpdatePurchaseResponse], error) {
	return c.updatePurchase.CallUnary(ctx, req)
}

func (c *purchaseServiceClient) DeletePurchase(ctx context.Context, req *connect.Request[v1.DeletePurchaseRequest]) (*connect.Response[v1.DeletePurchaseResponse], error) {
	return c.deletePurchase.CallUnary(ctx, req)
}

// UnimplementedPurchaseServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedPurchaseServiceHandler struct{}

func (UnimplementedPurchaseServiceHandler) CreatePurchase(context.Context, *connect.Request[v1.CreatePurchaseRequest]) (*connect.Response[v1.CreatePurchaseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.PurchaseService.CreatePurchase is not implemented"))
}

func (UnimplementedPurchaseServiceHandler) GetPurchase(context.Context, *connect.Request[v1.GetPurchaseRequest]) (*connect.Response[v1.GetPurchaseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.PurchaseService.GetPurchase is not implemented"))
}

func (UnimplementedPurchaseServiceHandler) ListPurchases(context.Context, *connect.Request[v1.ListPurchasesRequest]) (*connect.Response[v1.ListPurchasesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.PurchaseService.ListPurchases is not implemented"))
}

func (UnimplementedPurchaseServiceHandler) UpdatePurchase(context.Context, *connect.Request[v1.UpdatePurchaseRequest]) (*connect.Response[v1.UpdatePurchaseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.PurchaseService.UpdatePurchase is not implemented"))
}

func (UnimplementedPurchaseServiceHandler) DeletePurchase(context.Context, *connect.Request[v1.DeletePurchaseRequest]) (*connect.Response[v1.DeletePurchaseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.PurchaseService.DeletePurchase is not implemented"))
}
