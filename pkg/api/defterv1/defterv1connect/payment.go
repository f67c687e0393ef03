package defterv1connect

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"

	v1 "github.com/mmynk/defter/pkg/api/defterv1"
)

// PaymentServiceName is the fully-qualified name of the PaymentService.
const PaymentServiceName = "defter.v1.PaymentService"

// Procedure names, used for routing and in interceptors.
const (
	PaymentServiceRecordPaymentProcedure  = "/defter.v1.PaymentService/RecordPayment"
	PaymentServiceResolvePaymentProcedure = "/defter.v1.PaymentService/ResolvePayment"
	PaymentServiceListPaymentsProcedure   = "/defter.v1.PaymentService/ListPayments"
	PaymentServicePendingCountProcedure   = "/defter.v1.PaymentService/PendingCount"
)

// PaymentServiceHandler is implemented by the server side of PaymentService.
type PaymentServiceHandler interface {
	RecordPayment(context.Context, *connect.Request[v1.RecordPaymentRequest]) (*connect.Response[v1.RecordPaymentResponse], error)
	ResolvePayment(context.Context, *connect.Request[v1.ResolvePaymentRequest]) (*connect.Response[v1.ResolvePaymentResponse], error)
	ListPayments(context.Context, *connect.Request[v1.ListPaymentsRequest]) (*connect.Response[v1.ListPaymentsResponse], error)
	PendingCount(context.Context, *connect.Request[v1.PendingCountRequest]) (*connect.Response[v1.PendingCountResponse], error)
}

// NewPaymentServiceHandler builds an HTTP handler for svc. It returns the path to
// mount the handler on.
func NewPaymentServiceHandler(svc PaymentServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opt := handlerOptions(opts)
	return "/" + PaymentServiceName + "/", routes{
		PaymentServiceRecordPaymentProcedure:  connect.NewUnaryHandler(PaymentServiceRecordPaymentProcedure, svc.RecordPayment, opt),
		PaymentServiceResolvePaymentProcedure: connect.NewUnaryHandler(PaymentServiceResolvePaymentProcedure, svc.ResolvePayment, opt),
		PaymentServiceListPaymentsProcedure:   connect.NewUnaryHandler(PaymentServiceListPaymentsProcedure, svc.ListPayments, opt),
		PaymentServicePendingCountProcedure:   connect.NewUnaryHandler(PaymentServicePendingCountProcedure, svc.PendingCount, opt),
	}
}

// PaymentServiceClient is a client for PaymentService.
type PaymentServiceClient interface {
	RecordPayment(context.Context, *connect.Request[v1.RecordPaymentRequest]) (*connect.Response[v1.RecordPaymentResponse], error)
	ResolvePayment(context.Context, *connect.Request[v1.ResolvePaymentRequest]) (*connect.Response[v1.ResolvePaymentResponse], error)
	ListPayments(context.Context, *connect.Request[v1.ListPaymentsRequest]) (*connect.Response[v1.ListPaymentsResponse], error)
	PendingCount(context.Context, *connect.Request[v1.PendingCountRequest]) (*connect.Response[v1.PendingCountResponse], error)
}

// NewPaymentServiceClient returns a client for the PaymentService served at baseURL.
func NewPaymentServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PaymentServiceClient {
	opt := clientOptions(opts)
	return &paymentServiceClient{
		recordPayment:  connect.NewClient[v1.RecordPaymentRequest, v1.RecordPaymentResponse](httpClient, baseURL+PaymentServiceRecordPaymentProcedure, opt),
		resolvePayment: connect.NewClient[v1.ResolvePaymentRequest, v1.ResolvePaymentResponse](httpClient, baseURL+PaymentServiceResolvePaymentProcedure, opt),
		listPayments:   connect.NewClient[v1.ListPaymentsRequest, v1.ListPaymentsResponse](httpClient, baseURL+PaymentServiceListPaymentsProcedure, opt),
		pendingCount:   connect.NewClient[v1.PendingCountRequest, v1.PendingCountResponse](httpClient, baseURL+PaymentServicePendingCountProcedure, opt),
	}
}

type paymentServiceClient struct {
	recordPayment  *connect.Client[v1.RecordPaymentRequest, v1.RecordPaymentResponse]
	resolvePayment *connect.Client[v1.ResolvePaymentRequest, v1.ResolvePaymentResponse]
	listPayments   *connect.Client[v1.ListPaymentsRequest, v1.ListPaymentsResponse]
	pendingCount   *connect.Client[v1.PendingCountRequest, v1.PendingCountResponse]
}

func (c *paymentServiceClient) RecordPayment(ctx context.Context, req *connect.Request[v1.RecordPaymentRequest]) (*connect.Response[v1.RecordPaymentResponse], error) {
	return c.recordPayment.CallUnary(ctx, req)
}

func (c *paymentServiceClient) ResolvePayment(ctx context.Context, req *connect.Request[v1.ResolvePaymentRequest]) (*connect.Response[v1.ResolvePaymentResponse], error) {
	return c.resolvePayment.CallUnary(ctx, req)
}

func (c *paymentServiceClient) ListPayments(ctx context.Context, req *connect.Request[v1.ListPaymentsRequest]) (*connect.Response[v1.ListPaymentsResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}

func (c *paymentServiceClient) PendingCount(ctx context.Context, req *connect.Request[v1.PendingCountRequest]) (*connect.Response[v1.PendingCountResponse], error) {
	return c.pendingCount.CallUnary(ctx, req)
}

// UnimplementedPaymentServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedPaymentServiceHandler struct{}

func (UnimplementedPaymentServiceHandler) RecordPayment(context.Context, *connect.Request[v1.RecordPaymentRequest]) (*connect.Response[v1.RecordPaymentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.PaymentService.RecordPayment is not implemented"))
}

func (UnimplementedPaymentServiceHandler) ResolvePayment(context.Context, *connect.Request[v1.ResolvePaymentRequest]) (*connect.Response[v1.ResolvePaymentResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.PaymentService.ResolvePayment is not implemented"))
}

func (UnimplementedPaymentServiceHandler) ListPayments(context.Context, *connect.Request[v1.ListPaymentsRequest]) (*connect.Response[v1.ListPaymentsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.PaymentService.ListPayments is not implemented"))
}

func (UnimplementedPaymentServiceHandler) PendingCount(context.Context, *connect.Request[v1.PendingCountRequest]) (*connect.Response[v1.PendingCountResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("defter.v1.PaymentService.PendingCount is not implemented"))
}
