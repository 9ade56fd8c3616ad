package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The service is described by hand on top of protobuf well-known types, so
// there is no generated code to keep in sync. Payloads are Structs carrying
// "success" and "message" plus the method's own fields.
const MonitorServiceName = "vitals.MonitorService"

const (
	MethodStart            = "/" + MonitorServiceName + "/Start"
	MethodStop             = "/" + MonitorServiceName + "/Stop"
	MethodGetState         = "/" + MonitorServiceName + "/GetState"
	MethodInjectEvent      = "/" + MonitorServiceName + "/InjectEvent"
	MethodGetPatientVitals = "/" + MonitorServiceName + "/GetPatientVitals"
	MethodGetAlerts        = "/" + MonitorServiceName + "/GetAlerts"
	MethodUndoRules        = "/" + MonitorServiceName + "/UndoRules"
	MethodSetLimiter       = "/" + MonitorServiceName + "/SetLimiter"
)

type MonitorServiceServer interface {
	Start(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	Stop(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	GetState(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	InjectEvent(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	GetPatientVitals(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	GetAlerts(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	UndoRules(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	SetLimiter(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

func unaryHandler[Req any, PReq interface {
	*Req
	proto.Message
}](
	fullMethod string,
	call func(MonitorServiceServer, context.Context, PReq) (*structpb.Struct, error),
) func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := PReq(new(Req))
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(MonitorServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(MonitorServiceServer), ctx, req.(PReq))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var MonitorServiceDesc = grpc.ServiceDesc{
	ServiceName: MonitorServiceName,
	HandlerType: (*MonitorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Start", Handler: unaryHandler(MethodStart, MonitorServiceServer.Start)},
		{MethodName: "Stop", Handler: unaryHandler(MethodStop, MonitorServiceServer.Stop)},
		{MethodName: "GetState", Handler: unaryHandler(MethodGetState, MonitorServiceServer.GetState)},
		{MethodName: "InjectEvent", Handler: unaryHandler(MethodInjectEvent, MonitorServiceServer.InjectEvent)},
		{MethodName: "GetPatientVitals", Handler: unaryHandler(MethodGetPatientVitals, MonitorServiceServer.GetPatientVitals)},
		{MethodName: "GetAlerts", Handler: unaryHandler(MethodGetAlerts, MonitorServiceServer.GetAlerts)},
		{MethodName: "UndoRules", Handler: unaryHandler(MethodUndoRules, MonitorServiceServer.UndoRules)},
		{MethodName: "SetLimiter", Handler: unaryHandler(MethodSetLimiter, MonitorServiceServer.SetLimiter)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "vitals/monitor_service",
}

func RegisterMonitorServiceServer(s grpc.ServiceRegistrar, srv MonitorServiceServer) {
	s.RegisterService(&MonitorServiceDesc, srv)
}

type MonitorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMonitorServiceClient(cc grpc.ClientConnInterface) *MonitorServiceClient {
	return &MonitorServiceClient{cc: cc}
}

func (c *MonitorServiceClient) invoke(ctx context.Context, method string, in proto.Message, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *MonitorServiceClient) Start(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodStart, &emptypb.Empty{}, opts...)
}

func (c *MonitorServiceClient) Stop(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodStop, &emptypb.Empty{}, opts...)
}

func (c *MonitorServiceClient) GetState(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetState, &emptypb.Empty{}, opts...)
}

func (c *MonitorServiceClient) InjectEvent(ctx context.Context, patientID string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodInjectEvent, wrapperspb.String(patientID), opts...)
}

func (c *MonitorServiceClient) GetPatientVitals(ctx context.Context, patientID string, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetPatientVitals, wrapperspb.String(patientID), opts...)
}

func (c *MonitorServiceClient) GetAlerts(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodGetAlerts, &emptypb.Empty{}, opts...)
}

func (c *MonitorServiceClient) UndoRules(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, MethodUndoRules, &emptypb.Empty{}, opts...)
}

func (c *MonitorServiceClient) SetLimiter(ctx context.Context, patientID string, patientRate float64, patientBurst int, opts ...grpc.CallOption) (*structpb.Struct, error) {
	in, err := structpb.NewStruct(map[string]any{
		"patientId": patientID,
		"rate":      patientRate,
		"burst":     patientBurst,
	})
	if err != nil {
		return nil, err
	}
	return c.invoke(ctx, MethodSetLimiter, in, opts...)
}
