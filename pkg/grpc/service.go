package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// The service carries well-known types only, so the descriptor is written out
// here instead of being generated from a .proto file:
//
//	service ReminderEvents {
//	  rpc Deliver(google.protobuf.Struct) returns (google.protobuf.Struct);
//	  rpc ListPending(google.protobuf.Empty) returns (google.protobuf.Struct);
//	}
const (
	ServiceName       = "health.v1.ReminderEvents"
	DeliverMethod     = "/health.v1.ReminderEvents/Deliver"
	ListPendingMethod = "/health.v1.ReminderEvents/ListPending"
)

type ReminderEventsServer interface {
	// Deliver hands one {action, extras} event to the dispatcher and waits for
	// it to be handled.
	Deliver(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListPending(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

func RegisterReminderEventsServer(s grpc.ServiceRegistrar, srv ReminderEventsServer) {
	s.RegisterService(&ReminderEventsServiceDesc, srv)
}

func deliverHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReminderEventsServer).Deliver(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: DeliverMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReminderEventsServer).Deliver(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func listPendingHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReminderEventsServer).ListPending(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListPendingMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ReminderEventsServer).ListPending(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var ReminderEventsServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ReminderEventsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Deliver", Handler: deliverHandler},
		{MethodName: "ListPending", Handler: listPendingHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "health/v1/reminder_events.proto",
}

type ReminderEventsClient struct {
	cc grpc.ClientConnInterface
}

func NewReminderEventsClient(cc grpc.ClientConnInterface) *ReminderEventsClient {
	return &ReminderEventsClient{cc: cc}
}

func (c *ReminderEventsClient) Deliver(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, DeliverMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ReminderEventsClient) ListPending(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListPendingMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DeliverEvent builds the request struct from an action and its extras.
func (c *ReminderEventsClient) DeliverEvent(ctx context.Context, action string, extras map[string]any, opts ...grpc.CallOption) (*DeliverResult, error) {
	payload := map[string]any{"action": action}
	if len(extras) > 0 {
		payload["extras"] = extras
	}
	in, err := structpb.NewStruct(payload)
	if err != nil {
		return nil, err
	}

	out, err := c.Deliver(ctx, in, opts...)
	if err != nil {
		return nil, err
	}
	fields := out.GetFields()
	return &DeliverResult{
		Success: fields["success"].GetBoolValue(),
		Message: fields["message"].GetStringValue(),
		EventID: fields["event_id"].GetStringValue(),
	}, nil
}

type DeliverResult struct {
	Success bool
	Message string
	EventID string
}
