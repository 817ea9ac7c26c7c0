package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
)

type ValidateRequest struct {
	Url string
}

type ValidateResponse struct {
	Valid bool
	Error string
}

type ClassifyRequest struct {
	Url string
}

type ClassifyResponse struct {
	Platform  string
	Supported bool
}

type GrabRequest struct {
	Url    string
	Format string
}

type GrabResponse struct {
	Status   string
	Message  string
	Platform string
}

type StatsResponse struct {
	Accepted  uint64
	Rejected  uint64
	Succeeded uint64
	Failed    uint64
}

// MediaGrabServiceServer is the server API for MediaGrabService service.
type MediaGrabServiceServer interface {
	ValidateURL(context.Context, *ValidateRequest) (*ValidateResponse, error)
	ClassifyPlatform(context.Context, *ClassifyRequest) (*ClassifyResponse, error)
	Grab(context.Context, *GrabRequest) (*GrabResponse, error)
	GetStats(context.Context, *emptypb.Empty) (*StatsResponse, error)
}

// UnimplementedMediaGrabServiceServer can be embedded to have forward compatible implementations.
type UnimplementedMediaGrabServiceServer struct{}

func (*UnimplementedMediaGrabServiceServer) ValidateURL(context.Context, *ValidateRequest) (*ValidateResponse, error) {
	return nil, nil
}
func (*UnimplementedMediaGrabServiceServer) ClassifyPlatform(context.Context, *ClassifyRequest) (*ClassifyResponse, error) {
	return nil, nil
}
func (*UnimplementedMediaGrabServiceServer) Grab(context.Context, *GrabRequest) (*GrabResponse, error) {
	return nil, nil
}
func (*UnimplementedMediaGrabServiceServer) GetStats(context.Context, *emptypb.Empty) (*StatsResponse, error) {
	return nil, nil
}

func RegisterMediaGrabServiceServer(s *grpc.Server, srv MediaGrabServiceServer) {
	s.RegisterService(&_MediaGrabService_serviceDesc, srv)
}

func _MediaGrabService_ValidateURL_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ValidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaGrabServiceServer).ValidateURL(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/mediagrab.MediaGrabService/ValidateURL",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaGrabServiceServer).ValidateURL(ctx, req.(*ValidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaGrabService_ClassifyPlatform_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ClassifyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaGrabServiceServer).ClassifyPlatform(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/mediagrab.MediaGrabService/ClassifyPlatform",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaGrabServiceServer).ClassifyPlatform(ctx, req.(*ClassifyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaGrabService_Grab_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GrabRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaGrabServiceServer).Grab(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/mediagrab.MediaGrabService/Grab",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaGrabServiceServer).Grab(ctx, req.(*GrabRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MediaGrabService_GetStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MediaGrabServiceServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/mediagrab.MediaGrabService/GetStats",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MediaGrabServiceServer).GetStats(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var _MediaGrabService_serviceDesc = grpc.ServiceDesc{
	ServiceName: "mediagrab.MediaGrabService",
	HandlerType: (*MediaGrabServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ValidateURL",
			Handler:    _MediaGrabService_ValidateURL_Handler,
		},
		{
			MethodName: "ClassifyPlatform",
			Handler:    _MediaGrabService_ClassifyPlatform_Handler,
		},
		{
			MethodName: "Grab",
			Handler:    _MediaGrabService_Grab_Handler,
		},
		{
			MethodName: "GetStats",
			Handler:    _MediaGrabService_GetStats_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "mediagrab.proto",
}
