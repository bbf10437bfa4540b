package blogpb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "blogpb.BlogService"

// BlogServiceServer is implemented by the content gRPC server.
type BlogServiceServer interface {
	ListPosts(context.Context, *ListPostsRequest) (*ListPostsResponse, error)
	GetPost(context.Context, *GetPostRequest) (*GetPostResponse, error)
	GetSeries(context.Context, *GetSeriesRequest) (*GetSeriesResponse, error)
	GetSeriesNav(context.Context, *GetSeriesNavRequest) (*GetSeriesNavResponse, error)
}

// UnimplementedBlogServiceServer may be embedded for forward compatibility.
type UnimplementedBlogServiceServer struct{}

func (UnimplementedBlogServiceServer) ListPosts(context.Context, *ListPostsRequest) (*ListPostsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListPosts not implemented")
}

func (UnimplementedBlogServiceServer) GetPost(context.Context, *GetPostRequest) (*GetPostResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetPost not implemented")
}

func (UnimplementedBlogServiceServer) GetSeries(context.Context, *GetSeriesRequest) (*GetSeriesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSeries not implemented")
}

func (UnimplementedBlogServiceServer) GetSeriesNav(context.Context, *GetSeriesNavRequest) (*GetSeriesNavResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSeriesNav not implemented")
}

func RegisterBlogServiceServer(s grpc.ServiceRegistrar, srv BlogServiceServer) {
	s.RegisterService(&BlogService_ServiceDesc, srv)
}

func _BlogService_ListPosts_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ListPostsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BlogServiceServer).ListPosts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/ListPosts"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BlogServiceServer).ListPosts(ctx, req.(*ListPostsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BlogService_GetPost_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetPostRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BlogServiceServer).GetPost(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetPost"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BlogServiceServer).GetPost(ctx, req.(*GetPostRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BlogService_GetSeries_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetSeriesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BlogServiceServer).GetSeries(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetSeries"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BlogServiceServer).GetSeries(ctx, req.(*GetSeriesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _BlogService_GetSeriesNav_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetSeriesNavRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(BlogServiceServer).GetSeriesNav(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/GetSeriesNav"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(BlogServiceServer).GetSeriesNav(ctx, req.(*GetSeriesNavRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var BlogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BlogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "ListPosts", Handler: _BlogService_ListPosts_Handler},
		{MethodName: "GetPost", Handler: _BlogService_GetPost_Handler},
		{MethodName: "GetSeries", Handler: _BlogService_GetSeries_Handler},
		{MethodName: "GetSeriesNav", Handler: _BlogService_GetSeriesNav_Handler},
	},
	Streams: []grpc.StreamDesc{},
}
