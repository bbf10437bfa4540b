package blogpb

import (
	"context"

	"google.golang.org/grpc"
)

// BlogServiceClient mirrors BlogServiceServer for callers.
type BlogServiceClient interface {
	ListPosts(ctx context.Context, in *ListPostsRequest, opts ...grpc.CallOption) (*ListPostsResponse, error)
	GetPost(ctx context.Context, in *GetPostRequest, opts ...grpc.CallOption) (*GetPostResponse, error)
	GetSeries(ctx context.Context, in *GetSeriesRequest, opts ...grpc.CallOption) (*GetSeriesResponse, error)
	GetSeriesNav(ctx context.Context, in *GetSeriesNavRequest, opts ...grpc.CallOption) (*GetSeriesNavResponse, error)
}

type blogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBlogServiceClient(cc grpc.ClientConnInterface) BlogServiceClient {
	return &blogServiceClient{cc: cc}
}

func (c *blogServiceClient) ListPosts(ctx context.Context, in *ListPostsRequest, opts ...grpc.CallOption) (*ListPostsResponse, error) {
	out := new(ListPostsResponse)
	if err := c.invoke(ctx, "ListPosts", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *blogServiceClient) GetPost(ctx context.Context, in *GetPostRequest, opts ...grpc.CallOption) (*GetPostResponse, error) {
	out := new(GetPostResponse)
	if err := c.invoke(ctx, "GetPost", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *blogServiceClient) GetSeries(ctx context.Context, in *GetSeriesRequest, opts ...grpc.CallOption) (*GetSeriesResponse, error) {
	out := new(GetSeriesResponse)
	if err := c.invoke(ctx, "GetSeries", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *blogServiceClient) GetSeriesNav(ctx context.Context, in *GetSeriesNavRequest, opts ...grpc.CallOption) (*GetSeriesNavResponse, error) {
	out := new(GetSeriesNavResponse)
	if err := c.invoke(ctx, "GetSeriesNav", in, out, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *blogServiceClient) invoke(ctx context.Context, method string, in, out any, opts []grpc.CallOption) error {
	callOpts := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out, callOpts...)
}
