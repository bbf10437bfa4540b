package grpcserver

import (
	"context"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"bloghub/internal/posts"
	"bloghub/internal/series"
	"bloghub/pkg/grpc/blogpb"
	"bloghub/pkg/models"
)

type Server struct {
	blogpb.UnimplementedBlogServiceServer
	PostsRepo *posts.Repo
}

func NewServer(postsRepo *posts.Repo) *Server {
	return &Server{PostsRepo: postsRepo}
}

func (s *Server) ListPosts(ctx context.Context, req *blogpb.ListPostsRequest) (*blogpb.ListPostsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request required")
	}
	query := posts.ListQuery{
		Q:        strings.TrimSpace(req.Q),
		Tags:     req.Tags,
		SeriesID: strings.TrimSpace(req.SeriesID),
		Limit:    int(req.Limit),
		Offset:   int(req.Offset),
	}

	total, err := s.PostsRepo.Count(ctx, query)
	if err != nil {
		return nil, status.Error(codes.Internal, "count failed")
	}

	items, err := s.PostsRepo.List(ctx, query)
	if err != nil {
		return nil, status.Error(codes.Internal, "list failed")
	}

	resp := &blogpb.ListPostsResponse{
		Total:  int32(total),
		Limit:  int32(query.Limit),
		Offset: int32(query.Offset),
		Items:  make([]*blogpb.Post, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, postToProto(item.AsPost()))
	}
	return resp, nil
}

func (s *Server) GetPost(ctx context.Context, req *blogpb.GetPostRequest) (*blogpb.GetPostResponse, error) {
	if req == nil || strings.TrimSpace(req.Slug) == "" {
		return nil, status.Error(codes.InvalidArgument, "slug required")
	}

	item, err := s.PostsRepo.GetBySlug(ctx, strings.TrimSpace(req.Slug))
	if err != nil {
		return nil, status.Error(codes.Internal, "get failed")
	}
	if item == nil || item.Draft {
		return nil, status.Error(codes.NotFound, "not found")
	}

	return &blogpb.GetPostResponse{Post: postToProto(item.AsPost())}, nil
}

func (s *Server) GetSeries(ctx context.Context, req *blogpb.GetSeriesRequest) (*blogpb.GetSeriesResponse, error) {
	if req == nil || strings.TrimSpace(req.SeriesID) == "" {
		return nil, status.Error(codes.InvalidArgument, "series_id required")
	}
	seriesID := strings.TrimSpace(req.SeriesID)

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "load failed")
	}

	members := snap.Groups[seriesID]
	overview := series.Overview(seriesID, snap.OverviewPages)
	if len(members) == 0 && overview == nil {
		return nil, status.Error(codes.NotFound, "not found")
	}

	resp := &blogpb.GetSeriesResponse{
		SeriesID: seriesID,
		Parts:    make([]*blogpb.Post, 0, len(members)),
	}
	if overview != nil {
		resp.Overview = postToProto(*overview)
	}
	for _, member := range members {
		resp.Parts = append(resp.Parts, postToProto(member))
	}
	return resp, nil
}

func (s *Server) GetSeriesNav(ctx context.Context, req *blogpb.GetSeriesNavRequest) (*blogpb.GetSeriesNavResponse, error) {
	if req == nil || strings.TrimSpace(req.Slug) == "" {
		return nil, status.Error(codes.InvalidArgument, "slug required")
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, "load failed")
	}

	nav, ok := snap.NavFor(strings.TrimSpace(req.Slug))
	if !ok {
		return nil, status.Error(codes.NotFound, "not found")
	}

	resp := &blogpb.GetSeriesNavResponse{
		SeriesID: nav.SeriesID,
		Part:     int32(nav.Part),
	}
	if nav.Overview != nil {
		resp.Overview = postToProto(*nav.Overview)
	}
	if nav.Previous != nil {
		resp.Previous = postToProto(*nav.Previous)
	}
	if nav.Next != nil {
		resp.Next = postToProto(*nav.Next)
	}
	return resp, nil
}

func (s *Server) snapshot(ctx context.Context) (*series.Snapshot, error) {
	all, err := s.PostsRepo.ListAll(ctx, false)
	if err != nil {
		return nil, err
	}
	return series.BuildSnapshot(all), nil
}

func postToProto(p models.Post) *blogpb.Post {
	out := &blogpb.Post{
		Slug:        p.Slug,
		Title:       p.Title,
		Author:      p.Author,
		Tags:        p.Tags,
		SeriesID:    p.SeriesID,
		Part:        int32(p.Part),
		Description: p.Description,
		Draft:       p.Draft,
	}
	if !p.Date.IsZero() {
		out.DateUnix = p.Date.Unix()
	}
	return out
}
