package main

import (
	"log"
	"net"

	"google.golang.org/grpc"

	"bloghub/internal/grpcserver"
	"bloghub/internal/posts"
	"bloghub/pkg/database"
	"bloghub/pkg/grpc/blogpb"
	"bloghub/pkg/utils"
)

func main() {
	cfg := database.DefaultConfig()
	db := database.MustOpen(cfg)
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("db migrate failed: %v", err)
	}

	grpcCfg := utils.LoadGrpcConfig()
	listener, err := net.Listen("tcp", grpcCfg.Addr)
	if err != nil {
		log.Fatalf("grpc listen failed: %v", err)
	}

	postsRepo := posts.NewRepo(db)
	svc := grpcserver.NewServer(postsRepo)

	grpcServer := grpc.NewServer()
	blogpb.RegisterBlogServiceServer(grpcServer, svc)

	log.Printf("gRPC server listening on %s", grpcCfg.Addr)
	if err := grpcServer.Serve(listener); err != nil {
		log.Fatalf("grpc server stopped: %v", err)
	}
}
