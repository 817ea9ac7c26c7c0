package handler

import (
	"context"
	"errors"

	"github.com/fliklylike-cyber/Media-Grab/internal/model"
	"github.com/fliklylike-cyber/Media-Grab/internal/proto"
	"github.com/fliklylike-cyber/Media-Grab/internal/validate"
	"github.com/fliklylike-cyber/Media-Grab/internal/worker"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// MediaGrabGRPCServer exposes the predicates and the grab operation over
// gRPC for external inspection and testing.
type MediaGrabGRPCServer struct {
	proto.UnimplementedMediaGrabServiceServer
	service GrabService
}

func NewMediaGrabGRPCServer(service GrabService) *MediaGrabGRPCServer {
	return &MediaGrabGRPCServer{
		service: service,
	}
}

func (s *MediaGrabGRPCServer) ValidateURL(ctx context.Context, req *proto.ValidateRequest) (*proto.ValidateResponse, error) {
	if err := s.service.CheckURL(req.Url); err != nil {
		return &proto.ValidateResponse{Valid: false, Error: rejectMessage(err)}, nil
	}
	return &proto.ValidateResponse{Valid: true}, nil
}

func (s *MediaGrabGRPCServer) ClassifyPlatform(ctx context.Context, req *proto.ClassifyRequest) (*proto.ClassifyResponse, error) {
	name, supported := s.service.Classify(req.Url)
	return &proto.ClassifyResponse{Platform: name, Supported: supported}, nil
}

func (s *MediaGrabGRPCServer) Grab(ctx context.Context, req *proto.GrabRequest) (*proto.GrabResponse, error) {
	format, err := model.ParseFormat(req.Format)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "unknown format")
	}

	result, err := s.service.Grab(ctx, model.Submission{URL: req.Url, Format: format})
	if err != nil {
		switch {
		case errors.Is(err, validate.ErrEmptyURL), errors.Is(err, validate.ErrInvalidURL):
			return nil, status.Error(codes.InvalidArgument, rejectMessage(err))
		case errors.Is(err, worker.ErrBusy):
			return nil, status.Error(codes.ResourceExhausted, rejectMessage(err))
		default:
			return nil, status.Errorf(codes.Internal, "failed to process submission: %v", err)
		}
	}

	return &proto.GrabResponse{
		Status:   string(result.Status),
		Message:  result.Message,
		Platform: result.Platform,
	}, nil
}

func (s *MediaGrabGRPCServer) GetStats(ctx context.Context, _ *emptypb.Empty) (*proto.StatsResponse, error) {
	stats := s.service.Stats()
	return &proto.StatsResponse{
		Accepted:  stats.Accepted,
		Rejected:  stats.Rejected,
		Succeeded: stats.Succeeded,
		Failed:    stats.Failed,
	}, nil
}
