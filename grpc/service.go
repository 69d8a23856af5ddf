package grpc

import (
	"context"

	ggrpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service. Every method takes and
// returns a google.protobuf.Struct whose fields follow the json tags of the
// request and response types of this package.
const ServiceName = "emotion.v1.EmotionAnalyzer"

const (
	AnalyzeFullMethodName = "/" + ServiceName + "/Analyze"
	SubmitFullMethodName  = "/" + ServiceName + "/Submit"
	StatsFullMethodName   = "/" + ServiceName + "/Stats"
	SearchFullMethodName  = "/" + ServiceName + "/Search"
)

type EmotionAnalyzerServer interface {
	Analyze(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Submit(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Stats(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
	Search(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(srv EmotionAnalyzerServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryCall) ggrpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor ggrpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EmotionAnalyzerServer), ctx, in)
		}
		info := &ggrpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EmotionAnalyzerServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

var EmotionAnalyzerServiceDesc = ggrpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EmotionAnalyzerServer)(nil),
	Methods: []ggrpc.MethodDesc{
		{MethodName: "Analyze", Handler: unaryHandler(AnalyzeFullMethodName, EmotionAnalyzerServer.Analyze)},
		{MethodName: "Submit", Handler: unaryHandler(SubmitFullMethodName, EmotionAnalyzerServer.Submit)},
		{MethodName: "Stats", Handler: unaryHandler(StatsFullMethodName, EmotionAnalyzerServer.Stats)},
		{MethodName: "Search", Handler: unaryHandler(SearchFullMethodName, EmotionAnalyzerServer.Search)},
	},
	Streams:  []ggrpc.StreamDesc{},
	Metadata: "emotion/v1/emotion_analyzer.proto",
}

func RegisterEmotionAnalyzerServer(s ggrpc.ServiceRegistrar, srv EmotionAnalyzerServer) {
	s.RegisterService(&EmotionAnalyzerServiceDesc, srv)
}
