package grpc

import (
	"context"
	"emotion-lab/codec"

	ggrpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// EmotionAnalyzerClient calls a remote analyzer daemon.
type EmotionAnalyzerClient struct {
	cc ggrpc.ClientConnInterface
}

func NewEmotionAnalyzerClient(cc ggrpc.ClientConnInterface) *EmotionAnalyzerClient {
	return &EmotionAnalyzerClient{cc: cc}
}

func (c *EmotionAnalyzerClient) Analyze(ctx context.Context, request AnalyzeRequest, opts ...ggrpc.CallOption) (AnalyzeResponse, error) {
	var out AnalyzeResponse
	err := c.call(ctx, AnalyzeFullMethodName, request, &out, opts...)
	return out, err
}

func (c *EmotionAnalyzerClient) Submit(ctx context.Context, request SubmitRequest, opts ...ggrpc.CallOption) (SubmitResponse, error) {
	var out SubmitResponse
	err := c.call(ctx, SubmitFullMethodName, request, &out, opts...)
	return out, err
}

func (c *EmotionAnalyzerClient) Stats(ctx context.Context, request StatsRequest, opts ...ggrpc.CallOption) (StatsResponse, error) {
	var out StatsResponse
	err := c.call(ctx, StatsFullMethodName, request, &out, opts...)
	return out, err
}

func (c *EmotionAnalyzerClient) Search(ctx context.Context, request SearchRequest, opts ...ggrpc.CallOption) (SearchResponse, error) {
	var out SearchResponse
	err := c.call(ctx, SearchFullMethodName, request, &out, opts...)
	return out, err
}

func (c *EmotionAnalyzerClient) call(ctx context.Context, method string, request, response any, opts ...ggrpc.CallOption) error {
	in, err := codec.ToStruct(request)
	if err != nil {
		return err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return err
	}
	return codec.FromStruct(out, response)
}
