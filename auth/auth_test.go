package auth_test

import (
	"context"
	"emotion-lab/auth"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	publicMethod    = "/emotion.v1.EmotionAnalyzer/Analyze"
	protectedMethod = "/emotion.v1.EmotionAnalyzer/Submit"
)

func TestSigner_RoundTrip(t *testing.T) {
	req := require.New(t)
	signer := auth.NewSigner("a_long_enough_test_secret")

	token, err := signer.GenerateToken("moderation-bot", []string{"submit"}, time.Hour)
	req.NoError(err)

	claims, err := signer.ValidateToken(token)
	req.NoError(err)
	req.Equal("moderation-bot", claims.ClientID)
	req.Equal([]string{"submit"}, claims.Scopes)
}

func TestSigner_RejectsForeignAndExpiredTokens(t *testing.T) {
	req := require.New(t)
	signer := auth.NewSigner("a_long_enough_test_secret")

	foreign, err := auth.NewSigner("another_secret").GenerateToken("bot", nil, time.Hour)
	req.NoError(err)
	_, err = signer.ValidateToken(foreign)
	req.Error(err)

	expired, err := signer.GenerateToken("bot", nil, -time.Minute)
	req.NoError(err)
	_, err = signer.ValidateToken(expired)
	req.Error(err)
}

func TestInterceptor(t *testing.T) {
	signer := auth.NewSigner("a_long_enough_test_secret")
	echo := func(ctx context.Context, _ any) (any, error) { return ctx, nil }
	intercept := auth.Interceptor(signer, publicMethod)

	t.Run("public method needs no token", func(t *testing.T) {
		req := require.New(t)
		_, err := intercept(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: publicMethod}, echo)
		req.NoError(err)
	})

	t.Run("protected method without metadata", func(t *testing.T) {
		req := require.New(t)
		_, err := intercept(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: protectedMethod}, echo)
		req.Equal(codes.Unauthenticated, status.Code(err))
	})

	t.Run("protected method with invalid token", func(t *testing.T) {
		req := require.New(t)
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer nope"))
		_, err := intercept(ctx, nil, &grpc.UnaryServerInfo{FullMethod: protectedMethod}, echo)
		req.Equal(codes.Unauthenticated, status.Code(err))
		req.Contains(err.Error(), "invalid or expired token")
	})

	t.Run("valid token injects the client id", func(t *testing.T) {
		req := require.New(t)
		token, err := signer.GenerateToken("moderation-bot", nil, time.Hour)
		req.NoError(err)
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))

		res, err := intercept(ctx, nil, &grpc.UnaryServerInfo{FullMethod: protectedMethod}, echo)
		req.NoError(err)
		req.Equal("moderation-bot", auth.ClientID(res.(context.Context)))
	})

	t.Run("nil signer disables authentication", func(t *testing.T) {
		req := require.New(t)
		_, err := auth.Interceptor(nil)(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: protectedMethod}, echo)
		req.NoError(err)
	})
}
