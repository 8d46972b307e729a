package grpc

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/ecosocial/internal/logging"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type recordingLogger struct {
	nopLogger
	msgs []string
	args [][]any
}

func (r *recordingLogger) Debug(_ context.Context, msg string, args ...any) {
	r.msgs = append(r.msgs, msg)
	r.args = append(r.args, args)
}
func (r *recordingLogger) With(...any) logging.Logger { return r }

func TestLoggingInterceptor_PassesThrough(t *testing.T) {
	log := &recordingLogger{}
	s := NewGRPCServer("", log)

	info := &grpc.UnaryServerInfo{FullMethod: "/pkg.Service/Method"}
	handlerCalled := false
	h := func(ctx context.Context, req any) (any, error) {
		handlerCalled = true
		return "ok", nil
	}

	resp, err := s.loggingInterceptor(context.Background(), nil, info, h)
	assert.NoError(t, err)
	assert.True(t, handlerCalled)
	assert.Equal(t, "ok", resp)

	if assert.Len(t, log.msgs, 1) {
		assert.Equal(t, "grpc call", log.msgs[0])
		assert.Contains(t, log.args[0], "/pkg.Service/Method")
		assert.Contains(t, log.args[0], codes.OK.String())
	}
}

func TestLoggingInterceptor_ReturnsHandlerError(t *testing.T) {
	log := &recordingLogger{}
	s := NewGRPCServer("", log)

	info := &grpc.UnaryServerInfo{FullMethod: "/pkg.Service/Method"}
	want := status.Error(codes.Unavailable, "down")
	h := func(ctx context.Context, req any) (any, error) {
		return nil, want
	}

	resp, err := s.loggingInterceptor(context.Background(), nil, info, h)
	assert.Nil(t, resp)
	assert.True(t, errors.Is(err, want))
	assert.Contains(t, log.args[0], codes.Unavailable.String())
}
