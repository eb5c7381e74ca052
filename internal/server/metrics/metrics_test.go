package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/greencareers/internal/logging"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnaryServerInterceptor_CountsByCode(t *testing.T) {
	m := New()
	ic := m.UnaryServerInterceptor()
	info := &grpc.UnaryServerInfo{FullMethod: "/svc/Login"}

	ok := func(ctx context.Context, req any) (any, error) { return "ok", nil }
	denied := func(ctx context.Context, req any) (any, error) {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	resp, err := ic(context.Background(), nil, info, ok)
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	_, err = ic(context.Background(), nil, info, denied)
	assert.Error(t, err)
	_, _ = ic(context.Background(), nil, info, denied)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues("/svc/Login", "OK")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/svc/Login", "Unauthenticated")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.duration))
}

func TestAuthRejected(t *testing.T) {
	m := New()
	m.AuthRejected(CheckSharedSecret)
	m.AuthRejected(CheckSharedSecret)
	m.AuthRejected(CheckBearer)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.rejections.WithLabelValues(CheckSharedSecret)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.rejections.WithLabelValues(CheckBearer)))
}

func TestHandler_Exposition(t *testing.T) {
	m := New()
	m.AuthRejected(CheckBearer)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), `greencareers_auth_rejections_total{check="bearer"} 1`))
	assert.True(t, strings.Contains(string(body), "go_goroutines"))
}

func TestServe_EmptyAddrDisabled(t *testing.T) {
	m := New()

	done := make(chan error, 1)
	go func() { done <- m.Serve(context.Background(), "", logging.Nop{}) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve bound a listener for an empty address")
	}
}
