package server

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/your-org/pfcp/ie"
	"github.com/your-org/pfcp/internal/pfcpd/config"
	"github.com/your-org/pfcp/internal/pfcpd/session"
	"github.com/your-org/pfcp/message"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Node: config.NodeConfig{InstanceID: "test", NodeID: "127.0.0.1"},
		PFCP: config.PFCPConfig{BindAddress: "127.0.0.1", Port: 0},
	}
}

// TestServerReadLoopExitsOnCancel verifies the UDP read-loop goroutine
// started by Start actually returns once its context is cancelled,
// rather than leaking the way an unconditional blocking read would.
func TestServerReadLoopExitsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := testConfig(t)
	logger := zap.NewNop()
	srv := New(cfg, session.NewTable(), nil, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Start(ctx)
	}()

	// give the listener a moment to bind before tearing it down
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

// TestServerHandlesHeartbeatRoundTrip exercises the UDP path end to
// end: send a Heartbeat Request, expect a Heartbeat Response back.
func TestServerHandlesHeartbeatRoundTrip(t *testing.T) {
	defer goleak.VerifyNone(t)

	cfg := testConfig(t)
	logger := zap.NewNop()
	srv := New(cfg, session.NewTable(), nil, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listening := make(chan *net.UDPAddr, 1)
	go func() {
		addr, err := net.ResolveUDPAddr("udp", cfg.Address())
		require.NoError(t, err)
		conn, err := net.ListenUDP("udp", addr)
		require.NoError(t, err)
		srv.conn = conn
		listening <- conn.LocalAddr().(*net.UDPAddr)
		srv.readLoop(ctx)
	}()

	boundAddr := <-listening

	client, err := net.DialUDP("udp", nil, boundAddr)
	require.NoError(t, err)
	defer client.Close()

	req := &message.HeartbeatRequest{SeqNum: 1, RecoveryTimeStamp: ie.RecoveryTimeStamp{UnixSeconds: 1000}}
	_, err = client.Write(req.Marshal())
	require.NoError(t, err)

	buf := make([]byte, 1024)
	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, err := client.Read(buf)
	require.NoError(t, err)

	resp, err := message.Parse(buf[:n])
	require.NoError(t, err)
	hr, ok := resp.(*message.HeartbeatResponse)
	require.True(t, ok)
	require.Equal(t, uint32(1), hr.SeqNum)
}
