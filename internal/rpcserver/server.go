// Package rpcserver exposes completion as a small HTTP/3 service for
// callers that want to run it out-of-process: POST /complete and
// POST /normal-form, grounded on internal/runtime/netstack/http3.go's
// HTTP3Server wrapper.
package rpcserver

import (
	"net"
	"net/http"
	"time"

	http3 "github.com/quic-go/quic-go/http3"
)

// Server wraps an http3.Server lifecycle around the completion handlers.
type Server struct {
	srv          *http3.Server
	pc           net.PacketConn
	addr         string
	defaultSteps int
	closeFn      func() error
}

// Options configures a Server. DefaultSteps bounds any request that omits
// its own "steps" field; zero means 50000.
type Options struct {
	Addr         string
	DefaultSteps int
}

// New builds a Server bound to opts.Addr (not yet listening) with an
// ephemeral self-signed certificate for opts.Addr's host.
func New(opts Options) (*Server, error) {
	host, _, err := net.SplitHostPort(opts.Addr)
	if err != nil {
		host = opts.Addr
	}
	if host == "" {
		host = "localhost"
	}
	tlsCfg, err := selfSignedConfig([]string{host})
	if err != nil {
		return nil, err
	}

	defaultSteps := opts.DefaultSteps
	if defaultSteps <= 0 {
		defaultSteps = 50000
	}

	s := &Server{addr: opts.Addr, defaultSteps: defaultSteps}
	mux := http.NewServeMux()
	mux.HandleFunc("/complete", s.handleComplete)
	mux.HandleFunc("/normal-form", s.handleNormalForm)

	s.srv = &http3.Server{Addr: opts.Addr, TLSConfig: tlsCfg, Handler: mux}
	return s, nil
}

// Start begins serving HTTP/3 on an ephemeral UDP port if Addr ends with
// ":0", and returns the actually-bound address.
func (s *Server) Start() (string, error) {
	pc, err := net.ListenPacket("udp", s.addr)
	if err != nil {
		return "", err
	}
	s.pc = pc
	realAddr := pc.LocalAddr().String()

	done := make(chan struct{})
	go func() {
		_ = s.srv.Serve(pc)
		close(done)
	}()
	s.closeFn = func() error {
		_ = s.pc.Close()
		select {
		case <-done:
		case <-time.After(time.Second):
		}
		return nil
	}
	return realAddr, nil
}

// Stop shuts the server down, releasing its UDP socket.
func (s *Server) Stop() error {
	if s.closeFn != nil {
		return s.closeFn()
	}
	return nil
}
