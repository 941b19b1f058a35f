//go:build !release

package main

import (
	"bufio"
	"bytes"
	"net"
	"sync"
)

// mockTCPServer echoes every received line back to the sender.
type mockTCPServer struct {
	listener  net.Listener
	isRunning bool
	lines     []string
	mu        sync.Mutex
}

func newMockTCPServer() *mockTCPServer {
	return &mockTCPServer{}
}

// Start starts the TCP server on a random local port.
func (s *mockTCPServer) Start() error {
	var err error
	s.listener, err = net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.isRunning = true
	s.mu.Unlock()

	go func() {
		for {
			conn, acceptErr := s.listener.Accept()
			if acceptErr != nil {
				if !s.running() {
					return
				}
				continue
			}
			go s.handleConnection(conn)
		}
	}()
	return nil
}

func (s *mockTCPServer) addr() string {
	return s.listener.Addr().String()
}

func (s *mockTCPServer) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isRunning
}

func (s *mockTCPServer) stop() {
	s.mu.Lock()
	s.isRunning = false
	s.mu.Unlock()
	if s.listener != nil {
		s.listener.Close()
	}
}

func (s *mockTCPServer) handleConnection(conn net.Conn) {
	defer conn.Close()
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		line := scanner.Text()

		s.mu.Lock()
		s.lines = append(s.lines, line)
		s.mu.Unlock()

		if _, err := conn.Write([]byte(line + "\n")); err != nil {
			return
		}
	}
}

func (s *mockTCPServer) getLines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.lines...) // Return a copy
}

// lockedBuffer is a bytes.Buffer safe for concurrent use.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
