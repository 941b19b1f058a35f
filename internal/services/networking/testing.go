//go:build !release

package networking

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/go-faker/faker/v4"
)

const mockWaitTimeout = 5 * time.Second

// MockConnectionController drives the remote end of an in-memory connection.
// Connection is the end handed to the code under test.
type MockConnectionController struct {
	Connection Connection

	peer     Connection
	peerConn net.Conn
}

// MockSendLine writes the line to the Connection. Blocks until the line is
// consumed by the reader of the Connection or a few seconds passed.
func (m *MockConnectionController) MockSendLine(line string) {
	if err := m.peerConn.SetWriteDeadline(time.Now().Add(mockWaitTimeout)); err != nil {
		return
	}
	_ = m.peer.WriteLine(line)
}

func (m *MockConnectionController) MockSendLineAndWaitResult(line string) string {
	m.MockSendLine(line)
	return m.MockWaitResult()
}

// MockWaitResult returns next line written to the Connection.
// Returns empty string if nothing was written within a few seconds or the connection was closed.
func (m *MockConnectionController) MockWaitResult() string {
	line, err := m.MockReadLine()
	if err != nil {
		return ""
	}
	return line
}

func (m *MockConnectionController) MockReadLine() (string, error) {
	if err := m.peerConn.SetReadDeadline(time.Now().Add(mockWaitTimeout)); err != nil {
		return "", err
	}
	return m.peer.ReadLine()
}

// MockWaitClosed drains remaining lines and reports if the Connection got closed
// within a few seconds.
func (m *MockConnectionController) MockWaitClosed() bool {
	for {
		_, err := m.MockReadLine()
		if err == nil {
			continue
		}
		return errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe)
	}
}

// MockClose closes the remote end, Connection will observe end of stream.
func (m *MockConnectionController) MockClose() {
	_ = m.peer.Close()
}

func NewMockConnectionController(opts ...ConnectionOpt) *MockConnectionController {
	local, remote := net.Pipe()
	return &MockConnectionController{
		Connection: NewConnection(faker.UUIDHyphenated(), local, opts...),
		peer:       NewConnection(faker.UUIDHyphenated(), remote),
		peerConn:   remote,
	}
}
