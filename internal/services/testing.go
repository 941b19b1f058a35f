//go:build !release

package services

import (
	"sync"
	"time"

	"github.com/go-faker/faker/v4"
)

type MockNow struct {
	mu    sync.Mutex
	value time.Time
}

var _ TimeProvider = &MockNow{}

func (m *MockNow) SetValue(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = t
}

func (m *MockNow) Increment(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = m.value.Add(duration)
}

func (m *MockNow) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value
}

func NewMockNow() *MockNow {
	return &MockNow{
		value: time.UnixMilli(faker.RandomUnixTime()),
	}
}

func MockNowValue(p TimeProvider) time.Time {
	mp, ok := p.(*MockNow)
	if !ok {
		panic("provided TimeProvider is not a MockNow")
	}
	return mp.Now()
}
