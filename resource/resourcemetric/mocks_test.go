package resourcemetric

import (
	"github.com/go-kit/kit/metrics"
	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/hypermedia/resource"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(address string) (resource.Object, error) {
	arguments := m.Called(address)

	if o, ok := arguments.Get(0).(resource.Object); ok {
		return o, arguments.Error(1)
	}

	return nil, arguments.Error(1)
}

// recordingCounter captures label values and the accumulated count
type recordingCounter struct {
	labelValues []string
	value       float64
}

var _ metrics.Counter = (*recordingCounter)(nil)

func (c *recordingCounter) With(labelValues ...string) metrics.Counter {
	c.labelValues = append(c.labelValues, labelValues...)
	return c
}

func (c *recordingCounter) Add(delta float64) {
	c.value += delta
}
