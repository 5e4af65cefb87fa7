package resource

import (
	"github.com/stretchr/testify/mock"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) Fetch(address string) (Object, error) {
	arguments := m.Called(address)

	if o, ok := arguments.Get(0).(Object); ok {
		return o, arguments.Error(1)
	}

	return nil, arguments.Error(1)
}
