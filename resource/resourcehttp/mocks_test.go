package resourcehttp

import (
	"net/http"

	"github.com/stretchr/testify/mock"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) Do(request *http.Request) (*http.Response, error) {
	arguments := m.Called(request)

	if response, ok := arguments.Get(0).(*http.Response); ok {
		return response, arguments.Error(1)
	}

	return nil, arguments.Error(1)
}
