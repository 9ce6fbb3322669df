package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"
)

// MockUploadStorage implements storage.UploadStorage
type MockUploadStorage struct {
	mock.Mock
}

// Save stores an upload and returns its public URL
func (m *MockUploadStorage) Save(bucket, filename string, content io.Reader) (string, error) {
	args := m.Called(bucket, filename, content)
	return args.String(0), args.Error(1)
}

// Delete removes a stored upload
func (m *MockUploadStorage) Delete(bucket, storedName string) error {
	args := m.Called(bucket, storedName)
	return args.Error(0)
}
