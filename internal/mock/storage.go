package mock

import (
	"bytes"
	"context"
	"io"
	"time"

	"github.com/saqib1218/FoodApp-Backend-sub000/internal/port"
)

// Storage implements port.Storage for tests.
type Storage struct {
	// stored values
	StatInfoOut port.FileInfo
	GetOut      io.ReadSeeker
	ExistsOut   bool

	// captured inputs
	ObjectKey  string
	TTL        time.Duration
	SavedKeys  []string
	SavedSizes []int64

	// errors
	InitBucketErr           error
	GenerateDownloadLinkErr error
	StatErr                 error
	RemoveErr               error
	GetErr                  error
	SaveErr                 error
	FileExistsErr           error

	// call flags
	InitBucketCalled           bool
	GenerateDownloadLinkCalled bool
	StatCalled                 bool
	RemoveCalled               bool
	RemovedKeys                []string
	GetCalled                  bool
	SaveCalled                 bool
	FileExistsCalled           bool
}

var _ port.Storage = (*Storage)(nil)

func (m *Storage) InitBucket(bucket string) error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) GeneratePresignedDownloadURL(ctx context.Context, bucket, fileKey string, expiry time.Duration) (string, error) {
	m.GenerateDownloadLinkCalled = true
	m.ObjectKey = fileKey
	m.TTL = expiry
	if m.GenerateDownloadLinkErr != nil {
		return "", m.GenerateDownloadLinkErr
	}
	return "https://example.com/download", nil
}

func (m *Storage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	m.FileExistsCalled = true
	m.ObjectKey = fileKey
	if m.FileExistsErr != nil {
		return false, m.FileExistsErr
	}
	return m.ExistsOut, nil
}

func (m *Storage) StatFile(ctx context.Context, bucket, fileKey string) (port.FileInfo, error) {
	m.StatCalled = true
	m.ObjectKey = fileKey
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	return m.StatInfoOut, nil
}

func (m *Storage) RemoveFile(ctx context.Context, bucket, fileKey string) error {
	m.RemoveCalled = true
	m.RemovedKeys = append(m.RemovedKeys, fileKey)
	return m.RemoveErr
}

func (m *Storage) GetFile(ctx context.Context, bucket, fileKey string) (io.ReadSeekCloser, error) {
	m.GetCalled = true
	m.ObjectKey = fileKey
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	out := m.GetOut
	if out == nil {
		out = bytes.NewReader(nil)
	}
	return nopReadSeekCloser{out}, nil
}

func (m *Storage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	m.SavedKeys = append(m.SavedKeys, fileKey)
	m.SavedSizes = append(m.SavedSizes, fileSize)
	return m.SaveErr
}

type nopReadSeekCloser struct {
	io.ReadSeeker
}

func (nopReadSeekCloser) Close() error { return nil }
