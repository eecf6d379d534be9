package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Eursukkul/meetapp-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreFile_Success(t *testing.T) {
	dir := t.TempDir()
	repo := &mockFileRepo{
		createFn: func(ctx context.Context, f *models.File) error {
			f.ID = 1
			return nil
		},
	}
	svc := NewFileService(repo, dir, "http://localhost:3333/")

	file, err := svc.StoreFile(context.Background(), "Banner.PNG", strings.NewReader("png-bytes"))

	require.NoError(t, err)
	assert.Equal(t, uint(1), file.ID)
	assert.Equal(t, "Banner.PNG", file.Name)
	assert.True(t, strings.HasSuffix(file.Path, ".png"))
	assert.Equal(t, "http://localhost:3333/files/"+file.Path, file.URL)

	content, err := os.ReadFile(filepath.Join(dir, file.Path))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))
}

func TestStoreFile_RepoErrorRemovesFile(t *testing.T) {
	dir := t.TempDir()
	repo := &mockFileRepo{
		createFn: func(ctx context.Context, f *models.File) error {
			return errors.New("insert failed")
		},
	}
	svc := NewFileService(repo, dir, "http://localhost:3333")

	_, err := svc.StoreFile(context.Background(), "banner.jpg", strings.NewReader("jpg"))

	assert.Error(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
