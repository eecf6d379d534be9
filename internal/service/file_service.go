package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Eursukkul/meetapp-service/internal/models"
	"github.com/Eursukkul/meetapp-service/internal/repository"
	"github.com/google/uuid"
)

type FileService interface {
	StoreFile(ctx context.Context, filename string, content io.Reader) (*models.File, error)
}

type fileService struct {
	fileRepo  repository.FileRepository
	uploadDir string
	baseURL   string
}

// NewFileService stores uploads under uploadDir. Files are served back under
// baseURL + "/files/".
func NewFileService(fileRepo repository.FileRepository, uploadDir, baseURL string) FileService {
	return &fileService{
		fileRepo:  fileRepo,
		uploadDir: uploadDir,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *fileService) StoreFile(ctx context.Context, filename string, content io.Reader) (*models.File, error) {
	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, content); err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("write file: %w", err)
	}

	file := &models.File{
		Name: filepath.Base(filename),
		Path: name,
		URL:  s.baseURL + "/files/" + name,
	}
	if err := s.fileRepo.Create(ctx, file); err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("create file record: %w", err)
	}

	return file, nil
}
