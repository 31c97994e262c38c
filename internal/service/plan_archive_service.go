package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"neuro_study_backend/internal/config"
	"neuro_study_backend/internal/model"
	"neuro_study_backend/internal/util"
	"neuro_study_backend/pkg/logger"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

// ArchiveProvider 计划快照的存储后端
type ArchiveProvider interface {
	Put(ctx context.Context, name string, reader io.Reader, size int64) (string, error)
	Get(ctx context.Context, name string) ([]byte, error)
}

// LocalArchiveProvider 本地目录存储
type LocalArchiveProvider struct {
	Root string
}

func (p *LocalArchiveProvider) Put(ctx context.Context, name string, reader io.Reader, size int64) (string, error) {
	dst := filepath.Join(p.Root, name)
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return "", err
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", err
	}
	return "/archive/" + filepath.ToSlash(name), nil
}

func (p *LocalArchiveProvider) Get(ctx context.Context, name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(p.Root, name))
}

// MinioArchiveProvider MinIO 存储
type MinioArchiveProvider struct {
	Bucket string
	Client *minio.Client
}

func NewMinioArchiveProvider(cfg *config.StorageConfig) (*MinioArchiveProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioArchiveProvider{Bucket: cfg.MinioBucket, Client: client}, nil
}

func (p *MinioArchiveProvider) Put(ctx context.Context, name string, reader io.Reader, size int64) (string, error) {
	_, err := p.Client.PutObject(ctx, p.Bucket, name, reader, size, minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", err
	}
	return "/" + p.Bucket + "/" + name, nil
}

func (p *MinioArchiveProvider) Get(ctx context.Context, name string) ([]byte, error) {
	obj, err := p.Client.GetObject(ctx, p.Bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	return io.ReadAll(obj)
}

// PlanArchiveService 把生成的计划以 JSON 快照归档
type PlanArchiveService struct {
	Provider ArchiveProvider
}

func NewPlanArchiveService(cfg *config.Config) *PlanArchiveService {
	var provider ArchiveProvider
	if cfg.Storage.Type == util.StorageMinio {
		p, err := NewMinioArchiveProvider(&cfg.Storage)
		if err != nil {
			logger.Log.Error("Failed to init minio archive, falling back to local", zap.Error(err))
		} else {
			provider = p
		}
	}

	if provider == nil {
		provider = &LocalArchiveProvider{Root: cfg.Storage.LocalPath}
	}
	return &PlanArchiveService{Provider: provider}
}

// ArchiveName 快照对象名: {userID}/{date}/{planID}.json
func ArchiveName(plan *model.StudyPlan) string {
	return fmt.Sprintf("%d/%s/%s.json", plan.UserID, plan.Date, plan.ID)
}

func (s *PlanArchiveService) Archive(ctx context.Context, plan *model.StudyPlan) (string, error) {
	raw, err := json.Marshal(plan)
	if err != nil {
		return "", err
	}
	return s.Provider.Put(ctx, ArchiveName(plan), bytes.NewReader(raw), int64(len(raw)))
}

func (s *PlanArchiveService) Load(ctx context.Context, name string) (*model.StudyPlan, error) {
	raw, err := s.Provider.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	var plan model.StudyPlan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}
