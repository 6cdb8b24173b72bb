package storage

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinIOClient — хранилище файлов провайдеров (контракты, счета, выгрузки).
// Объекты лежат с префиксом provider_<id>/, исходное имя файла сохраняется
// в пользовательских метаданных объекта
type MinIOClient struct {
	client     *minio.Client
	bucketName string
}

const metaOriginalName = "X-Amz-Meta-Original-Name"

// ProviderFile — описание файла из листинга bucket-а
type ProviderFile struct {
	ObjectName string
	FileName   string
	Size       int64
	UploadedAt time.Time
}

// NewMinIOClient создает клиент для MinIO
func NewMinIOClient(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOClient, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Создаем bucket если не существует
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", bucketName)
	}

	return &MinIOClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

func providerPrefix(providerID uint) string {
	return fmt.Sprintf("provider_%d/", providerID)
}

// UploadProviderFile загружает файл провайдера и возвращает имя объекта
func (m *MinIOClient) UploadProviderFile(ctx context.Context, providerID uint, fileData []byte, originalFilename string) (string, error) {
	// Генерируем уникальное имя объекта на латинице
	ext := filepath.Ext(originalFilename)
	objectName := fmt.Sprintf("%s%s_%d%s",
		providerPrefix(providerID),
		uuid.New().String()[:8],
		time.Now().Unix(),
		ext)

	// Определяем content type
	contentType := "application/octet-stream"
	extLower := strings.ToLower(ext)
	switch extLower {
	case ".pdf":
		contentType = "application/pdf"
	case ".csv":
		contentType = "text/csv"
	case ".xlsx":
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".png":
		contentType = "image/png"
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	}

	// Загружаем файл
	reader := bytes.NewReader(fileData)
	_, err := m.client.PutObject(ctx, m.bucketName, objectName, reader, int64(len(fileData)), minio.PutObjectOptions{
		ContentType:  contentType,
		UserMetadata: map[string]string{"Original-Name": originalFilename},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}

	logrus.Infof("File %s uploaded successfully", objectName)
	return objectName, nil
}

// ListProviderFiles возвращает файлы провайдера
func (m *MinIOClient) ListProviderFiles(ctx context.Context, providerID uint) ([]ProviderFile, error) {
	files := []ProviderFile{}

	objects := m.client.ListObjects(ctx, m.bucketName, minio.ListObjectsOptions{
		Prefix: providerPrefix(providerID),
	})
	for object := range objects {
		if object.Err != nil {
			return nil, fmt.Errorf("failed to list files: %w", object.Err)
		}

		fileName := object.Key
		// Исходное имя хранится в метаданных, листинг их не возвращает — дочитываем stat-ом
		if stat, err := m.client.StatObject(ctx, m.bucketName, object.Key, minio.StatObjectOptions{}); err == nil {
			if name := stat.Metadata.Get(metaOriginalName); name != "" {
				fileName = name
			}
		}

		files = append(files, ProviderFile{
			ObjectName: object.Key,
			FileName:   fileName,
			Size:       object.Size,
			UploadedAt: object.LastModified,
		})
	}
	return files, nil
}

// DeleteFile удаляет файл из MinIO
func (m *MinIOClient) DeleteFile(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	logrus.Infof("File %s deleted successfully", objectName)
	return nil
}

// GetFileURL возвращает временный URL для доступа к файлу (1 час)
func (m *MinIOClient) GetFileURL(ctx context.Context, objectName string) (string, error) {
	url, err := m.client.PresignedGetObject(ctx, m.bucketName, objectName, time.Hour, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url.String(), nil
}

// FileExists проверяет существует ли файл
func (m *MinIOClient) FileExists(ctx context.Context, objectName string) (bool, error) {
	_, err := m.client.StatObject(ctx, m.bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		errResponse := minio.ToErrorResponse(err)
		if errResponse.Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to check file: %w", err)
	}

	return true, nil
}
