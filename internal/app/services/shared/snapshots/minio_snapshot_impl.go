package snapshots

import (
	"bytes"
	"context"
	"fmt"
	"qsights-service/internal/app/contracts"
	"qsights-service/internal/pkg/constvars"
	"qsights-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioSnapshotStorage struct {
	client     *minio.Client
	bucketName string
	log        *zap.Logger
}

func NewMinioSnapshotStorage(client *minio.Client, bucketName string, log *zap.Logger) contracts.SnapshotStorage {
	return &minioSnapshotStorage{
		client:     client,
		bucketName: bucketName,
		log:        log,
	}
}

func (s *minioSnapshotStorage) ArchiveSnapshot(ctx context.Context, questionnaireID string, version int, payload []byte) (string, error) {
	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, s.bucketName)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{}); err != nil {
			return "", exceptions.ErrMinioCreateObject(err, s.bucketName)
		}
	}

	objectName := fmt.Sprintf(constvars.SnapshotObjectFormat, questionnaireID, version)
	reader := bytes.NewReader(payload)

	_, err = s.client.PutObject(ctx, s.bucketName, objectName, reader, int64(len(payload)), minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationJSON,
	})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, s.bucketName)
	}

	s.log.Info("questionnaire snapshot archived",
		zap.String("bucket", s.bucketName),
		zap.String("object", objectName),
	)
	return objectName, nil
}
