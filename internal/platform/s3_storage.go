package platform

import (
	"bytes"
	"context"
	"errors"
	"file-storage-server/config"
	"file-storage-server/internal/model"
	"file-storage-server/internal/util"
	"io"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

const objectNameMetadata = "original-name"

// s3API : используемое подмножество клиента S3
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Storage : бакет платформы поверх S3 / MinIO, ключ объекта равен его идентификатору
type S3Storage struct {
	client s3API
	bucket string
	now    func() time.Time
}

func NewS3Storage(ctx context.Context, cfg *config.S3Config, bucket string) (*S3Storage, error) {
	var client *s3.Client

	if cfg.Local {
		client = s3.New(s3.Options{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				cfg.AccessKey,
				cfg.SecretKey,
				"",
			),
			BaseEndpoint: aws.String(cfg.Endpoint),
			UsePathStyle: true,
		})

		if err := createBucketIfNotExists(ctx, client, bucket); err != nil {
			return nil, util.LogError("[S3Storage] ошибка создания бакета", err)
		}
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, util.LogError("[S3Storage] ошибка загрузки AWS config", err)
		}
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
		})
	}

	return newS3Storage(client, bucket), nil
}

func newS3Storage(client s3API, bucket string) *S3Storage {
	return &S3Storage{client: client, bucket: bucket, now: time.Now}
}

// createBucketIfNotExists создает бакет если он не существует
func createBucketIfNotExists(ctx context.Context, client *s3.Client, bucket string) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})

	if err == nil {
		return nil // Бакет уже существует
	}

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})

	if err != nil {
		return util.LogError("[S3Storage] ошибка создания бакета", err)
	}

	util.Sugar.Infow("[S3Storage] бакет создан", "bucket", bucket)
	return nil
}

// CreateFile : кладёт объект в бакет
func (s *S3Storage) CreateFile(ctx context.Context, fileID string, file model.InputFile) (*model.BucketFile, error) {
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(fileID),
		Body:          bytes.NewReader(file.Data),
		ContentLength: aws.Int64(int64(len(file.Data))),
		ContentType:   aws.String(contentType),
		Metadata:      map[string]string{objectNameMetadata: url.QueryEscape(file.Name)},
	})
	if err != nil {
		return nil, util.LogError("[S3Storage] не удалось загрузить объект", err)
	}

	return &model.BucketFile{
		ID:           fileID,
		BucketID:     s.bucket,
		Name:         file.Name,
		MimeType:     contentType,
		SizeOriginal: int64(len(file.Data)),
		CreatedAt:    s.now().UTC(),
	}, nil
}

// GetFile : поток содержимого объекта, закрывает вызывающий
func (s *S3Storage) GetFile(ctx context.Context, fileID string) (io.ReadCloser, *model.BucketFile, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileID),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil, nil, ErrFileNotFound
		}
		return nil, nil, util.LogError("[S3Storage] не удалось получить объект", err)
	}

	name, _ := url.QueryUnescape(out.Metadata[objectNameMetadata])

	info := &model.BucketFile{
		ID:           fileID,
		BucketID:     s.bucket,
		Name:         name,
		MimeType:     aws.ToString(out.ContentType),
		SizeOriginal: aws.ToInt64(out.ContentLength),
	}
	if out.LastModified != nil {
		info.CreatedAt = *out.LastModified
	}

	return out.Body, info, nil
}

// DeleteFile : удаление объекта
func (s *S3Storage) DeleteFile(ctx context.Context, fileID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(fileID),
	})
	if err != nil {
		return util.LogError("[S3Storage] не удалось удалить объект", err)
	}
	return nil
}
