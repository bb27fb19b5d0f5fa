package exporter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

type S3Config struct {
	Bucket          string
	Region          string
	Prefix          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

type s3PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader copies finished output files to a bucket.
type S3Uploader struct {
	client s3PutObjectAPI
	bucket string
	prefix string
}

func NewS3Uploader(ctx context.Context, cfg S3Config) (*S3Uploader, error) {
	options := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		options = append(options, awsconfig.WithCredentialsProvider(aws.CredentialsProviderFunc(func(ctx context.Context) (aws.Credentials, error) {
			return aws.Credentials{
				AccessKeyID:     cfg.AccessKeyID,
				SecretAccessKey: cfg.SecretAccessKey,
			}, nil
		})))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return &S3Uploader{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

// UploadFiles uploads every file under prefix/<file name>. Local files are
// kept.
func (u *S3Uploader) UploadFiles(ctx context.Context, paths []string) error {
	for _, p := range paths {
		if err := u.uploadFile(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (u *S3Uploader) uploadFile(ctx context.Context, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filePath, err)
	}
	defer file.Close()

	fileInfo, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	checksum, err := calculateFileChecksum(file)
	if err != nil {
		return fmt.Errorf("failed to calculate file checksum: %w", err)
	}

	key := u.objectKey(filePath)
	_, err = u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(contentTypeFor(filePath)),
		Metadata: map[string]string{
			"checksum":  checksum,
			"file_size": strconv.FormatInt(fileInfo.Size(), 10),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3: %w", filePath, err)
	}

	log.Info().Str("bucket", u.bucket).Str("key", key).Int64("size", fileInfo.Size()).Msg("Uploaded output file to S3")
	return nil
}

func (u *S3Uploader) objectKey(filePath string) string {
	return path.Join(u.prefix, filepath.Base(filePath))
}

func contentTypeFor(filePath string) string {
	if filepath.Ext(filePath) == ".csv" {
		return "text/csv"
	}
	return "application/octet-stream"
}

// calculateFileChecksum hashes the file and rewinds it for streaming.
func calculateFileChecksum(file *os.File) (string, error) {
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to seek to beginning of file: %w", err)
	}

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", fmt.Errorf("failed to read file for checksum: %w", err)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to seek to beginning of file: %w", err)
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
