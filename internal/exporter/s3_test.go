package exporter

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3Client struct {
	objects map[string][]byte
	inputs  []*s3.PutObjectInput
	err     error
}

func (f *fakeS3Client) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	body, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	if f.objects == nil {
		f.objects = make(map[string][]byte)
	}
	f.objects[aws.ToString(params.Key)] = body
	f.inputs = append(f.inputs, params)
	return &s3.PutObjectOutput{}, nil
}

func TestS3UploaderUploadFiles(t *testing.T) {
	dir := t.TempDir()
	blocksPath := filepath.Join(dir, "blocks.csv")
	require.NoError(t, os.WriteFile(blocksPath, []byte("number\n1\n"), 0o644))
	txsPath := filepath.Join(dir, "transactions.parquet")
	require.NoError(t, os.WriteFile(txsPath, []byte("PAR1"), 0o644))

	client := &fakeS3Client{}
	uploader := &S3Uploader{client: client, bucket: "exports", prefix: "mainnet/run-1"}

	require.NoError(t, uploader.UploadFiles(context.Background(), []string{blocksPath, txsPath}))

	assert.Equal(t, []byte("number\n1\n"), client.objects["mainnet/run-1/blocks.csv"])
	assert.Equal(t, []byte("PAR1"), client.objects["mainnet/run-1/transactions.parquet"])
	require.Len(t, client.inputs, 2)
	assert.Equal(t, "exports", aws.ToString(client.inputs[0].Bucket))
	assert.Equal(t, "text/csv", aws.ToString(client.inputs[0].ContentType))
	assert.Equal(t, "application/octet-stream", aws.ToString(client.inputs[1].ContentType))
	assert.Equal(t, "9", client.inputs[0].Metadata["file_size"])
	assert.Len(t, client.inputs[0].Metadata["checksum"], 64)

	_, err := os.Stat(blocksPath)
	assert.NoError(t, err, "local files are kept after upload")
}

func TestS3UploaderUploadError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blocks.csv")
	require.NoError(t, os.WriteFile(path, []byte("number\n"), 0o644))

	uploader := &S3Uploader{client: &fakeS3Client{err: errors.New("access denied")}, bucket: "exports"}

	err := uploader.UploadFiles(context.Background(), []string{path})
	assert.ErrorContains(t, err, "access denied")
}

func TestS3UploaderMissingFile(t *testing.T) {
	uploader := &S3Uploader{client: &fakeS3Client{}, bucket: "exports"}

	err := uploader.UploadFiles(context.Background(), []string{filepath.Join(t.TempDir(), "missing.csv")})
	assert.Error(t, err)
}
