// internal/assets/s3.go
package assets

import (
	"bytes"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"

	"github.com/tiendita/backend/internal/apperr"
	"github.com/tiendita/backend/internal/config"
)

// S3Store keeps assets as objects in a single bucket.
type S3Store struct {
	client *s3.S3
	bucket string
}

func NewS3Store(cfg *config.Config) (*S3Store, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &S3Store{
		client: s3.New(sess),
		bucket: cfg.AWS.S3Bucket,
	}, nil
}

func (s *S3Store) Save(name string, src io.Reader) error {
	body, err := io.ReadAll(src)
	if err != nil {
		return apperr.Asset(fmt.Sprintf("read asset %s", name), err)
	}

	_, err = s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(name),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return apperr.Asset(fmt.Sprintf("upload asset %s to S3", name), err)
	}
	return nil
}

func (s *S3Store) Remove(name string) error {
	_, err := s.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return apperr.Asset(fmt.Sprintf("delete asset %s from S3", name), err)
	}
	return nil
}
