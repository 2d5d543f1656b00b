package services

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3RecordingStorage resolves presigned playback URLs for call recordings
// stored under recordings/<callId>/<recordingId> in the configured bucket.
type S3RecordingStorage struct {
	Client *s3.Client
	Bucket string
}

// NewS3RecordingStorage builds recording storage from the ambient AWS config.
func NewS3RecordingStorage() (*S3RecordingStorage, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		return nil, err
	}
	return &S3RecordingStorage{
		Client: s3.NewFromConfig(cfg),
		Bucket: os.Getenv("S3_BUCKET_NAME"),
	}, nil
}

// PlaybackURL generates a presigned URL for reading a recording artifact.
func (rs *S3RecordingStorage) PlaybackURL(ctx context.Context, callID, recordingID string) (string, error) {
	key := "recordings/" + callID + "/" + recordingID
	params := &s3.GetObjectInput{
		Bucket: aws.String(rs.Bucket),
		Key:    aws.String(key),
	}
	presigner := s3.NewPresignClient(rs.Client)
	presignedURL, err := presigner.PresignGetObject(ctx, params, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
