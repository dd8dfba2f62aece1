package storage

import (
	"context"
	"log"

	"github.com/helpdesk-ph/ticketdesk/internal/config"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

var (
	Client     *minioSDK.Client
	BucketName string
)

// InitMinio connects to the object store and ensures the attachment bucket
// exists. Attachments stay disabled when MinIO is not configured.
func InitMinio() {
	if !config.MinioEnabled {
		log.Println("MinIO disabled, ticket attachments unavailable")
		return
	}

	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(config.MinioEndpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(config.MinioAccessKey, config.MinioSecretKey, ""),
		Secure: config.MinioUseSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}

	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
	log.Println("Connected to MinIO")
}
