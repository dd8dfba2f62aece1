package application

import (
	"context"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/attachment"
	"github.com/helpdesk-ph/ticketdesk/internal/domain/ticket"
	"github.com/helpdesk-ph/ticketdesk/internal/repository"
	"github.com/helpdesk-ph/ticketdesk/internal/repository/mock"
	"github.com/helpdesk-ph/ticketdesk/internal/storage"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func setupAttachmentServiceMocks(t *testing.T) (*AttachmentService, *mock.MockAttachmentRepo, *mock.MockTicketRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockAttachment := mock.NewMockAttachmentRepo(ctrl)
	mockTicket := mock.NewMockTicketRepo(ctrl)
	repos := &repository.Repos{
		Attachment: mockAttachment,
		Ticket:     mockTicket,
	}
	svc := NewAttachmentService(repos)
	return svc, mockAttachment, mockTicket
}

// withStorageClient swaps the package-level MinIO client for the test.
// Constructing a client performs no network calls, and presigning is pure
// local URL signing.
func withStorageClient(t *testing.T) {
	client, err := minioSDK.New("localhost:9000", &minioSDK.Options{
		Creds:  credentials.NewStaticV4("test", "testsecret", ""),
		Region: "us-east-1",
	})
	require.NoError(t, err)

	oldClient, oldBucket := storage.Client, storage.BucketName
	storage.Client = client
	storage.BucketName = "ticket-attachments"
	t.Cleanup(func() {
		storage.Client = oldClient
		storage.BucketName = oldBucket
	})
}

func withoutStorageClient(t *testing.T) {
	oldClient := storage.Client
	storage.Client = nil
	t.Cleanup(func() { storage.Client = oldClient })
}

// --------------------- Upload ---------------------
func TestAttachmentUpload_StorageDisabled(t *testing.T) {
	svc, _, _ := setupAttachmentServiceMocks(t)
	withoutStorageClient(t)

	_, err := svc.Upload(context.Background(), "T-1", "alice", "report.pdf", "application/pdf", 4, strings.NewReader("data"))
	assert.Equal(t, ErrStorageDisabled, err)
}

func TestAttachmentUpload_TicketNotFound(t *testing.T) {
	svc, _, mockTicket := setupAttachmentServiceMocks(t)
	withStorageClient(t)

	mockTicket.EXPECT().FindByTicketID("T-404").Return(ticket.Ticket{}, gorm.ErrRecordNotFound)

	_, err := svc.Upload(context.Background(), "T-404", "alice", "report.pdf", "application/pdf", 4, strings.NewReader("data"))
	assert.Equal(t, ErrTicketNotFound, err)
}

// --------------------- List ---------------------
func TestAttachmentList_StorageDisabled(t *testing.T) {
	svc, _, _ := setupAttachmentServiceMocks(t)
	withoutStorageClient(t)

	_, err := svc.List(context.Background(), "T-1")
	assert.Equal(t, ErrStorageDisabled, err)
}

func TestAttachmentList_PresignsDownloadURLs(t *testing.T) {
	svc, mockAttachment, _ := setupAttachmentServiceMocks(t)
	withStorageClient(t)

	mockAttachment.EXPECT().ListByTicketID("T-1").Return([]attachment.Attachment{
		{ID: 1, TicketID: "T-1", FileName: "report.pdf", ObjectKey: "T-1/abc-report.pdf", SizeBytes: 4, UploadedBy: "alice"},
	}, nil)

	out, err := svc.List(context.Background(), "T-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "report.pdf", out[0].FileName)
	assert.Equal(t, "alice", out[0].UploadedBy)
	assert.Contains(t, out[0].DownloadURL, "T-1/abc-report.pdf")
	assert.Contains(t, out[0].DownloadURL, "X-Amz-Signature")
}
