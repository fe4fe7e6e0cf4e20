package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/dmitrijs2005/studyhub/internal/common"
	sc "github.com/dmitrijs2005/studyhub/internal/server/config"
	"github.com/dmitrijs2005/studyhub/internal/server/models"
	"github.com/dmitrijs2005/studyhub/internal/server/repositories/repomanager"
)

const (
	exportTimeLayout = "January 02, 2006 at 03:04 PM"
	archiveURLExpiry = 15 * time.Minute
)

var exportRule = strings.Repeat("=", 60)

var fileNameReplacer = strings.NewReplacer("/", "_", `\`, "_", `"`, "_")

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput) error {
		_, err := c.PutObject(ctx, in)
		return err
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ExportService renders notes as plain text and optionally archives the
// rendering in S3-compatible object storage.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewExportService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *ExportService {
	return &ExportService{db: db, repomanager: m, config: cfg}
}

func (s *ExportService) ExportNote(ctx context.Context, actor models.Actor, id int64) (*models.NoteExport, error) {
	note, subject, err := ownedNote(ctx, s.repomanager, s.db, actor, id)
	if err != nil {
		return nil, err
	}
	return &models.NoteExport{
		FileName: exportFileName(note.Title),
		Content:  renderExport(note, subject),
	}, nil
}

// ArchiveNote uploads the export of a note and returns a short-lived
// download link for it.
func (s *ExportService) ArchiveNote(ctx context.Context, actor models.Actor, id int64) (*models.ArchivedExport, error) {
	if !s.config.ArchiveEnabled() {
		return nil, common.ErrExportStorageDisabled
	}

	export, err := s.ExportNote(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("error configuring storage: %w", err)
	}

	bucket := s.config.S3Bucket
	key := archiveKey(actor.UserID, now())

	err = putObject(client, ctx, &s3.PutObjectInput{
		Bucket:             &bucket,
		Key:                &key,
		Body:               strings.NewReader(export.Content),
		ContentType:        aws.String("text/plain; charset=utf-8"),
		ContentDisposition: aws.String(fmt.Sprintf("attachment; filename=%q", export.FileName)),
	})
	if err != nil {
		return nil, fmt.Errorf("error uploading export: %w", err)
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(archiveURLExpiry))
	if err != nil {
		return nil, fmt.Errorf("error presigning export: %w", err)
	}

	return &models.ArchivedExport{Key: key, URL: req.URL, ExpiresAt: now().Add(archiveURLExpiry)}, nil
}

func (s *ExportService) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

func archiveKey(userID int64, t time.Time) string {
	return fmt.Sprintf("exports/%d/%04d/%02d/%02d/%v.txt", userID, t.Year(), int(t.Month()), t.Day(), uuid.New())
}

func exportFileName(title string) string {
	return fileNameReplacer.Replace(title) + ".txt"
}

func renderExport(n *models.Note, subject *models.Subject) string {
	lines := []string{
		exportRule,
		n.Title,
		exportRule,
		"",
		"Subject: " + subject.Name,
		"Created: " + n.CreatedAt.Format(exportTimeLayout),
		"Updated: " + n.UpdatedAt.Format(exportTimeLayout),
		"",
		exportRule,
		"",
		n.Content,
		"",
		exportRule,
		"Exported from StudyHub",
		exportRule,
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
