package auction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"auction-manager/core/storage"
	"auction-manager/feature/auction/models"

	"github.com/minio/minio-go/v7"
)

// archivePrefix is where deletion snapshots live in the bucket.
const archivePrefix = "archives/"

// Snapshot is the JSON document written to object storage before an auction
// is hard-deleted. It is the only surviving record of the row set.
type Snapshot struct {
	ArchivedAt   time.Time            `json:"archived_at"`
	Auction      models.Auction       `json:"auction"`
	Participants []models.Participant `json:"participants"`
	Items        []models.Item        `json:"items"`
}

// Archiver writes and reads auction deletion snapshots.
type Archiver struct {
	client storage.Client
	bucket string
}

// NewArchiver creates a new archiver over the given bucket.
func NewArchiver(client storage.Client, bucket string) *Archiver {
	return &Archiver{client: client, bucket: bucket}
}

// ObjectName returns the bucket key for an auction's snapshot.
func (a *Archiver) ObjectName(auctionID int64) string {
	return fmt.Sprintf("%sauction_%d.json", archivePrefix, auctionID)
}

// Archive serializes the snapshot and uploads it. The caller invokes this
// inside the deletion transaction, before any row is removed, so a failed
// upload aborts the whole delete.
func (a *Archiver) Archive(ctx context.Context, snap *Snapshot) error {
	if snap.ArchivedAt.IsZero() {
		snap.ArchivedAt = time.Now().UTC()
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	_, err = a.client.PutObject(
		ctx,
		a.bucket,
		a.ObjectName(snap.Auction.ID),
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"},
	)
	if err != nil {
		return fmt.Errorf("failed to upload snapshot: %w", err)
	}

	return nil
}

// List returns the object names of all stored snapshots.
func (a *Archiver) List(ctx context.Context) ([]string, error) {
	var names []string
	for info := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{
		Prefix:    archivePrefix,
		Recursive: true,
	}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list snapshots: %w", info.Err)
		}
		if strings.HasSuffix(info.Key, ".json") {
			names = append(names, info.Key)
		}
	}
	return names, nil
}

// Fetch downloads and decodes one auction's snapshot.
func (a *Archiver) Fetch(ctx context.Context, auctionID int64) (*Snapshot, error) {
	reader, err := a.client.GetObject(ctx, a.bucket, a.ObjectName(auctionID), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return &snap, nil
}

// Remove deletes one auction's snapshot from the bucket.
func (a *Archiver) Remove(ctx context.Context, auctionID int64) error {
	err := a.client.RemoveObject(ctx, a.bucket, a.ObjectName(auctionID), minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to remove snapshot: %w", err)
	}
	return nil
}
