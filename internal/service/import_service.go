package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Farhaan96/CollisionOS-sub009/internal/domain"
	"github.com/Farhaan96/CollisionOS-sub009/internal/estimate"
	"github.com/Farhaan96/CollisionOS-sub009/internal/port"
)

// ImportInput is the DTO for importing one raw estimate document.
type ImportInput struct {
	FileName string
	Raw      []byte
	// Format forces an adapter; empty means sniff from content.
	Format domain.DocumentFormat
}

// ImportOutput pairs the stored import record with the parse result. Result
// is nil when the parse failed.
type ImportOutput struct {
	Import domain.EstimateImport
	Result *domain.ParseResult
}

// ImportService defines the estimate ingestion contract.
type ImportService interface {
	Import(ctx context.Context, input *ImportInput) (*ImportOutput, error)
	ProcessImport(ctx context.Context, imp *domain.EstimateImport)
}

type importService struct {
	repo    port.EstimateRepository
	storage port.ObjectStorage
}

// NewImportService creates a new ImportService implementation.
func NewImportService(repo port.EstimateRepository, storage port.ObjectStorage) ImportService {
	return &importService{repo: repo, storage: storage}
}

// Import parses raw, records the import outcome, and persists the
// normalized result on success. A failed parse is recorded as a failed
// import and returned as an error; unknown-tag diagnostics never fail an
// import, they are logged and counted on the record for operator review.
func (s *importService) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	format := input.Format
	if format == "" {
		format = estimate.DetectFormat(input.Raw)
	}

	imp := domain.EstimateImport{
		ID:         uuid.New(),
		FileName:   input.FileName,
		Format:     format,
		Status:     domain.ImportStatusPending,
		ImportedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateImport(ctx, &imp); err != nil {
		return nil, fmt.Errorf("creating import record: %w", err)
	}

	parser := estimate.NewParser(format)
	result, err := parser.Parse(input.Raw)
	if err != nil {
		log.Printf("importService: parse failed for %s (%s): %v", input.FileName, format, err)
		imp.Status = domain.ImportStatusFailed
		imp.ParseError = err.Error()
		if markErr := s.repo.MarkFailed(ctx, imp.ID, err.Error()); markErr != nil {
			log.Printf("importService: failed to mark import %s failed: %v", imp.ID, markErr)
		}
		return &ImportOutput{Import: imp}, err
	}

	imp.Status = domain.ImportStatusCompleted
	imp.SourceSystem = result.Meta.SourceSystem
	imp.DocumentNumber = result.Identities.DocumentNumber
	imp.ClaimNumber = result.Identities.ClaimNumber
	imp.VIN = result.Identities.VIN
	imp.UnknownTags = len(result.Meta.UnknownTags)

	if err := s.repo.SaveResult(ctx, imp.ID, result); err != nil {
		return nil, fmt.Errorf("saving parse result for import %s: %w", imp.ID, err)
	}

	if imp.UnknownTags > 0 {
		log.Printf("importService: import %s (%s) completed with %d unknown tags: %v",
			imp.ID, input.FileName, imp.UnknownTags, result.Meta.UnknownTags)
	}

	return &ImportOutput{Import: imp, Result: result}, nil
}

// ProcessImport re-parses a previously uploaded document fetched from
// object storage. Failures are recorded on the import record, never
// propagated: the queue worker must keep draining.
func (s *importService) ProcessImport(ctx context.Context, imp *domain.EstimateImport) {
	raw, err := s.storage.Download(ctx, imp.StorageBucket, imp.StorageKey)
	if err != nil {
		log.Printf("importService: download failed for import %s (%s/%s): %v",
			imp.ID, imp.StorageBucket, imp.StorageKey, err)
		if markErr := s.repo.MarkFailed(ctx, imp.ID, err.Error()); markErr != nil {
			log.Printf("importService: failed to mark import %s failed: %v", imp.ID, markErr)
		}
		return
	}

	result, err := estimate.NewParser(imp.Format).Parse(raw)
	if err != nil {
		log.Printf("importService: parse failed for import %s: %v", imp.ID, err)
		if markErr := s.repo.MarkFailed(ctx, imp.ID, err.Error()); markErr != nil {
			log.Printf("importService: failed to mark import %s failed: %v", imp.ID, markErr)
		}
		return
	}

	if err := s.repo.SaveResult(ctx, imp.ID, result); err != nil {
		log.Printf("importService: failed to save result for import %s: %v", imp.ID, err)
	}
}
